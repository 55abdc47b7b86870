package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/atmcore/internal/atm/device"
)

func TestShowTextAndCardState(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, &out)

	c.ShowText("Please insert your card")
	c.ShowCardState(device.CardSeized)

	assert.Contains(t, out.String(), "Please insert your card\n")
	assert.Contains(t, out.String(), "[card: seized]\n")
}

func TestPrint_AppendsTearOffRule(t *testing.T) {
	var printer bytes.Buffer
	c := New(strings.NewReader(""), &bytes.Buffer{}, &printer)

	c.Print("WITHDRAWAL 25.00")

	assert.Equal(t, "WITHDRAWAL 25.00\n-----\n", printer.String())
}

func TestInputEnableDisable(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	assert.True(t, c.InputEnabled())
	c.DisableInput()
	assert.False(t, c.InputEnabled())
	c.EnableInput()
	assert.True(t, c.InputEnabled())
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("1111\n"), &out, &out)

	got, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "1111", got)
	assert.Contains(t, out.String(), "> ")
}

func TestReadLine_EOFWithPartialLine(t *testing.T) {
	c := New(strings.NewReader("lastline"), &bytes.Buffer{}, &bytes.Buffer{})

	got, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestReadSecret_FallsBackWithoutTerminal(t *testing.T) {
	oldIsTerminal := isTerminal
	defer func() { isTerminal = oldIsTerminal }()
	isTerminal = func(int) bool { return false }

	c := New(strings.NewReader("2222\n"), &bytes.Buffer{}, &bytes.Buffer{})

	got, err := c.ReadSecret()
	require.NoError(t, err)
	assert.Equal(t, "2222", got)
}

func TestReadSecret_TerminalError(t *testing.T) {
	oldIsTerminal, oldReadPassword := isTerminal, readPassword
	defer func() { isTerminal, readPassword = oldIsTerminal, oldReadPassword }()
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	c := New(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	_, err := c.ReadSecret()
	require.Error(t, err)
}

func TestReadSecret_Terminal(t *testing.T) {
	oldIsTerminal, oldReadPassword := isTerminal, readPassword
	defer func() { isTerminal, readPassword = oldIsTerminal, oldReadPassword }()
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("2222"), nil }

	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, &out)

	got, err := c.ReadSecret()
	require.NoError(t, err)
	assert.Equal(t, "2222", got)
}
