// Package console implements the terminal's device capabilities on a plain
// text console: the display and the receipt printer both write to an
// io.Writer, and input is read line by line, with no-echo entry for PINs.
package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dmitrijs2005/atmcore/internal/atm/device"
)

// Console implements device.Terminal for interactive use.
type Console struct {
	reader       *bufio.Reader
	out          io.Writer
	printerOut   io.Writer
	inputEnabled bool
}

func New(in io.Reader, out io.Writer, printerOut io.Writer) *Console {
	return &Console{
		reader:       bufio.NewReader(in),
		out:          out,
		printerOut:   printerOut,
		inputEnabled: true,
	}
}

func (c *Console) ShowText(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) ShowCardState(state device.CardState) {
	fmt.Fprintf(c.out, "[card: %s]\n", state)
}

// Print emits a receipt followed by a tear-off rule.
func (c *Console) Print(text string) {
	fmt.Fprintln(c.printerOut, text+"\n-----")
}

func (c *Console) EnableInput() {
	c.inputEnabled = true
}

func (c *Console) DisableInput() {
	c.inputEnabled = false
}

// InputEnabled reports the advisory input state set by the session.
func (c *Console) InputEnabled() bool {
	return c.inputEnabled
}
