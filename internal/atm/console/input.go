package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
// In tests, replace them with stubs to avoid touching the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// ReadLine prints "> " and reads a single line of input. The trailing
// newline is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
func (c *Console) ReadLine() (string, error) {
	if _, err := fmt.Fprint(c.out, "> "); err != nil {
		return "", err
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadSecret reads a line without echoing it, for PIN entry. When stdin is
// not a terminal (tests, piped input) it falls back to a plain line read.
func (c *Console) ReadSecret() (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return c.ReadLine()
	}

	if _, err := fmt.Fprint(c.out, "> "); err != nil {
		return "", err
	}
	secret, err := readPassword(fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}
