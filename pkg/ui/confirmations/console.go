// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/themeup/pkg/errors"
)

// ConsoleDialog implements types.Prompter for console interaction
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog on stdin and stderr
func NewConsoleDialog() *ConsoleDialog {
	return NewDialog(os.Stdin, os.Stderr)
}

// NewDialog creates a dialog reading answers from in and writing prompts to out
func NewDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question
func (d *ConsoleDialog) Confirm(question string, defaultYes bool) (bool, error) {
	marker := "[y/N]"
	if defaultYes {
		marker = "[Y/n]"
	}
	_, _ = fmt.Fprintf(d.out, "%s %s: ", question, marker)

	answer, err := d.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// WaitForEnter blocks until a line is read
func (d *ConsoleDialog) WaitForEnter(message string) error {
	_, _ = fmt.Fprintf(d.out, "%s ", message)
	_, err := d.readLine()
	return err
}

func (d *ConsoleDialog) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	if err != nil {
		// a final line without newline still counts as an answer
		if stderrors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", errors.Wrap(err, errors.ErrInputClosed, "failed to read user input")
	}
	return strings.TrimSpace(line), nil
}
