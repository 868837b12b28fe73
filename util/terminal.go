package util

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// TerminalReader abstracts non-echoed input so binders under test can
// substitute a fake terminal.
type TerminalReader interface {
	IsTerminal() bool
	ReadPassword() ([]byte, error)
}

// StdinTerminal reads secure input from the process stdin.
type StdinTerminal struct{}

func (StdinTerminal) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (StdinTerminal) ReadPassword() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// GetSecureString prompts on stdout and reads a non-echoed value from the
// reader. An empty value is an error.
func GetSecureString(prompt string, reader TerminalReader) (string, error) {
	if reader == nil {
		reader = StdinTerminal{}
	}
	if !reader.IsTerminal() {
		return "", fmt.Errorf("not attached to a terminal. don't know how to get input from stdin")
	}

	fmt.Print(prompt)
	bytes, err := reader.ReadPassword()
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(bytes) == 0 {
		return "", fmt.Errorf("empty input is invalid")
	}

	return string(bytes), nil
}
