// Package terminal prompts for vendor credentials that are missing from the configuration.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNonInteractive is returned when a secret is needed but stdin is not a terminal.
var ErrNonInteractive = errors.New("cannot read password: non-interactive terminal")

// Adapter handles secure password input from terminal.
type Adapter struct {
	stdin  io.Reader
	stderr io.Writer
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	return &Adapter{
		stdin:  stdin,
		stderr: stderr,
	}
}

// ReadPassword prompts on stderr and reads a password with echo disabled.
func (a *Adapter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if !a.IsInteractive() {
		return "", ErrNonInteractive
	}

	fmt.Fprint(a.stderr, prompt)

	file, _ := a.stdin.(*os.File)
	password, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(a.stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// IsInteractive returns true if the terminal is interactive.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
