//go:build linux || darwin

package input

import (
	"fmt"
	"os"

	"github.com/storyforge/runebook/internal/input/backend"
)

// Open puts f (normally os.Stdin) into raw mode and returns an Input
// backed by the terminal byte pipeline.
func Open(f *os.File, opts ...backend.TerminalOption) (*Input, error) {
	tty, err := backend.OpenTTY(f)
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	return New(backend.NewTerminal(tty, opts...)), nil
}
