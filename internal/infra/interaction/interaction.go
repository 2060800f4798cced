// Where: internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Keep terminal handling out of command handlers.
package interaction

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Prompter asks the user for free-form input.
type Prompter interface {
	Input(title, placeholder string, validate func(string) error) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
