// Where: internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emoji prefixes and plain fallbacks across messages.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// UserInterface exposes the output helpers used by command handlers.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Error(msg string)
}

// Console writes regular messages to Out and errors to ErrOut.
type Console struct {
	Out          io.Writer
	ErrOut       io.Writer
	EmojiEnabled bool
}

// New creates a new Console with emoji enabled.
func New(out, errOut io.Writer) *Console {
	return NewWithEmoji(out, errOut, true)
}

// NewWithEmoji creates a new Console with explicit emoji settings.
func NewWithEmoji(out, errOut io.Writer, enabled bool) *Console {
	if errOut == nil {
		errOut = out
	}
	return &Console{Out: out, ErrOut: errOut, EmojiEnabled: enabled}
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("✅", ""), msg)
}

// Warn prints a warning message to the error stream.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.ErrOut, "%s%s\n", c.prefix("⚠️", "[warn] "), msg)
}

// Error prints an error message to the error stream.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.ErrOut, "%s%s\n", c.prefix("✗", ""), msg)
}

func (c *Console) prefix(emoji, plain string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return plain
	}
	return emoji + " "
}
