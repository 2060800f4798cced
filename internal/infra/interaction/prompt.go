// Where: internal/infra/interaction/prompt.go
// What: Input prompts using the huh library.
// Why: Ask for the output file and size when running interactively.
package interaction

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title, placeholder string, validate func(string) error, input *string) error {
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(input)
	if validate != nil {
		field.Validate(validate)
	}
	return field.Run()
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct{}

func (HuhPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	var input string
	if err := runInputPrompt(title, placeholder, validate, &input); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return input, nil
}
