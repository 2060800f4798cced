// Where: cmd/tileblank/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/tileblank/internal/command"
	"github.com/poruru/tileblank/internal/infra/config"
	"github.com/poruru/tileblank/internal/infra/fileops"
	"github.com/poruru/tileblank/internal/infra/interaction"
)

var (
	stdout = os.Stdout
	stderr = os.Stderr
	stdin  = os.Stdin
)

// buildDependencies constructs the runtime dependencies required by the CLI.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:      stdout,
		ErrOut:   stderr,
		In:       stdin,
		Prompter: interaction.HuhPrompter{},
		Generate: command.GenerateDeps{
			Write:       fileops.WriteZeros,
			LoadProfile: config.LoadProfile,
		},
	}
}
