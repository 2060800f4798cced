// Where: cmd/tileblank/main.go
// What: CLI entrypoint.
// Why: Run the generator with production dependencies and propagate its exit code.
package main

import (
	"os"

	"github.com/poruru/tileblank/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
