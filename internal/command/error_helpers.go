// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure output and exit codes consistent.
package command

import (
	"io"

	"github.com/poruru/tileblank/internal/infra/ui"
)

// exitWithError prints an error message to errOut and returns exit code 1.
func exitWithError(errOut io.Writer, err error) int {
	return exitWithUI(legacyUI(nil, errOut, false), err)
}

func exitWithUI(ui ui.UserInterface, err error) int {
	ui.Error(err.Error())
	return 1
}
