// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction.
package command

import (
	"io"

	"github.com/poruru/tileblank/internal/infra/ui"
)

func legacyUI(out, errOut io.Writer, emojiEnabled bool) ui.UserInterface {
	if out == nil {
		out = io.Discard
	}
	return ui.NewWithEmoji(out, errOut, emojiEnabled)
}
