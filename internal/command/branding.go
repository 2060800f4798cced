// Where: internal/command/branding.go
// What: CLI naming for usage text.
// Why: Keep user-facing command names consistent when the binary is renamed.
package command

import (
	"os"
	"strings"

	"github.com/poruru/tileblank/internal/constants"
	"github.com/poruru/tileblank/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv(constants.EnvCLICmd))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	if name == "" {
		name = "tileblank"
	}
	return name
}
