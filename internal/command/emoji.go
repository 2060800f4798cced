// Where: internal/command/emoji.go
// What: Emoji output resolution.
// Why: Respect flags first, then NO_EMOJI/TERM, then TTY detection.
package command

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/poruru/tileblank/internal/constants"
	"github.com/poruru/tileblank/internal/infra/interaction"
)

func resolveEmojiEnabled(out io.Writer, emoji, noEmoji bool) (bool, error) {
	if emoji && noEmoji {
		return false, errors.New("--emoji and --no-emoji cannot be used together")
	}
	if emoji {
		return true, nil
	}
	if noEmoji {
		return false, nil
	}
	if strings.TrimSpace(os.Getenv(constants.EnvNoEmoji)) != "" {
		return false, nil
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv(constants.EnvTerm)))
	if term == "dumb" {
		return false, nil
	}
	if file, ok := out.(*os.File); ok {
		return interaction.IsTerminal(file), nil
	}
	return false, nil
}
