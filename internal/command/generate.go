// Where: internal/command/generate.go
// What: Input resolution and execution for blank tileset generation.
// Why: Merge arguments, flags, profile and prompts before calling the workflow.
package command

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/poruru/tileblank/internal/constants"
	"github.com/poruru/tileblank/internal/domain/tileset"
	"github.com/poruru/tileblank/internal/infra/config"
	"github.com/poruru/tileblank/internal/infra/fileops"
	"github.com/poruru/tileblank/internal/infra/interaction"
	"github.com/poruru/tileblank/internal/infra/logx"
	"github.com/poruru/tileblank/internal/meta"
	"github.com/poruru/tileblank/internal/usecase/generate"
	"github.com/rs/zerolog"
)

var errInteractiveRequiresTTY = errors.New("interactive mode requires a terminal")

func runGenerate(cli CLI, deps Dependencies) int {
	emojiEnabled, err := resolveEmojiEnabled(deps.Out, cli.Emoji, cli.NoEmoji)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	ui := legacyUI(deps.Out, deps.ErrOut, emojiEnabled)
	logger := logx.New(deps.ErrOut, resolveLogLevel(cli.LogLevel))

	req, err := resolveGenerationRequest(cli, deps, logger)
	if err != nil {
		return exitWithUI(ui, err)
	}

	workflow := generate.NewWorkflow(deps.Generate.Write, meta.OutputFileMode, ui, logger)
	if _, err := workflow.Run(req); err != nil {
		return exitWithUI(ui, err)
	}
	return 0
}

func resolveLogLevel(flag string) string {
	if level := strings.TrimSpace(flag); level != "" {
		return level
	}
	if level := strings.TrimSpace(os.Getenv(constants.EnvLogLevel)); level != "" {
		return level
	}
	return logx.DefaultLevel
}

// resolveGenerationRequest applies precedence:
// positional args > flags > profile > built-in defaults.
func resolveGenerationRequest(cli CLI, deps Dependencies, logger zerolog.Logger) (tileset.GenerationRequest, error) {
	profile := config.Profile{}
	if path := config.ResolveProfilePath(cli.Config); path != "" {
		loaded, err := deps.Generate.LoadProfile(path)
		if err != nil {
			return tileset.GenerationRequest{}, fmt.Errorf("load profile %s: %w", path, err)
		}
		profile = loaded
		logger.Debug().Str("profile", path).Msg("loaded profile")
	}

	defaults := tileset.DefaultDefaults()
	if profile.Filename != "" {
		defaults.Filename = profile.Filename
	}
	if profile.Banks > 0 {
		defaults.Banks = profile.Banks
	}
	if cli.Banks < 0 {
		return tileset.GenerationRequest{}, fmt.Errorf("--banks must be at least 1, got %d", cli.Banks)
	}
	if cli.Banks > 0 {
		defaults.Banks = cli.Banks
	}
	strict := cli.Strict || profile.Strict

	filename := cli.Filename
	rawSize := cli.Size
	if rawSize == "" && profile.Size != nil && cli.Banks == 0 {
		rawSize = strconv.FormatInt(*profile.Size, 10)
	}

	if cli.Interactive {
		var err error
		filename, rawSize, err = promptMissing(deps, filename, rawSize, defaults, strict)
		if err != nil {
			return tileset.GenerationRequest{}, err
		}
	}

	req, err := tileset.NewRequest(filename, rawSize, defaults, strict)
	if err != nil {
		return tileset.GenerationRequest{}, err
	}
	if req.Fallback && strings.TrimSpace(rawSize) != "" {
		logger.Debug().Str("size", rawSize).Int64("default", req.Size).Msg("size argument is not a byte count; using default")
	}
	if fileops.FileExists(req.Filename) {
		logger.Debug().Str("file", req.Filename).Msg("overwriting existing file")
	}
	return req, nil
}

func promptMissing(
	deps Dependencies,
	filename string,
	rawSize string,
	defaults tileset.Defaults,
	strict bool,
) (string, string, error) {
	if !interaction.IsTerminal(deps.In) {
		return "", "", errInteractiveRequiresTTY
	}

	if strings.TrimSpace(filename) == "" {
		answer, err := deps.Prompter.Input("Output file", defaults.Filename, nil)
		if err != nil {
			return "", "", err
		}
		filename = strings.TrimSpace(answer)
	}

	if strings.TrimSpace(rawSize) == "" {
		validate := func(value string) error {
			if !strict || strings.TrimSpace(value) == "" {
				return nil
			}
			if _, ok := tileset.ParseSizeStrict(value); !ok {
				return fmt.Errorf("%w: %q", tileset.ErrInvalidSize, value)
			}
			return nil
		}
		placeholder := strconv.FormatInt(defaults.Size(), 10)
		answer, err := deps.Prompter.Input("Size in bytes", placeholder, validate)
		if err != nil {
			return "", "", err
		}
		rawSize = strings.TrimSpace(answer)
	}
	return filename, rawSize, nil
}
