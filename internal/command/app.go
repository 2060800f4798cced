// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher with explicit exit codes.
package command

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/tileblank/internal/infra/config"
	"github.com/poruru/tileblank/internal/infra/fileops"
	"github.com/poruru/tileblank/internal/infra/interaction"
	"github.com/poruru/tileblank/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields are replaced with production implementations by Run.
type Dependencies struct {
	Out      io.Writer
	ErrOut   io.Writer
	In       *os.File
	Prompter interaction.Prompter
	Generate GenerateDeps
}

// GenerateDeps holds collaborators for the generate command.
type GenerateDeps struct {
	Write       func(path string, size int64, perm fs.FileMode) error
	LoadProfile func(path string) (config.Profile, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Filename    string `arg:"" optional:"" name:"filename" help:"Output file path (default: tileset.bin)"`
	Size        string `arg:"" optional:"" name:"size" help:"Output size in bytes (default: 6144)"`
	Strict      bool   `help:"Fail on a malformed size instead of using the default"`
	Banks       int    `help:"Default size in 2048-byte character banks (default: 3, 0 keeps the default)"`
	Config      string `short:"c" help:"Path to a YAML profile with defaults"`
	EnvFile     string `name:"env-file" help:"Path to .env file"`
	Interactive bool   `short:"i" help:"Prompt for missing filename and size"`
	Emoji       bool   `name:"emoji" help:"Enable emoji output (default: auto)"`
	NoEmoji     bool   `name:"no-emoji" help:"Disable emoji output"`
	LogLevel    string `name:"log-level" help:"Diagnostic log level (debug/info/warn/error/none)"`
	Version     bool   `help:"Show version information"`
}

// Run is the main entry point for CLI command execution.
// It parses the arguments, writes the tileset file and returns 0 on
// success or 1 on any failure.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)

	cli := CLI{}
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Write a zero-filled binary file for use as blank tile graphics."),
		kong.Writers(deps.Out, deps.ErrOut),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	_, err = parser.Parse(guardDashPositionals(args))
	if exitCode >= 0 {
		// --help printed usage and asked to exit.
		return exitCode
	}
	if err != nil {
		return handleParseError(err, deps.ErrOut)
	}

	if cli.Version {
		legacyUI(deps.Out, deps.ErrOut, false).Info(version.String())
		return 0
	}

	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			legacyUI(deps.Out, deps.ErrOut, false).Warn(fmt.Sprintf("failed to load env file %s: %v", cli.EnvFile, err))
		}
	}

	return runGenerate(cli, deps)
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.HuhPrompter{}
	}
	if deps.Generate.Write == nil {
		deps.Generate.Write = fileops.WriteZeros
	}
	if deps.Generate.LoadProfile == nil {
		deps.Generate.LoadProfile = config.LoadProfile
	}
	return deps
}

// shortFlags lists the single-letter flags defined on CLI.
const shortFlags = "chi"

// guardDashPositionals moves dash-prefixed positionals behind "--" so kong
// does not parse them as flags. A negative number is always a positional;
// after the filename, any token that is not a known short flag (such as
// "-abc" or "-1.5") is taken as the size.
func guardDashPositionals(args []string) []string {
	head := make([]string, 0, len(args)+1)
	var tail []string
	separated := false
	positionals := 0
	expectValue := false

	for i, arg := range args {
		if expectValue {
			expectValue = false
			head = append(head, arg)
			continue
		}
		if arg == "--" {
			separated = true
			tail = append(tail, args[i+1:]...)
			break
		}
		if isFlagToken(arg, positionals) {
			head = append(head, arg)
			expectValue = flagTakesValue(arg)
			continue
		}
		positionals++
		if len(tail) > 0 || (len(arg) > 1 && arg[0] == '-') {
			tail = append(tail, arg)
		} else {
			head = append(head, arg)
		}
	}

	if !separated && len(tail) == 0 {
		return head
	}
	head = append(head, "--")
	return append(head, tail...)
}

func isFlagToken(arg string, positionals int) bool {
	switch {
	case len(arg) < 2 || arg[0] != '-':
		return false
	case strings.HasPrefix(arg, "--"):
		return true
	case isNegativeNumber(arg):
		return false
	case positionals == 0:
		return true
	}
	for _, r := range arg[1:] {
		if !strings.ContainsRune(shortFlags, r) {
			return false
		}
	}
	return true
}

func flagTakesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	switch arg {
	case "--banks", "--config", "--env-file", "--log-level":
		return true
	}
	return !strings.HasPrefix(arg, "--") && strings.HasSuffix(arg, "c")
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	for _, r := range arg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, errOut io.Writer) int {
	ui := legacyUI(errOut, errOut, false)
	cmd := cliName()
	msg := err.Error()
	switch {
	case strings.Contains(msg, "unexpected argument"):
		ui.Warn(fmt.Sprintf("%s takes at most two arguments: [filename] [size]", cmd))
	case strings.Contains(msg, "expected int value") && strings.Contains(msg, "--banks"):
		ui.Warn("`--banks` expects a whole number of 2048-byte banks.")
	default:
		ui.Warn(msg)
	}
	ui.Info(fmt.Sprintf("Usage: %s [filename] [size] [flags]", cmd))
	ui.Info(fmt.Sprintf("Try: %s --help", cmd))
	return 1
}
