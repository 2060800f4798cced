// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Configuration
	EnvConfigPath = "TILEBLANK_CONFIG"
	EnvLogLevel   = "LOG_LEVEL"

	// Console
	EnvNoEmoji = "NO_EMOJI"
	EnvTerm    = "TERM"
	EnvCLICmd  = "CLI_CMD"
)
