// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the command name and env prefix in one place.
package meta

const (
	// Project Identity
	AppName   = "tileblank"
	Slug      = "tileblank"
	EnvPrefix = "TILEBLANK"

	// Output
	DefaultOutputFile = "tileset.bin"
	OutputFileMode    = 0o644
)
