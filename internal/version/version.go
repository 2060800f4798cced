// Where: internal/version/version.go
// What: Build identification for --version.
// Why: Installed binaries report their module tag; source builds fall back to the commit.
package version

import (
	"runtime/debug"

	"github.com/poruru/tileblank/internal/meta"
)

const unknown = "dev"

var readBuildInfo = debug.ReadBuildInfo

// Build describes where the running binary came from.
type Build struct {
	Module   string // module version from `go install pkg@vX`, empty for local builds
	Revision string // short commit hash
	Dirty    bool
}

// Label picks the most specific identifier available.
func (b Build) Label() string {
	if b.Module != "" {
		return b.Module
	}
	if b.Revision == "" {
		return unknown
	}
	if b.Dirty {
		return b.Revision + " (dirty)"
	}
	return b.Revision
}

// Current reads the build info embedded by the Go toolchain.
func Current() Build {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return Build{}
	}

	var b Build
	if v := info.Main.Version; v != "" && v != "(devel)" {
		b.Module = v
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			b.Revision = setting.Value
			if len(b.Revision) > 7 {
				b.Revision = b.Revision[:7]
			}
		case "vcs.modified":
			b.Dirty = setting.Value == "true"
		}
	}
	return b
}

// String returns the line printed by --version.
func String() string {
	return meta.AppName + " " + Current().Label()
}
