// Where: internal/usecase/generate/generate.go
// What: Blank tileset generation workflow.
// Why: Keep the write-and-report sequence independent from CLI parsing.
package generate

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dustin/go-humanize"
	"github.com/poruru/tileblank/internal/domain/tileset"
	"github.com/poruru/tileblank/internal/infra/ui"
	"github.com/rs/zerolog"
)

var errWriterNotConfigured = errors.New("generate: file writer is not configured")

// WriteError reports a failure to create or write the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Error writing '%s': %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Result describes a written tileset file.
type Result struct {
	Filename string
	Size     int64
	Fallback bool
}

// Workflow writes one blank tileset file and reports the outcome.
type Workflow struct {
	Write         func(path string, size int64, perm fs.FileMode) error
	Perm          fs.FileMode
	UserInterface ui.UserInterface
	Logger        zerolog.Logger
}

// NewWorkflow constructs a Workflow.
func NewWorkflow(
	write func(path string, size int64, perm fs.FileMode) error,
	perm fs.FileMode,
	ui ui.UserInterface,
	logger zerolog.Logger,
) Workflow {
	return Workflow{
		Write:         write,
		Perm:          perm,
		UserInterface: ui,
		Logger:        logger,
	}
}

// Run validates req, writes the file and prints a confirmation.
// Write failures come back as *WriteError and are not printed here.
func (w Workflow) Run(req tileset.GenerationRequest) (Result, error) {
	if w.Write == nil {
		return Result{}, errWriterNotConfigured
	}
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	w.Logger.Debug().
		Str("file", req.Filename).
		Int64("size", req.Size).
		Bool("fallback", req.Fallback).
		Msg("writing blank tileset")

	if err := w.Write(req.Filename, req.Size, w.Perm); err != nil {
		w.Logger.Debug().Err(err).Str("file", req.Filename).Msg("write failed")
		return Result{}, &WriteError{Path: req.Filename, Err: err}
	}

	result := Result{Filename: req.Filename, Size: req.Size, Fallback: req.Fallback}
	if w.UserInterface != nil {
		w.UserInterface.Success(successMessage(result))
	}
	return result, nil
}

func successMessage(r Result) string {
	return fmt.Sprintf(
		"Empty binary file written to: '%s' (%d bytes, %s)",
		r.Filename,
		r.Size,
		humanize.IBytes(uint64(r.Size)),
	)
}
