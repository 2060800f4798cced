// Where: internal/infra/fileops/file_ops.go
// What: Filesystem operations for writing blank tileset files.
// Why: Keep overwrite semantics (atomic, symlink, device) in one place.
package fileops

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"
)

// chunkSize matches one character-graphics bank.
const chunkSize = 0x800

var newAtomicWriter = atomicwriter.New

// WriteZeros writes size zero bytes to path, replacing whatever is there.
// Regular files are replaced atomically: the data goes to a temporary file
// in the same directory which is renamed over path only after every byte
// was written. Symlinks are followed to their target. Device files and
// dangling symlinks are truncated and written in place.
// The parent directory must already exist.
func WriteZeros(path string, size int64, perm fs.FileMode) error {
	if size < 0 {
		return fmt.Errorf("negative size %d", size)
	}

	info, err := os.Lstat(path)
	switch {
	case err != nil && os.IsNotExist(err):
		return writeZerosAtomic(path, size, perm)
	case err != nil:
		return err
	case info.Mode()&fs.ModeSymlink != 0:
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return writeZerosInPlace(path, size, perm)
		}
		return WriteZeros(resolved, size, perm)
	case info.Mode().IsRegular():
		return writeZerosAtomic(path, size, perm)
	default:
		return writeZerosInPlace(path, size, perm)
	}
}

func writeZerosAtomic(path string, size int64, perm fs.FileMode) (retErr error) {
	w, err := newAtomicWriter(path, perm)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()
	return copyZeros(w, size)
}

func writeZerosInPlace(path string, size int64, perm fs.FileMode) (retErr error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()
	return copyZeros(f, size)
}

func copyZeros(w io.Writer, size int64) error {
	written, err := io.CopyBuffer(w, io.LimitReader(zeroReader{}, size), make([]byte, chunkSize))
	if err != nil {
		return err
	}
	if written != size {
		return fmt.Errorf("short write: %d of %d bytes", written, size)
	}
	return nil
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func FileOrDirExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
