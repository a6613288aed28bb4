package morphdict

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
)

// Source provides the named resources of a compiled dictionary.
//
// Load calls fn with the full content of the resource. The slice is only
// valid for the duration of the call. A missing resource yields an error
// matching fs.ErrNotExist and fn is not called.
type Source interface {
	Load(name string, fn func(data []byte) error) error
}

// DirSource reads resources from a dictionary directory on disk. Files are
// memory-mapped read-only and unmapped once fn returns.
type DirSource string

// Load implements Source.
func (d DirSource) Load(name string, fn func(data []byte) error) error {
	f, err := os.Open(filepath.Join(string(d), name))
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}
	if st.IsDir() {
		return fmt.Errorf("%s: is a directory: %w", name, fs.ErrNotExist)
	}
	// zero-length files cannot be mapped
	if st.Size() == 0 {
		return fn(nil)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mmap %s: %w", name, err)
	}
	fnErr := fn(m)
	if err := m.Unmap(); err != nil && fnErr == nil {
		return fmt.Errorf("unmap %s: %w", name, err)
	}
	return fnErr
}

// FSSource serves resources from any fs.FS, such as an embed.FS.
type FSSource struct {
	FS fs.FS
}

// Load implements Source.
func (s FSSource) Load(name string, fn func(data []byte) error) error {
	data, err := fs.ReadFile(s.FS, name)
	if err != nil {
		return err
	}
	return fn(data)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
