package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

// AferoFS reads files through an afero filesystem
type AferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs}
}

// ReadFile returns the file contents as text. A missing file yields an
// error matching fs.ErrNotExist.
func (a *AferoFS) ReadFile(name string) (string, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	data, err := afero.ReadFile(a.fs, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Exists reports whether name exists
func (a *AferoFS) Exists(name string) bool {
	ok, err := afero.Exists(a.fs, name)
	return err == nil && ok
}

// Afero exposes the underlying filesystem
func (a *AferoFS) Afero() afero.Fs {
	return a.fs
}
