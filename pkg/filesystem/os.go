package filesystem

import "github.com/spf13/afero"

// NewOS creates a filesystem backed by the real disk
func NewOS() *AferoFS {
	return NewAferoFS(afero.NewOsFs())
}
