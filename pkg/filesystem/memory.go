package filesystem

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// NewMemory creates an in-memory filesystem pre-loaded with files.
// Parent directories are created as needed.
func NewMemory(files map[string]string) (*AferoFS, error) {
	mem := afero.NewMemMapFs()
	for name, content := range files {
		if dir := filepath.Dir(name); dir != "." {
			if err := mem.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}
		if err := afero.WriteFile(mem, name, []byte(content), 0644); err != nil {
			return nil, err
		}
	}
	return NewAferoFS(mem), nil
}
