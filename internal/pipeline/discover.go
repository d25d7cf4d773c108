package pipeline

import (
	"fmt"

	"github.com/spf13/afero"
)

// ListSubdirectories returns the names of the directories directly under
// root, sorted lexicographically for deterministic folder reuse. Files and
// nested directories are ignored.
func ListSubdirectories(fs afero.Fs, root string) ([]string, error) {
	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", ErrFilesystem, root, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}
