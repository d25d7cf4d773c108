package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/backmassage/coursegen/internal/logging"
	"github.com/backmassage/coursegen/internal/naming"
	"github.com/backmassage/coursegen/internal/outline"
)

// ErrFilesystem wraps every folder or file I/O failure. Such failures abort
// the run; nothing already written is rolled back.
var ErrFilesystem = errors.New("filesystem failure")

// FolderResolver implements [outline.FolderResolver] on an afero filesystem.
// The root listing is re-read on every call so folders created earlier in
// the same run (or by another process) are found.
type FolderResolver struct {
	fs     afero.Fs
	root   string
	dryRun bool

	// planned records folders a dry run would have created, keyed by
	// section number, so repeated headers are reported as reuse.
	planned map[string]string
}

// NewFolderResolver returns a resolver creating section folders under root.
// With dryRun set, nothing is created.
func NewFolderResolver(fs afero.Fs, root string, dryRun bool) *FolderResolver {
	return &FolderResolver{
		fs:      fs,
		root:    root,
		dryRun:  dryRun,
		planned: make(map[string]string),
	}
}

// ResolveSection returns the folder for section number. An existing
// subdirectory named "<number> - ..." is reused as-is, whatever its title;
// otherwise "<number> - <title>" is created.
func (r *FolderResolver) ResolveSection(number, title string) (string, bool, error) {
	if p, ok := r.planned[number]; ok {
		return p, false, nil
	}

	exists, err := afero.DirExists(r.fs, r.root)
	if err != nil {
		return "", false, fmt.Errorf("%w: stat %s: %w", ErrFilesystem, r.root, err)
	}
	if exists {
		dirs, err := ListSubdirectories(r.fs, r.root)
		if err != nil {
			return "", false, err
		}
		for _, name := range dirs {
			if naming.MatchesSection(name, number) {
				return filepath.Join(r.root, name), false, nil
			}
		}
	}

	path := filepath.Join(r.root, naming.SectionFolderName(number, title))
	if r.dryRun {
		r.planned[number] = path
		return path, true, nil
	}
	if err := r.fs.MkdirAll(path, 0o755); err != nil {
		return "", false, fmt.Errorf("%w: create %s: %w", ErrFilesystem, path, err)
	}
	return path, true, nil
}

// loggingResolver reports folder decisions as they happen.
type loggingResolver struct {
	inner  outline.FolderResolver
	log    *logging.Logger
	dryRun bool
}

func (r loggingResolver) ResolveSection(number, title string) (string, bool, error) {
	path, created, err := r.inner.ResolveSection(number, title)
	if err != nil {
		return path, created, err
	}
	switch {
	case created && r.dryRun:
		r.log.Success("[DRY] Would create folder: %s", path)
	case created:
		r.log.Success("Created folder: %s", path)
	default:
		r.log.Info("Using existing folder: %s", path)
	}
	return path, created, nil
}
