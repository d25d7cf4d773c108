package document

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/backmassage/coursegen/internal/outline"
)

// Emitter renders requests and persists them through an afero filesystem.
type Emitter struct {
	fs     afero.Fs
	dryRun bool
}

// NewEmitter returns an Emitter writing to fs. With dryRun set, pages are
// rendered but never written.
func NewEmitter(fs afero.Fs, dryRun bool) *Emitter {
	return &Emitter{fs: fs, dryRun: dryRun}
}

// Emit renders req and writes it to req.Path(), replacing any existing file.
// The target folder must already exist.
func (e *Emitter) Emit(req outline.Request) error {
	data, err := Render(req.SectionLabel, req.LectureLabel)
	if err != nil {
		return err
	}
	if e.dryRun {
		return nil
	}
	path := req.Path()
	if err := afero.WriteFile(e.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
