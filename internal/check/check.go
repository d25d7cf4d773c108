// Package check provides input/output diagnostics (the check command) and
// pre-run validation (RequireOutline, RequireWritable) for the outline file
// and the output root.
package check

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/backmassage/coursegen/internal/config"
	"github.com/backmassage/coursegen/internal/outline"
)

// Sentinel errors returned by the Require* helpers.
var (
	ErrOutlineNotFound   = errors.New("outline file not found")
	ErrOutlineIsDir      = errors.New("outline path is a directory")
	ErrOutputNotWritable = errors.New("output directory not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the check flow: outline presence, output root writability,
// and per-kind classification totals. It reports every problem it finds
// rather than stopping at the first, and returns false if any was fatal.
func RunCheck(cfg *config.Config, fs afero.Fs, log Logger) bool {
	log.Info("=== Check ===")

	ok := checkOutline(cfg, fs, log)
	if !checkOutput(cfg, fs, log) {
		ok = false
	}
	return ok
}

// checkOutline verifies the outline is readable and logs how its lines classify.
func checkOutline(cfg *config.Config, fs afero.Fs, log Logger) bool {
	if err := RequireOutline(fs, cfg.Outline); err != nil {
		log.Error("%v", err)
		return false
	}
	lines, err := outline.ReadLines(fs, cfg.Outline)
	if err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Outline: %s (%d lines)", cfg.Outline, len(lines))

	counts := ClassifyCounts(lines)
	for _, k := range []outline.Kind{
		outline.KindSection,
		outline.KindLecture,
		outline.KindRolePlay,
		outline.KindNoise,
		outline.KindUnrecognized,
	} {
		log.Info("  %-13s %d", k.String()+":", counts[k])
	}
	if counts[outline.KindSection] == 0 {
		log.Warn("No section headers found; every lecture would be dropped")
	}
	for _, raw := range lines {
		if l := outline.Classify(raw); l.Kind == outline.KindUnrecognized {
			log.Debug(cfg.Verbose, "  unrecognized: %q", raw)
		}
	}
	return true
}

// checkOutput verifies the output root exists (or can be created) and
// accepts new files.
func checkOutput(cfg *config.Config, fs afero.Fs, log Logger) bool {
	exists, err := afero.DirExists(fs, cfg.OutputDir)
	if err != nil {
		log.Error("Cannot stat output root %s: %v", cfg.OutputDir, err)
		return false
	}
	if !exists {
		log.Warn("Output root %s does not exist yet; it will be created", cfg.OutputDir)
		return true
	}
	if err := RequireWritable(fs, cfg.OutputDir); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Output root: %s (writable)", cfg.OutputDir)
	return true
}

// ClassifyCounts tallies lines by kind.
func ClassifyCounts(lines []string) map[outline.Kind]int {
	counts := make(map[outline.Kind]int)
	for _, raw := range lines {
		counts[outline.Classify(raw).Kind]++
	}
	return counts
}

// RequireOutline returns ErrOutlineNotFound (wrapped with the path) when the
// outline does not exist, and ErrOutlineIsDir when it names a directory.
func RequireOutline(fs afero.Fs, path string) error {
	fi, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutlineNotFound, path)
	}
	if fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutlineIsDir, path)
	}
	return nil
}

// RequireWritable probes dir by creating and removing a temporary file.
func RequireWritable(fs afero.Fs, dir string) error {
	f, err := afero.TempFile(fs, dir, ".coursegen-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputNotWritable, dir, err)
	}
	name := f.Name()
	_ = f.Close()
	if err := fs.Remove(name); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputNotWritable, dir, err)
	}
	return nil
}
