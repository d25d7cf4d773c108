package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/backmassage/coursegen/internal/check"
	"github.com/backmassage/coursegen/internal/config"
	"github.com/backmassage/coursegen/internal/display"
	"github.com/backmassage/coursegen/internal/document"
	"github.com/backmassage/coursegen/internal/logging"
	"github.com/backmassage/coursegen/internal/outline"
)

// Run is the top-level batch entry point. It verifies the outline exists,
// reads it whole, walks it line by line resolving section folders and
// writing one notes page per lecture, and returns aggregate stats.
//
// A missing outline is reported before anything is created. Any filesystem
// failure stops the run; folders and pages already written stay in place.
func Run(ctx context.Context, cfg *config.Config, fs afero.Fs, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	if err := check.RequireOutline(fs, cfg.Outline); err != nil {
		log.Error("%v", err)
		return stats, err
	}
	lines, err := outline.ReadLines(fs, cfg.Outline)
	if err != nil {
		log.Error("%v", err)
		return stats, err
	}

	logBatchHeader(cfg, log, len(lines))

	if !cfg.DryRun {
		if err := ensureRoot(fs, cfg.OutputDir); err != nil {
			log.Error("%v", err)
			return stats, err
		}
	}

	resolver := loggingResolver{
		inner:  NewFolderResolver(fs, cfg.OutputDir, cfg.DryRun),
		log:    log,
		dryRun: cfg.DryRun,
	}
	emitter := document.NewEmitter(fs, cfg.DryRun)

	walker := outline.NewWalker(resolver)
	walker.Trace = func(raw string, l outline.Line) {
		log.Debug(cfg.Verbose, "%-12s %-14s %q", l.Kind, l.Rule, raw)
	}

	tally, err := walker.Walk(ctx, lines, func(req outline.Request) error {
		if err := emitter.Emit(req); err != nil {
			return fmt.Errorf("%w: %w", ErrFilesystem, err)
		}
		stats.FilesWritten++
		if cfg.DryRun {
			log.Success("[DRY] Would write: %s", req.Path())
		} else {
			log.Info("  -> %s", req.Path())
		}
		return nil
	})
	stats.Tally = tally

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn("Interrupted")
	case err != nil:
		log.Error("%v", err)
	}

	logSummary(cfg, log, &stats)
	return stats, err
}

// ensureRoot creates the output root when it does not exist yet.
func ensureRoot(fs afero.Fs, root string) error {
	exists, err := afero.DirExists(fs, root)
	if err != nil {
		return fmt.Errorf("%w: stat %s: %w", ErrFilesystem, root, err)
	}
	if exists {
		return nil
	}
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrFilesystem, root, err)
	}
	return nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, lineCount int) {
	log.Info("Outline: %s (%s)", cfg.Outline, display.FormatCount(lineCount, "line", "lines"))
	log.Info("Output root: %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN: nothing will be created or overwritten")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Summary:")
	if cfg.DryRun {
		log.Info("  Folders to create:   %d", stats.FoldersCreated)
		log.Info("  Folders reused:      %d", stats.FoldersReused)
		log.Info("  Files to write:      %d", stats.FilesWritten)
	} else {
		log.Success("  Folders created:     %d", stats.FoldersCreated)
		log.Info("  Folders reused:      %d", stats.FoldersReused)
		log.Success("  Files created:       %d", stats.FilesWritten)
	}
	log.Info("  Lines ignored:       %d", stats.Ignored)
	if n := stats.Dropped(); n > 0 {
		log.Warn("  Lectures dropped:    %s (%d outside a section, %d without a title)",
			display.FormatCount(n, "entry", "entries"), stats.Orphans, stats.EmptyTitles)
	}
	if stats.Lectures == 0 {
		log.Warn("No lectures found in %s", cfg.Outline)
	}
}
