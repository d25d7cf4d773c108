package pipeline

import (
	"github.com/backmassage/coursegen/internal/outline"
)

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	outline.Tally
	FilesWritten int // Pages written (or, in a dry run, rendered).
}

// Dropped returns the number of entry lines that produced no page.
func (s *RunStats) Dropped() int {
	return s.Orphans + s.EmptyTitles
}
