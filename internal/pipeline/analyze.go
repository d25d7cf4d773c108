package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/afero"

	"github.com/backmassage/coursegen/internal/check"
	"github.com/backmassage/coursegen/internal/config"
	"github.com/backmassage/coursegen/internal/logging"
	"github.com/backmassage/coursegen/internal/outline"
	"github.com/backmassage/coursegen/internal/term"
)

// Section flags shown in the analysis table.
const (
	flagNone    = ""
	flagSuspect = "suspect" // Unrecognized lines or a repeated header.
	flagEmpty   = "empty"   // Header with no lectures under it.
)

// SectionRow summarizes one section header occurrence in the outline.
type SectionRow struct {
	Number       string `yaml:"number" json:"number"`
	Title        string `yaml:"title" json:"title"`
	Folder       string `yaml:"folder" json:"folder"`
	Lectures     int    `yaml:"lectures" json:"lectures"`
	Unrecognized int    `yaml:"unrecognized" json:"unrecognized"`
	Repeated     bool   `yaml:"repeated" json:"repeated"` // Number already seen earlier.
}

func (r SectionRow) flag() string {
	if r.Lectures == 0 {
		return flagEmpty
	}
	if r.Unrecognized > 0 || r.Repeated {
		return flagSuspect
	}
	return flagNone
}

// Analysis is the per-section breakdown of an outline.
type Analysis struct {
	Sections []SectionRow `yaml:"sections" json:"sections"`
	// Unrecognized lines before the first section header.
	Preamble int           `yaml:"preamble_unrecognized" json:"preamble_unrecognized"`
	Tally    outline.Tally `yaml:"tally" json:"tally"`
}

// Analyze steps through the outline without touching the filesystem and
// groups lectures and unrecognized lines by the section header they fall
// under. It is meant to catch outline mistakes before generating.
func Analyze(ctx context.Context, cfg *config.Config, fs afero.Fs) (Analysis, error) {
	var a Analysis

	if err := check.RequireOutline(fs, cfg.Outline); err != nil {
		return a, err
	}
	lines, err := outline.ReadLines(fs, cfg.Outline)
	if err != nil {
		return a, err
	}

	walker := outline.NewWalker(NewFolderResolver(fs, cfg.OutputDir, true))
	seen := make(map[string]bool)
	var st outline.State

	for _, raw := range lines {
		if err := ctx.Err(); err != nil {
			return a, err
		}
		l := outline.Classify(raw)

		next, req, err := walker.Step(st, l)
		if err != nil {
			return a, err
		}
		st = next

		switch {
		case l.Kind == outline.KindSection:
			a.Sections = append(a.Sections, SectionRow{
				Number:   st.Section.Number,
				Title:    st.Section.Title,
				Folder:   filepath.Base(st.Section.Folder),
				Repeated: seen[st.Section.Number],
			})
			seen[st.Section.Number] = true
		case l.Kind == outline.KindUnrecognized && len(a.Sections) == 0:
			a.Preamble++
		case l.Kind == outline.KindUnrecognized:
			a.Sections[len(a.Sections)-1].Unrecognized++
		case req != nil:
			a.Sections[len(a.Sections)-1].Lectures++
		}
	}
	a.Tally = st.Tally
	return a, nil
}

// PrintAnalysisTable writes an aligned table of sections to w. Widths are
// measured in terminal cells.
func PrintAnalysisTable(w io.Writer, a Analysis) {
	numW := len("No.")
	titleW := len("Title")
	lecW := len("Lectures")
	unW := len("Unrecognized")

	for _, r := range a.Sections {
		numW = max(numW, runewidth.StringWidth(r.Number))
		titleW = max(titleW, runewidth.StringWidth(r.Title))
	}
	if titleW > 50 {
		titleW = 50
	}

	header := "  " + runewidth.FillRight("No.", numW) +
		"  " + runewidth.FillRight("Title", titleW) +
		"  " + runewidth.FillLeft("Lectures", lecW) +
		"  " + runewidth.FillLeft("Unrecognized", unW)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, "  "+strings.Repeat("-", runewidth.StringWidth(header)-2))

	for _, r := range a.Sections {
		title := runewidth.Truncate(r.Title, titleW, "...")

		// Pad first, then color, so escape bytes do not count as width.
		lecCell := colorPad(fmt.Sprintf("%*d", lecW, r.Lectures), lecW, classIf(r.Lectures == 0, flagEmpty))
		unCell := colorPad(fmt.Sprintf("%*d", unW, r.Unrecognized), unW, classIf(r.Unrecognized > 0, flagSuspect))

		fmt.Fprintf(w, "  %s  %s  %s  %s  %s\n",
			runewidth.FillRight(r.Number, numW),
			runewidth.FillRight(title, titleW),
			lecCell,
			unCell,
			formatFlag(r.flag()),
		)
	}
	fmt.Fprintln(w)
}

// LogAnalysisSummary reports the totals behind the table.
func LogAnalysisSummary(log *logging.Logger, a Analysis) {
	var suspects, empties int
	for _, r := range a.Sections {
		switch r.flag() {
		case flagEmpty:
			empties++
		case flagSuspect:
			suspects++
		}
	}

	log.Info("Analyzed %d lines: %d sections, %d lectures", a.Tally.Lines, a.Tally.Sections, a.Tally.Lectures)
	if a.Preamble > 0 || a.Tally.Orphans > 0 {
		log.Warn("  %d unrecognized line(s) and %d lecture(s) before the first section", a.Preamble, a.Tally.Orphans)
	}
	if a.Tally.EmptyTitles > 0 {
		log.Warn("  %d lecture(s) with no usable title", a.Tally.EmptyTitles)
	}
	if suspects > 0 {
		log.Warn("  %d section(s) flagged [*]", suspects)
	}
	if empties > 0 {
		log.Error("  %d section(s) without lectures flagged [!]", empties)
	}
	if suspects == 0 && empties == 0 {
		log.Success("  No suspicious sections")
	}
}

func classIf(cond bool, class string) string {
	if cond {
		return class
	}
	return flagNone
}

func formatFlag(flag string) string {
	switch flag {
	case flagEmpty:
		return term.Red.Sprint("[!]")
	case flagSuspect:
		return term.Yellow.Sprint("[*]")
	default:
		return ""
	}
}

// colorPad pads a plain string to width, then wraps it in color.
func colorPad(s string, width int, class string) string {
	padded := runewidth.FillRight(s, width)
	switch class {
	case flagEmpty:
		return term.Red.Sprint(padded)
	case flagSuspect:
		return term.Yellow.Sprint(padded)
	default:
		return padded
	}
}
