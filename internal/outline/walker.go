package outline

import (
	"context"
	"fmt"
	"strconv"

	"github.com/backmassage/coursegen/internal/naming"
)

// FolderResolver maps a section to its output folder, reusing an existing
// folder for the same section number when there is one. created reports
// whether a new folder was (or, in a dry run, would be) made.
type FolderResolver interface {
	ResolveSection(number, title string) (path string, created bool, err error)
}

// SectionContext is the state of the section currently being filled.
type SectionContext struct {
	Number  string // Two-digit section number from the header.
	Title   string // Sanitized header title.
	Folder  string // Resolved output folder.
	Counter int    // Lectures emitted so far in this section occurrence.
}

// Label returns the section label shown on every page of the section.
func (s SectionContext) Label() string {
	if s.Title == "" {
		return "Section " + s.Number
	}
	return "Section " + s.Number + " - " + s.Title
}

// State is threaded through [Walker.Step]. The zero value is the initial
// state: no section seen yet.
type State struct {
	InSection bool
	Section   SectionContext
	Tally     Tally
}

// Walker folds classified lines into generation requests.
type Walker struct {
	resolver FolderResolver

	// Trace, when set, is called for every line before it is applied.
	Trace func(raw string, l Line)
}

// NewWalker returns a Walker that resolves section folders through r.
func NewWalker(r FolderResolver) *Walker {
	return &Walker{resolver: r}
}

// Step applies one classified line to st and returns the next state plus the
// request to emit, if any. The only error source is folder resolution.
//
// Every section header replaces the context wholesale, so a header that
// repeats an earlier section number restarts that section's numbering at 1
// (while reusing its folder).
func (w *Walker) Step(st State, l Line) (State, *Request, error) {
	st.Tally.Lines++

	switch {
	case l.Kind == KindSection:
		title := naming.Sanitize(l.Title)
		folder, created, err := w.resolver.ResolveSection(l.Number, title)
		if err != nil {
			return st, nil, fmt.Errorf("section %s: %w", l.Number, err)
		}
		if created {
			st.Tally.FoldersCreated++
		} else {
			st.Tally.FoldersReused++
		}
		st.Tally.Sections++
		st.InSection = true
		st.Section = SectionContext{Number: l.Number, Title: title, Folder: folder}
		return st, nil, nil

	case l.IsEntry():
		if !st.InSection {
			st.Tally.Orphans++
			return st, nil, nil
		}
		title := naming.Sanitize(l.Title)
		if title == "" {
			st.Tally.EmptyTitles++
			return st, nil, nil
		}
		st.Section.Counter++
		st.Tally.Lectures++
		label := strconv.Itoa(st.Section.Counter) + ". " + title
		return st, &Request{
			Folder:       st.Section.Folder,
			FileName:     label + ".html",
			SectionLabel: st.Section.Label(),
			LectureLabel: label,
		}, nil

	default:
		st.Tally.Ignored++
		return st, nil, nil
	}
}

// Walk classifies lines in order and folds them through [Walker.Step],
// handing each request to emit before moving on. It stops at the first
// resolver or emit error, or when ctx is cancelled; work already done is
// left in place.
func (w *Walker) Walk(ctx context.Context, lines []string, emit func(Request) error) (Tally, error) {
	var st State
	for _, raw := range lines {
		if err := ctx.Err(); err != nil {
			return st.Tally, err
		}
		l := Classify(raw)
		if w.Trace != nil {
			w.Trace(raw, l)
		}

		next, req, err := w.Step(st, l)
		st = next
		if err != nil {
			return st.Tally, err
		}
		if req == nil {
			continue
		}
		if err := emit(*req); err != nil {
			return st.Tally, err
		}
	}
	return st.Tally, nil
}
