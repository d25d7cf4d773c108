package outline

import (
	"path/filepath"
)

// Kind tags a classified outline line.
type Kind int

const (
	KindNoise        Kind = iota // Player controls, durations, blank lines.
	KindSection                  // "05 - Title"
	KindLecture                  // "12. Title" or "12 Title"
	KindRolePlay                 // "Role Play 2: Title"
	KindUnrecognized             // Anything else; skipped.
)

func (k Kind) String() string {
	switch k {
	case KindNoise:
		return "noise"
	case KindSection:
		return "section"
	case KindLecture:
		return "lecture"
	case KindRolePlay:
		return "role-play"
	default:
		return "unrecognized"
	}
}

// Line is the classification of one outline line.
type Line struct {
	Kind Kind
	// Number is the two-digit section number, the lecture's outline ordinal,
	// or the role-play index. Lecture ordinals are informational only.
	Number string
	// Title is the unsanitized title. For role-play entries it is already
	// expanded to "Role Play <index> - <title>".
	Title string
	// Rule names the rule that matched (empty for unrecognized lines).
	Rule string
}

// IsEntry reports whether the line produces a note page when inside a section.
func (l Line) IsEntry() bool {
	return l.Kind == KindLecture || l.Kind == KindRolePlay
}

// Request is a fully resolved instruction to write one lecture page.
type Request struct {
	Folder       string `yaml:"folder" json:"folder"`
	FileName     string `yaml:"file_name" json:"file_name"`
	SectionLabel string `yaml:"section_label" json:"section_label"`
	LectureLabel string `yaml:"lecture_label" json:"lecture_label"`
}

// Path returns the destination file path.
func (r Request) Path() string {
	return filepath.Join(r.Folder, r.FileName)
}

// Tally counts what a walk saw and did.
type Tally struct {
	Lines          int `yaml:"lines" json:"lines"`
	Sections       int `yaml:"sections" json:"sections"`
	Lectures       int `yaml:"lectures" json:"lectures"`
	Ignored        int `yaml:"ignored" json:"ignored"`               // noise + unrecognized
	Orphans        int `yaml:"orphans" json:"orphans"`               // entries before any section header
	EmptyTitles    int `yaml:"empty_titles" json:"empty_titles"`     // entries whose title sanitized to ""
	FoldersCreated int `yaml:"folders_created" json:"folders_created"`
	FoldersReused  int `yaml:"folders_reused" json:"folders_reused"`
}
