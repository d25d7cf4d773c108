package outline

import (
	"regexp"
)

// Rule pairs a compiled pattern with a constructor. Rules are evaluated in
// order by [Classify]; first match wins. Patterns run against the trimmed
// line.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Extract func(matches []string) Line
}

// arrow matches the decorative glyphs course platforms put in front of
// "Play" buttons and lecture links, with an optional emoji variation selector.
const arrow = `[→➔➜➡▶►▸]\x{FE0F}?`

var (
	reNoiseLiteral = regexp.MustCompile(
		`^(Play|Start|Role Play|Preview|Lecture|Quiz)$`)

	reNoiseArrow = regexp.MustCompile(
		`^(` + arrow + `\s*)?(Play|Start)$`)

	reNoiseDuration = regexp.MustCompile(
		`(?i)^[0-9]+\s*(min|mins|hr|hrs)$`)

	reSection = regexp.MustCompile(
		`^([0-9]{2})\s*-\s*(.+)$`)

	reLecture = regexp.MustCompile(
		`^(` + arrow + `\s*)?([0-9]+)\.\s*(.*)$`)

	reLectureBare = regexp.MustCompile(
		`^([0-9]+)\s+(.+)$`)

	reRolePlay = regexp.MustCompile(
		`(?i)^Role\s*Play\s*([0-9]+)\s*:\s*(.+)$`)
)

// Rules is the ordered classification table. The section rule must stay
// ahead of the lecture rules: "01 - Intro" would otherwise be read as a
// bare-numbered lecture.
var Rules = []Rule{
	{"noise-literal", reNoiseLiteral, extractNoise},
	{"noise-arrow", reNoiseArrow, extractNoise},
	{"noise-duration", reNoiseDuration, extractNoise},
	{"section", reSection, extractSection},
	{"lecture", reLecture, extractLecture},
	{"lecture-bare", reLectureBare, extractLectureBare},
	{"role-play", reRolePlay, extractRolePlay},
}

func extractNoise(_ []string) Line {
	return Line{Kind: KindNoise}
}

func extractSection(m []string) Line {
	return Line{Kind: KindSection, Number: m[1], Title: m[2]}
}

func extractLecture(m []string) Line {
	return Line{Kind: KindLecture, Number: m[2], Title: m[3]}
}

func extractLectureBare(m []string) Line {
	return Line{Kind: KindLecture, Number: m[1], Title: m[2]}
}

func extractRolePlay(m []string) Line {
	return Line{
		Kind:   KindRolePlay,
		Number: m[1],
		Title:  "Role Play " + m[1] + " - " + m[2],
	}
}
