package naming

import (
	"regexp"
)

// SectionFolderName builds the on-disk folder name for a section:
//
//	<number> - <title>    (or just <number> when the title is empty)
//
// title is expected to be sanitized already.
func SectionFolderName(number, title string) string {
	if title == "" {
		return number
	}
	return number + " - " + title
}

// MatchesSection reports whether dirName is the folder of section number.
// Only the "<number> -" prefix is compared; the title suffix is ignored so a
// folder renamed by hand, or created from a differently worded header, is
// still reused. A bare "<number>" folder (untitled section) also matches.
func MatchesSection(dirName, number string) bool {
	if number == "" {
		return false
	}
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(number) + `(\s*-|$)`)
	return re.MatchString(dirName)
}
