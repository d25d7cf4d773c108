package naming

import (
	"regexp"
	"strings"
)

// quoteStripper deletes apostrophes, backticks and the typographic right
// single quote. It runs before the non-ASCII pass so that "Let’s" becomes
// "Lets" rather than "Let s".
var quoteStripper = strings.NewReplacer("'", "", "`", "", "\u2019", "")

var (
	// reNonPrintable matches runs outside printable ASCII (emoji, accents,
	// tabs, newlines, invalid UTF-8).
	reNonPrintable = regexp.MustCompile(`[^\x20-\x7E]+`)

	// reReservedChars matches characters rejected by Windows filesystems,
	// the strictest target.
	reReservedChars = regexp.MustCompile(`[\\/:*?"<>|]`)

	reSpaces = regexp.MustCompile(`\s+`)
)

// Sanitize converts an arbitrary title into a string safe to use as a single
// path component. The result may be empty. Sanitize is idempotent.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	s := quoteStripper.Replace(raw)
	s = reNonPrintable.ReplaceAllString(s, " ")
	s = reReservedChars.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	// A trailing dot is invalid as the last character of a Windows name.
	return strings.TrimRight(s, ". ")
}
