// Package display holds console presentation helpers: the banner, count
// formatting for summaries, and structured (yaml/json) command output.
package display

import (
	"fmt"
)

// FormatCount returns "1 file", "0 files", "3 folders": n followed by the
// singular noun when n is one and the plural otherwise.
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
