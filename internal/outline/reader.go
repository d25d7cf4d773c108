package outline

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ReadLines loads the whole outline file and splits it into lines. CRLF line
// endings and a leading UTF-8 byte order mark are tolerated.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	return SplitLines(string(b)), nil
}

// SplitLines splits outline text into lines.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
