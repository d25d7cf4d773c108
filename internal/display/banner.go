package display

import (
	"fmt"
	"io"

	"github.com/backmassage/coursegen/internal/term"
)

const banner = `  ___ ___  _   _ _ __ ___  ___  __ _  ___ _ __
 / __/ _ \| | | | '__/ __|/ _ \/ _` + "`" + ` |/ _ \ '_ \
| (_| (_) | |_| | |  \__ \  __/ (_| |  __/ | | |
 \___\___/ \__,_|_|  |___/\___|\__, |\___|_| |_|
                               |___/
`

// PrintBanner writes the ASCII art banner to w, in magenta when colors are
// enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta.Sprint(banner))
	fmt.Fprintln(w)
}
