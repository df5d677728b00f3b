package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"

	"cyan/internal/diag"
	"cyan/internal/source"
)

// maxPreviewWidth caps a rendered source line to a fixed terminal-friendly
// visual width, truncating wide runs rather than raw byte count.
const maxPreviewWidth = 100

// SourcePreview renders the source line a diagnostic's primary span falls
// on, followed by a caret line pointing at the span's start column. Wide
// runes (CJK, fullwidth forms) are width-normalized via golang.org/x/text
// before go-runewidth measures/truncates so the caret still lines up under
// variable-width terminal fonts.
func SourcePreview(w io.Writer, files *source.Files, d diag.Diagnostic) {
	line := files.Line(d.Primary.File, d.Primary.Start)
	if line == nil {
		return
	}
	normalized := width.Narrow.String(string(line))
	clipped := runewidth.Truncate(normalized, maxPreviewWidth, "...")
	fmt.Fprintln(w, clipped)

	lc := files.Resolve(d.Primary.File, d.Primary.Start)
	col := int(lc.Col) - 1
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(width.Narrow.String(string(line[:col])))
	if limit := runewidth.StringWidth(clipped); pad > limit {
		pad = limit
	}
	fmt.Fprintln(w, strings.Repeat(" ", pad)+"^")
}
