package renderer

import (
	"bytes"
	"io"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// cellEscaper makes text fit in a single markdown table cell.
var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " / ", "\n", " / ")

func escapeCell(s string) string { return cellEscaper.Replace(s) }
