package renderer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/crossref"
)

// NotesMarkdown lists the stored notes by symbol. Keys that are not note
// keys of prefix are listed apart.
func NotesMarkdown(prefix crossref.KeyPrefix, notes map[string]string) string {
	keys := make([]string, 0, len(notes))
	for k := range notes {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString("# Notes\n\n")
	if len(keys) == 0 {
		b.WriteString("No notes.\n")
		return b.String()
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "| Symbol | Context | Note |\n")
		fmt.Fprintf(w, "|:---|:---|:---|\n")
		n := 0
		for _, k := range keys {
			symbol, ctx, ok := prefix.Parse(crossref.NoteKey(k))
			if !ok {
				continue
			}
			n++
			fmt.Fprintf(w, "| %s | %s | %s |\n", escapeCell(symbol), ctx, escapeCell(notes[k]))
		}
		return n > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Other Keys\n\n")
		n := 0
		for _, k := range keys {
			if _, _, ok := prefix.Parse(crossref.NoteKey(k)); ok {
				continue
			}
			n++
			fmt.Fprintf(w, "* `%s`\n", k)
		}
		return n > 0
	})
	return b.String()
}
