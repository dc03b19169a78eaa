package cmd

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/crossref"
	"github.com/etnz/crossref/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../page/testdata/portfolio.html"

func testApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Notes.Path = filepath.Join(t.TempDir(), "notes.json")
	var out bytes.Buffer
	return &app{cfg: cfg, log: zerolog.Nop(), stdout: &out}, &out
}

func setNote(t *testing.T, a *app, symbol string, ctx crossref.Context, text string) {
	t.Helper()
	require.NoError(t, (&noteCmd{}).run(a, symbol, ctx, &text))
}

func getNote(t *testing.T, a *app, symbol string, ctx crossref.Context) string {
	t.Helper()
	buf := a.stdout.(*bytes.Buffer)
	buf.Reset()
	require.NoError(t, (&noteCmd{}).run(a, symbol, ctx, nil))
	return strings.TrimSuffix(buf.String(), "\n")
}

func TestNoteCmd(t *testing.T) {
	a, _ := testApp(t)
	assert.Equal(t, "", getNote(t, a, "ABC", crossref.ContextLong))

	setNote(t, a, "ABC", crossref.ContextLong, "hold until 0.60")
	assert.Equal(t, "hold until 0.60", getNote(t, a, "ABC", crossref.ContextLong))
	assert.Equal(t, "", getNote(t, a, "ABC", crossref.ContextOrders), "notes are per context")

	setNote(t, a, "ABC", crossref.ContextLong, "")
	assert.Equal(t, "", getNote(t, a, "ABC", crossref.ContextLong))
}

func TestAugmentCmd(t *testing.T) {
	a, _ := testApp(t)
	setNote(t, a, "ABC", crossref.ContextLong, "target 0.60")
	setNote(t, a, "SOLD", crossref.ContextLong, "gone")

	out := filepath.Join(t.TempDir(), "augmented.html")
	c := &augmentCmd{output: out}
	require.NoError(t, c.run(a, fixture))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(content)
	assert.Contains(t, html, "td.custom-orders-increase-portfolio {")
	assert.Contains(t, html, `data-note-key="portfolioCustomization:ABC:long"`)
	assert.Contains(t, html, crossref.TagNeedsReview)

	assert.Equal(t, "target 0.60", getNote(t, a, "ABC", crossref.ContextLong))
	assert.Equal(t, "", getNote(t, a, "SOLD", crossref.ContextLong), "stale note is swept")
}

func TestAugmentCmd_KeepStale(t *testing.T) {
	a, _ := testApp(t)
	setNote(t, a, "SOLD", crossref.ContextLong, "gone")

	c := &augmentCmd{output: "-", keepStale: true}
	require.NoError(t, c.run(a, fixture))
	assert.Equal(t, "gone", getNote(t, a, "SOLD", crossref.ContextLong))
}

func TestAugmentCmd_NotPortfolio(t *testing.T) {
	a, stdout := testApp(t)
	page := filepath.Join(t.TempDir(), "edit.html")
	require.NoError(t, os.WriteFile(page, []byte("<html><head><title>Edit Order</title></head><body></body></html>"), 0644))
	setNote(t, a, "ABC", crossref.ContextLong, "kept")

	stdout.Reset()
	require.NoError(t, (&augmentCmd{output: "-"}).run(a, page))
	assert.Contains(t, stdout.String(), "Edit Order")
	assert.NotContains(t, stdout.String(), "<style")
	assert.Equal(t, "kept", getNote(t, a, "ABC", crossref.ContextLong), "nothing is swept")
}

func TestAugmentCmd_Failure(t *testing.T) {
	a, _ := testApp(t)
	page := filepath.Join(t.TempDir(), "broken.html")
	require.NoError(t, os.WriteFile(page, []byte("<html><head><title>My Portfolio</title></head><body></body></html>"), 0644))
	out := filepath.Join(t.TempDir(), "out.html")

	err := (&augmentCmd{output: out}).run(a, page)
	var failure *crossref.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "tables", failure.Stage)
	assert.ErrorIs(t, err, crossref.ErrStructure)
	assert.NoFileExists(t, out)
}

func TestSummaryCmd(t *testing.T) {
	a, _ := testApp(t)
	setNote(t, a, "SOLD", crossref.ContextLong, "gone")

	md, err := (&summaryCmd{}).run(a, fixture)
	require.NoError(t, err)
	assert.Contains(t, md, "# iPredict - My Portfolio")
	assert.Contains(t, md, "| ABC | 100 |  | $0.45 |  | needs-review |")
	assert.Contains(t, md, "* `portfolioCustomization:SOLD:long`")
	assert.Equal(t, "gone", getNote(t, a, "SOLD", crossref.ContextLong), "summary does not sweep")
}

func TestNotesCmd(t *testing.T) {
	a, _ := testApp(t)
	setNote(t, a, "XYZ", crossref.ContextShort, "cover")
	md, err := (&notesCmd{}).run(a)
	require.NoError(t, err)
	assert.Contains(t, md, "| XYZ | short | cover |")
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		assert.Contains(t, c.Sub, cmd.Command.Name())
	}
	flag.VisitAll(func(f *flag.Flag) {
		if strings.HasPrefix(f.Name, "test.") {
			return
		}
		assert.Contains(t, c.Flags, f.Name)
	})
}

// Markdown written to a file or a pipe is left as is.
func TestPrintMarkdown_NotTerminal(t *testing.T) {
	md := "# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"

	f, err := os.Create(filepath.Join(t.TempDir(), "out.md"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
	printMarkdown(f, md)
	content, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, md, string(content))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	assert.False(t, isTerminal(w))

	var buf bytes.Buffer
	printMarkdown(&buf, md)
	assert.Equal(t, md, buf.String())
}
