package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crossref"
	"github.com/etnz/crossref/renderer"
	"github.com/google/subcommands"
)

type notesCmd struct{}

func (*notesCmd) Name() string     { return "notes" }
func (*notesCmd) Synopsis() string { return "list the stored notes" }
func (*notesCmd) Usage() string {
	return `xref notes

  Lists every stored note by stock and table.
`
}

func (c *notesCmd) SetFlags(f *flag.FlagSet) {}

func (c *notesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := setup()
	if a == nil {
		return status
	}
	md, err := c.run(a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(a.stdout, md)
	return subcommands.ExitSuccess
}

func (c *notesCmd) run(a *app) (string, error) {
	notes, err := a.openNotes()
	if err != nil {
		return "", err
	}
	defer notes.Close()

	keys, err := notes.Keys()
	if err != nil {
		return "", err
	}
	all := make(map[string]string, len(keys))
	for _, k := range keys {
		v, _, err := notes.Get(k)
		if err != nil {
			return "", err
		}
		all[k] = v
	}
	return renderer.NotesMarkdown(crossref.KeyPrefix(a.cfg.Layout.KeyPrefix), all), nil
}
