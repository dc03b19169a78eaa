package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crossref"
	"github.com/google/subcommands"
)

// noteCmd holds the flags for the 'note' subcommand.
type noteCmd struct {
	context string
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "read or write the note of a stock" }
func (*noteCmd) Usage() string {
	return `xref note [-c <context>] <symbol> [<text>]

  Without text, prints the note of the stock in the table of context.
  With text, replaces it; an empty text deletes the note.

  Contexts are long, short, orders and watch.
`
}

func (c *noteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.context, "c", string(crossref.ContextLong), "Table of the note: long, short, orders or watch")
}

func (c *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: note needs a symbol and an optional text")
		return subcommands.ExitUsageError
	}
	ctx, err := crossref.ParseContext(c.context)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := setup()
	if a == nil {
		return status
	}

	var text *string
	if f.NArg() == 2 {
		t := f.Arg(1)
		text = &t
	}
	if err := c.run(a, f.Arg(0), ctx, text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run prints the note of symbol, or commits text when not nil.
func (c *noteCmd) run(a *app, symbol string, ctx crossref.Context, text *string) error {
	notes, err := a.openNotes()
	if err != nil {
		return err
	}
	defer notes.Close()

	key := crossref.KeyPrefix(a.cfg.Layout.KeyPrefix).Key(symbol, ctx)
	if text == nil {
		current, err := crossref.ReadNote(notes, key)
		if err != nil {
			return err
		}
		if current != "" {
			fmt.Fprintln(a.stdout, current)
		}
		return nil
	}
	if err := crossref.CommitNote(notes, key, *text); err != nil {
		return err
	}
	if *text == "" {
		a.log.Info().Str("key", string(key)).Msg("note deleted")
	} else {
		a.log.Info().Str("key", string(key)).Msg("note saved")
	}
	return nil
}
