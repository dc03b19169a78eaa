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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the cross-reference of a portfolio page" }
func (*summaryCmd) Usage() string {
	return `xref summary <page.html>

  Displays the columns augment would add to each table, and the stored
  notes it would delete. Nothing is modified.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: summary needs exactly one page")
		return subcommands.ExitUsageError
	}
	a, status := setup()
	if a == nil {
		return status
	}
	md, err := c.run(a, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "xref failed at: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(a.stdout, md)
	return subcommands.ExitSuccess
}

func (c *summaryCmd) run(a *app, input string) (string, error) {
	doc, err := loadPage(input)
	if err != nil {
		return "", err
	}
	if !doc.IsPortfolio() {
		return "", fmt.Errorf("%q is not the portfolio page", doc.Title())
	}
	notes, err := a.openNotes()
	if err != nil {
		return "", err
	}
	defer notes.Close()

	plan, err := reconcile(a, doc, notes)
	if err != nil {
		return "", err
	}
	stale, err := crossref.Stale(notes, plan.Present)
	if err != nil {
		return "", err
	}
	keys := make([]string, len(stale))
	for i, k := range stale {
		keys[i] = string(k)
	}
	s := renderer.NewSummary(doc.Title(), plan, a.cfg.Layout.Currency, keys)
	return renderer.RenderSummary(s), nil
}
