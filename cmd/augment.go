package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/crossref"
	"github.com/etnz/crossref/page"
	"github.com/google/subcommands"
)

// augmentCmd holds the flags for the 'augment' subcommand.
type augmentCmd struct {
	output    string
	keepStale bool
}

func (*augmentCmd) Name() string     { return "augment" }
func (*augmentCmd) Synopsis() string { return "add the cross-reference columns to a portfolio page" }
func (*augmentCmd) Usage() string {
	return `xref augment [-o <output>] [-keep-stale] <page.html>

  Reads a saved portfolio page, adds the derived columns and the notes to
  its tables, and writes the result. Use "-" to read from stdin.

  Stored notes of rows that are no longer on the page are deleted, unless
  -keep-stale is set. Pages that are not the portfolio page are written
  unchanged.
`
}

func (c *augmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "-", "Output file, \"-\" for stdout")
	f.BoolVar(&c.keepStale, "keep-stale", false, "Do not delete the notes of rows absent from the page")
}

func (c *augmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: augment needs exactly one page")
		return subcommands.ExitUsageError
	}
	a, status := setup()
	if a == nil {
		return status
	}
	if err := c.run(a, f.Arg(0)); err != nil {
		var failure *crossref.Failure
		if errors.As(err, &failure) {
			fmt.Fprintf(os.Stderr, "xref failed at: %v\n", failure)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *augmentCmd) run(a *app, input string) error {
	doc, err := loadPage(input)
	if err != nil {
		return err
	}

	if doc.IsPortfolio() {
		if err := c.augment(a, doc); err != nil {
			return err
		}
	} else {
		a.log.Warn().Str("title", doc.Title()).Msg("not the portfolio page, left unchanged")
	}

	return writeOutput(c.output, a.stdout, doc.Render)
}

func (c *augmentCmd) augment(a *app, doc *page.Document) error {
	notes, err := a.openNotes()
	if err != nil {
		return err
	}
	defer notes.Close()

	plan, err := reconcile(a, doc, notes)
	if err != nil {
		return err
	}
	if err := doc.InjectStyles(); err != nil {
		return &crossref.Failure{Stage: "styles", Err: err}
	}
	if err := doc.Apply(plan); err != nil {
		return &crossref.Failure{Stage: "apply", Err: err}
	}

	rows := 0
	for _, tp := range plan.Tables {
		rows += len(tp.Rows)
	}
	a.log.Info().Int("rows", rows).Int("notes", len(plan.Present)).Msg("page augmented")

	if c.keepStale {
		return nil
	}
	deleted, err := crossref.Sweep(notes, plan.Present)
	if err != nil {
		return fmt.Errorf("cannot delete stale notes: %w", err)
	}
	for _, k := range deleted {
		a.log.Info().Str("key", string(k)).Msg("stale note deleted")
	}
	return nil
}

// loadPage parses the page in file, or stdin for "-".
func loadPage(file string) (*page.Document, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("cannot open page: %w", err)
		}
		defer f.Close()
		r = f
	}
	return page.Load(r)
}

// reconcile plans the page changes.
func reconcile(a *app, doc *page.Document, notes crossref.Store) (*crossref.Plan, error) {
	tables, err := doc.Tables()
	if err != nil {
		return nil, &crossref.Failure{Stage: "tables", Err: err}
	}
	a.log.Debug().
		Int("orders", len(tables.Orders)).
		Int("long", len(tables.Long)).
		Int("short", len(tables.Short)).
		Int("watch", len(tables.Watch)).
		Msg("tables read")
	return crossref.Reconcile(tables, a.cfg.Layout, notes)
}

// writeOutput writes to file, or to stdout for "-". The file is replaced
// only once render succeeds.
func writeOutput(file string, stdout io.Writer, render func(io.Writer) error) error {
	if file == "" || file == "-" {
		return render(stdout)
	}
	f, err := os.CreateTemp(filepath.Dir(file), ".xref-*")
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", file, err)
	}
	defer os.Remove(f.Name())
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", file, err)
	}
	return os.Rename(f.Name(), file)
}
