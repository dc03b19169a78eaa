// Package cmd implements the CLI application to augment a portfolio page.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/crossref/config"
	"github.com/etnz/crossref/logger"
	"github.com/etnz/crossref/store"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands, with their group.
var Commands = []struct {
	Command subcommands.Command
	Group   string
}{
	{&augmentCmd{}, "page"},
	{&summaryCmd{}, "page"},
	{&noteCmd{}, "notes"},
	{&notesCmd{}, "notes"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd.Command, cmd.Group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (default: config.toml in the user configuration directory)")
var notesPath = flag.String("notes", "", "Path to the notes store, overrides the configuration")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error, overrides the configuration")

// app is what a command needs to run.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	stdout io.Writer
}

// newApp loads the configuration and applies the global flags.
func newApp() (*app, error) {
	path := *configFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if *notesPath != "" {
		cfg.Notes.Path = *notesPath
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := logger.New(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})
	logger.SetGlobalLogger(l)
	return &app{cfg: cfg, log: l, stdout: os.Stdout}, nil
}

// setup is newApp for Execute methods: it reports the error itself.
func setup() (*app, subcommands.ExitStatus) {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	return a, subcommands.ExitSuccess
}

// openNotes opens the configured note store.
func (a *app) openNotes() (store.Closer, error) {
	s, err := store.Open(store.Backend(a.cfg.Notes.Backend), a.cfg.Notes.Path)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("backend", a.cfg.Notes.Backend).Str("path", a.cfg.Notes.Path).Msg("notes opened")
	return s, nil
}

// printMarkdown renders md for the terminal, or prints it as is when the
// output is not a terminal.
func printMarkdown(w io.Writer, md string) {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, md)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
