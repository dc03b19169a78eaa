package cmd

import (
	"github.com/etnz/crossref"
	"github.com/etnz/crossref/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the command line.
func Completion() *complete.Command {
	contexts := make(predict.Set, 0, len(crossref.Contexts))
	for _, c := range crossref.Contexts {
		contexts = append(contexts, string(c))
	}
	var topics predict.Set
	if index, err := docs.Index(); err == nil {
		for _, entry := range index {
			topics = append(topics, entry[0])
		}
	}
	pages := predict.Files("*.html")

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.toml"),
			"notes":     predict.Files("*"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
		},
		Sub: map[string]*complete.Command{
			"augment": {
				Flags: map[string]complete.Predictor{
					"o":          pages,
					"keep-stale": predict.Nothing,
				},
				Args: pages,
			},
			"summary": {Args: pages},
			"note": {
				Flags: map[string]complete.Predictor{"c": contexts},
				Args:  predict.Something,
			},
			"notes": {},
			"topic": {Args: topics},
			"help":  {Args: subcommandNames()},
		},
	}
}

func subcommandNames() predict.Set {
	var names predict.Set
	for _, c := range Commands {
		names = append(names, c.Command.Name())
	}
	return names
}
