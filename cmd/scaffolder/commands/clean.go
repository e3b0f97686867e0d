package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/scaffolder/internal/activation"
	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
	"git.home.luguber.info/inful/scaffolder/internal/logfields"
)

// CleanCmd implements the 'clean' command. Deleting and re-running is the
// documented recovery path after a failed generation.
type CleanCmd struct {
	Output string `short:"o" help:"Output root for generated projects (overrides descriptor)"`
}

func (c *CleanCmd) Run(_ *Global, cli *CLI) error {
	doc, err := descriptor.Load(cli.Config)
	if err != nil {
		return err
	}
	output := doc.Output
	if c.Output != "" {
		output = c.Output
	}

	for def, st := range activation.NewContext(doc).Pairs() {
		dir := descriptor.ProjectDir(output, def, st)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		slog.Info("Removing generated project", logfields.Dir(dir))
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return nil
}
