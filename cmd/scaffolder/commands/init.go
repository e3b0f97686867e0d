package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
	"git.home.luguber.info/inful/scaffolder/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing descriptor file"`
}

func (i *InitCmd) Run(_ *Global, cli *CLI) error {
	slog.Info("Initializing descriptor", logfields.Path(cli.Config), slog.Bool("force", i.Force))
	return descriptor.Init(cli.Config, i.Force)
}
