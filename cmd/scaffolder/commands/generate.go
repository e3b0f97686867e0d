package commands

import (
	"context"

	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
	"git.home.luguber.info/inful/scaffolder/internal/orchestrator"
)

// GenerateCmd implements the 'generate' command: the full orchestration pass.
type GenerateCmd struct {
	Output string `short:"o" help:"Output root for generated projects (overrides descriptor)"`
}

func (g *GenerateCmd) Run(_ *Global, cli *CLI) error {
	doc, err := descriptor.Load(cli.Config)
	if err != nil {
		return err
	}
	return orchestrator.New(doc, g.Output).Run(context.Background())
}
