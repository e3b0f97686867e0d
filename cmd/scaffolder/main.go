package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/scaffolder/cmd/scaffolder/commands"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("scaffolder"),
		kong.Description("Generate skeleton projects from declarative descriptors and patch their manifests."),
		kong.Vars{"version": version},
	)
	if err := ctx.Run(&commands.Global{}); err != nil {
		fmt.Fprintf(os.Stderr, "scaffolder: %v\n", err)
		os.Exit(1)
	}
}
