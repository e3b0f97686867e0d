package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/scaffolder/internal/activation"
	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
)

// ListCmd implements the 'list' command: a dry run over the activation
// matrix, printing each pair and its resolved config sets.
type ListCmd struct{}

func (l *ListCmd) Run(_ *Global, cli *CLI) error {
	doc, err := descriptor.Load(cli.Config)
	if err != nil {
		return err
	}

	actx := activation.NewContext(doc)
	count := 0
	for def, st := range actx.Pairs() {
		configSets, err := actx.ResolveConfigSets(def, st)
		if err != nil {
			return err
		}
		var ids []string
		for _, cs := range configSets {
			if cs.ID != "" {
				ids = append(ids, cs.ID)
			}
		}
		fmt.Printf("%s x %s -> %s (%s) config-sets: [%s]\n",
			def.ID, st.ID, descriptor.TargetName(def, st), st.Generate.Kind(), strings.Join(ids, ", "))
		count++
	}
	fmt.Printf("%d active pair(s)\n", count)
	return nil
}
