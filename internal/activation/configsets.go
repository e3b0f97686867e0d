package activation

import (
	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
	"git.home.luguber.info/inful/scaffolder/internal/errors"
)

// ResolveConfigSets produces the ordered configuration layers for one pair:
// the definition's own config, the structure's common config, then every
// structure-declared config set whose id is active, in declaration order.
// Each layer is passed through reusable-indirection resolution. Duplicates
// are allowed and order is preserved; merge semantics belong to the consumer.
func (c *Context) ResolveConfigSets(def descriptor.ProjectDefinition, st descriptor.ProjectStructure) ([]descriptor.ConfigSet, error) {
	applicable := make([]descriptor.ConfigSet, 0, 2+len(st.ConfigSets))
	applicable = append(applicable, def.Config, st.CommonConfig)
	for _, cs := range st.ConfigSets {
		if active(c.activeConfigSets, cs.ID) {
			applicable = append(applicable, cs)
		}
	}

	resolved := make([]descriptor.ConfigSet, 0, len(applicable))
	for _, cs := range applicable {
		r, err := c.resolveReusable(cs)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

// resolveReusable replaces a config set carrying a reusable reference with
// the first matching entry of the global reusable list. A dangling reference
// is fatal; substituting an empty config would silently drop dependencies.
func (c *Context) resolveReusable(cs descriptor.ConfigSet) (descriptor.ConfigSet, error) {
	if cs.Reusable == "" {
		return cs, nil
	}
	for _, reusable := range c.reusable {
		if reusable.ID == cs.Reusable {
			return reusable, nil
		}
	}
	return descriptor.ConfigSet{}, errors.Newf(errors.CategoryConfig,
		"config set %q not found among reusable config sets", cs.Reusable)
}
