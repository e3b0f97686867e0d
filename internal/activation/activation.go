// Package activation decides which definition/structure pairs participate in
// a run and resolves the layered configuration applicable to each pair.
package activation

import (
	"iter"

	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
	"git.home.luguber.info/inful/scaffolder/internal/util/sets"
)

// Context is the immutable run-scoped view of the descriptor collections and
// the active-id filters. Build one with NewContext and treat it as read-only.
type Context struct {
	definitions []descriptor.ProjectDefinition
	structures  []descriptor.ProjectStructure
	reusable    []descriptor.ConfigSet

	activeDefinitions sets.Set[string]
	activeStructures  sets.Set[string]
	activeConfigSets  sets.Set[string]
}

// NewContext builds an activation context from a loaded descriptor document.
func NewContext(doc *descriptor.Document) *Context {
	return &Context{
		definitions:       doc.Definitions,
		structures:        doc.Structures,
		reusable:          doc.ReusableConfigSets,
		activeDefinitions: sets.New(doc.Active.Definitions...),
		activeStructures:  sets.New(doc.Active.Structures...),
		activeConfigSets:  sets.New(doc.Active.ConfigSets...),
	}
}

// active implements the uniform activation rule: an empty active set means
// every id is active, a non-empty set activates exactly its members.
func active(ids sets.Set[string], id string) bool {
	if ids.Len() == 0 {
		return true
	}
	return ids.Has(id)
}

// DefinitionActive reports whether the definition participates in this run.
func (c *Context) DefinitionActive(def descriptor.ProjectDefinition) bool {
	return active(c.activeDefinitions, def.ID)
}

// StructureActive reports whether the structure participates in this run.
func (c *Context) StructureActive(st descriptor.ProjectStructure) bool {
	return active(c.activeStructures, st.ID)
}

// Pairs returns the active (definition, structure) cross product as a finite,
// restartable sequence: definitions outer, structures inner, both in input
// order. Pairs with an inactive side are skipped silently.
func (c *Context) Pairs() iter.Seq2[descriptor.ProjectDefinition, descriptor.ProjectStructure] {
	return func(yield func(descriptor.ProjectDefinition, descriptor.ProjectStructure) bool) {
		for _, def := range c.definitions {
			if !c.DefinitionActive(def) {
				continue
			}
			for _, st := range c.structures {
				if !c.StructureActive(st) {
					continue
				}
				if !yield(def, st) {
					return
				}
			}
		}
	}
}
