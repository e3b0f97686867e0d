// Package pom loads, mutates and persists the manifest (pom.xml) of a
// generated project. Mutations go through a load/apply/write cycle; fields
// the caller does not touch round-trip unchanged.
package pom

import (
	"os"
	"path/filepath"

	"github.com/beevik/etree"

	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
	"git.home.luguber.info/inful/scaffolder/internal/errors"
)

// Model is the in-memory project manifest.
type Model struct {
	doc  *etree.Document
	root *etree.Element
}

// Mutate loads the manifest at path, applies fn exactly once and writes the
// document back to the same path. Failure to read, mutate or write is fatal.
func Mutate(path string, fn func(*Model) error) error {
	model, err := load(path)
	if err != nil {
		return err
	}
	if err := fn(model); err != nil {
		return err
	}
	return model.save(path)
}

func load(path string) (*Model, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrap(err, errors.CategoryManifest, "failed to read manifest "+path)
	}
	root := doc.SelectElement("project")
	if root == nil {
		return nil, errors.Newf(errors.CategoryManifest, "manifest %s has no <project> root", path)
	}
	return &Model{doc: doc, root: root}, nil
}

// save writes through a temp file in the target directory and renames it into
// place, so a crash mid-write cannot leave a half-written manifest behind.
func (m *Model) save(path string) error {
	data, err := m.doc.WriteToBytes()
	if err != nil {
		return errors.Wrap(err, errors.CategoryManifest, "failed to serialize manifest "+path)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pom-*.xml")
	if err != nil {
		return errors.Wrap(err, errors.CategoryManifest, "failed to create temp manifest for "+path)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, errors.CategoryManifest, "failed to write manifest "+path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.CategoryManifest, "failed to close temp manifest for "+path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.CategoryManifest, "failed to replace manifest "+path)
	}
	return nil
}

// AddDependencies appends dependency declarations to the manifest's
// dependency list, creating the list when absent. Order follows the input.
func (m *Model) AddDependencies(deps []descriptor.Dependency) {
	if len(deps) == 0 {
		return
	}
	list := ensureChild(m.root, "dependencies")
	for _, d := range deps {
		e := list.CreateElement("dependency")
		e.CreateElement("groupId").SetText(d.GroupID)
		e.CreateElement("artifactId").SetText(d.ArtifactID)
		if d.Version != "" {
			e.CreateElement("version").SetText(d.Version)
		}
		if d.Scope != "" {
			e.CreateElement("scope").SetText(d.Scope)
		}
	}
}

// SetFinalName sets the build output name, creating <build> when absent.
func (m *Model) SetFinalName(name string) {
	build := ensureChild(m.root, "build")
	ensureChild(build, "finalName").SetText(name)
}

// SetProperty sets (or overwrites) one entry of the manifest property map.
func (m *Model) SetProperty(key, value string) {
	props := ensureChild(m.root, "properties")
	ensureChild(props, key).SetText(value)
}

// Dependencies lists the declared dependencies; used by tests and the
// list command to inspect mutation results.
func (m *Model) Dependencies() []descriptor.Dependency {
	list := m.root.SelectElement("dependencies")
	if list == nil {
		return nil
	}
	var out []descriptor.Dependency
	for _, e := range list.SelectElements("dependency") {
		out = append(out, descriptor.Dependency{
			GroupID:    childText(e, "groupId"),
			ArtifactID: childText(e, "artifactId"),
			Version:    childText(e, "version"),
			Scope:      childText(e, "scope"),
		})
	}
	return out
}

// FinalName returns the configured build output name, or "".
func (m *Model) FinalName() string {
	build := m.root.SelectElement("build")
	if build == nil {
		return ""
	}
	return childText(build, "finalName")
}

// Property returns the value of one manifest property, or "".
func (m *Model) Property(key string) string {
	props := m.root.SelectElement("properties")
	if props == nil {
		return ""
	}
	return childText(props, key)
}

func ensureChild(parent *etree.Element, tag string) *etree.Element {
	if e := parent.SelectElement(tag); e != nil {
		return e
	}
	return parent.CreateElement(tag)
}

func childText(parent *etree.Element, tag string) string {
	if e := parent.SelectElement(tag); e != nil {
		return e.Text()
	}
	return ""
}
