package descriptor

import (
	"git.home.luguber.info/inful/scaffolder/internal/errors"
)

// Validate checks structural invariants of the document. It does not resolve
// reusable references; that happens per pair during activation resolution.
func (d *Document) Validate() error {
	if len(d.Definitions) == 0 {
		return errors.New(errors.CategoryConfig, "descriptor declares no project definitions")
	}
	if len(d.Structures) == 0 {
		return errors.New(errors.CategoryConfig, "descriptor declares no project structures")
	}

	seenDefs := make(map[string]bool, len(d.Definitions))
	for _, def := range d.Definitions {
		if def.ID == "" {
			return errors.New(errors.CategoryConfig, "project definition without id")
		}
		if seenDefs[def.ID] {
			return errors.Newf(errors.CategoryConfig, "duplicate project definition id %q", def.ID)
		}
		seenDefs[def.ID] = true
		if def.GroupID == "" || def.ArtifactID == "" || def.PackageName == "" {
			return errors.Newf(errors.CategoryConfig,
				"project definition %q must set group-id, artifact-id and package-name", def.ID)
		}
	}

	seenStructs := make(map[string]bool, len(d.Structures))
	for _, st := range d.Structures {
		if st.ID == "" {
			return errors.New(errors.CategoryConfig, "project structure without id")
		}
		if seenStructs[st.ID] {
			return errors.Newf(errors.CategoryConfig, "duplicate project structure id %q", st.ID)
		}
		seenStructs[st.ID] = true
		if err := validateGenerate(st); err != nil {
			return err
		}
	}
	return nil
}

func validateGenerate(st ProjectStructure) error {
	variants := 0
	if st.Generate.Archetype != nil {
		variants++
	}
	if st.Generate.QuarkusCLI != nil {
		variants++
	}
	if st.Generate.MavenPlugin != nil {
		variants++
	}
	if variants != 1 {
		return errors.Newf(errors.CategoryConfig,
			"project structure %q must configure exactly one generate variant, got %d", st.ID, variants)
	}

	switch g := st.Generate; {
	case g.Archetype != nil:
		a := g.Archetype
		if a.GroupID == "" || a.ArtifactID == "" || a.Version == "" {
			return errors.Newf(errors.CategoryConfig,
				"structure %q: archetype requires group-id, artifact-id and version", st.ID)
		}
	case g.QuarkusCLI != nil:
		if g.QuarkusCLI.Extensions == "" {
			return errors.Newf(errors.CategoryConfig,
				"structure %q: quarkus-cli requires extensions", st.ID)
		}
		if err := validatePlatform(st.ID, g.QuarkusCLI.Platform); err != nil {
			return err
		}
	case g.MavenPlugin != nil:
		p := g.MavenPlugin
		if p.GroupID == "" || p.ArtifactID == "" || p.Version == "" || p.Goal == "" {
			return errors.Newf(errors.CategoryConfig,
				"structure %q: maven-plugin requires group-id, artifact-id, version and goal", st.ID)
		}
		if err := validatePlatform(st.ID, p.Platform); err != nil {
			return err
		}
	}
	return nil
}

// validatePlatform enforces that a platform coordinate is either absent or
// complete. Partial triples would emit partial command flags downstream.
func validatePlatform(structureID string, platform *Artifact) error {
	if platform == nil {
		return nil
	}
	if platform.GroupID == "" || platform.ArtifactID == "" || platform.Version == "" {
		return errors.Newf(errors.CategoryConfig,
			"structure %q: platform coordinate must set group-id, artifact-id and version", structureID)
	}
	return nil
}
