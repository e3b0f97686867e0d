// Package descriptor defines the declarative input model for project
// generation: what to generate (definitions), how to generate it
// (structures) and which extra configuration applies (config sets).
package descriptor

// Document is the root of a descriptor file.
type Document struct {
	Output             string              `yaml:"output"`
	Settings           Settings            `yaml:"settings,omitempty"`
	Definitions        []ProjectDefinition `yaml:"definitions"`
	Structures         []ProjectStructure  `yaml:"structures"`
	ReusableConfigSets []ConfigSet         `yaml:"reusable-config-sets,omitempty"`
	Active             ActivationSpec      `yaml:"active,omitempty"`
}

// Settings holds run-wide tool settings.
type Settings struct {
	// JBangExecutable is the launcher used by the quarkus-cli generation
	// variant. Empty means "jbang" resolved via PATH. The SCAFFOLDER_JBANG
	// environment variable overrides both.
	JBangExecutable string `yaml:"jbang-executable,omitempty"`
	// GitInit initializes a git repository with an initial commit inside
	// every generated project.
	GitInit bool `yaml:"git-init,omitempty"`
}

// ActivationSpec lists the ids participating in this run. An empty list
// activates every entry of that kind.
type ActivationSpec struct {
	Definitions []string `yaml:"definitions,omitempty"`
	Structures  []string `yaml:"structures,omitempty"`
	ConfigSets  []string `yaml:"config-sets,omitempty"`
}

// ProjectDefinition is the naming/coordinates half of what to generate.
type ProjectDefinition struct {
	ID          string    `yaml:"id"`
	GroupID     string    `yaml:"group-id"`
	ArtifactID  string    `yaml:"artifact-id"`
	PackageName string    `yaml:"package-name"`
	FinalName   string    `yaml:"final-name,omitempty"`
	Config      ConfigSet `yaml:"config,omitempty"`
}

// ProjectStructure is the generation-method half of what to generate,
// plus shared configuration.
type ProjectStructure struct {
	ID string `yaml:"id"`
	// OutputSuffix disambiguates the generated directory when one definition
	// is paired with several structures. Empty means the raw artifact id.
	OutputSuffix string       `yaml:"output-suffix,omitempty"`
	Generate     GenerateSpec `yaml:"generate"`
	CommonConfig ConfigSet    `yaml:"common-config,omitempty"`
	ConfigSets   []ConfigSet  `yaml:"config-sets,omitempty"`
}

// GenerateKind identifies the generation strategy of a structure.
type GenerateKind string

const (
	KindArchetype   GenerateKind = "archetype"
	KindQuarkusCLI  GenerateKind = "quarkus-cli"
	KindMavenPlugin GenerateKind = "maven-plugin"
	KindUnknown     GenerateKind = "unknown"
)

// GenerateSpec is a tagged union: exactly one variant field is set.
// Properties are shared by the archetype and maven-plugin variants and are
// passed through to the external tool verbatim.
type GenerateSpec struct {
	Archetype   *ArchetypeSpec   `yaml:"archetype,omitempty"`
	QuarkusCLI  *QuarkusCLISpec  `yaml:"quarkus-cli,omitempty"`
	MavenPlugin *MavenPluginSpec `yaml:"maven-plugin,omitempty"`
	Properties  Properties       `yaml:"properties,omitempty"`
}

// Kind reports which variant is configured.
func (g GenerateSpec) Kind() GenerateKind {
	switch {
	case g.Archetype != nil:
		return KindArchetype
	case g.QuarkusCLI != nil:
		return KindQuarkusCLI
	case g.MavenPlugin != nil:
		return KindMavenPlugin
	default:
		return KindUnknown
	}
}

// ArchetypeSpec configures generation through a maven archetype.
type ArchetypeSpec struct {
	GroupID    string `yaml:"group-id"`
	ArtifactID string `yaml:"artifact-id"`
	Version    string `yaml:"version"`
}

// QuarkusCLISpec configures generation through the quarkus CLI launcher.
type QuarkusCLISpec struct {
	Extensions string    `yaml:"extensions"`
	Platform   *Artifact `yaml:"platform,omitempty"`
}

// MavenPluginSpec configures generation through a maven plugin goal.
type MavenPluginSpec struct {
	GroupID    string    `yaml:"group-id"`
	ArtifactID string    `yaml:"artifact-id"`
	Version    string    `yaml:"version"`
	Goal       string    `yaml:"goal"`
	Platform   *Artifact `yaml:"platform,omitempty"`
}

// Artifact is a group/artifact/version coordinate triple.
type Artifact struct {
	GroupID    string `yaml:"group-id"`
	ArtifactID string `yaml:"artifact-id"`
	Version    string `yaml:"version"`
}

// ConfigSet is a named bundle of dependencies and properties. A non-empty
// Reusable field turns the set into an indirection to a globally registered
// reusable config set with that id.
type ConfigSet struct {
	ID           string       `yaml:"id,omitempty"`
	Reusable     string       `yaml:"reusable,omitempty"`
	Dependencies []Dependency `yaml:"dependencies,omitempty"`
	Properties   Properties   `yaml:"properties,omitempty"`
}

// Dependency is one manifest dependency declaration.
type Dependency struct {
	GroupID    string `yaml:"group-id"`
	ArtifactID string `yaml:"artifact-id"`
	Version    string `yaml:"version,omitempty"`
	Scope      string `yaml:"scope,omitempty"`
}
