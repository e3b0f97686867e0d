// Package command builds the external generation command line for each
// strategy variant. Builders are pure string construction over resolved
// descriptor fields; no filesystem or network access.
package command

import (
	"fmt"
	"os"
	"strings"

	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
)

const (
	defaultLauncher = "jbang"

	// LauncherEnvVar overrides the configured quarkus-cli launcher executable.
	LauncherEnvVar = "SCAFFOLDER_JBANG"
)

// Launcher resolves the quarkus-cli launcher executable. Precedence:
// SCAFFOLDER_JBANG environment variable, descriptor settings, bare "jbang"
// resolved via PATH.
func Launcher(settings descriptor.Settings) string {
	if v := os.Getenv(LauncherEnvVar); v != "" {
		return v
	}
	if settings.JBangExecutable != "" {
		return settings.JBangExecutable
	}
	return defaultLauncher
}

// Archetype builds the maven archetype:generate invocation. Fixed properties
// come first; structure-declared free-form properties merge in afterwards
// with last-write-wins on key collision.
func Archetype(def descriptor.ProjectDefinition, st descriptor.ProjectStructure) string {
	arch := st.Generate.Archetype
	props := descriptor.Properties{
		{Key: "interactiveMode", Value: "false"},
		{Key: "groupId", Value: def.GroupID},
		{Key: "artifactId", Value: descriptor.TargetName(def, st)},
		{Key: "package", Value: def.PackageName},
		{Key: "archetypeGroupId", Value: arch.GroupID},
		{Key: "archetypeArtifactId", Value: arch.ArtifactID},
		{Key: "archetypeVersion", Value: arch.Version},
	}
	for _, kv := range st.Generate.Properties {
		props = props.Set(kv.Key, kv.Value)
	}

	var b strings.Builder
	b.WriteString("mvn archetype:generate")
	for _, kv := range props {
		fmt.Fprintf(&b, " -D%s=%s", kv.Key, kv.Value)
	}
	return b.String()
}

// QuarkusCLI builds the launcher "create app" invocation. Platform flags are
// appended only when a complete coordinate triple is configured.
func QuarkusCLI(launcher string, def descriptor.ProjectDefinition, st descriptor.ProjectStructure) string {
	cli := st.Generate.QuarkusCLI

	var b strings.Builder
	fmt.Fprintf(&b, "%s run quarkus@quarkusio", launcher)
	b.WriteString(" create app")
	fmt.Fprintf(&b, " %s:%s", def.GroupID, descriptor.TargetName(def, st))
	fmt.Fprintf(&b, " -x %s", cli.Extensions)
	fmt.Fprintf(&b, " --package-name %s", def.PackageName)
	b.WriteString(" --batch-mode")
	if cli.Platform != nil {
		fmt.Fprintf(&b, " --platform-bom %s:%s:%s",
			cli.Platform.GroupID, cli.Platform.ArtifactID, cli.Platform.Version)
	}
	return b.String()
}

// MavenPlugin builds the maven plugin-goal invocation. Free-form properties
// are appended after the fixed and platform flags, in declaration order.
func MavenPlugin(def descriptor.ProjectDefinition, st descriptor.ProjectStructure) string {
	plugin := st.Generate.MavenPlugin

	var b strings.Builder
	fmt.Fprintf(&b, "mvn %s:%s:%s:%s",
		plugin.GroupID, plugin.ArtifactID, plugin.Version, plugin.Goal)
	b.WriteString(" --batch-mode")
	fmt.Fprintf(&b, " -DprojectGroupId=%s", def.GroupID)
	fmt.Fprintf(&b, " -DprojectArtifactId=%s", descriptor.TargetName(def, st))
	fmt.Fprintf(&b, " -DpackageName=%s", def.PackageName)
	if plugin.Platform != nil {
		fmt.Fprintf(&b, " -DplatformGroupId=%s", plugin.Platform.GroupID)
		fmt.Fprintf(&b, " -DplatformArtifactId=%s", plugin.Platform.ArtifactID)
		fmt.Fprintf(&b, " -DplatformVersion=%s", plugin.Platform.Version)
	}
	for _, kv := range st.Generate.Properties {
		fmt.Fprintf(&b, " -D%s=%s", kv.Key, kv.Value)
	}
	return b.String()
}
