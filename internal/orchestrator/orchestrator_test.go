package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/scaffolder/internal/command"
	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
	"git.home.luguber.info/inful/scaffolder/internal/errors"
	"git.home.luguber.info/inful/scaffolder/internal/pom"
	"git.home.luguber.info/inful/scaffolder/internal/report"
)

// fakeLauncher writes a launcher script that scaffolds a minimal project
// (directory + pom.xml) in the working directory, the way the real CLI would.
func fakeLauncher(t *testing.T, projectName string) string {
	t.Helper()
	script := `#!/bin/sh
mkdir -p ` + projectName + `
cat > ` + projectName + `/pom.xml <<'EOF'
<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>org.acme</groupId>
  <artifactId>` + projectName + `</artifactId>
  <version>1.0.0-SNAPSHOT</version>
</project>
EOF
`
	path := filepath.Join(t.TempDir(), "fake-quarkus")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func testDocument(output string) *descriptor.Document {
	return &descriptor.Document{
		Output: output,
		Definitions: []descriptor.ProjectDefinition{
			{
				ID:          "acme-demo",
				GroupID:     "org.acme",
				ArtifactID:  "demo",
				PackageName: "org.acme.demo",
				FinalName:   "demo-app",
				Config: descriptor.ConfigSet{
					Properties: descriptor.Properties{{Key: "maven.compiler.release", Value: "17"}},
				},
			},
		},
		Structures: []descriptor.ProjectStructure{
			{
				ID: "quarkus",
				Generate: descriptor.GenerateSpec{
					QuarkusCLI: &descriptor.QuarkusCLISpec{Extensions: "resteasy"},
				},
				ConfigSets: []descriptor.ConfigSet{
					{ID: "first", Properties: descriptor.Properties{{Key: "foo", Value: "a"}}},
					{ID: "second", Properties: descriptor.Properties{{Key: "foo", Value: "b"}}},
					{ID: "messaging", Reusable: "shared-messaging"},
				},
			},
		},
		ReusableConfigSets: []descriptor.ConfigSet{
			{
				ID: "shared-messaging",
				Dependencies: []descriptor.Dependency{
					{GroupID: "io.quarkus", ArtifactID: "quarkus-kafka", Version: "3.0.0"},
				},
			},
		},
	}
}

func TestRunGeneratesAndPatchesManifest(t *testing.T) {
	t.Setenv(command.LauncherEnvVar, fakeLauncher(t, "demo"))
	output := filepath.Join(t.TempDir(), "out")
	doc := testDocument(output)

	require.NoError(t, New(doc, "").Run(context.Background()))

	pomPath := filepath.Join(output, "demo", "pom.xml")
	var deps []descriptor.Dependency
	var finalName, foo, release string
	require.NoError(t, pom.Mutate(pomPath, func(m *pom.Model) error {
		deps = m.Dependencies()
		finalName = m.FinalName()
		foo = m.Property("foo")
		release = m.Property("maven.compiler.release")
		return nil
	}))

	require.Len(t, deps, 1)
	assert.Equal(t, "quarkus-kafka", deps[0].ArtifactID)
	assert.Equal(t, "demo-app", finalName)
	// Later config sets win on property collision.
	assert.Equal(t, "b", foo)
	assert.Equal(t, "17", release)

	data, err := os.ReadFile(filepath.Join(output, ReportFileName))
	require.NoError(t, err)
	rep, err := report.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, report.StatusSucceeded, rep.Status)
	require.Len(t, rep.Projects, 1)
	assert.Equal(t, "demo", rep.Projects[0].TargetName)
	assert.Contains(t, rep.Projects[0].Command, "create app org.acme:demo")
}

func TestRunOutputOverride(t *testing.T) {
	t.Setenv(command.LauncherEnvVar, fakeLauncher(t, "demo"))
	override := filepath.Join(t.TempDir(), "override")
	doc := testDocument(filepath.Join(t.TempDir(), "ignored"))

	require.NoError(t, New(doc, override).Run(context.Background()))
	assert.FileExists(t, filepath.Join(override, "demo", "pom.xml"))
}

func TestRunFailsFastOnCommandFailure(t *testing.T) {
	t.Setenv(command.LauncherEnvVar, "false")
	output := filepath.Join(t.TempDir(), "out")
	doc := testDocument(output)
	// A second definition that would be visited next; fail-fast must stop
	// before it.
	doc.Definitions = append(doc.Definitions, descriptor.ProjectDefinition{
		ID: "never-visited", GroupID: "g", ArtifactID: "n", PackageName: "p",
	})

	err := New(doc, "").Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryGeneration))

	data, rerr := os.ReadFile(filepath.Join(output, ReportFileName))
	require.NoError(t, rerr)
	rep, rerr := report.FromJSON(data)
	require.NoError(t, rerr)
	assert.Equal(t, report.StatusFailed, rep.Status)
	require.Len(t, rep.Projects, 1)
	assert.Equal(t, report.StatusFailed, rep.Projects[0].Status)
}

func TestRunMissingReusableConfigSetIsFatal(t *testing.T) {
	t.Setenv(command.LauncherEnvVar, fakeLauncher(t, "demo"))
	doc := testDocument(filepath.Join(t.TempDir(), "out"))
	doc.ReusableConfigSets = nil

	err := New(doc, "").Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfig))
	assert.Contains(t, err.Error(), `"shared-messaging" not found`)
}

func TestRunGitInit(t *testing.T) {
	t.Setenv(command.LauncherEnvVar, fakeLauncher(t, "demo"))
	output := filepath.Join(t.TempDir(), "out")
	doc := testDocument(output)
	doc.Settings.GitInit = true

	require.NoError(t, New(doc, "").Run(context.Background()))
	assert.DirExists(t, filepath.Join(output, "demo", ".git"))
}

func TestRunUnknownGenerateVariant(t *testing.T) {
	doc := testDocument(filepath.Join(t.TempDir(), "out"))
	doc.Structures[0].Generate = descriptor.GenerateSpec{}

	err := New(doc, "").Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no generation method")
}
