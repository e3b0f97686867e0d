package descriptor

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/scaffolder/internal/errors"
	"git.home.luguber.info/inful/scaffolder/internal/logfields"
)

// Load loads a descriptor document from the specified file.
func Load(path string) (*Document, error) {
	// Load .env file if it exists; values never override process env.
	loadEnvFiles()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Newf(errors.CategoryConfig, "descriptor file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, "failed to read descriptor file")
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	var doc Document
	if err := yaml.Unmarshal([]byte(expanded), &doc); err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, "failed to unmarshal descriptor")
	}

	applyDefaults(&doc)

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func applyDefaults(doc *Document) {
	if doc.Output == "" {
		doc.Output = "./generated"
	}
}

// loadEnvFiles loads environment variables from the first readable
// .env/.env.local file. Missing files are fine.
func loadEnvFiles() {
	for _, p := range []string{".env", ".env.local"} {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("Failed to load env file", logfields.Path(p), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.Path(p))
		return
	}
}

// Init creates a new descriptor file with example content.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("descriptor file already exists: %s (use --force to overwrite)", path)
	}

	example := Document{
		Output: "./generated",
		Settings: Settings{
			JBangExecutable: "jbang",
		},
		Definitions: []ProjectDefinition{
			{
				ID:          "acme-demo",
				GroupID:     "org.acme",
				ArtifactID:  "demo",
				PackageName: "org.acme.demo",
				FinalName:   "demo-app",
				Config: ConfigSet{
					Properties: Properties{{Key: "maven.compiler.release", Value: "17"}},
				},
			},
		},
		Structures: []ProjectStructure{
			{
				ID: "quarkus",
				Generate: GenerateSpec{
					QuarkusCLI: &QuarkusCLISpec{
						Extensions: "resteasy,jdbc-postgresql",
						Platform: &Artifact{
							GroupID:    "io.quarkus.platform",
							ArtifactID: "quarkus-bom",
							Version:    "3.0.0",
						},
					},
				},
				ConfigSets: []ConfigSet{
					{ID: "messaging", Reusable: "shared-messaging"},
				},
			},
		},
		ReusableConfigSets: []ConfigSet{
			{
				ID: "shared-messaging",
				Dependencies: []Dependency{
					{GroupID: "io.quarkus", ArtifactID: "quarkus-smallrye-reactive-messaging-kafka"},
				},
			},
		},
		Active: ActivationSpec{
			ConfigSets: []string{"messaging"},
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write descriptor file: %w", err)
	}
	return nil
}
