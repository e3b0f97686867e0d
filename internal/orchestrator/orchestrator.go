// Package orchestrator drives one generation pass: for every active
// definition/structure pair it builds the generation command, executes it,
// then patches the generated manifest with the resolved configuration.
package orchestrator

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/scaffolder/internal/activation"
	"git.home.luguber.info/inful/scaffolder/internal/command"
	"git.home.luguber.info/inful/scaffolder/internal/descriptor"
	"git.home.luguber.info/inful/scaffolder/internal/errors"
	"git.home.luguber.info/inful/scaffolder/internal/gitutil"
	"git.home.luguber.info/inful/scaffolder/internal/logfields"
	"git.home.luguber.info/inful/scaffolder/internal/pom"
	"git.home.luguber.info/inful/scaffolder/internal/report"
	"git.home.luguber.info/inful/scaffolder/internal/runner"
)

// ReportFileName is written into the output root after every run.
const ReportFileName = "generation-report.json"

// Orchestrator processes the activation matrix strictly sequentially and
// fails fast: the first error aborts the whole run.
type Orchestrator struct {
	doc    *descriptor.Document
	actx   *activation.Context
	runner *runner.Runner
	output string
}

// New creates an orchestrator for a loaded descriptor document. A non-empty
// outputOverride replaces the document's output root.
func New(doc *descriptor.Document, outputOverride string) *Orchestrator {
	output := doc.Output
	if outputOverride != "" {
		output = outputOverride
	}
	return &Orchestrator{
		doc:    doc,
		actx:   activation.NewContext(doc),
		runner: runner.New(0),
		output: output,
	}
}

// Run executes the full generation pass. The returned error is the first
// fatal condition encountered; a report is written best-effort either way.
func (o *Orchestrator) Run(ctx context.Context) error {
	rep := report.New()
	slog.Info("Starting project generation", logfields.RunID(rep.ID), logfields.Dir(o.output))

	if err := os.MkdirAll(o.output, 0o750); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "failed to create output root "+o.output)
	}

	var runErr error
	for def, st := range o.actx.Pairs() {
		rec, err := o.generatePair(ctx, def, st)
		rep.Projects = append(rep.Projects, rec)
		if err != nil {
			runErr = err
			break
		}
	}

	status := report.StatusSucceeded
	if runErr != nil {
		status = report.StatusFailed
	}
	rep.Finish(status)
	if err := rep.Write(filepath.Join(o.output, ReportFileName)); err != nil {
		if runErr == nil {
			runErr = errors.Wrap(err, errors.CategoryFileSystem, "failed to write generation report")
		} else {
			slog.Warn("Failed to write generation report", logfields.Error(err))
		}
	}

	if runErr == nil {
		slog.Info("Project generation finished",
			logfields.RunID(rep.ID), slog.Int("projects", len(rep.Projects)), logfields.DurationMS(float64(rep.Duration)))
	}
	return runErr
}

func (o *Orchestrator) generatePair(ctx context.Context, def descriptor.ProjectDefinition, st descriptor.ProjectStructure) (report.ProjectRecord, error) {
	start := time.Now()
	target := descriptor.TargetName(def, st)
	rec := report.ProjectRecord{
		Definition: def.ID,
		Structure:  st.ID,
		TargetName: target,
		Status:     report.StatusFailed,
	}

	slog.Info("About to generate project",
		logfields.Definition(def.ID), logfields.Structure(st.ID), logfields.Target(target))

	cmdLine, err := o.buildCommand(def, st)
	if err != nil {
		return rec, err
	}
	rec.Command = cmdLine

	if err := o.runner.Run(ctx, cmdLine, o.output); err != nil {
		return rec, err
	}
	if err := o.applyConfiguration(def, st); err != nil {
		return rec, err
	}
	if o.doc.Settings.GitInit {
		dir := descriptor.ProjectDir(o.output, def, st)
		slog.Debug("Initializing git repository", logfields.Dir(dir))
		if err := gitutil.InitRepository(dir); err != nil {
			return rec, err
		}
	}

	rec.Status = report.StatusSucceeded
	rec.Duration = time.Since(start).Milliseconds()
	return rec, nil
}

// buildCommand dispatches on the structure's generation variant.
func (o *Orchestrator) buildCommand(def descriptor.ProjectDefinition, st descriptor.ProjectStructure) (string, error) {
	switch st.Generate.Kind() {
	case descriptor.KindArchetype:
		return command.Archetype(def, st), nil
	case descriptor.KindQuarkusCLI:
		return command.QuarkusCLI(command.Launcher(o.doc.Settings), def, st), nil
	case descriptor.KindMavenPlugin:
		return command.MavenPlugin(def, st), nil
	default:
		return "", errors.Newf(errors.CategoryConfig,
			"structure %q has no generation method configured", st.ID)
	}
}

// applyConfiguration applies the three manifest mutations for one pair, each
// as a separate load/mutate/write cycle: dependency injection, final name,
// property merge.
func (o *Orchestrator) applyConfiguration(def descriptor.ProjectDefinition, st descriptor.ProjectStructure) error {
	configSets, err := o.actx.ResolveConfigSets(def, st)
	if err != nil {
		return err
	}
	pomPath := descriptor.PomPath(o.output, def, st)

	var deps []descriptor.Dependency
	for _, cs := range configSets {
		deps = append(deps, cs.Dependencies...)
	}
	if err := pom.Mutate(pomPath, func(m *pom.Model) error {
		m.AddDependencies(deps)
		return nil
	}); err != nil {
		return err
	}

	if def.FinalName == "" {
		slog.Debug("No finalName specified, not changing build configuration",
			logfields.Definition(def.ID))
	} else if err := pom.Mutate(pomPath, func(m *pom.Model) error {
		m.SetFinalName(def.FinalName)
		return nil
	}); err != nil {
		return err
	}

	return pom.Mutate(pomPath, func(m *pom.Model) error {
		for _, cs := range configSets {
			for _, kv := range cs.Properties {
				m.SetProperty(kv.Key, kv.Value)
			}
		}
		return nil
	})
}
