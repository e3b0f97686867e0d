package descriptor

import "path/filepath"

// TargetName derives the artifact name of a generated project. The same
// derivation feeds both the generation command and the later manifest-path
// lookup; they must never diverge.
func TargetName(def ProjectDefinition, st ProjectStructure) string {
	if st.OutputSuffix == "" {
		return def.ArtifactID
	}
	return def.ArtifactID + "-" + st.OutputSuffix
}

// ProjectDir returns the generated project directory under outputRoot.
func ProjectDir(outputRoot string, def ProjectDefinition, st ProjectStructure) string {
	return filepath.Join(outputRoot, TargetName(def, st))
}

// PomPath returns the manifest location inside the generated project.
func PomPath(outputRoot string, def ProjectDefinition, st ProjectStructure) string {
	return filepath.Join(ProjectDir(outputRoot, def, st), "pom.xml")
}
