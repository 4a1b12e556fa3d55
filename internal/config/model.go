package config

// Model is the unified, format-agnostic representation of a build plan:
// the ordered list of stages the orchestrator materializes.
type Model struct {
	Stages []*Stage
}

// Stage is the format-agnostic representation of a `stage` block: where
// the stage's inputs live, the artifact it generates, the command that
// regenerates the artifact, and the directory aliases to materialize.
type Stage struct {
	Name     string
	Source   string
	Artifact string
	Command  []string
	Aliases  []*Alias
}

// Alias is a (target, link) pair; the link path is made to resolve to the
// target directory's contents.
type Alias struct {
	Target string
	Link   string
}
