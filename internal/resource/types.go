// Package resource defines the skill, command and agent resource kinds and
// locates them inside a downloaded repository.
//
// A skill is a directory containing a SKILL.md plus arbitrary supporting
// files. Commands and agents are single markdown files. Repositories expose
// resources under several directory conventions; the search patterns below
// are tried in a fixed priority order.
package resource

import "sort"

// Kind identifies a resource type.
type Kind string

const (
	KindSkill   Kind = "skill"
	KindCommand Kind = "command"
	KindAgent   Kind = "agent"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// KindConfig describes how a resource kind is stored and installed.
type KindConfig struct {
	// Kind is the resource type this config describes.
	Kind Kind

	// DestSubdir is the destination subdirectory name, e.g. "skills".
	DestSubdir string

	// SingularSubdir is the singular destination form used by layouts
	// like OpenCode, e.g. "skill".
	SingularSubdir string

	// IsDirectory is true for skills (directory resources) and false
	// for commands and agents (single markdown files).
	IsDirectory bool

	// FileExtension is appended to the resource name for file resources.
	// Empty for directory resources.
	FileExtension string
}

// Kinds maps each resource kind to its configuration.
var Kinds = map[Kind]KindConfig{
	KindSkill: {
		Kind:           KindSkill,
		DestSubdir:     "skills",
		SingularSubdir: "skill",
		IsDirectory:    true,
		FileExtension:  "",
	},
	KindCommand: {
		Kind:           KindCommand,
		DestSubdir:     "commands",
		SingularSubdir: "command",
		IsDirectory:    false,
		FileExtension:  ".md",
	},
	KindAgent: {
		Kind:           KindAgent,
		DestSubdir:     "agents",
		SingularSubdir: "agent",
		IsDirectory:    false,
		FileExtension:  ".md",
	},
}

// searchPatterns lists repository locations per kind, tried in order.
// {name} is replaced with the resource name.
var searchPatterns = map[Kind][]string{
	KindSkill: {
		".claude/skills/{name}/",        // Current convention (first for backward compat)
		"{name}/",                       // Repo root skill directory
		"skills/{name}/",                // Anthropics pattern
		"skill/{name}/",                 // OpenCode pattern
		"skills/.curated/{name}/",       // OpenAI pattern
		"skills/.experimental/{name}/",  // OpenAI pattern
	},
	KindCommand: {
		".claude/commands/{name}.md", // Current convention
		"commands/{name}.md",
		"command/{name}.md", // OpenCode pattern
	},
	KindAgent: {
		".claude/agents/{name}.md", // Current convention
		"agents/{name}.md",
		"agent/{name}.md", // OpenCode pattern
	},
}

// layoutDirs are the directory conventions checked when diagnosing a
// repository that yielded no match.
var layoutDirs = []string{
	".claude/skills",
	"skills",
	"skill",
	".claude/commands",
	"commands",
	"command",
	".claude/agents",
	"agents",
	"agent",
}

// ListKinds returns all resource kinds in sorted order.
func ListKinds() []Kind {
	kinds := make([]Kind, 0, len(Kinds))
	for k := range Kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
