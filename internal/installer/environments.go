// Package installer resolves installation destinations per target
// environment and copies fetched resources into place.
package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kasperjunge/agent-upd/internal/resource"
)

// EnvironmentConfig describes a known AI assistant's installation layout.
type EnvironmentConfig struct {
	// Name is the human-readable environment name (e.g., "Claude Code")
	Name string

	// ProjectPath is the template for project-local installation.
	// Uses {{kind}} placeholder for the resource subdirectory.
	// e.g., ".claude/{{kind}}"
	ProjectPath string

	// GlobalPath is the template for user-wide installation.
	// e.g., "~/.claude/{{kind}}"
	GlobalPath string

	// Singular selects the singular subdirectory form ("skill" rather
	// than "skills"), used by OpenCode-style layouts.
	Singular bool
}

// KnownEnvironments maps environment names to their installation layouts.
var KnownEnvironments = map[string]EnvironmentConfig{
	"claude": {
		Name:        "Claude Code",
		ProjectPath: ".claude/{{kind}}",
		GlobalPath:  "~/.claude/{{kind}}",
	},
	"codex": {
		Name:        "Codex",
		ProjectPath: ".codex/{{kind}}",
		GlobalPath:  "~/.codex/{{kind}}",
	},
	"opencode": {
		Name:        "OpenCode",
		ProjectPath: ".opencode/{{kind}}",
		GlobalPath:  "~/.config/opencode/{{kind}}",
		Singular:    true,
	},
	"amp": {
		Name:        "Amp",
		ProjectPath: ".agents/{{kind}}",
		GlobalPath:  "~/.config/agents/{{kind}}",
	},
	"clawd": {
		Name:        "ClawdBot",
		ProjectPath: "{{kind}}",
		GlobalPath:  "~/.config/clawdbot/{{kind}}",
	},
}

// environmentAliases maps alternate spellings to canonical environment names.
var environmentAliases = map[string]string{
	"ampcode":  "amp",
	"clawdbot": "clawd",
	"clawdis":  "clawd",
}

// Canonical resolves an environment name or alias to its canonical form.
func Canonical(env string) (string, bool) {
	env = strings.ToLower(strings.TrimSpace(env))
	if alias, ok := environmentAliases[env]; ok {
		env = alias
	}
	_, ok := KnownEnvironments[env]
	return env, ok
}

// IsClawd reports whether env names the ClawdBot environment.
func IsClawd(env string) bool {
	canonical, ok := Canonical(env)
	return ok && canonical == "clawd"
}

// ListKnownEnvironments returns the canonical environment names in sorted order.
func ListKnownEnvironments() []string {
	envs := make([]string, 0, len(KnownEnvironments))
	for name := range KnownEnvironments {
		envs = append(envs, name)
	}
	sort.Strings(envs)
	return envs
}

// ResolveDestination returns the directory a resource kind installs into.
// customDest overrides everything; global selects the user-wide template.
// The project-local template is resolved relative to the current directory.
func ResolveDestination(env string, kind resource.Kind, global bool, customDest string) (string, error) {
	if customDest != "" {
		return customDest, nil
	}

	canonical, ok := Canonical(env)
	if !ok {
		return "", fmt.Errorf("unknown environment %q: use --dest for a custom path or one of: %v", env, ListKnownEnvironments())
	}
	config := KnownEnvironments[canonical]

	template := config.ProjectPath
	if global {
		template = config.GlobalPath
	}

	kindCfg := resource.Kinds[kind]
	subdir := kindCfg.DestSubdir
	if config.Singular {
		subdir = kindCfg.SingularSubdir
	}

	path := strings.ReplaceAll(template, "{{kind}}", subdir)
	return ExpandPath(path), nil
}

// ExpandPath expands ~ at the start of a path to the user's home directory.
// If ~ is not at the start or home directory cannot be determined, returns
// path unchanged.
func ExpandPath(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
