// Package scaffold creates a starter agent-resources repository with
// example skill, command and agent resources.
package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/kasperjunge/agent-upd/internal/errors"
)

const helloSkill = `---
name: hello-world
description: A simple example skill that demonstrates Claude Code skill structure
---

# Hello World Skill

This is a demonstration skill showing how skills work.

## When to Use

Apply this skill when the user asks you to say hello or demonstrate skills.

## Instructions

Respond with a friendly greeting explaining this came from a skill.
`

const helloCommand = `---
description: Say hello - example slash command
---

When the user runs /hello, respond with a friendly greeting.
Explain that this is an example command from their agent-resources repo.
`

const helloAgent = `---
description: Example subagent that greets users
---

You are a friendly greeter subagent.
When invoked, introduce yourself and explain that you're an example agent
from the user's agent-resources repository.
`

const readmeTemplate = `# agent-resources

My personal collection of Claude Code skills, commands, and agents.

## Structure

` + "```" + `
.claude/
├── skills/       # Skill directories with SKILL.md
├── commands/     # Slash command .md files
└── agents/       # Subagent .md files
` + "```" + `

## Usage

Others can install my resources using:

` + "```bash" + `
# Install a skill
agent-upd add-skill {username}/hello-world

# Install a command
agent-upd add-command {username}/hello

# Install an agent
agent-upd add-agent {username}/hello-agent
` + "```" + `

## Adding Resources

- **Skills**: Create a directory in ` + "`.claude/skills/<name>/`" + ` with a ` + "`SKILL.md`" + ` file
- **Commands**: Create a ` + "`.md`" + ` file in ` + "`.claude/commands/`" + `
- **Agents**: Create a ` + "`.md`" + ` file in ` + "`.claude/agents/`" + `
`

const gitignore = `# OS
.DS_Store
Thumbs.db

# IDE
.idea/
.vscode/
*.swp
*.swo
`

// CreateRepo scaffolds a complete agent-resources repository with all
// starter content. The username is interpolated into the README install
// examples.
func CreateRepo(path, username string) error {
	claudeDir := filepath.Join(path, ".claude")
	dirs := []string{
		filepath.Join(claudeDir, "skills", "hello-world"),
		filepath.Join(claudeDir, "commands"),
		filepath.Join(claudeDir, "agents"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return errors.ScaffoldFailed("directories", err)
		}
	}

	files := map[string]string{
		filepath.Join(claudeDir, "skills", "hello-world", "SKILL.md"): helloSkill,
		filepath.Join(claudeDir, "commands", "hello.md"):              helloCommand,
		filepath.Join(claudeDir, "agents", "hello-agent.md"):          helloAgent,
		filepath.Join(path, "README.md"):                              strings.ReplaceAll(readmeTemplate, "{username}", username),
		filepath.Join(path, ".gitignore"):                             gitignore,
	}
	for name, content := range files {
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			return errors.ScaffoldFailed(filepath.Base(name), err)
		}
	}

	return nil
}

// InitGit initializes a git repository at path on a "main" branch and
// creates the initial commit.
func InitGit(path string) error {
	repo, err := git.PlainInitWithOptions(path, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	if err != nil {
		return errors.ScaffoldFailed("git init", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return errors.ScaffoldFailed("git worktree", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return errors.ScaffoldFailed("git add", err)
	}

	// Explicit author so the commit works without user-level git config.
	_, err = wt.Commit("Initial commit: agent-resources repo scaffold", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "agent-upd",
			Email: "agent-upd@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return errors.ScaffoldFailed("git commit", err)
	}

	return nil
}
