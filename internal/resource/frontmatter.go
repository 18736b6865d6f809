package resource

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kasperjunge/agent-upd/internal/errors"
)

// SkillFileName is the canonical skill definition file.
const SkillFileName = "SKILL.md"

// FindRootSkillFile finds a root-level SKILL.md case-insensitively.
// Returns the empty string when none exists.
func FindRootSkillFile(repoDir string) (string, error) {
	entries, err := os.ReadDir(repoDir)
	if err != nil {
		return "", errors.Wrap(errors.CodeIOReadError, "reading repo root", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(entry.Name(), SkillFileName) {
			return filepath.Join(repoDir, entry.Name()), nil
		}
	}
	return "", nil
}

// ParseFrontmatterName extracts the skill name from a SKILL.md YAML
// frontmatter block.
func ParseFrontmatterName(skillFile string) (string, error) {
	data, err := os.ReadFile(skillFile)
	if err != nil {
		return "", errors.Wrap(errors.CodeIOReadError, "reading root SKILL.md", err)
	}

	block, ok := frontmatterBlock(string(data))
	if !ok {
		return "", errors.FrontmatterInvalid("Root SKILL.md frontmatter is invalid.")
	}

	var meta struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return "", errors.FrontmatterInvalid("Root SKILL.md frontmatter is invalid.")
	}

	name := strings.TrimSpace(meta.Name)
	if name == "" {
		return "", errors.FrontmatterInvalid("Root SKILL.md frontmatter missing name.")
	}
	return name, nil
}

// frontmatterBlock extracts the YAML between the leading "---" fence pair.
func frontmatterBlock(content string) (string, bool) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != "---" {
		return "", false
	}

	var b strings.Builder
	for _, line := range lines[1:] {
		if strings.TrimRight(line, "\r\n") == "---" {
			return b.String(), true
		}
		b.WriteString(line)
	}
	return "", false
}
