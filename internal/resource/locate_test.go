package resource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mkRepo builds a fake extracted repository from a list of slash-separated
// paths. Entries ending in "/" become directories, everything else a file.
func mkRepo(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
		if err := os.WriteFile(full, []byte("# content\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	return root
}

func TestLocateSkill(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string // slash-separated, relative to repo root
	}{
		{
			name:  "claude layout",
			paths: []string{".claude/skills/my-skill/SKILL.md"},
			want:  ".claude/skills/my-skill",
		},
		{
			name:  "repo root directory",
			paths: []string{"my-skill/SKILL.md"},
			want:  "my-skill",
		},
		{
			name:  "plural skills layout",
			paths: []string{"skills/my-skill/SKILL.md"},
			want:  "skills/my-skill",
		},
		{
			name:  "singular skill layout",
			paths: []string{"skill/my-skill/SKILL.md"},
			want:  "skill/my-skill",
		},
		{
			name:  "curated layout",
			paths: []string{"skills/.curated/my-skill/SKILL.md"},
			want:  "skills/.curated/my-skill",
		},
		{
			name:  "experimental layout",
			paths: []string{"skills/.experimental/my-skill/SKILL.md"},
			want:  "skills/.experimental/my-skill",
		},
		{
			name: "claude layout wins over plural",
			paths: []string{
				"skills/my-skill/SKILL.md",
				".claude/skills/my-skill/SKILL.md",
			},
			want: ".claude/skills/my-skill",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mkRepo(t, tt.paths...)
			got, found := Locate(repo, KindSkill, "my-skill")
			if !found {
				t.Fatal("Locate() found = false, want true")
			}
			want := filepath.Join(repo, filepath.FromSlash(tt.want))
			if got != want {
				t.Errorf("Locate() = %q, want %q", got, want)
			}
		})
	}
}

func TestLocateFileKinds(t *testing.T) {
	t.Run("command", func(t *testing.T) {
		repo := mkRepo(t, ".claude/commands/review.md")
		got, found := Locate(repo, KindCommand, "review")
		if !found {
			t.Fatal("Locate() found = false, want true")
		}
		if filepath.Base(got) != "review.md" {
			t.Errorf("Locate() = %q, want a review.md path", got)
		}
	})

	t.Run("agent in plural dir", func(t *testing.T) {
		repo := mkRepo(t, "agents/helper.md")
		if _, found := Locate(repo, KindAgent, "helper"); !found {
			t.Error("Locate() found = false, want true")
		}
	})

	t.Run("agent in singular dir", func(t *testing.T) {
		repo := mkRepo(t, "agent/helper.md")
		if _, found := Locate(repo, KindAgent, "helper"); !found {
			t.Error("Locate() found = false, want true")
		}
	})
}

func TestLocateMiss(t *testing.T) {
	repo := mkRepo(t, "skills/other-skill/SKILL.md")

	if _, found := Locate(repo, KindSkill, "my-skill"); found {
		t.Error("Locate() should not find a differently named skill")
	}
	if _, found := Locate(repo, KindSkill, ""); found {
		t.Error("Locate() should not match an empty name")
	}
}

func TestPatternsFor(t *testing.T) {
	t.Run("skill substitutes name", func(t *testing.T) {
		patterns := PatternsFor(KindSkill, "my-skill")
		if len(patterns) != 6 {
			t.Fatalf("len(patterns) = %d, want 6", len(patterns))
		}
		if patterns[0] != ".claude/skills/my-skill/" {
			t.Errorf("patterns[0] = %q", patterns[0])
		}
		for _, p := range patterns {
			if strings.Contains(p, "{name}") {
				t.Errorf("pattern %q not substituted", p)
			}
		}
	})

	t.Run("command appends extension", func(t *testing.T) {
		patterns := PatternsFor(KindCommand, "review")
		for _, p := range patterns {
			if !strings.HasSuffix(p, "review.md") {
				t.Errorf("pattern %q should end in review.md", p)
			}
		}
	})

	t.Run("empty name uses placeholder", func(t *testing.T) {
		patterns := PatternsFor(KindSkill, "")
		if !strings.Contains(patterns[0], "<skill-name>") {
			t.Errorf("patterns[0] = %q, want <skill-name> placeholder", patterns[0])
		}
	})
}

func TestDiagnoseLayout(t *testing.T) {
	t.Run("reports existing dirs", func(t *testing.T) {
		repo := mkRepo(t, "skills/a/SKILL.md", "commands/b.md")
		found := DiagnoseLayout(repo)
		want := map[string]bool{"skills": true, "commands": true}
		if len(found) != len(want) {
			t.Fatalf("DiagnoseLayout() = %v, want %v", found, want)
		}
		for _, d := range found {
			if !want[d] {
				t.Errorf("unexpected dir %q in %v", d, found)
			}
		}
	})

	t.Run("empty repo", func(t *testing.T) {
		if found := DiagnoseLayout(t.TempDir()); len(found) != 0 {
			t.Errorf("DiagnoseLayout() = %v, want empty", found)
		}
	})
}

func TestListKinds(t *testing.T) {
	kinds := ListKinds()
	if len(kinds) != 3 {
		t.Fatalf("len(kinds) = %d, want 3", len(kinds))
	}
	// Sorted alphabetically.
	if kinds[0] != KindAgent || kinds[1] != KindCommand || kinds[2] != KindSkill {
		t.Errorf("ListKinds() = %v", kinds)
	}
}
