package installer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kasperjunge/agent-upd/internal/resource"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"claude", "claude", true},
		{"CLAUDE", "claude", true},
		{"  opencode  ", "opencode", true},
		{"ampcode", "amp", true},
		{"clawdbot", "clawd", true},
		{"clawdis", "clawd", true},
		{"cursor", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Canonical(tt.input)
			if ok != tt.ok {
				t.Fatalf("Canonical(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsClawd(t *testing.T) {
	for _, env := range []string{"clawd", "clawdbot", "clawdis", "Clawd"} {
		if !IsClawd(env) {
			t.Errorf("IsClawd(%q) = false, want true", env)
		}
	}
	for _, env := range []string{"claude", "amp", "nope", ""} {
		if IsClawd(env) {
			t.Errorf("IsClawd(%q) = true, want false", env)
		}
	}
}

func TestResolveDestination(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name   string
		env    string
		kind   resource.Kind
		global bool
		want   string // slash form; "~" expands to the test home
	}{
		{"claude project skill", "claude", resource.KindSkill, false, ".claude/skills"},
		{"claude global skill", "claude", resource.KindSkill, true, "~/.claude/skills"},
		{"claude project command", "claude", resource.KindCommand, false, ".claude/commands"},
		{"claude global agent", "claude", resource.KindAgent, true, "~/.claude/agents"},
		{"codex project skill", "codex", resource.KindSkill, false, ".codex/skills"},
		{"opencode project skill", "opencode", resource.KindSkill, false, ".opencode/skill"},
		{"opencode global command", "opencode", resource.KindCommand, true, "~/.config/opencode/command"},
		{"amp project skill", "amp", resource.KindSkill, false, ".agents/skills"},
		{"amp global skill", "amp", resource.KindSkill, true, "~/.config/agents/skills"},
		{"ampcode alias", "ampcode", resource.KindSkill, false, ".agents/skills"},
		{"clawd project skill", "clawd", resource.KindSkill, false, "skills"},
		{"clawd global skill", "clawd", resource.KindSkill, true, "~/.config/clawdbot/skills"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDestination(tt.env, tt.kind, tt.global, "")
			if err != nil {
				t.Fatalf("ResolveDestination() error = %v", err)
			}
			want := filepath.FromSlash(tt.want)
			if strings.HasPrefix(tt.want, "~/") {
				want = filepath.Join(home, filepath.FromSlash(tt.want[2:]))
			}
			if got != want {
				t.Errorf("ResolveDestination() = %q, want %q", got, want)
			}
		})
	}

	t.Run("custom dest wins", func(t *testing.T) {
		got, err := ResolveDestination("claude", resource.KindSkill, true, "/custom/path")
		if err != nil {
			t.Fatalf("ResolveDestination() error = %v", err)
		}
		if got != "/custom/path" {
			t.Errorf("ResolveDestination() = %q, want /custom/path", got)
		}
	})

	t.Run("unknown environment", func(t *testing.T) {
		_, err := ResolveDestination("cursor", resource.KindSkill, false, "")
		if err == nil {
			t.Fatal("ResolveDestination() should fail for an unknown environment")
		}
		if !strings.Contains(err.Error(), "--dest") {
			t.Errorf("error = %v, should suggest --dest", err)
		}
	})

	t.Run("unknown environment with custom dest", func(t *testing.T) {
		got, err := ResolveDestination("cursor", resource.KindSkill, false, "./here")
		if err != nil {
			t.Fatalf("ResolveDestination() error = %v", err)
		}
		if got != "./here" {
			t.Errorf("ResolveDestination() = %q, want ./here", got)
		}
	})
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/skills", filepath.Join(home, "skills")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/skills", "~user/skills"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestListKnownEnvironments(t *testing.T) {
	envs := ListKnownEnvironments()
	want := []string{"amp", "claude", "clawd", "codex", "opencode"}
	if len(envs) != len(want) {
		t.Fatalf("ListKnownEnvironments() = %v, want %v", envs, want)
	}
	for i := range want {
		if envs[i] != want[i] {
			t.Errorf("envs[%d] = %q, want %q", i, envs[i], want[i])
		}
	}
}
