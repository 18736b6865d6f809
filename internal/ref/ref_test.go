package ref

import (
	"testing"

	"github.com/kasperjunge/agent-upd/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Ref
	}{
		{
			name:  "owner and name",
			input: "kasperjunge/my-skill",
			want:  Ref{Host: "github.com", Owner: "kasperjunge", Name: "my-skill"},
		},
		{
			name:  "explicit host",
			input: "gitlab.com/someuser/some-skill",
			want:  Ref{Host: "gitlab.com", Owner: "someuser", Name: "some-skill", HostExplicit: true},
		},
		{
			name:  "explicit default host",
			input: "github.com/kasperjunge/my-skill",
			want:  Ref{Host: "github.com", Owner: "kasperjunge", Name: "my-skill", HostExplicit: true},
		},
		{
			name:  "host with default host as prefix",
			input: "github.com.example.org/someuser/some-skill",
			want:  Ref{Host: "github.com.example.org", Owner: "someuser", Name: "some-skill", HostExplicit: true},
		},
		{
			name:  "full https url",
			input: "https://github.com/kasperjunge/my-skill",
			want:  Ref{Host: "github.com", Owner: "kasperjunge", Name: "my-skill", HostExplicit: true},
		},
		{
			name:  "url with .git suffix",
			input: "https://github.com/kasperjunge/my-skill.git",
			want:  Ref{Host: "github.com", Owner: "kasperjunge", Name: "my-skill", HostExplicit: true},
		},
		{
			name:  "url with trailing slash",
			input: "https://github.com/kasperjunge/my-skill/",
			want:  Ref{Host: "github.com", Owner: "kasperjunge", Name: "my-skill", HostExplicit: true},
		},
		{
			name:  "surrounding whitespace",
			input: "  kasperjunge/my-skill  ",
			want:  Ref{Host: "github.com", Owner: "kasperjunge", Name: "my-skill"},
		},
		{
			name:  ".git suffix without url",
			input: "kasperjunge/my-skill.git",
			want:  Ref{Host: "github.com", Owner: "kasperjunge", Name: "my-skill"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"just-a-name",
		"a/b/c",             // three parts but first has no dot
		"too/many/parts/x",  // four parts
		"https://",          // url without host
		"https:///owner/nm", // empty host
		"owner/",
		"/name",
	}

	for _, input := range inputs {
		t.Run("input "+input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", input)
			}
			if !errors.HasCode(err, errors.CodeRefInvalid) {
				t.Errorf("Parse(%q) error = %v, want code %s", input, err, errors.CodeRefInvalid)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Run("default host omitted", func(t *testing.T) {
		r := Ref{Host: "github.com", Owner: "a", Name: "b"}
		if got := r.String(); got != "a/b" {
			t.Errorf("String() = %q, want %q", got, "a/b")
		}
	})

	t.Run("custom host kept", func(t *testing.T) {
		r := Ref{Host: "gitlab.com", Owner: "a", Name: "b"}
		if got := r.String(); got != "gitlab.com/a/b" {
			t.Errorf("String() = %q, want %q", got, "gitlab.com/a/b")
		}
	})

	t.Run("empty host omitted", func(t *testing.T) {
		r := Ref{Owner: "a", Name: "b"}
		if got := r.String(); got != "a/b" {
			t.Errorf("String() = %q, want %q", got, "a/b")
		}
	})
}
