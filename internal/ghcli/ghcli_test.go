package ghcli

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/kasperjunge/agent-upd/internal/errors"
)

// stubGH writes a shell script standing in for the gh binary and returns a
// Client pointing at it.
func stubGH(t *testing.T, script string) *Client {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}

	bin := filepath.Join(t.TempDir(), "gh")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return &Client{Bin: bin}
}

func TestAuthenticated(t *testing.T) {
	t.Run("logged in", func(t *testing.T) {
		gh := stubGH(t, "exit 0\n")
		if !gh.Authenticated() {
			t.Error("Authenticated() = false, want true")
		}
	})

	t.Run("not logged in", func(t *testing.T) {
		gh := stubGH(t, "exit 1\n")
		if gh.Authenticated() {
			t.Error("Authenticated() = true, want false")
		}
	})

	t.Run("not installed", func(t *testing.T) {
		gh := &Client{Bin: filepath.Join(t.TempDir(), "missing-gh")}
		if gh.Authenticated() {
			t.Error("Authenticated() = true for a missing binary")
		}
	})
}

func TestUsername(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gh := stubGH(t, "echo kasperjunge\n")
		name, err := gh.Username()
		if err != nil {
			t.Fatalf("Username() error = %v", err)
		}
		if name != "kasperjunge" {
			t.Errorf("Username() = %q, want kasperjunge", name)
		}
	})

	t.Run("failure", func(t *testing.T) {
		gh := stubGH(t, "exit 1\n")
		_, err := gh.Username()
		if !errors.HasCode(err, errors.CodeGHUnavailable) {
			t.Errorf("Username() error = %v, want code %s", err, errors.CodeGHUnavailable)
		}
	})
}

func TestRepoExists(t *testing.T) {
	gh := stubGH(t, `case "$1 $2" in
"repo view") exit 0 ;;
*) exit 1 ;;
esac
`)
	if !gh.RepoExists("agent-resources") {
		t.Error("RepoExists() = false, want true")
	}
}

func TestCreateRepo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gh := stubGH(t, `case "$1 $2" in
"repo create") exit 0 ;;
"api user") echo kasperjunge ;;
*) exit 1 ;;
esac
`)
		url, err := gh.CreateRepo("/tmp/repo", "agent-resources")
		if err != nil {
			t.Fatalf("CreateRepo() error = %v", err)
		}
		if url != "https://github.com/kasperjunge/agent-resources" {
			t.Errorf("CreateRepo() url = %q", url)
		}
	})

	t.Run("failure", func(t *testing.T) {
		gh := stubGH(t, "echo 'name already exists' >&2\nexit 1\n")
		_, err := gh.CreateRepo("/tmp/repo", "agent-resources")
		if !errors.HasCode(err, errors.CodeGHCreateFailed) {
			t.Errorf("CreateRepo() error = %v, want code %s", err, errors.CodeGHCreateFailed)
		}
	})
}
