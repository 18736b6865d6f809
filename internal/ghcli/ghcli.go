// Package ghcli drives the external GitHub CLI (gh) for repository
// creation. gh is treated as a black box; every failure is reported to the
// user rather than handled.
package ghcli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/kasperjunge/agent-upd/internal/errors"
)

// Client wraps gh invocations. The binary name is a field so tests can
// point it at a stub.
type Client struct {
	Bin string
}

// New creates a client using the gh binary from PATH.
func New() *Client {
	return &Client{Bin: "gh"}
}

// Authenticated reports whether gh is installed and logged in.
func (c *Client) Authenticated() bool {
	cmd := exec.Command(c.Bin, "auth", "status")
	return cmd.Run() == nil
}

// Username returns the authenticated GitHub login.
func (c *Client) Username() (string, error) {
	cmd := exec.Command(c.Bin, "api", "user", "--jq", ".login")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrap(errors.CodeGHUnavailable, "querying GitHub username", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// RepoExists reports whether the authenticated user already has a
// repository with the given name.
func (c *Client) RepoExists(name string) bool {
	cmd := exec.Command(c.Bin, "repo", "view", name)
	return cmd.Run() == nil
}

// CreateRepo creates a public GitHub repository from the local repo at
// path and pushes it. Returns the repository URL.
func (c *Client) CreateRepo(path, name string) (string, error) {
	cmd := exec.Command(c.Bin, "repo", "create", name, "--public", "--source", path, "--push")
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", errors.GHCreateFailed(name, fmt.Errorf("%w\n%s", err, output))
	}

	username, err := c.Username()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://github.com/%s/%s", username, name), nil
}
