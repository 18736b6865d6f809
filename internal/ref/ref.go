// Package ref parses resource references of the form [host/]owner/name.
package ref

import (
	"strings"

	"github.com/goware/urlx"

	"github.com/kasperjunge/agent-upd/internal/errors"
)

// DefaultHost is the git host assumed when a reference has no host segment.
const DefaultHost = "github.com"

const expectedFormat = "<owner>/<name> or <host>/<owner>/<name>"

// Ref is a fully resolved resource reference.
type Ref struct {
	Host  string // Git host, e.g. "github.com"
	Owner string // Repository owner
	Name  string // Resource name

	// HostExplicit is true when the reference spelled out the host, as
	// opposed to falling back to DefaultHost. Explicit hosts are never
	// overridden by a configured default.
	HostExplicit bool
}

// Parse splits a reference into host, owner and name.
//
// Accepted forms:
//   - owner/name                   (host defaults to github.com)
//   - host.tld/owner/name          (first segment must contain a dot)
//   - https://host/owner/name(.git)
//
// A trailing ".git" is stripped from the name.
func Parse(raw string) (Ref, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Ref{}, errors.RefInvalid(raw, "a non-empty reference")
	}

	host := DefaultHost
	hostExplicit := false
	path := raw

	if strings.Contains(raw, "://") {
		u, err := urlx.Parse(raw)
		if err != nil || u.Host == "" {
			return Ref{}, errors.RefInvalid(raw, expectedFormat+" or a repository URL")
		}
		host = u.Host
		hostExplicit = true
		path = strings.TrimPrefix(u.Path, "/")
	}

	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	var owner, name string
	switch {
	case len(parts) == 3 && !hostExplicit && strings.Contains(parts[0], "."):
		host, owner, name = parts[0], parts[1], parts[2]
		hostExplicit = true
	case len(parts) == 2:
		owner, name = parts[0], parts[1]
	default:
		return Ref{}, errors.RefInvalid(raw, expectedFormat)
	}

	name = strings.TrimSuffix(name, ".git")
	if owner == "" || name == "" {
		return Ref{}, errors.RefInvalid(raw, expectedFormat)
	}

	return Ref{Host: host, Owner: owner, Name: name, HostExplicit: hostExplicit}, nil
}

// String returns the reference in host/owner/name form, omitting the
// default host.
func (r Ref) String() string {
	if r.Host == "" || r.Host == DefaultHost {
		return r.Owner + "/" + r.Name
	}
	return r.Host + "/" + r.Owner + "/" + r.Name
}
