// Package errors provides structured error types for agent-upd.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error codes for agent-upd operations.
const (
	// Reference errors
	CodeRefInvalid = "REF_001" // Reference cannot be split into segments

	// Repository errors
	CodeRepoNotFound = "REPO_001" // Remote repository does not exist

	// Resource errors
	CodeResourceNotFound   = "RES_001" // Resource not found in repository
	CodeResourceExists     = "RES_002" // Resource already installed locally
	CodeFrontmatterInvalid = "RES_003" // Root SKILL.md frontmatter unusable

	// Network errors
	CodeNetworkError = "NET_001" // Transport-level failure
	CodeHTTPStatus   = "NET_002" // Unexpected HTTP status

	// Scaffold errors
	CodeScaffoldExists = "SCAFFOLD_001" // Target directory already exists
	CodeScaffoldFailed = "SCAFFOLD_002" // Scaffold write or git init failed

	// GitHub CLI errors
	CodeGHUnavailable  = "GH_001" // gh not installed or not authenticated
	CodeGHRepoExists   = "GH_002" // Remote repo with that name exists
	CodeGHCreateFailed = "GH_003" // gh repo create failed

	// IO errors
	CodeIOReadError  = "IO_001" // Read error
	CodeIOWriteError = "IO_002" // Write error
)

// UpdError is the structured error type for agent-upd operations.
type UpdError struct {
	Code    string         `json:"code"`              // Error code (e.g., "RES_001")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (ref, host, repo, etc.)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *UpdError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *UpdError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *UpdError) WithDetail(key string, value any) *UpdError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error.
func (e *UpdError) WithCause(err error) *UpdError {
	e.Cause = err
	return e
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *UpdError) MarshalJSON() ([]byte, error) {
	type alias UpdError
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new UpdError.
func New(code, message string) *UpdError {
	return &UpdError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new UpdError with formatted message.
func Newf(code, format string, args ...any) *UpdError {
	return &UpdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with an UpdError.
func Wrap(code, message string, err error) *UpdError {
	return &UpdError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted UpdError.
func Wrapf(code string, err error, format string, args ...any) *UpdError {
	return &UpdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// HasCode reports whether err (or any error it wraps) is an UpdError
// with the given code.
func HasCode(err error, code string) bool {
	var ue *UpdError
	if !errors.As(err, &ue) {
		return false
	}
	return ue.Code == code
}

// --- Reference Errors ---

// RefInvalid creates an error for a malformed resource reference.
func RefInvalid(ref, expected string) *UpdError {
	return Newf(CodeRefInvalid, "invalid reference %q: expected %s", ref, expected).
		WithDetail("ref", ref)
}

// --- Repository Errors ---

// RepoNotFound creates an error for a missing remote repository.
func RepoNotFound(host, owner, repo string) *UpdError {
	return Newf(CodeRepoNotFound, "repository '%s/%s' not found on %s", owner, repo, host).
		WithDetail("host", host).
		WithDetail("owner", owner).
		WithDetail("repo", repo)
}

// --- Resource Errors ---

// ResourceNotFoundDetails carries the diagnostic context assembled when a
// resource cannot be located in a downloaded repository.
type ResourceNotFoundDetails struct {
	Kind             string   // "skill", "command", or "agent"
	Name             string   // Requested name, may be empty
	Owner            string   // Repository owner
	Repo             string   // Repository name
	Host             string   // Repository host
	TriedPatterns    []string // Locations searched, in order
	FoundDirs        []string // Layout directories that do exist in the repo
	RootSkillMessage string   // Outcome of the root SKILL.md fallback, if any
}

// ResourceNotFound creates an error explaining where the resource was looked
// for and how the user might fix the reference.
func ResourceNotFound(d ResourceNotFoundDetails) *UpdError {
	displayName := d.Name
	if displayName == "" {
		displayName = "<unspecified>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s '%s' not found in %s/%s.\n", capitalize(d.Kind), displayName, d.Owner, d.Repo)
	b.WriteString("Tried these locations:\n")
	for _, p := range d.TriedPatterns {
		fmt.Fprintf(&b, "- %s\n", p)
	}

	if len(d.FoundDirs) == 0 {
		b.WriteString("\nRepository structure issues:\n")
		b.WriteString("- Repository doesn't match common agent-resources patterns.\n")
		b.WriteString("- Expected: .claude/skills/, skills/, or skill/ directories.\n")
	} else {
		fmt.Fprintf(&b, "\nFound directories: %s\n", strings.Join(d.FoundDirs, ", "))
	}

	if d.RootSkillMessage != "" {
		b.WriteString("\nManual repo override check:\n")
		fmt.Fprintf(&b, "- %s\n", d.RootSkillMessage)
	}

	b.WriteString("\nQuick fixes:\n")
	b.WriteString("- Double-check the resource name\n")
	b.WriteString("- Try --repo REPO_NAME if using a different repository\n")
	b.WriteString("- Try --dest PATH for custom installation location\n")
	fmt.Fprintf(&b, "- Visit https://%s/%s/%s to verify the resource exists", d.Host, d.Owner, d.Repo)

	return New(CodeResourceNotFound, b.String()).
		WithDetail("kind", d.Kind).
		WithDetail("name", d.Name).
		WithDetail("owner", d.Owner).
		WithDetail("repo", d.Repo)
}

// ResourceExists creates an error for a locally present resource.
func ResourceExists(kind, name, path string) *UpdError {
	return Newf(CodeResourceExists, "%s '%s' already exists at %s\nUse --overwrite to replace it.", capitalize(kind), name, path).
		WithDetail("kind", kind).
		WithDetail("name", name).
		WithDetail("path", path)
}

// FrontmatterInvalid creates an error for an unusable root SKILL.md.
func FrontmatterInvalid(reason string) *UpdError {
	return New(CodeFrontmatterInvalid, reason)
}

// --- Network Errors ---

// NetworkError creates an error for a transport-level failure.
func NetworkError(url string, err error) *UpdError {
	return Wrapf(CodeNetworkError, err, "network error fetching %s", url).
		WithDetail("url", url)
}

// HTTPStatusError creates an error for an unexpected HTTP status.
func HTTPStatusError(url string, status int) *UpdError {
	return Newf(CodeHTTPStatus, "unexpected HTTP status %d fetching %s", status, url).
		WithDetail("url", url).
		WithDetail("status", status)
}

// --- Scaffold Errors ---

// ScaffoldExists creates an error for an occupied scaffold target.
func ScaffoldExists(path string) *UpdError {
	return Newf(CodeScaffoldExists, "directory already exists: %s", path).
		WithDetail("path", path)
}

// ScaffoldFailed creates an error for a failed scaffold step.
func ScaffoldFailed(step string, err error) *UpdError {
	return Wrapf(CodeScaffoldFailed, err, "scaffold step %q failed", step).
		WithDetail("step", step)
}

// --- GitHub CLI Errors ---

// GHUnavailable creates an error for a missing or unauthenticated gh CLI.
func GHUnavailable() *UpdError {
	return New(CodeGHUnavailable, "GitHub CLI (gh) is not installed or not authenticated.\nInstall: https://cli.github.com/\nThen run: gh auth login")
}

// GHRepoExists creates an error for an already-existing remote repository.
func GHRepoExists(name string) *UpdError {
	return Newf(CodeGHRepoExists, "repository %q already exists on GitHub.\nDelete it first or scaffold under a different name.", name).
		WithDetail("repo", name)
}

// GHCreateFailed creates an error for a failed gh repo create.
func GHCreateFailed(name string, err error) *UpdError {
	return Wrapf(CodeGHCreateFailed, err, "could not create GitHub repository %q", name).
		WithDetail("repo", name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
