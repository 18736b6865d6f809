// Package fetcher downloads agent-resources repositories as tarballs and
// installs the requested resource from them.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/kasperjunge/agent-upd/internal/errors"
	"github.com/kasperjunge/agent-upd/internal/installer"
	"github.com/kasperjunge/agent-upd/internal/logging"
	"github.com/kasperjunge/agent-upd/internal/resource"
)

const (
	// DefaultRepo is the conventional repository name resources are
	// fetched from when no --repo override is given.
	DefaultRepo = "agent-resources"

	// DefaultBranch is the branch whose tarball is downloaded.
	DefaultBranch = "main"

	// DefaultTimeout bounds a single download attempt.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the retry budget for transient download
	// failures.
	DefaultMaxRetries = 3
)

// Options configures a Client.
type Options struct {
	Timeout    time.Duration
	MaxRetries int
	Progress   bool
	Logger     *slog.Logger

	// HTTPClient overrides the default client. Used by tests.
	HTTPClient *http.Client
}

// Client fetches resources from remote repositories.
type Client struct {
	httpClient *http.Client
	retrier    *retrier
	progress   bool
	logger     *slog.Logger
}

// New creates a fetch client.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewDefault()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		retrier:    newRetrier(opts.MaxRetries),
		progress:   opts.Progress,
		logger:     opts.Logger,
	}
}

// Request identifies a resource to fetch and where to install it.
type Request struct {
	Host  string
	Owner string
	Repo  string

	// Name is the resource name. May be empty for skills, in which case
	// it is derived from the repository's root SKILL.md frontmatter.
	Name string

	Kind      resource.Kind
	DestDir   string
	Overwrite bool
}

// Result describes an installed resource.
type Result struct {
	// Name is the resolved resource name (may differ from the request
	// when derived from frontmatter).
	Name string

	// Path is the final installation path.
	Path string
}

// TarballURL returns the archive URL for a repository's default branch.
func TarballURL(host, owner, repo string) string {
	return fmt.Sprintf("https://%s/%s/%s/archive/refs/heads/%s.tar.gz", host, owner, repo, DefaultBranch)
}

// Fetch downloads the repository, locates the requested resource and
// installs it under req.DestDir. The returned result carries the resolved
// name and installation path.
func (c *Client) Fetch(ctx context.Context, req Request) (*Result, error) {
	cfg := resource.Kinds[req.Kind]

	// Fail before downloading when the target is present and overwriting
	// is disabled.
	if req.Name != "" {
		dest := installer.DestPath(req.DestDir, req.Kind, req.Name)
		if installer.Exists(dest) && !req.Overwrite {
			return nil, errors.ResourceExists(string(req.Kind), req.Name, dest)
		}
	}

	tmpDir, err := os.MkdirTemp("", "agent-upd-*")
	if err != nil {
		return nil, errors.Wrap(errors.CodeIOWriteError, "creating temp dir", err)
	}
	defer os.RemoveAll(tmpDir)

	url := TarballURL(req.Host, req.Owner, req.Repo)
	tarballPath := filepath.Join(tmpDir, "repo.tar.gz")

	c.logger.Debug("downloading repository archive", "url", url)
	err = c.retrier.do(ctx, func() error {
		return c.download(ctx, req, url, tarballPath)
	})
	if err != nil {
		return nil, err
	}

	extractDir := filepath.Join(tmpDir, "extracted")
	if err := extractTarball(tarballPath, extractDir); err != nil {
		return nil, err
	}

	// GitHub-style tarballs extract to <repo>-<branch>/.
	repoDir := filepath.Join(extractDir, req.Repo+"-"+DefaultBranch)
	if _, err := os.Stat(repoDir); err != nil {
		return nil, errors.Wrapf(errors.CodeIOReadError, err,
			"repository archive did not contain %s-%s", req.Repo, DefaultBranch)
	}

	name := req.Name
	source, found := "", false
	if name != "" {
		source, found = resource.Locate(repoDir, req.Kind, name)
	}

	// Repositories referenced with an explicit --repo override may be
	// single-skill repos defined by a root-level SKILL.md.
	rootSkillMessage := ""
	if !found && req.Kind == resource.KindSkill && req.Repo != DefaultRepo {
		rootFile, err := resource.FindRootSkillFile(repoDir)
		if err != nil {
			return nil, err
		}
		switch {
		case rootFile == "":
			rootSkillMessage = "Root SKILL.md not found (case-insensitive) in repo root."
		default:
			derived, err := resource.ParseFrontmatterName(rootFile)
			if err != nil {
				var ue *errors.UpdError
				if !errors.As(err, &ue) || ue.Code != errors.CodeFrontmatterInvalid {
					return nil, err
				}
				rootSkillMessage = ue.Message
			} else if name != "" && derived != name {
				rootSkillMessage = fmt.Sprintf("Root SKILL.md frontmatter name %q does not match requested %q.", derived, name)
			} else {
				name = derived
				source = filepath.Dir(rootFile)
				found = true
			}
		}
	}

	if !found {
		return nil, errors.ResourceNotFound(errors.ResourceNotFoundDetails{
			Kind:             string(req.Kind),
			Name:             req.Name,
			Owner:            req.Owner,
			Repo:             req.Repo,
			Host:             req.Host,
			TriedPatterns:    resource.PatternsFor(req.Kind, req.Name),
			FoundDirs:        resource.DiagnoseLayout(repoDir),
			RootSkillMessage: rootSkillMessage,
		})
	}

	dest := installer.DestPath(req.DestDir, req.Kind, name)
	if err := installer.Install(source, dest, req.Kind, name, req.Overwrite); err != nil {
		return nil, err
	}

	c.logger.Debug("installed resource",
		"kind", string(req.Kind), "name", name, "path", dest, "directory", cfg.IsDirectory)

	return &Result{Name: name, Path: dest}, nil
}

// download fetches url into destPath. A 404 maps to repository-not-found;
// other non-200 statuses surface as HTTP status errors.
func (c *Client) download(ctx context.Context, req Request, url, destPath string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.NetworkError(url, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.NetworkError(url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.RepoNotFound(req.Host, req.Owner, req.Repo)
	case resp.StatusCode != http.StatusOK:
		return errors.HTTPStatusError(url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return errors.Wrap(errors.CodeIOWriteError, "creating download file", err)
	}
	defer out.Close()

	var w io.Writer = out
	if c.progress {
		bar := progressbar.DefaultBytes(resp.ContentLength, "downloading")
		defer bar.Close()
		w = io.MultiWriter(out, bar)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return errors.NetworkError(url, err)
	}
	return nil
}
