package cmd

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kasperjunge/agent-upd/internal/config"
	"github.com/kasperjunge/agent-upd/internal/fetcher"
	"github.com/kasperjunge/agent-upd/internal/installer"
	"github.com/kasperjunge/agent-upd/internal/logging"
	"github.com/kasperjunge/agent-upd/internal/ref"
	"github.com/kasperjunge/agent-upd/internal/resource"
)

// addOptions holds the flags shared by the add-skill, add-command and
// add-agent commands.
type addOptions struct {
	overwrite bool
	global    bool
	repo      string
	dest      string
	env       string
}

// registerAddFlags wires the shared install flags onto an add command.
func registerAddFlags(cmd *cobra.Command, opts *addOptions) {
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", true, "overwrite an existing resource (use --overwrite=false to keep)")
	cmd.Flags().BoolVarP(&opts.global, "global", "g", false, "install to the user-wide location instead of the project")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "repository name to fetch from (default: agent-resources)")
	cmd.Flags().StringVar(&opts.dest, "dest", "", "custom destination path")
	cmd.Flags().StringVar(&opts.env, "env", "", "target environment (claude, codex, opencode, amp, clawd)")
}

// runAdd resolves the reference, fetches the resource and installs it.
func runAdd(cmd *cobra.Command, kind resource.Kind, rawRef string, opts addOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.LoadFromDir(cwd)
	if err != nil {
		return err
	}

	env := opts.env
	if env == "" {
		env = cfg.Defaults.Environment
	}
	repo := opts.repo
	if repo == "" {
		repo = cfg.Defaults.Repo
	}

	// ClawdBot slugs name a single-skill repo hosted by clawdhub on
	// upd.dev; the skill name is derived from the repo's root SKILL.md.
	var r ref.Ref
	name := ""
	if kind == resource.KindSkill && installer.IsClawd(env) && !strings.Contains(rawRef, "/") {
		r = ref.Ref{Host: "upd.dev", Owner: "clawdhub"}
		repo = strings.TrimSpace(rawRef)
	} else {
		r, err = ref.Parse(rawRef)
		if err != nil {
			return err
		}
		name = r.Name
		// A configured default host applies only when the reference
		// did not spell one out.
		if !r.HostExplicit {
			r.Host = cfg.Defaults.Host
		}
	}

	destDir, err := installer.ResolveDestination(env, kind, opts.global, opts.dest)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	client := fetcher.New(fetcher.Options{
		Timeout:    cfg.Fetch.Timeout,
		MaxRetries: cfg.Fetch.MaxRetries,
		Progress:   cfg.Fetch.Progress,
		Logger:     logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := client.Fetch(ctx, fetcher.Request{
		Host:      r.Host,
		Owner:     r.Owner,
		Repo:      repo,
		Name:      name,
		Kind:      kind,
		DestDir:   destDir,
		Overwrite: opts.overwrite,
	})
	if err != nil {
		return err
	}

	printSuccess(cmd, kind, r.Host, result.Name, r.Owner)
	return nil
}

// newLogger builds the command logger, honoring --verbose over the
// configured level.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if verbose {
		return logging.NewWithLevel(slog.LevelDebug), nil, nil
	}
	logger, closer, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return logger, closer, nil
}
