package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kasperjunge/agent-upd/internal/cli"
	"github.com/kasperjunge/agent-upd/internal/errors"
	"github.com/kasperjunge/agent-upd/internal/fetcher"
	"github.com/kasperjunge/agent-upd/internal/ghcli"
	"github.com/kasperjunge/agent-upd/internal/scaffold"
)

var (
	createRepoPath   string
	createRepoGithub bool
	createRepoYes    bool
)

var createRepoCmd = &cobra.Command{
	Use:     "create-repo",
	Aliases: []string{"create-agent-resources-repo"},
	Short:   "Create a personal agent-resources repository",
	Long: `Create a new agent-resources repository with starter content.

Creates a directory structure with an example skill, command, and agent,
initializes git, and optionally creates and pushes a GitHub repository.

Examples:
  agent-upd create-repo
  agent-upd create-repo --github
  agent-upd create-repo --path ~/my-agent-resources`,
	Args: cobra.NoArgs,
	RunE: runCreateRepo,
}

func init() {
	createRepoCmd.Flags().StringVarP(&createRepoPath, "path", "p", "", "directory to create (default: ./agent-resources)")
	createRepoCmd.Flags().BoolVarP(&createRepoGithub, "github", "g", false, "create GitHub repository and push (requires gh CLI)")
	createRepoCmd.Flags().BoolVar(&createRepoYes, "yes", false, "skip the confirmation prompt before pushing")
	rootCmd.AddCommand(createRepoCmd)
}

func runCreateRepo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	outputPath := createRepoPath
	if outputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		outputPath = filepath.Join(cwd, fetcher.DefaultRepo)
	}

	if _, err := os.Stat(outputPath); err == nil {
		return errors.ScaffoldExists(outputPath)
	}

	gh := ghcli.New()
	username := "<username>"
	if createRepoGithub {
		if !gh.Authenticated() {
			return errors.GHUnavailable()
		}
		if gh.RepoExists(fetcher.DefaultRepo) {
			return errors.GHRepoExists(fetcher.DefaultRepo)
		}
		name, err := gh.Username()
		if err != nil {
			return err
		}
		username = name
	}

	fmt.Fprintf(out, "Creating agent-resources repository at %s...\n", outputPath)
	if err := scaffold.CreateRepo(outputPath, username); err != nil {
		return err
	}
	fmt.Fprintln(out, "  Created directory structure")
	fmt.Fprintln(out, "  Added hello-world skill")
	fmt.Fprintln(out, "  Added hello command")
	fmt.Fprintln(out, "  Added hello-agent agent")
	fmt.Fprintln(out, "  Created README.md")

	if err := scaffold.InitGit(outputPath); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "  Warning: could not initialize git repository: %v\n", err)
	} else {
		fmt.Fprintln(out, "  Initialized git repository")
	}

	if !createRepoGithub {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintln(out, "  1. Create a GitHub repository named 'agent-resources'")
		fmt.Fprintf(out, "  2. cd %s\n", outputPath)
		fmt.Fprintln(out, "  3. git remote add origin <your-repo-url>")
		fmt.Fprintln(out, "  4. git push -u origin main")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Or use --github flag to automate this (requires gh CLI)")
		return nil
	}

	if !createRepoYes {
		ok, err := cli.Confirm("Create and push public GitHub repository 'agent-resources'?", true)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Skipped GitHub push. The local repository is ready.")
			return nil
		}
	}

	fmt.Fprintln(out, "Creating GitHub repository...")
	repoURL, err := gh.CreateRepo(outputPath, fetcher.DefaultRepo)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "  Pushed to %s\n", repoURL)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Your agent-resources repo is ready!")
	fmt.Fprintln(out, "Others can now install your resources:")
	fmt.Fprintf(out, "  agent-upd add-skill %s/hello-world\n", username)
	fmt.Fprintf(out, "  agent-upd add-command %s/hello\n", username)
	fmt.Fprintf(out, "  agent-upd add-agent %s/hello-agent\n", username)
	return nil
}
