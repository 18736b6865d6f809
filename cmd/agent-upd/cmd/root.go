package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "agent-upd",
	Short: "Install Claude Code skills, commands, and agents from GitHub",
	Long: `agent-upd installs skills, slash commands, and sub-agents from a user's
agent-resources repository into your project or home directory.

Resources are referenced as <owner>/<name> and fetched from the owner's
agent-resources repository by convention. No registry, no publishing step:
a public git repository is the distribution mechanism.

Examples:
  agent-upd add-skill kasperjunge/analyze-paper
  agent-upd add-command kasperjunge/hello --global
  agent-upd add-agent kasperjunge/code-reviewer --env opencode
  agent-upd create-repo --github`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("agent-upd {{.Version}}\n")
}
