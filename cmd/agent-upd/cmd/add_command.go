package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kasperjunge/agent-upd/internal/resource"
)

var addCommandOpts addOptions

var addCommandCmd = &cobra.Command{
	Use:     "add-command <owner>/<command-name>",
	Aliases: []string{"upd-command"},
	Short:   "Install a slash command from a user's agent-resources repository",
	Long: `Install a slash command from a user's agent-resources repository.

The command is copied to .claude/commands/<command-name>.md in the current
directory (or ~/.claude/commands/ with --global).

Examples:
  agent-upd add-command kasperjunge/hello
  agent-upd add-command kasperjunge/hello --global`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, resource.KindCommand, args[0], addCommandOpts)
	},
}

func init() {
	registerAddFlags(addCommandCmd, &addCommandOpts)
	rootCmd.AddCommand(addCommandCmd)
}
