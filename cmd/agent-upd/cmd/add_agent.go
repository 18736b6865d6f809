package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kasperjunge/agent-upd/internal/resource"
)

var addAgentOpts addOptions

var addAgentCmd = &cobra.Command{
	Use:     "add-agent <owner>/<agent-name>",
	Aliases: []string{"upd-agent"},
	Short:   "Install a sub-agent from a user's agent-resources repository",
	Long: `Install a sub-agent from a user's agent-resources repository.

The agent is copied to .claude/agents/<agent-name>.md in the current
directory (or ~/.claude/agents/ with --global).

Examples:
  agent-upd add-agent kasperjunge/code-reviewer
  agent-upd add-agent kasperjunge/test-writer --global`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, resource.KindAgent, args[0], addAgentOpts)
	},
}

func init() {
	registerAddFlags(addAgentCmd, &addAgentOpts)
	rootCmd.AddCommand(addAgentCmd)
}
