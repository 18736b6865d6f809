package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kasperjunge/agent-upd/internal/resource"
)

var addSkillOpts addOptions

var addSkillCmd = &cobra.Command{
	Use:     "add-skill <owner>/<skill-name>",
	Aliases: []string{"upd-skill"},
	Short:   "Install a skill from a user's agent-resources repository",
	Long: `Install a skill from a user's agent-resources repository.

The skill is copied to .claude/skills/<skill-name>/ in the current directory
(or ~/.claude/skills/ with --global). Use --env to install for a different
assistant.

Examples:
  agent-upd add-skill kasperjunge/analyze-paper
  agent-upd add-skill kasperjunge/analyze-paper --global
  agent-upd add-skill gitlab.com/someuser/analyze-paper
  agent-upd add-skill someuser/my-skill --repo my-skills-repo
  agent-upd add-skill steipete-weather --env clawd`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, resource.KindSkill, args[0], addSkillOpts)
	},
}

func init() {
	registerAddFlags(addSkillCmd, &addSkillOpts)
	rootCmd.AddCommand(addSkillCmd)
}
