package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kasperjunge/agent-upd/internal/ref"
	"github.com/kasperjunge/agent-upd/internal/resource"
)

var dimStyle = lipgloss.NewStyle().Faint(true)

// printSuccess prints the install confirmation plus one rotating
// call-to-action line.
func printSuccess(cmd *cobra.Command, kind resource.Kind, host, name, owner string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("✅ Added %s '%s' via 🧩 agent-upd", kind, name)))

	hostVisible := host + "/"
	if host == ref.DefaultHost {
		hostVisible = ""
	}

	ctas := []string{
		fmt.Sprintf("💡 Create your own %s library on GitHub: agent-upd create-repo --github", kind),
		"⭐ Star project: github.com/kasperjunge/agent-upd",
		"🔭 Explore more skills: https://upd.dev/skills",
		fmt.Sprintf("📢 Share: agent-upd add-%s %s%s/%s", kind, hostVisible, owner, name),
	}
	fmt.Fprintln(out, dimStyle.Render(ctas[rand.IntN(len(ctas))]))
}
