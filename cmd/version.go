package cmd

import (
	"os"
	"runtime"
	"strings"

	"github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/constant"
	"github.com/anisan-cli/seekbar/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		rows := [][2]string{
			{"Version", constant.Version},
			{"Git Commit", constant.Revision},
			{"Build Date", strings.TrimSpace(constant.BuiltAt)},
			{"Built By", constant.BuiltBy},
			{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
			{"Go", runtime.Version()},
		}

		label := style.New().Faint(true).Width(16).PaddingLeft(2).Render
		lines := lo.Map(rows, func(r [2]string, _ int) string {
			return label(r[0]) + style.Bold(r[1])
		})

		header := style.Fg(color.Purple)("▇▇▇ " + constant.Seekbar)
		cmd.Println(lipgloss.JoinVertical(lipgloss.Left, append([]string{header, ""}, lines...)...))
	},
}
