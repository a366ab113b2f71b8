package cmd

import (
	"os"

	"github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/style"
	"github.com/anisan-cli/seekbar/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a directory `where` can print.
type location struct {
	name  string
	flag  string
	short string
	path  func() string
}

var locations = []location{
	{"Config", "config", "c", where.Config},
	{"Assets", "assets", "a", where.Assets},
	{"Snapshots", "snapshots", "s", where.Snapshots},
	{"Logs", "logs", "l", where.Logs},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, "Print only the "+l.name+" path")
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string { return l.flag })...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the directories the seek bar reads and writes",
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		heading := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, l := range locations {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n%s\n", heading(l.name), style.Fg(color.Yellow)("--"+l.flag), l.path())
		}
	},
}
