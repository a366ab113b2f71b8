package cmd

import (
	"os"

	"github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/config"
	"github.com/anisan-cli/seekbar/style"
	"github.com/anisan-cli/seekbar/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables read at startup",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
		)

		names := append(lo.Map(config.Fields(), func(f config.Field, _ int) string {
			return f.Env()
		}), where.EnvConfigPath)
		slices.Sort(names)

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, env := range names {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			shown := lo.Ternary(present, style.Fg(color.Green)(value), style.Fg(color.Red)("unset"))
			cmd.Println(name(env) + "=" + shown)
		}
	},
}
