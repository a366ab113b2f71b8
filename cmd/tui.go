package cmd

import (
	"github.com/anisan-cli/seekbar/key"
	"github.com/anisan-cli/seekbar/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui [files...]",
	Short: "Run the seek bar in the terminal",
	Long: `Run the seek bar in the terminal.
Drag a file onto the terminal window or press o to open one.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newController(nil)
		handleErr(err)

		if len(args) > 0 {
			c.Load(args)
		}

		options := tui.Options{
			CellWidth:  viper.GetFloat64(key.TUICellWidth),
			CellHeight: viper.GetFloat64(key.TUICellHeight),
		}
		handleErr(tui.Run(c, &options))
	},
}
