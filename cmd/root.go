// Package cmd implements the command-line interface for the seek bar.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/constant"
	"github.com/anisan-cli/seekbar/icon"
	"github.com/anisan-cli/seekbar/key"
	"github.com/anisan-cli/seekbar/log"
	"github.com/anisan-cli/seekbar/style"
	"github.com/anisan-cli/seekbar/window"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	flags := rootCmd.PersistentFlags()
	flags.StringP("icons", "I", "", "Icon variant: "+strings.Join(icon.AvailableVariants(), ", "))
	flags.StringP("assets", "A", "", "Directory holding play, pause, skip, volume and mute PNG icons")
	flags.StringP("chapters", "C", "", "Chapter file (toml, yaml or json) replacing the built-in chapters")

	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(rootCmd.MarkPersistentFlagDirname("assets"))
	lo.Must0(rootCmd.MarkPersistentFlagFilename("chapters", "toml", "yaml", "yml", "json"))

	for flag, k := range map[string]string{
		"icons":    key.IconsVariant,
		"assets":   key.AssetsPath,
		"chapters": key.ChaptersFile,
	} {
		lo.Must0(viper.BindPFlag(k, flags.Lookup(flag)))
	}
}

// rootCmd opens the seek bar window. Files given as arguments are loaded as if dropped on it.
var rootCmd = &cobra.Command{
	Use:           constant.Seekbar + " [files...]",
	Short:         "A media player seek bar with chapters and transport controls",
	SilenceErrors: true,
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A media player seek bar with chapters and transport controls"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		c, err := newController(nil)
		handleErr(err)

		raster, err := newRaster(c.Options())
		handleErr(err)

		if len(args) > 0 {
			c.Load(args)
		}

		handleErr(window.Run(window.New(c, raster), viper.GetString(key.WindowTitle)))
	},
}

// Execute runs the command tree and exits non-zero when it fails.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiMagenta + cc.Bold,
			Commands:      cc.HiGreen + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	handleErr(rootCmd.Execute())
}

// handleErr logs err, reports it on stderr and exits.
func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	msg := strings.TrimSpace(err.Error())
	_, _ = fmt.Fprintln(os.Stderr, icon.Get(icon.Fail), style.Fg(color.Red)(msg))
	os.Exit(1)
}
