package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/constant"
	"github.com/anisan-cli/seekbar/icon"
	"github.com/anisan-cli/seekbar/open"
	"github.com/anisan-cli/seekbar/seekbar"
	"github.com/anisan-cli/seekbar/style"
	"github.com/anisan-cli/seekbar/util"
	"github.com/anisan-cli/seekbar/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringP("out", "o", "", "PNG file to write (defaults to the snapshots directory)")
	snapshotCmd.Flags().BoolP("load", "l", false, "Drop the files given as arguments, leaving the bar loading")
	snapshotCmd.Flags().BoolP("ready", "r", false, "Drop the files and let loading finish")
	snapshotCmd.Flags().Float64P("at", "t", 0, "Move the cursor to this many seconds (requires --ready)")
	snapshotCmd.Flags().Float64P("hover", "x", 0, "Put the pointer over the track at this x")
	snapshotCmd.Flags().Bool("open", false, "Open the written file in the default image viewer")
	snapshotCmd.Flags().String("with", "", "Open the written file with this application instead")
	snapshotCmd.MarkFlagsMutuallyExclusive("load", "ready")
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [files...]",
	Short: "Render a single frame of the seek bar to a PNG file",
	Example: `  seekbar snapshot --ready --at 174 --hover 400 -o frame.png
  seekbar snapshot --load movie.mp4`,
	PreRun: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("at") && !lo.Must(cmd.Flags().GetBool("ready")) {
			handleErr(errors.New("--at requires --ready"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			out   = lo.Must(cmd.Flags().GetString("out"))
			load  = lo.Must(cmd.Flags().GetBool("load"))
			ready = lo.Must(cmd.Flags().GetBool("ready"))
		)

		clock := seekbar.NewManualClock(time.Now())
		c, err := newController(clock)
		handleErr(err)

		raster, err := newRaster(c.Options())
		handleErr(err)

		if load || ready {
			if len(args) == 0 {
				args = []string{constant.Seekbar}
			}
			c.Load(args)
		}

		if ready {
			clock.Advance(c.Options().LoadingTime)
			// Loading finishes inside the render pass.
			c.Draw(raster)
		}

		if cmd.Flags().Changed("at") {
			c.SeekTo(lo.Must(cmd.Flags().GetFloat64("at")))
		}

		if cmd.Flags().Changed("hover") {
			c.Move(lo.Must(cmd.Flags().GetFloat64("hover")), c.Options().Height/2)
		}

		c.Draw(raster)

		if out == "" {
			stem := constant.Seekbar
			if files := c.Files(); len(files) > 0 {
				stem = util.FileStem(files[0])
			}
			name := fmt.Sprintf("%s-%s-%s.png", stem, c.Phase(), time.Now().Format("20060102-150405"))
			out = filepath.Join(where.Snapshots(), util.SanitizeFilename(name))
		}

		handleErr(raster.EncodePNG(out))
		fmt.Printf(
			"%s wrote %s frame to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(c.Phase().String()),
			out,
		)

		if app := lo.Must(cmd.Flags().GetString("with")); app != "" || lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.StartWith(out, app))
		}
	},
}
