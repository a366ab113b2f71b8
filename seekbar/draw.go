package seekbar

import (
	"github.com/anisan-cli/seekbar/log"
	"github.com/anisan-cli/seekbar/paint"
	"github.com/anisan-cli/seekbar/timefmt"
)

// Draw paints one frame onto cv. While Loading it also advances the sweep and,
// once the loading time has passed, moves the controller to Ready.
func (c *Controller) Draw(cv paint.Canvas) {
	cv.Clear(paint.White)

	switch c.phase {
	case Unloaded:
		c.drawTrack(cv)
	case Loading:
		c.drawLoading(cv)
	case Ready:
		c.drawChapters(cv)
		c.drawIcons(cv)
		c.drawElapsed(cv)
		if c.cursorVisible {
			cv.DrawCircle(c.cursorX, c.cursorY, CursorRadius, c.opts.Accent)
		}
	}
}

// Frame paints one frame into a recorder and returns its primitives.
func (c *Controller) Frame(m paint.Measurer) []paint.Op {
	rec := paint.NewRecorder(m)
	c.Draw(rec)
	return rec.Ops()
}

func (c *Controller) trackRect() paint.Rect {
	return paint.Rect{
		X: c.opts.Padding,
		Y: c.opts.Height/2 - c.opts.TrackHeight/2,
		W: c.opts.TrackWidth(),
		H: c.opts.TrackHeight,
	}
}

func (c *Controller) drawTrack(cv paint.Canvas) {
	cv.FillRect(c.trackRect(), paint.Gray)
}

func (c *Controller) drawLoading(cv paint.Canvas) {
	c.sweep += LoadingStep
	if c.sweep > 1 {
		c.sweep = 0
	}

	track := c.trackRect()
	cv.FillRect(track, paint.Gray)

	segment := track
	segment.X += c.sweep * (c.opts.Width - LoadingTravelInset)
	segment.W = LoadingSegmentWidth
	cv.FillRect(segment, c.opts.Accent)

	if c.clock.Now().Sub(c.loadStart) >= c.opts.LoadingTime {
		c.phase = Ready
		c.sweep = 0
		c.icons.SetEnabled(true)
		log.Info("loading file completed")
	}
}

func (c *Controller) drawChapters(cv paint.Canvas) {
	mid := c.opts.Height / 2

	for i, ch := range c.chapters.Chapters() {
		top := mid - ch.Height/2

		played, unplayed := c.chapters.Fill(i, c.cursorX)
		cv.FillRect(paint.Rect{X: played.X, Y: top, W: played.Width, H: ch.Height}, c.opts.Accent)
		cv.FillRect(paint.Rect{X: unplayed.X, Y: top, W: unplayed.Width, H: ch.Height}, paint.Gray)
		cv.FillRect(paint.Rect{X: c.chapters.MarkerX(i), Y: top, W: MarkerWidth, H: ch.Height}, paint.White)

		if !ch.Hovered {
			continue
		}

		c.drawCentered(cv, ch.Label, ch.AnchorX, top-labelLift)
		c.drawCentered(cv, timefmt.Format(c.TimeAt(ch.AnchorX)), ch.AnchorX, top-timeLabelLift)
	}
}

func (c *Controller) drawCentered(cv paint.Canvas, s string, x, y float64) {
	w, _ := cv.MeasureText(s, c.opts.Font)
	cv.DrawText(s, x-w/2, y, c.opts.Font, paint.Black)
}

func (c *Controller) drawIcons(cv paint.Canvas) {
	for _, icon := range c.icons.Icons() {
		img := c.assets.Get(icon.Image)
		if img == nil {
			log.Warnf("no image for icon %s", icon.Image)
			continue
		}

		x, y := icon.ImageOrigin(img.Size())
		cv.DrawImage(img, x, y)
	}
}

func (c *Controller) drawElapsed(cv paint.Canvas) {
	cv.DrawText(
		timefmt.Span(c.current, c.opts.Duration),
		c.opts.Padding+elapsedOffsetX,
		c.cursorY+elapsedOffsetY,
		c.opts.Font,
		paint.Black,
	)
}
