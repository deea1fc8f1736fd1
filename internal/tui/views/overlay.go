package views

import (
	"fmt"

	"github.com/jroimartin/gocui"
	"riskdash/internal/dashboard"
	"riskdash/internal/styles"
)

const overlayViewName = "overlay"

func OverlayName() string { return overlayViewName }

// OverlayBounds centers the modal in a maxX×maxY screen, leaving a margin of
// backdrop on every side.
func OverlayBounds(maxX, maxY int) (x0, y0, x1, y1 int) {
	mx := max(maxX/10, 2)
	my := max(maxY/8, 1)
	return mx, my, maxX - mx - 1, maxY - my - 1
}

// OverlayLines builds the modal body: the record grid followed by the
// dismiss hint.
func OverlayLines(o dashboard.Overlay, width int) []string {
	lines := o.Lines(max(width-2, 8))
	if len(o.Rows) == 0 {
		lines = append(lines, "(no records)")
	}
	return append(lines, "", "esc/x close")
}

// RenderOverlay draws the detail overlay above every other view.
func RenderOverlay(g *gocui.Gui, o dashboard.Overlay) error {
	maxX, maxY := g.Size()
	x0, y0, x1, y1 := OverlayBounds(maxX, maxY)
	v, err := g.SetView(overlayViewName, x0, y0, x1, y1)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = true
		v.FgColor = styles.OverlayFg
		v.BgColor = styles.ViewBg
		v.Wrap = false
	}
	v.Clear()
	v.Title = " " + o.Title + " "
	for _, line := range OverlayLines(o, x1-x0) {
		fmt.Fprintln(v, line)
	}
	if _, err := g.SetViewOnTop(overlayViewName); err != nil {
		return err
	}
	if _, err := g.SetCurrentView(overlayViewName); err != nil {
		return err
	}
	return nil
}

// CloseOverlay removes the overlay view if it is shown.
func CloseOverlay(g *gocui.Gui) error {
	if err := g.DeleteView(overlayViewName); err != nil && err != gocui.ErrUnknownView {
		return err
	}
	return nil
}

// ScrollOverlay moves the overlay origin by dy lines.
func ScrollOverlay(g *gocui.Gui, dy int) {
	v, err := g.View(overlayViewName)
	if err != nil {
		return
	}
	ox, oy := v.Origin()
	oy = max(oy+dy, 0)
	if n := len(v.BufferLines()); oy >= n {
		oy = max(n-1, 0)
	}
	v.SetOrigin(ox, oy)
}
