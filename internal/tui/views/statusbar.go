package views

import (
	"fmt"

	"github.com/jroimartin/gocui"
	"riskdash/internal/styles"
)

const statusBarViewName = "statusBar"

// Help text for the status bar.
const (
	boardHelp   = "⌨ q quit | ↹ tab focus | ←/→ section | ↑/↓ card | enter open | f flip | v report"
	overlayHelp = "⌨ esc/x close | ↑/↓ scroll | q quit"
)

// StatusText picks the help line for the current mode, prefixed by msg when
// there is feedback to show.
func StatusText(overlaid bool, msg string) string {
	help := boardHelp
	if overlaid {
		help = overlayHelp
	}
	if msg != "" {
		return "! " + msg + "  " + help
	}
	return help
}

// RenderStatusBar draws the bottom status bar.
func RenderStatusBar(g *gocui.Gui, x0, y0, x1, y1 int, text string) error {
	if v, err := g.SetView(statusBarViewName, x0, y0, x1, y1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.FgColor = styles.FrameFg
		v.BgColor = styles.ViewBg
	}
	v, _ := g.View(statusBarViewName)
	v.Clear()
	fmt.Fprint(v, text)
	return nil
}
