package views

import (
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/mattn/go-runewidth"
	"riskdash/internal/styles"
)

const navViewName = "nav"

func NavName() string { return navViewName }

// NavItem is one section entry in the left pane.
type NavItem struct {
	Key   string
	Label string
}

// navHeaderLines is the number of lines above the first item.
const navHeaderLines = 2

// NavLines builds the left pane body. The selected item is marked with ▸.
func NavLines(items []NavItem, selectedIdx, width int) []string {
	w := max(width-4, 2)
	lines := []string{
		"  ↑/↓ section   1-9 jump",
		"  " + strings.Repeat("─", max(2, w-2)),
	}
	for i, it := range items {
		prefix := "  "
		if i == selectedIdx {
			prefix = "▸ "
		}
		lines = append(lines, prefix+runewidth.Truncate(it.Key+" "+it.Label, w, "…"))
	}
	return lines
}

// RenderNav draws the section list with the health score in its title.
func RenderNav(g *gocui.Gui, x0, y0, x1, y1 int, items []NavItem, selectedIdx int, score string, focused bool) error {
	if v, err := g.SetView(navViewName, x0, y0, x1, y1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = true
		v.FgColor = styles.FrameFg
		v.BgColor = styles.ViewBg
		v.SelFgColor, v.SelBgColor = styles.Highlight()
	}
	v, _ := g.View(navViewName)
	v.Clear()
	v.Highlight = focused
	v.Title = " ◈ Sections "
	if score != "" {
		v.Title = " ◈ Health " + score + " "
	}
	for _, line := range NavLines(items, selectedIdx, x1-x0) {
		fmt.Fprintln(v, line)
	}
	if selectedIdx >= 0 && selectedIdx < len(items) {
		v.SetOrigin(0, 0)
		v.SetCursor(0, selectedIdx+navHeaderLines)
	}
	return nil
}
