package views

import (
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/mattn/go-runewidth"
	"riskdash/internal/dashboard"
	"riskdash/internal/styles"
)

const (
	boardViewName  = "board"
	headerViewName = "header"
)

func BoardName() string { return boardViewName }

// BoardLines lays out the cards of a section. It returns the lines and the
// index of the first line of the selected card, or -1 when nothing is
// selected.
func BoardLines(sv dashboard.SectionView, selectedIdx, width int) ([]string, int) {
	w := max(width-2, 10)
	titleW := min(32, w/2)
	var lines []string
	selLine := -1
	for i, c := range sv.Cards {
		if i > 0 {
			lines = append(lines, "")
		}
		mark := "  "
		if i == selectedIdx {
			mark = "▶ "
			selLine = len(lines)
		}
		if c.Value != "" {
			line := mark + pad(c.Title, titleW) + " " + styles.Tint(c.Status, c.Value)
			if c.Delta != "" {
				line += "  " + strings.TrimSpace(c.Arrow+" "+c.Delta)
			}
			if c.Action != "" {
				line += "  [" + c.Action + "]"
			}
			lines = append(lines, line)
			continue
		}
		header := mark + styles.Bold(c.Title)
		if c.Back {
			header += " ↺"
		}
		if c.Action != "" {
			header += "  [" + c.Action + "]"
		}
		lines = append(lines, header)
		lw := 0
		for _, l := range c.Lines {
			lw = max(lw, runewidth.StringWidth(l.Label))
		}
		lw = min(lw, w/2)
		for _, l := range c.Lines {
			line := "    " + pad(l.Label, lw)
			if l.Value != "" {
				line += "  " + l.Value
			}
			lines = append(lines, runewidth.Truncate(line, w, "…"))
		}
		if c.NestedAction != "" {
			lines = append(lines, "    ⇲ "+c.NestedAction+" (v)")
		}
	}
	if len(sv.Cards) == 0 {
		lines = append(lines, "  (no cards in this section)")
	}
	return lines, selLine
}

// RenderBoard draws the active section's cards.
func RenderBoard(g *gocui.Gui, x0, y0, x1, y1 int, sv dashboard.SectionView, selectedIdx int, focused bool) error {
	if v, err := g.SetView(boardViewName, x0, y0, x1, y1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = true
		v.FgColor = styles.ViewFg
		v.BgColor = styles.ViewBg
		v.SelFgColor, v.SelBgColor = styles.Highlight()
	}
	v, _ := g.View(boardViewName)
	v.Clear()
	v.Highlight = focused
	title := sv.Heading
	if title == "" {
		title = sv.Label
	}
	v.Title = " ✧ " + title + " "
	lines, sel := BoardLines(sv, selectedIdx, x1-x0)
	for _, line := range lines {
		fmt.Fprintln(v, line)
	}
	if sel >= 0 {
		h := y1 - y0 - 1
		oy := 0
		if sel >= h {
			oy = sel - h/2
		}
		v.SetOrigin(0, oy)
		v.SetCursor(0, sel-oy)
	}
	return nil
}

// HeaderLine joins the dashboard title, subtitle and score into one line.
func HeaderLine(title, subtitle, score string, width int) string {
	left := title
	if subtitle != "" {
		left += "  ·  " + subtitle
	}
	if score == "" {
		return runewidth.Truncate(left, width, "…")
	}
	right := "Organization Health " + score
	room := width - runewidth.StringWidth(right) - 1
	if room < 1 {
		return runewidth.Truncate(right, width, "…")
	}
	return pad(left, room) + " " + right
}

// RenderHeader draws the title bar above the board.
func RenderHeader(g *gocui.Gui, x0, y0, x1, y1 int, title, subtitle, score string) error {
	if v, err := g.SetView(headerViewName, x0, y0, x1, y1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = true
		v.FgColor = styles.FrameFg
		v.BgColor = styles.ViewBg
	}
	v, _ := g.View(headerViewName)
	v.Clear()
	fmt.Fprint(v, HeaderLine(title, subtitle, score, x1-x0-2))
	return nil
}

func pad(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}
