// Package report renders the dashboard outside the TUI: colored terminal
// text for a section or a drill-down, and JSON snapshots.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"riskdash/internal/catalog"
	"riskdash/internal/dashboard"
	"riskdash/internal/styles"
)

const defaultWidth = 100

// WriteSection prints the active section of st as text.
func WriteSection(w io.Writer, st *dashboard.State, width int) error {
	if width <= 0 {
		width = defaultWidth
	}
	cat := st.Catalog()
	v := dashboard.ViewSection(cat, st)
	var b strings.Builder
	fmt.Fprintln(&b, styles.Title(cat.Title))
	if cat.Subtitle != "" {
		fmt.Fprintln(&b, styles.Dim(cat.Subtitle))
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, tabBar(st))
	fmt.Fprintln(&b)
	heading := v.Heading
	if heading == "" {
		heading = v.Label
	}
	fmt.Fprintln(&b, styles.Title(heading))
	fmt.Fprintln(&b, strings.Repeat("─", min(width, runewidth.StringWidth(heading)+4)))
	for _, c := range v.Cards {
		writeCard(&b, c, width)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func tabBar(st *dashboard.State) string {
	parts := make([]string, 0, len(st.Sections()))
	for _, s := range st.Sections() {
		if s == st.ActiveSection() {
			parts = append(parts, styles.Title("["+s.Label()+"]"))
		} else {
			parts = append(parts, s.Label())
		}
	}
	return strings.Join(parts, "  ")
}

func writeCard(b *strings.Builder, c dashboard.CardView, width int) {
	title := c.Title
	if c.Value != "" {
		value := styles.ColorStatus(c.Status, c.Value)
		line := "  " + pad(title, 32) + " " + value
		if c.Delta != "" {
			line += "  " + styles.ColorTrend(trendOf(c.Arrow), strings.TrimSpace(c.Arrow+" "+c.Delta))
		}
		if c.Action != "" {
			line += "  " + styles.Dim("("+c.Action+")")
		}
		fmt.Fprintln(b, line)
		return
	}
	header := "  ▸ " + title
	if c.Back {
		header += " (back)"
	}
	if c.Action != "" {
		header += "  " + styles.Dim("("+c.Action+")")
	}
	fmt.Fprintln(b, header)
	lw := 0
	for _, l := range c.Lines {
		lw = max(lw, runewidth.StringWidth(l.Label))
	}
	lw = min(lw, width/2)
	for _, l := range c.Lines {
		line := "      " + pad(l.Label, lw)
		if l.Value != "" {
			line += "  " + l.Value
		}
		fmt.Fprintln(b, runewidth.Truncate(line, width, "…"))
	}
	if c.NestedAction != "" {
		fmt.Fprintln(b, "      "+styles.Dim("["+c.NestedAction+"]"))
	}
}

func trendOf(arrow string) catalog.Trend {
	switch arrow {
	case dashboard.TrendArrow(catalog.TrendUp):
		return catalog.TrendUp
	case dashboard.TrendArrow(catalog.TrendDown):
		return catalog.TrendDown
	default:
		return catalog.TrendNone
	}
}

// WriteDetail prints a rendered detail set as a titled label/value grid.
func WriteDetail(w io.Writer, o dashboard.Overlay, width int) error {
	if width <= 0 {
		width = defaultWidth
	}
	var b strings.Builder
	fmt.Fprintln(&b, styles.Title(o.Title))
	fmt.Fprintln(&b, strings.Repeat("═", min(width, max(8, runewidth.StringWidth(o.Title)))))
	if len(o.Rows) == 0 {
		fmt.Fprintln(&b, styles.Dim("(no records)"))
	}
	for _, line := range o.Lines(width) {
		fmt.Fprintln(&b, line)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSections lists the selectable sections, marking the active one.
func WriteSections(w io.Writer, st *dashboard.State) error {
	for _, s := range st.Sections() {
		mark := " "
		if s == st.ActiveSection() {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %-12s %s\n", mark, s, s.Label()); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}
