package views

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"riskdash/internal/catalog"
	"riskdash/internal/dashboard"
)

func sectionView(t *testing.T, sec catalog.Section, flip ...string) dashboard.SectionView {
	t.Helper()
	st, err := dashboard.New(catalog.Builtin(), dashboard.WithDefaultSection(sec))
	require.NoError(t, err)
	for _, id := range flip {
		st.ToggleFlip(id)
	}
	return dashboard.ViewSection(st.Catalog(), st)
}

func TestNavLines(t *testing.T) {
	items := []NavItem{{Key: "1", Label: "Overview"}, {Key: "2", Label: "Insider Risk"}}
	lines := NavLines(items, 1, 30)
	require.Len(t, lines, navHeaderLines+2)
	assert.Equal(t, "  1 Overview", lines[navHeaderLines])
	assert.Equal(t, "▸ 2 Insider Risk", lines[navHeaderLines+1])
}

func TestNavLinesTruncates(t *testing.T) {
	lines := NavLines([]NavItem{{Key: "1", Label: strings.Repeat("x", 50)}}, 0, 20)
	assert.LessOrEqual(t, runewidth.StringWidth(lines[navHeaderLines]), 18)
	assert.True(t, strings.HasSuffix(lines[navHeaderLines], "…"))
}

func TestBoardLinesSelection(t *testing.T) {
	sv := sectionView(t, catalog.SectionOverview)
	lines, sel := BoardLines(sv, 1, 100)
	require.GreaterOrEqual(t, sel, 0)
	assert.True(t, strings.HasPrefix(lines[sel], "▶ Security Score"))
	assert.Contains(t, lines[sel], "87")
	assert.Contains(t, lines[sel], "▲ +3 pts")

	_, sel = BoardLines(sv, -1, 100)
	assert.Equal(t, -1, sel)
}

func TestBoardLinesFlipCard(t *testing.T) {
	front, _ := BoardLines(sectionView(t, catalog.SectionCulture), 0, 100)
	text := strings.Join(front, "\n")
	assert.Contains(t, text, "Click Rate")
	assert.Contains(t, text, "[flip for history]")
	assert.NotContains(t, text, "View Detailed Report")

	back, _ := BoardLines(sectionView(t, catalog.SectionCulture, "culture.phishing"), 0, 100)
	text = strings.Join(back, "\n")
	assert.Contains(t, text, "6-Month Trend")
	assert.Contains(t, text, "December")
	assert.Contains(t, text, "⇲ View Detailed Report (v)")
	assert.NotContains(t, text, "Click Rate")
}

func TestBoardLinesEmpty(t *testing.T) {
	lines, sel := BoardLines(dashboard.SectionView{Section: catalog.SectionRisk}, 0, 80)
	assert.Equal(t, []string{"  (no cards in this section)"}, lines)
	assert.Equal(t, -1, sel)
}

func TestHeaderLine(t *testing.T) {
	line := HeaderLine("Dash", "sub", "87/100", 60)
	assert.Equal(t, 60, runewidth.StringWidth(line))
	assert.True(t, strings.HasPrefix(line, "Dash  ·  sub"))
	assert.True(t, strings.HasSuffix(line, "Organization Health 87/100"))

	assert.Equal(t, "Dash", HeaderLine("Dash", "", "", 60))
	assert.Equal(t, "Organization…", HeaderLine("Dash", "", "87/100", 13))
}

func TestOverlayLines(t *testing.T) {
	set, ok := catalog.Builtin().Detail(catalog.DetailCompliance)
	require.True(t, ok)
	lines := OverlayLines(dashboard.RenderDetail(set), 70)
	assert.Equal(t, "esc/x close", lines[len(lines)-1])
	assert.Contains(t, lines[0], "FRAMEWORK")
	assert.Contains(t, lines[0], "SOC 2 Type II")

	empty := OverlayLines(dashboard.Overlay{Title: "Empty"}, 70)
	assert.Equal(t, []string{"(no records)", "", "esc/x close"}, empty)
}

func TestOverlayBounds(t *testing.T) {
	x0, y0, x1, y1 := OverlayBounds(120, 40)
	assert.Equal(t, 12, x0)
	assert.Equal(t, 5, y0)
	assert.Equal(t, 107, x1)
	assert.Equal(t, 34, y1)
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, boardHelp, StatusText(false, ""))
	assert.Equal(t, overlayHelp, StatusText(true, ""))
	assert.True(t, strings.HasPrefix(StatusText(false, "oops"), "! oops  "))
}

func TestLogoHeight(t *testing.T) {
	assert.Equal(t, 6, LogoHeight())
}
