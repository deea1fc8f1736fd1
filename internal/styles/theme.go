// Package styles defines LazyGit-like colors and frame settings for the TUI
// and the matching colors for plain terminal output.
package styles

import (
	"github.com/fatih/color"
	"github.com/jroimartin/gocui"
	"riskdash/internal/catalog"
)

// Colors: dark background, yellow frame, cyan frame on the focused view.
const (
	FrameFg   = gocui.ColorYellow
	FrameBg   = gocui.ColorDefault
	FocusFg   = gocui.ColorCyan
	ViewBg    = gocui.ColorDefault
	ViewFg    = gocui.ColorWhite
	SelBg     = gocui.ColorCyan
	SelFg     = gocui.ColorBlack
	OverlayFg = gocui.ColorWhite
)

// Frame returns frame color attributes for a view (yellow border).
func Frame() (fg, bg gocui.Attribute) {
	return FrameFg, FrameBg
}

// FocusFrame returns frame color attributes for the current view.
func FocusFrame() (fg, bg gocui.Attribute) {
	return FocusFg, FrameBg
}

// Highlight returns attributes for selected row.
func Highlight() (fg, bg gocui.Attribute) {
	return SelFg, SelBg
}

// ANSI escape sequences for coloring text inside a gocui view.
const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiBold   = "\x1b[1m"
)

// Tint wraps s in the ANSI color for status. gocui interprets these
// sequences when writing to a view.
func Tint(st catalog.Status, s string) string {
	switch st {
	case catalog.StatusGood:
		return ansiGreen + s + ansiReset
	case catalog.StatusWarning:
		return ansiYellow + s + ansiReset
	case catalog.StatusCritical:
		return ansiRed + s + ansiReset
	default:
		return s
	}
}

// Bold wraps s in the ANSI bold attribute.
func Bold(s string) string { return ansiBold + s + ansiReset }

var (
	colorGood     = color.New(color.FgGreen)
	colorWarning  = color.New(color.FgYellow)
	colorCritical = color.New(color.FgRed)
	colorTitle    = color.New(color.Bold)
	colorDim      = color.New(color.Faint)
)

// ColorStatus colors s for stdout output according to the status.
func ColorStatus(st catalog.Status, s string) string {
	switch st {
	case catalog.StatusGood:
		return colorGood.Sprint(s)
	case catalog.StatusWarning:
		return colorWarning.Sprint(s)
	case catalog.StatusCritical:
		return colorCritical.Sprint(s)
	default:
		return s
	}
}

// ColorTrend colors a delta green when it improves and red when it worsens.
func ColorTrend(t catalog.Trend, s string) string {
	switch t {
	case catalog.TrendUp:
		return colorGood.Sprint(s)
	case catalog.TrendDown:
		return colorCritical.Sprint(s)
	default:
		return s
	}
}

// Title renders a bold heading for stdout.
func Title(s string) string { return colorTitle.Sprint(s) }

// Dim renders a faint hint for stdout.
func Dim(s string) string { return colorDim.Sprint(s) }
