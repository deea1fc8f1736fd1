// Package tui runs the LazyGit-style terminal UI using gocui.
package tui

import (
	"context"
	"errors"

	"github.com/jroimartin/gocui"
	"riskdash/internal/dashboard"
	"riskdash/internal/styles"
	"riskdash/internal/tui/views"
)

const (
	navW       = 34
	headerH    = 2
	statusBarH = 2
	minW       = navW + 20
)

// Run starts the TUI with the given state. It blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, state *AppState) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return err
	}
	defer g.Close()
	g.Cursor = false
	g.Mouse = false
	g.InputEsc = true
	g.Highlight = true
	g.FgColor, g.BgColor = styles.Frame()
	g.SelFgColor, g.SelBgColor = styles.FocusFrame()

	g.SetManagerFunc(layout(state))
	if err := bindKeys(g, state); err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
	}()

	state.log.Info("tui started", "section", string(state.dash.ActiveSection()))
	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	state.log.Info("tui stopped")
	return nil
}

func layout(state *AppState) func(*gocui.Gui) error {
	return func(g *gocui.Gui) error {
		maxX, maxY := g.Size()
		logoH := views.LogoHeight()
		if maxX < minW || maxY < logoH+headerH+statusBarH+6 {
			return nil
		}
		dash := state.Dashboard()
		cat := dash.Catalog()
		score := state.HeaderScore()
		bottom := maxY - statusBarH

		if err := views.RenderNav(g, 0, 0, navW, bottom-logoH-1, state.NavItems(), state.NavIndex(), score,
			state.Focus() == FocusNav && !dash.Overlaid()); err != nil {
			return err
		}
		if err := views.RenderLogo(g, 0, bottom-logoH, navW, bottom); err != nil {
			return err
		}
		if err := views.RenderHeader(g, navW+1, 0, maxX-1, headerH, cat.Title, cat.Subtitle, score); err != nil {
			return err
		}
		sv := dashboard.ViewSection(cat, dash)
		if err := views.RenderBoard(g, navW+1, headerH+1, maxX-1, bottom, sv, state.CardIndex(),
			state.Focus() == FocusBoard && !dash.Overlaid()); err != nil {
			return err
		}
		if err := views.RenderStatusBar(g, 0, bottom, maxX, maxY, views.StatusText(dash.Overlaid(), state.Message())); err != nil {
			return err
		}

		if o, ok := state.Overlay(); ok {
			return views.RenderOverlay(g, o)
		}
		if err := views.CloseOverlay(g); err != nil {
			return err
		}
		current := views.NavName()
		if state.Focus() == FocusBoard {
			current = views.BoardName()
		}
		if _, err := g.SetCurrentView(current); err != nil && err != gocui.ErrUnknownView {
			return err
		}
		return nil
	}
}

type binding struct {
	key     interface{}
	handler func(*gocui.Gui, *gocui.View) error
}

func bindKeys(g *gocui.Gui, state *AppState) error {
	up := func(_ *gocui.Gui, _ *gocui.View) error {
		switch {
		case state.dash.Overlaid():
			views.ScrollOverlay(g, -1)
		case state.Focus() == FocusNav:
			return ignoreRejected(state.MoveSection(-1))
		default:
			state.MoveCard(-1)
		}
		return nil
	}
	down := func(_ *gocui.Gui, _ *gocui.View) error {
		switch {
		case state.dash.Overlaid():
			views.ScrollOverlay(g, 1)
		case state.Focus() == FocusNav:
			return ignoreRejected(state.MoveSection(1))
		default:
			state.MoveCard(1)
		}
		return nil
	}
	bindings := []binding{
		{gocui.KeyCtrlC, quit},
		{'q', quit},
		{gocui.KeyTab, func(*gocui.Gui, *gocui.View) error { state.ToggleFocus(); return nil }},
		{gocui.KeyArrowUp, up},
		{'k', up},
		{gocui.KeyArrowDown, down},
		{'j', down},
		{gocui.KeyArrowLeft, func(*gocui.Gui, *gocui.View) error { return ignoreRejected(state.MoveSection(-1)) }},
		{gocui.KeyArrowRight, func(*gocui.Gui, *gocui.View) error { return ignoreRejected(state.MoveSection(1)) }},
		{gocui.KeyEnter, func(*gocui.Gui, *gocui.View) error {
			if state.Focus() == FocusNav && !state.dash.Overlaid() {
				state.ToggleFocus()
				return nil
			}
			return ignoreRejected(state.Activate())
		}},
		{'f', func(*gocui.Gui, *gocui.View) error { state.Flip(); return nil }},
		{'v', func(*gocui.Gui, *gocui.View) error { return ignoreRejected(state.ViewReport()) }},
		{gocui.KeyEsc, func(*gocui.Gui, *gocui.View) error { state.Dismiss(); return nil }},
		{'x', func(*gocui.Gui, *gocui.View) error { state.Dismiss(); return nil }},
	}
	for n := 1; n <= 9; n++ {
		n := n // per-iteration copy; go directive lowered to 1.21 (pre-loopvar semantics)
		bindings = append(bindings, binding{rune('0' + n), func(*gocui.Gui, *gocui.View) error {
			if err := state.SelectNumber(n); err != nil && !errors.Is(err, errOutOfRange) {
				return ignoreRejected(err)
			}
			return nil
		}})
	}
	for _, b := range bindings {
		if err := g.SetKeybinding("", b.key, gocui.ModNone, b.handler); err != nil {
			return err
		}
	}
	return nil
}

// ignoreRejected keeps the UI running when a dashboard intent is rejected.
// The rejection is already logged and shown in the status bar.
func ignoreRejected(err error) error {
	if errors.Is(err, dashboard.ErrInvalidSection) || errors.Is(err, dashboard.ErrUnknownDetailKey) {
		return nil
	}
	return err
}

func quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}
