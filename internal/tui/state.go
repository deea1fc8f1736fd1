package tui

import (
	"errors"
	"io"
	"log/slog"
	"strconv"

	"riskdash/internal/catalog"
	"riskdash/internal/dashboard"
	"riskdash/internal/tui/views"
)

// Focus is the pane receiving arrow keys.
type Focus int

const (
	FocusNav Focus = iota
	FocusBoard
)

func (f Focus) String() string {
	if f == FocusBoard {
		return "board"
	}
	return "nav"
}

// AppState drives the dashboard from key presses. It owns the card cursor
// and pane focus; everything else lives in the dashboard.State it wraps.
// Handlers run on the gocui main loop, so there is a single writer.
type AppState struct {
	dash    *dashboard.State
	log     *slog.Logger
	focus   Focus
	cardIdx int
	message string
}

// NewAppState wraps dash. A nil logger discards.
func NewAppState(dash *dashboard.State, log *slog.Logger) *AppState {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil)) // slog.DiscardHandler needs Go 1.24
	}
	return &AppState{dash: dash, log: log}
}

func (s *AppState) Dashboard() *dashboard.State { return s.dash }
func (s *AppState) Focus() Focus                { return s.focus }
func (s *AppState) CardIndex() int              { return s.cardIdx }

// Message is the last feedback line for the status bar.
func (s *AppState) Message() string { return s.message }

// ToggleFocus switches arrow keys between the section list and the board.
func (s *AppState) ToggleFocus() {
	if s.dash.Overlaid() {
		return
	}
	if s.focus == FocusNav {
		s.focus = FocusBoard
	} else {
		s.focus = FocusNav
	}
}

// NavIndex is the position of the active section in the visible list.
func (s *AppState) NavIndex() int {
	for i, sec := range s.dash.Sections() {
		if sec == s.dash.ActiveSection() {
			return i
		}
	}
	return 0
}

// MoveSection selects the section delta steps away, wrapping around.
func (s *AppState) MoveSection(delta int) error {
	secs := s.dash.Sections()
	if s.dash.Overlaid() || len(secs) == 0 {
		return nil
	}
	i := (s.NavIndex() + delta) % len(secs)
	if i < 0 {
		i += len(secs)
	}
	return s.SelectSection(secs[i])
}

// SelectSection switches tabs and puts the card cursor back on the first card.
func (s *AppState) SelectSection(sec catalog.Section) error {
	if s.dash.Overlaid() {
		return nil
	}
	prev := s.dash.ActiveSection()
	if err := s.dash.SelectSection(sec); err != nil {
		s.message = err.Error()
		return err
	}
	if prev != sec {
		s.cardIdx = 0
	}
	s.message = ""
	return nil
}

func (s *AppState) cards() []catalog.Card {
	content, ok := s.dash.Catalog().Content(s.dash.ActiveSection())
	if !ok {
		return nil
	}
	return content.Cards
}

// MoveCard moves the board cursor, clamped to the active section's cards.
func (s *AppState) MoveCard(delta int) {
	if s.dash.Overlaid() {
		return
	}
	n := len(s.cards())
	if n == 0 {
		s.cardIdx = 0
		return
	}
	s.cardIdx = min(max(s.cardIdx+delta, 0), n-1)
}

// SelectedCard returns the card under the board cursor.
func (s *AppState) SelectedCard() (catalog.Card, bool) {
	cards := s.cards()
	if s.cardIdx < 0 || s.cardIdx >= len(cards) {
		return catalog.Card{}, false
	}
	return cards[s.cardIdx], true
}

// Activate clicks the selected card: flip cards turn over, cards with a
// detail open its overlay.
func (s *AppState) Activate() error {
	return s.click(false)
}

// ViewReport clicks the nested report control on a flipped card's back face.
// The click does not also flip the card.
func (s *AppState) ViewReport() error {
	card, ok := s.SelectedCard()
	if !ok || s.dash.Overlaid() {
		return nil
	}
	if card.BackDetailKey == "" || !s.dash.Flipped(card.ID) {
		s.message = "no report on this face"
		return nil
	}
	return s.click(true)
}

func (s *AppState) click(back bool) error {
	if s.dash.Overlaid() {
		return nil
	}
	card, ok := s.SelectedCard()
	if !ok {
		return nil
	}
	path := s.dash.CardPath(card, back)
	if len(path) == 0 {
		s.message = card.Title + " has no details"
		return nil
	}
	applied, err := s.dash.Dispatch(path...)
	for _, in := range applied {
		s.log.Debug("intent", "kind", in.Kind.String(), "card", card.ID, "key", in.Key)
	}
	if err != nil {
		s.message = err.Error()
		return err
	}
	s.message = ""
	return nil
}

// Flip turns the selected card over when it is a flip card.
func (s *AppState) Flip() {
	card, ok := s.SelectedCard()
	if !ok || s.dash.Overlaid() || card.Kind != catalog.CardFlip {
		return
	}
	back := s.dash.ToggleFlip(card.ID)
	s.log.Debug("flip", "card", card.ID, "back", back)
}

// Dismiss closes the overlay. It is safe to call with nothing open.
func (s *AppState) Dismiss() {
	s.dash.CloseDetail()
	s.message = ""
}

// HeaderScore formats the organization health score shown in the header.
func (s *AppState) HeaderScore() string {
	card, ok := s.dash.Catalog().Card(catalog.HealthCardID)
	if !ok || card.Fact == nil {
		return ""
	}
	return dashboard.FormatValue(card.Fact.Value) + "/100"
}

// NavItems lists the visible sections for the left pane.
func (s *AppState) NavItems() []views.NavItem {
	secs := s.dash.Sections()
	items := make([]views.NavItem, len(secs))
	for i, sec := range secs {
		items[i] = views.NavItem{Key: strconv.Itoa(i + 1), Label: sec.Label()}
	}
	return items
}

// Overlay returns the rendered detail set while one is open.
func (s *AppState) Overlay() (dashboard.Overlay, bool) {
	set, ok := s.dash.OpenDetailSet()
	if !ok {
		return dashboard.Overlay{}, false
	}
	return dashboard.RenderDetail(set), true
}

// SelectNumber selects the nth visible section (1-based), as typed on the
// keyboard.
func (s *AppState) SelectNumber(n int) error {
	secs := s.dash.Sections()
	if n < 1 || n > len(secs) {
		return errOutOfRange
	}
	return s.SelectSection(secs[n-1])
}

var errOutOfRange = errors.New("no section with that number")
