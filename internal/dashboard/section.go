package dashboard

import (
	"riskdash/internal/catalog"
)

// CardView is a card as it should currently appear.
type CardView struct {
	ID     string
	Kind   catalog.CardKind
	Title  string
	Value  string
	Arrow  string
	Delta  string
	Status catalog.Status
	Lines  []catalog.Line
	// Back is true when a flip card shows its back face.
	Back bool
	// Action describes what activating the card does, for hints.
	Action string
	// NestedAction is the label of a nested control on the visible face.
	NestedAction string
}

// SectionView is everything visible for the active section.
type SectionView struct {
	Section catalog.Section
	Label   string
	Heading string
	Cards   []CardView
}

// ViewSection describes the active section of st over cat. Only the active
// section is ever described; there is no transition state.
func ViewSection(cat *catalog.Catalog, st *State) SectionView {
	sec := st.ActiveSection()
	v := SectionView{Section: sec, Label: sec.Label()}
	content, ok := cat.Content(sec)
	if !ok {
		return v
	}
	v.Heading = content.Heading
	v.Cards = make([]CardView, 0, len(content.Cards))
	for _, card := range content.Cards {
		v.Cards = append(v.Cards, viewCard(card, st.Flipped(card.ID)))
	}
	return v
}

func viewCard(card catalog.Card, flipped bool) CardView {
	cv := CardView{ID: card.ID, Kind: card.Kind, Title: card.Title, Status: catalog.StatusNeutral}
	if f := card.Fact; f != nil {
		if cv.Title == "" {
			cv.Title = f.Label
		}
		cv.Value = FormatValue(f.Value)
		cv.Arrow = TrendArrow(f.Trend)
		cv.Delta = f.Delta
		if f.Status != "" {
			cv.Status = f.Status
		}
	}
	switch card.Kind {
	case catalog.CardFlip:
		if flipped {
			cv.Back = true
			cv.Lines = card.Back
			if card.BackTitle != "" {
				cv.Title = card.BackTitle
			}
			if card.BackDetailKey != "" {
				cv.NestedAction = "View Detailed Report"
			}
			cv.Action = "flip to front"
		} else {
			cv.Lines = card.Front
			cv.Action = "flip for history"
		}
	default:
		cv.Lines = card.Front
		if card.DetailKey != "" {
			cv.Action = "open details"
		}
	}
	return cv
}

// TrendArrow returns the glyph for a trend direction.
func TrendArrow(t catalog.Trend) string {
	switch t {
	case catalog.TrendUp:
		return "▲"
	case catalog.TrendDown:
		return "▼"
	case catalog.TrendNeutral:
		return "•"
	default:
		return ""
	}
}
