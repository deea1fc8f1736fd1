package dashboard

import (
	"riskdash/internal/catalog"
)

// IntentKind names a discrete user command.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentSelectSection
	IntentOpenDetail
	IntentCloseDetail
	IntentToggleFlip
)

func (k IntentKind) String() string {
	switch k {
	case IntentSelectSection:
		return "select-section"
	case IntentOpenDetail:
		return "open-detail"
	case IntentCloseDetail:
		return "close-detail"
	case IntentToggleFlip:
		return "toggle-flip"
	default:
		return "none"
	}
}

// Intent is a command produced by a control.
type Intent struct {
	Kind    IntentKind
	Section catalog.Section
	Key     string
	CardID  string
}

// SelectSectionIntent builds an intent that switches tabs.
func SelectSectionIntent(sec catalog.Section) Intent {
	return Intent{Kind: IntentSelectSection, Section: sec}
}

func OpenDetailIntent(key string) Intent { return Intent{Kind: IntentOpenDetail, Key: key} }

func CloseDetailIntent() Intent { return Intent{Kind: IntentCloseDetail} }

func ToggleFlipIntent(cardID string) Intent { return Intent{Kind: IntentToggleFlip, CardID: cardID} }

// Control is one interactive element on a click path.
type Control struct {
	Intent Intent
	// StopPropagation consumes the click so ancestor controls do not fire.
	StopPropagation bool
}

// Apply executes a single intent against the state.
func (s *State) Apply(in Intent) error {
	switch in.Kind {
	case IntentSelectSection:
		return s.SelectSection(in.Section)
	case IntentOpenDetail:
		return s.OpenDetail(in.Key)
	case IntentCloseDetail:
		s.CloseDetail()
	case IntentToggleFlip:
		s.ToggleFlip(in.CardID)
	}
	return nil
}

// Dispatch delivers a click along path, innermost control first. Each control
// is applied in turn until one stops propagation. It returns the intents that
// were applied and the first error, if any; a rejected intent still consumes
// the click when its control stops propagation.
func (s *State) Dispatch(path ...Control) ([]Intent, error) {
	var (
		applied  []Intent
		firstErr error
	)
	for _, c := range path {
		if c.Intent.Kind != IntentNone {
			if err := s.Apply(c.Intent); err != nil {
				if firstErr == nil {
					firstErr = err
				}
			} else {
				applied = append(applied, c.Intent)
			}
		}
		if c.StopPropagation {
			break
		}
	}
	return applied, firstErr
}

// CardPath returns the click path for activating card. When back is true the
// click lands on the nested back-face control of a flipped card.
func (s *State) CardPath(card catalog.Card, back bool) []Control {
	var path []Control
	if back && card.BackDetailKey != "" && s.Flipped(card.ID) {
		path = append(path, Control{Intent: OpenDetailIntent(card.BackDetailKey), StopPropagation: true})
	}
	switch {
	case card.Kind == catalog.CardFlip:
		path = append(path, Control{Intent: ToggleFlipIntent(card.ID)})
	case card.DetailKey != "":
		path = append(path, Control{Intent: OpenDetailIntent(card.DetailKey)})
	}
	return path
}
