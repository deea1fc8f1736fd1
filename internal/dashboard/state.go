// Package dashboard holds the interaction core of the dashboard: which section
// is active, which drill-down is open, and which cards are flipped. Views are
// pure functions of a catalog and a State.
package dashboard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"riskdash/internal/catalog"
)

var (
	// ErrInvalidSection is returned when selecting a section outside the
	// view's fixed set.
	ErrInvalidSection = errors.New("invalid section")
	// ErrUnknownDetailKey is returned when opening a detail key the catalog
	// does not contain.
	ErrUnknownDetailKey = errors.New("unknown detail key")
)

// State is the view-scoped selection state. It is owned by exactly one view
// and is not safe for concurrent use; all mutations happen on the UI event
// loop.
type State struct {
	cat      *catalog.Catalog
	sections []catalog.Section
	enabled  map[catalog.Section]bool
	active   catalog.Section
	openKey  string
	flipped  map[string]bool
	log      *slog.Logger
}

// Option configures a State at construction.
type Option func(*State) error

// WithSections fixes the selectable sections and their order.
func WithSections(sections ...catalog.Section) Option {
	return func(s *State) error {
		if len(sections) == 0 {
			return fmt.Errorf("%w: empty section list", ErrInvalidSection)
		}
		seen := make(map[catalog.Section]bool, len(sections))
		out := make([]catalog.Section, 0, len(sections))
		for _, sec := range sections {
			if !sec.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidSection, sec)
			}
			if seen[sec] {
				continue
			}
			seen[sec] = true
			out = append(out, sec)
		}
		s.sections = out
		return nil
	}
}

// WithDefaultSection sets the section active at mount.
func WithDefaultSection(sec catalog.Section) Option {
	return func(s *State) error {
		s.active = sec
		return nil
	}
}

// WithLogger sets the logger used for rejected intents.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) error {
		if l != nil {
			s.log = l
		}
		return nil
	}
}

// New mounts a fresh State over cat: default section active, no detail open,
// every card on its front face.
func New(cat *catalog.Catalog, opts ...Option) (*State, error) {
	if cat == nil {
		return nil, errors.New("dashboard: nil catalog")
	}
	s := &State{
		cat:      cat,
		sections: catalog.AllSections(),
		flipped:  make(map[string]bool),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.enabled = make(map[catalog.Section]bool, len(s.sections))
	for _, sec := range s.sections {
		s.enabled[sec] = true
	}
	if s.active == "" {
		s.active = s.sections[0]
	}
	if !s.enabled[s.active] {
		return nil, fmt.Errorf("%w: default %q is not selectable", ErrInvalidSection, s.active)
	}
	return s, nil
}

// Catalog returns the catalog the state was mounted over.
func (s *State) Catalog() *catalog.Catalog { return s.cat }

// Sections returns the selectable sections in display order.
func (s *State) Sections() []catalog.Section {
	out := make([]catalog.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// ActiveSection returns the section currently shown.
func (s *State) ActiveSection() catalog.Section { return s.active }

// SelectSection makes sec the active section. Out-of-set values are rejected
// and leave the state unchanged.
func (s *State) SelectSection(sec catalog.Section) error {
	if !s.enabled[sec] {
		s.log.Warn("rejected section", "section", string(sec))
		return fmt.Errorf("%w: %q", ErrInvalidSection, sec)
	}
	if sec != s.active {
		s.log.Debug("select section", "from", string(s.active), "to", string(sec))
		s.active = sec
	}
	return nil
}

// OpenDetailKey returns the key of the open overlay, if any.
func (s *State) OpenDetailKey() (string, bool) {
	return s.openKey, s.openKey != ""
}

// OpenDetailSet returns the detail set shown in the overlay, if any.
func (s *State) OpenDetailSet() (catalog.DetailSet, bool) {
	if s.openKey == "" {
		return catalog.DetailSet{}, false
	}
	return s.cat.Detail(s.openKey)
}

// OpenDetail shows the overlay for key, replacing any overlay already open.
// Unknown keys leave the overlay as it was.
func (s *State) OpenDetail(key string) error {
	if !s.cat.HasDetail(key) {
		s.log.Warn("rejected detail", "key", key)
		return fmt.Errorf("%w: %q", ErrUnknownDetailKey, key)
	}
	s.log.Debug("open detail", "key", key, "replaced", s.openKey)
	s.openKey = key
	return nil
}

// CloseDetail hides the overlay. Closing when nothing is open is a no-op.
func (s *State) CloseDetail() {
	if s.openKey != "" {
		s.log.Debug("close detail", "key", s.openKey)
	}
	s.openKey = ""
}

// Overlaid reports whether a modal overlay is covering the section content.
func (s *State) Overlaid() bool { return s.openKey != "" }

// ToggleFlip flips the card instance and returns its new face: true means the
// back face is shown.
func (s *State) ToggleFlip(cardID string) bool {
	v := !s.flipped[cardID]
	if v {
		s.flipped[cardID] = true
	} else {
		delete(s.flipped, cardID)
	}
	return v
}

// Flipped reports whether the card instance shows its back face.
func (s *State) Flipped(cardID string) bool { return s.flipped[cardID] }
