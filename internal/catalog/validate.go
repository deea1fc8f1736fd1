package catalog

import (
	"errors"
	"fmt"
)

// Validate checks the build-time wiring of a catalog: unique keys and ids,
// non-empty titles, and that every card's detail references resolve.
func (c *Catalog) Validate() error {
	var errs []error
	keys := make(map[string]bool, len(c.Details))
	for i, d := range c.Details {
		switch {
		case d.Key == "":
			errs = append(errs, fmt.Errorf("details[%d]: empty key", i))
		case keys[d.Key]:
			errs = append(errs, fmt.Errorf("details[%d]: duplicate key %q", i, d.Key))
		}
		keys[d.Key] = true
		if d.Title == "" {
			errs = append(errs, fmt.Errorf("detail %q: empty title", d.Key))
		}
	}

	seenSection := make(map[Section]bool)
	ids := make(map[string]Section)
	for _, sc := range c.Sections {
		if !sc.Section.Valid() {
			errs = append(errs, fmt.Errorf("unknown section %q", sc.Section))
		}
		if seenSection[sc.Section] {
			errs = append(errs, fmt.Errorf("section %q defined twice", sc.Section))
		}
		seenSection[sc.Section] = true
		for _, card := range sc.Cards {
			if card.ID == "" {
				errs = append(errs, fmt.Errorf("section %q: card without id", sc.Section))
				continue
			}
			if prev, dup := ids[card.ID]; dup {
				errs = append(errs, fmt.Errorf("card %q: duplicate id (also in %q)", card.ID, prev))
			}
			ids[card.ID] = sc.Section
			switch card.Kind {
			case CardMetric:
				if card.Fact == nil {
					errs = append(errs, fmt.Errorf("card %q: metric card without fact", card.ID))
				}
			case CardFlip, CardPanel:
			default:
				errs = append(errs, fmt.Errorf("card %q: unknown kind %q", card.ID, card.Kind))
			}
			if card.DetailKey != "" && !keys[card.DetailKey] {
				errs = append(errs, fmt.Errorf("card %q: unknown detail %q", card.ID, card.DetailKey))
			}
			if card.BackDetailKey != "" && !keys[card.BackDetailKey] {
				errs = append(errs, fmt.Errorf("card %q: unknown back detail %q", card.ID, card.BackDetailKey))
			}
		}
	}
	return errors.Join(errs...)
}
