// Package catalog holds the static dashboard content: metric facts grouped by
// section, the cards each section shows, and the drill-down detail sets.
package catalog

import (
	"sort"
	"strconv"
)

// Section identifies one top-level dashboard tab. The set is closed.
type Section string

const (
	SectionOverview   Section = "overview"
	SectionHREM       Section = "hrem"
	SectionSXI        Section = "sxi"
	SectionLifecycle  Section = "lifecycle"
	SectionCulture    Section = "culture"
	SectionAccess     Section = "access"
	SectionRisk       Section = "risk"
	SectionCompliance Section = "compliance"
)

// AllSections returns every known section in tab-bar order.
func AllSections() []Section {
	return []Section{
		SectionOverview,
		SectionHREM,
		SectionSXI,
		SectionLifecycle,
		SectionCulture,
		SectionAccess,
		SectionRisk,
		SectionCompliance,
	}
}

var sectionLabels = map[Section]string{
	SectionOverview:   "Overview",
	SectionHREM:       "Risk Exposure Model",
	SectionSXI:        "Security Experience",
	SectionLifecycle:  "Employee Journey",
	SectionCulture:    "Security Culture",
	SectionAccess:     "Identity & Access",
	SectionRisk:       "Insider Risk",
	SectionCompliance: "Compliance",
}

// Valid reports whether s is a member of the closed section set.
func (s Section) Valid() bool {
	_, ok := sectionLabels[s]
	return ok
}

// Label returns the tab caption for s.
func (s Section) Label() string {
	if l, ok := sectionLabels[s]; ok {
		return l
	}
	return string(s)
}

// Trend is the direction arrow shown next to a metric delta.
type Trend string

const (
	TrendNone    Trend = ""
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Status classifies a metric for colouring.
type Status string

const (
	StatusNeutral  Status = "neutral"
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// MetricFact is a display-only value. Value is a string or a number and is
// never rewritten once loaded.
type MetricFact struct {
	Category Section `yaml:"category" toml:"category" json:"category"`
	Label    string  `yaml:"label" toml:"label" json:"label"`
	Value    any     `yaml:"value" toml:"value" json:"value"`
	Trend    Trend   `yaml:"trend,omitempty" toml:"trend,omitempty" json:"trend,omitempty"`
	Delta    string  `yaml:"delta,omitempty" toml:"delta,omitempty" json:"delta,omitempty"`
	Status   Status  `yaml:"status,omitempty" toml:"status,omitempty" json:"status,omitempty"`
}

// Field is one name/value pair of a DetailRecord.
type Field struct {
	Name  string `toml:"name" json:"name"`
	Value any    `toml:"value" json:"value"`
}

// DetailRecord is one drill-down row. Field sets may differ between records
// of the same DetailSet; order is significant.
type DetailRecord struct {
	Fields []Field `toml:"fields" json:"fields"`
}

// Record builds a DetailRecord from alternating name, value arguments.
func Record(kv ...any) DetailRecord {
	var r DetailRecord
	for i := 0; i+1 < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			continue
		}
		r.Fields = append(r.Fields, Field{Name: name, Value: kv[i+1]})
	}
	return r
}

// Get returns the value of the named field.
func (r DetailRecord) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// DetailSet is a titled collection of records reachable by Key.
type DetailSet struct {
	Key     string         `yaml:"key" toml:"key" json:"key"`
	Title   string         `yaml:"title" toml:"title" json:"title"`
	Records []DetailRecord `yaml:"records" toml:"records" json:"records"`
}

// CardKind selects how a card is drawn and what a click on it does.
type CardKind string

const (
	CardMetric CardKind = "metric"
	CardFlip   CardKind = "flip"
	CardPanel  CardKind = "panel"
)

// Line is a label/value line on a panel or flip-card face.
type Line struct {
	Label string `yaml:"label" toml:"label" json:"label"`
	Value string `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`
}

// Card is one card instance within a section.
type Card struct {
	ID    string      `yaml:"id" toml:"id" json:"id"`
	Kind  CardKind    `yaml:"kind" toml:"kind" json:"kind"`
	Title string      `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty"`
	Fact  *MetricFact `yaml:"fact,omitempty" toml:"fact,omitempty" json:"fact,omitempty"`
	// DetailKey is opened by a click anywhere on the card.
	DetailKey string `yaml:"detail,omitempty" toml:"detail,omitempty" json:"detail,omitempty"`
	Front     []Line `yaml:"front,omitempty" toml:"front,omitempty" json:"front,omitempty"`
	BackTitle string `yaml:"backTitle,omitempty" toml:"backTitle,omitempty" json:"backTitle,omitempty"`
	Back      []Line `yaml:"back,omitempty" toml:"back,omitempty" json:"back,omitempty"`
	// BackDetailKey is the nested "view detailed report" control on the back face.
	BackDetailKey string `yaml:"backDetail,omitempty" toml:"backDetail,omitempty" json:"backDetail,omitempty"`
}

// Clickable reports whether activating the card does anything besides flipping.
func (c Card) Clickable() bool {
	return c.DetailKey != ""
}

// SectionContent is what one tab renders.
type SectionContent struct {
	Section Section `yaml:"section" toml:"section" json:"section"`
	Heading string  `yaml:"heading" toml:"heading" json:"heading"`
	Cards   []Card  `yaml:"cards" toml:"cards" json:"cards"`
}

// Catalog is the immutable content provider for a dashboard view.
type Catalog struct {
	Title    string           `yaml:"title" toml:"title" json:"title"`
	Subtitle string           `yaml:"subtitle,omitempty" toml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Sections []SectionContent `yaml:"sections" toml:"sections" json:"sections"`
	Details  []DetailSet      `yaml:"details" toml:"details" json:"details"`

	detailIdx map[string]int
}

// New builds a catalog and indexes its detail sets.
func New(title, subtitle string, sections []SectionContent, details []DetailSet) *Catalog {
	c := &Catalog{Title: title, Subtitle: subtitle, Sections: sections, Details: details}
	c.reindex()
	return c
}

func (c *Catalog) reindex() {
	c.detailIdx = make(map[string]int, len(c.Details))
	for i, d := range c.Details {
		if _, dup := c.detailIdx[d.Key]; !dup {
			c.detailIdx[d.Key] = i
		}
	}
}

// Detail looks up a detail set by key.
func (c *Catalog) Detail(key string) (DetailSet, bool) {
	if c.detailIdx == nil {
		c.reindex()
	}
	i, ok := c.detailIdx[key]
	if !ok {
		return DetailSet{}, false
	}
	return c.Details[i], true
}

// HasDetail reports whether key resolves to a detail set.
func (c *Catalog) HasDetail(key string) bool {
	_, ok := c.Detail(key)
	return ok
}

// DetailKeys returns all detail keys sorted.
func (c *Catalog) DetailKeys() []string {
	keys := make([]string, 0, len(c.Details))
	for _, d := range c.Details {
		keys = append(keys, d.Key)
	}
	sort.Strings(keys)
	return keys
}

// Content returns the content for section s.
func (c *Catalog) Content(s Section) (SectionContent, bool) {
	for _, sc := range c.Sections {
		if sc.Section == s {
			return sc, true
		}
	}
	return SectionContent{}, false
}

// Card finds a card by instance id in any section.
func (c *Catalog) Card(id string) (Card, bool) {
	for _, sc := range c.Sections {
		for _, card := range sc.Cards {
			if card.ID == id {
				return card, true
			}
		}
	}
	return Card{}, false
}

// Metrics returns every metric fact of section s in card order.
func (c *Catalog) Metrics(s Section) []MetricFact {
	sc, ok := c.Content(s)
	if !ok {
		return nil
	}
	var out []MetricFact
	for _, card := range sc.Cards {
		if card.Fact != nil {
			out = append(out, *card.Fact)
		}
	}
	return out
}

// Percent formats v as a percentage with prec decimals, e.g. 98.5%.
func Percent(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64) + "%"
}
