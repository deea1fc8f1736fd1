package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"riskdash/internal/catalog"
	"riskdash/internal/dashboard"
)

// JSONReport is the root structure for a JSON snapshot of the dashboard.
type JSONReport struct {
	Generated     string           `json:"generated"`
	Title         string           `json:"title"`
	ActiveSection catalog.Section  `json:"active_section"`
	OpenDetail    string           `json:"open_detail,omitempty"`
	Sections      []SectionSummary `json:"sections"`
	Details       []DetailSummary  `json:"details"`
}

// SectionSummary lists the metric facts of one section.
type SectionSummary struct {
	Section catalog.Section      `json:"section"`
	Label   string               `json:"label"`
	Heading string               `json:"heading"`
	Metrics []catalog.MetricFact `json:"metrics"`
}

// DetailSummary is a rendered detail set.
type DetailSummary struct {
	Key   string             `json:"key"`
	Title string             `json:"title"`
	Table [][]dashboard.Cell `json:"rows"`
}

// Snapshot builds a JSONReport from the catalog and the current selection.
// Only the sections visible in st are included.
func Snapshot(st *dashboard.State, now time.Time) *JSONReport {
	cat := st.Catalog()
	r := &JSONReport{
		Generated:     now.Format(time.RFC3339),
		Title:         cat.Title,
		ActiveSection: st.ActiveSection(),
		Sections:      make([]SectionSummary, 0, len(st.Sections())),
		Details:       make([]DetailSummary, 0, len(cat.Details)),
	}
	if key, ok := st.OpenDetailKey(); ok {
		r.OpenDetail = key
	}
	for _, sec := range st.Sections() {
		sc, _ := cat.Content(sec)
		metrics := cat.Metrics(sec)
		if metrics == nil {
			metrics = []catalog.MetricFact{}
		}
		r.Sections = append(r.Sections, SectionSummary{
			Section: sec,
			Label:   sec.Label(),
			Heading: sc.Heading,
			Metrics: metrics,
		})
	}
	for _, key := range cat.DetailKeys() {
		set, _ := cat.Detail(key)
		o := dashboard.RenderDetail(set)
		ds := DetailSummary{Key: o.Key, Title: o.Title, Table: make([][]dashboard.Cell, 0, len(o.Rows))}
		for _, row := range o.Rows {
			ds.Table = append(ds.Table, row.Cells)
		}
		r.Details = append(r.Details, ds)
	}
	return r
}

// EncodeJSON writes r to w, indented.
func EncodeJSON(w io.Writer, r *JSONReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteJSON writes a JSON report to path.
func WriteJSON(path string, r *JSONReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
