package catalog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinValidates(t *testing.T) {
	c := Builtin()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Sections, len(AllSections()))
	assert.Equal(t, []string{
		DetailCompliance, DetailHREMRoles, DetailInsiderRisk, DetailLifecycle,
		DetailPhishing, DetailPrivilegedAccess, DetailSXISurvey, DetailTraining,
	}, c.DetailKeys())
}

func TestBuiltinInsiderRisk(t *testing.T) {
	d, ok := Builtin().Detail(DetailInsiderRisk)
	require.True(t, ok)
	assert.Equal(t, "Insider Risk Indicators - Active Monitoring", d.Title)
	assert.Len(t, d.Records, 4)
	v, ok := d.Records[0].Get("user")
	require.True(t, ok)
	assert.Equal(t, "User #347", v)
}

func TestBuiltinReturnsCopy(t *testing.T) {
	a := Builtin()
	a.Details[0].Title = "changed"
	b := Builtin()
	assert.NotEqual(t, "changed", b.Details[0].Title)
}

func TestSectionValid(t *testing.T) {
	for _, s := range AllSections() {
		assert.True(t, s.Valid(), s)
		assert.NotEqual(t, string(s), s.Label(), "section %s should have a caption", s)
	}
	assert.False(t, Section("payroll").Valid())
	assert.Equal(t, "payroll", Section("payroll").Label())
}

func TestRecordBuilderKeepsOrder(t *testing.T) {
	r := Record("b", 1, "a", "x", 3, "skipped", "c", 2.5)
	require.Len(t, r.Fields, 3)
	assert.Equal(t, "b", r.Fields[0].Name)
	assert.Equal(t, "a", r.Fields[1].Name)
	assert.Equal(t, "c", r.Fields[2].Name)
}

func TestCardAndMetricsLookup(t *testing.T) {
	c := Builtin()
	card, ok := c.Card("culture.phishing")
	require.True(t, ok)
	assert.Equal(t, CardFlip, card.Kind)
	assert.Equal(t, DetailPhishing, card.BackDetailKey)
	assert.False(t, card.Clickable())

	_, ok = c.Card("nope")
	assert.False(t, ok)

	facts := c.Metrics(SectionRisk)
	require.Len(t, facts, 4)
	assert.Equal(t, "High Risk Users", facts[0].Label)
	assert.Equal(t, 4, facts[0].Value)
	assert.Equal(t, StatusCritical, facts[2].Status)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "98.5%", Percent(98.5, 1))
	assert.Equal(t, "100%", Percent(100, 0))
	assert.Equal(t, "40.0%", Percent(40, 1))
}

func TestValidateReportsWiringDefects(t *testing.T) {
	c := New("t", "", []SectionContent{
		{Section: SectionRisk, Cards: []Card{
			{ID: "a", Kind: CardPanel, DetailKey: "missing"},
			{ID: "a", Kind: CardMetric},
		}},
		{Section: "payroll"},
	}, []DetailSet{
		{Key: "x", Title: "X"},
		{Key: "x", Title: ""},
	})
	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `duplicate key "x"`)
	assert.Contains(t, msg, `detail "x": empty title`)
	assert.Contains(t, msg, `unknown detail "missing"`)
	assert.Contains(t, msg, `card "a": duplicate id`)
	assert.Contains(t, msg, "metric card without fact")
	assert.Contains(t, msg, `unknown section "payroll"`)
}

func TestYAMLRoundTripPreservesFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Builtin(), FormatYAML))

	got, err := Parse(buf.Bytes(), FormatYAML)
	require.NoError(t, err)

	want, _ := Builtin().Detail(DetailHREMRoles)
	d, ok := got.Detail(DetailHREMRoles)
	require.True(t, ok)
	require.Len(t, d.Records, len(want.Records))
	for i, r := range d.Records {
		require.Len(t, r.Fields, len(want.Records[i].Fields))
		for j, f := range r.Fields {
			assert.Equal(t, want.Records[i].Fields[j].Name, f.Name)
			assert.Equal(t, want.Records[i].Fields[j].Value, f.Value)
		}
	}

	card, ok := got.Card("overview.employees")
	require.True(t, ok)
	assert.Equal(t, 390, card.Fact.Value)
}

func TestParseYAMLHeterogeneousRecords(t *testing.T) {
	src := `
title: Mini
sections:
  - section: risk
    heading: Risk
    cards:
      - id: r1
        kind: panel
        detail: mixed
details:
  - key: mixed
    title: Mixed rows
    records:
      - {x: 1, y: two}
      - {x: 1, y: two, z: 3.5}
  - key: empty
    title: Nothing here
    records: []
`
	c, err := Parse([]byte(src), FormatYAML)
	require.NoError(t, err)
	d, ok := c.Detail("mixed")
	require.True(t, ok)
	assert.Len(t, d.Records[0].Fields, 2)
	assert.Len(t, d.Records[1].Fields, 3)
	assert.Equal(t, "z", d.Records[1].Fields[2].Name)

	e, ok := c.Detail("empty")
	require.True(t, ok)
	assert.Empty(t, e.Records)
}

func TestParseYAMLRejectsNonMappingRecord(t *testing.T) {
	src := `
title: Bad
details:
  - key: k
    title: K
    records:
      - just a string
`
	_, err := Parse([]byte(src), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a mapping")
}

func TestTOMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, WriteFile(path, Builtin()))

	got, err := LoadFile(path)
	require.NoError(t, err)
	d, ok := got.Detail(DetailPhishing)
	require.True(t, ok)
	assert.Equal(t, "Phishing Simulation Results - Last 6 Months", d.Title)
	require.Len(t, d.Records, 6)
	assert.Equal(t, "date", d.Records[0].Fields[0].Name)
	assert.EqualValues(t, 390, d.Records[0].Fields[4].Value)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile("catalog.json")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("title: [unterminated"), 0o644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog yaml")
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"a.yaml", FormatYAML, false},
		{"a.YML", FormatYAML, false},
		{"dir/a.toml", FormatTOML, false},
		{"a.json", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.err {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}
