package dashboard

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"riskdash/internal/catalog"
)

func newState(t *testing.T, opts ...Option) *State {
	t.Helper()
	st, err := New(catalog.Builtin(), opts...)
	require.NoError(t, err)
	return st
}

func TestNewInitialState(t *testing.T) {
	st := newState(t)
	assert.Equal(t, catalog.SectionOverview, st.ActiveSection())
	_, open := st.OpenDetailKey()
	assert.False(t, open)
	assert.False(t, st.Overlaid())
	for _, sc := range st.Catalog().Sections {
		for _, c := range sc.Cards {
			assert.False(t, st.Flipped(c.ID), c.ID)
		}
	}
	assert.Equal(t, catalog.AllSections(), st.Sections())
}

func TestNewOptions(t *testing.T) {
	st := newState(t,
		WithSections(catalog.SectionRisk, catalog.SectionCompliance, catalog.SectionRisk),
		WithDefaultSection(catalog.SectionCompliance),
	)
	assert.Equal(t, []catalog.Section{catalog.SectionRisk, catalog.SectionCompliance}, st.Sections())
	assert.Equal(t, catalog.SectionCompliance, st.ActiveSection())

	st = newState(t, WithSections(catalog.SectionAccess))
	assert.Equal(t, catalog.SectionAccess, st.ActiveSection())
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(catalog.Builtin(), WithSections())
	assert.True(t, errors.Is(err, ErrInvalidSection))

	_, err = New(catalog.Builtin(), WithSections("payroll"))
	assert.True(t, errors.Is(err, ErrInvalidSection))

	_, err = New(catalog.Builtin(),
		WithSections(catalog.SectionRisk),
		WithDefaultSection(catalog.SectionOverview))
	assert.True(t, errors.Is(err, ErrInvalidSection))
}

func TestSelectSectionEverySection(t *testing.T) {
	st := newState(t)
	for _, sec := range catalog.AllSections() {
		require.NoError(t, st.SelectSection(sec))
		assert.Equal(t, sec, st.ActiveSection())
	}
}

func TestSelectSectionRejectsOutOfSet(t *testing.T) {
	st := newState(t, WithSections(catalog.SectionOverview, catalog.SectionRisk))
	require.NoError(t, st.SelectSection(catalog.SectionRisk))

	err := st.SelectSection("payroll")
	assert.True(t, errors.Is(err, ErrInvalidSection))
	assert.Equal(t, catalog.SectionRisk, st.ActiveSection())

	// valid section, but not enabled for this view
	err = st.SelectSection(catalog.SectionCompliance)
	assert.True(t, errors.Is(err, ErrInvalidSection))
	assert.Equal(t, catalog.SectionRisk, st.ActiveSection())
}

func TestSelectActiveSectionIsNoop(t *testing.T) {
	st := newState(t)
	require.NoError(t, st.OpenDetail(catalog.DetailTraining))
	st.ToggleFlip("culture.phishing")
	require.NoError(t, st.SelectSection(catalog.SectionOverview))
	assert.Equal(t, catalog.SectionOverview, st.ActiveSection())
	key, _ := st.OpenDetailKey()
	assert.Equal(t, catalog.DetailTraining, key)
	assert.True(t, st.Flipped("culture.phishing"))
}

func TestOpenCloseDetail(t *testing.T) {
	st := newState(t)
	for _, key := range st.Catalog().DetailKeys() {
		require.NoError(t, st.OpenDetail(key))
		got, ok := st.OpenDetailKey()
		require.True(t, ok)
		assert.Equal(t, key, got)
		set, ok := st.OpenDetailSet()
		require.True(t, ok)
		assert.Equal(t, key, set.Key)

		st.CloseDetail()
		_, ok = st.OpenDetailKey()
		assert.False(t, ok)
	}
}

func TestCloseDetailIdempotent(t *testing.T) {
	st := newState(t)
	assert.NotPanics(t, func() {
		st.CloseDetail()
		st.CloseDetail()
	})
	_, ok := st.OpenDetailKey()
	assert.False(t, ok)
	_, ok = st.OpenDetailSet()
	assert.False(t, ok)
}

func TestOpenDetailReplaces(t *testing.T) {
	st := newState(t)
	require.NoError(t, st.OpenDetail(catalog.DetailPhishing))
	require.NoError(t, st.OpenDetail(catalog.DetailTraining))
	key, ok := st.OpenDetailKey()
	require.True(t, ok)
	assert.Equal(t, catalog.DetailTraining, key)

	// one close is enough: nothing was stacked
	st.CloseDetail()
	_, ok = st.OpenDetailKey()
	assert.False(t, ok)
}

func TestOpenUnknownDetailKeepsOverlay(t *testing.T) {
	st := newState(t)
	err := st.OpenDetail("payroll")
	assert.True(t, errors.Is(err, ErrUnknownDetailKey))
	_, ok := st.OpenDetailKey()
	assert.False(t, ok)

	require.NoError(t, st.OpenDetail(catalog.DetailCompliance))
	err = st.OpenDetail("payroll")
	assert.True(t, errors.Is(err, ErrUnknownDetailKey))
	key, _ := st.OpenDetailKey()
	assert.Equal(t, catalog.DetailCompliance, key)
}

func TestToggleFlipInvolution(t *testing.T) {
	st := newState(t)
	assert.True(t, st.ToggleFlip("culture.phishing"))
	assert.True(t, st.Flipped("culture.phishing"))
	assert.False(t, st.Flipped("culture.champions"))

	assert.False(t, st.ToggleFlip("culture.phishing"))
	assert.False(t, st.Flipped("culture.phishing"))
}

func TestToggleFlipIndependent(t *testing.T) {
	st := newState(t)
	st.ToggleFlip("culture.phishing")
	st.ToggleFlip("culture.champions")
	st.ToggleFlip("culture.champions")
	assert.True(t, st.Flipped("culture.phishing"))
	assert.False(t, st.Flipped("culture.champions"))
}

func TestRejectedIntentsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	st := newState(t, WithLogger(logger))

	_ = st.SelectSection("payroll")
	_ = st.OpenDetail("nope")

	out := buf.String()
	assert.Contains(t, out, "rejected section")
	assert.Contains(t, out, "section=payroll")
	assert.Contains(t, out, "rejected detail")
	assert.Contains(t, out, "key=nope")
}

func TestScenarioRiskDrillDown(t *testing.T) {
	st := newState(t)
	require.NoError(t, st.SelectSection(catalog.SectionRisk))
	assert.Equal(t, catalog.SectionRisk, st.ActiveSection())

	require.NoError(t, st.OpenDetail(catalog.DetailInsiderRisk))
	key, _ := st.OpenDetailKey()
	assert.Equal(t, catalog.DetailInsiderRisk, key)

	set, ok := st.OpenDetailSet()
	require.True(t, ok)
	o := RenderDetail(set)
	assert.Equal(t, "Insider Risk Indicators - Active Monitoring", o.Title)
	assert.Len(t, o.Rows, 4)
}

func TestScenarioDismissKeepsSection(t *testing.T) {
	st := newState(t)
	require.NoError(t, st.SelectSection(catalog.SectionCompliance))
	before := ViewSection(st.Catalog(), st)

	require.NoError(t, st.OpenDetail(catalog.DetailCompliance))
	_, err := st.Dispatch(Control{Intent: CloseDetailIntent(), StopPropagation: true})
	require.NoError(t, err)

	_, ok := st.OpenDetailKey()
	assert.False(t, ok)
	assert.Equal(t, catalog.SectionCompliance, st.ActiveSection())
	assert.Equal(t, before, ViewSection(st.Catalog(), st))
}
