package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"riskdash/internal/catalog"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func resetFlags(t *testing.T) {
	t.Helper()
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	catalogPath, sectionFlag, logFile = "", "", ""
	verbose, quiet = false, false
	width, jsonPath, outPath = 100, "", "-"
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", configPath))
	err := cmd.Execute()
	return out.String(), err
}

func TestDiffCatalogsIdentical(t *testing.T) {
	text, err := diffCatalogs(catalog.Builtin(), catalog.Builtin(), "a", "b")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestDiffCatalogsChanged(t *testing.T) {
	changed := catalog.Builtin()
	changed.Title = "Quarterly Review"
	text, err := diffCatalogs(catalog.Builtin(), changed, "builtin", "q.yaml")
	require.NoError(t, err)
	assert.Contains(t, text, "--- builtin")
	assert.Contains(t, text, "+++ q.yaml")
	assert.Contains(t, text, "-title: People Risk & Compliance Dashboard")
	assert.Contains(t, text, "+title: Quarterly Review")
}

func TestLoadConfigOverrides(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	configPath = filepath.Join(dir, "riskdash.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("defaultSection: risk\nsections: [risk, compliance]\n"), 0o644))

	st, err := loadState()
	require.NoError(t, err)
	assert.Equal(t, catalog.SectionRisk, st.ActiveSection())
	assert.Equal(t, []catalog.Section{catalog.SectionRisk, catalog.SectionCompliance}, st.Sections())

	sectionFlag = "compliance"
	st, err = loadState()
	require.NoError(t, err)
	assert.Equal(t, catalog.SectionCompliance, st.ActiveSection())

	sectionFlag = "culture"
	_, err = loadState()
	assert.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	resetFlags(t)
	out, err := run(t, "show", "risk")
	require.NoError(t, err)
	assert.Contains(t, out, "[Insider Risk]")
	assert.Contains(t, out, "High Risk Users")

	_, err = run(t, "show", "payroll")
	assert.Error(t, err)
}

func TestDetailCommand(t *testing.T) {
	resetFlags(t)
	out, err := run(t, "detail", "insiderRisk")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Insider Risk Indicators - Active Monitoring"))

	_, err = run(t, "detail", "payroll")
	assert.Error(t, err)
}

func TestCatalogExportValidateDiff(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	for _, name := range []string{"catalog.yaml", "catalog.toml"} {
		path := filepath.Join(dir, name)
		_, err := run(t, "catalog", "export", "--out", path)
		require.NoError(t, err)

		out, err := run(t, "catalog", "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "ok (8 sections, 8 detail sets)")
	}

	out, err := run(t, "catalog", "diff", filepath.Join(dir, "catalog.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "catalogs are identical\n", out)
}

func TestExportJSONStdout(t *testing.T) {
	resetFlags(t)
	out, err := run(t, "export", "--json", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"active_section": "overview"`)
}
