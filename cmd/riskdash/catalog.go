package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"riskdash/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{Use: "catalog", Short: "Catalog file utilities"}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as yaml or toml",
		Args:  cobra.NoArgs,
		RunE:  runCatalogExport,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "-", "Output file (.yaml/.yml/.toml, - for yaml on stdout)")

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCatalogValidate,
	}
	diffCmd := &cobra.Command{
		Use:   "diff <file>",
		Short: "Show how a catalog file differs from the active catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runCatalogDiff,
	}
	catalogCmd.AddCommand(exportCmd, validateCmd, diffCmd)
	return catalogCmd
}

// activeCatalog is the catalog the dashboard would show: --catalog, then the
// config file, then the built-in one.
func activeCatalog() (*catalog.Catalog, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return nil, "", err
	}
	name := cfg.Catalog
	if name == "" {
		name = "builtin"
	}
	return cat, name, nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	cat, _, err := activeCatalog()
	if err != nil {
		return err
	}
	if outPath == "-" {
		return catalog.Write(cmd.OutOrStdout(), cat, catalog.FormatYAML)
	}
	if err := catalog.WriteFile(outPath, cat); err != nil {
		return err
	}
	slog.Info("catalog written", "path", outPath)
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, err := catalog.LoadFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d sections, %d detail sets)\n", args[0], len(cat.Sections), len(cat.Details))
	return nil
}

func runCatalogDiff(cmd *cobra.Command, args []string) error {
	base, name, err := activeCatalog()
	if err != nil {
		return err
	}
	other, err := catalog.LoadFile(args[0])
	if err != nil {
		return err
	}
	text, err := diffCatalogs(base, other, name, args[0])
	if err != nil {
		return err
	}
	if text == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "catalogs are identical")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// diffCatalogs compares the canonical YAML of two catalogs. It returns an
// empty string when they match.
func diffCatalogs(a, b *catalog.Catalog, aName, bName string) (string, error) {
	ca, err := catalog.Canonical(a)
	if err != nil {
		return "", err
	}
	cb, err := catalog.Canonical(b)
	if err != nil {
		return "", err
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(ca),
		B:        difflib.SplitLines(cb),
		FromFile: aName,
		ToFile:   bName,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff catalogs: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	return text, nil
}
