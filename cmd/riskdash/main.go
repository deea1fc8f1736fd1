// riskdash: people-risk and compliance dashboard with drill-down tables in a TUI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"riskdash/internal/catalog"
	"riskdash/internal/config"
	"riskdash/internal/dashboard"
	rlog "riskdash/internal/log"
	"riskdash/internal/report"
	"riskdash/internal/tui"
)

var (
	configPath  string
	catalogPath string
	sectionFlag string
	logFile     string
	verbose     bool
	quiet       bool
	width       int
	jsonPath    string
	outPath     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "riskdash",
		Short:        "People risk & compliance dashboard",
		SilenceUsage: true,
		RunE:         runTUI,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.FileName, "riskdash.yaml path")
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (yaml/toml); built-in when empty")
	root.PersistentFlags().StringVar(&sectionFlag, "section", "", "Section shown first")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logs")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
	root.Flags().StringVar(&logFile, "log-file", "", "Write TUI logs to this file")

	showCmd := &cobra.Command{
		Use:   "show [section]",
		Short: "Print a section's cards",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().IntVar(&width, "width", 100, "Output width")

	detailCmd := &cobra.Command{
		Use:   "detail <key>",
		Short: "Print a drill-down table",
		Args:  cobra.ExactArgs(1),
		RunE:  runDetail,
	}
	detailCmd.Flags().IntVar(&width, "width", 100, "Output width")

	sectionsCmd := &cobra.Command{
		Use:   "sections",
		Short: "List selectable sections",
		Args:  cobra.NoArgs,
		RunE:  runSections,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON snapshot of the dashboard",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&jsonPath, "json", "riskdash.json", "JSON output path (- for stdout)")

	root.AddCommand(showCmd, detailCmd, sectionsCmd, exportCmd, newCatalogCmd())
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if cmd != root {
			rlog.Setup(verbose, quiet)
		}
	}
	return root
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if catalogPath != "" {
		cfg.Catalog = catalogPath
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if sectionFlag != "" {
		cfg.DefaultSection = catalog.Section(sectionFlag)
	}
	return cfg, nil
}

// newState mounts the dashboard described by cfg.
func newState(cfg *config.Config, logger *slog.Logger) (*dashboard.State, error) {
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return nil, err
	}
	opts := []dashboard.Option{
		dashboard.WithSections(cfg.VisibleSections()...),
		dashboard.WithLogger(logger),
	}
	if cfg.DefaultSection != "" {
		opts = append(opts, dashboard.WithDefaultSection(cfg.DefaultSection))
	}
	return dashboard.New(cat, opts...)
}

// loadState is loadConfig followed by newState, for the one-shot commands.
func loadState() (*dashboard.State, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newState(cfg, slog.Default())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, err := rlog.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer w.Close()
	rlog.SetupWriter(w, verbose, quiet)
	logger := slog.Default().With("session", uuid.New().String())

	st, err := newState(cfg, logger)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tui.Run(ctx, tui.NewAppState(st, logger))
}

func runShow(cmd *cobra.Command, args []string) error {
	st, err := loadState()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := st.SelectSection(catalog.Section(args[0])); err != nil {
			return err
		}
	}
	return report.WriteSection(cmd.OutOrStdout(), st, width)
}

func runDetail(cmd *cobra.Command, args []string) error {
	st, err := loadState()
	if err != nil {
		return err
	}
	if err := st.OpenDetail(args[0]); err != nil {
		return err
	}
	set, _ := st.OpenDetailSet()
	return report.WriteDetail(cmd.OutOrStdout(), dashboard.RenderDetail(set), width)
}

func runSections(cmd *cobra.Command, args []string) error {
	st, err := loadState()
	if err != nil {
		return err
	}
	return report.WriteSections(cmd.OutOrStdout(), st)
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := loadState()
	if err != nil {
		return err
	}
	r := report.Snapshot(st, time.Now())
	if jsonPath == "-" {
		return report.EncodeJSON(cmd.OutOrStdout(), r)
	}
	if err := report.WriteJSON(jsonPath, r); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	slog.Info("snapshot written", "path", jsonPath, "sections", len(r.Sections), "details", len(r.Details))
	return nil
}
