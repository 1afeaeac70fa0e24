package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quentinmace/datagrid/internal/config"
	"github.com/quentinmace/datagrid/internal/dataset"
	"github.com/quentinmace/datagrid/internal/grid"
	"github.com/quentinmace/datagrid/internal/logger"
	"github.com/quentinmace/datagrid/internal/prefs"
	"github.com/quentinmace/datagrid/internal/tui/viewer"
)

func newViewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <config>",
		Short: "Open a dataset in the interactive grid viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, flags, args[0])
		},
	}

	return cmd
}

func runView(cmd *cobra.Command, flags *rootFlags, configPath string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the viewer needs an interactive terminal")
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg, err := config.ParseConfig(configPath)
	if err != nil {
		return err
	}

	// Dataset paths are resolved relative to the config file.
	datasetPath := cfg.Dataset
	if !filepath.IsAbs(datasetPath) {
		datasetPath = filepath.Join(filepath.Dir(configPath), datasetPath)
	}
	ds, err := dataset.LoadCSV(datasetPath)
	if err != nil {
		return err
	}
	if len(ds.Headers) != len(cfg.Columns) {
		return fmt.Errorf("dataset has %d columns, config declares %d", len(ds.Headers), len(cfg.Columns))
	}

	opts := cfg.GridOptions()
	var store prefs.Store
	if opts.SavePreferences {
		path, err := defaultPreferencesPath()
		if err != nil {
			return fmt.Errorf("failed to determine preferences path: %w", err)
		}
		fileStore, err := prefs.NewFileStore(path)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		store = fileStore
	}

	g, err := grid.New(cfg.GridColumns(), ds.Records, opts, store, log)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{"dataset": cfg.Dataset, "rows": len(ds.Records)}).Info("grid ready")

	m := viewer.NewModel(g, cfg.Name, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}

	return nil
}
