package main

import (
	"context"
	"fmt"

	"employeedesk/cmd/employeedesk/ui"
	"employeedesk/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd prints every employee without opening the form
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all employees as a table",
	RunE:  runList,
}

// initCmd writes a config file holding the defaults
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runInit,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Debug("listing employees", zap.String("path", s.Path()), zap.String("driver", s.Driver()))

	rows, err := s.List(ctx)
	if err != nil {
		return err
	}
	logger.Debug("listed employees", zap.Int("count", len(rows)))

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	fmt.Fprint(cmd.OutOrStdout(), ui.NewEmployeeList("Employees", rows).View(styles))
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	logger.Info("wrote config", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}
