package main

import (
	"context"
	"fmt"
	"os"

	"employeedesk/internal/config"
	"employeedesk/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dbPath     string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "employeedesk",
	Short: "Employee Registry - manage employee records in a local SQLite file",
	Long: `employeedesk keeps a list of employees (name, sex, email) in a single
SQLite table and edits it through a full-screen terminal form.

Run without arguments to open the form.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The form logs to files; only subcommands get a stderr logger
		if cmd.Use == "employeedesk" && cmd.CalledAs() == "employeedesk" {
			logger = zap.NewNop()
			return nil
		}

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// versionCmd prints the configured name and version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.Name, cfg.Version)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file (overrides config and EMPLOYEEDESK_DB)")

	// Add commands to root
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the --db flag on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	return cfg, nil
}

// openStore creates the employees table if needed. Failure here is fatal to the caller.
func openStore(ctx context.Context, cfg *config.Config) (*store.SQLiteStore, error) {
	s := store.NewSQLiteStoreFromConfig(cfg)
	if err := s.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize database %s: %w", s.Path(), err)
	}
	return s, nil
}
