package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/blueprint"
	"github.com/abhisek/examprep/internal/config"
	"github.com/abhisek/examprep/internal/logging"
	"github.com/abhisek/examprep/internal/store"
)

// settings holds the resolved configuration for the running command.
var settings *config.Config

var rootCmd = &cobra.Command{
	Use:   "examprep",
	Short: "Adaptive practice for professional certification exams",
	Long: "examprep tracks your answers, schedules spaced reviews, adapts difficulty\n" +
		"and picks the next practice batch weighted by the exam blueprint.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path, cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if _, err := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr); err != nil {
			return fmt.Errorf("set up logging: %w", err)
		}
		if err := cfg.RegisterBlueprints(); err != nil {
			return err
		}
		if _, ok := blueprint.Get(cfg.Exam); !ok {
			return fmt.Errorf("unknown exam %q (see 'examprep blueprint list')", cfg.Exam)
		}
		settings = cfg
		slog.Debug("config loaded", "exam", cfg.Exam, "db", cfg.DB)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMPREP_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/examprep/config.yaml)")
	rootCmd.PersistentFlags().String("exam", "", "Exam code, e.g. CFP or S65")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(blueprintCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path from --db or config (highest
// priority), then the EXAMPREP_DB env var, then the default XDG path.
func resolveDBPath() (string, error) {
	if settings != nil && settings.DB != "" {
		return settings.DB, store.EnsureDir(settings.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the configured database.
func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
