package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillcoach/internal/config"
	"github.com/abhisek/skillcoach/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillcoach",
	Short: "AI-assisted developer skill coaching",
	Long: "Skillcoach tracks per-skill proficiency from editor practice events and\n" +
		"LLM code analysis, and fuses both signals into a ranked skill profile.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLCOACH_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/skillcoach/skillcoach.toml)")
	rootCmd.PersistentFlags().String("user", "", "User identity for this command (overrides config)")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config or the default path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file / SKILLCOACH_DB env var, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the user identity from --user or the config.
func resolveUser(cmd *cobra.Command, cfg config.Config) (string, error) {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u, nil
	}
	if cfg.User != "" {
		return cfg.User, nil
	}
	return "", fmt.Errorf("no user identity configured (use --user or set user in the config file)")
}

// openStore loads config and opens the store; shared by most commands.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open database: %w", err)
	}
	return s, cfg, nil
}
