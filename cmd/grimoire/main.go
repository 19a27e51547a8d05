// Package main is the entry point for the grimoire CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/beholdr/grimoire/internal/config"
	"github.com/beholdr/grimoire/internal/storage"
	"github.com/beholdr/grimoire/internal/storage/factory"
)

var (
	flagPlatform string
	flagDataDir  string
	flagRedis    string
)

var rootCmd = &cobra.Command{
	Use:   "grimoire",
	Short: "Bestiary and spell reference data store",
	Long: `Grimoire manages the persisted bestiary, spell list, players,
spellbooks and combat encounters used by the companion app, over either a
local data directory or a key-value store.`,
	PersistentPreRunE: setupLogging,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPlatform, "platform", "", "storage platform: fs or kv (default from env)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the fs platform")
	rootCmd.PersistentFlags().StringVar(&flagRedis, "redis", "", "redis endpoint for the kv platform")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(migrateCmd)
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagPlatform != "" {
		cfg.Platform = flagPlatform
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagRedis != "" {
		cfg.RedisEndpoint = flagRedis
	}
	return cfg, nil
}

// newProvider builds the platform provider from config and runs the startup
// directory setup
func newProvider(cmd *cobra.Command) (storage.Provider, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	provider, err := factory.Get(&factory.Config{
		Platform:      factory.Platform(cfg.Platform),
		RedisEndpoint: cfg.RedisEndpoint,
		DataDir:       cfg.DataDir,
	})
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if _, err := provider.EnsureDataDirectory(ctx, &storage.EnsureDataDirectoryInput{}); err != nil {
		return nil, err
	}

	// Legacy migration runs once at startup; failure is logged, never
	// fatal, and legacy data stays in place for the next attempt.
	if _, err := provider.MigrateLegacyData(ctx, &storage.MigrateLegacyDataInput{}); err != nil {
		slog.WarnContext(ctx, "legacy data migration failed, continuing",
			"error", err.Error())
	}

	return provider, nil
}
