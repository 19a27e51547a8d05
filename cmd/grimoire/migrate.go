package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beholdr/grimoire/internal/storage"
	"github.com/beholdr/grimoire/internal/storage/factory"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Set up the data directory and migrate legacy data",
	Long: `Create the data directory layout if absent, then move any data
left by a previous app version into the current layout. Safe to run
repeatedly; if there is nothing to migrate it does nothing.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	provider, err := factory.Get(&factory.Config{
		Platform:      factory.Platform(cfg.Platform),
		RedisEndpoint: cfg.RedisEndpoint,
		DataDir:       cfg.DataDir,
	})
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if _, err := provider.EnsureDataDirectory(ctx, &storage.EnsureDataDirectoryInput{}); err != nil {
		return err
	}

	out, err := provider.MigrateLegacyData(ctx, &storage.MigrateLegacyDataInput{})
	if err != nil {
		return err
	}

	if out.Migrated {
		fmt.Println("Legacy data migrated to current layout")
	} else {
		fmt.Println("Nothing to migrate")
	}
	return nil
}
