package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beholdr/grimoire/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show storage statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, _ []string) error {
	provider, err := newProvider(cmd)
	if err != nil {
		return err
	}

	out, err := provider.GetStorageInfo(cmd.Context(), &storage.GetStorageInfoInput{})
	if err != nil {
		return err
	}

	fmt.Printf("Beasts: %d entries, %d bytes indexed\n", out.Info.BeastCount, out.Info.BeastBytes)
	fmt.Printf("Spells: %d entries, %d bytes indexed\n", out.Info.SpellCount, out.Info.SpellBytes)
	return nil
}
