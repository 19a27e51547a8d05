package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beholdr/grimoire/internal/storage"
)

var clearAll bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear stored data",
	Long: `Clear beast and spell reference data, leaving players, spellbooks
and combats untouched. With --all, irrecoverably remove everything.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearAll, "all", false, "also remove players, spellbooks and combats")
}

func runClear(cmd *cobra.Command, _ []string) error {
	provider, err := newProvider(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if clearAll {
		if _, err := provider.ClearAllData(ctx, &storage.ClearAllDataInput{}); err != nil {
			return err
		}
		fmt.Println("All stored data removed")
		return nil
	}

	if _, err := provider.ClearReferenceData(ctx, &storage.ClearReferenceDataInput{}); err != nil {
		return err
	}
	fmt.Println("Beast and spell reference data removed")
	return nil
}
