package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beholdr/grimoire/internal/entities"
	"github.com/beholdr/grimoire/internal/storage"
)

var (
	importBeastsFile string
	importSpellsFile string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import bestiary and spell datasets",
	Long: `Import bulk reference datasets. Copy-references in the bestiary are
resolved before storing; records that cannot be resolved are reported and
skipped. Each import rebuilds the corresponding index from scratch.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importBeastsFile, "beasts", "", "bestiary dataset JSON file")
	importCmd.Flags().StringVar(&importSpellsFile, "spells", "", "spell dataset JSON file")
}

func runImport(cmd *cobra.Command, _ []string) error {
	if importBeastsFile == "" && importSpellsFile == "" {
		return fmt.Errorf("nothing to import: pass --beasts and/or --spells")
	}

	provider, err := newProvider(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if importBeastsFile != "" {
		beasts, err := loadDataset(importBeastsFile, "monster")
		if err != nil {
			return err
		}
		out, err := provider.StoreBeastsIndex(ctx, &storage.StoreBeastsIndexInput{Beasts: beasts})
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d beasts", len(out.Entries))
		if len(out.Dropped) > 0 {
			fmt.Printf(" (%d dropped: unresolvable copy-references)", len(out.Dropped))
		}
		fmt.Println()
	}

	if importSpellsFile != "" {
		spells, err := loadDataset(importSpellsFile, "spell")
		if err != nil {
			return err
		}
		out, err := provider.StoreSpellsIndex(ctx, &storage.StoreSpellsIndexInput{Spells: spells})
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d spells\n", len(out.Entries))
	}

	return nil
}

// loadDataset reads a dataset file: either a bare JSON array of records, or
// an object wrapping the array under the given key (the upstream bundle
// format).
func loadDataset(path, key string) ([]entities.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []entities.Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	raw, ok := wrapper[key]
	if !ok {
		return nil, fmt.Errorf("%s: no %q collection found", path, key)
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s records in %s: %w", key, path, err)
	}
	return records, nil
}
