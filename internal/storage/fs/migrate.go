package fs

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/beholdr/grimoire/internal/errors"
	"github.com/beholdr/grimoire/internal/storage"
)

// Which index file describes each record kind, for migration
var kindIndexes = map[storage.RecordKind]storage.IndexName{
	storage.KindBeast:  storage.IndexBeasts,
	storage.KindSpell:  storage.IndexSpells,
	storage.KindCombat: storage.IndexCombats,
}

// MigrateLegacy moves data written by the previous app version into the
// current layout. The legacy layout kept every individual record file flat
// at the data-directory root, with index entries referencing them by
// relative path; the current layout keeps them in per-kind subdirectories
// with bare-filename references.
//
// For each index, every referenced record still sitting at the root is
// copied into its kind's subdirectory and the index's file references are
// rewritten to bare filenames; the legacy copies are removed only after the
// new ones are written. Running it again finds nothing to move, so it is
// safe to invoke on every startup. On error the migration is abandoned with
// whatever legacy files remain left in place for the next attempt.
func (b *Backend) MigrateLegacy(ctx context.Context) (bool, error) {
	migrated := false

	for kind, indexName := range kindIndexes {
		moved, err := b.migrateKind(ctx, kind, indexName)
		if moved {
			migrated = true
		}
		if err != nil {
			return migrated, err
		}
	}

	return migrated, nil
}

func (b *Backend) migrateKind(ctx context.Context, kind storage.RecordKind, indexName storage.IndexName) (bool, error) {
	indexPath := b.indexPath(indexName)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to read %s", indexPath)
	}

	// Entries are decoded loosely: migration only cares about the file
	// reference, and must not reshape the rest of the entry.
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.WarnContext(ctx, "index unreadable, skipping migration for kind",
			"index", string(indexName),
			"error", err.Error())
		return false, nil
	}

	moved := false
	rewritten := false
	for _, entry := range entries {
		ref, _ := entry["file"].(string)
		if ref == "" {
			continue
		}
		base := filepath.Base(ref)

		legacyPath := filepath.Join(b.dataDir, base)
		if fileExists(legacyPath) {
			if err := b.moveRecord(kind, legacyPath, base); err != nil {
				return moved, err
			}
			moved = true
			slog.InfoContext(ctx, "migrated legacy record file",
				"kind", string(kind),
				"file", base)
		}

		if ref != base {
			entry["file"] = base
			rewritten = true
		}
	}

	if rewritten {
		out, err := json.Marshal(entries)
		if err != nil {
			return moved, errors.Wrapf(err, "failed to encode %s", indexPath)
		}
		if err := os.WriteFile(indexPath, out, filePerm); err != nil {
			return moved, errors.Wrapf(err, "failed to rewrite %s", indexPath)
		}
	}

	return moved || rewritten, nil
}

// moveRecord copies a legacy root file into the kind's subdirectory, then
// removes the original. Copy-then-remove so a failure partway leaves the
// legacy file intact.
func (b *Backend) moveRecord(kind storage.RecordKind, legacyPath, file string) error {
	data, err := os.ReadFile(legacyPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read legacy file %s", legacyPath)
	}

	newPath, err := b.recordPath(kind, file)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(newPath), dirPerm); err != nil {
		return errors.Wrapf(err, "failed to create %s directory", recordDirs[kind])
	}
	if err := os.WriteFile(newPath, data, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write %s", newPath)
	}

	if err := os.Remove(legacyPath); err != nil {
		return errors.Wrapf(err, "failed to remove legacy file %s", legacyPath)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
