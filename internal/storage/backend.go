package storage

import "context"

//go:generate mockgen -destination=mock/mock_backend.go -package=storagemock github.com/beholdr/grimoire/internal/storage Backend

// IndexName identifies a single-unit index or list document
type IndexName string

// Index documents. Players and spellbooks are stored as one unit each, the
// same way the record indexes are.
const (
	IndexBeasts       IndexName = "beasts_index"
	IndexSpells       IndexName = "spells_index"
	IndexCombats      IndexName = "combats_index"
	IndexSpellClasses IndexName = "spell_classes_index"
	IndexPlayers      IndexName = "players"
	IndexSpellbooks   IndexName = "spellbooks"
)

// RecordKind identifies the namespace an individually addressable record
// lives in
type RecordKind string

// Record kinds
const (
	KindBeast  RecordKind = "monster"
	KindSpell  RecordKind = "spell"
	KindCombat RecordKind = "combat"
)

// Backend supplies the storage primitives a concrete platform implements:
// whole-document index load/store/delete and individually addressable
// record load/store/delete. The base provider implements the full Provider
// contract on top of these.
//
// Load primitives return (nil, nil) when the document is absent. Store
// overwrites unconditionally. Delete of an absent document is a no-op.
type Backend interface {
	StoreIndex(ctx context.Context, name IndexName, data []byte) error
	LoadIndex(ctx context.Context, name IndexName) ([]byte, error)
	DeleteIndex(ctx context.Context, name IndexName) error

	StoreRecord(ctx context.Context, kind RecordKind, file string, data []byte) error
	LoadRecord(ctx context.Context, kind RecordKind, file string) ([]byte, error)
	DeleteRecord(ctx context.Context, kind RecordKind, file string) error

	// ListRecordFiles enumerates the stored record files of a kind, for
	// bulk clears
	ListRecordFiles(ctx context.Context, kind RecordKind) ([]string, error)

	// Setup is the idempotent data-directory lifecycle hook; a no-op on
	// backends without a directory concept
	Setup(ctx context.Context) error

	// MigrateLegacy performs the one-time move of legacy-layout data into
	// the current layout, reporting whether anything was moved. Idempotent,
	// and a no-op on backends without an on-disk layout.
	MigrateLegacy(ctx context.Context) (bool, error)
}
