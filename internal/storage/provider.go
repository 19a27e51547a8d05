// Package storage implements the pluggable persistence layer: one provider
// contract over interchangeable platform backends (key-value store or file
// system), plus the key and index-projection utilities both share.
package storage

import (
	"context"

	"github.com/beholdr/grimoire/internal/entities"
)

// SpellClassesIndex maps a class name to the ids of the spells it can cast.
// Rebuilt wholesale on every spells-index store.
type SpellClassesIndex map[string][]string

// StorageInfo holds entry counts and serialized-size estimates for display
type StorageInfo struct {
	BeastCount int `json:"beastCount"`
	BeastBytes int `json:"beastBytes"`
	SpellCount int `json:"spellCount"`
	SpellBytes int `json:"spellBytes"`
}

// Provider is the storage contract every platform implementation satisfies.
//
// Load operations never fail for absence: a missing index or record comes
// back as an empty list or Found=false, and backend read failures are
// treated the same way (logged, not propagated); callers must treat every
// load as capable of returning nothing.
type Provider interface {
	// StoreBeastsIndex resolves all copy-references across the input set,
	// rebuilds the beast index from scratch, and stores every resolved
	// beast as an individually addressable record. Records that fail
	// resolution are dropped with a warning, never stored half-resolved.
	StoreBeastsIndex(ctx context.Context, input *StoreBeastsIndexInput) (*StoreBeastsIndexOutput, error)

	// StoreSpellsIndex rebuilds the spell index (with derived fields) and
	// the auxiliary spell-classes index, and stores every spell
	// individually
	StoreSpellsIndex(ctx context.Context, input *StoreSpellsIndexInput) (*StoreSpellsIndexOutput, error)

	// StoreCombat stores the combat record and patches the combat index:
	// any prior entry with the same id is replaced, not duplicated
	StoreCombat(ctx context.Context, input *StoreCombatInput) (*StoreCombatOutput, error)

	LoadBeastsIndex(ctx context.Context, input *LoadBeastsIndexInput) (*LoadBeastsIndexOutput, error)
	LoadSpellsIndex(ctx context.Context, input *LoadSpellsIndexInput) (*LoadSpellsIndexOutput, error)
	LoadCombatsIndex(ctx context.Context, input *LoadCombatsIndexInput) (*LoadCombatsIndexOutput, error)
	LoadSpellClassesIndex(ctx context.Context, input *LoadSpellClassesIndexInput) (*LoadSpellClassesIndexOutput, error)

	LoadBeast(ctx context.Context, input *LoadBeastInput) (*LoadBeastOutput, error)
	LoadSpell(ctx context.Context, input *LoadSpellInput) (*LoadSpellOutput, error)
	LoadCombat(ctx context.Context, input *LoadCombatInput) (*LoadCombatOutput, error)

	// LoadBeasts and LoadSpells are batch conveniences that silently omit
	// records that fail to load
	LoadBeasts(ctx context.Context, input *LoadBeastsInput) (*LoadBeastsOutput, error)
	LoadSpells(ctx context.Context, input *LoadSpellsInput) (*LoadSpellsOutput, error)

	DeleteCombat(ctx context.Context, input *DeleteCombatInput) (*DeleteCombatOutput, error)

	// Player roster, stored and loaded as one unit
	SavePlayers(ctx context.Context, input *SavePlayersInput) (*SavePlayersOutput, error)
	LoadPlayers(ctx context.Context, input *LoadPlayersInput) (*LoadPlayersOutput, error)
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)
	// RemovePlayer and UpdatePlayer are no-ops when the name is absent
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)
	UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error)

	// Spellbooks, stored and loaded as one unit
	SaveSpellbooks(ctx context.Context, input *SaveSpellbooksInput) (*SaveSpellbooksOutput, error)
	LoadSpellbooks(ctx context.Context, input *LoadSpellbooksInput) (*LoadSpellbooksOutput, error)
	// CreateSpellbook generates and returns a unique id
	CreateSpellbook(ctx context.Context, input *CreateSpellbookInput) (*CreateSpellbookOutput, error)
	DeleteSpellbook(ctx context.Context, input *DeleteSpellbookInput) (*DeleteSpellbookOutput, error)
	// AddSpellToSpellbook is a no-op when the spell is already present
	// (matched by name+source)
	AddSpellToSpellbook(ctx context.Context, input *AddSpellToSpellbookInput) (*AddSpellToSpellbookOutput, error)
	RemoveSpellFromSpellbook(ctx context.Context, input *RemoveSpellFromSpellbookInput) (*RemoveSpellFromSpellbookOutput, error)

	// ClearAllData irrecoverably removes everything the provider manages
	ClearAllData(ctx context.Context, input *ClearAllDataInput) (*ClearAllDataOutput, error)
	// ClearReferenceData removes beast and spell data only; players,
	// spellbooks and combats remain untouched
	ClearReferenceData(ctx context.Context, input *ClearReferenceDataInput) (*ClearReferenceDataOutput, error)

	// GetStorageInfo never fails for absent indexes; they count as zero
	GetStorageInfo(ctx context.Context, input *GetStorageInfoInput) (*GetStorageInfoOutput, error)

	// EnsureDataDirectory is the idempotent setup hook the startup
	// sequence calls once
	EnsureDataDirectory(ctx context.Context, input *EnsureDataDirectoryInput) (*EnsureDataDirectoryOutput, error)

	// MigrateLegacyData moves prior-layout data into the current layout.
	// Separate from EnsureDataDirectory so startup can invoke (and tests
	// can exercise) it independently. Failure is logged and reported, but
	// callers are expected to continue.
	MigrateLegacyData(ctx context.Context, input *MigrateLegacyDataInput) (*MigrateLegacyDataOutput, error)
}

// StoreBeastsIndexInput defines the input for storing the beast collection
type StoreBeastsIndexInput struct {
	Beasts []entities.Record
}

// StoreBeastsIndexOutput reports what was indexed and what was dropped
type StoreBeastsIndexOutput struct {
	Entries []entities.BeastIndexEntry
	// Dropped holds the identity keys of records that failed resolution
	Dropped []string
}

// StoreSpellsIndexInput defines the input for storing the spell collection
type StoreSpellsIndexInput struct {
	Spells []entities.Record
}

// StoreSpellsIndexOutput reports the stored index entries
type StoreSpellsIndexOutput struct {
	Entries []entities.SpellIndexEntry
}

// StoreCombatInput defines the input for storing a combat
type StoreCombatInput struct {
	Combat *entities.Combat
}

// StoreCombatOutput reports the stored combat's index entry
type StoreCombatOutput struct {
	Entry entities.CombatIndexEntry
}

// LoadBeastsIndexInput defines the input for loading the beast index
type LoadBeastsIndexInput struct{}

// LoadBeastsIndexOutput holds the beast index entries; empty when no index
// has been stored yet
type LoadBeastsIndexOutput struct {
	Entries []entities.BeastIndexEntry
}

// LoadSpellsIndexInput defines the input for loading the spell index
type LoadSpellsIndexInput struct{}

// LoadSpellsIndexOutput holds the spell index entries
type LoadSpellsIndexOutput struct {
	Entries []entities.SpellIndexEntry
}

// LoadCombatsIndexInput defines the input for loading the combat index
type LoadCombatsIndexInput struct{}

// LoadCombatsIndexOutput holds the combat index entries
type LoadCombatsIndexOutput struct {
	Entries []entities.CombatIndexEntry
}

// LoadSpellClassesIndexInput defines the input for loading the class index
type LoadSpellClassesIndexInput struct{}

// LoadSpellClassesIndexOutput holds the class-to-spell-ids mapping
type LoadSpellClassesIndexOutput struct {
	Index SpellClassesIndex
}

// LoadBeastInput identifies a beast record by its file reference
type LoadBeastInput struct {
	File string
}

// LoadBeastOutput holds the loaded beast; Found is false when absent
type LoadBeastOutput struct {
	Beast entities.Record
	Found bool
}

// LoadSpellInput identifies a spell record by its file reference
type LoadSpellInput struct {
	File string
}

// LoadSpellOutput holds the loaded spell; Found is false when absent
type LoadSpellOutput struct {
	Spell entities.Record
	Found bool
}

// LoadCombatInput identifies a combat by id
type LoadCombatInput struct {
	ID string
}

// LoadCombatOutput holds the loaded combat; Found is false when absent
type LoadCombatOutput struct {
	Combat *entities.Combat
	Found  bool
}

// LoadBeastsInput names the beast record files to batch-load
type LoadBeastsInput struct {
	Files []string
}

// LoadBeastsOutput holds the beasts that loaded successfully
type LoadBeastsOutput struct {
	Beasts []entities.Record
}

// LoadSpellsInput names the spell record files to batch-load
type LoadSpellsInput struct {
	Files []string
}

// LoadSpellsOutput holds the spells that loaded successfully
type LoadSpellsOutput struct {
	Spells []entities.Record
}

// DeleteCombatInput identifies the combat to delete
type DeleteCombatInput struct {
	ID string
}

// DeleteCombatOutput defines the output for deleting a combat
type DeleteCombatOutput struct{}

// SavePlayersInput holds the full player roster to store
type SavePlayersInput struct {
	Players []entities.Player
}

// SavePlayersOutput defines the output for saving the roster
type SavePlayersOutput struct{}

// LoadPlayersInput defines the input for loading the roster
type LoadPlayersInput struct{}

// LoadPlayersOutput holds the stored roster; empty when never saved
type LoadPlayersOutput struct {
	Players []entities.Player
}

// AddPlayerInput holds the player to append to the roster
type AddPlayerInput struct {
	Player entities.Player
}

// AddPlayerOutput defines the output for adding a player
type AddPlayerOutput struct{}

// RemovePlayerInput names the player to remove
type RemovePlayerInput struct {
	Name string
}

// RemovePlayerOutput defines the output for removing a player
type RemovePlayerOutput struct{}

// UpdatePlayerInput names the player to replace and the new data
type UpdatePlayerInput struct {
	Name   string
	Player entities.Player
}

// UpdatePlayerOutput defines the output for updating a player
type UpdatePlayerOutput struct{}

// SaveSpellbooksInput holds the full spellbook list to store
type SaveSpellbooksInput struct {
	Spellbooks []entities.Spellbook
}

// SaveSpellbooksOutput defines the output for saving spellbooks
type SaveSpellbooksOutput struct{}

// LoadSpellbooksInput defines the input for loading spellbooks
type LoadSpellbooksInput struct{}

// LoadSpellbooksOutput holds the stored spellbooks
type LoadSpellbooksOutput struct {
	Spellbooks []entities.Spellbook
}

// CreateSpellbookInput holds the new spellbook's display fields
type CreateSpellbookInput struct {
	Name        string
	Description string
}

// CreateSpellbookOutput returns the generated spellbook id
type CreateSpellbookOutput struct {
	ID string
}

// DeleteSpellbookInput identifies the spellbook to delete
type DeleteSpellbookInput struct {
	ID string
}

// DeleteSpellbookOutput defines the output for deleting a spellbook
type DeleteSpellbookOutput struct{}

// AddSpellToSpellbookInput identifies the book and the spell reference
type AddSpellToSpellbookInput struct {
	SpellbookID string
	Entry       entities.SpellbookEntry
}

// AddSpellToSpellbookOutput defines the output for adding a spell
type AddSpellToSpellbookOutput struct{}

// RemoveSpellFromSpellbookInput identifies the book and the spell identity
type RemoveSpellFromSpellbookInput struct {
	SpellbookID string
	Name        string
	Source      string
}

// RemoveSpellFromSpellbookOutput defines the output for removing a spell
type RemoveSpellFromSpellbookOutput struct{}

// ClearAllDataInput defines the input for the full wipe
type ClearAllDataInput struct{}

// ClearAllDataOutput defines the output for the full wipe
type ClearAllDataOutput struct{}

// ClearReferenceDataInput defines the input for the reference-only wipe
type ClearReferenceDataInput struct{}

// ClearReferenceDataOutput defines the output for the reference-only wipe
type ClearReferenceDataOutput struct{}

// GetStorageInfoInput defines the input for the stats query
type GetStorageInfoInput struct{}

// GetStorageInfoOutput holds the storage statistics
type GetStorageInfoOutput struct {
	Info StorageInfo
}

// EnsureDataDirectoryInput defines the input for the setup hook
type EnsureDataDirectoryInput struct{}

// EnsureDataDirectoryOutput defines the output for the setup hook
type EnsureDataDirectoryOutput struct{}

// MigrateLegacyDataInput defines the input for legacy migration
type MigrateLegacyDataInput struct{}

// MigrateLegacyDataOutput reports whether migration ran cleanly
type MigrateLegacyDataOutput struct {
	// Migrated is true when legacy data was found and moved
	Migrated bool
}
