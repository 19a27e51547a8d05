package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/beholdr/grimoire/internal/entities"
	"github.com/beholdr/grimoire/internal/errors"
	"github.com/beholdr/grimoire/internal/pkg/clock"
	"github.com/beholdr/grimoire/internal/pkg/idgen"
	"github.com/beholdr/grimoire/internal/resolver"
)

const (
	errBackendNil = "backend cannot be nil"
	errCombatNil  = "combat cannot be nil"
	errFileEmpty  = "file reference cannot be empty"
	errIDEmpty    = "id cannot be empty"
	errNameEmpty  = "name cannot be empty"
)

// Config contains configuration for a storage provider
type Config struct {
	Backend Backend
	Clock   clock.Clock
	IDGen   idgen.Generator
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Backend == nil {
		return errors.InvalidArgument(errBackendNil)
	}
	return nil
}

// provider implements the Provider contract generically over Backend
// primitives. All platform differences live below the Backend interface.
type provider struct {
	backend Backend
	clock   clock.Clock
	idgen   idgen.Generator
}

// New creates a storage provider over the given backend
func New(cfg *Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID("")
	}

	return &provider{
		backend: cfg.Backend,
		clock:   c,
		idgen:   gen,
	}, nil
}

// loadIndex unmarshals an index document into target. Absence and backend
// read failures both come back as found=false; the layer cannot distinguish
// missing from unreadable, so it logs and treats them alike.
func (p *provider) loadIndex(ctx context.Context, name IndexName, target any) bool {
	data, err := p.backend.LoadIndex(ctx, name)
	if err != nil {
		slog.WarnContext(ctx, "failed to load index, treating as absent",
			"index", string(name),
			"error", err.Error())
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		slog.WarnContext(ctx, "failed to decode index, treating as absent",
			"index", string(name),
			"error", err.Error())
		return false
	}
	return true
}

func (p *provider) storeIndex(ctx context.Context, name IndexName, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode index %s", name)
	}
	if err := p.backend.StoreIndex(ctx, name, data); err != nil {
		return errors.Wrapf(err, "failed to store index %s", name)
	}
	return nil
}

// clearRecords deletes every stored record of a kind. Enumeration failure is
// logged and skipped so a rebuild can still proceed.
func (p *provider) clearRecords(ctx context.Context, kind RecordKind) {
	files, err := p.backend.ListRecordFiles(ctx, kind)
	if err != nil {
		slog.WarnContext(ctx, "failed to enumerate records for clearing",
			"kind", string(kind),
			"error", err.Error())
		return
	}
	for _, file := range files {
		if err := p.backend.DeleteRecord(ctx, kind, file); err != nil {
			slog.WarnContext(ctx, "failed to delete record",
				"kind", string(kind),
				"file", file,
				"error", err.Error())
		}
	}
}

func (p *provider) StoreBeastsIndex(ctx context.Context, input *StoreBeastsIndexInput) (*StoreBeastsIndexOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resolved, dropped := resolver.ResolveAll(ctx, input.Beasts)

	// The index is rebuilt wholesale, never patched incrementally; stale
	// records from a prior dataset go with it.
	if err := p.backend.DeleteIndex(ctx, IndexBeasts); err != nil {
		return nil, errors.Wrap(err, "failed to clear beasts index")
	}
	p.clearRecords(ctx, KindBeast)

	entries := make([]entities.BeastIndexEntry, 0, len(resolved))
	for _, rec := range resolved {
		entry := BeastIndexEntry(rec)
		data, err := json.Marshal(rec)
		if err != nil {
			slog.WarnContext(ctx, "failed to encode beast, skipping",
				"name", rec.Name(),
				"source", rec.Source(),
				"error", err.Error())
			continue
		}
		if err := p.backend.StoreRecord(ctx, KindBeast, entry.File, data); err != nil {
			return nil, errors.Wrapf(err, "failed to store beast %s", entry.File)
		}
		entries = append(entries, entry)
	}

	if err := p.storeIndex(ctx, IndexBeasts, entries); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "stored beasts index",
		"indexed", len(entries),
		"dropped", len(dropped))

	return &StoreBeastsIndexOutput{Entries: entries, Dropped: dropped}, nil
}

func (p *provider) StoreSpellsIndex(ctx context.Context, input *StoreSpellsIndexInput) (*StoreSpellsIndexOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := p.backend.DeleteIndex(ctx, IndexSpells); err != nil {
		return nil, errors.Wrap(err, "failed to clear spells index")
	}
	p.clearRecords(ctx, KindSpell)

	entries := make([]entities.SpellIndexEntry, 0, len(input.Spells))
	classes := make(SpellClassesIndex)
	for _, rec := range input.Spells {
		entry := SpellIndexEntry(rec)
		data, err := json.Marshal(rec)
		if err != nil {
			slog.WarnContext(ctx, "failed to encode spell, skipping",
				"name", rec.Name(),
				"source", rec.Source(),
				"error", err.Error())
			continue
		}
		if err := p.backend.StoreRecord(ctx, KindSpell, entry.File, data); err != nil {
			return nil, errors.Wrapf(err, "failed to store spell %s", entry.File)
		}
		entries = append(entries, entry)
		for _, class := range entry.AvailableClasses {
			classes[class] = append(classes[class], entry.ID)
		}
	}

	if err := p.storeIndex(ctx, IndexSpells, entries); err != nil {
		return nil, err
	}
	if err := p.storeIndex(ctx, IndexSpellClasses, classes); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "stored spells index", "indexed", len(entries))

	return &StoreSpellsIndexOutput{Entries: entries}, nil
}

func (p *provider) StoreCombat(ctx context.Context, input *StoreCombatInput) (*StoreCombatOutput, error) {
	if input == nil || input.Combat == nil {
		return nil, errors.InvalidArgument(errCombatNil)
	}

	combat := *input.Combat
	now := p.clock.Now().UnixMilli()
	if combat.ID == "" {
		combat.ID = p.idgen.Generate()
		combat.CreatedAt = now
	}
	combat.UpdatedAt = now

	data, err := json.Marshal(&combat)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode combat")
	}

	entry := CombatIndexEntry(&combat)
	if err := p.backend.StoreRecord(ctx, KindCombat, entry.File, data); err != nil {
		return nil, errors.Wrapf(err, "failed to store combat %s", combat.ID)
	}

	// The combat index is patched, not rebuilt: drop any prior entry with
	// the same id, then append.
	var index []entities.CombatIndexEntry
	p.loadIndex(ctx, IndexCombats, &index)
	patched := make([]entities.CombatIndexEntry, 0, len(index)+1)
	for _, existing := range index {
		if existing.ID != combat.ID {
			patched = append(patched, existing)
		}
	}
	patched = append(patched, entry)

	if err := p.storeIndex(ctx, IndexCombats, patched); err != nil {
		return nil, err
	}

	return &StoreCombatOutput{Entry: entry}, nil
}

func (p *provider) LoadBeastsIndex(ctx context.Context, _ *LoadBeastsIndexInput) (*LoadBeastsIndexOutput, error) {
	var entries []entities.BeastIndexEntry
	p.loadIndex(ctx, IndexBeasts, &entries)
	return &LoadBeastsIndexOutput{Entries: entries}, nil
}

func (p *provider) LoadSpellsIndex(ctx context.Context, _ *LoadSpellsIndexInput) (*LoadSpellsIndexOutput, error) {
	var entries []entities.SpellIndexEntry
	p.loadIndex(ctx, IndexSpells, &entries)
	return &LoadSpellsIndexOutput{Entries: entries}, nil
}

func (p *provider) LoadCombatsIndex(ctx context.Context, _ *LoadCombatsIndexInput) (*LoadCombatsIndexOutput, error) {
	var entries []entities.CombatIndexEntry
	p.loadIndex(ctx, IndexCombats, &entries)
	return &LoadCombatsIndexOutput{Entries: entries}, nil
}

func (p *provider) LoadSpellClassesIndex(ctx context.Context, _ *LoadSpellClassesIndexInput) (*LoadSpellClassesIndexOutput, error) {
	index := make(SpellClassesIndex)
	p.loadIndex(ctx, IndexSpellClasses, &index)
	return &LoadSpellClassesIndexOutput{Index: index}, nil
}

// loadRecord decodes an individual record; absence and read/decode failures
// all yield found=false
func (p *provider) loadRecord(ctx context.Context, kind RecordKind, file string, target any) bool {
	data, err := p.backend.LoadRecord(ctx, kind, file)
	if err != nil {
		slog.WarnContext(ctx, "failed to load record, treating as absent",
			"kind", string(kind),
			"file", file,
			"error", err.Error())
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		slog.WarnContext(ctx, "failed to decode record, treating as absent",
			"kind", string(kind),
			"file", file,
			"error", err.Error())
		return false
	}
	return true
}

func (p *provider) LoadBeast(ctx context.Context, input *LoadBeastInput) (*LoadBeastOutput, error) {
	if input == nil || input.File == "" {
		return nil, errors.InvalidArgument(errFileEmpty)
	}

	var rec entities.Record
	if !p.loadRecord(ctx, KindBeast, input.File, &rec) {
		return &LoadBeastOutput{}, nil
	}
	return &LoadBeastOutput{Beast: rec, Found: true}, nil
}

func (p *provider) LoadSpell(ctx context.Context, input *LoadSpellInput) (*LoadSpellOutput, error) {
	if input == nil || input.File == "" {
		return nil, errors.InvalidArgument(errFileEmpty)
	}

	var rec entities.Record
	if !p.loadRecord(ctx, KindSpell, input.File, &rec) {
		return &LoadSpellOutput{}, nil
	}
	return &LoadSpellOutput{Spell: rec, Found: true}, nil
}

func (p *provider) LoadCombat(ctx context.Context, input *LoadCombatInput) (*LoadCombatOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var combat entities.Combat
	if !p.loadRecord(ctx, KindCombat, CombatFilename(input.ID), &combat) {
		return &LoadCombatOutput{}, nil
	}
	return &LoadCombatOutput{Combat: &combat, Found: true}, nil
}

func (p *provider) LoadBeasts(ctx context.Context, input *LoadBeastsInput) (*LoadBeastsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	beasts := make([]entities.Record, 0, len(input.Files))
	for _, file := range input.Files {
		var rec entities.Record
		if p.loadRecord(ctx, KindBeast, file, &rec) {
			beasts = append(beasts, rec)
		}
	}
	return &LoadBeastsOutput{Beasts: beasts}, nil
}

func (p *provider) LoadSpells(ctx context.Context, input *LoadSpellsInput) (*LoadSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	spells := make([]entities.Record, 0, len(input.Files))
	for _, file := range input.Files {
		var rec entities.Record
		if p.loadRecord(ctx, KindSpell, file, &rec) {
			spells = append(spells, rec)
		}
	}
	return &LoadSpellsOutput{Spells: spells}, nil
}

func (p *provider) DeleteCombat(ctx context.Context, input *DeleteCombatInput) (*DeleteCombatOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	if err := p.backend.DeleteRecord(ctx, KindCombat, CombatFilename(input.ID)); err != nil {
		return nil, errors.Wrapf(err, "failed to delete combat %s", input.ID)
	}

	var index []entities.CombatIndexEntry
	if p.loadIndex(ctx, IndexCombats, &index) {
		remaining := make([]entities.CombatIndexEntry, 0, len(index))
		for _, entry := range index {
			if entry.ID != input.ID {
				remaining = append(remaining, entry)
			}
		}
		if err := p.storeIndex(ctx, IndexCombats, remaining); err != nil {
			return nil, err
		}
	}

	return &DeleteCombatOutput{}, nil
}

func (p *provider) SavePlayers(ctx context.Context, input *SavePlayersInput) (*SavePlayersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := p.storeIndex(ctx, IndexPlayers, input.Players); err != nil {
		return nil, err
	}
	return &SavePlayersOutput{}, nil
}

func (p *provider) LoadPlayers(ctx context.Context, _ *LoadPlayersInput) (*LoadPlayersOutput, error) {
	var players []entities.Player
	p.loadIndex(ctx, IndexPlayers, &players)
	return &LoadPlayersOutput{Players: players}, nil
}

func (p *provider) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil || input.Player.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	out, err := p.LoadPlayers(ctx, &LoadPlayersInput{})
	if err != nil {
		return nil, err
	}

	for _, existing := range out.Players {
		if existing.Name == input.Player.Name {
			return nil, errors.AlreadyExistsf("player %q already exists", input.Player.Name)
		}
	}

	players := append(out.Players, input.Player)
	if err := p.storeIndex(ctx, IndexPlayers, players); err != nil {
		return nil, err
	}
	return &AddPlayerOutput{}, nil
}

func (p *provider) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	out, err := p.LoadPlayers(ctx, &LoadPlayersInput{})
	if err != nil {
		return nil, err
	}

	remaining := make([]entities.Player, 0, len(out.Players))
	for _, player := range out.Players {
		if player.Name != input.Name {
			remaining = append(remaining, player)
		}
	}

	// Removing an absent name is a no-op, not an error
	if len(remaining) == len(out.Players) {
		return &RemovePlayerOutput{}, nil
	}

	if err := p.storeIndex(ctx, IndexPlayers, remaining); err != nil {
		return nil, err
	}
	return &RemovePlayerOutput{}, nil
}

func (p *provider) UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	out, err := p.LoadPlayers(ctx, &LoadPlayersInput{})
	if err != nil {
		return nil, err
	}

	updated := false
	for i, player := range out.Players {
		if player.Name == input.Name {
			out.Players[i] = input.Player
			updated = true
			break
		}
	}

	// Updating an absent name is a no-op, not an error
	if !updated {
		return &UpdatePlayerOutput{}, nil
	}

	if err := p.storeIndex(ctx, IndexPlayers, out.Players); err != nil {
		return nil, err
	}
	return &UpdatePlayerOutput{}, nil
}

func (p *provider) SaveSpellbooks(ctx context.Context, input *SaveSpellbooksInput) (*SaveSpellbooksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := p.storeIndex(ctx, IndexSpellbooks, input.Spellbooks); err != nil {
		return nil, err
	}
	return &SaveSpellbooksOutput{}, nil
}

func (p *provider) LoadSpellbooks(ctx context.Context, _ *LoadSpellbooksInput) (*LoadSpellbooksOutput, error) {
	var books []entities.Spellbook
	p.loadIndex(ctx, IndexSpellbooks, &books)
	return &LoadSpellbooksOutput{Spellbooks: books}, nil
}

func (p *provider) CreateSpellbook(ctx context.Context, input *CreateSpellbookInput) (*CreateSpellbookOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	out, err := p.LoadSpellbooks(ctx, &LoadSpellbooksInput{})
	if err != nil {
		return nil, err
	}

	now := p.clock.Now().UnixMilli()
	book := entities.Spellbook{
		ID:          p.idgen.Generate(),
		Name:        input.Name,
		Description: input.Description,
		Spells:      []entities.SpellbookEntry{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	books := append(out.Spellbooks, book)
	if err := p.storeIndex(ctx, IndexSpellbooks, books); err != nil {
		return nil, err
	}
	return &CreateSpellbookOutput{ID: book.ID}, nil
}

func (p *provider) DeleteSpellbook(ctx context.Context, input *DeleteSpellbookInput) (*DeleteSpellbookOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	out, err := p.LoadSpellbooks(ctx, &LoadSpellbooksInput{})
	if err != nil {
		return nil, err
	}

	remaining := make([]entities.Spellbook, 0, len(out.Spellbooks))
	for _, book := range out.Spellbooks {
		if book.ID != input.ID {
			remaining = append(remaining, book)
		}
	}

	if len(remaining) == len(out.Spellbooks) {
		return &DeleteSpellbookOutput{}, nil
	}

	if err := p.storeIndex(ctx, IndexSpellbooks, remaining); err != nil {
		return nil, err
	}
	return &DeleteSpellbookOutput{}, nil
}

func (p *provider) AddSpellToSpellbook(ctx context.Context, input *AddSpellToSpellbookInput) (*AddSpellToSpellbookOutput, error) {
	if input == nil || input.SpellbookID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if input.Entry.Name == "" {
		return nil, errors.InvalidArgument("spell name cannot be empty")
	}

	out, err := p.LoadSpellbooks(ctx, &LoadSpellbooksInput{})
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range out.Spellbooks {
		book := &out.Spellbooks[i]
		if book.ID != input.SpellbookID {
			continue
		}
		// Adding a spell that is already present is a no-op
		for _, entry := range book.Spells {
			if entry.Key() == input.Entry.Key() {
				return &AddSpellToSpellbookOutput{}, nil
			}
		}
		book.Spells = append(book.Spells, input.Entry)
		book.UpdatedAt = p.clock.Now().UnixMilli()
		changed = true
		break
	}

	if !changed {
		slog.WarnContext(ctx, "spellbook not found, spell not added",
			"spellbook_id", input.SpellbookID)
		return &AddSpellToSpellbookOutput{}, nil
	}

	if err := p.storeIndex(ctx, IndexSpellbooks, out.Spellbooks); err != nil {
		return nil, err
	}
	return &AddSpellToSpellbookOutput{}, nil
}

func (p *provider) RemoveSpellFromSpellbook(ctx context.Context, input *RemoveSpellFromSpellbookInput) (*RemoveSpellFromSpellbookOutput, error) {
	if input == nil || input.SpellbookID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	out, err := p.LoadSpellbooks(ctx, &LoadSpellbooksInput{})
	if err != nil {
		return nil, err
	}

	key := entities.RecordKey(input.Name, input.Source)
	changed := false
	for i := range out.Spellbooks {
		book := &out.Spellbooks[i]
		if book.ID != input.SpellbookID {
			continue
		}
		remaining := make([]entities.SpellbookEntry, 0, len(book.Spells))
		for _, entry := range book.Spells {
			if entry.Key() != key {
				remaining = append(remaining, entry)
			}
		}
		if len(remaining) != len(book.Spells) {
			book.Spells = remaining
			book.UpdatedAt = p.clock.Now().UnixMilli()
			changed = true
		}
		break
	}

	if !changed {
		return &RemoveSpellFromSpellbookOutput{}, nil
	}

	if err := p.storeIndex(ctx, IndexSpellbooks, out.Spellbooks); err != nil {
		return nil, err
	}
	return &RemoveSpellFromSpellbookOutput{}, nil
}

func (p *provider) ClearAllData(ctx context.Context, _ *ClearAllDataInput) (*ClearAllDataOutput, error) {
	for _, name := range []IndexName{
		IndexBeasts, IndexSpells, IndexCombats,
		IndexSpellClasses, IndexPlayers, IndexSpellbooks,
	} {
		if err := p.backend.DeleteIndex(ctx, name); err != nil {
			return nil, errors.Wrapf(err, "failed to delete index %s", name)
		}
	}
	for _, kind := range []RecordKind{KindBeast, KindSpell, KindCombat} {
		p.clearRecords(ctx, kind)
	}

	slog.InfoContext(ctx, "cleared all stored data")
	return &ClearAllDataOutput{}, nil
}

func (p *provider) ClearReferenceData(ctx context.Context, _ *ClearReferenceDataInput) (*ClearReferenceDataOutput, error) {
	for _, name := range []IndexName{IndexBeasts, IndexSpells, IndexSpellClasses} {
		if err := p.backend.DeleteIndex(ctx, name); err != nil {
			return nil, errors.Wrapf(err, "failed to delete index %s", name)
		}
	}
	for _, kind := range []RecordKind{KindBeast, KindSpell} {
		p.clearRecords(ctx, kind)
	}

	slog.InfoContext(ctx, "cleared beast and spell reference data")
	return &ClearReferenceDataOutput{}, nil
}

func (p *provider) GetStorageInfo(ctx context.Context, _ *GetStorageInfoInput) (*GetStorageInfoOutput, error) {
	info := StorageInfo{}

	if data, err := p.backend.LoadIndex(ctx, IndexBeasts); err == nil && data != nil {
		info.BeastBytes = len(data)
		var entries []entities.BeastIndexEntry
		if err := json.Unmarshal(data, &entries); err == nil {
			info.BeastCount = len(entries)
		}
	}
	if data, err := p.backend.LoadIndex(ctx, IndexSpells); err == nil && data != nil {
		info.SpellBytes = len(data)
		var entries []entities.SpellIndexEntry
		if err := json.Unmarshal(data, &entries); err == nil {
			info.SpellCount = len(entries)
		}
	}

	return &GetStorageInfoOutput{Info: info}, nil
}

func (p *provider) EnsureDataDirectory(ctx context.Context, _ *EnsureDataDirectoryInput) (*EnsureDataDirectoryOutput, error) {
	if err := p.backend.Setup(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to set up data directory")
	}
	return &EnsureDataDirectoryOutput{}, nil
}

func (p *provider) MigrateLegacyData(ctx context.Context, _ *MigrateLegacyDataInput) (*MigrateLegacyDataOutput, error) {
	migrated, err := p.backend.MigrateLegacy(ctx)
	if err != nil {
		// Migration failure never blocks startup; legacy data stays in
		// place for the next attempt.
		return nil, errors.Wrap(err, "legacy data migration failed")
	}
	if migrated {
		slog.InfoContext(ctx, "migrated legacy data to current layout")
	}
	return &MigrateLegacyDataOutput{Migrated: migrated}, nil
}
