package storage

import (
	"regexp"
	"strings"

	"github.com/beholdr/grimoire/internal/entities"
)

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

// SafeFilename derives the deterministic storage key for a (name, source)
// pair: both inputs lower-cased, every run of characters outside [a-z0-9]
// collapsed to a single hyphen, leading/trailing hyphens stripped, joined as
// name-source. Collisions are a theoretical but accepted risk.
func SafeFilename(name, source string) string {
	joined := sanitize(name) + "-" + sanitize(source)
	return strings.Trim(joined, "-")
}

func sanitize(s string) string {
	s = unsafeChars.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// CombatFilename derives the storage key for a combat. Only the id takes
// part, so renaming a combat never changes its key.
func CombatFilename(id string) string {
	return id + ".json"
}

// recordFile is the individually addressable file reference for a beast or
// spell record
func recordFile(rec entities.Record) string {
	return SafeFilename(rec.Name(), rec.Source()) + ".json"
}

// BeastIndexEntry projects a resolved beast record to its index form
func BeastIndexEntry(rec entities.Record) entities.BeastIndexEntry {
	return entities.BeastIndexEntry{
		ID:        SafeFilename(rec.Name(), rec.Source()),
		Name:      rec.Name(),
		CR:        rec["cr"],
		Type:      rec["type"],
		Source:    rec.Source(),
		AC:        rec["ac"],
		Size:      rec["size"],
		Alignment: rec["alignment"],
		File:      recordFile(rec),
	}
}

// SpellIndexEntry projects a spell record to its index form. Concentration,
// ritual and availableClasses are derived here so every backend shares the
// same rules.
func SpellIndexEntry(rec entities.Record) entities.SpellIndexEntry {
	return entities.SpellIndexEntry{
		ID:               SafeFilename(rec.Name(), rec.Source()),
		Name:             rec.Name(),
		Level:            rec.Int(entities.FieldLevel),
		School:           rec.Str(entities.FieldSchool),
		Source:           rec.Source(),
		AvailableClasses: entities.SpellClasses(rec),
		Ritual:           entities.SpellRitual(rec),
		Concentration:    entities.SpellConcentration(rec),
		File:             recordFile(rec),
	}
}

// CombatIndexEntry projects a combat to its index form
func CombatIndexEntry(combat *entities.Combat) entities.CombatIndexEntry {
	return entities.CombatIndexEntry{
		ID:        combat.ID,
		Name:      combat.Name,
		CreatedAt: combat.CreatedAt,
		File:      CombatFilename(combat.ID),
	}
}
