package storage_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beholdr/grimoire/internal/entities"
	"github.com/beholdr/grimoire/internal/storage"
)

func TestSafeFilenameDeterministic(t *testing.T) {
	first := storage.SafeFilename("Ancient Red Dragon", "MM")
	second := storage.SafeFilename("Ancient Red Dragon", "MM")

	assert.Equal(t, first, second)
	assert.Equal(t, "ancient-red-dragon-mm", first)
}

func TestSafeFilenameCharset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	cases := map[string][2]string{
		"simple":            {"Orc", "MM"},
		"punctuation":       {"Will-o'-Wisp", "MM"},
		"unicode":           {"Drow Mage (Lolth's Chosen)", "MTF"},
		"leading/trailing":  {"  !!Orc!!  ", "--MM--"},
		"repeated unsafety": {"A   B///C", "M&M"},
	}

	for name, pair := range cases {
		t.Run(name, func(t *testing.T) {
			got := storage.SafeFilename(pair[0], pair[1])
			assert.Regexp(t, valid, got, "no leading/trailing/doubled hyphens, only [a-z0-9-]")
		})
	}
}

func TestCombatFilenameIgnoresName(t *testing.T) {
	// Only the id takes part, so renaming a combat never changes its key
	assert.Equal(t, "combat_42.json", storage.CombatFilename("combat_42"))
}

func TestBeastIndexEntryProjection(t *testing.T) {
	beast := entities.Record{
		"name":      "Ancient Red Dragon",
		"source":    "MM",
		"cr":        "24",
		"type":      "dragon",
		"ac":        []any{map[string]any{"ac": float64(22)}},
		"size":      []any{"G"},
		"alignment": []any{"C", "E"},
		"hp":        map[string]any{"average": float64(546)},
	}

	entry := storage.BeastIndexEntry(beast)
	assert.Equal(t, "ancient-red-dragon-mm", entry.ID)
	assert.Equal(t, "Ancient Red Dragon", entry.Name)
	assert.Equal(t, "24", entry.CR)
	assert.Equal(t, "MM", entry.Source)
	assert.Equal(t, "ancient-red-dragon-mm.json", entry.File)
}

func TestSpellIndexEntryDerivation(t *testing.T) {
	t.Run("concentration from duration object list", func(t *testing.T) {
		spell := entities.Record{
			"name":     "Hold Person",
			"source":   "PHB",
			"level":    float64(2),
			"school":   "E",
			"duration": []any{map[string]any{"concentration": true}},
		}
		entry := storage.SpellIndexEntry(spell)
		assert.True(t, entry.Concentration)
		assert.Equal(t, 2, entry.Level)
		assert.Equal(t, "E", entry.School)
	})

	t.Run("no concentration from plain string duration", func(t *testing.T) {
		spell := entities.Record{
			"name":     "Fire Bolt",
			"source":   "PHB",
			"level":    float64(0),
			"duration": "Instantaneous",
		}
		entry := storage.SpellIndexEntry(spell)
		assert.False(t, entry.Concentration)
	})

	t.Run("concentration substring in string duration", func(t *testing.T) {
		spell := entities.Record{
			"name":     "Witch Bolt",
			"source":   "PHB",
			"duration": "Concentration, up to 1 minute",
		}
		entry := storage.SpellIndexEntry(spell)
		assert.True(t, entry.Concentration)
	})

	t.Run("ritual from meta flag", func(t *testing.T) {
		spell := entities.Record{
			"name":   "Detect Magic",
			"source": "PHB",
			"meta":   map[string]any{"ritual": true},
		}
		entry := storage.SpellIndexEntry(spell)
		assert.True(t, entry.Ritual)
	})

	t.Run("missing availableClasses yields empty not nil", func(t *testing.T) {
		spell := entities.Record{"name": "Wish", "source": "PHB"}
		entry := storage.SpellIndexEntry(spell)
		assert.NotNil(t, entry.AvailableClasses)
		assert.Empty(t, entry.AvailableClasses)
	})

	t.Run("availableClasses copied", func(t *testing.T) {
		spell := entities.Record{
			"name":             "Cure Wounds",
			"source":           "PHB",
			"availableClasses": []any{"Cleric", "Druid", "Bard"},
		}
		entry := storage.SpellIndexEntry(spell)
		assert.Equal(t, []string{"Cleric", "Druid", "Bard"}, entry.AvailableClasses)
	})
}

func TestCombatIndexEntryProjection(t *testing.T) {
	combat := &entities.Combat{
		ID:        "combat_7",
		Name:      "Goblin Ambush",
		CreatedAt: 1700000000000,
	}

	entry := storage.CombatIndexEntry(combat)
	assert.Equal(t, "combat_7", entry.ID)
	assert.Equal(t, "Goblin Ambush", entry.Name)
	assert.Equal(t, int64(1700000000000), entry.CreatedAt)
	assert.Equal(t, "combat_7.json", entry.File)
}
