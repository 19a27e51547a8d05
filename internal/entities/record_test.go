package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beholdr/grimoire/internal/entities"
)

func TestAccessorsTolerateMissingAndMistyped(t *testing.T) {
	rec := entities.Record{
		"name":   "Orc",
		"level":  float64(3),
		"count":  7,
		"legend": true,
		"speed":  map[string]any{"walk": float64(30)},
		"tags":   []any{"brute"},
		"hp":     "not a number",
	}

	assert.Equal(t, "Orc", rec.Str("name"))
	assert.Equal(t, "", rec.Str("missing"))
	assert.Equal(t, "", rec.Str("legend"), "non-string yields zero value")

	assert.Equal(t, 3, rec.Int("level"), "JSON numbers decode as float64")
	assert.Equal(t, 7, rec.Int("count"))
	assert.Equal(t, 0, rec.Int("hp"))
	assert.Equal(t, 0, rec.Int("missing"))

	assert.True(t, rec.Bool("legend"))
	assert.False(t, rec.Bool("name"))

	assert.Equal(t, map[string]any{"walk": float64(30)}, rec.Map("speed"))
	assert.Nil(t, rec.Map("tags"))

	assert.Equal(t, []any{"brute"}, rec.Slice("tags"))
	assert.Nil(t, rec.Slice("speed"))
}

func TestRecordKeyNormalization(t *testing.T) {
	assert.Equal(t, "orc|mm", entities.RecordKey("Orc", "MM"))
	assert.Equal(t, "orc|mm", entities.RecordKey("  orc  ", " mm "))
	assert.Equal(t,
		entities.RecordKey("ORC", "mm"),
		entities.Record{"name": "orc", "source": "MM"}.Key())
}

func TestCloneIsIndependent(t *testing.T) {
	rec := entities.Record{"name": "Orc", "source": "MM"}
	clone := rec.Clone()
	clone["name"] = "Goblin"

	assert.Equal(t, "Orc", rec.Name())
	assert.Equal(t, "Goblin", clone.Name())
}

func TestCopyParsing(t *testing.T) {
	t.Run("no copy attribute", func(t *testing.T) {
		rec := entities.Record{"name": "Orc"}
		assert.False(t, rec.HasCopy())
		assert.Nil(t, rec.Copy())
	})

	t.Run("malformed copy attribute", func(t *testing.T) {
		rec := entities.Record{"_copy": "orc"}
		assert.False(t, rec.HasCopy())
		assert.Nil(t, rec.Copy())

		rec = entities.Record{"_copy": map[string]any{"name": "Orc"}}
		assert.True(t, rec.HasCopy())
		assert.Nil(t, rec.Copy(), "missing source makes the reference unusable")
	})

	t.Run("single mod object", func(t *testing.T) {
		var rec entities.Record
		require.NoError(t, json.Unmarshal([]byte(`{
			"name": "Orc War Chief",
			"source": "VGM",
			"_copy": {
				"name": "Orc",
				"source": "MM",
				"_mod": {"mode": "replaceTxt", "replace": "orc", "with": "war chief"}
			}
		}`), &rec))

		ref := rec.Copy()
		require.NotNil(t, ref)
		assert.Equal(t, "Orc", ref.Name)
		assert.Equal(t, "MM", ref.Source)
		assert.Equal(t, "orc|mm", ref.Key())
		require.Len(t, ref.Mods, 1)
		assert.Equal(t, entities.ModReplaceTxt, ref.Mods[0].Mode)
		assert.Equal(t, "orc", ref.Mods[0].Replace)
		assert.Equal(t, "war chief", ref.Mods[0].With)
	})

	t.Run("mod list keeps order and drops junk", func(t *testing.T) {
		rec := entities.Record{
			"name":   "Orc War Chief",
			"source": "VGM",
			"_copy": map[string]any{
				"name":   "Orc",
				"source": "MM",
				"_mod": []any{
					map[string]any{"mode": "replaceTxt", "replace": "a", "with": "b"},
					"not a mod",
					map[string]any{"replace": "no mode"},
					map[string]any{"mode": "replaceTxt", "replace": "c", "with": "d"},
				},
			},
		}

		ref := rec.Copy()
		require.NotNil(t, ref)
		require.Len(t, ref.Mods, 2)
		assert.Equal(t, "a", ref.Mods[0].Replace)
		assert.Equal(t, "c", ref.Mods[1].Replace)
	})
}

func TestSpellConcentrationSingleObjectDuration(t *testing.T) {
	assert.True(t, entities.SpellConcentration(entities.Record{
		"duration": map[string]any{"concentration": true},
	}))
	assert.False(t, entities.SpellConcentration(entities.Record{
		"duration": map[string]any{"type": "instant"},
	}))
	assert.False(t, entities.SpellConcentration(entities.Record{}))
}

func TestSpellClassesDropsNonStrings(t *testing.T) {
	classes := entities.SpellClasses(entities.Record{
		"availableClasses": []any{"Wizard", float64(3), "Cleric"},
	})
	assert.Equal(t, []string{"Wizard", "Cleric"}, classes)
}
