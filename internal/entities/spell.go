package entities

import "strings"

// Spell derived fields. These are computed whenever a spell crosses into
// index form, identically for every storage backend.

// SpellConcentration reports whether the spell requires concentration.
// The duration attribute varies by sourcebook: it may be a list of duration
// objects, a single object, or a plain string.
func SpellConcentration(r Record) bool {
	switch d := r[FieldDuration].(type) {
	case []any:
		for _, item := range d {
			if m, ok := item.(map[string]any); ok && Record(m).Bool(FieldConcentration) {
				return true
			}
		}
	case map[string]any:
		return Record(d).Bool(FieldConcentration)
	case string:
		return strings.Contains(strings.ToLower(d), "concentration")
	}
	return false
}

// SpellRitual reports whether the spell can be cast as a ritual, read from
// the nested meta flag
func SpellRitual(r Record) bool {
	meta := r.Map(FieldMeta)
	if meta == nil {
		return false
	}
	return Record(meta).Bool(FieldRitual)
}

// SpellClasses returns the class names that can cast the spell. Always
// non-nil: absence yields an empty slice.
func SpellClasses(r Record) []string {
	raw := r.Slice(FieldClasses)
	classes := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			classes = append(classes, s)
		}
	}
	return classes
}
