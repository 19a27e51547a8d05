// Package entities implements the bestiary data entities
package entities

import (
	"strings"
)

// Record is a semi-structured reference-data record as decoded from JSON.
// Upstream sourcebook data is heterogeneous, so beasts and spells are open
// field maps rather than fixed structs; the accessors below tolerate absent
// or mistyped fields without panicking.
type Record map[string]any

// Field keys this layer depends on
const (
	FieldName    = "name"
	FieldSource  = "source"
	FieldCopy    = "_copy"
	FieldMod     = "_mod"
	FieldLevel   = "level"
	FieldSchool  = "school"
	FieldMeta    = "meta"
	FieldRitual  = "ritual"
	FieldClasses = "availableClasses"

	FieldDuration      = "duration"
	FieldConcentration = "concentration"
)

// Str returns the string value for key, or "" if absent or not a string
func (r Record) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Bool returns the boolean value for key, false if absent or not a bool
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Int returns the numeric value for key as an int. JSON numbers decode as
// float64, so both are accepted; anything else yields 0.
func (r Record) Int(key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Map returns the nested map value for key, or nil
func (r Record) Map(key string) map[string]any {
	m, _ := r[key].(map[string]any)
	return m
}

// Slice returns the list value for key, or nil
func (r Record) Slice(key string) []any {
	s, _ := r[key].([]any)
	return s
}

// Name returns the record's name field
func (r Record) Name() string {
	return r.Str(FieldName)
}

// Source returns the record's source field (the book it comes from)
func (r Record) Source() string {
	return r.Str(FieldSource)
}

// Key returns the record's normalized (name, source) identity key
func (r Record) Key() string {
	return RecordKey(r.Name(), r.Source())
}

// Clone returns a shallow copy of the record
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// RecordKey builds the normalized lookup key for a (name, source) pair.
// Identity is case-insensitive and whitespace-trimmed.
func RecordKey(name, source string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(source))
}
