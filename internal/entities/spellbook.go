package entities

// SpellbookEntry is a reference to a spell within a spellbook: the spell's
// identity plus cached metadata so the book can render without loading the
// full record.
type SpellbookEntry struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Level  int    `json:"level"`
	School string `json:"school,omitempty"`
}

// Key returns the entry's normalized (name, source) identity key
func (e SpellbookEntry) Key() string {
	return RecordKey(e.Name, e.Source)
}

// Spellbook is a named collection of spell references
type Spellbook struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Spells      []SpellbookEntry `json:"spells"`
	CreatedAt   int64            `json:"createdAt"`
	UpdatedAt   int64            `json:"updatedAt"`
}
