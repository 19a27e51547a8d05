package entities

// Index entries are lightweight projections of full records, kept small so
// list and filter views never load full records. The file field is the key
// used to fetch the full record on demand.

// BeastIndexEntry is the browse-list projection of a beast record.
// Stat fields keep their upstream shapes (cr may be "1/2" or an object),
// so they stay loosely typed.
type BeastIndexEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CR        any    `json:"cr,omitempty"`
	Type      any    `json:"type,omitempty"`
	Source    string `json:"source"`
	AC        any    `json:"ac,omitempty"`
	Size      any    `json:"size,omitempty"`
	Alignment any    `json:"alignment,omitempty"`
	File      string `json:"file"`
}

// SpellIndexEntry is the browse-list projection of a spell record.
// Concentration, ritual and availableClasses are derived at projection
// time, not copied verbatim.
type SpellIndexEntry struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Level            int      `json:"level"`
	School           string   `json:"school"`
	Source           string   `json:"source"`
	AvailableClasses []string `json:"availableClasses"`
	Ritual           bool     `json:"ritual"`
	Concentration    bool     `json:"concentration"`
	File             string   `json:"file"`
}

// CombatIndexEntry is the saved-encounter list projection
type CombatIndexEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
	File      string `json:"file"`
}
