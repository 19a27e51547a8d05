package entities

// Combatant is one participant in a saved combat encounter
type Combatant struct {
	Name       string   `json:"name"`
	MaxHP      int      `json:"maxHp"`
	CurrentHP  int      `json:"currentHp"`
	AC         int      `json:"ac"`
	Initiative int      `json:"initiative"`
	Conditions []string `json:"conditions,omitempty"`
	Color      string   `json:"color,omitempty"`
	TokenURL   string   `json:"tokenUrl,omitempty"`
}

// Combat is a saved combat encounter. Round, TurnIndex and Started are
// screen state the encounter runner persists alongside the roster.
type Combat struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Combatants []Combatant `json:"combatants"`
	Round      int         `json:"round"`
	TurnIndex  int         `json:"turnIndex"`
	Started    bool        `json:"started"`
	CreatedAt  int64       `json:"createdAt"`
	UpdatedAt  int64       `json:"updatedAt"`
}
