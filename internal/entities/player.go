package entities

// Player represents a player character in the local roster.
// Identity is the name, unique within local storage.
type Player struct {
	Name              string `json:"name"`
	Race              string `json:"race,omitempty"`
	Class             string `json:"class,omitempty"`
	MaxHP             int    `json:"maxHp"`
	AC                int    `json:"ac"`
	PassivePerception int    `json:"passivePerception,omitempty"`
	InitiativeBonus   int    `json:"initiativeBonus,omitempty"`
	TokenURL          string `json:"tokenUrl,omitempty"`
}
