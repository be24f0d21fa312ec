package combat

import (
	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/entities"
)

// DefaultDamage is rolled against the character after a lost duel when the
// duel names no damage spec.
const DefaultDamage = "1d6"

// DuelInput describes a one-on-one fight
type DuelInput struct {
	Character *entities.Character
	Opponent  string
	Flavor    string
	DC        int

	// Damage is the NdM spec rolled on a loss. Empty means DefaultDamage.
	Damage string
}

// DuelOutput holds both checks and the verdict
type DuelOutput struct {
	Victory bool
	Score   int
	Attack  engine.RollResult
	Defense engine.RollResult

	// Damage is set only on a loss.
	Damage *engine.RollResult
}

// SupportMatchInput describes a match the character backs up from the side
type SupportMatchInput struct {
	Character *entities.Character
	Title     string
	Flavor    string
	DC        int
}

// SupportMatchOutput holds the aid check
type SupportMatchOutput struct {
	Success bool
	Aid     engine.RollResult
}
