// Package engine resolves dice: single dies, ability checks and damage rolls
package engine

import (
	"github.com/KirkDiggler/chunin-dm/internal/errors"
)

// ErrMalformedDiceSpec is returned when a damage spec is not of the form NdM.
var ErrMalformedDiceSpec = errors.InvalidArgument("malformed dice spec")

// Engine provides the dice mechanics every check in a run goes through.
// All randomness comes from the configured roller, one draw per die, in
// call order.
type Engine interface {
	// RollDie returns a uniform integer in [1, sides].
	RollDie(sides int) (int, error)

	// AbilityCheck rolls a d20 and adds modifier and proficiency. The result
	// succeeds when its total meets dc.
	AbilityCheck(modifier, dc, proficiency int) (RollResult, error)

	// DamageRoll rolls an NdM spec and sums the dice.
	DamageRoll(spec string) (RollResult, error)
}
