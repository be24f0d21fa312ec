package trial

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/narration"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/encounter"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/reroll"
	"github.com/KirkDiggler/chunin-dm/internal/prompt"
)

// Run is the state a phase works on: the character and the collaborators
// that roll, ask and narrate for it.
type Run struct {
	ID         string
	Character  *entities.Character
	Engine     engine.Engine
	Prompt     prompt.Prompt
	Reroll     reroll.Service
	Encounters encounter.Service
	Combat     combat.Service
	Journal    *narration.Journal
}

// Check describes one ability check inside a phase
type Check struct {
	Ability     entities.Ability
	DC          int
	Label       string
	Proficiency bool

	// Reroll offers the bonus reroll through the prompt.
	Reroll bool
}

// Roll resolves a check and records it in the journal
func (r *Run) Roll(ctx context.Context, check Check) (engine.RollResult, error) {
	modifier := r.Character.Modifier(check.Ability)
	proficiency := 0
	if check.Proficiency {
		proficiency = r.Character.Proficiency
	}
	roll := func() (engine.RollResult, error) {
		return r.Engine.AbilityCheck(modifier, check.DC, proficiency)
	}

	var result engine.RollResult
	if check.Reroll {
		out, err := r.Reroll.Roll(ctx, &reroll.RollInput{
			Character: r.Character,
			Label:     check.Label,
			Check:     roll,
		})
		if err != nil {
			return engine.RollResult{}, err
		}
		result = out.Result
	} else {
		var err error
		result, err = roll()
		if err != nil {
			return engine.RollResult{}, err
		}
	}

	r.Journal.Roll(ctx, check.Label, result)
	return result, nil
}

// Confirm asks a yes/no question. Only "y" is a yes.
func (r *Run) Confirm(question string) bool {
	return prompt.IsYes(r.Prompt.Ask(question))
}

// Announce records a headline
func (r *Run) Announce(ctx context.Context, text string) {
	r.Journal.Announce(ctx, text)
}

// Say records a line of story text
func (r *Run) Say(ctx context.Context, text string) {
	r.Journal.Line(ctx, text)
}

// Sayf records a formatted line of story text
func (r *Run) Sayf(ctx context.Context, format string, args ...interface{}) {
	r.Journal.Line(ctx, fmt.Sprintf(format, args...))
}

// State records a resource line
func (r *Run) State(ctx context.Context, format string, args ...interface{}) {
	r.Journal.State(ctx, fmt.Sprintf(format, args...))
}

// Down reports whether the character has dropped to 0 HP
func (r *Run) Down() bool {
	return !r.Character.Alive()
}
