package encounter

import (
	"github.com/KirkDiggler/chunin-dm/internal/entities"
)

// ResolveInput defines the request for resolving a table
type ResolveInput struct {
	Character *entities.Character
	Table     string

	// AllowReroll lets checks marked reroll offer the bonus reroll.
	AllowReroll bool
}

// ResolveOutput describes the branch that fired
type ResolveOutput struct {
	Face    int
	Outcome *Outcome
	Trace   []string
}

// RunSceneInput defines the request for running a named scene
type RunSceneInput struct {
	Character   *entities.Character
	Scene       string
	AllowReroll bool
}

// RunSceneOutput holds the trace of a scene
type RunSceneOutput struct {
	Trace []string
}
