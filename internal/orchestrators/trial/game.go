package trial

import (
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
	"github.com/KirkDiggler/chunin-dm/internal/narration"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/encounter"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/reroll"
	"github.com/KirkDiggler/chunin-dm/internal/pkg/clock"
	"github.com/KirkDiggler/chunin-dm/internal/pkg/idgen"
	"github.com/KirkDiggler/chunin-dm/internal/pkg/rng"
	"github.com/KirkDiggler/chunin-dm/internal/prompt"
)

// GameConfig is everything needed to assemble a machine from its parts
type GameConfig struct {
	Source *rng.Source
	Prompt prompt.Prompt

	// Bus receives narration events. Defaults to a fresh bus.
	Bus events.EventBus

	// Tables defaults to the embedded encounter tables.
	Tables *encounter.Tables

	// IDGenerator defaults to sequential IDs, so a seeded run is fully
	// reproducible.
	IDGenerator idgen.Generator

	// Clock defaults to the system clock.
	Clock clock.Clock

	Phases    []Phase
	Character *entities.Character
}

// NewGame wires the dice engine, reroll protocol, encounter and combat
// orchestrators around one randomness source and returns a machine ready to
// run.
func NewGame(cfg *GameConfig) (*Machine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	if cfg.Prompt == nil {
		vb.RequiredField("Prompt")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}
	tables := cfg.Tables
	if tables == nil {
		var err error
		tables, err = encounter.DefaultTables()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load default encounter tables")
		}
	}
	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewSequential("run")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	eng, err := engine.New(&engine.Config{Roller: cfg.Source})
	if err != nil {
		return nil, err
	}

	journal, err := narration.NewJournal(&narration.Config{Bus: bus})
	if err != nil {
		return nil, err
	}

	rr, err := reroll.NewService(&reroll.Config{
		Prompt:  cfg.Prompt,
		Journal: journal,
	})
	if err != nil {
		return nil, err
	}

	enc, err := encounter.NewOrchestrator(&encounter.Config{
		Engine:  eng,
		Reroll:  rr,
		Journal: journal,
		Tables:  tables,
	})
	if err != nil {
		return nil, err
	}

	cmb, err := combat.NewOrchestrator(&combat.Config{
		Engine:  eng,
		Reroll:  rr,
		Journal: journal,
	})
	if err != nil {
		return nil, err
	}

	return NewMachine(&Config{
		Engine:      eng,
		Prompt:      cfg.Prompt,
		Reroll:      rr,
		Encounters:  enc,
		Combat:      cmb,
		Journal:     journal,
		Source:      cfg.Source,
		IDGenerator: ids,
		Clock:       clk,
		Phases:      cfg.Phases,
		Character:   cfg.Character,
	})
}
