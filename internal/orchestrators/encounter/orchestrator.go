// Package encounter resolves data-driven encounter tables. A table maps the
// faces of a die to outcomes; each outcome is a list of effects that may
// roll checks and change the character. The resolver never looks inside an
// outcome to choose it.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/chunin-dm/internal/orchestrators/encounter Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
	"github.com/KirkDiggler/chunin-dm/internal/narration"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/reroll"
)

// Service defines the interface for encounter operations
type Service interface {
	// Resolve draws one face of the table's die and runs the outcome
	// covering it.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// RunScene runs a named scene directly
	RunScene(ctx context.Context, input *RunSceneInput) (*RunSceneOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Engine  engine.Engine
	Reroll  reroll.Service
	Journal *narration.Journal
	Tables  *Tables
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Reroll == nil {
		vb.RequiredField("Reroll")
	}
	if c.Journal == nil {
		vb.RequiredField("Journal")
	}
	if c.Tables == nil {
		vb.RequiredField("Tables")
	}

	return vb.Build()
}

type orchestrator struct {
	engine  engine.Engine
	reroll  reroll.Service
	journal *narration.Journal
	tables  *Tables
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := cfg.Tables.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid encounter tables")
	}

	return &orchestrator{
		engine:  cfg.Engine,
		reroll:  cfg.Reroll,
		journal: cfg.Journal,
		tables:  cfg.Tables,
	}, nil
}

func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	table, err := o.tables.Table(input.Table)
	if err != nil {
		return nil, err
	}

	face, err := o.engine.RollDie(table.Die)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll table %s", table.Name)
	}
	outcome, ok := table.outcomeFor(face)
	if !ok {
		return nil, errors.Internalf("table %s has no outcome for face %d", table.Name, face)
	}

	slog.Info("Encounter resolved",
		"table", table.Name,
		"face", face,
		"outcome", outcome.Title)

	r := o.newRunner(input.Character, input.AllowReroll)
	r.line(ctx, fmt.Sprintf("d%d 掷出 %d", table.Die, face))
	if err := r.run(ctx, outcome.Effects); err != nil {
		return nil, errors.Wrapf(err, "failed to run outcome %q of table %s", outcome.Title, table.Name)
	}

	return &ResolveOutput{
		Face:    face,
		Outcome: outcome,
		Trace:   r.trace,
	}, nil
}

func (o *orchestrator) RunScene(ctx context.Context, input *RunSceneInput) (*RunSceneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	scene, err := o.tables.Scene(input.Scene)
	if err != nil {
		return nil, err
	}

	slog.Debug("Running scene", "scene", input.Scene)

	r := o.newRunner(input.Character, input.AllowReroll)
	if err := r.run(ctx, scene); err != nil {
		return nil, errors.Wrapf(err, "failed to run scene %s", input.Scene)
	}

	return &RunSceneOutput{Trace: r.trace}, nil
}

// runner applies effects to one character and records what happened
type runner struct {
	*orchestrator
	character   *entities.Character
	allowReroll bool
	trace       []string
}

func (o *orchestrator) newRunner(c *entities.Character, allowReroll bool) *runner {
	return &runner{
		orchestrator: o,
		character:    c,
		allowReroll:  allowReroll,
	}
}

func (r *runner) line(ctx context.Context, text string) {
	r.trace = append(r.trace, text)
	r.journal.Line(ctx, text)
}

func (r *runner) roll(ctx context.Context, label string, result engine.RollResult) {
	r.trace = append(r.trace, fmt.Sprintf("%s：%s", label, result))
	r.journal.Roll(ctx, label, result)
}

func (r *runner) run(ctx context.Context, effects []Effect) error {
	for _, e := range effects {
		if err := r.apply(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) apply(ctx context.Context, e Effect) error {
	c := r.character

	switch {
	case e.Narrate != "":
		r.line(ctx, e.Narrate)

	case e.Check != nil:
		return r.check(ctx, e.Check)

	case e.Damage != nil:
		result, err := r.engine.DamageRoll(e.Damage.Dice)
		if err != nil {
			return err
		}
		c.AdjustHP(-result.Total)
		label := e.Damage.Label
		if label == "" {
			label = "伤害"
		}
		r.line(ctx, fmt.Sprintf("%s，受到 %s 伤害。", label, result))
		if result.Total >= e.Damage.AtLeast {
			return r.run(ctx, e.Damage.Then)
		}

	case e.Heal != nil:
		amount := e.Heal.Amount
		if e.Heal.Dice != "" {
			result, err := r.engine.DamageRoll(e.Heal.Dice)
			if err != nil {
				return err
			}
			amount = result.Total
		}
		c.AdjustHP(amount)
		r.line(ctx, fmt.Sprintf("恢复 %d 点生命。", amount))

	case e.Energy != 0:
		c.RestoreEnergy(e.Energy)
		r.line(ctx, fmt.Sprintf("恢复 %d 点查克拉。", e.Energy))

	case e.SpendEnergy != nil:
		if c.SpendEnergy(e.SpendEnergy.Amount) {
			r.line(ctx, fmt.Sprintf("消耗 %d 点查克拉。", e.SpendEnergy.Amount))
			return r.run(ctx, e.SpendEnergy.Then)
		}
		return r.run(ctx, e.SpendEnergy.Otherwise)

	case e.Fatigue != 0:
		c.GainFatigue(e.Fatigue)
		r.line(ctx, fmt.Sprintf("疲劳 %+d。", e.Fatigue))

	case e.Token != "":
		c.AddToken(e.Token)
		r.line(ctx, fmt.Sprintf("获得%s。", e.Token))

	case e.Bonus:
		c.GrantBonus()
		r.line(ctx, "获得英雄灵感！")

	case e.Scene != "":
		scene, err := r.tables.Scene(e.Scene)
		if err != nil {
			return err
		}
		return r.run(ctx, scene)
	}

	return nil
}

func (r *runner) check(ctx context.Context, ce *CheckEffect) error {
	c := r.character
	modifier := c.Modifier(ce.Ability)
	proficiency := 0
	if ce.Proficiency == nil || *ce.Proficiency {
		proficiency = c.Proficiency
	}

	label := ce.Label
	if label == "" {
		label = ce.Ability.String() + "检定"
	}

	var force *bool
	if !r.allowReroll || !ce.Reroll {
		force = reroll.Decline()
	}

	out, err := r.reroll.Roll(ctx, &reroll.RollInput{
		Character: c,
		Label:     label,
		Check: func() (engine.RollResult, error) {
			return r.engine.AbilityCheck(modifier, ce.DC, proficiency)
		},
		Force: force,
	})
	if err != nil {
		return err
	}
	r.roll(ctx, label, out.Result)

	if out.Result.Meets(ce.DC) {
		return r.run(ctx, ce.OnSuccess)
	}
	return r.run(ctx, ce.OnFailure)
}
