// Package combat resolves duels and support matches
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/chunin-dm/internal/orchestrators/combat Service

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

// VictoryScore is the number of cleared checks a duel needs
const VictoryScore = 2

// Service defines the interface for combat operations
type Service interface {
	// Duel rolls an attack check, which may be rerolled, and a defense
	// check at one less DC, which may not. Clearing both wins the duel and
	// grants the bonus. A loss rolls damage against HP.
	Duel(ctx context.Context, input *DuelInput) (*DuelOutput, error)

	// SupportMatch rolls one perception check. Success grants the bonus.
	SupportMatch(ctx context.Context, input *SupportMatchInput) (*SupportMatchOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Engine  engine.Engine
	Reroll  reroll.Service
	Journal *narration.Journal
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

	return vb.Build()
}

type orchestrator struct {
	engine  engine.Engine
	reroll  reroll.Service
	journal *narration.Journal
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:  cfg.Engine,
		reroll:  cfg.Reroll,
		journal: cfg.Journal,
	}, nil
}

func (o *orchestrator) Duel(ctx context.Context, input *DuelInput) (*DuelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Character == nil {
		vb.RequiredField("character")
	}
	errors.ValidateRequired("opponent", input.Opponent, vb)
	errors.ValidatePositive("dc", input.DC, vb)
	damage := input.Damage
	if damage == "" {
		damage = DefaultDamage
	}
	if _, err := engine.ParseDiceSpec(damage); err != nil {
		vb.Fieldf("damage", "malformed dice spec %q", damage)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := input.Character
	o.journal.Announce(ctx, "对战 "+input.Opponent)
	if input.Flavor != "" {
		o.journal.Line(ctx, input.Flavor)
	}

	attackMod := c.Modifier(entities.AbilityTaijutsu)
	attack, err := o.reroll.Roll(ctx, &reroll.RollInput{
		Character: c,
		Label:     "进攻检定",
		Check: func() (engine.RollResult, error) {
			return o.engine.AbilityCheck(attackMod, input.DC, c.Proficiency)
		},
	})
	if err != nil {
		return nil, err
	}

	defense, err := o.engine.AbilityCheck(c.Modifier(entities.AbilitySpeed), input.DC-1, 0)
	if err != nil {
		return nil, err
	}

	o.journal.Roll(ctx, "进攻检定", attack.Result)
	o.journal.Roll(ctx, "防御检定", defense)

	out := &DuelOutput{
		Attack:  attack.Result,
		Defense: defense,
	}
	if attack.Result.Meets(input.DC) {
		out.Score++
	}
	if defense.Meets(input.DC - 1) {
		out.Score++
	}

	if out.Score >= VictoryScore {
		out.Victory = true
		c.GrantBonus()
		o.journal.Linef(ctx, "你战胜了 %s！", input.Opponent)
	} else {
		injury, err := o.engine.DamageRoll(damage)
		if err != nil {
			return nil, err
		}
		c.AdjustHP(-injury.Total)
		out.Damage = &injury
		o.journal.Line(ctx, fmt.Sprintf("%s 更胜一筹，你受到 %s 伤害，当前生命 %d。", input.Opponent, injury, c.HP))
	}

	slog.Info("Duel resolved",
		"opponent", input.Opponent,
		"dc", input.DC,
		"score", out.Score,
		"victory", out.Victory,
		"hp", c.HP)

	return out, nil
}

func (o *orchestrator) SupportMatch(ctx context.Context, input *SupportMatchInput) (*SupportMatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Character == nil {
		vb.RequiredField("character")
	}
	errors.ValidatePositive("dc", input.DC, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := input.Character
	o.journal.Announce(ctx, input.Title)
	if input.Flavor != "" {
		o.journal.Line(ctx, input.Flavor)
	}

	aid, err := o.engine.AbilityCheck(c.Modifier(entities.AbilityPerception), input.DC, c.Proficiency)
	if err != nil {
		return nil, err
	}
	o.journal.Roll(ctx, "战术支援检定", aid)

	out := &SupportMatchOutput{Aid: aid, Success: aid.Meets(input.DC)}
	if out.Success {
		c.GrantBonus()
		o.journal.Line(ctx, "你的提醒与投掷道具改变战局，队友获胜并感谢你。英雄灵感 +1。")
	} else {
		o.journal.Line(ctx, "你尽力支援但无力回天，记录下对手的套路。")
	}

	slog.Debug("Support match resolved",
		"match", input.Title,
		"dc", input.DC,
		"success", out.Success)

	return out, nil
}
