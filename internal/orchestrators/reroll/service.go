// Package reroll implements the heroic inspiration protocol: a character
// holding the bonus may spend it to roll a check a second time and keep the
// second result.
package reroll

//go:generate mockgen -destination=mock/mock_service.go -package=rerollmock github.com/KirkDiggler/chunin-dm/internal/orchestrators/reroll Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
	"github.com/KirkDiggler/chunin-dm/internal/narration"
	"github.com/KirkDiggler/chunin-dm/internal/prompt"
)

// Question is asked whenever a character holding the bonus finishes a
// reroll-eligible check.
const Question = "你要消耗英雄灵感重掷这个检定吗？(y/N): "

// Service defines the reroll protocol
type Service interface {
	// Roll runs the check, then offers the reroll if the character holds
	// the bonus. The bonus is consumed only when the reroll is accepted.
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
}

// RollInput describes one reroll-eligible check
type RollInput struct {
	Character *entities.Character
	Label     string

	// Check performs the roll. It runs once, or twice on a reroll.
	Check func() (engine.RollResult, error)

	// Force decides the offer without asking. Nil asks the prompt.
	Force *bool
}

// RollOutput is the result that counts
type RollOutput struct {
	Result   engine.RollResult
	Rerolled bool

	// First is the discarded result when Rerolled is set.
	First engine.RollResult
}

// Accept returns a Force value that always takes the reroll
func Accept() *bool {
	v := true
	return &v
}

// Decline returns a Force value that never takes the reroll
func Decline() *bool {
	v := false
	return &v
}

// Config holds the dependencies for the reroll service
type Config struct {
	Prompt  prompt.Prompt
	Journal *narration.Journal
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Prompt == nil {
		vb.RequiredField("Prompt")
	}
	if c.Journal == nil {
		vb.RequiredField("Journal")
	}

	return vb.Build()
}

type service struct {
	prompt  prompt.Prompt
	journal *narration.Journal
}

// NewService creates a reroll service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		prompt:  cfg.Prompt,
		journal: cfg.Journal,
	}, nil
}

func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input.Check == nil {
		return nil, errors.InvalidArgument("check is required")
	}

	first, err := input.Check()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", input.Label)
	}

	if !input.Character.HasBonus() {
		return &RollOutput{Result: first}, nil
	}

	var accept bool
	if input.Force != nil {
		accept = *input.Force
	} else {
		accept = prompt.IsYes(s.prompt.Ask(Question))
	}
	if !accept {
		return &RollOutput{Result: first}, nil
	}

	input.Character.ConsumeBonus()
	s.journal.Line(ctx, "你消耗了英雄灵感，准备重掷……")
	slog.Info("Bonus consumed for reroll",
		"character_id", input.Character.ID,
		"label", input.Label,
		"first_total", first.Total)

	second, err := input.Check()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reroll %s", input.Label)
	}

	return &RollOutput{
		Result:   second,
		Rerolled: true,
		First:    first,
	}, nil
}
