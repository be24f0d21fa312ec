package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/chunin-dm/internal/errors"
)

const (
	// CheckDie is the die every ability check rolls
	CheckDie = 20

	// MaxDiceCount and MaxDieSides bound a parsed dice spec
	MaxDiceCount = 100
	MaxDieSides  = 1000
)

var (
	// Regex for parsing simple dice notation like "2d6", "1d20", "3d8"
	diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)
)

// Config holds the dependencies for the dice engine
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type engine struct {
	roller dice.Roller
}

// New creates a dice engine drawing from the configured roller
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{roller: cfg.Roller}, nil
}

// AbilityModifier converts a score to its modifier: floor((score - 10) / 2).
// Go's integer division truncates toward zero, so odd scores below 10 need
// one more step down (9 -> -1, 7 -> -2).
func AbilityModifier(score int) int {
	modifier := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		modifier--
	}
	return modifier
}

// ParseDiceSpec parses NdM notation, case-insensitively. Counts and sides
// must both be positive and within MaxDiceCount and MaxDieSides.
func ParseDiceSpec(spec string) (DiceSpec, error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(spec)))
	if len(matches) != 3 {
		return DiceSpec{}, malformed(spec, "expected format NdM")
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return DiceSpec{}, malformed(spec, "invalid dice count")
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return DiceSpec{}, malformed(spec, "invalid die size")
	}

	if count <= 0 || sides <= 0 {
		return DiceSpec{}, malformed(spec, "dice count and size must be positive")
	}

	if count > MaxDiceCount || sides > MaxDieSides {
		return DiceSpec{}, malformed(spec, fmt.Sprintf("at most %dd%d", MaxDiceCount, MaxDieSides))
	}

	return DiceSpec{Count: count, Sides: sides}, nil
}

func malformed(spec, reason string) error {
	return errors.WrapWithCodef(ErrMalformedDiceSpec, errors.CodeInvalidArgument, "dice spec %q: %s", spec, reason).
		WithMeta("dice_spec", spec)
}

func (e *engine) RollDie(sides int) (int, error) {
	if sides <= 0 {
		return 0, errors.InvalidArgumentf("die must have at least one side: %d", sides)
	}

	roll, err := e.roller.Roll(sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", sides)
	}
	return roll, nil
}

func (e *engine) AbilityCheck(modifier, dc, proficiency int) (RollResult, error) {
	roll, err := e.RollDie(CheckDie)
	if err != nil {
		return RollResult{}, err
	}

	total := roll + modifier + proficiency
	return RollResult{
		Total:  total,
		Detail: checkDetail(roll, modifier, proficiency, dc, total >= dc),
	}, nil
}

func (e *engine) DamageRoll(spec string) (RollResult, error) {
	parsed, err := ParseDiceSpec(spec)
	if err != nil {
		return RollResult{}, err
	}

	rolls := make([]int, parsed.Count)
	total := 0
	for i := range rolls {
		roll, err := e.RollDie(parsed.Sides)
		if err != nil {
			return RollResult{}, err
		}
		rolls[i] = roll
		total += roll
	}

	return RollResult{
		Total:  total,
		Detail: damageDetail(rolls, spec),
	}, nil
}
