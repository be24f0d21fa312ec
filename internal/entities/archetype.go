package entities

import (
	"github.com/KirkDiggler/chunin-dm/internal/errors"
)

// Archetype is the character's specialty. It decides which abilities get
// the highest values of the standard array.
type Archetype string

// Archetypes
const (
	ArchetypeTaijutsu Archetype = "体术专家"
	ArchetypeNinjutsu Archetype = "忍术专家"
	ArchetypeGenjutsu Archetype = "幻术/医疗专家"
)

// Background is the character's village of origin
type Background string

// Backgrounds
const (
	BackgroundKonoha Background = "木叶村天赋"
	BackgroundSuna   Background = "砂隐之村训练"
	BackgroundOto    Background = "音忍村研究"
)

// StandardArray is assigned to abilities in archetype priority order
var StandardArray = []int{16, 14, 13, 12, 10, 8}

var archetypePriorities = map[Archetype][]Ability{
	ArchetypeTaijutsu: {AbilityTaijutsu, AbilitySpeed, AbilityPhysique, AbilityPerception, AbilityWill, AbilityKnowledge},
	ArchetypeNinjutsu: {AbilityKnowledge, AbilityWill, AbilityPhysique, AbilitySpeed, AbilityPerception, AbilityTaijutsu},
	ArchetypeGenjutsu: {AbilityWill, AbilityPerception, AbilityKnowledge, AbilityPhysique, AbilitySpeed, AbilityTaijutsu},
}

type backgroundTraits struct {
	bonuses         AbilityScores
	bonusOnFullRest bool
	startsWithBonus bool
}

var backgrounds = map[Background]backgroundTraits{
	BackgroundKonoha: {
		bonuses:         AbilityScores{AbilityPhysique: 2, AbilityPerception: 1},
		bonusOnFullRest: true,
		startsWithBonus: true,
	},
	BackgroundSuna: {
		bonuses: AbilityScores{AbilityTaijutsu: 2, AbilityKnowledge: 1},
	},
	BackgroundOto: {
		bonuses: AbilityScores{AbilityKnowledge: 2, AbilityWill: 1},
	},
}

// IsValid reports whether a is a known archetype
func (a Archetype) IsValid() bool {
	_, ok := archetypePriorities[a]
	return ok
}

// IsValid reports whether b is a known background
func (b Background) IsValid() bool {
	_, ok := backgrounds[b]
	return ok
}

// BonusOnFullRest reports whether a full rest re-grants the bonus
func (b Background) BonusOnFullRest() bool {
	return backgrounds[b].bonusOnFullRest
}

// StartsWithBonus reports whether a new character begins with the bonus
func (b Background) StartsWithBonus() bool {
	return backgrounds[b].startsWithBonus
}

// BuildAbilityScores assigns the standard array in archetype order and then
// applies the background bonuses once.
func BuildAbilityScores(archetype Archetype, background Background) (AbilityScores, error) {
	priorities, ok := archetypePriorities[archetype]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown archetype: %s", archetype)
	}
	traits, ok := backgrounds[background]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown background: %s", background)
	}

	scores := make(AbilityScores, len(AllAbilities))
	for _, a := range AllAbilities {
		scores[a] = DefaultAbilityScore
	}
	for i, a := range priorities {
		scores[a] = StandardArray[i]
	}
	for a, bonus := range traits.bonuses {
		scores[a] += bonus
	}

	return scores, nil
}

// NewCharacterInput describes a character to create
type NewCharacterInput struct {
	ID         string
	Name       string
	Archetype  Archetype
	Background Background
}

// NewCharacter builds a character at full HP and energy
func NewCharacter(input *NewCharacterInput) (*Character, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if !input.Archetype.IsValid() {
		vb.InvalidField("archetype", string(input.Archetype))
	}
	if !input.Background.IsValid() {
		vb.InvalidField("background", string(input.Background))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	scores, err := BuildAbilityScores(input.Archetype, input.Background)
	if err != nil {
		return nil, err
	}

	c := &Character{
		ID:            input.ID,
		Name:          input.Name,
		Archetype:     input.Archetype,
		Background:    input.Background,
		AbilityScores: scores,
		Proficiency:   DefaultProficiency,
		Bonus:         input.Background.StartsWithBonus(),
	}
	c.HP = c.MaxHP()
	c.Energy = c.MaxEnergy()

	return c, nil
}
