// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/chunin-dm/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder starts from an all-10 sheet with proficiency 2, HP 10,
// energy 30 and no bonus.
func NewCharacterBuilder() *CharacterBuilder {
	scores := make(entities.AbilityScores, len(entities.AllAbilities))
	for _, a := range entities.AllAbilities {
		scores[a] = entities.DefaultAbilityScore
	}
	return &CharacterBuilder{
		character: &entities.Character{
			ID:            "char-test-1",
			Name:          "测试忍者",
			Archetype:     entities.ArchetypeTaijutsu,
			Background:    entities.BackgroundSuna,
			AbilityScores: scores,
			Proficiency:   entities.DefaultProficiency,
			HP:            10,
			Energy:        30,
		},
	}
}

// WithScore sets one ability score
func (b *CharacterBuilder) WithScore(a entities.Ability, score int) *CharacterBuilder {
	b.character.AbilityScores[a] = score
	return b
}

// WithProficiency sets the proficiency bonus
func (b *CharacterBuilder) WithProficiency(p int) *CharacterBuilder {
	b.character.Proficiency = p
	return b
}

// WithHP sets current HP
func (b *CharacterBuilder) WithHP(hp int) *CharacterBuilder {
	b.character.HP = hp
	return b
}

// WithEnergy sets the energy pool
func (b *CharacterBuilder) WithEnergy(energy int) *CharacterBuilder {
	b.character.Energy = energy
	return b
}

// WithFatigue sets fatigue
func (b *CharacterBuilder) WithFatigue(fatigue int) *CharacterBuilder {
	b.character.Fatigue = fatigue
	return b
}

// WithBonus sets the inspiration flag
func (b *CharacterBuilder) WithBonus(bonus bool) *CharacterBuilder {
	b.character.Bonus = bonus
	return b
}

// WithTokens sets collected tokens
func (b *CharacterBuilder) WithTokens(tokens ...string) *CharacterBuilder {
	b.character.Tokens = append([]string(nil), tokens...)
	return b
}

// WithBackground sets the background
func (b *CharacterBuilder) WithBackground(bg entities.Background) *CharacterBuilder {
	b.character.Background = bg
	return b
}

// Build returns the character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}
