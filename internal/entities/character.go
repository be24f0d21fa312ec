// Package entities holds the character sheet and its resource rules
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
)

const (
	// EntityTypeCharacter is the core.Entity type of a player character
	EntityTypeCharacter = "character"

	// DefaultProficiency is the flat bonus added to trained checks
	DefaultProficiency = 2

	baseHP = 8
)

// Character is the player's sheet. It is created once per run and mutated
// by every phase. HP, Energy and Fatigue never drop below zero.
type Character struct {
	ID            string
	Name          string
	Archetype     Archetype
	Background    Background
	AbilityScores AbilityScores
	Proficiency   int

	HP      int
	Energy  int
	Fatigue int
	Tokens  []string

	// Bonus is the single heroic inspiration charge.
	Bonus bool
}

var _ core.Entity = (*Character)(nil)

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// Score returns the raw score for an ability
func (c *Character) Score(a Ability) int {
	return c.AbilityScores.Get(a)
}

// Modifier returns the ability modifier for a
func (c *Character) Modifier(a Ability) int {
	return engine.AbilityModifier(c.Score(a))
}

// MaxHP is derived from physique on every call
func (c *Character) MaxHP() int {
	return baseHP + c.Modifier(AbilityPhysique)
}

// MaxEnergy is derived from physique and will on every call
func (c *Character) MaxEnergy() int {
	return c.Score(AbilityPhysique) + 2*c.Score(AbilityWill)
}

// AdjustHP applies delta; HP floors at 0 and has no ceiling.
func (c *Character) AdjustHP(delta int) {
	c.HP = max(0, c.HP+delta)
}

// SpendEnergy removes amount if the pool covers it. It reports false and
// leaves the pool untouched otherwise.
func (c *Character) SpendEnergy(amount int) bool {
	if c.Energy < amount {
		return false
	}
	c.Energy -= amount
	return true
}

// RestoreEnergy adds amount without a cap
func (c *Character) RestoreEnergy(amount int) {
	c.Energy = max(0, c.Energy+amount)
}

// HalveEnergy halves the pool, rounding down
func (c *Character) HalveEnergy() {
	c.Energy /= 2
}

// GainFatigue adds amount; negative amounts recover, floored at 0.
func (c *Character) GainFatigue(amount int) {
	c.Fatigue = max(0, c.Fatigue+amount)
}

// Rest recovers resources and sheds one level of fatigue.
//
// A full rest restores HP and energy to their maxima (HP already above max is
// kept) and re-grants the bonus when the background allows it. A partial
// rest recovers max(1, physique modifier) HP and the same amount of energy,
// capped at MaxEnergy.
func (c *Character) Rest(full bool) {
	if full {
		c.HP = max(c.HP, c.MaxHP())
		c.Energy = c.MaxEnergy()
		if c.Background.BonusOnFullRest() {
			c.Bonus = true
		}
	} else {
		recovered := max(1, c.Modifier(AbilityPhysique))
		c.HP += recovered
		c.Energy = min(c.Energy+recovered, c.MaxEnergy())
	}
	c.GainFatigue(-1)
}

// Alive reports whether the character can keep going
func (c *Character) Alive() bool {
	return c.HP > 0
}

// GrantBonus sets the heroic inspiration charge
func (c *Character) GrantBonus() {
	c.Bonus = true
}

// HasBonus reports whether a reroll is available
func (c *Character) HasBonus() bool {
	return c.Bonus
}

// ConsumeBonus spends the charge. It reports false if there was none.
func (c *Character) ConsumeBonus() bool {
	if !c.Bonus {
		return false
	}
	c.Bonus = false
	return true
}

// AddToken records a collected token
func (c *Character) AddToken(kind string) {
	c.Tokens = append(c.Tokens, kind)
}

// DistinctTokenKinds counts token kinds, ignoring duplicates
func (c *Character) DistinctTokenKinds() int {
	seen := make(map[string]struct{}, len(c.Tokens))
	for _, t := range c.Tokens {
		seen[t] = struct{}{}
	}
	return len(seen)
}

// Snapshot is a copy of the mutable resources, frozen into a run report
type Snapshot struct {
	HP      int
	Energy  int
	Fatigue int
	Bonus   bool
	Tokens  []string
}

// Snapshot copies the current resources
func (c *Character) Snapshot() Snapshot {
	tokens := make([]string, len(c.Tokens))
	copy(tokens, c.Tokens)
	return Snapshot{
		HP:      c.HP,
		Energy:  c.Energy,
		Fatigue: c.Fatigue,
		Bonus:   c.Bonus,
		Tokens:  tokens,
	}
}
