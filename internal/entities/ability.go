package entities

import (
	"fmt"
	"strings"
)

// Ability names one of the six traits a character is scored on. The value is
// the display name used in narration and encounter tables.
type Ability string

// Abilities
const (
	AbilityTaijutsu   Ability = "体术"
	AbilitySpeed      Ability = "速度"
	AbilityPhysique   Ability = "体魄"
	AbilityKnowledge  Ability = "知识"
	AbilityPerception Ability = "感知"
	AbilityWill       Ability = "意志"
)

// DefaultAbilityScore is read for any ability without a score
const DefaultAbilityScore = 10

// AllAbilities lists the abilities in their canonical order
var AllAbilities = []Ability{
	AbilityTaijutsu,
	AbilitySpeed,
	AbilityPhysique,
	AbilityKnowledge,
	AbilityPerception,
	AbilityWill,
}

// IsValid reports whether a is one of the six known abilities
func (a Ability) IsValid() bool {
	for _, known := range AllAbilities {
		if a == known {
			return true
		}
	}
	return false
}

// String returns the display name
func (a Ability) String() string {
	return string(a)
}

// AbilityScores maps abilities to their scores
type AbilityScores map[Ability]int

// Get returns the score for a, or DefaultAbilityScore when unset
func (s AbilityScores) Get(a Ability) int {
	if score, ok := s[a]; ok {
		return score
	}
	return DefaultAbilityScore
}

// Clone returns an independent copy
func (s AbilityScores) Clone() AbilityScores {
	out := make(AbilityScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// String lists the scores in canonical order, e.g. "体术 16，速度 14，..."
func (s AbilityScores) String() string {
	parts := make([]string, len(AllAbilities))
	for i, a := range AllAbilities {
		parts[i] = fmt.Sprintf("%s %d", a, s.Get(a))
	}
	return strings.Join(parts, "，")
}
