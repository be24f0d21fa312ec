package engine

import (
	"fmt"
	"strings"
)

// RollResult is the immutable outcome of a roll. Detail is a trace of the
// roll's components and is part of the contract: narration and tests both
// read it.
type RollResult struct {
	Total  int
	Detail string
}

// String renders the result as "total (detail)"
func (r RollResult) String() string {
	return fmt.Sprintf("%d (%s)", r.Total, r.Detail)
}

// Meets reports whether the total reaches dc
func (r RollResult) Meets(dc int) bool {
	return r.Total >= dc
}

// DiceSpec is a parsed NdM damage spec
type DiceSpec struct {
	Count int
	Sides int
}

// String returns the canonical lower-case notation
func (d DiceSpec) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Sides)
}

func checkDetail(roll, modifier, proficiency, dc int, success bool) string {
	outcome := "fail"
	if success {
		outcome = "success"
	}
	return fmt.Sprintf("d20:%d+mod:%d+prof:%d -> %s vs DC %d", roll, modifier, proficiency, outcome, dc)
}

func damageDetail(rolls []int, spec string) string {
	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = fmt.Sprintf("%d", r)
	}
	return fmt.Sprintf("%s (%s)", strings.Join(parts, "+"), spec)
}
