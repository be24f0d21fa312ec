// Package prompt is the text-in/text-out boundary between a run and the
// player. A run asks questions through Prompt and only ever looks at the
// normalized answer, so consoles, scripts and test doubles are
// interchangeable.
package prompt

//go:generate mockgen -destination=mock/mock_prompt.go -package=promptmock github.com/KirkDiggler/chunin-dm/internal/prompt Prompt

import (
	"strings"
	"unicode/utf8"
)

// BonusMarker appears in every question that offers to spend the bonus.
const BonusMarker = "英雄灵感"

// Prompt asks the player a question and returns one line of text.
// Calls are synchronous and have no timeout.
type Prompt interface {
	Ask(question string) string
}

// Func adapts a plain function to Prompt
type Func func(question string) string

// Ask implements Prompt
func (f Func) Ask(question string) string {
	return f(question)
}

// Normalize trims and lower-cases an answer
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// IsYes reports whether the answer is exactly "y" after normalizing.
// Anything else, including "yes", is a no.
func IsYes(answer string) bool {
	return Normalize(answer) == "y"
}

// Choice returns the option keyed by the first rune of the normalized
// answer, or def when the answer is empty or not one of the options.
func Choice[T any](answer string, options map[string]T, def T) T {
	normalized := Normalize(answer)
	if normalized == "" {
		return def
	}
	r, _ := utf8.DecodeRuneInString(normalized)
	if v, ok := options[string(r)]; ok {
		return v
	}
	return def
}

// OrDefault returns the trimmed answer, or def when it is blank
func OrDefault(answer, def string) string {
	if trimmed := strings.TrimSpace(answer); trimmed != "" {
		return trimmed
	}
	return def
}
