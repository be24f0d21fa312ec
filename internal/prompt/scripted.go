package prompt

import (
	"fmt"
	"io"
	"strings"
)

// DemoAnswers create the default character: the default name, taijutsu
// specialist, Konoha background.
var DemoAnswers = []string{"新晋忍者", "t", "k"}

// ScriptedConfig configures a scripted prompt
type ScriptedConfig struct {
	// Answers are returned in order before any fallback applies.
	Answers []string

	// Fallback answers any question once Answers runs out.
	Fallback *string

	// BonusFallback answers bonus questions once Answers runs out. It wins
	// over Fallback.
	BonusFallback *string

	// Echo, when set, receives each question with the answer it got.
	Echo io.Writer
}

// Scripted answers from a queue and then from fallbacks. With nothing left
// to answer it returns "", which every caller treats as the default branch.
type Scripted struct {
	answers       []string
	fallback      *string
	bonusFallback *string
	echo          io.Writer
	asked         []string
}

// NewScripted creates a scripted prompt
func NewScripted(cfg *ScriptedConfig) *Scripted {
	if cfg == nil {
		cfg = &ScriptedConfig{}
	}
	return &Scripted{
		answers:       append([]string(nil), cfg.Answers...),
		fallback:      cfg.Fallback,
		bonusFallback: cfg.BonusFallback,
		echo:          cfg.Echo,
	}
}

// Demo returns the prompt used for unattended runs: it creates the default
// character and then answers "y" to everything.
func Demo(echo io.Writer) *Scripted {
	yes := "y"
	return NewScripted(&ScriptedConfig{
		Answers:       DemoAnswers,
		Fallback:      &yes,
		BonusFallback: &yes,
		Echo:          echo,
	})
}

// Ask implements Prompt
func (s *Scripted) Ask(question string) string {
	s.asked = append(s.asked, question)

	if len(s.answers) > 0 {
		answer := s.answers[0]
		s.answers = s.answers[1:]
		s.print(question, answer)
		return answer
	}
	if s.bonusFallback != nil && strings.Contains(question, BonusMarker) {
		s.print(question, *s.bonusFallback)
		return *s.bonusFallback
	}
	if s.fallback != nil {
		s.print(question, *s.fallback)
		return *s.fallback
	}
	s.print(question, "")
	return ""
}

// Asked returns every question asked so far
func (s *Scripted) Asked() []string {
	return append([]string(nil), s.asked...)
}

// Pending returns how many queued answers are left
func (s *Scripted) Pending() int {
	return len(s.answers)
}

func (s *Scripted) print(question, answer string) {
	if s.echo == nil {
		return
	}
	_, _ = fmt.Fprintf(s.echo, "%s%s\n", question, answer)
}
