// Package trial runs the chunin exam as a fixed sequence of phases:
// Exam, Forest, Preliminaries, Finals. The run stops at the first phase
// that fails or as soon as the character is down.
package trial

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
	"github.com/KirkDiggler/chunin-dm/internal/narration"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/encounter"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/reroll"
	"github.com/KirkDiggler/chunin-dm/internal/pkg/clock"
	"github.com/KirkDiggler/chunin-dm/internal/pkg/idgen"
	"github.com/KirkDiggler/chunin-dm/internal/prompt"
)

// Phase names
const (
	PhaseExam          = "exam"
	PhaseForest        = "forest"
	PhasePreliminaries = "preliminaries"
	PhaseFinals        = "finals"
)

var phaseTitles = map[string]string{
	PhaseExam:          "第一阶段：笔试与心理考验",
	PhaseForest:        "第二阶段：死亡森林",
	PhasePreliminaries: "塔内预赛",
	PhaseFinals:        "决赛与木叶崩溃事件",
}

// Title returns the display title of a phase
func Title(phase string) string {
	if t, ok := phaseTitles[phase]; ok {
		return t
	}
	return phase
}

// Phase is one pass/fail gate of the exam. Side effects go to the run's
// character and journal.
type Phase interface {
	Name() string
	Run(ctx context.Context, r *Run) (bool, error)
}

// DefaultPhases returns the exam in order
func DefaultPhases() []Phase {
	return []Phase{Exam{}, Forest{}, Preliminaries{}, Finals{}}
}

// Source exposes the seed and draw count of the randomness behind a run
type Source interface {
	Seed() int64
	Draws() int64
}

// Config holds the dependencies for the trial machine
type Config struct {
	Engine      engine.Engine
	Prompt      prompt.Prompt
	Reroll      reroll.Service
	Encounters  encounter.Service
	Combat      combat.Service
	Journal     *narration.Journal
	Source      Source
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// Phases defaults to DefaultPhases.
	Phases []Phase

	// Character skips interactive creation when set.
	Character *entities.Character
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Prompt == nil {
		vb.RequiredField("Prompt")
	}
	if c.Reroll == nil {
		vb.RequiredField("Reroll")
	}
	if c.Encounters == nil {
		vb.RequiredField("Encounters")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.Journal == nil {
		vb.RequiredField("Journal")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Machine runs phases in order. A machine runs once.
type Machine struct {
	cfg    Config
	phases []Phase
	ran    bool
}

// NewMachine creates a trial machine with the provided dependencies
func NewMachine(cfg *Config) (*Machine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	phases := cfg.Phases
	if len(phases) == 0 {
		phases = DefaultPhases()
	}

	return &Machine{cfg: *cfg, phases: phases}, nil
}

// Run plays the exam to the end or to the first failure. Story failure is
// reported in the Report; an error means the run itself broke.
func (m *Machine) Run(ctx context.Context) (*Report, error) {
	if m.ran {
		return nil, errors.FailedPrecondition("machine has already run")
	}
	m.ran = true

	started := m.cfg.Clock.Now()
	runID := m.cfg.IDGenerator.Generate()
	journal := m.cfg.Journal

	journal.Announce(ctx, "欢迎来到火影忍者：中忍考试篇 (文字版)")

	character := m.cfg.Character
	if character == nil {
		var err error
		character, err = CreateCharacter(ctx, &CreateCharacterInput{
			Prompt:      m.cfg.Prompt,
			IDGenerator: m.cfg.IDGenerator,
			Journal:     journal,
		})
		if err != nil {
			return nil, err
		}
	}
	journal.SetSource(character)

	run := &Run{
		ID:         runID,
		Character:  character,
		Engine:     m.cfg.Engine,
		Prompt:     m.cfg.Prompt,
		Reroll:     m.cfg.Reroll,
		Encounters: m.cfg.Encounters,
		Combat:     m.cfg.Combat,
		Journal:    journal,
	}

	slog.Info("Run started",
		"run_id", runID,
		"seed", m.cfg.Source.Seed(),
		"character", character.Name,
		"archetype", character.Archetype,
		"background", character.Background)

	report := &Report{
		RunID:     runID,
		Seed:      m.cfg.Source.Seed(),
		Character: character,
		StartedAt: started,
	}

	for _, phase := range m.phases {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "run cancelled")
		}

		name := phase.Name()
		journal.SetPhase(name)
		report.Reached = name
		slog.Info("Phase started", "run_id", runID, "phase", name)

		passed, err := phase.Run(ctx, run)
		if err != nil {
			return nil, errors.Wrapf(err, "phase %s failed", name)
		}

		slog.Info("Phase finished",
			"run_id", runID,
			"phase", name,
			"passed", passed,
			"hp", character.HP,
			"energy", character.Energy,
			"fatigue", character.Fatigue)

		if !passed || !character.Alive() {
			report.FailedAt = name
			break
		}
		report.Cleared = append(report.Cleared, name)
	}

	report.Passed = report.FailedAt == ""
	report.Final = character.Snapshot()
	report.Events = journal.Events()
	report.Draws = m.cfg.Source.Draws()
	report.Elapsed = clock.Since(m.cfg.Clock, started)

	slog.Info("Run finished",
		"run_id", runID,
		"passed", report.Passed,
		"failed_at", report.FailedAt,
		"draws", report.Draws)

	return report, nil
}
