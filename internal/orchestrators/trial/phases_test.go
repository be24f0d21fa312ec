package trial_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/narration"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/encounter"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/reroll"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/trial"
	"github.com/KirkDiggler/chunin-dm/internal/prompt"
	"github.com/KirkDiggler/chunin-dm/internal/testutils"
	"github.com/KirkDiggler/chunin-dm/internal/testutils/builders"
)

type PhaseTestSuite struct {
	suite.Suite
	roller *testutils.ScriptedRoller
	prompt *prompt.Scripted
}

func TestPhaseTestSuite(t *testing.T) {
	suite.Run(t, new(PhaseTestSuite))
}

func (s *PhaseTestSuite) SetupTest() {
	s.roller = testutils.NewScriptedRoller()
}

// newRun wires a run around the scripted roller and the given answers
func (s *PhaseTestSuite) newRun(c *entities.Character, answers ...string) *trial.Run {
	s.prompt = prompt.NewScripted(&prompt.ScriptedConfig{Answers: answers})

	eng, err := engine.New(&engine.Config{Roller: s.roller})
	s.Require().NoError(err)

	journal, err := narration.NewJournal(&narration.Config{Bus: events.NewBus()})
	s.Require().NoError(err)

	rr, err := reroll.NewService(&reroll.Config{Prompt: s.prompt, Journal: journal})
	s.Require().NoError(err)

	tables, err := encounter.DefaultTables()
	s.Require().NoError(err)

	enc, err := encounter.NewOrchestrator(&encounter.Config{Engine: eng, Reroll: rr, Journal: journal, Tables: tables})
	s.Require().NoError(err)

	cmb, err := combat.NewOrchestrator(&combat.Config{Engine: eng, Reroll: rr, Journal: journal})
	s.Require().NoError(err)

	return &trial.Run{
		ID:         "run-test",
		Character:  c,
		Engine:     eng,
		Prompt:     s.prompt,
		Reroll:     rr,
		Encounters: enc,
		Combat:     cmb,
		Journal:    journal,
	}
}

func (s *PhaseTestSuite) play(phase trial.Phase, r *trial.Run) bool {
	passed, err := phase.Run(context.Background(), r)
	s.Require().NoError(err)
	s.Equal(0, s.roller.Remaining(), "unused faces")
	s.Equal(0, s.prompt.Pending(), "unused answers")
	return passed
}

func (s *PhaseTestSuite) TestExam_KnowledgeAlonePasses() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(13, 1)

	s.True(s.play(trial.Exam{}, s.newRun(c, "n", "n")))
	s.Equal(1, c.Fatigue)
}

func (s *PhaseTestSuite) TestExam_CaughtCheating() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(1, 1, 1)

	s.False(s.play(trial.Exam{}, s.newRun(c, "y", "n")))
	s.Equal(15, c.Energy)
	s.Equal(2, c.Fatigue)
}

func (s *PhaseTestSuite) TestExam_DeclarationPasses() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(1, 1)

	s.True(s.play(trial.Exam{}, s.newRun(c, "n", "y")))
	s.True(c.HasBonus())
}

func (s *PhaseTestSuite) TestExam_RerollSavesKnowledge() {
	c := builders.NewCharacterBuilder().WithBonus(true).Build()
	s.roller.Queue(1, 13, 1)

	s.True(s.play(trial.Exam{}, s.newRun(c, "y", "n", "n")))
	s.False(c.HasBonus())
	s.Equal(reroll.Question, s.prompt.Asked()[0])
}

func (s *PhaseTestSuite) TestForest_TwoTokenKindsAdvance() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(20)

	s.True(s.play(trial.Forest{}, s.newRun(c, "s", "r", "r", "r")))
	s.Equal([]string{trial.StartingToken, "蛇影卷轴"}, c.Tokens)
	s.True(c.HasBonus())
}

func (s *PhaseTestSuite) TestForest_FallbackCheckPasses() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(1, 1, 1, 1, 13)

	s.True(s.play(trial.Forest{}, s.newRun(c, "s", "r", "r", "r")))
	s.Equal(1, c.DistinctTokenKinds())
	s.Equal(11, c.HP)
	s.Equal(1, c.Fatigue)
}

func (s *PhaseTestSuite) TestForest_FallbackCheckFails() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(1, 1, 1, 1, 12)

	s.False(s.play(trial.Forest{}, s.newRun(c, "s", "r", "r", "r")))
	s.Equal(0, c.Fatigue)
}

func (s *PhaseTestSuite) TestForest_DuplicateTokensDoNotCount() {
	c := builders.NewCharacterBuilder().WithTokens(trial.StartingToken).Build()
	s.roller.Queue(1, 1, 1, 1, 1)

	s.False(s.play(trial.Forest{}, s.newRun(c, "s", "r", "r", "r")))
	s.Len(c.Tokens, 2)
	s.Equal(1, c.DistinctTokenKinds())
}

func (s *PhaseTestSuite) TestForest_OrochimaruExhaustionHalts() {
	c := builders.NewCharacterBuilder().WithFatigue(3).Build()
	s.roller.Queue(1, 1, 1, 1)

	s.False(s.play(trial.Forest{}, s.newRun(c, "s")))
	s.Equal(trial.ForestFatigueLimit, c.Fatigue)
}

func (s *PhaseTestSuite) TestForest_PatrolKnockoutHalts() {
	c := builders.NewCharacterBuilder().WithHP(1).Build()
	s.roller.Queue(20, 3, 2, 6)

	s.False(s.play(trial.Forest{}, s.newRun(c, "s", "e")))
	s.Equal(0, c.HP)
	s.Equal(1, c.Fatigue)
}

func (s *PhaseTestSuite) TestForest_PursuitKnockoutHalts() {
	c := builders.NewCharacterBuilder().WithHP(1).Build()
	// taijutsu check, sonic damage, retreat check, then an Orochimaru face
	s.roller.Queue(1, 5, 20, 20)
	r := s.newRun(c, "p")

	passed, err := trial.Forest{}.Run(context.Background(), r)
	s.Require().NoError(err)

	s.False(passed)
	s.Equal(0, c.HP)
	s.Equal(1, s.roller.Remaining(), "orochimaru face must stay unused")
	s.Equal([]string{trial.StartingToken}, c.Tokens)
	s.False(c.HasBonus())
	s.Equal([]string{trial.QuestionSetPiece}, s.prompt.Asked())
}

func (s *PhaseTestSuite) TestForest_PursuitOffersRerolls() {
	c := builders.NewCharacterBuilder().WithBonus(true).Build()
	s.roller.Queue(20, 20)

	s.True(s.play(trial.Forest{}, s.newRun(c, "p", "n", "n", "r", "r", "r")))
	s.Equal(3, c.DistinctTokenKinds())
	s.True(c.HasBonus())
	s.Equal([]string{
		trial.QuestionSetPiece,
		reroll.Question,
		reroll.Question,
		trial.QuestionDay,
		trial.QuestionDay,
		trial.QuestionDay,
	}, s.prompt.Asked())
}

func (s *PhaseTestSuite) TestPreliminaries_FiveSupportWins() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(11, 10, 9, 13, 10, 1, 1, 1, 1)

	s.True(s.play(trial.Preliminaries{}, s.newRun(c, "n")))
}

func (s *PhaseTestSuite) TestPreliminaries_FourWinsFall() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(11, 10, 9, 13, 1, 1, 1, 1, 1)

	s.False(s.play(trial.Preliminaries{}, s.newRun(c, "n")))
}

func (s *PhaseTestSuite) TestPreliminaries_SoloDuelCounts() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(11, 12, 11, 10, 9, 13, 1, 1, 1, 1, 1)

	s.True(s.play(trial.Preliminaries{}, s.newRun(c, "y")))
}

func (s *PhaseTestSuite) TestPreliminaries_KnockedOutInDuel() {
	c := builders.NewCharacterBuilder().WithHP(5).Build()
	s.roller.Queue(1, 1, 8)

	s.False(s.play(trial.Preliminaries{}, s.newRun(c, "y")))
	s.Equal(0, c.HP)
}

func (s *PhaseTestSuite) TestFinals_ThreeWinsPromote() {
	c := builders.NewCharacterBuilder().Build()
	s.roller.Queue(12, 1, 12, 13, 14, 10)

	s.True(s.play(trial.Finals{}, s.newRun(c, "n", "n")))
	s.Equal(0, c.Fatigue)
	s.True(c.HasBonus())
}

func (s *PhaseTestSuite) TestFinals_KnockedOutByGaara() {
	c := builders.NewCharacterBuilder().WithHP(3).Build()
	s.roller.Queue(1, 1, 1, 1, 1, 2, 2)

	s.False(s.play(trial.Finals{}, s.newRun(c)))
	s.Equal(0, c.HP)
}

func (s *PhaseTestSuite) TestFinals_KonohaDefense() {
	c := builders.NewCharacterBuilder().Build()
	// neji, temari and gaara lost, evacuation fails, defense holds
	s.roller.Queue(1, 1, 1, 1, 1, 1, 1, 1, 12)

	s.False(s.play(trial.Finals{}, s.newRun(c, "y")))
	s.Equal(8, c.HP)
	s.Equal(1, c.Fatigue)
	s.True(c.HasBonus())
}
