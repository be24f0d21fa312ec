package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chunin-dm/internal/entities"
)

type CharacterTestSuite struct {
	suite.Suite
	character *entities.Character
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	var err error
	s.character, err = entities.NewCharacter(&entities.NewCharacterInput{
		ID:         "char_1",
		Name:       "新晋忍者",
		Archetype:  entities.ArchetypeTaijutsu,
		Background: entities.BackgroundKonoha,
	})
	s.Require().NoError(err)
}

func (s *CharacterTestSuite) TestNewCharacter() {
	c := s.character

	s.Equal(16, c.Score(entities.AbilityTaijutsu))
	s.Equal(14, c.Score(entities.AbilitySpeed))
	s.Equal(15, c.Score(entities.AbilityPhysique), "13 from the array plus the Konoha bonus")
	s.Equal(13, c.Score(entities.AbilityPerception))
	s.Equal(10, c.Score(entities.AbilityWill))
	s.Equal(8, c.Score(entities.AbilityKnowledge))

	s.Equal(10, c.HP)
	s.Equal(35, c.Energy)
	s.Equal(entities.DefaultProficiency, c.Proficiency)
	s.True(c.Bonus, "Konoha characters start with inspiration")
	s.Equal(entities.EntityTypeCharacter, c.GetType())
	s.Equal("char_1", c.GetID())
}

func (s *CharacterTestSuite) TestNewCharacter_Validation() {
	_, err := entities.NewCharacter(&entities.NewCharacterInput{
		Name:       " ",
		Archetype:  "商人",
		Background: entities.BackgroundSuna,
	})
	s.Require().Error(err)

	_, err = entities.NewCharacter(nil)
	s.Require().Error(err)
}

func (s *CharacterTestSuite) TestModifierDefaultsUnsetScores() {
	c := &entities.Character{AbilityScores: entities.AbilityScores{entities.AbilityPhysique: 8}}

	s.Equal(-1, c.Modifier(entities.AbilityPhysique))
	s.Equal(0, c.Modifier(entities.AbilityWill))
}

func (s *CharacterTestSuite) TestAdjustHPFloorsAtZero() {
	s.character.HP = 2
	s.character.AdjustHP(-10)
	s.Equal(0, s.character.HP)
	s.False(s.character.Alive())

	s.character.AdjustHP(50)
	s.Equal(50, s.character.HP, "healing has no ceiling")
}

func (s *CharacterTestSuite) TestSpendEnergy() {
	s.character.Energy = 3

	s.False(s.character.SpendEnergy(5))
	s.Equal(3, s.character.Energy)

	s.True(s.character.SpendEnergy(3))
	s.Equal(0, s.character.Energy)

	s.True(s.character.SpendEnergy(0))
	s.Equal(0, s.character.Energy)
}

func (s *CharacterTestSuite) TestGainFatigueFloorsAtZero() {
	s.character.GainFatigue(2)
	s.Equal(2, s.character.Fatigue)

	s.character.GainFatigue(-7)
	s.Equal(0, s.character.Fatigue)
}

func (s *CharacterTestSuite) TestHalveEnergy() {
	s.character.Energy = 35
	s.character.HalveEnergy()
	s.Equal(17, s.character.Energy)
}

func (s *CharacterTestSuite) TestPartialRest() {
	c := s.character
	c.HP = 3
	c.Energy = 34
	c.Fatigue = 2

	c.Rest(false)

	s.Equal(5, c.HP, "physique 15 recovers 2")
	s.Equal(35, c.Energy, "energy is capped at max")
	s.Equal(1, c.Fatigue)
}

func (s *CharacterTestSuite) TestPartialRestRecoversAtLeastOne() {
	c := &entities.Character{
		AbilityScores: entities.AbilityScores{entities.AbilityPhysique: 8},
		HP:            1,
	}

	c.Rest(false)

	s.Equal(2, c.HP)
	s.Equal(1, c.Energy)
	s.Equal(0, c.Fatigue)
}

func (s *CharacterTestSuite) TestFullRest() {
	c := s.character
	c.HP = 1
	c.Energy = 0
	c.Fatigue = 0
	c.Bonus = false

	c.Rest(true)

	s.Equal(c.MaxHP(), c.HP)
	s.Equal(c.MaxEnergy(), c.Energy)
	s.True(c.Bonus, "Konoha regains inspiration on a full rest")
	s.Equal(0, c.Fatigue)
}

func (s *CharacterTestSuite) TestFullRestKeepsOverhealedHP() {
	c := s.character
	c.HP = 40

	c.Rest(true)

	s.Equal(40, c.HP)
}

func (s *CharacterTestSuite) TestFullRestWithoutBonusBackground() {
	c, err := entities.NewCharacter(&entities.NewCharacterInput{
		Name:       "砂",
		Archetype:  entities.ArchetypeNinjutsu,
		Background: entities.BackgroundSuna,
	})
	s.Require().NoError(err)
	s.False(c.Bonus)

	c.Rest(true)
	s.False(c.Bonus)
}

func (s *CharacterTestSuite) TestBonus() {
	c := s.character

	s.True(c.ConsumeBonus())
	s.False(c.HasBonus())
	s.False(c.ConsumeBonus())

	c.GrantBonus()
	s.True(c.HasBonus())
}

func (s *CharacterTestSuite) TestDistinctTokenKinds() {
	c := s.character

	c.AddToken("起始卷轴")
	c.AddToken("起始卷轴")
	s.Equal(1, c.DistinctTokenKinds())
	s.Len(c.Tokens, 2)

	c.AddToken("蛇影卷轴")
	s.Equal(2, c.DistinctTokenKinds())
}

func (s *CharacterTestSuite) TestSnapshotIsIndependent() {
	c := s.character
	c.AddToken("起始卷轴")

	snap := c.Snapshot()
	c.AddToken("夺来的卷轴")
	c.HP = 1

	s.Len(snap.Tokens, 1)
	s.Equal(10, snap.HP)
}
