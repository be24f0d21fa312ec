package trial

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
	"github.com/KirkDiggler/chunin-dm/internal/narration"
	"github.com/KirkDiggler/chunin-dm/internal/pkg/idgen"
	"github.com/KirkDiggler/chunin-dm/internal/prompt"
)

// DefaultName is used when the player leaves the name blank
const DefaultName = "新晋忍者"

// Creation questions
const (
	QuestionName       = "角色名（默认：新晋忍者）: "
	QuestionArchetype  = "职业选择 体术专家(t) / 忍术专家(n) / 幻术/医疗专家(g): "
	QuestionBackground = "背景 木叶(k) / 砂隐(s) / 音忍(o): "
)

var archetypeChoices = map[string]entities.Archetype{
	"t": entities.ArchetypeTaijutsu,
	"n": entities.ArchetypeNinjutsu,
	"g": entities.ArchetypeGenjutsu,
}

var backgroundChoices = map[string]entities.Background{
	"k": entities.BackgroundKonoha,
	"s": entities.BackgroundSuna,
	"o": entities.BackgroundOto,
}

// CreateCharacterInput holds what character creation needs
type CreateCharacterInput struct {
	Prompt      prompt.Prompt
	IDGenerator idgen.Generator
	Journal     *narration.Journal
}

// CreateCharacter asks for a name, archetype and background. Blank or
// unknown answers fall back to the defaults.
func CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*entities.Character, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.Prompt == nil {
		vb.RequiredField("Prompt")
	}
	if input.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if input.Journal == nil {
		vb.RequiredField("Journal")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	name := prompt.OrDefault(input.Prompt.Ask(QuestionName), DefaultName)
	archetype := prompt.Choice(input.Prompt.Ask(QuestionArchetype), archetypeChoices, entities.ArchetypeTaijutsu)
	background := prompt.Choice(input.Prompt.Ask(QuestionBackground), backgroundChoices, entities.BackgroundKonoha)

	c, err := entities.NewCharacter(&entities.NewCharacterInput{
		ID:         input.IDGenerator.Generate(),
		Name:       name,
		Archetype:  archetype,
		Background: background,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	input.Journal.Linef(ctx, "%s，%s出身的%s，能力值：%s", c.Name, c.Background, c.Archetype, c.AbilityScores)
	input.Journal.State(ctx, fmt.Sprintf("生命值 %d，查克拉 %d，英雄灵感 %t", c.HP, c.Energy, c.Bonus))

	return c, nil
}
