package trial

import (
	"context"

	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/encounter"
	"github.com/KirkDiggler/chunin-dm/internal/prompt"
)

// Forest prompts
const (
	QuestionSetPiece = "要主动追击卷轴 (p) 还是先潜伏侦察 (s)？ "
	QuestionDay      = "行动：探索 (e) / 埋伏 (a) / 休息 (r): "
)

const (
	// StartingToken is handed out at the forest gate
	StartingToken = "起始卷轴"

	// ForestDays is the length of the day loop
	ForestDays = 3

	// ForestFatigueLimit ends the run after the Orochimaru trial
	ForestFatigueLimit = 5

	// MinTokenKinds is the number of distinct tokens needed to reach the tower
	MinTokenKinds = 2

	forestGambleDC = 15
)

// Forest is the survival phase. The character needs two kinds of token to
// reach the tower, or a hard will check to talk their way in.
type Forest struct{}

// Name implements Phase
func (Forest) Name() string { return PhaseForest }

// Run implements Phase
func (Forest) Run(ctx context.Context, r *Run) (bool, error) {
	c := r.Character
	r.Announce(ctx, phaseTitles[PhaseForest])
	r.Say(ctx, "安可御手洗抛出血腥警告，倒计时开始。")
	c.AddToken(StartingToken)

	if prompt.Choice(r.Prompt.Ask(QuestionSetPiece), map[string]bool{"p": true}, false) {
		if _, err := r.Encounters.RunScene(ctx, &encounter.RunSceneInput{
			Character:   c,
			Scene:       encounter.SceneTeamDosu,
			AllowReroll: true,
		}); err != nil {
			return false, err
		}
		if r.Down() {
			r.Announce(ctx, "重伤倒地，考试失败。")
			return false, nil
		}
	} else {
		r.Say(ctx, "你在树梢潜伏，等待最佳时机。")
	}

	r.Say(ctx, "【设定事件】大蛇丸的袭击逼近……")
	if _, err := r.Encounters.RunScene(ctx, &encounter.RunSceneInput{
		Character:   c,
		Scene:       encounter.SceneOrochimaru,
		AllowReroll: true,
	}); err != nil {
		return false, err
	}
	if r.Down() || c.Fatigue >= ForestFatigueLimit {
		r.Announce(ctx, "你倒在蛇压下，无缘后续考试。")
		return false, nil
	}

	for day := 1; day <= ForestDays; day++ {
		r.State(ctx, "第 %d 天 —— 生命 %d，查克拉 %d，疲劳 %d", day, c.HP, c.Energy, c.Fatigue)

		if prompt.Normalize(r.Prompt.Ask(QuestionDay)) == "r" {
			c.Rest(false)
			r.Say(ctx, "你封印伤口，恢复少量生命和查克拉，疲劳 -1。")
		} else if _, err := r.Encounters.Resolve(ctx, &encounter.ResolveInput{
			Character: c,
			Table:     encounter.TableForestPatrol,
		}); err != nil {
			return false, err
		}

		if r.Down() {
			r.Announce(ctx, "重伤倒地，考试失败。")
			return false, nil
		}
	}

	if c.DistinctTokenKinds() >= MinTokenKinds {
		r.Announce(ctx, "你成功收集到天与地的卷轴，抵达终点塔！")
		return true, nil
	}

	r.Announce(ctx, "卷轴不足，是否赌上意志展示忍道？需要 DC 15 的意志检定。")
	gamble, err := r.Roll(ctx, Check{
		Ability:     entities.AbilityWill,
		DC:          forestGambleDC,
		Label:       "忍道检定",
		Proficiency: true,
		Reroll:      true,
	})
	if err != nil {
		return false, err
	}
	if gamble.Meets(forestGambleDC) {
		c.GainFatigue(1)
		r.Announce(ctx, "你的宣言打动了考官，疲劳 1 级但准许进入塔内。")
		return true, nil
	}

	r.Announce(ctx, "卷轴不足，无法进入下一阶段。")
	return false, nil
}
