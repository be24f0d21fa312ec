package trial

import (
	"context"

	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/combat"
)

// QuestionDefense offers the optional Konoha defense
const QuestionDefense = "要加入上忍防御木叶吗？(y/N): "

// FinalsVictoryThreshold is the number of wins needed for promotion
const FinalsVictoryThreshold = 3

// Finals is the final tournament and the invasion that interrupts it
type Finals struct{}

// Name implements Phase
func (Finals) Name() string { return PhaseFinals }

// Run implements Phase
func (Finals) Run(ctx context.Context, r *Run) (bool, error) {
	r.Announce(ctx, phaseTitles[PhaseFinals])
	victories := 0

	won, err := finalsNeji(ctx, r)
	if err != nil {
		return false, err
	}
	if won {
		victories++
	}

	won, err = finalsTemari(ctx, r)
	if err != nil {
		return false, err
	}
	if won {
		victories++
	}

	r.Announce(ctx, "佐助 vs 我爱罗（崩坏导火索）")
	duel, err := r.Combat.Duel(ctx, &combat.DuelInput{
		Character: r.Character,
		Opponent:  "尾兽化的我爱罗",
		Flavor:    "你与佐助一同冲锋，雷遁与体术并用。",
		DC:        15,
		Damage:    "2d6",
	})
	if err != nil {
		return false, err
	}
	if duel.Victory {
		victories++
	}
	if r.Down() {
		r.Announce(ctx, "伤势过重，无法继续。")
		return false, nil
	}

	r.Say(ctx, "大蛇丸发动木叶崩溃计划，场馆陷入混乱！")
	evacuate, err := r.Roll(ctx, Check{
		Ability:     entities.AbilitySpeed,
		DC:          12,
		Label:       "撤离观众与护送雏田检定",
		Proficiency: true,
	})
	if err != nil {
		return false, err
	}
	if !evacuate.Meets(12) {
		r.Character.GainFatigue(1)
		r.Say(ctx, "混乱中你消耗过大，疲劳 +1。")
	}

	if r.Confirm(QuestionDefense) {
		guard, err := r.Roll(ctx, Check{
			Ability:     entities.AbilityTaijutsu,
			DC:          14,
			Label:       "街区防御检定",
			Proficiency: true,
			Reroll:      true,
		})
		if err != nil {
			return false, err
		}
		if guard.Meets(14) {
			victories++
			r.Character.GrantBonus()
			r.Say(ctx, "你与旗木卡卡西并肩守住一线。英雄灵感 +1。")
		} else {
			r.Character.GainFatigue(1)
			r.Say(ctx, "你被音忍伤到，疲劳 +1。")
		}
	}

	if victories >= FinalsVictoryThreshold {
		r.Announce(ctx, "你经历所有考验，获得中忍晋升与鸣人的认可！")
		return true, nil
	}
	r.Announce(ctx, "虽然表现出色，但还有成长空间。考试以经验为主。")
	return false, nil
}

// finalsNeji wins on either the clone tactic or the pep talk
func finalsNeji(ctx context.Context, r *Run) (bool, error) {
	r.Announce(ctx, "鸣人 vs 宁次（命运之战）")

	trick, err := r.Roll(ctx, Check{
		Ability:     entities.AbilityKnowledge,
		DC:          14,
		Label:       "影分身战术检定",
		Proficiency: true,
		Reroll:      true,
	})
	if err != nil {
		return false, err
	}
	speech, err := r.Roll(ctx, Check{
		Ability: entities.AbilityWill,
		DC:      13,
		Label:   "鼓舞鸣人的演讲检定",
	})
	if err != nil {
		return false, err
	}

	if trick.Meets(14) || speech.Meets(13) {
		r.Say(ctx, "鸣人在你的策略帮助下突破八卦掌，胜利！")
		r.Character.GrantBonus()
		return true, nil
	}
	r.Say(ctx, "宁次预判了你的招式，鸣人被压制。")
	return false, nil
}

func finalsTemari(ctx context.Context, r *Run) (bool, error) {
	r.Announce(ctx, "鹿丸 vs 手鞠（智斗风镰）")

	shadow, err := r.Roll(ctx, Check{
		Ability:     entities.AbilityPerception,
		DC:          14,
		Label:       "影子规划检定",
		Proficiency: true,
	})
	if err != nil {
		return false, err
	}
	if shadow.Meets(14) {
		r.Say(ctx, "你的烟雾弹与影缝配合让鹿丸轻松投降，保存体力。")
		return true, nil
	}
	r.Say(ctx, "影子长度不足，鹿丸主动认输。你记录了手鞠的风压数据。")
	return false, nil
}
