package trial

import (
	"context"

	"github.com/KirkDiggler/chunin-dm/internal/entities"
)

// Exam prompts
const (
	QuestionCheat       = "要尝试忍者式作弊吗？(y/N): "
	QuestionDeclaration = "是否像鸣人一样站起来宣誓不畏失败？(y/N): "
)

const (
	examKnowledgeDC = 15
	examStealthDC   = 13
	examWillDC      = 14
)

// Exam is the written test. Any one of a correct paper, a clean cheat, a
// steady will or the declaration passes it.
type Exam struct{}

// Name implements Phase
func (Exam) Name() string { return PhaseExam }

// Run implements Phase
func (Exam) Run(ctx context.Context, r *Run) (bool, error) {
	r.Announce(ctx, phaseTitles[PhaseExam])

	successes, err := examCheat(ctx, r)
	if err != nil {
		return false, err
	}

	steady, err := examMindGame(ctx, r)
	if err != nil {
		return false, err
	}

	if successes >= 1 || steady {
		r.Announce(ctx, "你们通过了笔试，进入死亡森林阶段。")
		return true, nil
	}
	r.Announce(ctx, "队伍被淘汰，冒险提前结束。")
	return false, nil
}

func examCheat(ctx context.Context, r *Run) (int, error) {
	r.Say(ctx, "伊比喜的考卷难得离谱，必须要靠作弊或灵感才能通过。")

	knowledge, err := r.Roll(ctx, Check{
		Ability:     entities.AbilityKnowledge,
		DC:          examKnowledgeDC,
		Label:       "知识检定",
		Proficiency: true,
		Reroll:      true,
	})
	if err != nil {
		return 0, err
	}

	successes := 0
	if knowledge.Meets(examKnowledgeDC) {
		successes++
	}

	if !r.Confirm(QuestionCheat) {
		return successes, nil
	}

	stealth, err := r.Roll(ctx, Check{
		Ability:     entities.AbilitySpeed,
		DC:          examStealthDC,
		Label:       "隐匿作弊检定",
		Proficiency: true,
		Reroll:      true,
	})
	if err != nil {
		return 0, err
	}
	if stealth.Meets(examStealthDC) {
		successes++
	} else {
		r.Say(ctx, "你被监考抓住，罚坐半场，查克拉削半并增加 1 级疲劳。")
		r.Character.HalveEnergy()
		r.Character.GainFatigue(1)
	}
	return successes, nil
}

// examMindGame reports whether the will check or the declaration held
func examMindGame(ctx context.Context, r *Run) (bool, error) {
	r.Say(ctx, "伊比喜宣布：答错终身不得提升！全班动摇，心态检定开始。")

	will, err := r.Roll(ctx, Check{
		Ability:     entities.AbilityWill,
		DC:          examWillDC,
		Label:       "意志检定",
		Proficiency: true,
		Reroll:      true,
	})
	if err != nil {
		return false, err
	}
	if !will.Meets(examWillDC) {
		r.Character.GainFatigue(1)
		r.Say(ctx, "压力让你发抖，疲劳 +1。")
	}

	declared := r.Confirm(QuestionDeclaration)
	if declared {
		r.Character.GrantBonus()
		r.Say(ctx, "你的宣言点燃全班的斗志，获得英雄灵感！")
	}

	return declared || will.Meets(examWillDC), nil
}
