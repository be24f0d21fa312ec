package trial

import (
	"context"

	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/combat"
)

// QuestionSolo offers the optional preliminary duel
const QuestionSolo = "你要亲自出场一场对决吗？(y/N): "

// PrelimVictoryThreshold is the number of wins needed to reach the finals
const PrelimVictoryThreshold = 5

// Match is a preliminary bout the character supports from the side
type Match struct {
	Title  string
	DC     int
	Flavor string
}

// PrelimMatches are the fixed support matches, in order
var PrelimMatches = []Match{
	{Title: "佐助 vs 叶隐药师兜支援的约鲁伊", DC: 13, Flavor: "你模仿佐助的速度切入，封住对手查克拉。"},
	{Title: "鹿丸 vs 多由也雏形的金", DC: 12, Flavor: "你用影缝协助，鹿丸一举擒获。"},
	{Title: "小樱 vs 井野", DC: 11, Flavor: "两人拳法互拼，你选择加油或插手救场。"},
	{Title: "我爱罗 vs 李洛克", DC: 15, Flavor: "李开八门的光景震撼全场，你守在场边防止砂暴波及。"},
	{Title: "鸣人 vs 牙", DC: 12, Flavor: "赤丸扑来，你用砂轮或水弹支援鸣人。"},
	{Title: "雏田 vs 宁次", DC: 14, Flavor: "宗家与分家的对决，你护在雏田身侧。"},
	{Title: "丁次 vs 多苏", DC: 13, Flavor: "音波再次来袭，这次你更有经验。"},
	{Title: "志乃 vs 左近", DC: 12, Flavor: "虫群压制对手，你封锁侧翼。"},
	{Title: "手鞠 vs 天天", DC: 13, Flavor: "风镰与忍具对撞，你能否打出破绽？"},
}

// Preliminaries is the tower tournament
type Preliminaries struct{}

// Name implements Phase
func (Preliminaries) Name() string { return PhasePreliminaries }

// Run implements Phase
func (Preliminaries) Run(ctx context.Context, r *Run) (bool, error) {
	r.Announce(ctx, phaseTitles[PhasePreliminaries])
	victories := 0

	if r.Confirm(QuestionSolo) {
		duel, err := r.Combat.Duel(ctx, &combat.DuelInput{
			Character: r.Character,
			Opponent:  "音忍预备队员佐井",
			Flavor:    "对手擅长墨兽术，你需要迅速拉近距离。",
			DC:        13,
			Damage:    "1d8",
		})
		if err != nil {
			return false, err
		}
		if duel.Victory {
			victories++
		}
		if r.Down() {
			r.Announce(ctx, "你的伤势无法继续观看或作战。")
			return false, nil
		}
	}

	for _, match := range PrelimMatches {
		out, err := r.Combat.SupportMatch(ctx, &combat.SupportMatchInput{
			Character: r.Character,
			Title:     match.Title,
			Flavor:    match.Flavor,
			DC:        match.DC,
		})
		if err != nil {
			return false, err
		}
		if out.Success {
			victories++
		}
		if r.Down() {
			r.Announce(ctx, "你的伤势无法继续观看或作战。")
			return false, nil
		}
	}

	r.Sayf(ctx, "预赛胜场：%d / %d", victories, PrelimVictoryThreshold)
	if victories >= PrelimVictoryThreshold {
		r.Announce(ctx, "你和木叶的战友们晋级至决赛！")
		return true, nil
	}
	r.Announce(ctx, "你未能累积足够胜场，但获得宝贵经验与情报。")
	return false, nil
}
