package trial

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/narration"
)

// Report summarizes a finished run
type Report struct {
	RunID string
	Seed  int64

	// Passed is set when every phase passed.
	Passed bool

	// Reached is the last phase entered, FailedAt the phase that stopped
	// the run. FailedAt is empty on a pass.
	Reached  string
	FailedAt string
	Cleared  []string

	Character *entities.Character
	Events    []narration.Event

	// Final holds the character's resources when the run stopped.
	Final entities.Snapshot

	// Draws counts the integers taken from the randomness source.
	Draws int64

	StartedAt time.Time
	Elapsed   time.Duration
}

// Summary renders a one-line outcome
func (r *Report) Summary() string {
	var b strings.Builder
	if r.Passed {
		b.WriteString("晋升成功")
	} else {
		fmt.Fprintf(&b, "止步于%s", Title(r.FailedAt))
	}
	if r.Character != nil {
		c := r.Character
		fmt.Fprintf(&b, " | %s 生命 %d 查克拉 %d 疲劳 %d 卷轴 %d 种", c.Name, c.HP, c.Energy, c.Fatigue, c.DistinctTokenKinds())
	}
	fmt.Fprintf(&b, " | seed %d", r.Seed)
	return b.String()
}
