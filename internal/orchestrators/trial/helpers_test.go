package trial_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/chunin-dm/internal/narration"
)

func newJournal(t *testing.T) *narration.Journal {
	t.Helper()
	journal, err := narration.NewJournal(&narration.Config{Bus: events.NewBus()})
	if err != nil {
		t.Fatal(err)
	}
	return journal
}
