// Package narration records what happens in a run as an ordered trace of
// events and publishes each one on an rpg-toolkit event bus. Renderers
// subscribe to the bus; nothing in the game loop writes to stdout.
package narration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
)

// Kind classifies a narration event
type Kind string

// Kinds
const (
	KindAnnounce Kind = "announce"
	KindLine     Kind = "line"
	KindRoll     Kind = "roll"
	KindState    Kind = "state"
)

// AllKinds lists every kind a journal publishes
var AllKinds = []Kind{KindAnnounce, KindLine, KindRoll, KindState}

const (
	// EventTypePrefix prefixes the bus event type of every narration event
	EventTypePrefix = "narration."

	// PayloadKey is the event context key holding the Event
	PayloadKey = "narration"
)

// EventType returns the bus event type for a kind
func EventType(kind Kind) string {
	return EventTypePrefix + string(kind)
}

// Event is one entry of the trace
type Event struct {
	Kind  Kind
	Phase string
	Text  string
	Roll  *engine.RollResult
}

// String renders the event as plain text
func (e Event) String() string {
	if e.Kind == KindAnnounce {
		return fmt.Sprintf("== %s ==", e.Text)
	}
	return e.Text
}

// Config holds the dependencies for a journal
type Config struct {
	Bus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Bus == nil {
		vb.RequiredField("Bus")
	}

	return vb.Build()
}

// Journal collects narration events in order. It belongs to one run and is
// not safe for concurrent use.
type Journal struct {
	bus    events.EventBus
	source core.Entity
	phase  string
	events []Event
}

// NewJournal creates an empty journal publishing to the configured bus
func NewJournal(cfg *Config) (*Journal, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Journal{bus: cfg.Bus}, nil
}

// SetSource sets the entity published as the source of later events
func (j *Journal) SetSource(source core.Entity) {
	j.source = source
}

// SetPhase tags later events with the given phase name
func (j *Journal) SetPhase(phase string) {
	j.phase = phase
}

// Announce records a headline
func (j *Journal) Announce(ctx context.Context, text string) {
	j.record(ctx, Event{Kind: KindAnnounce, Text: text})
}

// Line records a line of story text
func (j *Journal) Line(ctx context.Context, text string) {
	j.record(ctx, Event{Kind: KindLine, Text: text})
}

// Linef records a formatted line of story text
func (j *Journal) Linef(ctx context.Context, format string, args ...interface{}) {
	j.Line(ctx, fmt.Sprintf(format, args...))
}

// Roll records a labelled roll as "label：total (detail)"
func (j *Journal) Roll(ctx context.Context, label string, result engine.RollResult) {
	roll := result
	j.record(ctx, Event{
		Kind: KindRoll,
		Text: fmt.Sprintf("%s：%s", label, result),
		Roll: &roll,
	})
}

// State records a resource summary line
func (j *Journal) State(ctx context.Context, text string) {
	j.record(ctx, Event{Kind: KindState, Text: text})
}

// Events returns a copy of the full trace
func (j *Journal) Events() []Event {
	return j.Since(0)
}

// Since returns a copy of the trace from index i on
func (j *Journal) Since(i int) []Event {
	if i < 0 {
		i = 0
	}
	if i >= len(j.events) {
		return []Event{}
	}
	out := make([]Event, len(j.events)-i)
	copy(out, j.events[i:])
	return out
}

// Len returns the number of recorded events
func (j *Journal) Len() int {
	return len(j.events)
}

// Texts renders the trace from index i on as plain lines
func (j *Journal) Texts(i int) []string {
	since := j.Since(i)
	out := make([]string, len(since))
	for k, e := range since {
		out[k] = e.String()
	}
	return out
}

// record appends the event and publishes it. A failing subscriber is logged
// and does not change the run.
func (j *Journal) record(ctx context.Context, e Event) {
	e.Phase = j.phase
	j.events = append(j.events, e)

	ge := events.NewGameEvent(EventType(e.Kind), j.source, nil)
	ge.Context().Set(PayloadKey, e)
	if err := j.bus.Publish(ctx, ge); err != nil {
		slog.Warn("Failed to publish narration event",
			"kind", e.Kind,
			"phase", e.Phase,
			"error", err)
	}
}

// FromBusEvent extracts the narration payload of a bus event
func FromBusEvent(e events.Event) (Event, bool) {
	if e == nil || e.Context() == nil {
		return Event{}, false
	}
	v, ok := e.Context().Get(PayloadKey)
	if !ok {
		return Event{}, false
	}
	ev, ok := v.(Event)
	return ev, ok
}
