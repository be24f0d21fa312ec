package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/chunin-dm/internal/narration"
)

// renderer prints narration events as they are published
type renderer struct {
	out    io.Writer
	styles map[narration.Kind]lipgloss.Style
}

func newRenderer(out io.Writer, noColor bool) *renderer {
	r := &renderer{out: out}
	if noColor {
		return r
	}

	lr := lipgloss.NewRenderer(out)
	r.styles = map[narration.Kind]lipgloss.Style{
		narration.KindAnnounce: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#E8590C")).
			Padding(0, 1),
		narration.KindRoll: lr.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		narration.KindState: lr.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
	}
	return r
}

// Subscribe registers the renderer for every narration kind
func (r *renderer) Subscribe(bus events.EventBus) {
	for _, kind := range narration.AllKinds {
		bus.SubscribeFunc(narration.EventType(kind), 0, r.handle)
	}
}

func (r *renderer) handle(_ context.Context, e events.Event) error {
	ev, ok := narration.FromBusEvent(e)
	if !ok {
		slog.Debug("Skipping event without narration payload", "type", e.Type())
		return nil
	}
	_, err := fmt.Fprintln(r.out, r.Render(ev))
	return err
}

// Render formats one event. Without styles it is the plain text form.
func (r *renderer) Render(ev narration.Event) string {
	style, ok := r.styles[ev.Kind]
	if !ok {
		return ev.String()
	}
	if ev.Kind == narration.KindAnnounce {
		return style.Render(ev.Text)
	}
	return style.Render(ev.String())
}
