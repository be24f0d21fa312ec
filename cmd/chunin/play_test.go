package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
	"github.com/KirkDiggler/chunin-dm/internal/narration"
	"github.com/KirkDiggler/chunin-dm/internal/pkg/rng"
	"github.com/KirkDiggler/chunin-dm/internal/prompt"
)

func TestRenderer_Plain(t *testing.T) {
	r := newRenderer(&bytes.Buffer{}, true)

	assert.Equal(t, "== 第一阶段 ==", r.Render(narration.Event{Kind: narration.KindAnnounce, Text: "第一阶段"}))
	assert.Equal(t, "你躲过蛇袭。", r.Render(narration.Event{Kind: narration.KindLine, Text: "你躲过蛇袭。"}))
}

func TestRenderer_StyledKeepsText(t *testing.T) {
	r := newRenderer(&bytes.Buffer{}, false)

	out := r.Render(narration.Event{Kind: narration.KindState, Text: "生命值 10"})
	assert.Contains(t, out, "生命值 10")

	line := r.Render(narration.Event{Kind: narration.KindLine, Text: "平静"})
	assert.Equal(t, "平静", line)
}

func TestRenderer_PrintsPublishedEvents(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewBus()
	newRenderer(&buf, true).Subscribe(bus)

	journal, err := narration.NewJournal(&narration.Config{Bus: bus})
	require.NoError(t, err)

	ctx := context.Background()
	journal.Announce(ctx, "死亡森林")
	journal.Roll(ctx, "速度检定", engine.RollResult{Total: 12, Detail: "d20:10+mod:0+prof:2 -> success vs DC 12"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "== 死亡森林 ==", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "速度检定："))
}

func TestPlay_DemoIsReproducible(t *testing.T) {
	run := func() (string, string) {
		var buf bytes.Buffer
		tables, err := loadTables("")
		require.NoError(t, err)

		report, err := play(context.Background(), &playInput{
			Source:  rng.New(42),
			Prompt:  prompt.Demo(&buf),
			Tables:  tables,
			Out:     &buf,
			NoColor: true,
		})
		require.NoError(t, err)
		return buf.String(), report.Summary()
	}

	firstOut, firstSummary := run()
	secondOut, secondSummary := run()

	assert.Contains(t, firstOut, "欢迎来到火影忍者")
	assert.Contains(t, firstSummary, "seed 42")
	assert.Equal(t, firstOut, secondOut)
	assert.Equal(t, firstSummary, secondSummary)
}

func TestNewSource(t *testing.T) {
	src, err := newSource(true, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), src.Seed())

	src, err = newSource(false, 9)
	require.NoError(t, err)
	assert.NotNil(t, src)
}

func TestNewIDGenerator(t *testing.T) {
	assert.Equal(t, "run_1", newIDGenerator(true).Generate())
	assert.True(t, strings.HasPrefix(newIDGenerator(false).Generate(), "run_"))
	assert.NotEqual(t, newIDGenerator(false).Generate(), newIDGenerator(false).Generate())
}

func TestLoadTables(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadTables("/nonexistent/tables.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, 3, errors.GetCode(err).ExitCode())
	})

	t.Run("override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
scenes:
  kabuto:
    - energy: 7
`), 0o600))

		tables, err := loadTables(path)
		require.NoError(t, err)
		kabuto, err := tables.Scene("kabuto")
		require.NoError(t, err)
		assert.Equal(t, 7, kabuto[0].Energy)
	})

	t.Run("bad reference", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
scenes:
  kabuto:
    - scene: nowhere
`), 0o600))

		_, err := loadTables(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Equal(t, 2, errors.GetCode(err).ExitCode())
	})
}
