package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/racer"
)

type harness struct {
	t     *testing.T
	m     Model
	clock *core.ManualClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := &core.ManualClock{}
	m := NewModel(Options{
		Config:  config.DefaultRacerConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 60, ScreenH: 31, Seed: 7},
		Clock:   clock,
	})
	return &harness{t: t, m: m, clock: clock}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T, expected Model", next)
	}
	h.m = m
	return cmd
}

// tick advances the clock by one frame and runs a loop iteration.
func (h *harness) tick() tea.Cmd {
	h.clock.Advance(15)
	return h.send(TickMsg{})
}

func (h *harness) playerX() int {
	return h.m.game.Snapshot().Player.X
}

func TestModelKeysWaitForTick(t *testing.T) {
	h := newHarness(t)

	h.send(runeKey('o'))
	if s := h.m.game.Session(); s != racer.Waiting {
		t.Fatalf("session = %s before tick, expected waiting", s)
	}

	cmd := h.tick()
	if s := h.m.game.Session(); s != racer.Playing {
		t.Errorf("session = %s after tick, expected playing", s)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelSteeringReleasesAfterHold(t *testing.T) {
	h := newHarness(t)
	h.send(runeKey('o'))
	h.tick()
	start := h.playerX()

	h.send(runeKey('d'))
	h.tick()
	if got := h.playerX(); got != start+5 {
		t.Fatalf("X = %d after one frame, expected %d", got, start+5)
	}

	// No repeats arrive, so the key is released once the hold window ends
	for i := 0; i < 45; i++ {
		h.tick()
	}
	stopped := h.playerX()
	h.tick()
	h.tick()
	if h.playerX() != stopped {
		t.Error("car kept moving after the hold window expired")
	}
	if moved := stopped - start; moved <= 5 || moved > 5*(keyHoldMs/15+1) {
		t.Errorf("car moved %d, expected movement bounded by the hold window", moved)
	}
}

func TestModelCloseQuits(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	cmd := h.tick()
	if s := h.m.game.Session(); s != racer.Exited {
		t.Fatalf("session = %s, expected exited", s)
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command should quit the program")
	}
	if h.m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestModelQuitIgnoredWhileWaiting(t *testing.T) {
	h := newHarness(t)

	h.send(runeKey('q'))
	h.tick()
	if s := h.m.game.Session(); s != racer.Waiting {
		t.Errorf("session = %s, expected waiting", s)
	}
}

func TestModelView(t *testing.T) {
	h := newHarness(t)

	view := h.m.View()
	if !strings.Contains(view, "Press O to Start") {
		t.Error("waiting view should show the start prompt")
	}
	if !strings.Contains(view, "start") {
		t.Error("help line should list the start key")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	h := newHarness(t)
	h.send(runeKey('o'))
	h.tick()
	score := h.m.game.Score()

	h.send(tea.WindowSizeMsg{Width: 100, Height: 41})
	if h.m.screen.Width() != 100 || h.m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", h.m.screen.Width(), h.m.screen.Height())
	}
	if s := h.m.game.Session(); s != racer.Playing || h.m.game.Score() != score {
		t.Error("resize must not reset the game")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	clock := &core.ManualClock{}
	h := &harness{t: t, clock: clock, m: NewModel(Options{
		Config:        config.DefaultRacerConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 60, ScreenH: 31, Seed: 7},
		Clock:         clock,
		ScreenshotDir: dir,
	})}

	h.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("screenshot dir not created: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one screenshot, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Press O to Start") {
		t.Errorf("screenshot should hold the rendered frame, got:\n%s", data)
	}

	// The key never reaches the game
	h.tick()
	if h.m.queue.Len() != 0 || h.m.game.Session() != racer.Waiting {
		t.Error("screenshot key must not affect the game")
	}
}
