// Package window runs Lane Racer in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/racer"
)

// Title is the window title.
const Title = "Lane Racer"

// lineSpacing is the vertical distance between overlay message lines.
const lineSpacing = 40

// Options configures a window session.
type Options struct {
	Config config.RacerConfig
	Seed   int64
	Assets *Assets
	Clock  core.Clock  // Defaults to a system clock
	Logger *log.Logger // Defaults to discarding output
}

// Game adapts a racer.Game to ebiten.Game.
type Game struct {
	game   *racer.Game
	cfg    config.RacerConfig
	assets *Assets
	clock  core.Clock
	queue  core.EventQueue
	logger *log.Logger

	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewGame creates a window game with a fresh session in the waiting state.
func NewGame(opts Options) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		game:   racer.New(opts.Config, opts.Seed, clock.Millis()),
		cfg:    opts.Config,
		assets: opts.Assets,
		clock:  clock,
		logger: logger,
	}
}

// Update runs one game loop iteration. Ebitengine calls it at the TPS set
// in Run.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	for _, e := range translateKeys(g.pressed, g.released) {
		g.queue.Push(e)
	}
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(core.Close())
	}

	res := g.game.Step(g.queue.Drain(g.clock.Millis()))
	for _, tr := range res.Transitions {
		g.logger.Debug("session", "from", tr.From, "to", tr.To, "trigger", tr.Trigger)
		if tr.To == racer.GameOver {
			g.logger.Info("game over", "score", res.Score, "speed", res.Speed)
		}
	}
	if res.SpeedUp {
		g.logger.Debug("speed up", "speed", res.Speed)
	}

	if res.Session == racer.Exited {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s := g.game.Snapshot()

	if showsField(s.Session) {
		// Two road copies tile the scroll
		drawImage(screen, g.assets.Road, core.NewRect(0, s.TrackOffset, s.FieldW, s.FieldH))
		drawImage(screen, g.assets.Road, core.NewRect(0, s.TrackOffset-s.FieldH, s.FieldW, s.FieldH))

		drawImage(screen, g.assets.Car, s.Player)
		for _, r := range s.Obstacles {
			drawImage(screen, g.assets.Barrier, r)
		}
	}

	if s.Session == racer.Playing {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, 10)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, s.ScoreText(), g.assets.Face, op)
	}

	lines := s.Overlay()
	for i, l := range lines {
		y := float64(s.FieldH)/2 + (float64(i)-float64(len(lines)-1)/2)*lineSpacing
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(s.FieldW)/2, y)
		op.ColorScale.ScaleWithColor(color.White)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, l, g.assets.Face, op)
	}
}

// showsField reports whether the road, car and barriers are drawn. After a
// crash the frozen field stays under the game over message.
func showsField(s racer.Session) bool {
	return s == racer.Playing || s == racer.GameOver
}

// Layout returns the fixed logical field size; Ebitengine scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// drawImage stretches img over r.
func drawImage(dst, img *ebiten.Image, r core.Rect) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleFactors(img.Bounds(), r))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	dst.DrawImage(img, op)
}

// scaleFactors returns the x and y scale mapping bounds onto r.
func scaleFactors(bounds image.Rectangle, r core.Rect) (float64, float64) {
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return 1, 1
	}
	return float64(r.W) / float64(bounds.Dx()), float64(r.H) / float64(bounds.Dy())
}

// TPS returns the tick rate matching the configured frame delay.
func TPS(cfg config.ScreenConfig) int {
	if cfg.FrameDelayMs <= 0 {
		return ebiten.DefaultTPS
	}
	return core.Max(1000/cfg.FrameDelayMs, 1)
}

// Run opens the window and blocks until the session exits.
func Run(opts Options) error {
	ebiten.SetWindowSize(opts.Config.Screen.Width, opts.Config.Screen.Height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(TPS(opts.Config.Screen))

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
