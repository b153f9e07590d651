package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// keyBindings maps physical keys to logical game keys.
var keyBindings = map[ebiten.Key]core.Key{
	ebiten.KeyO:          core.KeyStart,
	ebiten.KeyA:          core.KeyLeft,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyD:          core.KeyRight,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyR:          core.KeyRestart,
	ebiten.KeyQ:          core.KeyQuit,
	ebiten.KeyEscape:     core.KeyEscape,
}

// translateKeys converts one tick's key transitions into game events.
// Presses come before releases so a key tapped within a single tick ends
// up released. Unbound keys are dropped.
func translateKeys(pressed, released []ebiten.Key) []core.Event {
	var events []core.Event
	for _, k := range pressed {
		if gk, ok := keyBindings[k]; ok {
			events = append(events, core.KeyDown(gk))
		}
	}
	for _, k := range released {
		if gk, ok := keyBindings[k]; ok {
			events = append(events, core.KeyUp(gk))
		}
	}
	return events
}
