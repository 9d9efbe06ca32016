package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravsim/internal/dynamo"
)

// KeyState reports whether a raylib key is held.
type KeyState func(key int32) bool

// ReadInput samples the held keys. Debug is reported while P is held; the
// simulator prints once per press.
func ReadInput(down KeyState) dynamo.Input {
	return dynamo.Input{
		PanUp:    down(rl.KeyUp) || down(rl.KeyW),
		PanDown:  down(rl.KeyDown) || down(rl.KeyS),
		PanLeft:  down(rl.KeyLeft) || down(rl.KeyA),
		PanRight: down(rl.KeyRight) || down(rl.KeyD),
		ZoomIn:   down(rl.KeyEqual) || down(rl.KeyKpAdd),
		ZoomOut:  down(rl.KeyMinus) || down(rl.KeyKpSubtract),
		Debug:    down(rl.KeyP),
	}
}
