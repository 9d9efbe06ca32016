package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/stretchr/testify/assert"
)

func held(keys ...int32) KeyState {
	set := map[int32]bool{}
	for _, k := range keys {
		set[k] = true
	}
	return func(k int32) bool { return set[k] }
}

func TestReadInput(t *testing.T) {
	assert.Zero(t, ReadInput(held()))

	in := ReadInput(held(rl.KeyW, rl.KeyRight, rl.KeyEqual, rl.KeyP))
	assert.True(t, in.PanUp)
	assert.True(t, in.PanRight)
	assert.True(t, in.ZoomIn)
	assert.True(t, in.Debug)
	assert.False(t, in.PanDown)
	assert.False(t, in.ZoomOut)

	in = ReadInput(held(rl.KeyDown, rl.KeyA, rl.KeyMinus))
	assert.True(t, in.PanDown)
	assert.True(t, in.PanLeft)
	assert.True(t, in.ZoomOut)
}

func TestViewportProject(t *testing.T) {
	v := Viewport{Width: 1280, Height: 720}
	assert.Equal(t, float32(360), v.Scale())
	assert.Equal(t, rl.NewVector2(640, 360), v.Project(0, 0))
	assert.Equal(t, rl.NewVector2(1000, 0), v.Project(1, 1))
	assert.Equal(t, rl.NewVector2(280, 720), v.Project(-1, -1))
}

func TestParamsAdjust(t *testing.T) {
	cfg := config.DefaultConfig()
	byName := map[string]param{}
	for _, p := range params {
		byName[p.name] = p
	}

	byName["count"].adjust(cfg, 1)
	assert.Equal(t, config.DefaultCount+10, cfg.Generator.Count)
	byName["count"].adjust(cfg, -1000)
	assert.Equal(t, 0, cfg.Generator.Count)

	byName["merge"].adjust(cfg, 1)
	assert.False(t, cfg.Merge)

	byName["boundary"].adjust(cfg, 1)
	assert.Equal(t, config.BoundaryCircular, cfg.Boundary.Mode)
	byName["boundary"].adjust(cfg, -2)
	assert.Equal(t, config.BoundaryNone, cfg.Boundary.Mode)
	assert.Equal(t, "none", byName["boundary"].show(cfg))
}
