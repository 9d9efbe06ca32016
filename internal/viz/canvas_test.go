package viz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	w, h := c.Dots()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)

	c.Set(3, 5)
	assert.True(t, c.IsSet(3, 5))
	assert.False(t, c.IsSet(2, 5))

	c.Set(-1, 0)
	c.Set(8, 0)
	c.Set(0, 8)
	assert.False(t, c.IsSet(-1, 0))

	c.Clear()
	assert.False(t, c.IsSet(3, 5))
	assert.Equal(t, strings.Repeat(strings.Repeat(string(rune(brailleBlank)), 4)+"\n", 2), c.String())
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawLine(0, 3, 19, 3)
	for x := 0; x < 20; x++ {
		assert.True(t, c.IsSet(x, 3), "x=%d", x)
	}
	assert.False(t, c.IsSet(0, 2))
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3)
	assert.True(t, c.IsSet(10, 10))
	assert.True(t, c.IsSet(13, 10))
	assert.True(t, c.IsSet(10, 7))
	assert.False(t, c.IsSet(13, 13))
	assert.False(t, c.IsSet(14, 10))

	c.Clear()
	c.FillCircle(4.2, 4.4, 0.1)
	assert.True(t, c.IsSet(4, 4), "tiny disc still lights its center")
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 10)
	assert.True(t, c.IsSet(30, 20))
	assert.True(t, c.IsSet(10, 20))
	assert.True(t, c.IsSet(20, 10))
	assert.True(t, c.IsSet(20, 30))
	assert.False(t, c.IsSet(20, 20), "outline only")

	c.Clear()
	c.DrawCircle(5, 5, 0)
	assert.False(t, c.IsSet(5, 5))
}

func TestRecorder(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0)
	r := NewRecorder(t.TempDir() + "/out.gif")
	require.NoError(t, r.Save(), "no frames is a no-op")

	r.Capture(c)
	r.Capture(c)
	assert.Equal(t, 2, r.Frames())
	require.NoError(t, r.Save())
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[string]bool{}
	th := ThemeStarfield
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	assert.Len(t, seen, len(Themes))
	assert.Equal(t, ThemeStarfield.Name, th.Name)
}
