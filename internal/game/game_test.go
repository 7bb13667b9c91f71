package game

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ripple-button/internal/audio"
	"github.com/iburimskiy/ripple-button/internal/config"
	"github.com/iburimskiy/ripple-button/internal/widget"
)

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	return New(opts, audio.NewPlayer(audio.DefaultSampleRate))
}

func TestNew_Layout(t *testing.T) {
	g := newTestGame(t, Options{RippleCount: config.RippleCount, Duration: time.Second, AutoStart: true})

	assert.Equal(t, image.Pt(config.WindowWidth/2, config.WindowHeight/2), g.ripple.Center())
	assert.Equal(t, config.RippleSize/2, g.ripple.MaxRadius())
	assert.Equal(t, config.RippleSize/2-config.RipplePadding, g.ripple.ContentRadius())
	require.Equal(t, config.RippleCount, g.ripple.Ripples().Len())
	assert.True(t, g.ripple.IsRunning())

	assert.Equal(t, widget.Horizontal, g.hLine.Orientation())
	assert.Equal(t, widget.Vertical, g.vLine.Orientation())
	assert.NotEmpty(t, g.hLine.Segments())
	assert.NotEmpty(t, g.vLine.Segments())

	w, h := g.Layout(1, 1)
	assert.Equal(t, config.WindowWidth, w)
	assert.Equal(t, config.WindowHeight, h)
}

func TestRippleState(t *testing.T) {
	g := newTestGame(t, Options{RippleCount: 2})

	assert.Equal(t, widget.State(0), g.rippleState())

	g.ripplePressed = true
	assert.Equal(t, widget.State(0), g.rippleState(), "pressed outside the button")

	g.rippleHovered = true
	assert.Equal(t, widget.StateHovered|widget.StatePressed, g.rippleState())

	g.ripplePressed = false
	g.selected = true
	assert.Equal(t, widget.StateHovered|widget.StateSelected, g.rippleState())

	g.ripple.SetState(g.rippleState())
	assert.Equal(t, rippleSelected, g.ripple.CurrentColor())
}

func TestToggleAndRippleCount(t *testing.T) {
	g := newTestGame(t, Options{RippleCount: 1, Duration: time.Second})
	assert.False(t, g.ripple.IsRunning())

	g.toggleRipples()
	assert.True(t, g.ripple.IsRunning())

	g.changeRippleCount(-1)
	assert.Equal(t, 0, g.ripple.RippleCount())
	assert.False(t, g.ripple.IsRunning())

	g.changeRippleCount(-1)
	assert.Equal(t, 0, g.ripple.RippleCount())

	g.changeRippleCount(1)
	assert.Equal(t, 1, g.ripple.RippleCount())

	g.toggleRipples()
	g.changeRippleCount(1)
	assert.Equal(t, 2, g.ripple.Ripples().Len())
	assert.True(t, g.ripple.IsRunning())

	g.toggleRipples()
	assert.False(t, g.ripple.IsRunning())

	for i := 0; i < config.MaxRippleCount+5; i++ {
		g.changeRippleCount(1)
	}
	assert.Equal(t, config.MaxRippleCount, g.ripple.RippleCount())
}

func TestHsvToRgb(t *testing.T) {
	cases := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{360, 1, 1, 255, 0, 0},
		{-120, 1, 1, 0, 0, 255},
		{0, 0, 1, 255, 255, 255},
		{200, 0.5, 0, 0, 0, 0},
	}
	for _, c := range cases {
		r, g, b := hsvToRgb(c.h, c.s, c.v)
		assert.Equal(t, [3]uint8{c.r, c.g, c.b}, [3]uint8{r, g, b}, "hsv(%v, %v, %v)", c.h, c.s, c.v)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", formatDuration(0))
	assert.Equal(t, "01:05", formatDuration(65*time.Second))
	assert.Equal(t, "12:59", formatDuration(12*time.Minute+59*time.Second+900*time.Millisecond))
}
