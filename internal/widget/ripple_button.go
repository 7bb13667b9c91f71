package widget

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ripple-button/internal/anim"
	"github.com/iburimskiy/ripple-button/internal/ripple"
)

// debug font cell size used by ebitenutil.DebugPrintAt
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Insets is the padding between a widget's bounds and its content.
type Insets struct {
	Left, Top, Right, Bottom int
}

func (in Insets) max() int {
	return max(in.Left, in.Top, in.Right, in.Bottom)
}

// RippleButtonOptions configures a RippleButton.
type RippleButtonOptions struct {
	RippleCount  int
	Duration     time.Duration
	AutoStart    bool
	RippleColor  *ColorStateList
	Interpolator anim.Interpolator
	Padding      Insets
	Label        string
}

// RippleButton is a round button that draws rings expanding from its content
// circle to the edge of its bounds, fading out as they grow.
type RippleButton struct {
	bounds  image.Rectangle
	padding Insets
	label   string

	center        image.Point
	maxRadius     int
	contentRadius int

	rippleCount int
	autoStart   bool

	rippleColor  *ColorStateList
	currentColor color.Color
	state        State

	set    *ripple.Set
	driver *anim.Driver
	dirty  bool
}

// NewRippleButton returns a button with no bounds. Rings are built once
// SetBounds gives it a size.
func NewRippleButton(opts RippleButtonOptions) *RippleButton {
	b := &RippleButton{
		padding:     opts.Padding,
		label:       opts.Label,
		rippleCount: opts.RippleCount,
		autoStart:   opts.AutoStart,
		rippleColor: opts.RippleColor,
		set:         ripple.NewSet(),
		driver:      anim.NewDriver(),
	}
	if opts.Duration > 0 {
		b.driver.SetDuration(opts.Duration)
	}
	b.driver.SetInterpolator(opts.Interpolator)
	b.currentColor = b.rippleColor.ColorForState(b.state, color.Transparent)
	return b
}

// SetBounds places the button. A change of size or padding rebuilds the rings
// and, with auto start, starts the animation.
func (b *RippleButton) SetBounds(r image.Rectangle) {
	sizeChanged := r.Size() != b.bounds.Size()
	b.bounds = r
	b.center = image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
	if sizeChanged {
		b.relayout()
	}
}

// Bounds returns the button's rectangle.
func (b *RippleButton) Bounds() image.Rectangle { return b.bounds }

// SetPadding sets the space reserved for the rings around the content circle.
func (b *RippleButton) SetPadding(p Insets) {
	if p == b.padding {
		return
	}
	b.padding = p
	b.relayout()
}

func (b *RippleButton) relayout() {
	b.maxRadius = min(b.bounds.Dx(), b.bounds.Dy()) / 2
	b.contentRadius = max(b.maxRadius-b.padding.max(), 0)
	b.initRipples()
	if b.autoStart {
		b.Start()
	}
}

// initRipples rebuilds the ring set and hands its range to the driver so the
// two cannot disagree.
func (b *RippleButton) initRipples() {
	b.set.Configure(b.rippleCount, ripple.Range{Min: b.contentRadius, Max: b.maxRadius})
	rng := b.set.Range()
	b.driver.SetValues(rng.Min, rng.Max)
	if b.set.IsEmpty() {
		b.driver.Stop()
	}
	b.dirty = true
}

// SetRippleCount sets the number of rings and rebuilds them.
func (b *RippleButton) SetRippleCount(n int) {
	if n < 0 {
		n = 0
	}
	b.rippleCount = n
	b.initRipples()
	if b.autoStart {
		b.Start()
	}
}

// RippleCount returns the configured number of rings.
func (b *RippleButton) RippleCount() int { return b.rippleCount }

// Ripples exposes the ring set for inspection.
func (b *RippleButton) Ripples() *ripple.Set { return b.set }

// ContentRadius returns the radius of the solid content circle.
func (b *RippleButton) ContentRadius() int { return b.contentRadius }

// MaxRadius returns the radius the rings grow to.
func (b *RippleButton) MaxRadius() int { return b.maxRadius }

// Center returns the centre of the button.
func (b *RippleButton) Center() image.Point { return b.center }

// SetAutoStart controls whether a layout change starts the animation.
func (b *RippleButton) SetAutoStart(auto bool) *RippleButton {
	b.autoStart = auto
	return b
}

// SetDuration sets the time one ring takes to grow from the content circle
// to the edge.
func (b *RippleButton) SetDuration(d time.Duration) *RippleButton {
	b.driver.SetDuration(d)
	return b
}

// SetInterpolator sets the pacing of the rings. nil means linear.
func (b *RippleButton) SetInterpolator(i anim.Interpolator) *RippleButton {
	b.driver.SetInterpolator(i)
	return b
}

// SetRippleColor sets a single colour for every state.
func (b *RippleButton) SetRippleColor(c color.Color) {
	b.SetRippleColorStateList(ColorStateListOf(c))
}

// SetRippleColorStateList sets the state dependent colour of the rings and
// the content circle.
func (b *RippleButton) SetRippleColorStateList(l *ColorStateList) {
	b.rippleColor = l
	b.updateColor()
}

// CurrentColor returns the colour resolved for the current state.
func (b *RippleButton) CurrentColor() color.Color { return b.currentColor }

// SetState changes the interaction state and re-resolves the colour.
func (b *RippleButton) SetState(s State) {
	if s == b.state {
		return
	}
	b.state = s
	if b.rippleColor.IsStateful() {
		b.updateColor()
	}
}

// State returns the interaction state.
func (b *RippleButton) State() State { return b.state }

func (b *RippleButton) updateColor() {
	c := b.rippleColor.ColorForState(b.state, color.Transparent)
	if !sameColor(c, b.currentColor) {
		b.currentColor = c
		b.dirty = true
	}
}

// Start runs the animation. It does nothing while running or without rings.
func (b *RippleButton) Start() {
	if b.driver.IsRunning() || b.set.IsEmpty() {
		return
	}
	b.driver.Start()
}

// Stop halts the animation, leaving the rings where they are.
func (b *RippleButton) Stop() {
	b.driver.Stop()
}

// IsRunning reports whether the animation is running.
func (b *RippleButton) IsRunning() bool { return b.driver.IsRunning() }

// Detach stops the animation for a button that leaves the screen.
func (b *RippleButton) Detach() { b.Stop() }

// Update advances the animation by dt and reports whether the button needs
// to be redrawn.
func (b *RippleButton) Update(dt time.Duration) bool {
	if tick, ok := b.driver.Advance(dt); ok {
		if b.set.OnTick(tick) {
			b.dirty = true
		}
	}
	dirty := b.dirty
	b.dirty = false
	return dirty
}

// Contains reports whether (x, y) falls on the content circle.
func (b *RippleButton) Contains(x, y int) bool {
	dx, dy := x-b.center.X, y-b.center.Y
	return dx*dx+dy*dy <= b.contentRadius*b.contentRadius
}

// Draw paints the rings in set order, then the content circle and label on
// top of them.
func (b *RippleButton) Draw(screen *ebiten.Image) {
	if b.maxRadius == 0 {
		return
	}
	cx, cy := float32(b.center.X), float32(b.center.Y)
	ripples := b.set.Ripples()
	for i := range ripples {
		r := &ripples[i]
		vector.DrawFilledCircle(screen, cx, cy, float32(r.Radius()), withAlpha(b.currentColor, uint8(r.Alpha())), true)
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(b.contentRadius), withAlpha(b.currentColor, 255), true)

	if b.label != "" {
		x := b.center.X - len(b.label)*glyphWidth/2
		y := b.center.Y - glyphHeight/2
		ebitenutil.DebugPrintAt(screen, b.label, x, y)
	}
}
