package widget

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
	gray = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

func TestColorStateList_FirstMatchWins(t *testing.T) {
	l := NewColorStateList().
		Add(StateSpec{Exclude: ^StateDisabled}, blue).
		Add(StateSpec{Require: StateDisabled}, gray).
		Add(StateSpec{Require: StateSelected}, red).
		Add(StateSpec{}, blue)

	assert.True(t, l.IsStateful())
	assert.Equal(t, color.Color(blue), l.ColorForState(0, nil))
	assert.Equal(t, color.Color(gray), l.ColorForState(StateDisabled|StateSelected, nil))
	assert.Equal(t, color.Color(red), l.ColorForState(StateSelected|StateHovered, nil))
}

func TestColorStateList_Stateless(t *testing.T) {
	l := ColorStateListOf(red)
	assert.False(t, l.IsStateful())
	assert.Equal(t, color.Color(red), l.ColorForState(StatePressed, blue))

	var empty *ColorStateList
	assert.Equal(t, color.Color(blue), empty.ColorForState(StatePressed, blue))
}

func TestRippleButton_Layout(t *testing.T) {
	b := NewRippleButton(RippleButtonOptions{
		RippleCount: 4,
		AutoStart:   true,
		Padding:     Insets{Left: 10, Top: 40, Right: 10, Bottom: 10},
		RippleColor: ColorStateListOf(red),
	})
	b.SetBounds(image.Rect(100, 100, 200, 220))

	assert.Equal(t, image.Pt(150, 160), b.Center())
	assert.Equal(t, 50, b.MaxRadius())
	assert.Equal(t, 10, b.ContentRadius())

	set := b.Ripples()
	require.Equal(t, 4, set.Len())
	assert.Equal(t, 10, set.Range().Min)
	assert.Equal(t, 50, set.Range().Max)
	assert.True(t, b.IsRunning())

	assert.True(t, b.Contains(150, 160))
	assert.True(t, b.Contains(160, 160))
	assert.False(t, b.Contains(161, 160))
}

func TestRippleButton_UpdateDrivesRings(t *testing.T) {
	b := NewRippleButton(RippleButtonOptions{
		RippleCount: 4,
		AutoStart:   true,
		Duration:    400 * time.Millisecond,
		Padding:     Insets{Left: 40},
		RippleColor: ColorStateListOf(red),
	})
	b.SetBounds(image.Rect(0, 0, 100, 100))

	// first frame of the cycle delivers the content radius
	assert.True(t, b.Update(0))

	var radii, alphas []int
	for _, r := range b.Ripples().Ripples() {
		radii = append(radii, r.Radius())
		alphas = append(alphas, r.Alpha())
	}
	assert.Equal(t, []int{10, 40, 30, 20}, radii)
	assert.Equal(t, []int{204, 51, 102, 153}, alphas)

	b.Stop()
	assert.False(t, b.Update(time.Second / 60))
}

func TestRippleButton_NoRingsNoAnimation(t *testing.T) {
	b := NewRippleButton(RippleButtonOptions{AutoStart: true, Padding: Insets{Left: 20}})
	b.SetBounds(image.Rect(0, 0, 80, 80))

	assert.True(t, b.Ripples().IsEmpty())
	b.Start()
	assert.False(t, b.IsRunning())

	b.SetRippleCount(3)
	assert.True(t, b.IsRunning())

	// without padding the rings have no room to grow
	b.SetPadding(Insets{Left: 0})
	assert.True(t, b.Ripples().IsEmpty())
	assert.False(t, b.IsRunning())
}

func TestRippleButton_SetRippleCountRebuilds(t *testing.T) {
	b := NewRippleButton(RippleButtonOptions{RippleCount: 6, Padding: Insets{Top: 30}})
	b.SetBounds(image.Rect(0, 0, 120, 120))
	require.Equal(t, 6, b.Ripples().Len())
	assert.False(t, b.IsRunning())

	b.SetRippleCount(2)
	assert.Equal(t, 2, b.Ripples().Len())
	assert.Equal(t, 2, b.RippleCount())

	b.SetRippleCount(-1)
	assert.True(t, b.Ripples().IsEmpty())
}

func TestRippleButton_StateColor(t *testing.T) {
	b := NewRippleButton(RippleButtonOptions{
		RippleColor: NewColorStateList().
			Add(StateSpec{Require: StateSelected}, red).
			Add(StateSpec{}, blue),
	})
	assert.Equal(t, color.Color(blue), b.CurrentColor())

	b.SetState(StateSelected | StateHovered)
	assert.Equal(t, color.Color(red), b.CurrentColor())
	assert.True(t, b.Update(0))

	b.SetRippleColor(gray)
	assert.Equal(t, color.Color(gray), b.CurrentColor())
}

func TestDashLine_HorizontalSegments(t *testing.T) {
	l := NewDashLine(red)
	l.SetBounds(image.Rect(10, 20, 55, 30))

	segs := l.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, Segment{A: image.Pt(10, 25), B: image.Pt(20, 25)}, segs[0])
	assert.Equal(t, Segment{A: image.Pt(30, 25), B: image.Pt(40, 25)}, segs[1])
	assert.Equal(t, Segment{A: image.Pt(50, 25), B: image.Pt(60, 25)}, segs[2])
}

func TestDashLine_VerticalSegments(t *testing.T) {
	l := NewDashLine(red)
	l.SetBounds(image.Rect(0, 0, 9, 40))
	assert.True(t, l.SetOrientation(Vertical))
	assert.False(t, l.SetOrientation(Vertical))
	assert.False(t, l.SetOrientation(Orientation(7)))

	l.SetDashWidth(5)
	l.SetDashGap(3)
	segs := l.Segments()
	require.Len(t, segs, 5)
	assert.Equal(t, Segment{A: image.Pt(4, 0), B: image.Pt(4, 5)}, segs[0])
	assert.Equal(t, Segment{A: image.Pt(4, 32), B: image.Pt(4, 37)}, segs[4])
}

func TestDashLine_DegenerateGeometry(t *testing.T) {
	l := NewDashLine(red)
	assert.Empty(t, l.Segments())

	l.SetBounds(image.Rect(0, 0, 30, 4))
	l.SetDashWidth(0)
	l.SetDashGap(10)
	assert.Empty(t, l.Segments())

	l.SetDashWidth(5)
	l.SetDashGap(-5)
	assert.Equal(t, []Segment{{A: image.Pt(0, 2), B: image.Pt(30, 2)}}, l.Segments())
}

func TestDashLine_StateColor(t *testing.T) {
	l := NewDashLine(red)
	l.SetColorStateList(NewColorStateList().
		Add(StateSpec{Require: StatePressed}, blue).
		Add(StateSpec{}, red))
	assert.Equal(t, color.Color(red), l.CurrentColor())

	l.SetState(StatePressed)
	assert.Equal(t, color.Color(blue), l.CurrentColor())
}
