package widget

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Orientation is the direction a DashLine runs in.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Default dash geometry, in pixels.
const (
	DefaultDashWidth = 10
	DefaultDashGap   = 10
	DefaultLineWidth = 4
)

// Segment is one dash, from A to B.
type Segment struct {
	A, B image.Point
}

// DashLine draws a dashed line through the middle of its bounds.
type DashLine struct {
	bounds      image.Rectangle
	orientation Orientation
	dashWidth   int
	dashGap     int
	lineWidth   int

	colors       *ColorStateList
	currentColor color.Color
	state        State
}

// NewDashLine returns a horizontal line with the default geometry, drawn in c.
func NewDashLine(c color.Color) *DashLine {
	l := &DashLine{
		dashWidth: DefaultDashWidth,
		dashGap:   DefaultDashGap,
		lineWidth: DefaultLineWidth,
	}
	l.SetColor(c)
	return l
}

// SetBounds places the line.
func (l *DashLine) SetBounds(r image.Rectangle) { l.bounds = r }

// Bounds returns the line's rectangle.
func (l *DashLine) Bounds() image.Rectangle { return l.bounds }

// SetOrientation changes the direction and reports whether the line needs a
// new layout.
func (l *DashLine) SetOrientation(o Orientation) bool {
	if o != Horizontal && o != Vertical {
		return false
	}
	if o == l.orientation {
		return false
	}
	l.orientation = o
	return true
}

// Orientation returns the direction the line runs in.
func (l *DashLine) Orientation() Orientation { return l.orientation }

// SetDashWidth sets the length of one dash. A non-positive width draws nothing.
func (l *DashLine) SetDashWidth(w int) { l.dashWidth = w }

// SetDashGap sets the space between dashes.
func (l *DashLine) SetDashGap(g int) { l.dashGap = g }

// SetLineWidth sets the stroke thickness.
func (l *DashLine) SetLineWidth(w int) { l.lineWidth = w }

// LineWidth returns the stroke thickness.
func (l *DashLine) LineWidth() int { return l.lineWidth }

// SetColor sets a single colour for every state.
func (l *DashLine) SetColor(c color.Color) {
	l.SetColorStateList(ColorStateListOf(c))
}

// SetColorStateList sets the state dependent colour of the dashes.
func (l *DashLine) SetColorStateList(list *ColorStateList) {
	l.colors = list
	l.updateColor()
}

// CurrentColor returns the colour resolved for the current state.
func (l *DashLine) CurrentColor() color.Color { return l.currentColor }

// SetState changes the interaction state and re-resolves the colour.
func (l *DashLine) SetState(s State) {
	if s == l.state {
		return
	}
	l.state = s
	if l.colors.IsStateful() {
		l.updateColor()
	}
}

func (l *DashLine) updateColor() {
	l.currentColor = l.colors.ColorForState(l.state, color.Transparent)
}

// Segments lays the dashes out along the centre line of the bounds, starting
// at the leading edge. The last dash may run past the trailing edge.
func (l *DashLine) Segments() []Segment {
	w, h := l.bounds.Dx(), l.bounds.Dy()
	length, mid := w, h>>1
	if l.orientation == Vertical {
		length, mid = h, w>>1
	}
	if length <= 0 {
		return nil
	}

	at := func(from, to int) Segment {
		if l.orientation == Vertical {
			return Segment{
				A: l.bounds.Min.Add(image.Pt(mid, from)),
				B: l.bounds.Min.Add(image.Pt(mid, to)),
			}
		}
		return Segment{
			A: l.bounds.Min.Add(image.Pt(from, mid)),
			B: l.bounds.Min.Add(image.Pt(to, mid)),
		}
	}

	if l.dashWidth <= 0 {
		return nil
	}
	step := l.dashWidth + l.dashGap
	if step <= 0 {
		// dashes overlap back onto themselves
		return []Segment{at(0, length)}
	}
	segs := make([]Segment, 0, (length+step-1)/step)
	for start := 0; start < length; start += step {
		segs = append(segs, at(start, start+l.dashWidth))
	}
	return segs
}

// Draw strokes the dashes.
func (l *DashLine) Draw(screen *ebiten.Image) {
	if l.lineWidth <= 0 {
		return
	}
	for _, s := range l.Segments() {
		vector.StrokeLine(screen, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), float32(l.lineWidth), l.currentColor, false)
	}
}
