package widget

import "image/color"

// State is the set of interaction flags of a widget.
type State uint8

const (
	StatePressed State = 1 << iota
	StateHovered
	StateSelected
	StateDisabled
)

// Has reports whether all flags in f are set.
func (s State) Has(f State) bool { return s&f == f }

// StateSpec matches a State that has every Require flag and none of the
// Exclude flags. The zero StateSpec matches every state.
type StateSpec struct {
	Require State
	Exclude State
}

func (sp StateSpec) matches(s State) bool {
	return s.Has(sp.Require) && s&sp.Exclude == 0
}

type stateColor struct {
	spec  StateSpec
	color color.Color
}

// ColorStateList resolves a colour from a widget state. Entries are checked
// in the order they were added and the first match wins, so the catch-all
// entry goes last.
type ColorStateList struct {
	entries []stateColor
}

// NewColorStateList returns an empty list.
func NewColorStateList() *ColorStateList {
	return &ColorStateList{}
}

// ColorStateListOf returns a list that resolves to c for every state.
func ColorStateListOf(c color.Color) *ColorStateList {
	return NewColorStateList().Add(StateSpec{}, c)
}

// Add appends an entry and returns the list for chaining.
func (l *ColorStateList) Add(spec StateSpec, c color.Color) *ColorStateList {
	l.entries = append(l.entries, stateColor{spec: spec, color: c})
	return l
}

// ColorForState returns the colour of the first entry matching s, or def.
func (l *ColorStateList) ColorForState(s State, def color.Color) color.Color {
	if l == nil {
		return def
	}
	for _, e := range l.entries {
		if e.spec.matches(s) {
			return e.color
		}
	}
	return def
}

// IsStateful reports whether the resolved colour can depend on the state.
func (l *ColorStateList) IsStateful() bool {
	if l == nil {
		return false
	}
	if len(l.entries) > 1 {
		return true
	}
	return len(l.entries) == 1 && l.entries[0].spec != StateSpec{}
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// withAlpha returns c as non-premultiplied colour with its alpha replaced.
func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = alpha
	return n
}
