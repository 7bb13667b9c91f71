// Package ripple maps a shared, cycling animation clock onto a set of
// phase-offset rings, each with its own radius and alpha.
package ripple

// MaxAlpha is the alpha of a ring that was just born at the content radius.
const MaxAlpha = 204

// Range is a radius range [Min, Max).
type Range struct {
	Min int
	Max int
}

// Width returns the size of the range.
func (r Range) Width() int { return r.Max - r.Min }

// Valid reports whether the range can hold a visible ring.
func (r Range) Valid() bool { return r.Max > r.Min }

// Ripple is one ring. Its radius and alpha are recomputed on every Update
// from the tick, its phase offset and its range.
type Ripple struct {
	offset int
	min    int
	max    int

	radius int
	alpha  int
}

func newRipple(offset int, r Range) Ripple {
	return Ripple{offset: offset, min: r.Min, max: r.Max, radius: r.Min}
}

// Offset returns the ring's phase offset within the clock cycle.
func (r *Ripple) Offset() int { return r.offset }

// Radius returns the radius computed by the last Update.
func (r *Ripple) Radius() int { return r.radius }

// Alpha returns the alpha computed by the last Update, in [0, MaxAlpha].
func (r *Ripple) Alpha() int { return r.alpha }

// Range returns the radius range of the ring.
func (r *Ripple) Range() Range { return Range{Min: r.min, Max: r.max} }

// Update derives radius and alpha for the given tick.
func (r *Ripple) Update(tick int) {
	w := r.max - r.min
	if w <= 0 {
		r.radius = r.min
		r.alpha = 0
		return
	}

	diff := tick - r.offset
	if diff < r.min {
		// the ring has not caught up with its offset in this cycle yet
		diff = r.max + diff - r.min
	}
	if diff < r.min || diff >= r.max {
		// out of range ticks fold back with the same period
		diff = r.min + floorMod(diff-r.min, w)
	}
	r.radius = diff
	r.alpha = MaxAlpha * (r.max - r.radius) / w
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
