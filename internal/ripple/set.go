package ripple

// Set owns the rings of one ripple widget. Configure and OnTick must be
// called from the same goroutine.
type Set struct {
	ripples   []Ripple
	ringCount int
	rng       Range
	version   int
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{}
}

// Configure rebuilds the collection from scratch. A non-positive ring count
// or an empty range leaves the set empty.
func (s *Set) Configure(ringCount int, r Range) {
	if ringCount < 0 {
		ringCount = 0
	}
	s.ringCount = ringCount
	s.rng = r
	s.version++

	if ringCount == 0 || !r.Valid() {
		s.ripples = nil
		return
	}

	// a fresh slice, so nothing handed out before survives the rebuild
	ripples := make([]Ripple, ringCount)
	w := r.Width()
	for i := range ripples {
		ripples[i] = newRipple(w*i/ringCount, r)
	}
	s.ripples = ripples
}

// OnTick forwards the tick to every ring in order. It reports whether a
// redraw is needed.
func (s *Set) OnTick(tick int) bool {
	if len(s.ripples) == 0 {
		return false
	}
	for i := range s.ripples {
		s.ripples[i].Update(tick)
	}
	return true
}

// IsEmpty reports whether the set holds no rings. The animation clock must
// not run for an empty set.
func (s *Set) IsEmpty() bool { return len(s.ripples) == 0 }

// Len returns the number of rings.
func (s *Set) Len() int { return len(s.ripples) }

// Ripples returns the rings in draw order. The slice is owned by the set and
// is replaced on the next Configure.
func (s *Set) Ripples() []Ripple { return s.ripples }

// Range returns the configured radius range. It is also the value range of
// the animation clock driving the set.
func (s *Set) Range() Range { return s.rng }

// RingCount returns the configured ring count.
func (s *Set) RingCount() int { return s.ringCount }

// Version is incremented on every Configure.
func (s *Set) Version() int { return s.version }
