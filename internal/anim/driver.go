// Package anim provides the animation clock that feeds ripple sets: an
// integer value animator that repeats forever.
package anim

import "time"

// DefaultDuration is the cycle length of a driver that was never given one.
const DefaultDuration = 300 * time.Millisecond

// Driver delivers an integer in [from, to) once per frame, sweeping the range
// once per cycle and starting over at the end of every cycle. It is advanced
// by the host's frame loop and holds no timers of its own.
type Driver struct {
	from, to int
	duration time.Duration
	interp   Interpolator

	elapsed time.Duration
	running bool
	value   int
}

// NewDriver returns a stopped driver with the default duration and a linear
// interpolator.
func NewDriver() *Driver {
	return &Driver{duration: DefaultDuration, interp: Linear}
}

// SetValues sets the value range. The current cycle keeps its progress.
func (d *Driver) SetValues(from, to int) {
	d.from, d.to = from, to
	d.value = from
}

// Values returns the value range.
func (d *Driver) Values() (from, to int) { return d.from, d.to }

// SetDuration sets the cycle length. Non-positive durations are ignored.
func (d *Driver) SetDuration(duration time.Duration) {
	if duration <= 0 {
		return
	}
	d.duration = duration
}

// Duration returns the cycle length.
func (d *Driver) Duration() time.Duration { return d.duration }

// SetInterpolator sets the pacing of a cycle. nil restores Linear.
func (d *Driver) SetInterpolator(i Interpolator) {
	if i == nil {
		i = Linear
	}
	d.interp = i
}

// Start begins a new cycle. It has no effect on a running driver.
func (d *Driver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.elapsed = 0
	d.value = d.from
}

// Stop halts the driver. The last delivered value is kept.
func (d *Driver) Stop() {
	d.running = false
}

// IsRunning reports whether the driver is delivering values.
func (d *Driver) IsRunning() bool { return d.running }

// Elapsed returns the time the driver has been running since Start.
func (d *Driver) Elapsed() time.Duration { return d.elapsed }

// Value returns the last delivered value.
func (d *Driver) Value() int { return d.value }

// Advance moves the clock forward by dt and returns the value for the new
// frame. ok is false when the driver is stopped or the range is empty. A
// zero Driver runs with DefaultDuration and Linear pacing.
func (d *Driver) Advance(dt time.Duration) (value int, ok bool) {
	if !d.running || d.to <= d.from {
		return d.value, false
	}
	if dt > 0 {
		d.elapsed += dt
	}

	duration := d.duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	interp := d.interp
	if interp == nil {
		interp = Linear
	}
	fraction := float64(d.elapsed%duration) / float64(duration)
	v := d.from + int(clamp01(interp(fraction))*float64(d.to-d.from))
	if v >= d.to {
		v = d.to - 1
	}
	if v < d.from {
		v = d.from
	}
	d.value = v
	return v, true
}
