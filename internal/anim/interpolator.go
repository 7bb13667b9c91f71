package anim

import "math"

// Interpolator maps the elapsed fraction of a cycle onto the fraction of the
// value range to report.
type Interpolator func(float64) float64

// Linear advances at a constant rate.
func Linear(t float64) float64 { return t }

// Accelerate starts slow and speeds up.
func Accelerate(t float64) float64 { return t * t }

// Decelerate starts fast and slows down.
func Decelerate(t float64) float64 { return 1 - (1-t)*(1-t) }

// AccelerateDecelerate starts and ends slowly.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
