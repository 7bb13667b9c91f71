package config

import "time"

const (
	WindowWidth  = 800
	WindowHeight = 600

	// Open Sound button
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Ripple button
	RippleSize     = 320
	RipplePadding  = 90
	RippleCount    = 4
	RippleDuration = 2 * time.Second
	MaxRippleCount = 12
	RippleLabel    = "Ripple"

	// Dash lines
	DashInset     = 40
	DashThickness = 12
	DashWidth     = 12
	DashGap       = 8
	DashLineWidth = 3

	// Background
	ColorShiftSpeed = 0.002
)
