package entity

import "math"

// KinematicBody is the physical state of the climber.
// Positions are pixels, velocities are pixels per second, Y grows downward
// (VY > 0 means falling). The stepper owns position; gameplay systems read
// and write velocity only.
type KinematicBody struct {
	X, Y   float64
	VX, VY float64

	Width  float64
	Height float64

	OnGround    bool
	WasOnGround bool // previous tick, for coyote time and landing detection
	FacingRight bool
}

// NewKinematicBody creates a body at the given position.
func NewKinematicBody(x, y, w, h float64) *KinematicBody {
	return &KinematicBody{
		X: x, Y: y,
		Width: w, Height: h,
		FacingRight: true,
	}
}

// Speed returns the absolute horizontal speed.
func (b *KinematicBody) Speed() float64 {
	return math.Abs(b.VX)
}

// Sanitize replaces non-finite kinematic values with safe defaults so a
// malformed upstream signal degrades to a standstill instead of poisoning
// every tick after it. Returns true if anything was repaired.
func (b *KinematicBody) Sanitize() bool {
	repaired := false
	for _, v := range []*float64{&b.X, &b.Y, &b.VX, &b.VY} {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			*v = 0
			repaired = true
		}
	}
	if repaired {
		b.OnGround = false
	}
	return repaired
}

// Reset moves the body back to a spawn point and zeroes motion state.
func (b *KinematicBody) Reset(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
	b.OnGround = false
	b.WasOnGround = false
	b.FacingRight = true
}
