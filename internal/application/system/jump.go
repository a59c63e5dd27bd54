package system

import (
	"math"

	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

// JumpMetrics is everything a jump derives from the current run speed.
// It is recomputed on demand and never stored.
type JumpMetrics struct {
	VerticalSpeed            float64 // launch speed, positive up
	HorizontalSpeedAfterJump float64 // retained run speed, sign preserved
	FlightTime               float64
	MaxHeight                float64
	HorizontalRange          float64
	MomentumBoost            float64
}

// Valid reports whether every metric is a finite number. Consumers must
// check before acting on metrics that crossed a trust boundary.
func (m JumpMetrics) Valid() bool {
	for _, v := range []float64{
		m.VerticalSpeed, m.HorizontalSpeedAfterJump, m.FlightTime,
		m.MaxHeight, m.HorizontalRange, m.MomentumBoost,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ComputeJumpMetrics converts horizontal run speed into a jump's launch
// parameters. Pure: no clamping against body velocity limits happens here,
// otherwise reachability queries would lie to planning consumers.
//
// momentumBoost = coupling * |v|^exponent, so exponent 1 is linear scaling
// and exponent > 1 rewards top speed superlinearly.
func ComputeJumpMetrics(horizontalSpeed float64, jump config.JumpConfig, gravity float64) JumpMetrics {
	if math.IsNaN(horizontalSpeed) || math.IsInf(horizontalSpeed, 0) {
		horizontalSpeed = 0
	}

	s := math.Abs(horizontalSpeed)
	boost := jump.CouplingFactor * math.Pow(s, jump.ScalingExponent)
	vertical := jump.BaseJumpSpeed + boost
	hAfter := horizontalSpeed * jump.RetentionFactor

	var flight, maxHeight float64
	if gravity > 0 {
		flight = 2 * vertical / gravity
		maxHeight = vertical * vertical / (2 * gravity)
	}

	return JumpMetrics{
		VerticalSpeed:            vertical,
		HorizontalSpeedAfterJump: hAfter,
		FlightTime:               flight,
		MaxHeight:                maxHeight,
		HorizontalRange:          math.Abs(hAfter) * flight,
		MomentumBoost:            boost,
	}
}

// IsGapReachable is the reachability oracle for planning consumers: can a
// jump taken at the given run speed clear gapDistance horizontally?
func IsGapReachable(gapDistance, horizontalSpeed float64, jump config.JumpConfig, gravity float64) bool {
	m := ComputeJumpMetrics(horizontalSpeed, jump, gravity)
	return m.Valid() && m.HorizontalRange >= gapDistance
}
