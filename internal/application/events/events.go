// Package events defines the gameplay event variants and the synchronous
// bus they travel on. Each variant is a typed struct carrying only the
// fields that event needs; listeners switch on the concrete type.
package events

import "github.com/haneulkim/ascent/internal/domain/entity"

// Event is implemented by every gameplay event variant.
type Event interface {
	isEvent()
}

// RejectReason explains why a wall contact did not become a bounce.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectCooldown
	RejectTooSlow
	RejectWrongDirection
)

// String returns the string representation of the reject reason
func (r RejectReason) String() string {
	switch r {
	case RejectCooldown:
		return "Cooldown"
	case RejectTooSlow:
		return "TooSlow"
	case RejectWrongDirection:
		return "WrongDirection"
	default:
		return "None"
	}
}

// BounceResult is emitted for every resolved wall contact, accepted or not.
// Rejections carry Reason and are treated by scoring consumers as "no event".
type BounceResult struct {
	Accepted   bool
	Side       entity.Side
	Efficiency float64
	VelocityX  float64
	VelocityY  float64
	Reason     RejectReason
	At         float64
}

// JumpExecuted is emitted when a jump converts run speed into launch speed.
type JumpExecuted struct {
	VerticalSpeed   float64
	HorizontalSpeed float64
	FlightTime      float64
	MaxHeight       float64
	HorizontalRange float64
	MomentumBoost   float64
	At              float64
}

// LandingQuality buckets how clean a touchdown was.
type LandingQuality int

const (
	LandingGood LandingQuality = iota
	LandingPrecise
	LandingBad
)

// Landed is emitted when the body touches down on a platform.
type Landed struct {
	PlatformIndex int
	Skipped       int // platforms passed over since the previous landing
	Quality       LandingQuality
	SpeedX        float64
	AirTime       float64
	At            float64
}

// TookOff is emitted when the body leaves the ground.
type TookOff struct {
	At float64
}

// HeightRecord is emitted when the climb reaches a new best height.
type HeightRecord struct {
	Height float64 // pixels above spawn, positive up
	At     float64
}

// ComboEventAdded is emitted when a qualifying event extends the chain.
type ComboEventAdded struct {
	Type        string
	Tier        string
	Points      int
	Multiplier  float64
	ChainLength int
	At          float64
}

// ComboCompleted is emitted when a chain times out with its points kept.
type ComboCompleted struct {
	Points      int
	Bonus       int
	ChainLength int
	Tier        string
	At          float64
}

// ComboBroken is emitted when a chain is lost along with its unbanked points.
type ComboBroken struct {
	Reason          string
	ForfeitedPoints int
	ChainLength     int
	At              float64
}

// ComboBanked is emitted when the player cashes out the active chain.
type ComboBanked struct {
	Amount      int
	Bonus       int
	ChainLength int
	Tier        string
	At          float64
}

func (BounceResult) isEvent()    {}
func (JumpExecuted) isEvent()    {}
func (Landed) isEvent()          {}
func (TookOff) isEvent()         {}
func (HeightRecord) isEvent()    {}
func (ComboEventAdded) isEvent() {}
func (ComboCompleted) isEvent()  {}
func (ComboBroken) isEvent()     {}
func (ComboBanked) isEvent()     {}
