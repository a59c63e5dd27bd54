// Package combo implements the chained-combo scoring engine: qualifying
// gameplay events build a chain with a growing, tiered multiplier that can
// be banked for a bonus, broken with its unbanked points forfeited, or
// completed by timeout with its points kept.
package combo

// EventType identifies a qualifying scoring event.
type EventType int

const (
	EventBounce EventType = iota
	EventPerfectBounce
	EventSkipSmall
	EventSkipMedium
	EventSkipLarge
	EventSkipMassive
	EventAirTime
	EventSpeedBonus
	EventStyleBonus
	EventHeightChain
	EventWallChain
	EventPrecisionLanding
)

// String returns the config/display key of the event type.
func (t EventType) String() string {
	switch t {
	case EventBounce:
		return "bounce"
	case EventPerfectBounce:
		return "perfect-bounce"
	case EventSkipSmall:
		return "platform-skip-small"
	case EventSkipMedium:
		return "platform-skip-medium"
	case EventSkipLarge:
		return "platform-skip-large"
	case EventSkipMassive:
		return "platform-skip-massive"
	case EventAirTime:
		return "air-time"
	case EventSpeedBonus:
		return "speed-bonus"
	case EventStyleBonus:
		return "style-bonus"
	case EventHeightChain:
		return "height-chain"
	case EventWallChain:
		return "wall-chain"
	case EventPrecisionLanding:
		return "precision-landing"
	default:
		return "unknown"
	}
}

// Tier buckets an event by how far it exceeded the skill threshold.
type Tier int

const (
	TierBasic Tier = iota
	TierAdvanced
	TierExpert
	TierLegendary
)

// String returns the config/display key of the tier.
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierAdvanced:
		return "advanced"
	case TierExpert:
		return "expert"
	case TierLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// Event is one scored entry in a chain. Points are final (multiplier already
// applied at the time the event landed); ChainWeight is the multiplier
// increment the event contributed.
type Event struct {
	Type        EventType
	Tier        Tier
	Points      int
	ChainWeight float64
	At          float64
}
