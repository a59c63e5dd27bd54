package combo

// Chain is the active combo: an ordered event sequence sharing one growing
// multiplier. Insertion order matters for both multiplier growth and
// style-bonus detection.
type Chain struct {
	Events      []Event
	StartedAt   float64
	LastEventAt float64
	Multiplier  float64
	Points      int

	styleFired bool
}

func newChain(now, multiplier float64) *Chain {
	return &Chain{
		Events:      make([]Event, 0, 16),
		StartedAt:   now,
		LastEventAt: now,
		Multiplier:  multiplier,
	}
}

// Length returns the number of events in the chain.
func (c *Chain) Length() int {
	return len(c.Events)
}

// HighestTier returns the highest tier among the chain's events.
func (c *Chain) HighestTier() Tier {
	highest := TierBasic
	for _, e := range c.Events {
		if e.Tier > highest {
			highest = e.Tier
		}
	}
	return highest
}

// DistinctTypes counts distinct event types, which gates the style bonus.
func (c *Chain) DistinctTypes() int {
	seen := make(map[EventType]struct{}, len(c.Events))
	for _, e := range c.Events {
		seen[e.Type] = struct{}{}
	}
	return len(seen)
}

// DerivedTier grades the whole chain: its highest event tier, upgraded one
// step when the chain is long enough.
func (c *Chain) DerivedTier(upgradeLength int) Tier {
	tier := c.HighestTier()
	if upgradeLength > 0 && c.Length() >= upgradeLength && tier < TierLegendary {
		tier++
	}
	return tier
}
