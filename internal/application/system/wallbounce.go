package system

import (
	"math"

	"github.com/haneulkim/ascent/internal/application/events"
	"github.com/haneulkim/ascent/internal/domain/entity"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

// BounceOutcome is the result of resolving one wall contact.
type BounceOutcome struct {
	Accepted   bool
	Efficiency float64
	VelocityX  float64
	VelocityY  float64
	Reason     events.RejectReason
}

// WallBounceResolver decides whether a wall contact turns into a
// momentum-preserving bounce and computes the redirected velocity.
//
// The contact protocol is two-phase and order-sensitive: PreCollision must
// be consulted with the velocity captured BEFORE collision separation zeroes
// it, and the same captured velocity must be handed to PostCollision.
// Resolving against a post-separation velocity degenerates every bounce to
// zero-speed input.
type WallBounceResolver struct {
	cfg *config.Config
	bus *events.Bus

	lastBounceAt float64
	lastSide     entity.Side
}

// NewWallBounceResolver creates a resolver publishing bounce results on bus.
func NewWallBounceResolver(cfg *config.Config, bus *events.Bus) *WallBounceResolver {
	return &WallBounceResolver{
		cfg:      cfg,
		bus:      bus,
		lastSide: entity.SideNone,
	}
}

// ApplyConfig installs the tick's config snapshot.
func (r *WallBounceResolver) ApplyConfig(cfg *config.Config) {
	r.cfg = cfg
}

// PreCollision reports whether the contact should be resolved at all.
// Returning false means the body passes through the wall: a contact on the
// opposite side of the last bounce inside the grace period is skipped
// entirely, consuming no cooldown and emitting nothing. This is what keeps
// a fast climber from ping-ponging to a standstill in a narrow corridor.
func (r *WallBounceResolver) PreCollision(side entity.Side, now float64) bool {
	if r.lastSide == entity.SideNone || r.lastSide == side {
		return true
	}
	return now-r.lastBounceAt >= r.cfg.Wall.GracePeriod
}

// PostCollision resolves a wall contact against the pre-contact velocity.
// Rejections are normal branch outcomes, not errors: the resolver state is
// untouched and the published BounceResult carries the reason.
func (r *WallBounceResolver) PostCollision(body *entity.KinematicBody, side entity.Side, preVX, preVY float64, intent entity.InputIntent, now float64) BounceOutcome {
	wall := r.cfg.Wall

	if r.lastSide != entity.SideNone && now-r.lastBounceAt < wall.Cooldown {
		return r.reject(side, events.RejectCooldown, now)
	}
	speed := math.Abs(preVX)
	if speed < wall.MinSpeedForBounce {
		return r.reject(side, events.RejectTooSlow, now)
	}
	// The body must be moving into the wall it touched.
	if (side == entity.SideLeft && preVX >= 0) || (side == entity.SideRight && preVX <= 0) {
		return r.reject(side, events.RejectWrongDirection, now)
	}

	efficiency := wall.NeutralEfficiency
	switch {
	case intent.Toward(side):
		efficiency = wall.FightEfficiency
	case intent.Away(side):
		efficiency = wall.AssistEfficiency
	}

	// Horizontal: mirror away from the wall, scaled by efficiency but never
	// below the minimum kick-away speed.
	newVX := math.Max(wall.MinBounceAway, speed*efficiency)
	if side == entity.SideRight {
		newVX = -newVX
	}
	newVX = clamp(newVX, -wall.MaxBounceSpeed, wall.MaxBounceSpeed)

	// Vertical: falling momentum partially converts into rise, existing rise
	// is amplified, and a fraction of horizontal speed is added as upward
	// kick. The change (not the absolute target) scales with efficiency.
	var target float64
	if preVY > 0 {
		target = -preVY * wall.FalloverBoostFraction
	} else {
		target = preVY * wall.RiseAmplifier
	}
	target -= speed * wall.SpeedKickFraction
	newVY := preVY + (target-preVY)*efficiency
	if newVY < -wall.MaxRiseSpeed {
		newVY = -wall.MaxRiseSpeed
	}

	body.VX = newVX
	body.VY = newVY
	// Nudge off the wall so the next tick doesn't re-penetrate.
	if side == entity.SideLeft {
		body.X += wall.WallNudge
	} else {
		body.X -= wall.WallNudge
	}

	r.lastBounceAt = now
	r.lastSide = side

	r.bus.Publish(events.BounceResult{
		Accepted:   true,
		Side:       side,
		Efficiency: efficiency,
		VelocityX:  newVX,
		VelocityY:  newVY,
		At:         now,
	})

	return BounceOutcome{
		Accepted:   true,
		Efficiency: efficiency,
		VelocityX:  newVX,
		VelocityY:  newVY,
	}
}

// LastSide returns the side of the most recent accepted bounce.
func (r *WallBounceResolver) LastSide() entity.Side {
	return r.lastSide
}

// Reset zeroes the per-playthrough bounce bookkeeping.
func (r *WallBounceResolver) Reset() {
	r.lastBounceAt = 0
	r.lastSide = entity.SideNone
}

func (r *WallBounceResolver) reject(side entity.Side, reason events.RejectReason, now float64) BounceOutcome {
	r.bus.Publish(events.BounceResult{
		Accepted: false,
		Side:     side,
		Reason:   reason,
		At:       now,
	})
	return BounceOutcome{Reason: reason}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
