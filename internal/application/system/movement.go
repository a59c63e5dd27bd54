package system

import (
	"github.com/haneulkim/ascent/internal/application/events"
	"github.com/haneulkim/ascent/internal/domain/entity"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

// InputState is the per-tick input snapshot consumed by the simulation.
// It is produced either by the live input reader or by a replayer.
type InputState struct {
	Left         bool
	Right        bool
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Bank         bool
}

// Intent returns the directional intent snapshot used for bounce scoring.
func (i InputState) Intent() entity.InputIntent {
	return entity.InputIntent{Left: i.Left, Right: i.Right}
}

// MovementSystem turns input into horizontal velocity and executes jumps
// through the momentum model. Coyote time and jump buffering make takeoff
// forgiving without changing the jump math itself.
type MovementSystem struct {
	cfg *config.Config
	bus *events.Bus

	coyoteTimer     float64
	jumpBufferTimer float64
}

// NewMovementSystem creates a movement system publishing jumps on bus.
func NewMovementSystem(cfg *config.Config, bus *events.Bus) *MovementSystem {
	return &MovementSystem{cfg: cfg, bus: bus}
}

// ApplyConfig installs the tick's config snapshot.
func (s *MovementSystem) ApplyConfig(cfg *config.Config) {
	s.cfg = cfg
}

// Update applies one tick of input to the body's velocity.
func (s *MovementSystem) Update(body *entity.KinematicBody, input InputState, dt, now float64) {
	s.updateTimers(body, input, dt)
	s.handleMovement(body, input, dt)
	s.handleJump(body, input, now)
}

func (s *MovementSystem) updateTimers(body *entity.KinematicBody, input InputState, dt float64) {
	if body.OnGround {
		s.coyoteTimer = s.cfg.Jump.CoyoteTime
	} else if s.coyoteTimer > 0 {
		s.coyoteTimer -= dt
	}

	if input.JumpPressed {
		s.jumpBufferTimer = s.cfg.Jump.JumpBuffer
	} else if s.jumpBufferTimer > 0 {
		s.jumpBufferTimer -= dt
	}
}

func (s *MovementSystem) handleMovement(body *entity.KinematicBody, input InputState, dt float64) {
	mv := s.cfg.Movement

	targetVX := 0.0
	if input.Left {
		targetVX = -mv.MaxSpeed
		body.FacingRight = false
	}
	if input.Right {
		targetVX = mv.MaxSpeed
		body.FacingRight = true
	}

	if targetVX != 0 {
		accel := mv.Acceleration
		if !body.OnGround {
			accel *= mv.AirControl
		}
		if body.VX < targetVX {
			body.VX += accel * dt
			if body.VX > targetVX {
				body.VX = targetVX
			}
		} else if body.VX > targetVX {
			body.VX -= accel * dt
			if body.VX < targetVX {
				body.VX = targetVX
			}
		}
		return
	}

	// No input: drag toward zero, grounded only. Airborne speed is the
	// resource the whole momentum game is built on.
	if !body.OnGround {
		return
	}
	decel := mv.Deceleration * dt
	if body.VX > 0 {
		body.VX -= decel
		if body.VX < 0 {
			body.VX = 0
		}
	} else if body.VX < 0 {
		body.VX += decel
		if body.VX > 0 {
			body.VX = 0
		}
	}
}

func (s *MovementSystem) handleJump(body *entity.KinematicBody, input InputState, now float64) {
	canJump := body.OnGround || s.coyoteTimer > 0
	if !canJump || s.jumpBufferTimer <= 0 {
		return
	}

	m := ComputeJumpMetrics(body.VX, s.cfg.Jump, s.cfg.Physics.Gravity)
	if !m.Valid() {
		// Malformed metrics never cross into the tick; skip the jump.
		return
	}

	// OnGround stays set here: the stepper clears it this same tick when
	// the body rises, and the tracker needs to see the transition to emit
	// the takeoff.
	body.VY = -m.VerticalSpeed
	body.VX = m.HorizontalSpeedAfterJump
	s.coyoteTimer = 0
	s.jumpBufferTimer = 0

	s.bus.Publish(events.JumpExecuted{
		VerticalSpeed:   m.VerticalSpeed,
		HorizontalSpeed: m.HorizontalSpeedAfterJump,
		FlightTime:      m.FlightTime,
		MaxHeight:       m.MaxHeight,
		HorizontalRange: m.HorizontalRange,
		MomentumBoost:   m.MomentumBoost,
		At:              now,
	})
}

// Reset clears the takeoff timers for a fresh run.
func (s *MovementSystem) Reset() {
	s.coyoteTimer = 0
	s.jumpBufferTimer = 0
}
