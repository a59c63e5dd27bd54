package system

import (
	"github.com/solarlune/resolv"

	"github.com/haneulkim/ascent/internal/domain/entity"
	"github.com/haneulkim/ascent/internal/infrastructure/config"
)

const collisionCellSize = 16

// Stepper advances the kinematic body through the tower each tick. It owns
// the resolv space and the body's position; every other system touches
// velocity only.
//
// Wall contacts follow the two-phase protocol: the pre-contact velocity is
// captured when the pre-move Check first sees the wall, the resolver decides
// pass-through/bounce/stop against that capture, and only then does the
// stepper separate the body and (on a plain stop) zero the velocity.
type Stepper struct {
	cfg      *config.Config
	tower    *entity.Tower
	resolver *WallBounceResolver
	tracker  *MovementTracker

	space *resolv.Space
	obj   *resolv.Object
}

// NewStepper builds the collision space for the tower and places the body's
// collision object at the spawn point.
func NewStepper(cfg *config.Config, tower *entity.Tower, body *entity.KinematicBody, resolver *WallBounceResolver, tracker *MovementTracker) *Stepper {
	s := &Stepper{
		cfg:      cfg,
		tower:    tower,
		resolver: resolver,
		tracker:  tracker,
	}

	spaceW := int(tower.Width + 2*tower.WallThick)
	spaceH := int(tower.FloorY + 2*collisionCellSize)
	s.space = resolv.NewSpace(spaceW, spaceH, collisionCellSize, collisionCellSize)

	left := resolv.NewObject(0, 0, tower.WallThick, float64(spaceH), "wall")
	right := resolv.NewObject(tower.WallThick+tower.Width, 0, tower.WallThick, float64(spaceH), "wall")
	s.space.Add(left, right)

	for i := range tower.Platforms {
		p := &tower.Platforms[i]
		obj := resolv.NewObject(p.X, p.Y, p.Width, p.Height, "platform")
		obj.Data = p
		s.space.Add(obj)
	}

	s.obj = resolv.NewObject(body.X, body.Y, body.Width, body.Height)
	s.space.Add(s.obj)

	return s
}

// ApplyConfig installs the tick's config snapshot.
func (s *Stepper) ApplyConfig(cfg *config.Config) {
	s.cfg = cfg
}

// Update advances the body by one tick: gravity, X sweep with wall
// resolution, Y sweep with one-way platform landing, then movement events.
func (s *Stepper) Update(body *entity.KinematicBody, intent entity.InputIntent, dt, now float64) {
	body.Sanitize()
	body.WasOnGround = body.OnGround

	s.applyGravity(body, dt)

	s.moveX(body, intent, dt, now)
	landed := s.moveY(body, dt)

	s.tracker.Observe(body, landed, now)
}

func (s *Stepper) applyGravity(body *entity.KinematicBody, dt float64) {
	body.VY += s.cfg.Physics.Gravity * dt
	if body.VY > s.cfg.Physics.MaxFallSpeed {
		body.VY = s.cfg.Physics.MaxFallSpeed
	}
}

func (s *Stepper) moveX(body *entity.KinematicBody, intent entity.InputIntent, dt, now float64) {
	dx := body.VX * dt
	if dx == 0 {
		return
	}

	check := s.obj.Check(dx, 0, "wall")
	if check == nil {
		body.X += dx
		s.syncObject(body)
		return
	}

	side := entity.SideRight
	if dx < 0 {
		side = entity.SideLeft
	}

	// Capture before anything below zeroes it.
	preVX, preVY := body.VX, body.VY

	if !s.resolver.PreCollision(side, now) {
		// Grace-period pass-through: opposite wall right after a bounce.
		body.X += dx
		s.syncObject(body)
		return
	}

	// Separate flush against the wall face.
	if walls := check.ObjectsByTags("wall"); len(walls) > 0 {
		body.X += check.ContactWithObject(walls[0]).X()
	}

	outcome := s.resolver.PostCollision(body, side, preVX, preVY, intent, now)
	if !outcome.Accepted {
		body.VX = 0
	}
	s.syncObject(body)
}

// moveY sweeps the vertical axis. Platforms are one-way: rising movement
// ignores them, falling movement lands only when the feet started at or
// above the platform top. Returns the platform landed on this tick, if any.
func (s *Stepper) moveY(body *entity.KinematicBody, dt float64) *entity.Platform {
	dy := body.VY * dt
	body.OnGround = false

	if dy < 0 {
		body.Y += dy
		s.syncObject(body)
		return nil
	}

	checkDist := dy + 1
	check := s.obj.Check(0, checkDist, "platform")
	if check == nil {
		body.Y += dy
		s.syncObject(body)
		return nil
	}

	feet := body.Y + body.Height
	var landed *entity.Platform
	landDY := dy

	for _, obj := range check.ObjectsByTags("platform") {
		if feet > obj.Y+1 {
			continue // already inside or below: pass through
		}
		p, ok := obj.Data.(*entity.Platform)
		if !ok {
			continue
		}
		contact := obj.Y - feet
		if contact < landDY {
			landDY = contact
			landed = p
		}
	}

	if landed != nil {
		body.Y += landDY
		body.VY = 0
		body.OnGround = true
	} else {
		body.Y += dy
	}
	s.syncObject(body)
	return landed
}

func (s *Stepper) syncObject(body *entity.KinematicBody) {
	s.obj.X = body.X
	s.obj.Y = body.Y
	s.obj.Update()
}

// Reset places the body back at spawn and clears its collision object.
func (s *Stepper) Reset(body *entity.KinematicBody) {
	body.Reset(s.tower.SpawnX, s.tower.SpawnY)
	s.syncObject(body)
}
