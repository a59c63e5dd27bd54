package entity

// Side identifies which wall a contact happened on.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// Opposite returns the facing wall, or SideNone for SideNone.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// InputIntent is the directional input snapshot at the moment of a wall
// contact. Only the horizontal axis matters for bounce efficiency.
type InputIntent struct {
	Left  bool
	Right bool
}

// Toward reports whether the player is pressing into the given wall.
func (i InputIntent) Toward(side Side) bool {
	return (side == SideLeft && i.Left) || (side == SideRight && i.Right)
}

// Away reports whether the player is pressing away from the given wall.
func (i InputIntent) Away(side Side) bool {
	return (side == SideLeft && i.Right) || (side == SideRight && i.Left)
}

// Platform is one landable ledge of the tower. Index increases with height
// (platform 0 is the floor), which is what platform-skip detection counts.
type Platform struct {
	Index  int
	X, Y   float64
	Width  float64
	Height float64
}

// Tower is the static demo layout: two side walls and a ladder of platforms.
// Layout generation itself is an external concern; the core only needs the
// geometry to collide against.
type Tower struct {
	Width     float64 // inner corridor width, wall to wall
	WallThick float64
	FloorY    float64
	Platforms []Platform
	SpawnX    float64
	SpawnY    float64
}
