package controller

// Facing is the horizontal direction the character looks at.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Locomotion is the discrete movement state derived from the flags.
type Locomotion int

const (
	Grounded Locomotion = iota
	Airborne
	WallSliding
)

func (l Locomotion) String() string {
	switch l {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case WallSliding:
		return "wall-sliding"
	default:
		return "unknown"
	}
}

// State is the per-character motion state threaded through every tick.
type State struct {
	Facing      Facing
	FacingRight bool

	Grounded     bool
	TouchingWall bool
	WallSliding  bool
	Walking      bool
	Sprinting    bool

	Speed          float64
	JumpsRemaining int
	CanJump        bool

	// WallJumpTicks counts down the physics ticks left on a wall-jump.
	WallJumpTicks int
}

func newState(cfg *Config) State {
	return State{
		Facing:         FacingRight,
		FacingRight:    true,
		Speed:          cfg.WalkSpeed,
		JumpsRemaining: cfg.ExtraJumps,
	}
}

// Locomotion reports the state with wall-sliding taking precedence.
func (s State) Locomotion() Locomotion {
	switch {
	case s.WallSliding:
		return WallSliding
	case s.Grounded:
		return Grounded
	default:
		return Airborne
	}
}

func (s *State) flip() {
	s.Facing = -s.Facing
	s.FacingRight = !s.FacingRight
}

func (s *State) spendJump() {
	if s.JumpsRemaining > 0 {
		s.JumpsRemaining--
	}
}
