package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/controller"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid movement spec")

// LoadSpec loads name through Load and decodes it over the zero value of T.
func LoadSpec[T any](name string) (T, error) {
	var spec T
	return spec, loadInto(name, &spec)
}

// LoadMovementSpec loads a movement spec. Keys missing from the file keep
// their default values.
func LoadMovementSpec(name string) (MovementSpec, error) {
	spec := DefaultMovementSpec()
	if err := loadInto(name, &spec); err != nil {
		return MovementSpec{}, err
	}
	return spec, nil
}

func loadInto(name string, out any) error {
	data, err := Load(name)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", name, err)
	}
	return Decode(name, data, out)
}

// Decode unmarshals data as YAML or TOML depending on the extension of name.
func Decode(name string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(out)
		if err != nil {
			return fmt.Errorf("config: unmarshal %s: %w", name, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			log.Printf("config: %s: ignoring unknown keys %v", name, undecoded)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: unmarshal %s: %w", name, err)
		}
	default:
		return fmt.Errorf("config: %s: unsupported format", name)
	}
	return nil
}

type VectorSpec struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

type AnimationSpec struct {
	Sheet   string               `yaml:"sheet" toml:"sheet"`
	FrameW  int                  `yaml:"frame_w" toml:"frame_w"`
	FrameH  int                  `yaml:"frame_h" toml:"frame_h"`
	Initial string               `yaml:"initial" toml:"initial"`
	Clips   map[string]anim.Clip `yaml:"clips" toml:"clips"`
}

// MovementSpec is the on-disk form of controller.Config plus the sprite
// animation used by the playground.
type MovementSpec struct {
	Name string `yaml:"name" toml:"name"`

	WalkSpeed       float64 `yaml:"walk_speed" toml:"walk_speed"`
	SprintSpeed     float64 `yaml:"sprint_speed" toml:"sprint_speed"`
	WalkAnimSpeed   float64 `yaml:"walk_anim_speed" toml:"walk_anim_speed"`
	SprintAnimSpeed float64 `yaml:"sprint_anim_speed" toml:"sprint_anim_speed"`

	JumpForce                    float64 `yaml:"jump_force" toml:"jump_force"`
	AirMovementForce             float64 `yaml:"air_movement_force" toml:"air_movement_force"`
	AirDragMultiplier            float64 `yaml:"air_drag_multiplier" toml:"air_drag_multiplier"`
	VariableJumpHeightMultiplier float64 `yaml:"variable_jump_height_multiplier" toml:"variable_jump_height_multiplier"`
	ExtraJumps                   int     `yaml:"extra_jumps" toml:"extra_jumps"`
	MultiJump                    bool    `yaml:"multi_jump" toml:"multi_jump"`

	WallSlideSpeed    float64    `yaml:"wall_slide_speed" toml:"wall_slide_speed"`
	WallHopForce      float64    `yaml:"wall_hop_force" toml:"wall_hop_force"`
	WallJumpForce     float64    `yaml:"wall_jump_force" toml:"wall_jump_force"`
	WallHopDirection  VectorSpec `yaml:"wall_hop_direction" toml:"wall_hop_direction"`
	WallJumpDirection VectorSpec `yaml:"wall_jump_direction" toml:"wall_jump_direction"`
	WallJumpTicks     int        `yaml:"wall_jump_ticks" toml:"wall_jump_ticks"`

	GroundCheckRadius float64 `yaml:"ground_check_radius" toml:"ground_check_radius"`
	WallCheckDistance float64 `yaml:"wall_check_distance" toml:"wall_check_distance"`
	WalkDeadZone      float64 `yaml:"walk_dead_zone" toml:"walk_dead_zone"`

	Animation AnimationSpec `yaml:"animation" toml:"animation"`
}

// DefaultMovementSpec mirrors controller.DefaultConfig.
func DefaultMovementSpec() MovementSpec {
	c := controller.DefaultConfig()
	return MovementSpec{
		Name:                         "default",
		WalkSpeed:                    c.WalkSpeed,
		SprintSpeed:                  c.SprintSpeed,
		WalkAnimSpeed:                c.WalkAnimSpeed,
		SprintAnimSpeed:              c.SprintAnimSpeed,
		JumpForce:                    c.JumpForce,
		AirMovementForce:             c.AirMovementForce,
		AirDragMultiplier:            c.AirDragMultiplier,
		VariableJumpHeightMultiplier: c.VariableJumpHeightMultiplier,
		ExtraJumps:                   c.ExtraJumps,
		MultiJump:                    c.MultiJump,
		WallSlideSpeed:               c.WallSlideSpeed,
		WallHopForce:                 c.WallHopForce,
		WallJumpForce:                c.WallJumpForce,
		WallHopDirection:             VectorSpec{X: c.WallHopDirection.X, Y: c.WallHopDirection.Y},
		WallJumpDirection:            VectorSpec{X: c.WallJumpDirection.X, Y: c.WallJumpDirection.Y},
		WallJumpTicks:                c.WallJumpTicks,
		GroundCheckRadius:            c.GroundCheckRadius,
		WallCheckDistance:            c.WallCheckDistance,
		WalkDeadZone:                 c.WalkDeadZone,
		Animation: AnimationSpec{
			Sheet:   "player-sheet.png",
			FrameW:  32,
			FrameH:  32,
			Initial: controller.ClipIdle,
			Clips: map[string]anim.Clip{
				controller.ClipIdle: {Row: 0, Frames: 4, FPS: 6, Loop: true},
				controller.ClipWalk: {Row: 1, Frames: 4, FPS: 10, Loop: true},
				"Jump":              {Row: 2, Frames: 2, FPS: 8},
				"Fall":              {Row: 3, Frames: 2, FPS: 8, Loop: true},
				"WallSlide":         {Row: 4, Frames: 2, FPS: 6, Loop: true},
			},
		},
	}
}

// Validate checks the ranges the controller relies on.
func (s MovementSpec) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{s.WalkSpeed > 0, "walk_speed must be positive"},
		{s.SprintSpeed > 0, "sprint_speed must be positive"},
		{s.WalkAnimSpeed >= 0 && s.SprintAnimSpeed >= 0, "anim speeds must not be negative"},
		{s.JumpForce > 0, "jump_force must be positive"},
		{s.AirMovementForce >= 0, "air_movement_force must not be negative"},
		{s.AirDragMultiplier > 0 && s.AirDragMultiplier <= 1, "air_drag_multiplier must be in (0,1]"},
		{s.VariableJumpHeightMultiplier >= 0 && s.VariableJumpHeightMultiplier <= 1, "variable_jump_height_multiplier must be in [0,1]"},
		{s.ExtraJumps >= 0, "extra_jumps must not be negative"},
		{s.WallSlideSpeed >= 0, "wall_slide_speed must not be negative"},
		{s.WallJumpTicks >= 0, "wall_jump_ticks must not be negative"},
		{s.GroundCheckRadius > 0, "ground_check_radius must be positive"},
		{s.WallCheckDistance > 0, "wall_check_distance must be positive"},
		{s.WalkDeadZone >= 0, "walk_dead_zone must not be negative"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s: %s", ErrInvalid, s.Name, c.msg)
		}
	}
	return nil
}

// Config validates s and converts it for the controller.
func (s MovementSpec) Config() (controller.Config, error) {
	if err := s.Validate(); err != nil {
		return controller.Config{}, err
	}
	return controller.Config{
		WalkSpeed:                    s.WalkSpeed,
		SprintSpeed:                  s.SprintSpeed,
		WalkAnimSpeed:                s.WalkAnimSpeed,
		SprintAnimSpeed:              s.SprintAnimSpeed,
		JumpForce:                    s.JumpForce,
		AirMovementForce:             s.AirMovementForce,
		AirDragMultiplier:            s.AirDragMultiplier,
		VariableJumpHeightMultiplier: s.VariableJumpHeightMultiplier,
		ExtraJumps:                   s.ExtraJumps,
		MultiJump:                    s.MultiJump,
		WallSlideSpeed:               s.WallSlideSpeed,
		WallHopForce:                 s.WallHopForce,
		WallJumpForce:                s.WallJumpForce,
		WallHopDirection:             cp.Vector{X: s.WallHopDirection.X, Y: s.WallHopDirection.Y},
		WallJumpDirection:            cp.Vector{X: s.WallJumpDirection.X, Y: s.WallJumpDirection.Y},
		WallJumpTicks:                s.WallJumpTicks,
		GroundCheckRadius:            s.GroundCheckRadius,
		WallCheckDistance:            s.WallCheckDistance,
		WalkDeadZone:                 s.WalkDeadZone,
		GroundMask:                   controller.LayerGround,
	}, nil
}
