package game

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
)

// How far below the level floor a character may fall before it respawns.
const fallMargin = 5.0

// scene is one loaded level with its character.
type scene struct {
	level    *levels.Level
	rects    []levels.Rect
	world    *physics.World
	char     *physics.Character
	animator *anim.Animator
	ctrl     *controller.Controller
}

func newScene(levelName string, spec config.MovementSpec, deps sceneDeps) (*scene, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("game: load level %s: %w", levelName, err)
	}
	cfg, err := spec.Config()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	animator, err := newAnimator(spec.Animation)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	world := physics.NewWorldFromLevel(lvl)
	x, y := lvl.Spawn()
	char := world.SpawnCharacter(cp.Vector{X: x, Y: y})

	cdeps := char.Deps(world, animator)
	cdeps.Input = deps.input
	cdeps.Logger = deps.logger
	ctrl, err := controller.New(cfg, cdeps)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	log.Printf("game: level %s loaded, spawn (%.1f, %.1f)", lvl.Name, x, y)
	return &scene{level: lvl, rects: lvl.SolidRects(), world: world, char: char, animator: animator, ctrl: ctrl}, nil
}

// newAnimator builds the sprite animator. Airborne and wall-slide clips are
// picked from the controller's parameters; the controller only requests the
// grounded clips.
func newAnimator(spec config.AnimationSpec) (*anim.Animator, error) {
	a, err := anim.New(spec.FrameW, spec.FrameH, spec.Clips, spec.Initial)
	if err != nil {
		return nil, err
	}
	a.AddTransition(anim.Transition{Clip: "WallSlide", When: func(p anim.Params) bool {
		return p.Bool(controller.ParamWallSliding)
	}})
	a.AddTransition(anim.Transition{Clip: "Jump", When: func(p anim.Params) bool {
		return !p.Bool(controller.ParamGrounded) && p.Float(controller.ParamYVelocity) > 0
	}})
	a.AddTransition(anim.Transition{Clip: "Fall", When: func(p anim.Params) bool {
		return !p.Bool(controller.ParamGrounded)
	}})
	return a, nil
}

// tick runs one frame: input, physics resolution, integration, animation.
// It reports whether a jump fired.
func (s *scene) tick(dt float64) bool {
	vy := s.char.Body.Velocity().Y
	s.ctrl.OnInputTick()
	jumped := s.ctrl.Frame().JumpPressed && s.char.Body.Velocity().Y > vy
	s.ctrl.OnPhysicsTick()
	s.world.Step(dt)
	s.animator.Update(dt)

	if s.char.Respawn(-fallMargin) {
		s.ctrl.Resync()
		log.Printf("game: character lost, respawned at (%.1f, %.1f)", s.char.Spawn.X, s.char.Spawn.Y)
	}
	return jumped
}

// reset puts the character back at its spawn.
func (s *scene) reset() {
	s.char.Body.Reset(s.char.Spawn)
	s.ctrl.Resync()
}
