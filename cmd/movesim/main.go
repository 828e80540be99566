// Command movesim runs the movement controller headless against a level,
// driven by a recorded input script, and prints a per-frame trace.
package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
)

//go:embed scripts/*.yaml
var scriptsFS embed.FS

type options struct {
	level  string
	config string
	script string
	query  string
	hz     float64
	quiet  bool
}

type summary struct {
	frames      int
	final       controller.State
	pos         cp.Vector
	maxY        float64
	slideFrames int
	airFrames   int
	respawns    int
}

func main() {
	var opts options
	flag.StringVar(&opts.level, "level", "arena", "level name in levels/")
	flag.StringVar(&opts.config, "config", "player.yaml", "movement config in config/ (.yaml or .toml)")
	flag.StringVar(&opts.script, "script", "walk_jump.yaml", "input script: a file path or a built-in script name")
	flag.StringVar(&opts.query, "query", "cp", "probe backend: cp (chipmunk space) or resolv (tile grid)")
	flag.Float64Var(&opts.hz, "hz", 60, "tick rate")
	flag.BoolVar(&opts.quiet, "q", false, "only print the summary")
	flag.Parse()

	trace := log.New(os.Stdout, "", 0)
	if opts.quiet {
		trace.SetOutput(io.Discard)
	}

	sum, err := simulate(opts, trace)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("frames=%d final=%s pos=(%.2f, %.2f) apex=%.2f air=%d slide=%d respawns=%d\n",
		sum.frames, sum.final.Locomotion(), sum.pos.X, sum.pos.Y, sum.maxY, sum.airFrames, sum.slideFrames, sum.respawns)
}

func loadScript(name string) (*input.Script, error) {
	data, err := os.ReadFile(name)
	if errors.Is(err, os.ErrNotExist) {
		data, err = scriptsFS.ReadFile(path.Join("scripts", name))
	}
	if err != nil {
		return nil, fmt.Errorf("movesim: script %s: %w", name, err)
	}
	return input.LoadScript(data)
}

func simulate(opts options, trace *log.Logger) (summary, error) {
	var sum summary
	if opts.hz <= 0 {
		return sum, fmt.Errorf("movesim: tick rate must be positive, got %v", opts.hz)
	}

	lvl, err := levels.Load(opts.level)
	if err != nil {
		return sum, err
	}
	spec, err := config.LoadMovementSpec(opts.config)
	if err != nil {
		return sum, err
	}
	cfg, err := spec.Config()
	if err != nil {
		return sum, err
	}
	script, err := loadScript(opts.script)
	if err != nil {
		return sum, err
	}
	animator, err := anim.New(spec.Animation.FrameW, spec.Animation.FrameH, spec.Animation.Clips, spec.Animation.Initial)
	if err != nil {
		return sum, err
	}

	world := physics.NewWorldFromLevel(lvl)
	x, y := lvl.Spawn()
	char := world.SpawnCharacter(cp.Vector{X: x, Y: y})
	deps := char.Deps(world, animator)
	deps.Input = script
	deps.Logger = trace

	switch opts.query {
	case "cp":
	case "resolv":
		deps.Collision = levels.NewGrid(lvl)
	default:
		return sum, fmt.Errorf("movesim: unknown query backend %q", opts.query)
	}

	ctrl, err := controller.New(cfg, deps)
	if err != nil {
		return sum, err
	}

	dt := 1 / opts.hz
	sum.maxY = char.Body.Position().Y
	for script.Advance() {
		ctrl.OnInputTick()
		ctrl.OnPhysicsTick()
		world.Step(dt)
		animator.Update(dt)
		if char.Respawn(-5) {
			ctrl.Resync()
			sum.respawns++
		}

		st := ctrl.State()
		p, v := char.Body.Position(), char.Body.Velocity()
		sum.frames++
		sum.maxY = max(sum.maxY, p.Y)
		if !st.Grounded {
			sum.airFrames++
		}
		if st.WallSliding {
			sum.slideFrames++
		}
		trace.Printf("%4d %-12s pos=(%6.2f,%6.2f) vel=(%6.2f,%6.2f) facing=%-5s sprint=%-5v jumps=%d clip=%s",
			sum.frames, st.Locomotion(), p.X, p.Y, v.X, v.Y, st.Facing, st.Sprinting, st.JumpsRemaining, animator.Current())
	}
	sum.final = ctrl.State()
	sum.pos = char.Body.Position()
	return sum, nil
}
