// Package game runs the movement controller inside an ebiten window.
package game

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	// sprite height in world units
	spriteHeight = 1.6
)

type Options struct {
	Level  string
	Config string
	Debug  bool
	Watch  bool
}

type sceneDeps struct {
	input  input.Device
	logger *log.Logger
}

type Game struct {
	frames int
	opts   Options

	spec   config.MovementSpec
	scene  *scene
	cam    *camera.Camera
	levels []string
	levelI int

	keys    *Keyboard
	deps    sceneDeps
	sheet   *ebiten.Image
	jumpSFX *audio.Player
	watcher *config.Watcher
}

func New(opts Options) (*Game, error) {
	spec, err := config.LoadMovementSpec(opts.Config)
	if err != nil {
		return nil, err
	}

	keys := NewKeyboard()
	deps := sceneDeps{input: keys}
	if opts.Debug {
		deps.logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	g := &Game{
		opts: opts,
		spec: spec,
		keys: keys,
		deps: deps,
		cam:  camera.New(baseWidth, baseHeight, 32),
	}

	if names, err := levels.Names(levels.LevelsFS); err == nil {
		g.levels = names
	}
	if err := g.loadLevel(opts.Level); err != nil {
		return nil, err
	}

	if sheet, err := assets.LoadImage(spec.Animation.Sheet); err != nil {
		log.Printf("game: sprite sheet %s: %v, drawing boxes", spec.Animation.Sheet, err)
	} else {
		g.sheet = sheet
	}
	if p, err := assets.LoadAudioPlayer("jump.wav"); err != nil {
		log.Printf("game: jump sound: %v", err)
	} else {
		g.jumpSFX = p
	}

	if opts.Watch {
		w, err := config.NewWatcher("config")
		if err != nil {
			log.Printf("game: config watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) loadLevel(name string) error {
	s, err := newScene(name, g.spec, g.deps)
	if err != nil {
		return err
	}
	g.scene = s
	for i, n := range g.levels {
		if n == name || n == name+".json" {
			g.levelI = i
		}
	}
	g.cam.SetZoom(float64(s.level.TileSize))
	g.cam.SetWorldBounds(float64(s.level.Width), float64(s.level.Height))
	p := s.char.Body.Position()
	g.cam.SnapTo(p.X, p.Y)
	return nil
}

// Close releases the config watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.opts.Debug = !g.opts.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && len(g.levels) > 0 {
		next := g.levels[(g.levelI+1)%len(g.levels)]
		if err := g.loadLevel(next); err != nil {
			log.Printf("game: %v", err)
		}
	}
	g.pollReload()

	g.keys.Update()
	if g.scene.tick(1.0/float64(ebiten.TPS())) && g.jumpSFX != nil {
		_ = g.jumpSFX.Rewind()
		g.jumpSFX.Play()
	}

	p := g.scene.char.Body.Position()
	g.cam.Update(p.X, p.Y)
	return nil
}

// pollReload applies config files changed on disk without blocking.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		spec, err := config.LoadMovementSpec(path)
		if err != nil {
			log.Printf("game: reload %s: %v", path, err)
			return
		}
		cfg, err := spec.Config()
		if err != nil {
			log.Printf("game: reload %s: %v", path, err)
			return
		}
		g.spec = spec
		g.scene.ctrl.Reconfigure(cfg)
		log.Printf("config: reloaded %s", path)
	case err, ok := <-g.watcher.Errors:
		if ok && !errors.Is(err, os.ErrClosed) {
			log.Printf("game: config watch: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.drawTiles(screen)
	g.drawCharacter(screen)

	if g.opts.Debug {
		g.scene.world.DebugDraw(&chipmunkDrawer{screen: screen, cam: g.cam})
		g.scene.ctrl.DrawGizmos(NewOverlay(screen, g.cam))
		st := g.scene.ctrl.State()
		v := g.scene.char.Body.Velocity()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  level: %s\n%s facing=%s sprint=%v jumps=%d can=%v\nv=(%.2f, %.2f) clip=%s",
			ebiten.ActualFPS(), g.scene.level.Name,
			st.Locomotion(), st.Facing, st.Sprinting, st.JumpsRemaining, st.CanJump,
			v.X, v.Y, g.scene.animator.Current()))
	}
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	zoom := g.cam.Zoom()
	for _, r := range g.scene.rects {
		x, y := g.cam.WorldToScreen(r.L, r.T)
		w, h := r.W()*zoom, r.H()*zoom
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colornames.Slategray, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colornames.Lightslategray, false)
	}
}

func (g *Game) drawCharacter(screen *ebiten.Image) {
	body := g.scene.char.Body
	p := body.Position()
	bw, bh := body.Size()
	zoom := g.cam.Zoom()

	if g.sheet == nil {
		x, y := g.cam.WorldToScreen(p.X-bw/2, p.Y+bh/2)
		vector.FillRect(screen, float32(x), float32(y), float32(bw*zoom), float32(bh*zoom), colornames.Crimson, false)
		return
	}

	src := g.scene.animator.SourceRect()
	frame, ok := g.sheet.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	scale := spriteHeight * zoom / float64(src.Dy())
	fw := float64(src.Dx()) * scale

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(scale, scale)
	if g.scene.char.Transform.Mirrored() {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(fw, 0)
	}
	// feet on the bottom of the collision box
	x, y := g.cam.WorldToScreen(p.X, p.Y-bh/2)
	op.GeoM.Translate(x-fw/2, y-spriteHeight*zoom)
	screen.DrawImage(frame, op)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
