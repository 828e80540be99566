// Command spsa previews the sprite-sheet clips of a movement config.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/config"
)

const (
	screenSize = 512
	scale      = 8
)

type demoGame struct {
	sheet    *ebiten.Image
	animator *anim.Animator
	clips    []string
	current  int
	speed    float64
}

func (g *demoGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.current = (g.current + 1) % len(g.clips)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.current = (g.current + len(g.clips) - 1) % len(g.clips)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.speed += 0.25
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.speed = max(0, g.speed-0.25)
	}
	g.animator.Play(g.clips[g.current])
	g.animator.SetSpeed(g.speed)
	g.animator.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	src := g.animator.SourceRect()
	frame := g.sheet.SubImage(src).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(screenSize-src.Dx()*scale)/2, float64(screenSize-src.Dy()*scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s frame %d  speed %.2f\n<- -> clip, up/down speed",
		g.animator.Current(), g.animator.Frame(), g.speed))
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	configName := flag.String("config", "player.yaml", "movement config whose animation section to preview")
	flag.Parse()

	spec, err := config.LoadMovementSpec(*configName)
	if err != nil {
		log.Fatal(err)
	}
	sheet, err := assets.LoadImage(spec.Animation.Sheet)
	if err != nil {
		log.Fatal(err)
	}
	animator, err := anim.New(spec.Animation.FrameW, spec.Animation.FrameH, spec.Animation.Clips, spec.Animation.Initial)
	if err != nil {
		log.Fatal(err)
	}
	clips := make([]string, 0, len(spec.Animation.Clips))
	for name := range spec.Animation.Clips {
		clips = append(clips, name)
	}
	sort.Strings(clips)

	g := &demoGame{sheet: sheet, animator: animator, clips: clips, speed: 1}
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("sprite sheet clips")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
