// Package anim is a small sprite-sheet animator driven by clip requests and
// named parameters.
package anim

import (
	"fmt"
	"image"
	"math"
)

// Clip is a run of frames on one row of a sheet.
type Clip struct {
	Row    int     `yaml:"row" toml:"row"`
	Frames int     `yaml:"frames" toml:"frames"`
	FPS    float64 `yaml:"fps" toml:"fps"`
	Loop   bool    `yaml:"loop" toml:"loop"`
}

// Params is the read-only view of the animator parameters handed to
// transitions.
type Params interface {
	Bool(name string) bool
	Float(name string) float64
}

// Transition overrides the requested clip while When holds. Transitions are
// checked in order and the first match wins.
type Transition struct {
	Clip string
	When func(p Params) bool
}

// Animator plays clips from a sheet laid out one clip per row.
type Animator struct {
	FrameW, FrameH int

	clips       map[string]Clip
	transitions []Transition

	requested string
	current   string
	frame     int
	elapsed   float64
	speed     float64

	bools  map[string]bool
	floats map[string]float64
}

// New returns an animator playing initial. It fails if initial is not one of
// clips.
func New(frameW, frameH int, clips map[string]Clip, initial string) (*Animator, error) {
	if _, ok := clips[initial]; !ok {
		return nil, fmt.Errorf("anim: unknown clip %q", initial)
	}
	a := &Animator{
		FrameW:    frameW,
		FrameH:    frameH,
		clips:     make(map[string]Clip, len(clips)),
		requested: initial,
		current:   initial,
		speed:     1,
		bools:     map[string]bool{},
		floats:    map[string]float64{},
	}
	for name, c := range clips {
		if c.Frames <= 0 {
			c.Frames = 1
		}
		if c.FPS <= 0 {
			c.FPS = 12
		}
		a.clips[name] = c
	}
	return a, nil
}

// AddTransition appends a parameter-driven override.
func (a *Animator) AddTransition(t Transition) {
	if _, ok := a.clips[t.Clip]; !ok || t.When == nil {
		return
	}
	a.transitions = append(a.transitions, t)
}

// Play requests a clip. Requesting the clip already requested keeps its
// frame; unknown clips are ignored.
func (a *Animator) Play(clip string) {
	if _, ok := a.clips[clip]; !ok {
		return
	}
	a.requested = clip
	a.resolve()
}

func (a *Animator) SetBool(name string, v bool) {
	a.bools[name] = v
	a.resolve()
}

func (a *Animator) SetFloat(name string, v float64) {
	a.floats[name] = v
	a.resolve()
}

// SetSpeed scales playback rate. Negative rates are treated as zero.
func (a *Animator) SetSpeed(rate float64) {
	a.speed = math.Max(0, rate)
}

func (a *Animator) Bool(name string) bool     { return a.bools[name] }
func (a *Animator) Float(name string) float64 { return a.floats[name] }
func (a *Animator) Speed() float64            { return a.speed }

// Current returns the clip being shown, after transitions.
func (a *Animator) Current() string { return a.current }

// Requested returns the clip last passed to Play.
func (a *Animator) Requested() string { return a.requested }

// Frame returns the frame index within the current clip.
func (a *Animator) Frame() int { return a.frame }

// Update advances playback by dt seconds.
func (a *Animator) Update(dt float64) {
	c := a.clips[a.current]
	if c.Frames <= 1 || dt <= 0 {
		return
	}
	a.elapsed += dt * a.speed
	step := 1 / c.FPS
	for a.elapsed >= step {
		a.elapsed -= step
		a.frame++
		if a.frame >= c.Frames {
			if c.Loop {
				a.frame = 0
			} else {
				a.frame = c.Frames - 1
			}
		}
	}
}

// Reset rewinds the current clip.
func (a *Animator) Reset() {
	a.frame = 0
	a.elapsed = 0
}

// SourceRect is the sheet region of the frame being shown.
func (a *Animator) SourceRect() image.Rectangle {
	c := a.clips[a.current]
	sx := a.frame * a.FrameW
	sy := c.Row * a.FrameH
	return image.Rect(sx, sy, sx+a.FrameW, sy+a.FrameH)
}

func (a *Animator) resolve() {
	next := a.requested
	for _, t := range a.transitions {
		if t.When(a) {
			next = t.Clip
			break
		}
	}
	if next != a.current {
		a.current = next
		a.Reset()
	}
}
