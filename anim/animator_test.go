package anim

import (
	"image"
	"testing"
)

func testClips() map[string]Clip {
	return map[string]Clip{
		"Idle": {Row: 0, Frames: 2, FPS: 4, Loop: true},
		"Walk": {Row: 1, Frames: 4, FPS: 10, Loop: true},
		"Jump": {Row: 2, Frames: 2, FPS: 10, Loop: false},
	}
}

func newTestAnimator(t *testing.T) *Animator {
	t.Helper()
	a, err := New(16, 24, testClips(), "Idle")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestNewRejectsUnknownInitial(t *testing.T) {
	if _, err := New(16, 16, testClips(), "Run"); err == nil {
		t.Fatalf("expected error for unknown clip")
	}
}

func TestUpdateAdvancesAndLoops(t *testing.T) {
	cases := []struct {
		name      string
		clip      string
		speed     float64
		dt        float64
		steps     int
		wantFrame int
	}{
		{"idle_one_frame", "Idle", 1, 0.25, 1, 1},
		{"idle_wraps", "Idle", 1, 0.25, 2, 0},
		{"walk_half_speed", "Walk", 0.5, 0.1, 2, 1},
		{"walk_double_speed", "Walk", 2, 0.1, 1, 2},
		{"jump_holds_last", "Jump", 1, 0.1, 5, 1},
		{"stopped", "Walk", 0, 0.1, 5, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := newTestAnimator(t)
			a.Play(c.clip)
			a.SetSpeed(c.speed)
			for i := 0; i < c.steps; i++ {
				a.Update(c.dt)
			}
			if a.Frame() != c.wantFrame {
				t.Fatalf("frame = %d, want %d", a.Frame(), c.wantFrame)
			}
		})
	}
}

func TestPlaySameClipKeepsFrame(t *testing.T) {
	a := newTestAnimator(t)
	a.Play("Walk")
	a.Update(0.1)
	a.Play("Walk")
	if a.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", a.Frame())
	}
	a.Play("Idle")
	if a.Frame() != 0 || a.Current() != "Idle" {
		t.Fatalf("switch: clip=%s frame=%d", a.Current(), a.Frame())
	}
	a.Play("Nope")
	if a.Current() != "Idle" {
		t.Fatalf("unknown clip changed current to %s", a.Current())
	}
}

func TestTransitionsOverrideRequest(t *testing.T) {
	a := newTestAnimator(t)
	a.AddTransition(Transition{Clip: "Jump", When: func(p Params) bool {
		return !p.Bool("isGrounded") && p.Float("yVelocity") > 0
	}})
	a.SetBool("isGrounded", true)
	a.Play("Walk")

	a.SetBool("isGrounded", false)
	a.SetFloat("yVelocity", 3)
	if a.Current() != "Jump" || a.Requested() != "Walk" {
		t.Fatalf("current=%s requested=%s", a.Current(), a.Requested())
	}

	a.SetBool("isGrounded", true)
	if a.Current() != "Walk" {
		t.Fatalf("current = %s, want Walk after landing", a.Current())
	}
}

func TestSourceRect(t *testing.T) {
	a := newTestAnimator(t)
	a.Play("Walk")
	a.Update(0.1)
	want := image.Rect(16, 24, 32, 48)
	if got := a.SourceRect(); got != want {
		t.Fatalf("rect = %v, want %v", got, want)
	}
}
