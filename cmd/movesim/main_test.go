package main

import (
	"io"
	"log"
	"testing"
)

func TestSimulateBuiltInScripts(t *testing.T) {
	cases := []struct {
		name      string
		script    string
		query     string
		wantSlide bool
	}{
		{"walk_jump_cp", "walk_jump.yaml", "cp", false},
		{"walk_jump_resolv", "walk_jump.yaml", "resolv", false},
		{"wall_cp", "wall.yaml", "cp", true},
		{"wall_resolv", "wall.yaml", "resolv", true},
		{"sprint_cp", "sprint.yaml", "cp", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sum, err := simulate(options{
				level:  "arena",
				config: "player.yaml",
				script: c.script,
				query:  c.query,
				hz:     60,
			}, log.New(io.Discard, "", 0))
			if err != nil {
				t.Fatalf("simulate: %v", err)
			}
			if sum.frames == 0 || sum.airFrames == 0 {
				t.Fatalf("summary %+v, want frames in the air", sum)
			}
			if !sum.final.Grounded {
				t.Fatalf("final state %+v, want grounded", sum.final)
			}
			if sum.respawns != 0 {
				t.Fatalf("respawned %d times", sum.respawns)
			}
			if got := sum.slideFrames > 0; got != c.wantSlide {
				t.Fatalf("slide frames %d, want slide=%v", sum.slideFrames, c.wantSlide)
			}
		})
	}
}

func TestSimulateRejectsBadOptions(t *testing.T) {
	base := options{level: "arena", config: "player.yaml", script: "walk_jump.yaml", query: "cp", hz: 60}
	cases := []struct {
		name   string
		mutate func(o *options)
	}{
		{"query", func(o *options) { o.query = "box2d" }},
		{"hz", func(o *options) { o.hz = 0 }},
		{"script", func(o *options) { o.script = "missing.yaml" }},
		{"level", func(o *options) { o.level = "missing" }},
		{"config", func(o *options) { o.config = "missing.yaml" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := base
			c.mutate(&o)
			if _, err := simulate(o, log.New(io.Discard, "", 0)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
