package input

import "testing"

func TestSampleSnapsAxis(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"full_right", 1, 1},
		{"partial_right", 0.35, 1},
		{"partial_left", -0.01, -1},
		{"none", 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewScript(Step{Frames: 1, Axis: c.in})
			s.Advance()
			if got := Sample(s).Axis; got != c.want {
				t.Fatalf("expected axis %v, got %v", c.want, got)
			}
		})
	}
}

func TestSampleNilDeviceIsNeutral(t *testing.T) {
	if f := Sample(nil); f != (Frame{}) {
		t.Fatalf("expected neutral frame, got %+v", f)
	}
}

func TestScriptEdgesFireOnce(t *testing.T) {
	s := NewScript(
		Step{Frames: 1},
		Step{Frames: 3, Jump: true, Sprint: true},
		Step{Frames: 2},
	)
	if s.Len() != 6 {
		t.Fatalf("expected 6 frames, got %d", s.Len())
	}

	var pressed, released, sprintReleased, sprintHeld int
	for s.Advance() {
		f := Sample(s)
		if f.JumpPressed {
			pressed++
		}
		if f.JumpReleased {
			released++
		}
		if f.SprintReleased {
			sprintReleased++
		}
		if f.SprintHeld {
			sprintHeld++
		}
		if f.JumpPressed && f.JumpReleased {
			t.Fatalf("press and release must not fire on the same frame")
		}
	}
	if pressed != 1 || released != 1 || sprintReleased != 1 {
		t.Fatalf("expected one edge each, got pressed=%d released=%d sprintReleased=%d", pressed, released, sprintReleased)
	}
	if sprintHeld != 3 {
		t.Fatalf("expected sprint held for 3 frames, got %d", sprintHeld)
	}
}

func TestScriptReleasesAfterEnd(t *testing.T) {
	s := NewScript(Step{Frames: 1, Jump: true})
	if !s.Advance() {
		t.Fatalf("first advance should succeed")
	}
	if !Sample(s).JumpPressed {
		t.Fatalf("expected jump press on first frame")
	}
	if s.Advance() {
		t.Fatalf("advance past the end should report false")
	}
	if !Sample(s).JumpReleased {
		t.Fatalf("expected jump release once the script ends")
	}
}

func TestLoadScript(t *testing.T) {
	data := []byte(`
- frames: 2
  axis: 1
- frames: 1
  axis: -1
  jump: true
`)
	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 frames, got %d", s.Len())
	}
	s.Advance()
	s.Advance()
	s.Advance()
	f := Sample(s)
	if f.Axis != -1 || !f.JumpPressed {
		t.Fatalf("unexpected last frame %+v", f)
	}
}

func TestLoadScriptRejectsGarbage(t *testing.T) {
	if _, err := LoadScript([]byte("frames: [")); err == nil {
		t.Fatalf("expected error for malformed script")
	}
}

func TestLatchEdgesPerButton(t *testing.T) {
	// two keys mapped to jump, released one at a time
	keys := map[string]bool{}
	jumpHeld := func(b Button) bool { return b == ButtonJump && (keys["space"] || keys["w"]) }

	cases := []struct {
		name         string
		space, w     bool
		wantPressed  bool
		wantReleased bool
		wantHeld     bool
	}{
		{"space_down", true, false, true, false, true},
		{"w_down_too", true, true, false, false, true},
		{"space_up_w_held", false, true, false, false, true},
		{"w_up", false, false, false, true, false},
		{"idle", false, false, false, false, false},
	}

	var l Latch
	for _, c := range cases {
		keys["space"], keys["w"] = c.space, c.w
		l.Update(jumpHeld)
		if l.Pressed(ButtonJump) != c.wantPressed || l.Released(ButtonJump) != c.wantReleased || l.Held(ButtonJump) != c.wantHeld {
			t.Fatalf("%s: pressed=%v released=%v held=%v", c.name, l.Pressed(ButtonJump), l.Released(ButtonJump), l.Held(ButtonJump))
		}
		if l.Held(ButtonSprint) || l.Released(ButtonSprint) {
			t.Fatalf("%s: sprint should stay idle", c.name)
		}
	}
	if l.Held(Button(99)) {
		t.Fatalf("unknown button must read as released")
	}
}
