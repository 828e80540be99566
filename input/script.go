package input

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Step holds a set of inputs for a number of consecutive frames.
type Step struct {
	Frames int     `yaml:"frames"`
	Axis   float64 `yaml:"axis"`
	Jump   bool    `yaml:"jump"`
	Sprint bool    `yaml:"sprint"`
}

type held struct {
	axis   float64
	jump   bool
	sprint bool
}

func (h held) button(b Button) bool {
	switch b {
	case ButtonJump:
		return h.jump
	case ButtonSprint:
		return h.sprint
	default:
		return false
	}
}

// Script replays a recorded timeline of held inputs. Edges are derived from
// the transition between the previous and the current frame, the same way a
// polled keyboard reports them.
type Script struct {
	frames []held
	pos    int
	prev   held
	cur    held
}

// NewScript expands steps into a per-frame timeline.
func NewScript(steps ...Step) *Script {
	s := &Script{}
	for _, st := range steps {
		n := st.Frames
		if n <= 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			s.frames = append(s.frames, held{axis: st.Axis, jump: st.Jump, sprint: st.Sprint})
		}
	}
	return s
}

// LoadScript decodes a YAML list of steps.
func LoadScript(data []byte) (*Script, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("input: unmarshal script: %w", err)
	}
	return NewScript(steps...), nil
}

// Advance moves to the next frame. Past the end of the timeline every input
// reads as released; Advance then reports false.
func (s *Script) Advance() bool {
	s.prev = s.cur
	if s.pos >= len(s.frames) {
		s.cur = held{}
		return false
	}
	s.cur = s.frames[s.pos]
	s.pos++
	return true
}

// Len returns the number of frames in the timeline.
func (s *Script) Len() int { return len(s.frames) }

func (s *Script) Axis() float64 { return s.cur.axis }

func (s *Script) Pressed(b Button) bool { return s.cur.button(b) && !s.prev.button(b) }

func (s *Script) Released(b Button) bool { return !s.cur.button(b) && s.prev.button(b) }

func (s *Script) Held(b Button) bool { return s.cur.button(b) }
