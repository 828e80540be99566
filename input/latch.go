package input

// Latch derives per-button edges from held state sampled once per tick. A
// button held through several physical keys only changes when the last of
// them is let go, so one key of two released is not a release.
type Latch struct {
	prev [buttonCount]bool
	cur  [buttonCount]bool
}

// Update samples held for every button and keeps the previous tick's state.
func (l *Latch) Update(held func(Button) bool) {
	l.prev = l.cur
	for i := range l.cur {
		l.cur[i] = held(Button(i))
	}
}

func (l *Latch) Pressed(b Button) bool {
	return valid(b) && l.cur[b] && !l.prev[b]
}

func (l *Latch) Released(b Button) bool {
	return valid(b) && !l.cur[b] && l.prev[b]
}

func (l *Latch) Held(b Button) bool {
	return valid(b) && l.cur[b]
}

func valid(b Button) bool { return b >= 0 && b < buttonCount }
