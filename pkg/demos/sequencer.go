package demos

import (
	"time"

	"github.com/padworks/keypad/pkg/keypad"
	"github.com/padworks/keypad/pkg/rgb"
)

// Sequencer is a step sequencer where every key is one step: tapping a
// key toggles the step, and a cursor sweeps the pad at a fixed
// interval. It holds a Controller instead of wrapping one, and runs its
// own per-tick pass after Controller.Update through public queries
// only.
type Sequencer struct {
	pad   *keypad.Controller
	steps []bool
	pos   int
	last  time.Time

	// Interval is the time between cursor advances.
	Interval time.Duration
	// StepColor marks enabled steps, CursorColor the sweep position.
	StepColor   rgb.Color
	CursorColor rgb.Color
}

func NewSequencer(pad *keypad.Controller) *Sequencer {
	s := &Sequencer{
		pad:         pad,
		steps:       make([]bool, len(pad.Keys())),
		Interval:    250 * time.Millisecond,
		StepColor:   rgb.Color{R: 255, G: 64},
		CursorColor: rgb.Color{R: 255, G: 255, B: 255},
	}
	for i := range s.steps {
		_ = pad.OnPress(i, func(k *keypad.Key) {
			s.steps[k.Index()] = !s.steps[k.Index()]
		})
	}
	return s
}

// Pos returns the current cursor position.
func (s *Sequencer) Pos() int { return s.pos }

// Step reports whether a step is enabled.
func (s *Sequencer) Step(i int) bool {
	return i >= 0 && i < len(s.steps) && s.steps[i]
}

func (s *Sequencer) Tick(now time.Time) {
	if s.last.IsZero() {
		s.last = now
	}
	for now.Sub(s.last) >= s.Interval {
		s.pos = (s.pos + 1) % len(s.steps)
		s.last = s.last.Add(s.Interval)
	}

	for i, k := range s.pad.Keys() {
		switch {
		case i == s.pos:
			k.SetRGB(s.CursorColor)
		case s.steps[i]:
			k.SetRGB(s.StepColor)
		default:
			k.SetLED(0, 0, 0)
		}
	}
}
