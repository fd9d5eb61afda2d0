package demos

import (
	"time"

	"github.com/padworks/keypad/pkg/keypad"
	"github.com/padworks/keypad/pkg/rgb"
)

// Picker uses one key as a modifier: holding it and tapping another key
// picks a hue for the whole pad. It also enables LED sleep with a short
// timeout, so the idle fade-out and wake-restore paths get exercised.
type Picker struct {
	pad      *keypad.Controller
	modifier *keypad.Key
	current  rgb.Color
}

func NewPicker(pad *keypad.Controller, modifierIndex int) (*Picker, error) {
	k, err := pad.Key(modifierIndex)
	if err != nil {
		return nil, err
	}
	k.Modifier = true

	pad.SleepEnabled = true
	pad.SleepTimeout = 5 * time.Second

	return &Picker{pad: pad, modifier: k}, nil
}

func (d *Picker) Tick(time.Time) {
	if d.modifier.Held() && d.pad.AnyPressed() {
		pressed := d.pad.Pressed()
		if len(pressed) > 1 {
			// The highest-numbered pressed key picks the hue.
			max := pressed[len(pressed)-1]
			hue := float64(max) / float64(len(d.pad.Keys())-1)
			d.current = rgb.FromHSV(hue, 1, 1)
		}
	}
	d.pad.SetAll(d.current.R, d.current.G, d.current.B)
}
