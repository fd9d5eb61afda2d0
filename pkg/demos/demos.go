// Package demos contains small keypad applications: reactive key
// lighting, a rainbow animation, a color picker and a step sequencer.
// Each demo composes over a Controller rather than wrapping it: it
// registers handlers up front and exposes a Tick method to be called
// after Controller.Update on every loop iteration.
package demos

import (
	"time"

	"github.com/padworks/keypad/pkg/keypad"
	"github.com/padworks/keypad/pkg/rgb"
)

// Demo is one per-tick application step, run after Controller.Update.
type Demo interface {
	Tick(now time.Time)
}

// Reactive lights a key while it is pressed and darkens it on release.
type Reactive struct {
	pad *keypad.Controller

	// Color is the lit color for pressed keys.
	Color rgb.Color
}

func NewReactive(pad *keypad.Controller, c rgb.Color) *Reactive {
	return &Reactive{pad: pad, Color: c}
}

func (d *Reactive) Tick(time.Time) {
	for _, k := range d.pad.Keys() {
		if k.Pressed() {
			k.SetRGB(d.Color)
		} else {
			k.SetLED(0, 0, 0)
		}
	}
}
