package demos

import (
	"time"

	"github.com/padworks/keypad/pkg/keypad"
	"github.com/padworks/keypad/pkg/layout"
	"github.com/padworks/keypad/pkg/rgb"
)

// Rainbow sweeps a hue gradient across the keypad grid.
type Rainbow struct {
	pad  *keypad.Controller
	grid layout.Grid
	step float64
}

func NewRainbow(pad *keypad.Controller, grid layout.Grid) *Rainbow {
	return &Rainbow{pad: pad, grid: grid}
}

func (d *Rainbow) Tick(time.Time) {
	d.step++
	for i, k := range d.pad.Keys() {
		x, y := d.grid.XY(i)
		hue := (float64(x+y) + d.step/20) / 8
		k.SetRGB(rgb.FromHSV(hue, 1, 1))
	}
}
