// Package memdev provides an in-memory keypad surface for tests and
// host-side scripting. Switch states are set programmatically and pixel
// writes are recorded so they can be asserted on.
package memdev

import (
	"github.com/padworks/keypad/pkg/rgb"
)

// Device is a fake keypad with the given number of keys.
type Device struct {
	switches []bool
	pixels   []rgb.Color
}

// New creates a memory device with count keys, all released and dark.
func New(count int) *Device {
	return &Device{
		switches: make([]bool, count),
		pixels:   make([]rgb.Color, count),
	}
}

// KeyCount implements keypad.Surface.
func (d *Device) KeyCount() int { return len(d.switches) }

// SwitchState implements keypad.Surface.
func (d *Device) SwitchState(index int) bool {
	if index < 0 || index >= len(d.switches) {
		return false
	}
	return d.switches[index]
}

// SetPixel implements keypad.Surface.
func (d *Device) SetPixel(index int, r, g, b uint8) {
	if index < 0 || index >= len(d.pixels) {
		return
	}
	d.pixels[index] = rgb.Color{R: r, G: g, B: b}
}

// SetSwitch drives the raw state of one switch.
func (d *Device) SetSwitch(index int, pressed bool) {
	if index < 0 || index >= len(d.switches) {
		return
	}
	d.switches[index] = pressed
}

// Press is SetSwitch(index, true).
func (d *Device) Press(index int) { d.SetSwitch(index, true) }

// Release is SetSwitch(index, false).
func (d *Device) Release(index int) { d.SetSwitch(index, false) }

// Pixel returns the last color written to a key's LED.
func (d *Device) Pixel(index int) rgb.Color {
	if index < 0 || index >= len(d.pixels) {
		return rgb.Off
	}
	return d.pixels[index]
}

// Pixels returns a copy of the whole LED frame.
func (d *Device) Pixels() []rgb.Color {
	out := make([]rgb.Color, len(d.pixels))
	copy(out, d.pixels)
	return out
}
