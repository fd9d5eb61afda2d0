//go:build tinygo

// Package gpiopad implements the keypad surface for boards that wire
// each switch straight to a GPIO pin (input with pull-up, active low)
// and run a WS2812 addressable LED chain under the keys.
package gpiopad

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// Device implements keypad.Surface for direct-GPIO keypads.
type Device struct {
	pins  []machine.Pin
	leds  ws2812.Device
	frame []color.RGBA
}

// New configures one input pin per switch and the LED data pin. The
// LED chain is assumed to be wired in key-index order.
func New(switchPins []machine.Pin, ledPin machine.Pin) *Device {
	for _, p := range switchPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	return &Device{
		pins:  switchPins,
		leds:  ws2812.New(ledPin),
		frame: make([]color.RGBA, len(switchPins)),
	}
}

// KeyCount implements keypad.Surface.
func (d *Device) KeyCount() int { return len(d.pins) }

// SwitchState implements keypad.Surface.
func (d *Device) SwitchState(index int) bool {
	if index < 0 || index >= len(d.pins) {
		return false
	}
	return !d.pins[index].Get()
}

// SetPixel implements keypad.Surface. WS2812 chains have no per-pixel
// addressing, so the whole frame is rewritten on each change.
func (d *Device) SetPixel(index int, r, g, b uint8) {
	if index < 0 || index >= len(d.frame) {
		return
	}
	d.frame[index] = color.RGBA{R: r, G: g, B: b, A: 255}
	if err := d.leds.WriteColors(d.frame); err != nil {
		// Best effort: drop the frame, the next write repaints.
		return
	}
}
