//go:build tinygo

// Package pim551 drives the Pimoroni Pico RGB Keypad Base: sixteen
// switches read through a TCA9555 I2C expander and APA102 (DotStar)
// LEDs on SPI. Key indices are rotated a quarter turn so the layout
// matches the Keybow 2040 orientation.
package pim551

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/apa102"

	"github.com/padworks/keypad/pkg/layout"
)

const (
	numKeys      = 16
	expanderAddr = 0x20
	inputPortReg = 0x00
)

// Device implements keypad.Surface for the Pico RGB Keypad Base.
type Device struct {
	bus   *machine.I2C
	leds  *apa102.Device
	cs    machine.Pin
	remap []int
	frame []color.RGBA
	buf   [2]byte
}

// New configures I2C0 for the switch expander and SPI0 for the LED
// chain, using the base's fixed pinout.
func New() (*Device, error) {
	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400_000,
	}); err != nil {
		return nil, err
	}

	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Frequency: 4_000_000,
	}); err != nil {
		return nil, err
	}

	cs := machine.GP17
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.High()

	remap, err := layout.Default.RotationMap(90)
	if err != nil {
		return nil, err
	}

	d := &Device{
		bus:   bus,
		leds:  apa102.New(spi),
		cs:    cs,
		remap: remap,
		frame: make([]color.RGBA, numKeys),
	}
	for i := range d.frame {
		d.frame[i].A = 255
	}
	return d, nil
}

// KeyCount implements keypad.Surface.
func (d *Device) KeyCount() int { return numKeys }

// SwitchState implements keypad.Surface. The expander's two input port
// registers are read on every call; bits are active low.
func (d *Device) SwitchState(index int) bool {
	if index < 0 || index >= numKeys {
		return false
	}
	d.buf[0], d.buf[1] = 0, 0
	if err := d.bus.Tx(expanderAddr, []byte{inputPortReg}, d.buf[:]); err != nil {
		// A failed read must look like a release, not a stuck key.
		return false
	}
	bits := uint16(d.buf[0]) | uint16(d.buf[1])<<8
	return bits&(1<<uint(d.remap[index])) == 0
}

// SetPixel implements keypad.Surface. The whole frame is pushed on each
// write, with chip select asserted only around the transfer, matching
// the reference firmware for the base.
func (d *Device) SetPixel(index int, r, g, b uint8) {
	if index < 0 || index >= numKeys {
		return
	}
	d.frame[d.remap[index]] = color.RGBA{R: r, G: g, B: b, A: 255}

	d.cs.Low()
	_, err := d.leds.WriteColors(d.frame)
	d.cs.High()
	_ = err // best effort: a bus glitch costs one frame
}
