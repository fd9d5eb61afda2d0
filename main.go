//go:build tinygo

// Firmware entry for the Pico RGB Keypad Base: reactive key lighting
// with LED sleep after a minute idle. The loop body stays short so USB
// servicing between iterations is never starved.
package main

import (
	"time"

	"github.com/padworks/keypad/pkg/demos"
	"github.com/padworks/keypad/pkg/hardware/pim551"
	"github.com/padworks/keypad/pkg/keypad"
	"github.com/padworks/keypad/pkg/rgb"
)

func main() {
	hw, err := pim551.New()
	if err != nil {
		for {
			println("keypad init failed:", err.Error())
			time.Sleep(time.Second)
		}
	}

	pad := keypad.New(hw)
	pad.SleepEnabled = true

	demo := demos.NewReactive(pad, rgb.Color{G: 255, B: 255})

	for {
		pad.Update()
		demo.Tick(time.Now())
		time.Sleep(time.Millisecond)
	}
}
