package keypad

import (
	"time"

	"github.com/padworks/keypad/pkg/rgb"
)

// Default timing knobs. Debounce and hold threshold can be overridden
// per key, the sleep timeout on the Controller.
const (
	DefaultDebounce      = 125 * time.Millisecond
	DefaultHoldThreshold = 750 * time.Millisecond
	DefaultSleepTimeout  = 60 * time.Second
)

// Handler is a key event callback. Handlers run inline during
// Controller.Update and must not block; a blocking handler stalls the
// whole poll loop.
type Handler func(*Key)

// Key holds the per-key state machine: debounce lock, press/release
// edge detection, hold timing and the LED color belonging to the key.
// Keys are created by the Controller, one per hardware switch, and are
// only mutated during Update or by application code adjusting the
// exported tunables and LED state.
type Key struct {
	index int
	pad   *Controller

	raw         bool
	pressed     bool
	lastPressed bool

	lastTransition time.Time
	pressTime      time.Time
	heldFor        time.Duration
	held           bool

	pressFired bool
	holdFired  bool

	onPress   Handler
	onRelease Handler
	onHold    Handler

	// Debounce is how long the logical state stays frozen after a
	// transition. HoldThreshold is how long a press must last before
	// the hold handler fires.
	Debounce      time.Duration
	HoldThreshold time.Duration

	// Modifier marks the key as a modifier for application-level
	// chording. The core does not act on it.
	Modifier bool

	color rgb.Color
	lit   bool
}

// Index returns the key's position in the controller's key list.
func (k *Key) Index() int { return k.index }

// Pressed returns the debounced logical state of the key.
func (k *Key) Pressed() bool { return k.pressed }

// Raw returns this tick's unfiltered hardware reading.
func (k *Key) Raw() bool { return k.raw }

// Held reports whether the current press has crossed HoldThreshold.
func (k *Key) Held() bool { return k.held }

// HeldFor returns how long the key has been continuously pressed.
func (k *Key) HeldFor() time.Duration { return k.heldFor }

// Color returns the key's stored LED color. The stored color survives
// LEDOff and LED sleep, so the LED can be turned back on later.
func (k *Key) Color() rgb.Color { return k.color }

// Lit reports whether the LED is logically on.
func (k *Key) Lit() bool { return k.lit }

// update advances the state machine by one tick. The debounce lock
// gates the raw read itself, not just callback firing, so contact
// chatter can never produce a logical transition.
func (k *Key) update(t time.Time, raw bool) {
	k.raw = raw

	locked := t.Sub(k.lastTransition) < k.Debounce
	if !locked {
		k.pressed = raw
	}

	switch {
	case k.pressed && !k.lastPressed:
		// Press edge.
		k.lastTransition = t
		k.pressTime = t
		k.heldFor = 0
		if k.onPress != nil && !k.pressFired {
			k.onPress(k)
		}
		k.pressFired = true

	case k.pressed && k.lastPressed:
		k.heldFor = t.Sub(k.pressTime)
		if k.heldFor > k.HoldThreshold {
			k.held = true
			if k.onHold != nil && !k.holdFired {
				k.onHold(k)
			}
			k.holdFired = true
		}

	case !k.pressed && k.lastPressed:
		// Release edge. The release opens a debounce window too,
		// and clears the single-fire guards for the next span.
		k.lastTransition = t
		if k.onRelease != nil {
			k.onRelease(k)
		}
		k.pressFired = false
		k.holdFired = false
		k.held = false
		k.heldFor = 0
	}

	k.lastPressed = k.pressed
}

// SetLED sets the key's LED to an RGB value. Black records the LED as
// unlit but keeps the previous color so LEDOn can restore it. While the
// controller is asleep the color is recorded and the physical write is
// deferred until wake.
func (k *Key) SetLED(r, g, b uint8) {
	c := rgb.Color{R: r, G: g, B: b}
	if c.IsOff() {
		k.lit = false
	} else {
		k.lit = true
		k.color = c
	}
	k.pad.writePixel(k.index, c)
}

// SetRGB is SetLED taking a color value.
func (k *Key) SetRGB(c rgb.Color) {
	k.SetLED(c.R, c.G, c.B)
}

// LEDOn lights the LED with its stored color.
func (k *Key) LEDOn() {
	k.pad.writePixel(k.index, k.color)
	if !k.color.IsOff() {
		k.lit = true
	}
}

// LEDOff turns the LED off, keeping the stored color.
func (k *Key) LEDOff() {
	k.lit = false
	k.pad.writePixel(k.index, rgb.Off)
}

// ToggleLED flips the LED between off and its stored color.
func (k *Key) ToggleLED() {
	if k.lit {
		k.LEDOff()
	} else {
		k.LEDOn()
	}
}
