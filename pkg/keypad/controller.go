// Package keypad turns raw switch readings from an RGB keypad into a
// debounced stream of press, release and hold events with per-key LED
// feedback. It is written for a cooperative firmware main loop: call
// Controller.Update once per iteration and register non-blocking
// handlers for the keys you care about.
//
// The package owns no goroutines and takes no locks; all state belongs
// to the single goroutine driving Update. Hardware access goes through
// the narrow Surface interface so the same core runs on real boards and
// on host-side simulators.
package keypad

import (
	"errors"
	"fmt"
	"time"

	"github.com/padworks/keypad/pkg/rgb"
)

// ErrKeyRange is returned when a key index is outside 0..KeyCount-1.
var ErrKeyRange = errors.New("key index out of range")

// Controller owns one Key per hardware switch and the aggregate LED
// sleep timer. Create it once per device with New and drive it with
// Update from the main loop.
type Controller struct {
	surface Surface
	keys    []*Key

	// SleepEnabled turns on the idle LED timeout. After SleepTimeout
	// with no key pressed, all LEDs are forced off; the next press
	// restores them.
	SleepEnabled bool
	SleepTimeout time.Duration

	lastPress time.Time
	sleeping  bool
	wasAsleep bool
	snapshot  []rgb.Color

	now func() time.Time
}

// New builds a controller for the given hardware surface. The key count
// is read once and fixed for the controller's lifetime. All LEDs are
// cleared so the stored and physical state start in agreement.
func New(surface Surface) *Controller {
	c := &Controller{
		surface:      surface,
		SleepTimeout: DefaultSleepTimeout,
		now:          time.Now,
	}
	c.lastPress = c.now()

	c.keys = make([]*Key, surface.KeyCount())
	for i := range c.keys {
		c.keys[i] = &Key{
			index:         i,
			pad:           c,
			Debounce:      DefaultDebounce,
			HoldThreshold: DefaultHoldThreshold,
		}
		c.keys[i].LEDOff()
	}
	return c
}

// Update performs one poll pass: it reads every switch, advances every
// key's state machine (firing any due handlers inline), then evaluates
// the LED sleep timer. Call it on every iteration of the main loop.
// Debounce, hold and sleep are all wall-clock based, so the call rate
// does not change their semantics.
func (c *Controller) Update() {
	t := c.now()

	for _, k := range c.keys {
		k.update(t, c.surface.SwitchState(k.index))
	}

	if c.AnyPressed() {
		c.lastPress = t
		c.sleeping = false
	}

	if c.SleepEnabled && !c.sleeping && t.Sub(c.lastPress) > c.SleepTimeout {
		// Enter sleep: remember what every LED showed, then force
		// the physical LEDs off. Stored colors are untouched.
		c.sleeping = true
		c.wasAsleep = true
		c.snapshot = make([]rgb.Color, len(c.keys))
		for i, k := range c.keys {
			if k.lit {
				c.snapshot[i] = k.color
			}
		}
		for _, k := range c.keys {
			c.surface.SetPixel(k.index, 0, 0, 0)
		}
	}

	if !c.sleeping && c.wasAsleep {
		// A press woke us up: put every LED back exactly as it was
		// at sleep entry, including the off ones.
		for i, col := range c.snapshot {
			c.surface.SetPixel(i, col.R, col.G, col.B)
		}
		c.snapshot = nil
		c.wasAsleep = false
	}
}

// Sleeping reports whether the LED sleep timeout is currently engaged.
func (c *Controller) Sleeping() bool { return c.sleeping }

// Key returns the key at the given index.
func (c *Controller) Key(index int) (*Key, error) {
	if index < 0 || index >= len(c.keys) {
		return nil, fmt.Errorf("%w: %d", ErrKeyRange, index)
	}
	return c.keys[index], nil
}

// Keys returns the controller's keys in index order. The slice is owned
// by the controller; treat it as read-only.
func (c *Controller) Keys() []*Key { return c.keys }

// States returns the logical pressed state of every key in index order.
func (c *Controller) States() []bool {
	states := make([]bool, len(c.keys))
	for i, k := range c.keys {
		states[i] = k.pressed
	}
	return states
}

// Pressed returns the indices of all currently pressed keys.
func (c *Controller) Pressed() []int {
	var pressed []int
	for i, k := range c.keys {
		if k.pressed {
			pressed = append(pressed, i)
		}
	}
	return pressed
}

// AnyPressed reports whether at least one key is pressed.
func (c *Controller) AnyPressed() bool {
	for _, k := range c.keys {
		if k.pressed {
			return true
		}
	}
	return false
}

// NonePressed reports whether no key is pressed.
func (c *Controller) NonePressed() bool {
	return !c.AnyPressed()
}

// SetLED sets one key's LED by index.
func (c *Controller) SetLED(index int, r, g, b uint8) error {
	k, err := c.Key(index)
	if err != nil {
		return err
	}
	k.SetLED(r, g, b)
	return nil
}

// SetAll sets every key's LED to the same color.
func (c *Controller) SetAll(r, g, b uint8) {
	for _, k := range c.keys {
		k.SetLED(r, g, b)
	}
}

// OnPress attaches the press handler for a key, replacing any previous
// one. The handler fires once per press span, on the press edge.
func (c *Controller) OnPress(index int, h Handler) error {
	k, err := c.Key(index)
	if err != nil {
		return err
	}
	k.onPress = h
	return nil
}

// OnRelease attaches the release handler for a key, replacing any
// previous one.
func (c *Controller) OnRelease(index int, h Handler) error {
	k, err := c.Key(index)
	if err != nil {
		return err
	}
	k.onRelease = h
	return nil
}

// OnHold attaches the hold handler for a key, replacing any previous
// one. It fires once per press span, when the press has lasted longer
// than the key's HoldThreshold.
func (c *Controller) OnHold(index int, h Handler) error {
	k, err := c.Key(index)
	if err != nil {
		return err
	}
	k.onHold = h
	return nil
}

// writePixel pushes a color to the hardware unless the controller is
// asleep. Sleep suppresses physical writes only; callers have already
// recorded the logical color, which is what "defer until wake" means.
func (c *Controller) writePixel(index int, col rgb.Color) {
	if c.sleeping {
		return
	}
	c.surface.SetPixel(index, col.R, col.G, col.B)
}
