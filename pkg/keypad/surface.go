package keypad

// Surface is the hardware capability contract consumed by the Controller.
// Implementations cover direct-GPIO switches, I2C expander polling and
// addressable LED strips, but all present the same interface.
//
// SwitchState returns the raw, possibly bouncy switch reading; debounce
// filtering is the Controller's job. An implementation that cannot
// complete a read must report "not pressed" rather than freeze the last
// value. SetPixel is best effort: bus faults are the implementation's
// problem to log and swallow, never to panic across this boundary.
type Surface interface {
	// KeyCount reports the number of keys, fixed for the device lifetime.
	KeyCount() int
	// SwitchState reads the physical state of one switch.
	// true means pressed.
	SwitchState(index int) bool
	// SetPixel writes one key's RGB LED immediately.
	SetPixel(index int, r, g, b uint8)
}
