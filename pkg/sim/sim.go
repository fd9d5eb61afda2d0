// Package sim implements keypad.Surface on top of a terminal, so the
// input core and its demos can be exercised without hardware. Keyboard
// rows map onto keypad rows ("1234", "qwer", ...) and each key's LED is
// drawn as a colored block.
//
// The simulator is single threaded like the rest of the system: call
// Pump once per loop iteration to drain terminal events, then Flush
// after updating LEDs. A terminal keystroke closes the virtual switch
// for TapDuration; terminal auto-repeat keeps refreshing the deadline,
// so holding a key down works for hold gestures.
package sim

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/padworks/keypad/pkg/layout"
	"github.com/padworks/keypad/pkg/rgb"
)

// DefaultTapDuration is how long one keystroke keeps a switch closed.
// Long enough to survive the gap between auto-repeat events, short
// enough that a single tap reads as a tap.
const DefaultTapDuration = 150 * time.Millisecond

var keyRows = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl;",
	"zxcvbnm,./",
}

// Pad is a virtual keypad rendered with tcell.
type Pad struct {
	screen    tcell.Screen
	ownScreen bool
	grid      layout.Grid

	TapDuration time.Duration

	keymap map[rune]int
	labels []rune
	until  []time.Time
	pixels []rgb.Color
	quit   bool

	now func() time.Time
}

// New creates a simulator on the real terminal.
func New(grid layout.Grid) (*Pad, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	p := NewWithScreen(screen, grid)
	p.ownScreen = true
	return p, nil
}

// NewWithScreen creates a simulator on a caller-supplied screen, which
// must already be initialized. Used with tcell's SimulationScreen in
// tests.
func NewWithScreen(screen tcell.Screen, grid layout.Grid) *Pad {
	n := grid.Count()
	p := &Pad{
		screen:      screen,
		grid:        grid,
		TapDuration: DefaultTapDuration,
		keymap:      make(map[rune]int, n),
		labels:      make([]rune, n),
		until:       make([]time.Time, n),
		pixels:      make([]rgb.Color, n),
		now:         time.Now,
	}
	for i := 0; i < n; i++ {
		x, y := grid.XY(i)
		p.labels[i] = ' '
		if y < len(keyRows) && x < len(keyRows[y]) {
			r := rune(keyRows[y][x])
			p.labels[i] = r
			p.keymap[r] = i
		}
	}
	return p
}

// Close releases the terminal if the simulator owns it.
func (p *Pad) Close() {
	if p.ownScreen {
		p.screen.Fini()
	}
}

// KeyCount implements keypad.Surface.
func (p *Pad) KeyCount() int { return p.grid.Count() }

// SwitchState implements keypad.Surface.
func (p *Pad) SwitchState(index int) bool {
	if index < 0 || index >= len(p.until) {
		return false
	}
	return p.now().Before(p.until[index])
}

// SetPixel implements keypad.Surface. The color is recorded and drawn
// on the next Flush.
func (p *Pad) SetPixel(index int, r, g, b uint8) {
	if index < 0 || index >= len(p.pixels) {
		return
	}
	p.pixels[index] = rgb.Color{R: r, G: g, B: b}
}

// Pixel returns the last color written to a key, for tests.
func (p *Pad) Pixel(index int) rgb.Color {
	if index < 0 || index >= len(p.pixels) {
		return rgb.Off
	}
	return p.pixels[index]
}

// Pump drains pending terminal events. Call once per loop iteration,
// before Controller.Update.
func (p *Pad) Pump() {
	for p.screen.HasPendingEvent() {
		p.handle(p.screen.PollEvent())
	}
}

// Quit reports whether the user asked to leave (Esc or Ctrl-C).
func (p *Pad) Quit() bool { return p.quit }

func (p *Pad) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			p.quit = true
		case tcell.KeyRune:
			if idx, ok := p.keymap[ev.Rune()]; ok {
				p.until[idx] = p.now().Add(p.TapDuration)
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
}

// Flush redraws the keypad grid and pushes it to the terminal.
func (p *Pad) Flush() {
	for i := 0; i < p.grid.Count(); i++ {
		x, y := p.grid.XY(i)
		cx, cy := 2+x*5, 1+y*2

		labelStyle := tcell.StyleDefault
		if p.SwitchState(i) {
			labelStyle = labelStyle.Reverse(true)
		}
		p.screen.SetContent(cx, cy, p.labels[i], nil, labelStyle)

		col := p.pixels[i]
		ledStyle := tcell.StyleDefault.Foreground(
			tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
		p.screen.SetContent(cx+1, cy, '█', nil, ledStyle)
		p.screen.SetContent(cx+2, cy, '█', nil, ledStyle)
	}

	p.drawText(2, 2+p.grid.Rows*2, "tap keys to press, Esc quits")
	p.screen.Show()
}

func (p *Pad) drawText(x, y int, s string) {
	for i, r := range s {
		p.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
