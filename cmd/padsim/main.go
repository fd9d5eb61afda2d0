// Command padsim runs the keypad demos against a terminal simulator,
// so handlers, debounce and the LED sleep behaviour can be exercised
// without hardware.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"

	"github.com/padworks/keypad/internal/log"
	"github.com/padworks/keypad/pkg/demos"
	"github.com/padworks/keypad/pkg/keypad"
	"github.com/padworks/keypad/pkg/layout"
	"github.com/padworks/keypad/pkg/rgb"
	"github.com/padworks/keypad/pkg/sim"
)

type cli struct {
	Demo     string        `help:"Demo to run." enum:"reactive,rainbow,picker,sequencer" default:"reactive"`
	Cols     int           `help:"Keypad columns." default:"4"`
	Rows     int           `help:"Keypad rows." default:"4"`
	Color    string        `help:"Key color for the reactive demo." default:"#00ffff"`
	Modifier int           `help:"Modifier key index for the picker demo." default:"0"`
	Sleep    time.Duration `help:"LED sleep timeout (0 disables)." default:"0s"`
	Tick     time.Duration `help:"Poll interval." default:"10ms"`
	LogLevel string        `help:"Log level (debug, info, warn, error)." default:"info"`
	LogFile  string        `help:"Log file. The terminal belongs to the simulator, so logs go to a file." type:"path"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("padsim"),
		kong.Description("Terminal simulator for the RGB keypad input core."),
		kong.UsageOnError(),
		kong.Configuration(kongtoml.Loader, "/etc/padsim.toml", "~/.config/padsim.toml", "padsim.toml"),
	)
	ctx.FatalIfErrorf(run(&c))
}

func run(c *cli) error {
	logW := io.Writer(io.Discard)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logW = f
	}
	logger := log.New(logW, c.LogLevel)

	color, err := rgb.FromHex(c.Color)
	if err != nil {
		return err
	}

	grid := layout.Grid{Cols: c.Cols, Rows: c.Rows}
	surface, err := sim.New(grid)
	if err != nil {
		return fmt.Errorf("init simulator: %w", err)
	}
	defer surface.Close()

	pad := keypad.New(surface)
	if c.Sleep > 0 {
		pad.SleepEnabled = true
		pad.SleepTimeout = c.Sleep
	}

	var demo demos.Demo
	switch c.Demo {
	case "reactive":
		demo = demos.NewReactive(pad, color)
	case "rainbow":
		demo = demos.NewRainbow(pad, grid)
	case "picker":
		demo, err = demos.NewPicker(pad, c.Modifier)
		if err != nil {
			return err
		}
	case "sequencer":
		demo = demos.NewSequencer(pad)
	}

	logger.Info("starting demo", "demo", c.Demo, "keys", surface.KeyCount())

	for !surface.Quit() {
		surface.Pump()
		pad.Update()
		demo.Tick(time.Now())
		surface.Flush()
		time.Sleep(c.Tick)
	}

	logger.Info("simulator closed")
	return nil
}
