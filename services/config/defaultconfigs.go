package config

import "rgbknob/types"

// -----------------------------------------------------------------------------
// Built-in board configurations
//
// Key: board id (see hal/platform.Board).
// Pin numbers are the target's native machine.Pin numbers.
// -----------------------------------------------------------------------------

var boardConfigs = map[string]types.Config{
	// Host simulation; pin numbers are arbitrary but distinct.
	"host": {
		Board:      "host",
		Pins:       types.PinMap{Red: 0, Green: 1, Blue: 2, ButtonA: 3, ButtonB: 4, Knob: 5},
		Knob:       types.KnobConfig{MaxRaw: 0x7fff, FullScale: 10_000},
		FrameRate:  100,
		Level:      types.Levels - 1,
		DebounceMs: 50,
	},
	// BBC micro:bit v2 on an edge-connector breakout: LED on P9/P8/P16,
	// pot wiper on P2, onboard buttons A/B.
	"microbit_v2": {
		Board:      "microbit_v2",
		Pins:       types.PinMap{Red: 9, Green: 10, Blue: 34, ButtonA: 14, ButtonB: 23, Knob: 4},
		Knob:       types.KnobConfig{MaxRaw: 0x7fff, FullScale: 10_000},
		FrameRate:  100,
		Level:      types.Levels - 1,
		DebounceMs: 50,
	},
	// Raspberry Pi Pico: LED on GP18..GP20, buttons on GP14/GP15 to ground,
	// pot on ADC0 (GP26). 12-bit readings widened to 14 bits.
	"pico": {
		Board:      "pico",
		Pins:       types.PinMap{Red: 18, Green: 19, Blue: 20, ButtonA: 14, ButtonB: 15, Knob: 26},
		Knob:       types.KnobConfig{MaxRaw: 0x7fff, FullScale: 16_383},
		FrameRate:  100,
		Level:      types.Levels - 1,
		DebounceMs: 50,
		Baud:       115200,
	},
}
