//go:build tinygo && microbit_v2

package platform

import (
	"machine"

	"rgbknob/hal"
	"rgbknob/types"
)

const BoardName = "microbit_v2"

// nRF52833 exposes P0.00..P1.15 as machine.Pin 0..47.
const maxPin = 47

func Open(cfg types.Config) (*hal.Board, error) {
	if cfg.Board != BoardName {
		return nil, wrongBoard(cfg.Board, BoardName)
	}
	p := cfg.Pins
	for _, c := range []struct {
		role string
		n    int
	}{
		{"red", p.Red}, {"green", p.Green}, {"blue", p.Blue},
		{"button A", p.ButtonA}, {"button B", p.ButtonB}, {"knob", p.Knob},
	} {
		if c.n < 0 || c.n > maxPin {
			return nil, unknownPin(c.role, c.n)
		}
	}
	return &hal.Board{
		Name:    BoardName,
		RGB:     [3]hal.OutputPin{output(p.Red), output(p.Green), output(p.Blue)},
		ButtonA: inputPullup(p.ButtonA),
		ButtonB: inputPullup(p.ButtonB),
		Knob:    newADC(p.Knob),
		Console: machine.Serial,
	}, nil
}
