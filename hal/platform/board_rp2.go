//go:build tinygo && (rp2040 || rp2350)

package platform

import (
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"

	"rgbknob/errcode"
	"rgbknob/hal"
	"rgbknob/types"
)

const BoardName = "pico"

// User GPIOs GP0..GP28; ADC inputs GP26..GP29.
const (
	maxPin    = 28
	adcPinMin = 26
)

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
		{"button A", p.ButtonA}, {"button B", p.ButtonB},
	} {
		if c.n < 0 || c.n > maxPin {
			return nil, unknownPin(c.role, c.n)
		}
	}
	if p.Knob < adcPinMin || p.Knob > maxPin {
		return nil, unknownPin("knob", p.Knob)
	}

	console := uartx.UART0
	if err := console.Configure(uartx.UARTConfig{
		BaudRate: cfg.Baud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	}); err != nil {
		return nil, errcode.Wrap(errcode.Error, op, err)
	}

	return &hal.Board{
		Name:    BoardName,
		RGB:     [3]hal.OutputPin{output(p.Red), output(p.Green), output(p.Blue)},
		ButtonA: inputPullup(p.ButtonA),
		ButtonB: inputPullup(p.ButtonB),
		Knob:    newADC(p.Knob),
		Console: console,
	}, nil
}
