//go:build !tinygo

package platform

import (
	"context"
	"os"
	"sync"

	"rgbknob/hal"
	"rgbknob/types"
)

// BoardName is the board id this build binds.
const BoardName = "host"

// ----------------------------- GPIO (host) -----------------------------------

// FakePin is an in-memory pin used for host runs and tests.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	rises   uint32
}

func NewFakePin(n int) *FakePin { return &FakePin{number: n} }

func (p *FakePin) ConfigureInput(pullUp bool) {
	p.mu.Lock()
	p.modeOut = false
	p.level = pullUp
	p.mu.Unlock()
}

func (p *FakePin) ConfigureOutput(initial bool) {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	if level && !p.level {
		p.rises++
	}
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) High()       { p.Set(true) }
func (p *FakePin) Low()        { p.Set(false) }
func (p *FakePin) IsLow() bool { return !p.Get() }
func (p *FakePin) Number() int { return p.number }

// Rises counts low-to-high transitions, i.e. PWM pulses seen.
func (p *FakePin) Rises() uint32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rises
}

// Press simulates a button to ground (active low).
func (p *FakePin) Press()   { p.Set(false) }
func (p *FakePin) Release() { p.Set(true) }

// ----------------------------- ADC (host) ------------------------------------

// SimADC stands in for the knob's converter.
type SimADC struct {
	mu         sync.Mutex
	raw        int32
	calibrated bool
	CalErr     error
	SampleErr  error
}

func (a *SimADC) Set(raw int32) {
	a.mu.Lock()
	a.raw = raw
	a.mu.Unlock()
}

// Fail makes later samples return err (nil clears it).
func (a *SimADC) Fail(err error) {
	a.mu.Lock()
	a.SampleErr = err
	a.mu.Unlock()
}

func (a *SimADC) Calibrated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calibrated
}

func (a *SimADC) Calibrate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.CalErr != nil {
		return a.CalErr
	}
	a.calibrated = true
	return nil
}

func (a *SimADC) Sample(ctx context.Context) (int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.SampleErr != nil {
		return 0, a.SampleErr
	}
	return a.raw, nil
}

// ----------------------------- Board -----------------------------------------

// Open builds a simulated board from cfg. Outputs start low and buttons
// start released.
func Open(cfg types.Config) (*hal.Board, error) {
	if cfg.Board != BoardName {
		return nil, wrongBoard(cfg.Board, BoardName)
	}
	p := cfg.Pins
	var rgb [3]hal.OutputPin
	for i, n := range [3]int{p.Red, p.Green, p.Blue} {
		if n < 0 {
			return nil, unknownPin(types.ChannelNames[i], n)
		}
		pin := NewFakePin(n)
		pin.ConfigureOutput(false)
		rgb[i] = pin
	}
	if p.ButtonA < 0 {
		return nil, unknownPin("button A", p.ButtonA)
	}
	if p.ButtonB < 0 {
		return nil, unknownPin("button B", p.ButtonB)
	}
	a, b := NewFakePin(p.ButtonA), NewFakePin(p.ButtonB)
	a.ConfigureInput(true)
	b.ConfigureInput(true)

	return &hal.Board{
		Name:    BoardName,
		RGB:     rgb,
		ButtonA: a,
		ButtonB: b,
		Knob:    &SimADC{},
		Console: os.Stdout,
	}, nil
}
