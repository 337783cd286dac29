// Package ui is the input task: it reads the buttons to decide what the
// knob controls, reads the knob, and publishes changes to shared state.
package ui

import (
	"context"
	"time"

	"rgbknob/bus"
	"rgbknob/hal"
	"rgbknob/shared"
	"rgbknob/types"
	"rgbknob/x/timex"
)

// DefaultDebounce is the pause after every iteration.
const DefaultDebounce = 50 * time.Millisecond

// TopicState carries the retained types.RGBState snapshot.
var TopicState = bus.T("rgb", "state")

// Frame-rate mapping: rate = level*rateStep + rateFloor. The floor keeps
// the output task's tick-time denominator non-zero.
const (
	rateStep  = 10
	rateFloor = 10
)

// FrameRateFor maps a knob level to a frame rate (>= 10).
func FrameRateFor(level uint32) uint32 { return level*rateStep + rateFloor }

// Select applies the button priority table. Buttons are active low.
func Select(aLow, bLow bool) types.Selection {
	switch {
	case aLow && bLow:
		return types.SelectRed
	case aLow:
		return types.SelectBlue
	case bLow:
		return types.SelectGreen
	default:
		return types.SelectFrameRate
	}
}

// Measurer is satisfied by *knob.Knob.
type Measurer interface {
	Measure(ctx context.Context) (uint32, error)
}

type Option func(*UI)

// WithSleeper replaces the delay provider (default timex.Sleep).
func WithSleeper(s timex.Sleeper) Option { return func(u *UI) { u.sleep = s } }

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option { return func(u *UI) { u.debounce = d } }

// state is the task-local shadow of what was last published.
type state struct {
	levels    types.RGBLevels
	frameRate uint32
	sel       types.Selection
	seq       uint32
}

type UI struct {
	knob     Measurer
	btnA     hal.InputPin
	btnB     hal.InputPin
	levels   *shared.Levels
	rate     *shared.FrameRate
	conn     *bus.Connection // nil disables snapshots
	sleep    timex.Sleeper
	debounce time.Duration

	st        state
	started   bool
	publishes uint32
}

// New seeds the shadow state from the shared cells so the first change is
// detected against what the output task is already showing.
func New(knob Measurer, btnA, btnB hal.InputPin, levels *shared.Levels, rate *shared.FrameRate, conn *bus.Connection, opts ...Option) *UI {
	u := &UI{
		knob:     knob,
		btnA:     btnA,
		btnB:     btnB,
		levels:   levels,
		rate:     rate,
		conn:     conn,
		sleep:    timex.Sleep,
		debounce: DefaultDebounce,
	}
	for _, o := range opts {
		o(u)
	}
	u.st.levels = levels.Load()
	u.st.frameRate = rate.Load()
	return u
}

// Run loops forever. It returns on a knob error or when ctx is cancelled;
// the caller treats either as fatal.
func (u *UI) Run(ctx context.Context) error {
	for {
		if err := u.Step(ctx); err != nil {
			return err
		}
		if !u.sleep(ctx, u.debounce) {
			return ctx.Err()
		}
	}
}

// Step runs one iteration without the debounce pause.
func (u *UI) Step(ctx context.Context) error {
	sel := Select(u.btnA.IsLow(), u.btnB.IsLow())
	if !u.started || sel != u.st.sel {
		println("[ui]", sel.String())
		u.started = true
		u.st.sel = sel
	}

	level, err := u.knob.Measure(ctx)
	if err != nil {
		return err
	}
	if ch, ok := sel.Channel(); ok {
		u.setLevel(ch, level)
	} else {
		u.setFrameRate(FrameRateFor(level))
	}
	return nil
}

func (u *UI) setLevel(ch int, level uint32) {
	if u.st.levels[ch] == level {
		return
	}
	u.st.levels[ch] = level
	u.levels.Store(u.st.levels)
	u.show()
}

func (u *UI) setFrameRate(r uint32) {
	if u.st.frameRate == r {
		return
	}
	u.st.frameRate = r
	u.rate.Store(r)
	u.show()
}

// show publishes the snapshot. The bus never blocks, so a slow console
// cannot stall input.
func (u *UI) show() {
	u.publishes++
	u.st.seq++
	if u.conn == nil {
		return
	}
	u.conn.Publish(u.conn.NewMessage(TopicState, u.Snapshot(), true))
}

// Snapshot returns the current shadow state.
func (u *UI) Snapshot() types.RGBState {
	return types.RGBState{
		Levels:    u.st.levels,
		FrameRate: u.st.frameRate,
		Selection: u.st.sel,
		Seq:       u.st.seq,
	}
}

// Publishes counts shared-state writes since start.
func (u *UI) Publishes() uint32 { return u.publishes }
