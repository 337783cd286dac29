// Package rgb is the software PWM output task. It re-reads the shared
// levels and frame rate once per full red-green-blue cycle and bit-bangs
// each channel's on/off time.
package rgb

import (
	"context"
	"time"

	"rgbknob/hal"
	"rgbknob/shared"
	"rgbknob/types"
	"rgbknob/x/timex"
)

// TickTime is the duration of one level unit at the given frame rate.
// The three channels share one frame, hence the factor 3. Integer
// microseconds, rounded down. A zero rate is treated as 1.
func TickTime(frameRate uint32) time.Duration {
	if frameRate == 0 {
		frameRate = 1
	}
	return timex.Micros(1_000_000 / (3 * uint64(frameRate) * types.Levels))
}

// OnOff splits one channel slot of Levels ticks into on and off time.
// on+off == Levels*tick for every level in [0, Levels].
func OnOff(level uint32, tick time.Duration) (on, off time.Duration) {
	on = time.Duration(level) * tick
	if level < types.Levels {
		off = time.Duration(types.Levels-level) * tick
	}
	return on, off
}

type Option func(*Driver)

// WithSleeper replaces the delay provider (default timex.Sleep).
func WithSleeper(s timex.Sleeper) Option { return func(d *Driver) { d.sleep = s } }

// WithCycleHook is called at the start of every cycle with the values the
// cycle will use.
func WithCycleHook(fn func(levels types.RGBLevels, tick time.Duration)) Option {
	return func(d *Driver) { d.onCycle = fn }
}

type Driver struct {
	pins  [types.NumChannels]hal.OutputPin
	share *shared.Levels
	rate  *shared.FrameRate
	sleep timex.Sleeper

	onCycle func(types.RGBLevels, time.Duration)

	// Shadow copies, refreshed once per cycle and fixed for its duration.
	levels types.RGBLevels
	tick   time.Duration
}

// New drives every channel low and computes the initial tick time.
func New(pins [types.NumChannels]hal.OutputPin, levels *shared.Levels, rate *shared.FrameRate, opts ...Option) *Driver {
	d := &Driver{
		pins:  pins,
		share: levels,
		rate:  rate,
		sleep: timex.Sleep,
	}
	for _, o := range opts {
		o(d)
	}
	for _, p := range d.pins {
		p.Low()
	}
	d.tick = TickTime(rate.Load())
	println("[rgb] TickTime:", int64(d.tick/time.Microsecond), "us")
	return d
}

// Tick returns the tick time of the current (or last) cycle.
func (d *Driver) Tick() time.Duration { return d.tick }

// Run loops forever. It only returns when ctx is cancelled, and the caller
// treats any return as fatal.
func (d *Driver) Run(ctx context.Context) error {
	for {
		// Two independent reads; the pair may straddle an input update.
		d.levels = d.share.Load()
		d.tick = TickTime(d.rate.Load())
		if d.onCycle != nil {
			d.onCycle(d.levels, d.tick)
		}
		for led := range d.pins {
			if !d.step(ctx, led) {
				return ctx.Err()
			}
		}
	}
}

// step plays one channel's slot. Level 0 skips the on phase.
func (d *Driver) step(ctx context.Context, led int) bool {
	on, off := OnOff(d.levels[led], d.tick)
	if on > 0 {
		d.pins[led].High()
		ok := d.sleep(ctx, on)
		d.pins[led].Low()
		if !ok {
			return false
		}
	}
	if off > 0 {
		return d.sleep(ctx, off)
	}
	return true
}
