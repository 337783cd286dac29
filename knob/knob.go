// Package knob turns raw potentiometer samples into brightness levels.
package knob

import (
	"context"
	"math"

	"tinygo.org/x/drivers"

	"rgbknob/errcode"
	"rgbknob/hal"
	"rgbknob/types"
	"rgbknob/x/mathx"
)

// Default raw range: SAADC 14-bit samples, with 10000 counts taken as full
// travel of the pot.
const (
	DefaultMaxRaw    int32 = 0x7fff
	DefaultFullScale int32 = 10_000
)

// Margin around the knob's end stops. The usable travel is stretched by
// Levels+margin and shifted down by margin so both extremes land firmly on
// the first and last level despite noise. Tuned for the reference pot.
const margin = 2

// DefaultConfig returns the raw range used by the reference board.
func DefaultConfig() types.KnobConfig {
	return types.KnobConfig{MaxRaw: DefaultMaxRaw, FullScale: DefaultFullScale}
}

// Knob reads one ADC channel. It also satisfies drivers.Sensor for the
// drivers.Voltage measurement.
type Knob struct {
	adc   hal.AnalogSampler
	cfg   types.KnobConfig
	level uint32
}

var _ drivers.Sensor = (*Knob)(nil)

// New calibrates the converter and returns a ready knob. It blocks until
// calibration completes; there is no retry.
func New(ctx context.Context, adc hal.AnalogSampler, cfg types.KnobConfig) (*Knob, error) {
	if adc == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "knob", Msg: "nil sampler"}
	}
	if cfg.MaxRaw <= 0 {
		cfg.MaxRaw = DefaultMaxRaw
	}
	if cfg.FullScale <= 0 {
		cfg.FullScale = DefaultFullScale
	}
	if err := adc.Calibrate(ctx); err != nil {
		return nil, errcode.Wrap(errcode.CalibrationFailed, "knob", err)
	}
	return &Knob{adc: adc, cfg: cfg}, nil
}

// Quantize maps one raw sample to a level in [0, types.Levels-1].
// Order matters: clamp the raw value, scale, clamp the level, then floor.
func Quantize(raw int32, cfg types.KnobConfig) uint32 {
	raw = mathx.Clamp(raw, 0, cfg.MaxRaw)
	frac := float32(raw) / float32(cfg.FullScale)
	lvl := mathx.Clamp(float32(types.Levels+margin)*frac-margin, 0, float32(types.Levels-1))
	return uint32(math.Floor(float64(lvl)))
}

// Measure takes one sample and returns its level. Each call is independent.
func (k *Knob) Measure(ctx context.Context) (uint32, error) {
	raw, err := k.adc.Sample(ctx)
	if err != nil {
		return 0, errcode.Wrap(errcode.SampleFailed, "knob", err)
	}
	return Quantize(raw, k.cfg), nil
}

// Update implements drivers.Sensor. Only drivers.Voltage triggers a sample.
func (k *Knob) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}
	lvl, err := k.Measure(context.Background())
	if err != nil {
		return err
	}
	k.level = lvl
	return nil
}

// Level returns the level from the last successful Update.
func (k *Knob) Level() uint32 { return k.level }
