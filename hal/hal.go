// Package hal is the hardware boundary consumed by the core tasks.
// Concrete bindings live in hal/platform behind build tags.
package hal

import (
	"context"
	"io"
)

// OutputPin drives one indicator channel. No failure reporting.
type OutputPin interface {
	High()
	Low()
}

// InputPin is a button polled once per input iteration.
type InputPin interface {
	IsLow() bool
}

// AnalogSampler is the knob's ADC front end.
type AnalogSampler interface {
	// Calibrate blocks until the converter is ready. Called once.
	Calibrate(ctx context.Context) error
	// Sample takes one raw reading. Values may fall outside the nominal
	// range (negative or overflow); consumers clamp.
	Sample(ctx context.Context) (int32, error)
}

// Board bundles everything the firmware needs from one target.
type Board struct {
	Name    string
	RGB     [3]OutputPin // red, green, blue
	ButtonA InputPin
	ButtonB InputPin
	Knob    AnalogSampler
	Console io.Writer
}
