//go:build tinygo

package platform

import (
	"context"
	"machine"
)

// mcuPin adapts machine.Pin to hal.OutputPin and hal.InputPin.
type mcuPin struct{ p machine.Pin }

func output(n int) *mcuPin {
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return &mcuPin{p: p}
}

func inputPullup(n int) *mcuPin {
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &mcuPin{p: p}
}

func (m *mcuPin) High()       { m.p.High() }
func (m *mcuPin) Low()        { m.p.Low() }
func (m *mcuPin) IsLow() bool { return !m.p.Get() }

// adcSampler reads one ADC pin. machine.ADC.Get is left-aligned to 16 bits;
// samples are reported as 14-bit values.
type adcSampler struct {
	adc machine.ADC
}

func newADC(n int) *adcSampler {
	return &adcSampler{adc: machine.ADC{Pin: machine.Pin(n)}}
}

func (a *adcSampler) Calibrate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	machine.InitADC()
	a.adc.Configure(machine.ADCConfig{})
	return nil
}

func (a *adcSampler) Sample(ctx context.Context) (int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int32(a.adc.Get() >> 2), nil
}
