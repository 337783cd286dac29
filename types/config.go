package types

// Board configuration, compiled in per target and published on "config/rgb".

type Config struct {
	Board      string     `json:"board"`
	Pins       PinMap     `json:"pins"`
	Knob       KnobConfig `json:"knob"`
	FrameRate  uint32     `json:"frame_rate"`  // default refresh cycles per second
	Level      uint32     `json:"level"`       // default level on every channel
	DebounceMs uint32     `json:"debounce_ms"` // pause after each input iteration
	Baud       uint32     `json:"baud,omitempty"`
}

// PinMap uses the board's native pin numbering.
type PinMap struct {
	Red     int `json:"red"`
	Green   int `json:"green"`
	Blue    int `json:"blue"`
	ButtonA int `json:"button_a"`
	ButtonB int `json:"button_b"`
	Knob    int `json:"knob"`
}

// KnobConfig describes the raw ADC range seen by the knob.
type KnobConfig struct {
	MaxRaw    int32 `json:"max_raw"`    // raw samples are clamped to [0, MaxRaw]
	FullScale int32 `json:"full_scale"` // raw value mapped to fraction 1.0
}
