package types

// Levels is the number of discrete brightness steps per channel.
// Valid channel levels are 0..Levels-1.
const Levels = 16

// NumChannels is fixed: red, green, blue.
const NumChannels = 3

// Channel indices into RGBLevels.
const (
	Red   = 0
	Green = 1
	Blue  = 2
)

// ChannelNames is indexed by channel.
var ChannelNames = [NumChannels]string{"red", "green", "blue"}

// RGBLevels is the brightness vector, one level per channel.
type RGBLevels [NumChannels]uint32

// MaxLevels returns a vector with every channel at full brightness.
func MaxLevels() RGBLevels {
	return RGBLevels{Levels - 1, Levels - 1, Levels - 1}
}

// ---- Input selection ----

// Selection is what the knob currently controls.
type Selection uint8

const (
	SelectFrameRate Selection = iota
	SelectRed
	SelectGreen
	SelectBlue
)

func (s Selection) String() string {
	switch s {
	case SelectRed:
		return "RED LED"
	case SelectGreen:
		return "GREEN LED"
	case SelectBlue:
		return "BLUE LED"
	default:
		return "FRAME RATE"
	}
}

// Channel returns the channel index for a channel selection.
// ok is false for SelectFrameRate.
func (s Selection) Channel() (ch int, ok bool) {
	switch s {
	case SelectRed:
		return Red, true
	case SelectGreen:
		return Green, true
	case SelectBlue:
		return Blue, true
	default:
		return 0, false
	}
}

// ---- Diagnostics (retained on the bus) ----

// RGBState is the snapshot published after every accepted input change.
type RGBState struct {
	Levels    RGBLevels `json:"levels"`
	FrameRate uint32    `json:"frame_rate"`
	Selection Selection `json:"selection"`
	Seq       uint32    `json:"seq"`
}

// TaskFault is published when a long-lived task leaves its loop.
type TaskFault struct {
	Task  string `json:"task"`
	Error string `json:"error"`
	AtMs  int64  `json:"at_ms"`
}
