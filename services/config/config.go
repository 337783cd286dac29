package config

import (
	"context"

	"rgbknob/bus"
	"rgbknob/errcode"
	"rgbknob/types"
	"rgbknob/x/fmtx"
	"rgbknob/x/strx"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	defaultBoard = "host"
)

// TopicRGB carries the retained types.Config in use.
var TopicRGB = bus.T(configPrefix, "rgb")

// Lookup allows overriding how configs are resolved.
var Lookup = func(board string) (types.Config, bool) {
	c, ok := boardConfigs[board]
	return c, ok
}

// Validate checks a config before any hardware is touched.
func Validate(c types.Config) error {
	bad := func(msg string) error {
		return &errcode.E{C: errcode.InvalidParams, Op: serviceName, Msg: msg}
	}
	switch {
	case c.FrameRate == 0:
		return bad("frame_rate must be > 0")
	case c.Level > types.Levels-1:
		return bad(fmtx.Sprintf("level %d out of range", c.Level))
	case c.Knob.MaxRaw <= 0 || c.Knob.FullScale <= 0:
		return bad("knob range must be positive")
	}
	pins := [...]int{c.Pins.Red, c.Pins.Green, c.Pins.Blue, c.Pins.ButtonA, c.Pins.ButtonB, c.Pins.Knob}
	for i, p := range pins {
		if p < 0 {
			return &errcode.E{C: errcode.UnknownPin, Op: serviceName, Msg: fmtx.Sprintf("pin %d", p)}
		}
		for _, q := range pins[:i] {
			if p == q {
				return bad(fmtx.Sprintf("pin %d used twice", p))
			}
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type Service struct {
	Name string
}

func NewService() *Service {
	return &Service{Name: serviceName}
}

// Load resolves and validates the config for board ("" means host).
func (s *Service) Load(board string) (types.Config, error) {
	board = strx.Coalesce(board, defaultBoard)
	c, ok := Lookup(board)
	if !ok {
		return types.Config{}, &errcode.E{C: errcode.UnknownBoard, Op: s.Name, Msg: board}
	}
	if err := Validate(c); err != nil {
		return types.Config{}, err
	}
	return c, nil
}

// Start publishes cfg as a retained message so late subscribers (the
// diagnostic console) still see it.
func (s *Service) Start(_ context.Context, conn *bus.Connection, cfg types.Config) {
	conn.Publish(conn.NewMessage(TopicRGB, cfg, true))
}
