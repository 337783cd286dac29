// Package diag renders bus snapshots as text on the board console.
// Output is best-effort; write errors are dropped.
package diag

import (
	"context"
	"io"

	"rgbknob/bus"
	"rgbknob/types"
	"rgbknob/x/fmtx"
)

var (
	topicRGB    = bus.T("rgb", "#")
	topicConfig = bus.T("config", "#")
)

type Service struct {
	out io.Writer
}

func NewService(out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{out: out}
}

// Start subscribes before returning, so retained messages published
// earlier are not missed, then renders in a goroutine until ctx ends.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	rgbSub := conn.Subscribe(topicRGB)
	cfgSub := conn.Subscribe(topicConfig)
	go s.serviceLoop(ctx, conn, rgbSub, cfgSub)
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection, rgbSub, cfgSub *bus.Subscription) {
	defer conn.Unsubscribe(cfgSub)
	defer conn.Unsubscribe(rgbSub)

	for {
		select {
		case <-ctx.Done():
			println("[diag] stopping")
			return
		case msg, ok := <-rgbSub.Channel():
			if !ok {
				return
			}
			s.render(msg)
		case msg, ok := <-cfgSub.Channel():
			if !ok {
				return
			}
			s.render(msg)
		}
	}
}

func (s *Service) render(msg *bus.Message) {
	switch p := msg.Payload.(type) {
	case types.RGBState:
		WriteState(s.out, p)
	case types.Config:
		WriteConfig(s.out, p)
	case types.TaskFault:
		fmtx.Fprintf(s.out, "FATAL: task %s exited: %s\n", p.Task, p.Error)
	}
}

// WriteState prints one line per channel and the frame rate, preceded by
// a blank line.
func WriteState(w io.Writer, st types.RGBState) {
	fmtx.Fprintf(w, "\n")
	for i, name := range types.ChannelNames {
		fmtx.Fprintf(w, "%s: %d\n", name, st.Levels[i])
	}
	fmtx.Fprintf(w, "frame rate: %d\n", st.FrameRate)
}

func WriteConfig(w io.Writer, c types.Config) {
	fmtx.Fprintf(w, "board: %s\n", c.Board)
	fmtx.Fprintf(w, "pins: r=%d g=%d b=%d a=%d b=%d knob=%d\n",
		c.Pins.Red, c.Pins.Green, c.Pins.Blue, c.Pins.ButtonA, c.Pins.ButtonB, c.Pins.Knob)
	fmtx.Fprintf(w, "defaults: level=%d frame rate=%d debounce=%dms\n", c.Level, c.FrameRate, c.DebounceMs)
}
