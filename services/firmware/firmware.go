// Package firmware wires a board to the input and output tasks and
// supervises them. Neither task is expected to return.
package firmware

import (
	"context"
	"time"

	"rgbknob/bus"
	"rgbknob/errcode"
	"rgbknob/hal"
	"rgbknob/knob"
	"rgbknob/services/config"
	"rgbknob/services/diag"
	"rgbknob/services/rgb"
	"rgbknob/services/ui"
	"rgbknob/shared"
	"rgbknob/types"
	"rgbknob/x/timex"
)

// TopicFault carries the retained types.TaskFault once a task has exited.
var TopicFault = bus.T("rgb", "fault")

const (
	TaskInput  = "ui"
	TaskOutput = "rgb"
)

type options struct {
	ui  []ui.Option
	rgb []rgb.Option
}

type Option func(*options)

// WithUIOptions is applied after the options derived from the config.
func WithUIOptions(o ...ui.Option) Option {
	return func(x *options) { x.ui = append(x.ui, o...) }
}

func WithRGBOptions(o ...rgb.Option) Option {
	return func(x *options) { x.rgb = append(x.rgb, o...) }
}

type exit struct {
	task string
	err  error
}

// Run sets up shared state, starts the config and diag services, then runs
// both tasks until one of them returns. Setup failures are returned as is.
// A task exit is returned as *errcode.E with code TaskExited after the
// other task has been stopped.
func Run(ctx context.Context, board *hal.Board, cfg types.Config, b *bus.Bus, opts ...Option) error {
	if board == nil || b == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "firmware", Msg: "nil board or bus"}
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	diag.NewService(board.Console).Start(ctx, b.NewConnection("diag"))
	config.NewService().Start(ctx, b.NewConnection("config"), cfg)

	k, err := knob.New(ctx, board.Knob, cfg.Knob)
	if err != nil {
		println("[firmware] knob setup failed:", err.Error())
		return err
	}

	levels := shared.NewLevels(types.RGBLevels{cfg.Level, cfg.Level, cfg.Level})
	rate := shared.NewFrameRate(cfg.FrameRate)

	uiOpts := o.ui
	if cfg.DebounceMs > 0 {
		uiOpts = append([]ui.Option{ui.WithDebounce(time.Duration(cfg.DebounceMs) * time.Millisecond)}, uiOpts...)
	}
	input := ui.New(k, board.ButtonA, board.ButtonB, levels, rate, b.NewConnection(TaskInput), uiOpts...)
	output := rgb.New(board.RGB, levels, rate, o.rgb...)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan exit, 2)
	go func() { done <- exit{TaskOutput, output.Run(runCtx)} }()
	go func() { done <- exit{TaskInput, input.Run(runCtx)} }()

	first := <-done
	cancel()
	<-done

	msg := "returned"
	if first.err != nil {
		msg = first.err.Error()
	}
	println("[firmware] task", first.task, "exited:", msg)
	conn := b.NewConnection("firmware")
	conn.Publish(conn.NewMessage(TopicFault, types.TaskFault{Task: first.task, Error: msg, AtMs: timex.NowMs()}, true))

	return &errcode.E{C: errcode.TaskExited, Op: first.task, Err: first.err}
}
