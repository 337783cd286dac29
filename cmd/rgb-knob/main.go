package main

import (
	"context"
	"time"

	"rgbknob/bus"
	"rgbknob/hal/platform"
	"rgbknob/services/config"
	"rgbknob/services/firmware"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	ctx := context.Background()

	println("[main] rgb-knob on", platform.BoardName)

	cfg, err := config.NewService().Load(platform.BoardName)
	if err != nil {
		panic(err.Error())
	}
	board, err := platform.Open(cfg)
	if err != nil {
		panic(err.Error())
	}

	println("[main] bootstrapping bus …")
	b := bus.NewBus(4)

	// Returns only when a task has exited.
	err = firmware.Run(ctx, board, cfg, b)
	panic(err.Error())
}
