// cmd/boardtest/main.go
//
// Bring-up check for a freshly wired board: steps each LED channel through
// every level while printing knob and button readings.
package main

import (
	"context"
	"time"

	"tinygo.org/x/drivers"

	"rgbknob/hal/platform"
	"rgbknob/knob"
	"rgbknob/services/config"
	"rgbknob/services/rgb"
	"rgbknob/shared"
	"rgbknob/types"
	"rgbknob/x/fmtx"
)

// ---------- Configuration ----------

const (
	stepDelay = 150 * time.Millisecond
	frameRate = 100

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

func main() {
	time.Sleep(2 * time.Second)
	ctx := context.Background()

	cfg, err := config.NewService().Load(platform.BoardName)
	if err != nil {
		panic(err.Error())
	}
	board, err := platform.Open(cfg)
	if err != nil {
		panic(err.Error())
	}
	k, err := knob.New(ctx, board.Knob, cfg.Knob)
	if err != nil {
		panic(err.Error())
	}

	levels := shared.NewLevels(types.RGBLevels{})
	rate := shared.NewFrameRate(frameRate)
	go func() {
		err := rgb.New(board.RGB, levels, rate).Run(ctx)
		println("[boardtest] rgb exited:", err.Error())
	}()

	for cycle := 1; cyclesToRun == 0 || cycle <= cyclesToRun; cycle++ {
		fmtx.Fprintf(board.Console, "[boardtest] cycle %d\n", cycle)
		for ch := 0; ch < types.NumChannels; ch++ {
			for lvl := uint32(0); lvl < types.Levels; lvl++ {
				levels.Update(func(v *types.RGBLevels) {
					*v = types.RGBLevels{}
					v[ch] = lvl
				})
				time.Sleep(stepDelay)
			}
			if err := k.Update(drivers.Voltage); err != nil {
				println("[boardtest] knob:", err.Error())
				continue
			}
			fmtx.Fprintf(board.Console, "%5s done  knob=%2d  A=%t B=%t\n",
				types.ChannelNames[ch], k.Level(), board.ButtonA.IsLow(), board.ButtonB.IsLow())
		}
	}
	levels.Store(types.RGBLevels{})
	select {}
}
