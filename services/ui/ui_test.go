package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"rgbknob/bus"
	"rgbknob/errcode"
	"rgbknob/shared"
	"rgbknob/types"
)

type scriptedKnob struct {
	levels []uint32
	err    error
	calls  int
}

func (k *scriptedKnob) Measure(context.Context) (uint32, error) {
	if k.err != nil {
		return 0, k.err
	}
	v := k.levels[k.calls%len(k.levels)]
	k.calls++
	return v, nil
}

type button struct{ low bool }

func (b *button) IsLow() bool { return b.low }

type rig struct {
	ui     *UI
	knob   *scriptedKnob
	a, b   *button
	levels *shared.Levels
	rate   *shared.FrameRate
	sub    *bus.Subscription
	waits  []time.Duration
}

func newRig(t *testing.T, knobLevels ...uint32) *rig {
	t.Helper()
	r := &rig{
		knob:   &scriptedKnob{levels: knobLevels},
		a:      &button{},
		b:      &button{},
		levels: shared.NewLevels(types.MaxLevels()),
		rate:   shared.NewFrameRate(100),
	}
	b := bus.NewBus(16)
	conn := b.NewConnection("ui")
	r.sub = b.NewConnection("test").Subscribe(TopicState)
	r.ui = New(r.knob, r.a, r.b, r.levels, r.rate, conn,
		WithSleeper(func(_ context.Context, d time.Duration) bool {
			r.waits = append(r.waits, d)
			return true
		}))
	return r
}

func (r *rig) steps(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := r.ui.Step(context.Background()); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
}

func (r *rig) snapshots() []types.RGBState {
	var out []types.RGBState
	for {
		select {
		case m := <-r.sub.Channel():
			out = append(out, m.Payload.(types.RGBState))
		default:
			return out
		}
	}
}

func TestSelectPriority(t *testing.T) {
	type C struct {
		a, b bool
		want types.Selection
	}
	for _, c := range []C{
		{true, true, types.SelectRed},
		{true, false, types.SelectBlue},
		{false, true, types.SelectGreen},
		{false, false, types.SelectFrameRate},
	} {
		if got := Select(c.a, c.b); got != c.want {
			t.Fatalf("Select(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestFrameRateFloor(t *testing.T) {
	for k := uint32(0); k < types.Levels; k++ {
		if got := FrameRateFor(k); got < 10 || got != k*10+10 {
			t.Fatalf("FrameRateFor(%d) = %d", k, got)
		}
	}
}

func TestBothButtonsUpdateRedOnly(t *testing.T) {
	r := newRig(t, 3)
	r.a.low, r.b.low = true, true
	r.steps(t, 1)

	if got, want := r.levels.Load(), (types.RGBLevels{3, 15, 15}); got != want {
		t.Fatalf("levels = %v, want %v", got, want)
	}
	if r.rate.Load() != 100 {
		t.Fatal("frame rate must not change while a channel is selected")
	}
	snaps := r.snapshots()
	if len(snaps) != 1 || snaps[0].Selection != types.SelectRed || snaps[0].Levels != (types.RGBLevels{3, 15, 15}) {
		t.Fatalf("snapshots = %+v", snaps)
	}
}

func TestSingleButtonChannels(t *testing.T) {
	r := newRig(t, 2, 9)
	r.a.low = true // blue
	r.steps(t, 1)
	r.a.low, r.b.low = false, true // green
	r.steps(t, 1)

	if got, want := r.levels.Load(), (types.RGBLevels{15, 9, 2}); got != want {
		t.Fatalf("levels = %v, want %v", got, want)
	}
}

func TestFrameRateBranch(t *testing.T) {
	r := newRig(t, 0)
	r.steps(t, 1)

	if got := r.rate.Load(); got != 10 {
		t.Fatalf("frame rate = %d, want 10", got)
	}
	if r.levels.Load() != types.MaxLevels() {
		t.Fatal("levels must not change in frame-rate mode")
	}
	snaps := r.snapshots()
	if len(snaps) != 1 || snaps[0].FrameRate != 10 || snaps[0].Selection != types.SelectFrameRate {
		t.Fatalf("snapshots = %+v", snaps)
	}
}

func TestRepeatedLevelPublishesOnce(t *testing.T) {
	r := newRig(t, 5, 5, 5)
	r.steps(t, 3)

	if got := r.ui.Publishes(); got != 1 {
		t.Fatalf("publishes = %d, want 1", got)
	}
	if n := len(r.snapshots()); n != 1 {
		t.Fatalf("snapshots = %d, want 1", n)
	}
	if r.rate.Load() != 60 {
		t.Fatalf("frame rate = %d, want 60", r.rate.Load())
	}

	// Same for a channel.
	r = newRig(t, 5, 5, 5)
	r.b.low = true
	r.steps(t, 3)
	if got := r.ui.Publishes(); got != 1 {
		t.Fatalf("channel publishes = %d, want 1", got)
	}
}

func TestUnchangedDefaultIsNotPublished(t *testing.T) {
	// Knob at max while red is selected matches the seeded shadow.
	r := newRig(t, types.Levels-1)
	r.a.low, r.b.low = true, true
	r.steps(t, 2)
	if r.ui.Publishes() != 0 {
		t.Fatalf("publishes = %d, want 0", r.ui.Publishes())
	}
}

func TestSnapshotSequence(t *testing.T) {
	r := newRig(t, 1, 2, 2, 3)
	r.steps(t, 4)
	snaps := r.snapshots()
	if len(snaps) != 3 {
		t.Fatalf("snapshots = %d, want 3", len(snaps))
	}
	for i, s := range snaps {
		if s.Seq != uint32(i+1) {
			t.Fatalf("snapshot %d seq = %d", i, s.Seq)
		}
	}
	if snaps[2].FrameRate != 40 {
		t.Fatalf("last rate = %d, want 40", snaps[2].FrameRate)
	}
}

func TestRunDebouncesEveryIteration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := newRig(t, 4)
	n := 0
	r.ui.sleep = func(ctx context.Context, d time.Duration) bool {
		r.waits = append(r.waits, d)
		n++
		if n == 3 {
			cancel()
			return false
		}
		return true
	}
	err := r.ui.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if len(r.waits) != 3 {
		t.Fatalf("waits = %v", r.waits)
	}
	for _, w := range r.waits {
		if w != DefaultDebounce {
			t.Fatalf("wait = %v, want %v", w, DefaultDebounce)
		}
	}
	if r.knob.calls != 3 {
		t.Fatalf("knob read %d times, want 3", r.knob.calls)
	}
}

func TestRunStopsOnKnobError(t *testing.T) {
	r := newRig(t, 0)
	r.knob.err = &errcode.E{C: errcode.SampleFailed, Op: "knob"}
	err := r.ui.Run(context.Background())
	if errcode.Of(err) != errcode.SampleFailed {
		t.Fatalf("Run = %v, want sample_failed", err)
	}
}

func TestNilConnection(t *testing.T) {
	k := &scriptedKnob{levels: []uint32{7}}
	u := New(k, &button{}, &button{}, shared.NewLevels(types.RGBLevels{}), shared.NewFrameRate(100), nil)
	if err := u.Step(context.Background()); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if s := u.Snapshot(); s.FrameRate != 80 || s.Seq != 1 {
		t.Fatalf("snapshot = %+v", s)
	}
}
