package timex

import (
	"context"
	"testing"
	"time"
)

func TestMicros(t *testing.T) {
	if got := Micros(2083); got != 2083*time.Microsecond {
		t.Fatalf("Micros = %v", got)
	}
}

func TestSleepCompletes(t *testing.T) {
	start := time.Now()
	if !Sleep(context.Background(), 5*time.Millisecond) {
		t.Fatal("Sleep reported cancellation")
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Fatal("Sleep returned early")
	}
}

func TestSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	if Sleep(ctx, time.Hour) {
		t.Fatal("Sleep should report cancellation")
	}
	if Sleep(ctx, 0) {
		t.Fatal("zero Sleep on a cancelled ctx should report cancellation")
	}
}
