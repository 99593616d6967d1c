package game

import (
	"testing"
	"time"

	"voxgen/internal/config"
)

func TestFPSLimiterUnlimited(t *testing.T) {
	config.SetFPSLimit(0)
	f := NewFPSLimiter()
	start := time.Now()
	for range 100 {
		f.Wait(false)
	}
	if d := time.Since(start); d > 50*time.Millisecond {
		t.Errorf("unlimited wait took %v", d)
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	defer config.SetFPSLimit(0)
	config.SetFPSLimit(100)

	f := NewFPSLimiter()
	start := time.Now()
	for range 5 {
		f.Wait(false)
	}
	if d := time.Since(start); d < 45*time.Millisecond {
		t.Errorf("5 frames at 100fps took %v", d)
	}
}

func TestFPSLimiterPausedCap(t *testing.T) {
	config.SetFPSLimit(0)
	f := NewFPSLimiter()
	start := time.Now()
	f.Wait(true)
	f.Wait(true)
	if d := time.Since(start); d < 60*time.Millisecond {
		t.Errorf("2 paused frames took %v", d)
	}
}
