package frame

import (
	"testing"
	"time"
)

func TestClockDelta(t *testing.T) {
	c := NewClock(50)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := c.Delta(start); got != 20*time.Millisecond {
		t.Fatalf("first Delta() = %v, want one nominal frame", got)
	}
	if got := c.Delta(start.Add(35 * time.Millisecond)); got != 35*time.Millisecond {
		t.Fatalf("Delta() = %v, want 35ms", got)
	}
	if got := c.Delta(start); got != 0 {
		t.Fatalf("Delta() going backwards = %v, want 0", got)
	}
}

func TestClockDefaultsTo60(t *testing.T) {
	if got := NewClock(0).Nominal(); got != time.Second/60 {
		t.Fatalf("Nominal() = %v", got)
	}
}
