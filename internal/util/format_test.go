package util

import (
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00.0"},
		{-time.Second, "0:00.0"},
		{1550 * time.Millisecond, "0:01.5"},
		{59*time.Second + 990*time.Millisecond, "0:59.9"},
		{61 * time.Second, "1:01.0"},
		{10*time.Minute + 5*time.Second, "10:05.0"},
	}
	for _, c := range cases {
		if got := FormatElapsed(c.in); got != c.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
