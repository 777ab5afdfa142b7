package common

import (
	"testing"
	"time"
)

func TestTickStep(t *testing.T) {
	cases := []struct {
		tps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{120, time.Second / 120},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, c := range cases {
		if got := TickStep(c.tps); got != c.want {
			t.Fatalf("TickStep(%d) = %v, want %v", c.tps, got, c.want)
		}
	}
}
