package train_test

import (
	"testing"

	"github.com/neura-ml/neura/internal/train"
)

func TestSchedules_HoldPhase(t *testing.T) {
	cases := []struct {
		name     string
		schedule train.Schedule
		lastHold int // last epoch whose Next leaves the rate unchanged
	}{
		{"aggressive", train.Aggressive, 9},
		{"conservative", train.Conservative, 29},
		{"optimal", train.Optimal, 20},
	}

	for _, c := range cases {
		for epoch := 0; epoch <= c.lastHold; epoch++ {
			if got := c.schedule.Next(epoch, 0.1); got != 0.1 {
				t.Errorf("%s.Next(%d, 0.1) = %g, want 0.1", c.name, epoch, got)
			}
		}
		if got := c.schedule.Next(c.lastHold+1, 0.1); got >= 0.1 {
			t.Errorf("%s.Next(%d, 0.1) = %g, want a decayed rate", c.name, c.lastHold+1, got)
		}
	}
}

func TestSchedules_DecayFactors(t *testing.T) {
	cases := []struct {
		name     string
		schedule train.Schedule
		epoch    int
		want     float64
	}{
		{"aggressive mid", train.Aggressive, 15, 0.1 * 0.95},
		{"aggressive late", train.Aggressive, 40, 0.1 * 0.9},
		{"conservative mid", train.Conservative, 50, 0.1 * 0.98},
		{"conservative late", train.Conservative, 150, 0.1 * 0.95},
		{"optimal stage 2", train.Optimal, 40, 0.1 * 0.97},
		{"optimal stage 3", train.Optimal, 75, 0.1 * 0.95},
		{"optimal stage 4", train.Optimal, 120, 0.1 * 0.92},
	}

	for _, c := range cases {
		if got := c.schedule.Next(c.epoch, 0.1); !floatEqual(got, c.want, 1e-15) {
			t.Errorf("%s: Next(%d, 0.1) = %g, want %g", c.name, c.epoch, got, c.want)
		}
	}
}

func TestSchedules_NonIncreasingAndFloored(t *testing.T) {
	cases := []struct {
		name     string
		schedule train.Schedule
		floor    float64
	}{
		{"aggressive", train.Aggressive, 1e-4},
		{"conservative", train.Conservative, 1e-6},
		{"optimal", train.Optimal, 1e-5},
	}

	for _, c := range cases {
		lr := 0.1
		for epoch := 0; epoch < 500; epoch++ {
			next := c.schedule.Next(epoch, lr)
			if next > lr {
				t.Fatalf("%s raised the rate at epoch %d: %g -> %g", c.name, epoch, lr, next)
			}
			if next < c.floor {
				t.Fatalf("%s went below its floor at epoch %d: %g", c.name, epoch, next)
			}
			lr = next
		}
		if lr != c.floor {
			t.Errorf("%s after 500 epochs = %g, want floor %g", c.name, lr, c.floor)
		}
	}
}

func TestSchedules_Patience(t *testing.T) {
	if p := train.Aggressive.Patience(); p != 30 {
		t.Errorf("Aggressive.Patience = %d, want 30", p)
	}
	if p := train.Conservative.Patience(); p != 50 {
		t.Errorf("Conservative.Patience = %d, want 50", p)
	}
	if p := train.Optimal.Patience(); p != 35 {
		t.Errorf("Optimal.Patience = %d, want 35", p)
	}
}
