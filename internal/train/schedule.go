package train

import "math"

// Schedule is a pluggable learning-rate decay policy paired with an
// early-stopping patience threshold.
//
// Next maps the epoch that just finished and the current rate to the rate
// for the next epoch. Every schedule is monotonically non-increasing and
// clamps to its floor; none ever raises the rate.
type Schedule interface {
	Next(epoch int, lr float64) float64
	Patience() int
}

// Built-in schedules, ordered from most to least aggressive decay.
var (
	// Aggressive holds the rate for 10 epochs, then decays ×0.95 until
	// epoch 30 and ×0.9 after, with a high 1e-4 floor to avoid stagnation.
	Aggressive Schedule = aggressive{}

	// Conservative holds the rate for 30 epochs, then decays ×0.98 until
	// epoch 100 and ×0.95 after, down to 1e-6.
	Conservative Schedule = conservative{}

	// Optimal decays in stages: hold through epoch 20, ×0.97 through 60,
	// ×0.95 through 90, ×0.92 beyond, down to 1e-5.
	Optimal Schedule = optimal{}
)

type aggressive struct{}

func (aggressive) Next(epoch int, lr float64) float64 {
	switch {
	case epoch < 10:
	case epoch < 30:
		lr *= 0.95
	default:
		lr *= 0.9
	}
	return math.Max(lr, 1e-4)
}

func (aggressive) Patience() int { return 30 }

type conservative struct{}

func (conservative) Next(epoch int, lr float64) float64 {
	switch {
	case epoch < 30:
	case epoch < 100:
		lr *= 0.98
	default:
		lr *= 0.95
	}
	return math.Max(lr, 1e-6)
}

func (conservative) Patience() int { return 50 }

type optimal struct{}

func (optimal) Next(epoch int, lr float64) float64 {
	switch {
	case epoch <= 20:
	case epoch <= 60:
		lr *= 0.97
	case epoch <= 90:
		lr *= 0.95
	default:
		lr *= 0.92
	}
	return math.Max(lr, 1e-5)
}

func (optimal) Patience() int { return 35 }
