package nn

import "math"

// TrainingMetrics is an append-only log of one training run: per-epoch loss,
// gradient-norm and learning-rate traces, plus best-loss/patience
// bookkeeping for early stopping. A fresh instance is created per run; there
// is no reset.
type TrainingMetrics struct {
	Losses          []float64
	GradientNorms   []float64
	LearningRates   []float64
	BestLoss        float64
	PatienceCounter int
}

// NewTrainingMetrics creates empty metrics with BestLoss at +Inf.
func NewTrainingMetrics() *TrainingMetrics {
	return &TrainingMetrics{
		BestLoss: math.Inf(1),
	}
}

// Update appends one epoch's values and updates the best-loss/patience
// bookkeeping. Returns true when the loss improved on the best seen so far;
// otherwise the patience counter is incremented.
func (m *TrainingMetrics) Update(loss, gradNorm, lr float64) bool {
	m.Losses = append(m.Losses, loss)
	m.GradientNorms = append(m.GradientNorms, gradNorm)
	m.LearningRates = append(m.LearningRates, lr)

	improved := loss < m.BestLoss
	if improved {
		m.BestLoss = loss
		m.PatienceCounter = 0
	} else {
		m.PatienceCounter++
	}

	return improved
}
