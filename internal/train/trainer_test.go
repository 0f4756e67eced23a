package train_test

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/neura-ml/neura/internal/nn"
	"github.com/neura-ml/neura/internal/train"
)

func floatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// constantSchedule keeps the rate fixed; useful for isolating the loop from
// decay effects.
type constantSchedule struct {
	patience int
}

func (constantSchedule) Next(_ int, lr float64) float64 { return lr }
func (c constantSchedule) Patience() int                { return c.patience }

func vec(values ...float64) *mat.VecDense {
	return mat.NewVecDense(len(values), values)
}

func TestTrainer_Train_PanicsOnLengthMismatch(t *testing.T) {
	net := nn.NewWithRand(0.1, rand.New(rand.NewSource(1)))
	net.AddLayer(1, 1, nn.Linear)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched sample counts")
		}
	}()
	train.New(train.Config{Epochs: 1}).Train(net, []*mat.VecDense{vec(1)}, nil)
}

func TestTrainer_Train_EmptyDataset(t *testing.T) {
	net := nn.NewWithRand(0.1, rand.New(rand.NewSource(1)))
	net.AddLayer(1, 1, nn.Linear)

	metrics := train.New(train.Config{Epochs: 10}).Train(net, nil, nil)
	if len(metrics.Losses) != 0 {
		t.Errorf("empty dataset produced %d epochs, want 0", len(metrics.Losses))
	}
	if !math.IsInf(metrics.BestLoss, 1) {
		t.Errorf("BestLoss = %f, want +Inf", metrics.BestLoss)
	}
}

// TestTrainer_EarlyStopping trains a network whose single ReLU unit is dead:
// the input is zero, so the pre-activation is zero, the sub-gradient is zero
// and the loss can never improve after the first epoch. The run must stop one
// epoch after the patience threshold is exceeded.
func TestTrainer_EarlyStopping(t *testing.T) {
	net := nn.NewWithRand(0.5, rand.New(rand.NewSource(2)))
	net.AddLayer(1, 1, nn.ReLU)

	inputs := []*mat.VecDense{vec(0)}
	targets := []*mat.VecDense{vec(0.8)}

	config := train.FastConfig(200, 1)
	config.RNG = rand.New(rand.NewSource(3))
	metrics := train.New(config).Train(net, inputs, targets)

	// Epoch 0 improves on +Inf; the counter then climbs one per epoch and
	// crosses the aggressive patience of 30 at epoch 31.
	if len(metrics.Losses) != 32 {
		t.Errorf("ran %d epochs, want 32", len(metrics.Losses))
	}
	if metrics.BestLoss != metrics.Losses[0] {
		t.Errorf("BestLoss = %f, want the first epoch's loss %f", metrics.BestLoss, metrics.Losses[0])
	}
	if !floatEqual(metrics.BestLoss, 0.64, 1e-12) {
		t.Errorf("BestLoss = %f, want 0.64", metrics.BestLoss)
	}
}

func TestTrainer_Train_FitsLinearData(t *testing.T) {
	net := nn.NewWithRand(0.3, rand.New(rand.NewSource(4)))
	net.AddLayer(1, 1, nn.Linear)

	var inputs, targets []*mat.VecDense
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		inputs = append(inputs, vec(x))
		targets = append(targets, vec(2*x+0.1))
	}

	config := train.Config{
		Epochs:    400,
		BatchSize: 5,
		Schedule:  constantSchedule{patience: 1000},
		RNG:       rand.New(rand.NewSource(5)),
	}
	metrics := train.New(config).Train(net, inputs, targets)

	if loss := net.Evaluate(inputs, targets); loss > 1e-3 {
		t.Errorf("final loss = %g, want <= 1e-3", loss)
	}
	if len(metrics.Losses) != 400 {
		t.Errorf("ran %d epochs, want 400", len(metrics.Losses))
	}
	if len(metrics.LearningRates) != len(metrics.Losses) || len(metrics.GradientNorms) != len(metrics.Losses) {
		t.Error("metric traces must have one entry per epoch")
	}
}

func TestTrainer_LearningRateFollowsSchedule(t *testing.T) {
	net := nn.NewWithRand(0.1, rand.New(rand.NewSource(6)))
	net.AddLayer(1, 1, nn.Linear)

	inputs := []*mat.VecDense{vec(0.5)}
	targets := []*mat.VecDense{vec(0.25)}

	config := train.FastConfig(40, 1)
	config.RNG = rand.New(rand.NewSource(7))
	metrics := train.New(config).Train(net, inputs, targets)

	for i := 1; i < len(metrics.LearningRates); i++ {
		if metrics.LearningRates[i] > metrics.LearningRates[i-1] {
			t.Fatalf("learning rate rose at epoch %d: %g -> %g",
				i, metrics.LearningRates[i-1], metrics.LearningRates[i])
		}
	}
	// The aggressive hold ends after epoch 9.
	if metrics.LearningRates[0] != 0.1 {
		t.Errorf("epoch 0 rate = %g, want 0.1", metrics.LearningRates[0])
	}
	if len(metrics.LearningRates) > 15 && metrics.LearningRates[14] >= 0.1 {
		t.Errorf("epoch 14 rate = %g, want decayed below 0.1", metrics.LearningRates[14])
	}
}

// TestTrainer_XOR is the end-to-end convergence check: a 2-4-1 network with a
// tanh hidden layer learns XOR to a small mean squared error.
func TestTrainer_XOR(t *testing.T) {
	net := nn.NewWithRand(0.5, rand.New(rand.NewSource(1)))
	net.AddLayer(2, 4, nn.Tanh).AddLayer(4, 1, nn.Sigmoid)

	inputs := []*mat.VecDense{vec(0, 0), vec(0, 1), vec(1, 0), vec(1, 1)}
	targets := []*mat.VecDense{vec(0), vec(1), vec(1), vec(0)}

	config := train.Config{
		Epochs:    3000,
		BatchSize: 4,
		Schedule:  constantSchedule{patience: 5000},
		RNG:       rand.New(rand.NewSource(8)),
	}
	metrics := train.New(config).Train(net, inputs, targets)

	if metrics.BestLoss >= 0.05 {
		t.Fatalf("best loss = %f, want < 0.05", metrics.BestLoss)
	}

	// Every corner must land on the right side of 0.5.
	for i, input := range inputs {
		out := net.Forward(input).AtVec(0)
		want := targets[i].AtVec(0)
		if (out > 0.5) != (want > 0.5) {
			t.Errorf("XOR(%v) = %f, want on the %g side of 0.5", input.RawVector().Data, out, want)
		}
	}
}
