package train

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/neura-ml/neura/internal/nn"
	"github.com/neura-ml/neura/internal/optim"
)

// Config parameterizes one training run.
//
// The historical fast/balanced/optimal training variants are all instances
// of this single loop; see FastConfig, BalancedConfig and OptimalConfig for
// the tuned presets.
type Config struct {
	Epochs    int
	BatchSize int      // samples per parameter update; the last batch may be shorter
	Schedule  Schedule // learning-rate decay policy (default: Optimal)
	ClipNorm  float64  // combined-L2 gradient clip bound; 0 disables clipping
	Balanced  bool     // use the class-imbalance loss and weighted backward pass
	Verbose   bool     // print per-epoch progress
	LogEvery  int      // progress cadence in epochs when Verbose (default: 20)
	RNG       *rand.Rand
}

// FastConfig is the aggressive preset: fast decay, no clipping, plain MSE.
func FastConfig(epochs, batchSize int) Config {
	return Config{Epochs: epochs, BatchSize: batchSize, Schedule: Aggressive}
}

// BalancedConfig is the class-imbalance preset: slow decay, clipping at 2.0,
// recall-weighted loss and gradients.
func BalancedConfig(epochs, batchSize int) Config {
	return Config{Epochs: epochs, BatchSize: batchSize, Schedule: Conservative, ClipNorm: 2.0, Balanced: true}
}

// OptimalConfig is the staged preset: staged decay with clipping at 2.5.
func OptimalConfig(epochs, batchSize int) Config {
	return Config{Epochs: epochs, BatchSize: batchSize, Schedule: Optimal, ClipNorm: 2.5}
}

// Trainer drives one task's training to convergence or early stop.
type Trainer struct {
	config Config
	rng    *rand.Rand
}

// New creates a trainer, filling unset config fields with defaults.
func New(config Config) *Trainer {
	if config.BatchSize < 1 {
		config.BatchSize = 1
	}
	if config.Schedule == nil {
		config.Schedule = Optimal
	}
	if config.LogEvery <= 0 {
		config.LogEvery = 20
	}
	rng := config.RNG
	if rng == nil {
		//nolint:gosec // Batch shuffling is not security-critical.
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Trainer{config: config, rng: rng}
}

// Train runs the epoch/batch loop on the given sample pairs and returns the
// metrics of the run. The network's parameters are updated in place; the
// samples are only read.
//
// Each epoch reshuffles a fresh index permutation, partitions it into
// contiguous batches, accumulates per-layer gradients over each batch,
// averages them, optionally clips, and applies one SGD update per layer.
// Training stops early once the epochs without improvement exceed the
// schedule's patience threshold. An empty dataset is a no-op.
func (t *Trainer) Train(net *nn.Network, inputs, targets []*mat.VecDense) *nn.TrainingMetrics {
	if len(inputs) != len(targets) {
		panic(fmt.Sprintf("train.Trainer.Train: %d inputs but %d targets", len(inputs), len(targets)))
	}

	metrics := nn.NewTrainingMetrics()
	if len(inputs) == 0 {
		return metrics
	}

	optimizer := optim.NewSGD(optim.Config{LR: net.LearningRate()})

	indices := make([]int, len(inputs))
	for i := range indices {
		indices[i] = i
	}

	for epoch := 0; epoch < t.config.Epochs; epoch++ {
		t.rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		var epochLoss, epochNorm float64
		batches := 0
		for start := 0; start < len(indices); start += t.config.BatchSize {
			end := start + t.config.BatchSize
			if end > len(indices) {
				end = len(indices)
			}
			loss, norm := runBatch(net, inputs, targets, indices[start:end], optimizer,
				t.config.ClipNorm, t.config.Balanced)
			epochLoss += loss
			epochNorm += norm
			batches++
		}
		if batches == 0 {
			continue
		}

		avgLoss := epochLoss / float64(batches)
		avgNorm := epochNorm / float64(batches)

		optimizer.SetLR(t.config.Schedule.Next(epoch, optimizer.GetLR()))

		improved := metrics.Update(avgLoss, avgNorm, optimizer.GetLR())
		if t.config.Verbose && (epoch%t.config.LogEvery == 0 || epoch == t.config.Epochs-1 || improved) {
			marker := " "
			if improved {
				marker = "*"
			}
			fmt.Printf("Epoch %4d %s Loss: %.6f | LR: %.6f\n", epoch, marker, avgLoss, optimizer.GetLR())
		}

		if metrics.PatienceCounter > t.config.Schedule.Patience() {
			if t.config.Verbose {
				fmt.Printf("Early stop at epoch %d (no improvement for %d epochs)\n",
					epoch, metrics.PatienceCounter)
			}
			break
		}
	}

	return metrics
}

// TrainFast trains with the aggressive preset.
func TrainFast(net *nn.Network, inputs, targets []*mat.VecDense, epochs, batchSize int) *nn.TrainingMetrics {
	return New(FastConfig(epochs, batchSize)).Train(net, inputs, targets)
}

// TrainBalanced trains with the class-imbalance preset.
func TrainBalanced(net *nn.Network, inputs, targets []*mat.VecDense, epochs, batchSize int) *nn.TrainingMetrics {
	return New(BalancedConfig(epochs, batchSize)).Train(net, inputs, targets)
}

// TrainOptimal trains with the staged preset.
func TrainOptimal(net *nn.Network, inputs, targets []*mat.VecDense, epochs, batchSize int) *nn.TrainingMetrics {
	return New(OptimalConfig(epochs, batchSize)).Train(net, inputs, targets)
}

// runBatch processes one batch: per-sample forward-with-cache, loss and
// backward, gradient summing, averaging by batch size, optional clipping and
// one optimizer update per layer. Returns the batch's average loss and the
// averaged gradients' pre-clip combined norm.
func runBatch(net *nn.Network, inputs, targets []*mat.VecDense, batch []int,
	optimizer *optim.SGD, clipNorm float64, balanced bool) (float64, float64) {
	if len(batch) == 0 {
		return 0, 0
	}

	var sums []nn.LayerGrads
	var totalLoss float64

	for _, idx := range batch {
		output, caches := net.ForwardWithCache(inputs[idx])

		var grads []nn.LayerGrads
		if balanced {
			totalLoss += net.BalancedLoss(output, targets[idx])
			grads = net.BackwardBalanced(output, targets[idx], caches)
		} else {
			totalLoss += net.MSELoss(output, targets[idx])
			grads = net.Backward(output, targets[idx], caches)
		}

		if sums == nil {
			sums = grads
			continue
		}
		for i := range sums {
			sums[i].Weights.Add(sums[i].Weights, grads[i].Weights)
			sums[i].Biases.AddVec(sums[i].Biases, grads[i].Biases)
		}
	}

	inv := 1 / float64(len(batch))
	for i := range sums {
		sums[i].Weights.Scale(inv, sums[i].Weights)
		sums[i].Biases.ScaleVec(inv, sums[i].Biases)
	}

	norm := ClipGradients(sums, clipNorm)

	for i := 0; i < net.Len(); i++ {
		layer := net.Layer(i)
		layer.SetWeights(optimizer.UpdateWeights(layer.Weights(), sums[i].Weights))
		layer.SetBiases(optimizer.UpdateBiases(layer.Biases(), sums[i].Biases))
	}

	return totalLoss / float64(len(batch)), norm
}
