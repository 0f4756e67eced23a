package train

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/neura-ml/neura/internal/nn"
	"github.com/neura-ml/neura/internal/optim"
)

// alternatingClipNorm is the soft clip bound applied to every alternating
// phase batch.
const alternatingClipNorm = 3.0

// Strategy is the per-epoch split of batch work between the two tasks.
// The ratios always sum to 1.
type Strategy struct {
	ClassificationRatio float64
	RegressionRatio     float64
}

// StrategyFor returns the alternation strategy for an epoch given the total
// epoch budget. Early training favors regression to learn shared patterns,
// the middle is balanced, and the final phase favors classification.
func StrategyFor(epoch, totalEpochs int) Strategy {
	progress := float64(epoch) / float64(totalEpochs)
	switch {
	case progress < 0.3:
		return Strategy{ClassificationRatio: 0.3, RegressionRatio: 0.7}
	case progress < 0.7:
		return Strategy{ClassificationRatio: 0.5, RegressionRatio: 0.5}
	default:
		return Strategy{ClassificationRatio: 0.7, RegressionRatio: 0.3}
	}
}

// AlternatingMetrics records one alternating run: per-epoch loss traces for
// both tasks, the learning-rate trace and the best combined loss seen.
type AlternatingMetrics struct {
	ClassificationLosses []float64
	RegressionLosses     []float64
	LearningRates        []float64
	BestCombinedLoss     float64
}

// AlternatingConfig parameterizes an alternating run.
type AlternatingConfig struct {
	Epochs    int
	BatchSize int
	Verbose   bool
	RNG       *rand.Rand
}

// TrainAlternating trains one shared network on two sample sets with
// time-varying emphasis.
//
// Per epoch, each task with a non-zero ratio runs ratio·|dataset|/batchSize
// batches (minimum 1), each drawn by independent random sampling with
// replacement from that task's pairs. This deliberately differs from the
// single-task shuffle-partition discipline. The learning rate decays ×0.9
// every 50 epochs down to 1e-6, independent of the losses, and the run
// never stops early.
func TrainAlternating(net *nn.Network,
	classificationInputs, classificationTargets,
	regressionInputs, regressionTargets []*mat.VecDense,
	config AlternatingConfig) *AlternatingMetrics {
	if config.BatchSize < 1 {
		config.BatchSize = 1
	}
	rng := config.RNG
	if rng == nil {
		//nolint:gosec // Batch sampling is not security-critical.
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	metrics := &AlternatingMetrics{BestCombinedLoss: math.Inf(1)}
	optimizer := optim.NewSGD(optim.Config{LR: net.LearningRate()})

	for epoch := 0; epoch < config.Epochs; epoch++ {
		strategy := StrategyFor(epoch, config.Epochs)

		var classLoss, regLoss float64
		if strategy.ClassificationRatio > 0 {
			batches := phaseBatches(len(classificationInputs), strategy.ClassificationRatio, config.BatchSize)
			classLoss = runPhase(net, classificationInputs, classificationTargets, optimizer,
				batches, config.BatchSize, rng)
		}
		if strategy.RegressionRatio > 0 {
			batches := phaseBatches(len(regressionInputs), strategy.RegressionRatio, config.BatchSize)
			regLoss = runPhase(net, regressionInputs, regressionTargets, optimizer,
				batches, config.BatchSize, rng)
		}

		optimizer.SetLR(alternatingRate(epoch, optimizer.GetLR()))

		metrics.ClassificationLosses = append(metrics.ClassificationLosses, classLoss)
		metrics.RegressionLosses = append(metrics.RegressionLosses, regLoss)
		metrics.LearningRates = append(metrics.LearningRates, optimizer.GetLR())

		combined := classLoss + regLoss
		if combined < metrics.BestCombinedLoss {
			metrics.BestCombinedLoss = combined
		}

		if config.Verbose && (epoch%10 == 0 || epoch == config.Epochs-1) {
			fmt.Printf("Epoch %4d | Class: %.6f | Reg: %.6f | LR: %.6f | Split: %.1f:%.1f\n",
				epoch, classLoss, regLoss, optimizer.GetLR(),
				strategy.ClassificationRatio, strategy.RegressionRatio)
		}
	}

	return metrics
}

// phaseBatches sizes one task's phase: ratio·samples/batchSize, at least 1.
func phaseBatches(samples int, ratio float64, batchSize int) int {
	batches := int(float64(samples)*ratio) / batchSize
	if batches < 1 {
		return 1
	}
	return batches
}

// runPhase runs numBatches batches of one task, each sampled with
// replacement. Returns the phase's average batch loss, zero for an empty
// dataset.
func runPhase(net *nn.Network, inputs, targets []*mat.VecDense,
	optimizer *optim.SGD, numBatches, batchSize int, rng *rand.Rand) float64 {
	if len(inputs) == 0 {
		return 0
	}

	var totalLoss float64
	batch := make([]int, batchSize)
	for b := 0; b < numBatches; b++ {
		// One index per sample so every drawn input stays paired with
		// its own target.
		for i := range batch {
			batch[i] = rng.Intn(len(inputs))
		}
		loss, _ := runBatch(net, inputs, targets, batch, optimizer, alternatingClipNorm, false)
		totalLoss += loss
	}
	return totalLoss / float64(numBatches)
}

// alternatingRate decays the rate ×0.9 every 50 epochs, never below 1e-6.
func alternatingRate(epoch int, lr float64) float64 {
	if epoch > 0 && epoch%50 == 0 {
		lr *= 0.9
	}
	return math.Max(lr, 1e-6)
}
