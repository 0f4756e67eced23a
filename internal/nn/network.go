package nn

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

// positiveGradientBoost amplifies the error signal for minority-class
// samples in BackwardBalanced, mirroring BalancedLoss at the gradient level.
const positiveGradientBoost = 1.5

// bceEpsilon keeps predictions away from the exact 0/1 boundary before
// taking logarithms in BCELoss.
const bceEpsilon = 1e-7

// Cache holds the values recorded for one layer during ForwardWithCache:
// the activation that fed into the layer and the pre-activation sum
// z = W·a + b. Backward differentiates against exactly these values.
type Cache struct {
	Input         *mat.VecDense
	PreActivation *mat.VecDense
}

// LayerGrads holds the loss gradients for one layer's parameters.
type LayerGrads struct {
	Weights *mat.Dense
	Biases  *mat.VecDense
}

// Network is an ordered, append-only sequence of layers.
//
// Layers are appended during a build phase with AddLayer; once training
// starts the sequence is fixed. The caller is responsible for size chaining;
// an inconsistent chain fails fast with a dimension-mismatch panic on the
// first forward pass.
//
// Example:
//
//	net := nn.NewWithRand(0.015, rng)
//	net.AddLayer(22, 64, nn.ReLU).
//	    AddLayer(64, 32, nn.ReLU).
//	    AddLayer(32, 1, nn.Sigmoid)
//	output := net.Forward(input)
type Network struct {
	layers       []*Layer
	learningRate float64
	rng          *rand.Rand
}

// New creates a network with a time-seeded private random source.
func New(learningRate float64) *Network {
	//nolint:gosec // Weight initialization is not security-critical.
	return NewWithRand(learningRate, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a network whose layer initialization draws from the
// given generator, for reproducible construction. Panics if rng is nil.
func NewWithRand(learningRate float64, rng *rand.Rand) *Network {
	if rng == nil {
		panic("nn.NewWithRand: rng must not be nil")
	}
	return &Network{
		learningRate: learningRate,
		rng:          rng,
	}
}

// AddLayer appends a new layer and returns the network for chaining.
func (n *Network) AddLayer(inputSize, outputSize int, activation Activation) *Network {
	n.layers = append(n.layers, NewLayer(inputSize, outputSize, activation, n.rng))
	return n
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at the given index. Panics if out of bounds.
func (n *Network) Layer(index int) *Layer {
	if index < 0 || index >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[index]
}

// LearningRate returns the configured initial learning rate.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// SetLearningRate replaces the configured initial learning rate.
func (n *Network) SetLearningRate(lr float64) {
	n.learningRate = lr
}

// Forward composes all layers sequentially without caching.
func (n *Network) Forward(input *mat.VecDense) *mat.VecDense {
	if len(n.layers) == 0 {
		panic("Network.Forward: network has no layers")
	}
	output := input
	for _, layer := range n.layers {
		output = layer.Forward(output)
	}
	return output
}

// ForwardWithCache runs the same composition as Forward but records, for
// every layer, the activation that fed into it and the pre-activation sum.
// The cache is consumed by Backward.
func (n *Network) ForwardWithCache(input *mat.VecDense) (*mat.VecDense, []Cache) {
	if len(n.layers) == 0 {
		panic("Network.ForwardWithCache: network has no layers")
	}

	caches := make([]Cache, 0, len(n.layers))
	current := mat.VecDenseCopyOf(input)

	for _, layer := range n.layers {
		if current.Len() != layer.inputSize {
			panic(fmt.Sprintf("Network.ForwardWithCache: expected input of length %d, got %d",
				layer.inputSize, current.Len()))
		}
		z := layer.preActivation(current)
		caches = append(caches, Cache{Input: current, PreActivation: z})
		current = layer.activation.Activate(z)
	}

	return current, caches
}

// MSELoss computes the mean of squared per-element differences.
func (n *Network) MSELoss(output, target *mat.VecDense) float64 {
	if output.Len() != target.Len() {
		panic(fmt.Sprintf("Network.MSELoss: output length %d does not match target length %d",
			output.Len(), target.Len()))
	}
	if output.Len() == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < output.Len(); i++ {
		d := output.AtVec(i) - target.AtVec(i)
		sum += d * d
	}
	return sum / float64(output.Len())
}

// BalancedLoss is MSELoss with a ×2 penalty when the target denotes the
// positive minority class (target[0] > 0.5) and the prediction under-shoots
// (output[0] < 0.3). The asymmetry favors recall on the minority class.
func (n *Network) BalancedLoss(output, target *mat.VecDense) float64 {
	base := n.MSELoss(output, target)
	if target.AtVec(0) > 0.5 && output.AtVec(0) < 0.3 {
		return base * 2
	}
	return base
}

// BCELoss computes element-wise binary cross-entropy, clamping predictions
// away from the exact 0/1 boundary so a saturated output cannot produce a
// non-finite loss.
func (n *Network) BCELoss(output, target *mat.VecDense) float64 {
	if output.Len() != target.Len() {
		panic(fmt.Sprintf("Network.BCELoss: output length %d does not match target length %d",
			output.Len(), target.Len()))
	}
	if output.Len() == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < output.Len(); i++ {
		p := math.Min(math.Max(output.AtVec(i), bceEpsilon), 1-bceEpsilon)
		t := target.AtVec(i)
		sum -= t*math.Log(p) + (1-t)*math.Log(1-p)
	}
	return sum / float64(output.Len())
}

// Backward runs backpropagation from the output error back to the first
// layer and returns per-layer gradients in forward order.
//
// The initial error signal is output − target, the MSE gradient up to its
// constant factor. The gradient clipping norms and loss weights used by the
// trainers were tuned against this unscaled convention.
func (n *Network) Backward(output, target *mat.VecDense, caches []Cache) []LayerGrads {
	return n.backward(output, target, caches, 1)
}

// BackwardBalanced is Backward with the initial error signal amplified by
// ×1.5 for positive-class targets, reinforcing minority-class gradients.
func (n *Network) BackwardBalanced(output, target *mat.VecDense, caches []Cache) []LayerGrads {
	boost := 1.0
	if target.AtVec(0) > 0.5 {
		boost = positiveGradientBoost
	}
	return n.backward(output, target, caches, boost)
}

func (n *Network) backward(output, target *mat.VecDense, caches []Cache, boost float64) []LayerGrads {
	if len(n.layers) == 0 {
		panic("Network.Backward: network has no layers")
	}
	if len(caches) != len(n.layers) {
		panic(fmt.Sprintf("Network.Backward: cache holds %d layers, network has %d",
			len(caches), len(n.layers)))
	}

	delta := new(mat.VecDense)
	delta.SubVec(output, target)
	if boost != 1 {
		delta.ScaleVec(boost, delta)
	}

	grads := make([]LayerGrads, len(n.layers))
	for i := len(n.layers) - 1; i >= 0; i-- {
		layer := n.layers[i]
		cache := caches[i]

		delta.MulElemVec(delta, layer.activation.Derivative(cache.PreActivation))

		wg := new(mat.Dense)
		wg.Outer(1, delta, cache.Input)
		grads[i] = LayerGrads{
			Weights: wg,
			Biases:  mat.VecDenseCopyOf(delta),
		}

		if i > 0 {
			prev := new(mat.VecDense)
			prev.MulVec(layer.weights.T(), delta)
			delta = prev
		}
	}

	return grads
}

// Evaluate returns the average MSE loss over a dataset. An empty dataset
// evaluates to zero.
func (n *Network) Evaluate(inputs, targets []*mat.VecDense) float64 {
	if len(inputs) != len(targets) {
		panic(fmt.Sprintf("Network.Evaluate: %d inputs but %d targets", len(inputs), len(targets)))
	}
	if len(inputs) == 0 {
		return 0
	}

	var total float64
	for i, input := range inputs {
		total += n.MSELoss(n.Forward(input), targets[i])
	}
	return total / float64(len(inputs))
}
