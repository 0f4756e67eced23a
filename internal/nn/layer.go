package nn

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Layer is one affine transform followed by an activation.
//
// Performs the transformation: y = activation(W·x + b)
// where:
//   - x is the input vector with length input_size
//   - W is the weight matrix with shape [output_size, input_size]
//   - b is the bias vector with length output_size
//
// Weights are initialized with He-style uniform values scaled by
// sqrt(2/input_size), suited to ReLU-activated layers. Biases start at zero.
// After construction a Layer is mutated only through SetWeights/SetBiases,
// once per processed batch.
type Layer struct {
	weights    *mat.Dense    // [output_size, input_size]
	biases     *mat.VecDense // [output_size]
	activation Activation
	inputSize  int
	outputSize int
}

// NewLayer creates a new layer with He-initialized weights and zero biases.
//
// Weights are drawn uniformly from [-s, s] with s = sqrt(2/inputSize) using
// the provided generator. Panics if either size is below 1 or rng is nil.
func NewLayer(inputSize, outputSize int, activation Activation, rng *rand.Rand) *Layer {
	if inputSize < 1 || outputSize < 1 {
		panic(fmt.Sprintf("nn.NewLayer: layer sizes must be at least 1, got %d×%d", inputSize, outputSize))
	}
	if rng == nil {
		panic("nn.NewLayer: rng must not be nil")
	}

	bound := math.Sqrt(2.0 / float64(inputSize))
	data := make([]float64, outputSize*inputSize)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * bound
	}

	return &Layer{
		weights:    mat.NewDense(outputSize, inputSize, data),
		biases:     mat.NewVecDense(outputSize, nil),
		activation: activation,
		inputSize:  inputSize,
		outputSize: outputSize,
	}
}

// Forward computes activation(W·input + b) without mutating any state.
// Caching intermediate values is the caller's responsibility.
//
// Panics if the input length does not match the layer's input size.
func (l *Layer) Forward(input *mat.VecDense) *mat.VecDense {
	if input.Len() != l.inputSize {
		panic(fmt.Sprintf("Layer.Forward: expected input of length %d, got %d", l.inputSize, input.Len()))
	}
	return l.activation.Activate(l.preActivation(input))
}

// preActivation computes z = W·input + b.
func (l *Layer) preActivation(input *mat.VecDense) *mat.VecDense {
	z := new(mat.VecDense)
	z.MulVec(l.weights, input)
	z.AddVec(z, l.biases)
	return z
}

// Weights returns the weight matrix with shape [output_size, input_size].
func (l *Layer) Weights() *mat.Dense {
	return l.weights
}

// Biases returns the bias vector with length output_size.
func (l *Layer) Biases() *mat.VecDense {
	return l.biases
}

// Activation returns the layer's activation function.
func (l *Layer) Activation() Activation {
	return l.activation
}

// InputSize returns the expected input vector length.
func (l *Layer) InputSize() int {
	return l.inputSize
}

// OutputSize returns the produced output vector length.
func (l *Layer) OutputSize() int {
	return l.outputSize
}

// SetWeights replaces the weight matrix. Panics on a shape mismatch.
func (l *Layer) SetWeights(w *mat.Dense) {
	r, c := w.Dims()
	if r != l.outputSize || c != l.inputSize {
		panic(fmt.Sprintf("Layer.SetWeights: shape mismatch: expected %d×%d, got %d×%d",
			l.outputSize, l.inputSize, r, c))
	}
	l.weights = w
}

// SetBiases replaces the bias vector. Panics on a length mismatch.
func (l *Layer) SetBiases(b *mat.VecDense) {
	if b.Len() != l.outputSize {
		panic(fmt.Sprintf("Layer.SetBiases: length mismatch: expected %d, got %d",
			l.outputSize, b.Len()))
	}
	l.biases = b
}
