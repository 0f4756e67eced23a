package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation identifies one of the element-wise activation functions
// supported by a Layer. The set is closed: every variant has an analytic
// derivative used by backpropagation.
type Activation int

// Supported activation functions.
const (
	// Linear is the identity function. Its derivative is the all-ones vector.
	Linear Activation = iota
	// ReLU computes max(0, v). The sub-gradient at v == 0 is 0 by convention.
	ReLU
	// Sigmoid computes 1 / (1 + exp(-v)).
	Sigmoid
	// Tanh computes the hyperbolic tangent.
	Tanh
	// Softmax computes a numerically stabilized softmax over the whole vector.
	Softmax
)

// String returns the lowercase name of the activation.
func (a Activation) String() string {
	switch a {
	case Linear:
		return "linear"
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case Softmax:
		return "softmax"
	default:
		return "unknown"
	}
}

// Activate applies the activation function element-wise and returns a new
// vector. The input is never mutated.
func (a Activation) Activate(x *mat.VecDense) *mat.VecDense {
	n := x.Len()
	out := mat.NewVecDense(n, nil)

	switch a {
	case Linear:
		out.CopyVec(x)
	case ReLU:
		for i := 0; i < n; i++ {
			v := x.AtVec(i)
			if v > 0 {
				out.SetVec(i, v)
			}
		}
	case Sigmoid:
		for i := 0; i < n; i++ {
			out.SetVec(i, sigmoid(x.AtVec(i)))
		}
	case Tanh:
		for i := 0; i < n; i++ {
			out.SetVec(i, math.Tanh(x.AtVec(i)))
		}
	case Softmax:
		// Shift by the maximum before exponentiating so large logits
		// cannot overflow exp.
		maxVal := math.Inf(-1)
		for i := 0; i < n; i++ {
			if v := x.AtVec(i); v > maxVal {
				maxVal = v
			}
		}
		var sum float64
		for i := 0; i < n; i++ {
			e := math.Exp(x.AtVec(i) - maxVal)
			out.SetVec(i, e)
			sum += e
		}
		out.ScaleVec(1/sum, out)
	default:
		panic("nn: unknown activation")
	}

	return out
}

// Derivative returns the element-wise derivative evaluated at the
// pre-activation values x. Sigmoid and Tanh recompute the activated value
// internally because their closed forms are expressed through it; the caller
// must pass the same x it fed to Activate during the forward pass.
//
// The Softmax derivative is the element-wise s·(1-s) simplification, not the
// full Jacobian. It is only valid when softmax outputs are trained against
// independent per-element targets; the schedules and loss weights in this
// repository were tuned against this convention.
func (a Activation) Derivative(x *mat.VecDense) *mat.VecDense {
	n := x.Len()
	out := mat.NewVecDense(n, nil)

	switch a {
	case Linear:
		for i := 0; i < n; i++ {
			out.SetVec(i, 1)
		}
	case ReLU:
		for i := 0; i < n; i++ {
			if x.AtVec(i) > 0 {
				out.SetVec(i, 1)
			}
		}
	case Sigmoid:
		for i := 0; i < n; i++ {
			s := sigmoid(x.AtVec(i))
			out.SetVec(i, s*(1-s))
		}
	case Tanh:
		for i := 0; i < n; i++ {
			t := math.Tanh(x.AtVec(i))
			out.SetVec(i, 1-t*t)
		}
	case Softmax:
		s := a.Activate(x)
		for i := 0; i < n; i++ {
			v := s.AtVec(i)
			out.SetVec(i, v*(1-v))
		}
	default:
		panic("nn: unknown activation")
	}

	return out
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}
