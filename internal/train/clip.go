package train

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/neura-ml/neura/internal/nn"
)

// GradientNorm returns the combined L2 norm across all weight and bias
// gradients.
func GradientNorm(grads []nn.LayerGrads) float64 {
	var sumSq float64
	for _, g := range grads {
		// Gradient tensors are freshly allocated by backward, so their
		// raw storage is contiguous.
		wd := g.Weights.RawMatrix().Data
		sumSq += floats.Dot(wd, wd)
		bd := g.Biases.RawVector().Data
		sumSq += floats.Dot(bd, bd)
	}
	return math.Sqrt(sumSq)
}

// ClipGradients rescales every gradient tensor by maxNorm/norm when the
// combined L2 norm exceeds maxNorm, guaranteeing the post-clip combined norm
// is at most maxNorm. Gradients already within bound are left untouched.
// Returns the pre-clip combined norm.
func ClipGradients(grads []nn.LayerGrads, maxNorm float64) float64 {
	norm := GradientNorm(grads)
	if maxNorm <= 0 || norm <= maxNorm {
		return norm
	}

	scale := maxNorm / norm
	for _, g := range grads {
		g.Weights.Scale(scale, g.Weights)
		g.Biases.ScaleVec(scale, g.Biases)
	}
	return norm
}
