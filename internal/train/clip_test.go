package train_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/neura-ml/neura/internal/nn"
	"github.com/neura-ml/neura/internal/train"
)

func gradsWithNorm5() []nn.LayerGrads {
	// sqrt(3^2 + 4^2) = 5
	return []nn.LayerGrads{{
		Weights: mat.NewDense(1, 1, []float64{3}),
		Biases:  mat.NewVecDense(1, []float64{4}),
	}}
}

func TestGradientNorm(t *testing.T) {
	if norm := train.GradientNorm(gradsWithNorm5()); !floatEqual(norm, 5, 1e-12) {
		t.Errorf("GradientNorm = %f, want 5", norm)
	}

	multi := []nn.LayerGrads{
		{Weights: mat.NewDense(1, 2, []float64{1, 2}), Biases: mat.NewVecDense(1, []float64{2})},
		{Weights: mat.NewDense(1, 1, []float64{4}), Biases: mat.NewVecDense(1, []float64{0})},
	}
	// sqrt(1 + 4 + 4 + 16) = 5
	if norm := train.GradientNorm(multi); !floatEqual(norm, 5, 1e-12) {
		t.Errorf("GradientNorm across layers = %f, want 5", norm)
	}
}

func TestClipGradients_ScalesDownToBound(t *testing.T) {
	grads := gradsWithNorm5()

	preClip := train.ClipGradients(grads, 2.5)
	if !floatEqual(preClip, 5, 1e-12) {
		t.Errorf("returned pre-clip norm = %f, want 5", preClip)
	}
	if !floatEqual(grads[0].Weights.At(0, 0), 1.5, 1e-12) {
		t.Errorf("clipped weight = %f, want 1.5", grads[0].Weights.At(0, 0))
	}
	if !floatEqual(grads[0].Biases.AtVec(0), 2, 1e-12) {
		t.Errorf("clipped bias = %f, want 2", grads[0].Biases.AtVec(0))
	}
	if norm := train.GradientNorm(grads); !floatEqual(norm, 2.5, 1e-12) {
		t.Errorf("post-clip norm = %f, want 2.5", norm)
	}
}

func TestClipGradients_NoOpWithinBound(t *testing.T) {
	grads := gradsWithNorm5()
	train.ClipGradients(grads, 10)

	if grads[0].Weights.At(0, 0) != 3 || grads[0].Biases.AtVec(0) != 4 {
		t.Error("gradients within bound must be left untouched")
	}
}

func TestClipGradients_ZeroBoundDisables(t *testing.T) {
	grads := gradsWithNorm5()
	preClip := train.ClipGradients(grads, 0)

	if !floatEqual(preClip, 5, 1e-12) {
		t.Errorf("returned norm = %f, want 5", preClip)
	}
	if grads[0].Weights.At(0, 0) != 3 || grads[0].Biases.AtVec(0) != 4 {
		t.Error("a zero bound must disable clipping")
	}
}
