package main

import (
	"fmt"
	"math"

	"github.com/neura-ml/neura/data"
	"github.com/neura-ml/neura/nn"
)

// classificationEval holds the confusion matrix and derived metrics of the
// classifier over the full classification set.
type classificationEval struct {
	truePositives  int
	trueNegatives  int
	falsePositives int
	falseNegatives int
	loss           float64 // average binary cross-entropy
	accuracy       float64
	precision      float64
	recall         float64
	f1             float64
}

// evaluateClassification thresholds predictions at 0.5 and accumulates the
// confusion matrix plus the clamped binary cross-entropy loss.
func evaluateClassification(net *nn.Network, dataset *data.Dataset) classificationEval {
	var eval classificationEval
	var totalLoss float64

	for i, input := range dataset.ClassificationInputs {
		target := dataset.ClassificationTargets[i]
		prediction := net.Forward(input)
		totalLoss += net.BCELoss(prediction, target)

		predicted := prediction.AtVec(0) > 0.5
		actual := target.AtVec(0) > 0.5
		switch {
		case predicted && actual:
			eval.truePositives++
		case !predicted && !actual:
			eval.trueNegatives++
		case predicted && !actual:
			eval.falsePositives++
		default:
			eval.falseNegatives++
		}
	}

	total := len(dataset.ClassificationInputs)
	if total == 0 {
		return eval
	}

	eval.loss = totalLoss / float64(total)
	eval.accuracy = float64(eval.truePositives+eval.trueNegatives) / float64(total)
	if tp := eval.truePositives; tp+eval.falsePositives > 0 {
		eval.precision = float64(tp) / float64(tp+eval.falsePositives)
	}
	if tp := eval.truePositives; tp+eval.falseNegatives > 0 {
		eval.recall = float64(tp) / float64(tp+eval.falseNegatives)
	}
	if eval.precision+eval.recall > 0 {
		eval.f1 = 2 * eval.precision * eval.recall / (eval.precision + eval.recall)
	}

	return eval
}

func (e classificationEval) print() {
	fmt.Println("  Classification confusion matrix (rows: actual, cols: predicted):")
	fmt.Printf("    Parkinson's  %4d  %4d\n", e.truePositives, e.falseNegatives)
	fmt.Printf("    Healthy      %4d  %4d\n", e.falsePositives, e.trueNegatives)
	fmt.Printf("  Accuracy %.1f%% | Precision %.1f%% | Recall %.1f%% | F1 %.1f%% | BCE loss %.6f\n",
		e.accuracy*100, e.precision*100, e.recall*100, e.f1*100, e.loss)
}

// averageUPDRSError reports the regressor's mean absolute error in original
// UPDRS points (targets are stored divided by 100).
func averageUPDRSError(net *nn.Network, dataset *data.Dataset) float64 {
	if len(dataset.RegressionInputs) == 0 {
		return 0
	}

	var total float64
	for i, input := range dataset.RegressionInputs {
		predicted := net.Forward(input).AtVec(0) * 100
		actual := dataset.RegressionTargets[i].AtVec(0) * 100
		total += math.Abs(predicted - actual)
	}
	return total / float64(len(dataset.RegressionInputs))
}
