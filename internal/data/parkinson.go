// Package data loads and prepares the Parkinson's voice-measurement
// datasets consumed by the training pipeline.
package data

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Feature widths of the two tasks.
const (
	ClassificationFeatures = 22 // voice measures from parkinsons.data
	RegressionFeatures     = 16 // voice measures from parkinsons_updrs.data
)

// updrsScale maps the motor-UPDRS score into [0, 1] for regression targets.
const updrsScale = 100.0

// Dataset holds the parallel sample pairs for both tasks. Inputs are
// min-max normalized per feature; classification targets are {0,1} status
// labels, regression targets motor-UPDRS scores divided by 100.
type Dataset struct {
	ClassificationInputs  []*mat.VecDense
	ClassificationTargets []*mat.VecDense
	RegressionInputs      []*mat.VecDense
	RegressionTargets     []*mat.VecDense
}

// Stats summarizes dataset dimensions.
type Stats struct {
	ClassificationSamples  int
	RegressionSamples      int
	ClassificationFeatures int
	RegressionFeatures     int
}

// Load reads parkinsons.data and parkinsons_updrs.data from dir and returns
// a normalized dataset.
func Load(dir string) (*Dataset, error) {
	d := &Dataset{}

	if err := d.loadClassification(filepath.Join(dir, "parkinsons.data")); err != nil {
		return nil, fmt.Errorf("failed to load classification data: %w", err)
	}
	if err := d.loadRegression(filepath.Join(dir, "parkinsons_updrs.data")); err != nil {
		return nil, fmt.Errorf("failed to load regression data: %w", err)
	}

	d.Normalize()
	return d, nil
}

// loadClassification reads the UCI parkinsons.data file: column 0 is the
// subject name, columns 1-22 the voice features and column 23 the binary
// status label. Short rows are skipped.
func (d *Dataset) loadClassification(path string) error {
	records, err := readCSV(path)
	if err != nil {
		return err
	}

	for _, record := range records {
		if len(record) < 24 {
			continue
		}
		features := parseFloats(record[1 : 1+ClassificationFeatures])
		status := parseFloat(record[23])

		d.ClassificationInputs = append(d.ClassificationInputs,
			mat.NewVecDense(ClassificationFeatures, features))
		d.ClassificationTargets = append(d.ClassificationTargets,
			mat.NewVecDense(1, []float64{status}))
	}

	return nil
}

// loadRegression reads the telemonitoring parkinsons_updrs.data file:
// column 4 is the motor-UPDRS score and columns 6-21 the voice features.
// Short rows are skipped; the target is pre-scaled by 1/100.
func (d *Dataset) loadRegression(path string) error {
	records, err := readCSV(path)
	if err != nil {
		return err
	}

	for _, record := range records {
		if len(record) < 22 {
			continue
		}
		features := parseFloats(record[6 : 6+RegressionFeatures])
		motorUPDRS := parseFloat(record[4])

		d.RegressionInputs = append(d.RegressionInputs,
			mat.NewVecDense(RegressionFeatures, features))
		d.RegressionTargets = append(d.RegressionTargets,
			mat.NewVecDense(1, []float64{motorUPDRS / updrsScale}))
	}

	return nil
}

// Normalize rescales every input feature to [0, 1] with per-feature min-max
// bounds computed over the task's samples. Constant features are left
// untouched.
func (d *Dataset) Normalize() {
	normalize(d.ClassificationInputs)
	normalize(d.RegressionInputs)
}

func normalize(inputs []*mat.VecDense) {
	if len(inputs) == 0 {
		return
	}

	features := inputs[0].Len()
	mins := make([]float64, features)
	maxs := make([]float64, features)
	for i := range mins {
		mins[i] = math.Inf(1)
		maxs[i] = math.Inf(-1)
	}

	for _, input := range inputs {
		for i := 0; i < features; i++ {
			v := input.AtVec(i)
			if v < mins[i] {
				mins[i] = v
			}
			if v > maxs[i] {
				maxs[i] = v
			}
		}
	}

	for _, input := range inputs {
		for i := 0; i < features; i++ {
			if span := maxs[i] - mins[i]; span > 0 {
				input.SetVec(i, (input.AtVec(i)-mins[i])/span)
			}
		}
	}
}

// Shuffle permutes both tasks' samples in place, keeping every input paired
// with its target.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	shufflePairs(d.ClassificationInputs, d.ClassificationTargets, rng)
	shufflePairs(d.RegressionInputs, d.RegressionTargets, rng)
}

func shufflePairs(inputs, targets []*mat.VecDense, rng *rand.Rand) {
	rng.Shuffle(len(inputs), func(i, j int) {
		inputs[i], inputs[j] = inputs[j], inputs[i]
		targets[i], targets[j] = targets[j], targets[i]
	})
}

// Stats returns the dataset's dimensions.
func (d *Dataset) Stats() Stats {
	s := Stats{
		ClassificationSamples: len(d.ClassificationInputs),
		RegressionSamples:     len(d.RegressionInputs),
	}
	if s.ClassificationSamples > 0 {
		s.ClassificationFeatures = d.ClassificationInputs[0].Len()
	}
	if s.RegressionSamples > 0 {
		s.RegressionFeatures = d.RegressionInputs[0].Len()
	}
	return s
}

// ClassDistribution counts positive (status > 0.5) and negative
// classification samples, for imbalance reporting.
func (d *Dataset) ClassDistribution() (positive, negative int) {
	for _, target := range d.ClassificationTargets {
		if target.AtVec(0) > 0.5 {
			positive++
		} else {
			negative++
		}
	}
	return positive, negative
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file is empty or missing header")
	}

	// Skip header row.
	return records[1:], nil
}

// parseFloat reads a numeric field; malformed fields read as zero, matching
// the occasional blank cells in the published datasets.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseFloats(fields []string) []float64 {
	values := make([]float64, len(fields))
	for i, field := range fields {
		values[i] = parseFloat(field)
	}
	return values
}
