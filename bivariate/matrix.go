package bivariate

import (
	"errors"
	"math"
)

var (
	// ErrRaggedTable indicates a table whose rows have unequal lengths.
	ErrRaggedTable = errors.New("bivariate: table rows must all have the same length")

	// ErrInvalidAxis indicates an axis selector outside the documented set.
	ErrInvalidAxis = errors.New("bivariate: axis must be AxisColumns or AxisRows")
)

// Axis selects the direction of a table reduction.
type Axis int

const (
	// AxisColumns reduces down each column (one result per feature).
	AxisColumns Axis = iota
	// AxisRows reduces across each row (one result per sample).
	AxisRows
)

// checkRect verifies that every row of table has the same length.
func checkRect(table [][]float64) error {
	if len(table) == 0 {
		return nil
	}
	width := len(table[0])
	for _, row := range table[1:] {
		if len(row) != width {
			return ErrRaggedTable
		}
	}
	return nil
}

// AxisMean reduces a rectangular table to per-column or per-row means.
// Returns ErrRaggedTable for unequal row lengths and ErrInvalidAxis for an
// axis outside {AxisColumns, AxisRows}; no partial output is produced.
func AxisMean(table [][]float64, axis Axis) ([]float64, error) {
	if axis != AxisColumns && axis != AxisRows {
		return nil, ErrInvalidAxis
	}
	if err := checkRect(table); err != nil {
		return nil, err
	}
	nRows := len(table)
	if nRows == 0 {
		return []float64{}, nil
	}
	nCols := len(table[0])

	if axis == AxisRows {
		out := make([]float64, nRows)
		for i, row := range table {
			if nCols == 0 {
				out[i] = math.NaN()
				continue
			}
			sum := 0.0
			for _, v := range row {
				sum += v
			}
			out[i] = sum / float64(nCols)
		}
		return out, nil
	}

	out := make([]float64, nCols)
	for j := range out {
		sum := 0.0
		for i := 0; i < nRows; i++ {
			sum += table[i][j]
		}
		out[j] = sum / float64(nRows)
	}
	return out, nil
}

// CovMatrix returns the symmetric feature×feature sample covariance matrix
// of a rectangular table (rows are samples, columns are features).
// Returns ErrRaggedTable for unequal row lengths. An empty table yields an
// empty matrix; a single sample yields a matrix of NaN (ddof=1).
func CovMatrix(table [][]float64) ([][]float64, error) {
	if err := checkRect(table); err != nil {
		return nil, err
	}
	nSamples := len(table)
	if nSamples == 0 {
		return [][]float64{}, nil
	}
	nFeatures := len(table[0])

	means, _ := AxisMean(table, AxisColumns)

	out := make([][]float64, nFeatures)
	for i := range out {
		out[i] = make([]float64, nFeatures)
	}
	if nSamples < 2 {
		for i := range out {
			for j := range out[i] {
				out[i][j] = math.NaN()
			}
		}
		return out, nil
	}

	denom := float64(nSamples - 1)
	for i := 0; i < nFeatures; i++ {
		for j := i; j < nFeatures; j++ {
			acc := 0.0
			for k := 0; k < nSamples; k++ {
				acc += (table[k][i] - means[i]) * (table[k][j] - means[j])
			}
			c := acc / denom
			out[i][j] = c
			out[j][i] = c
		}
	}
	return out, nil
}

// CorrMatrix returns the symmetric feature×feature Pearson correlation
// matrix of a rectangular table. The diagonal is 1 except for a constant
// feature, whose entire row and column are NaN. Returns ErrRaggedTable for
// unequal row lengths.
func CorrMatrix(table [][]float64) ([][]float64, error) {
	if err := checkRect(table); err != nil {
		return nil, err
	}
	nSamples := len(table)
	if nSamples == 0 {
		return [][]float64{}, nil
	}
	nFeatures := len(table[0])

	means, _ := AxisMean(table, AxisColumns)

	stds := make([]float64, nFeatures)
	for j := 0; j < nFeatures; j++ {
		acc := 0.0
		for i := 0; i < nSamples; i++ {
			d := table[i][j] - means[j]
			acc += d * d
		}
		if nSamples < 2 {
			stds[j] = math.NaN()
			continue
		}
		stds[j] = math.Sqrt(acc / float64(nSamples-1))
	}

	out := make([][]float64, nFeatures)
	for i := range out {
		out[i] = make([]float64, nFeatures)
	}

	denom := float64(nSamples - 1)
	for i := 0; i < nFeatures; i++ {
		for j := i; j < nFeatures; j++ {
			if stds[i] == 0 || stds[j] == 0 || math.IsNaN(stds[i]) || math.IsNaN(stds[j]) {
				out[i][j] = math.NaN()
				out[j][i] = math.NaN()
				continue
			}
			acc := 0.0
			for k := 0; k < nSamples; k++ {
				acc += ((table[k][i] - means[i]) / stds[i]) * ((table[k][j] - means[j]) / stds[j])
			}
			c := acc / denom
			out[i][j] = c
			out[j][i] = c
		}
	}
	return out, nil
}
