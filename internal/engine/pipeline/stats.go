package pipeline

import (
	"math"
	"sort"

	"go.trai.ch/glean/internal/core/domain"
)

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// sampleStd is the standard deviation with Bessel's correction. A single
// observation has no spread to estimate and yields 0.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// pearson computes the Pearson correlation coefficient between x and y.
// Sequences of different lengths cannot be paired and a constant sequence
// has no defined correlation; both are refused.
func pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, domain.ErrLengthMismatch
	}
	if len(x) == 0 {
		return 0, domain.ErrLengthMismatch
	}

	meanX, meanY := mean(x), mean(y)
	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, domain.ErrZeroVariance
	}
	return cov / math.Sqrt(varX*varY), nil
}

// correlationStrength interprets the magnitude of a correlation coefficient.
func correlationStrength(coefficient float64) string {
	switch abs := math.Abs(coefficient); {
	case abs > 0.7:
		return "strong"
	case abs > 0.4:
		return "moderate"
	case abs > 0.2:
		return "weak"
	default:
		return "very weak"
	}
}
