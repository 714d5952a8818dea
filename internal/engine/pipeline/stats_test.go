package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glean/internal/core/domain"
)

func TestDescriptiveStats(t *testing.T) {
	t.Parallel()

	t.Run("mean", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 3.0, mean([]float64{1, 2, 3, 4, 5}), 1e-9)
		assert.Zero(t, mean(nil))
	})

	t.Run("median odd and even", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 3.0, median([]float64{5, 1, 3, 2, 4}), 1e-9)
		assert.InDelta(t, 2.5, median([]float64{4, 1, 3, 2}), 1e-9)
		assert.Zero(t, median(nil))
	})

	t.Run("median does not reorder input", func(t *testing.T) {
		t.Parallel()

		values := []float64{3, 1, 2}
		median(values)
		assert.Equal(t, []float64{3, 1, 2}, values)
	})

	t.Run("sample std uses n minus one", func(t *testing.T) {
		t.Parallel()

		// Variance of {2,4,4,4,5,5,7,9} is 32/7 with Bessel's correction.
		assert.InDelta(t, 2.13809, sampleStd([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-4)
		assert.Zero(t, sampleStd([]float64{42}))
	})

	t.Run("min max", func(t *testing.T) {
		t.Parallel()

		lo, hi := minMax([]float64{3, -1, 7, 0})
		assert.Equal(t, -1.0, lo)
		assert.Equal(t, 7.0, hi)
	})
}

func TestPearson(t *testing.T) {
	t.Parallel()

	t.Run("perfect positive", func(t *testing.T) {
		t.Parallel()

		r, err := pearson([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, r, 1e-9)
	})

	t.Run("perfect negative", func(t *testing.T) {
		t.Parallel()

		r, err := pearson([]float64{1, 2, 3}, []float64{3, 2, 1})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, r, 1e-9)
	})

	t.Run("length mismatch refused", func(t *testing.T) {
		t.Parallel()

		_, err := pearson([]float64{1, 2}, []float64{1, 2, 3})
		require.ErrorIs(t, err, domain.ErrLengthMismatch)
	})

	t.Run("empty refused", func(t *testing.T) {
		t.Parallel()

		_, err := pearson(nil, nil)
		require.ErrorIs(t, err, domain.ErrLengthMismatch)
	})

	t.Run("constant sequence refused", func(t *testing.T) {
		t.Parallel()

		_, err := pearson([]float64{5, 5, 5}, []float64{1, 2, 3})
		require.ErrorIs(t, err, domain.ErrZeroVariance)
	})
}

func TestCorrelationStrength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "strong", correlationStrength(0.8))
	assert.Equal(t, "strong", correlationStrength(-0.9))
	assert.Equal(t, "moderate", correlationStrength(0.5))
	assert.Equal(t, "weak", correlationStrength(-0.3))
	assert.Equal(t, "very weak", correlationStrength(0.1))
}
