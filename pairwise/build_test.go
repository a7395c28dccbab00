package pairwise_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distmat/dist"
	"github.com/katalvlaran/distmat/pairwise"
)

const sqrt2 = 1.4142135623730951

// TestBuild_UnitSquare builds the unit-square distance store under
// Euclidean and checks every pair against the known geometry.
func TestBuild_UnitSquare(t *testing.T) {
	labels := []string{"a", "b", "c", "d"}
	rows := [][]float64{
		{0, 0}, // a
		{1, 0}, // b
		{0, 1}, // c
		{1, 1}, // d
	}

	d, err := pairwise.Build(labels, rows, pairwise.Euclidean{})
	require.NoError(t, err)

	assert.Equal(t, labels, d.Labels(), "row order must be preserved")
	assert.Equal(t, []float64{1, 1, sqrt2, sqrt2, 1, 1}, d.Values(),
		"canonical order (a,b),(a,c),(a,d),(b,c),(b,d),(c,d)")
}

// TestBuild_ParallelDeterminism requires bit-identical condensed
// values for sequential and several worker-pool degrees, including a
// pool larger than the task count.
func TestBuild_ParallelDeterminism(t *testing.T) {
	n := 37
	labels := make([]string, n)
	rows := make([][]float64, n)
	for i := range rows {
		labels[i] = fmt.Sprintf("row-%02d", i)
		rows[i] = []float64{
			math.Sin(float64(i)), math.Cos(float64(3 * i)), float64(i % 7),
		}
	}

	sequential, err := pairwise.Build(labels, rows, pairwise.Euclidean{})
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 1000} {
		parallel, err := pairwise.Build(labels, rows, pairwise.Euclidean{},
			pairwise.WithWorkers(workers))
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, sequential.Values(), parallel.Values(),
			"workers=%d must be bit-identical to sequential", workers)
	}
}

// TestBuild_MetricFailFast aborts on the first metric error, tags it
// with the offending pair's labels, keeps the cause in the chain and
// returns no store.
func TestBuild_MetricFailFast(t *testing.T) {
	boom := errors.New("sensor gap")
	metric := pairwise.MetricFunc(func(a, b []float64) (float64, error) {
		if a[0] == 2 || b[0] == 2 {
			return 0, boom
		}

		return math.Abs(a[0] - b[0]), nil
	})

	labels := []string{"u", "v", "w"}
	rows := [][]float64{{1}, {2}, {3}}

	for _, workers := range []int{1, 4} {
		d, err := pairwise.Build(labels, rows, metric, pairwise.WithWorkers(workers))
		assert.Nil(t, d, "no store escapes a failed build (workers=%d)", workers)
		assert.ErrorIs(t, err, pairwise.ErrMetricFailed)
		assert.ErrorIs(t, err, boom, "metric's own error must stay in the chain")
		assert.Contains(t, err.Error(), `"v"`, "offending pair label must be reported")
	}
}

// TestBuild_InputValidation pins nil-metric, length-mismatch,
// empty-input and duplicate-label failures.
func TestBuild_InputValidation(t *testing.T) {
	rows := [][]float64{{0}, {1}}

	_, err := pairwise.Build([]string{"a", "b"}, rows, nil)
	assert.ErrorIs(t, err, pairwise.ErrNilMetric)

	_, err = pairwise.Build([]string{"a"}, rows, pairwise.Euclidean{})
	assert.ErrorIs(t, err, dist.ErrLengthMismatch)

	_, err = pairwise.Build(nil, nil, pairwise.Euclidean{})
	assert.ErrorIs(t, err, dist.ErrBadShape)

	_, err = pairwise.Build([]string{"a", "a"}, rows, pairwise.Euclidean{})
	assert.ErrorIs(t, err, dist.ErrDuplicateLabel)
}

// TestBuild_RejectsNaNMetric surfaces a NaN-producing metric as the
// store's finiteness violation rather than storing poison.
func TestBuild_RejectsNaNMetric(t *testing.T) {
	nan := pairwise.MetricFunc(func(a, b []float64) (float64, error) {
		return math.NaN(), nil
	})

	_, err := pairwise.Build([]string{"a", "b"}, [][]float64{{0}, {1}}, nan)
	assert.ErrorIs(t, err, dist.ErrNaNInf)
}

// TestBuild_SingleRow yields a valid one-item store with an empty
// triangle and no metric invocations.
func TestBuild_SingleRow(t *testing.T) {
	calls := 0
	counting := pairwise.MetricFunc(func(a, b []float64) (float64, error) {
		calls++

		return 0, nil
	})

	d, err := pairwise.Build([]string{"only"}, [][]float64{{1, 2}}, counting)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
	assert.Zero(t, calls, "no pairs, no metric calls")
}

// TestWithWorkers_BadValue panics on a nonsensical pool size.
func TestWithWorkers_BadValue(t *testing.T) {
	assert.Panics(t, func() { pairwise.WithWorkers(0) })
}
