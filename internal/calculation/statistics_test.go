package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/annuity-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{4, 1, 3, 2})
	require.NoError(t, err)

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.Std, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.InDelta(t, 1.75, s.P25, 1e-12)
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.InDelta(t, 3.25, s.P75, 1e-12)
	assert.Equal(t, 4.0, s.Max)
}

func TestSummarize_SingleValue(t *testing.T) {
	s, err := Summarize([]float64{42.5})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 42.5, s.Mean)
	assert.True(t, math.IsNaN(s.Std))
	assert.Equal(t, 42.5, s.Min)
	assert.Equal(t, 42.5, s.P25)
	assert.Equal(t, 42.5, s.Median)
	assert.Equal(t, 42.5, s.Max)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	assert.Error(t, err)
}

func TestSummarize_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Summarize(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestDescribe(t *testing.T) {
	matrix := domain.SimulationMatrix{
		{1, 10},
		{2, 20},
		{3, 30},
	}
	out, err := Describe(matrix)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 3, out[0].Count)
	assert.InDelta(t, 2, out[0].Mean, 1e-12)
	assert.InDelta(t, 1, out[0].Std, 1e-12)
	assert.InDelta(t, 1.5, out[0].P25, 1e-12)
	assert.InDelta(t, 20, out[1].Median, 1e-12)
	assert.InDelta(t, 25, out[1].P75, 1e-12)
	assert.Equal(t, 30.0, out[1].Max)
}

func TestDescribe_Errors(t *testing.T) {
	_, err := Describe(nil)
	assert.Error(t, err)

	_, err = Describe(domain.SimulationMatrix{{1, 2}, {1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 2 has 1 months")
}
