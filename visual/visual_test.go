package visual

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/montecarlo"
	"github.com/uyouii/montecarlo-integration/oracle"
	"github.com/uyouii/montecarlo-integration/study"
)

func square(x float64) float64 {
	return x * x
}

func TestScatterAllPoints(t *testing.T) {
	result, err := montecarlo.Estimate(context.Background(), square, 0, 2, 1000, montecarlo.WithSeed(1))
	require.NoError(t, err)

	series, err := Scatter(result, DefaultMaxDisplay, 1)
	require.NoError(t, err)
	assert.Equal(t, 1000, series.Size())
	assert.Len(t, series.Under, result.PointsUnder)
	for _, p := range series.Under {
		assert.True(t, p.UnderCurve)
	}
	for _, p := range series.Over {
		assert.False(t, p.UnderCurve)
	}
}

func TestScatterSubset(t *testing.T) {
	result, err := montecarlo.Estimate(context.Background(), square, 0, 2, 50000, montecarlo.WithSeed(2))
	require.NoError(t, err)

	series, err := Scatter(result, 5000, 7)
	require.NoError(t, err)
	assert.Equal(t, 5000, series.Size())

	// the displayed share under the curve follows the full sample
	share := float64(len(series.Under)) / float64(series.Size())
	assert.InDelta(t, result.HitRatio, share, 0.03)

	again, err := Scatter(result, 5000, 7)
	require.NoError(t, err)
	assert.Equal(t, series, again)
}

func TestScatterErrors(t *testing.T) {
	_, err := Scatter(nil, 10, 1)
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	result, err := montecarlo.Estimate(context.Background(), square, 0, 2, 100,
		montecarlo.WithSeed(1), montecarlo.WithKeepSamples(false))
	require.NoError(t, err)
	_, err = Scatter(result, 10, 1)
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	result, err = montecarlo.Estimate(context.Background(), square, 0, 2, 100, montecarlo.WithSeed(1))
	require.NoError(t, err)
	_, err = Scatter(result, 0, 1)
	require.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestCurveAndRectangle(t *testing.T) {
	curve := Curve(square, 0, 2, 5)
	require.Len(t, curve, 5)
	assert.Equal(t, Point{X: 0, Y: 0}, curve[0])
	assert.InDelta(t, 1.0, curve[2].Y, 1e-15)

	box := model.BoundingBox{Interval: model.NewInterval(0, 2), MaxY: 4}
	outline := Rectangle(box)
	require.Len(t, outline, 5)
	assert.Equal(t, outline[0], outline[4])
	assert.Equal(t, Point{X: 2, Y: 4}, outline[2])
}

func TestConvergenceSeries(t *testing.T) {
	assert.Nil(t, ConvergenceSeries(nil))

	report, err := study.RunStudy(context.Background(), square, 0, 2, []int{1000, 4000},
		oracle.Power(2), study.WithSeed(1))
	require.NoError(t, err)

	series := ConvergenceSeries(report)
	require.Len(t, series, 2)
	assert.Equal(t, 1000, series[0].SampleCount)
	assert.Equal(t, report.Records[0].AbsoluteError, series[0].Theoretical)
	assert.InDelta(t, report.Records[0].AbsoluteError/2, series[1].Theoretical, 1e-15)
	assert.Equal(t, report.Records[1].RelativeErrorPercent, series[1].RelativeErrorPercent)
}
