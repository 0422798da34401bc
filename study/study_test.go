package study

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/montecarlo"
	"github.com/uyouii/montecarlo-integration/oracle"
)

func square(x float64) float64 {
	return x * x
}

func TestRunStudy(t *testing.T) {
	ctx := context.Background()
	counts := []int{1000, 10000, 100000}

	report, err := RunStudy(ctx, square, 0, 2, counts, oracle.Power(2),
		WithSeed(1), WithFunctionName("x^2"))
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	require.NoError(t, err)
	assert.Equal(t, "x^2", report.Function)
	assert.Equal(t, model.NewInterval(0, 2), report.Interval)
	assert.InDelta(t, 8.0/3.0, report.TrueValue, 1e-15)
	assert.False(t, report.CompletedAt.IsZero())

	require.Len(t, report.Records, len(counts))
	for i, record := range report.Records {
		assert.Equal(t, counts[i], record.SampleCount)
		assert.InDelta(t, math.Abs(record.Estimate-8.0/3.0), record.AbsoluteError, 1e-15)
		assert.InDelta(t, record.AbsoluteError/(8.0/3.0)*100, record.RelativeErrorPercent, 1e-12)
		assert.InDelta(t, 8.0/3.0, record.Estimate, 5*record.StdError)
	}
}

func TestRunStudyKeepsInputOrder(t *testing.T) {
	counts := []int{50000, 1000, 20000}
	report, err := RunStudy(context.Background(), square, 0, 2, counts, oracle.Power(2), WithSeed(2))
	require.NoError(t, err)
	for i, record := range report.Records {
		assert.Equal(t, counts[i], record.SampleCount)
	}
}

func TestRunStudyReproducible(t *testing.T) {
	ctx := context.Background()
	counts := []int{1000, 5000}

	first, err := RunStudy(ctx, square, 0, 2, counts, oracle.Power(2), WithSeed(9))
	require.NoError(t, err)
	second, err := RunStudy(ctx, square, 0, 2, counts, oracle.Power(2), WithSeed(9))
	require.NoError(t, err)

	assert.Equal(t, first.Records, second.Records)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunStudyIndependentDraws(t *testing.T) {
	// the same sample count twice is two different trials
	report, err := RunStudy(context.Background(), square, 0, 2, []int{100000, 100000}, oracle.Power(2), WithSeed(4))
	require.NoError(t, err)
	assert.NotEqual(t, report.Records[0].Estimate, report.Records[1].Estimate)
}

func TestRunStudyWithQuadratureOracle(t *testing.T) {
	report, err := RunStudy(context.Background(), math.Sin, 0, math.Pi, []int{20000},
		oracle.NewQuadrature(math.Sin), WithSeed(6))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, report.TrueValue, 1e-10)
	assert.InDelta(t, 2.0, report.Records[0].Estimate, 5*report.Records[0].StdError)
}

func TestRunStudyErrors(t *testing.T) {
	ctx := context.Background()
	failing := oracle.Func(func(context.Context, float64, float64) (float64, error) {
		return 0, common.ErrorOracleFailure
	})

	for _, test := range []struct {
		name   string
		f      func(float64) float64
		a, b   float64
		counts []int
		o      oracle.Oracle
		want   error
	}{
		{name: "empty counts", f: square, a: 0, b: 2, counts: []int{}, o: oracle.Power(2), want: common.ErrorEmptySampleCounts},
		{name: "nil counts", f: square, a: 0, b: 2, o: oracle.Power(2), want: common.ErrorEmptySampleCounts},
		{name: "nil oracle", f: square, a: 0, b: 2, counts: []int{10}, want: common.ErrorInvalidValue},
		{name: "oracle failure", f: square, a: 0, b: 2, counts: []int{10}, o: failing, want: common.ErrorOracleFailure},
		{
			name: "quadrature does not converge", f: square, a: 0, b: 1, counts: []int{10},
			o: oracle.NewQuadrature(func(x float64) float64 { return 1 / x }), want: common.ErrorOracleFailure,
		},
		{name: "reversed interval", f: square, a: 2, b: 0, counts: []int{10}, o: oracle.Power(2), want: common.ErrorInvalidDomain},
		{name: "bad count aborts", f: square, a: 0, b: 2, counts: []int{1000, 0, 1000}, o: oracle.Power(2), want: common.ErrorInvalidSampleCount},
		{
			name: "negative function", f: func(x float64) float64 { return x - 1 }, a: 0, b: 2, counts: []int{1000},
			o: oracle.NewAnalytic(func(x float64) float64 { return x*x/2 - x }), want: common.ErrorNegativeFunction,
		},
		{
			name: "panicking integrand", f: func(float64) float64 { panic("boom") }, a: 0, b: 2, counts: []int{10},
			o: oracle.Power(2), want: common.ErrorInvalidValue,
		},
		{
			name: "panicking oracle", f: square, a: 0, b: 2, counts: []int{10},
			o: oracle.NewQuadrature(func(float64) float64 { panic("boom") }), want: common.ErrorInvalidValue,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			report, err := RunStudy(ctx, test.f, test.a, test.b, test.counts, test.o, WithSeed(1))
			require.ErrorIs(t, err, test.want)
			assert.Nil(t, report)

			report, err = RunStudyParallel(ctx, test.f, test.a, test.b, test.counts, test.o, WithSeed(1))
			require.ErrorIs(t, err, test.want)
			assert.Nil(t, report)
		})
	}
}

func TestRunStudyParallel(t *testing.T) {
	ctx := context.Background()
	counts := []int{100000, 1000, 10000, 5000}

	first, err := RunStudyParallel(ctx, square, 0, 2, counts, oracle.Power(2), WithSeed(3), WithWorkers(2))
	require.NoError(t, err)
	second, err := RunStudyParallel(ctx, square, 0, 2, counts, oracle.Power(2), WithSeed(3), WithWorkers(4))
	require.NoError(t, err)

	// the streams are fixed per position, not per worker
	assert.Equal(t, first.Records, second.Records)

	require.Len(t, first.Records, len(counts))
	for i, record := range first.Records {
		assert.Equal(t, counts[i], record.SampleCount)
		assert.InDelta(t, 8.0/3.0, record.Estimate, 5*record.StdError)
	}
}

func TestRunStudyParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := RunStudyParallel(ctx, square, 0, 2, []int{1000, 1000}, oracle.Power(2), WithSeed(1))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}

func TestRunStudyForwardsEstimatorOptions(t *testing.T) {
	_, err := RunStudy(context.Background(), square, 0, 2, []int{100}, oracle.Power(2),
		WithSeed(1), WithEstimatorOptions(montecarlo.WithGridResolution(-1)))
	require.ErrorIs(t, err, common.ErrorInvalidGridResolution)
}

func TestRunTrialsErrorShrinks(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	summaries, err := RunTrials(context.Background(), square, 0, 2, []int{1000, 1000000},
		oracle.Power(2), 20, WithSeed(2024))
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	small, large := summaries[0], summaries[1]
	assert.Equal(t, 1000, small.SampleCount)
	assert.Equal(t, 20, small.Trials)
	assert.Less(t, large.MeanRelativeErrorPercent, small.MeanRelativeErrorPercent/5)
	assert.Less(t, large.MeanAbsoluteError, small.MeanAbsoluteError/5)
	assert.InDelta(t, 8.0/3.0, large.MeanEstimate, 0.01)
}

func TestRunTrialsConvergenceRate(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	counts := []int{1000, 4000, 16000, 64000}
	summaries, err := RunTrials(context.Background(), square, 0, 2, counts, oracle.Power(2), 50, WithSeed(7))
	require.NoError(t, err)

	rate, err := FitTrialRate(summaries)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, rate.Slope, 0.25)
	assert.Greater(t, rate.RSquared, 0.8)
}

func TestRunTrialsErrors(t *testing.T) {
	ctx := context.Background()

	_, err := RunTrials(ctx, square, 0, 2, []int{10}, oracle.Power(2), 0)
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = RunTrials(ctx, square, 0, 2, nil, oracle.Power(2), 3)
	require.ErrorIs(t, err, common.ErrorEmptySampleCounts)

	_, err = RunTrials(ctx, square, 0, 2, []int{10, -1}, oracle.Power(2), 3)
	require.ErrorIs(t, err, common.ErrorInvalidSampleCount)

	summaries, err := RunTrials(ctx, square, 0, 2, []int{10}, oracle.NewQuadrature(func(float64) float64 { panic("boom") }), 3)
	require.ErrorIs(t, err, common.ErrorInvalidValue)
	assert.Nil(t, summaries)
}

func TestRunTrialsSingleTrial(t *testing.T) {
	summaries, err := RunTrials(context.Background(), square, 0, 2, []int{1000}, oracle.Power(2), 1, WithSeed(5))
	require.NoError(t, err)
	assert.Zero(t, summaries[0].StdDevAbsoluteError)
	assert.InDelta(t, math.Abs(summaries[0].MeanEstimate-8.0/3.0), summaries[0].MeanAbsoluteError, 1e-15)
}
