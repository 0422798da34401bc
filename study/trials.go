package study

import (
	"context"
	"fmt"

	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/oracle"
	"github.com/uyouii/montecarlo-integration/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// RunTrials repeats the study trials times with independent streams and
// averages the errors per sample count. A single study is too noisy to show
// the O(1/sqrt(n)) trend, the averages are not.
func RunTrials(ctx context.Context, f func(float64) float64, a, b float64,
	sampleCounts []int, o oracle.Oracle, trials int, opts ...Option) (summaries []*model.TrialSummary, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("RunTrials recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			summaries, err = nil, fmt.Errorf("integrand panicked: %v: %w", r, common.ErrorInvalidValue)
		}
	}()

	if trials <= 0 {
		return nil, fmt.Errorf("trials %d: %w", trials, common.ErrorInvalidValue)
	}
	trueValue, err := prepare(ctx, a, b, sampleCounts, o)
	if err != nil {
		return nil, err
	}
	// ask the oracle once, not once per trial
	cached := oracle.Func(func(context.Context, float64, float64) (float64, error) {
		return trueValue, nil
	})

	cfg := newStudyConfig(opts...)
	base := rand.New(cfg.src)

	estimates := make([][]float64, len(sampleCounts))
	absErrs := make([][]float64, len(sampleCounts))
	relErrs := make([][]float64, len(sampleCounts))
	for trial := 0; trial < trials; trial++ {
		trialOpts := append(append([]Option{}, opts...), WithSource(rand.NewSource(base.Uint64())))
		report, err := RunStudy(ctx, f, a, b, sampleCounts, cached, trialOpts...)
		if err != nil {
			logger.Error("RunStudy failed", zap.Error(err), zap.Int("trial", trial))
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}
		for i, record := range report.Records {
			estimates[i] = append(estimates[i], record.Estimate)
			absErrs[i] = append(absErrs[i], record.AbsoluteError)
			relErrs[i] = append(relErrs[i], record.RelativeErrorPercent)
		}
	}

	summaries = make([]*model.TrialSummary, len(sampleCounts))
	for i, n := range sampleCounts {
		meanAbs, stdAbs := stat.MeanStdDev(absErrs[i], nil)
		if trials == 1 {
			stdAbs = 0
		}
		summaries[i] = &model.TrialSummary{
			SampleCount:              n,
			Trials:                   trials,
			MeanEstimate:             stat.Mean(estimates[i], nil),
			MeanAbsoluteError:        meanAbs,
			StdDevAbsoluteError:      stdAbs,
			MeanRelativeErrorPercent: stat.Mean(relErrs[i], nil),
		}
	}

	logger.Info("trials finished", zap.Int("trials", trials), zap.Ints("sampleCounts", sampleCounts))
	return summaries, nil
}
