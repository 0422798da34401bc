// Package study measures how the rejection sampling estimate converges to a
// reference value as the sample count grows.
//
// Every sample count is an independent trial with fresh points. The records
// of a study are therefore not refinements of one growing sample, and the
// error is only expected to shrink, not guaranteed to.
package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/montecarlo"
	"github.com/uyouii/montecarlo-integration/oracle"
	"github.com/uyouii/montecarlo-integration/utils"
	"go.uber.org/zap"
)

// RunStudy estimates the integral of f over [a, b] once per sample count, in
// the given order, and measures each estimate against the oracle.
// The first failing estimation aborts the whole study.
func RunStudy(ctx context.Context, f func(float64) float64, a, b float64,
	sampleCounts []int, o oracle.Oracle, opts ...Option) (report *model.StudyReport, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("RunStudy recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			report, err = nil, fmt.Errorf("integrand panicked: %v: %w", r, common.ErrorInvalidValue)
		}
	}()

	cfg := newStudyConfig(opts...)
	trueValue, err := prepare(ctx, a, b, sampleCounts, o)
	if err != nil {
		return nil, err
	}

	report = newReport(cfg, a, b, trueValue)
	logger = logger.With(zap.String("runID", report.RunID), zap.String("function", cfg.functionName))
	logger.Info("begin study", zap.Float64("trueValue", trueValue), zap.Ints("sampleCounts", sampleCounts))

	for _, n := range sampleCounts {
		result, err := montecarlo.Estimate(ctx, f, a, b, n, cfg.estimatorOptions(cfg.src)...)
		if err != nil {
			logger.Error("Estimate failed", zap.Error(err), zap.Int("sampleCount", n))
			return nil, fmt.Errorf("failed at sample count %d: %w", n, err)
		}
		report.Records = append(report.Records,
			model.NewConvergenceRecord(n, result.IntegralEstimate, trueValue, result.StdError))
	}

	report.CompletedAt = time.Now()
	logger.Info("study finished", zap.Int("records", len(report.Records)))
	return report, nil
}

// prepare validates the inputs shared by every study and asks the oracle
// for the reference value.
func prepare(ctx context.Context, a, b float64, sampleCounts []int, o oracle.Oracle) (float64, error) {
	logger := utils.GetLogger(ctx)

	if len(sampleCounts) == 0 {
		return 0, common.ErrorEmptySampleCounts
	}
	if o == nil {
		return 0, fmt.Errorf("nil oracle: %w", common.ErrorInvalidValue)
	}

	trueValue, err := o.TrueValue(ctx, a, b)
	if err != nil {
		logger.Error("TrueValue failed", zap.Error(err), zap.Float64("a", a), zap.Float64("b", b))
		return 0, fmt.Errorf("oracle: %w", err)
	}
	return trueValue, nil
}

func newReport(cfg studyConfig, a, b, trueValue float64) *model.StudyReport {
	return &model.StudyReport{
		RunID:     uuid.NewString(),
		Function:  cfg.functionName,
		Interval:  model.NewInterval(a, b),
		TrueValue: trueValue,
		Records:   []*model.ConvergenceRecord{},
	}
}
