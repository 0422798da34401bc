package study

import (
	"context"
	"fmt"
	"time"

	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/montecarlo"
	"github.com/uyouii/montecarlo-integration/oracle"
	"github.com/uyouii/montecarlo-integration/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// RunStudyParallel is RunStudy with the sample counts estimated concurrently.
// Each sample count gets its own stream seeded from the study source in input
// order, so a seeded study gives the same records whatever the scheduling.
// Records keep the input order. The first error cancels the remaining work.
func RunStudyParallel(ctx context.Context, f func(float64) float64, a, b float64,
	sampleCounts []int, o oracle.Oracle, opts ...Option) (report *model.StudyReport, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("RunStudyParallel recover panic error!", zap.Any("err", r),
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
	logger.Info("begin parallel study", zap.Int("workers", cfg.workers), zap.Ints("sampleCounts", sampleCounts))

	seeds := make([]uint64, len(sampleCounts))
	base := rand.New(cfg.src)
	for i := range seeds {
		seeds[i] = base.Uint64()
	}

	records := make([]*model.ConvergenceRecord, len(sampleCounts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, n := range sampleCounts {
		i, n := i, n
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("estimate worker recover panic error!", zap.Any("err", r),
						zap.String("panic info", utils.GetPanicInfo()))
					err = fmt.Errorf("integrand panicked: %v: %w", r, common.ErrorInvalidValue)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}

			src := rand.NewSource(seeds[i])
			result, err := montecarlo.Estimate(gctx, f, a, b, n, cfg.estimatorOptions(src)...)
			if err != nil {
				return fmt.Errorf("failed at sample count %d: %w", n, err)
			}
			records[i] = model.NewConvergenceRecord(n, result.IntegralEstimate, trueValue, result.StdError)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("parallel study failed", zap.Error(err))
		return nil, err
	}
	// the parent context may have been cancelled after the last worker finished
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Records = records
	report.CompletedAt = time.Now()
	logger.Info("parallel study finished", zap.Int("records", len(records)))
	return report, nil
}
