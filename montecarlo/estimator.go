package montecarlo

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// sampler draws points uniformly inside a bounding box.
// x and y share one stream, x is always drawn first.
// distuv.Uniform wraps its Src in a new rand.Rand on every draw, so the
// stream is held once here and scaled by hand.
type sampler struct {
	rnd    *rand.Rand
	lower  float64
	width  float64
	height float64
}

func newSampler(box model.BoundingBox, src rand.Source) *sampler {
	return &sampler{
		rnd:    rand.New(src),
		lower:  box.Interval.Lower,
		width:  box.Interval.Width(),
		height: box.MaxY,
	}
}

func (s *sampler) draw() (float64, float64) {
	x := s.lower + s.width*s.rnd.Float64()
	y := s.height * s.rnd.Float64()
	return x, y
}

// Estimate computes the integral of the non-negative function f over [a, b]
// by rejection sampling: sampleCount points are drawn uniformly in the
// bounding box and the fraction falling on or under the curve is scaled
// by the box area.
//
// The statistical error shrinks as O(1/sqrt(sampleCount)). The result is only
// as good as the grid bound max_y, see NewBoundingBox.
func Estimate(ctx context.Context, f func(float64) float64, a, b float64,
	sampleCount int, opts ...Option) (*model.EstimationResult, error) {
	logger := utils.GetLogger(ctx)
	cfg := newEstimatorConfig(opts...)

	interval := model.NewInterval(a, b)
	if !interval.Valid() {
		return nil, fmt.Errorf("estimate on %v: %w", interval, common.ErrorInvalidDomain)
	}
	if sampleCount <= 0 {
		return nil, fmt.Errorf("estimate with %d samples: %w", sampleCount, common.ErrorInvalidSampleCount)
	}
	if cfg.confidenceLevel <= 0 || cfg.confidenceLevel >= 1 {
		return nil, fmt.Errorf("confidence level %v: %w", cfg.confidenceLevel, common.ErrorInvalidValue)
	}

	box, err := NewBoundingBox(f, interval, cfg.gridResolution)
	if err != nil {
		logger.Error("NewBoundingBox failed", zap.Error(err), zap.Stringer("interval", interval),
			zap.Int("gridResolution", cfg.gridResolution))
		return nil, err
	}

	var samples []model.SamplePoint
	if cfg.keepSamples {
		samples = make([]model.SamplePoint, 0, sampleCount)
	}

	s := newSampler(box, cfg.src)
	pointsUnder := 0
	for start := 0; start < sampleCount; start += cfg.batchSize {
		if err := ctx.Err(); err != nil {
			logger.Info("estimate cancelled", zap.Int("drawn", start), zap.Int("sampleCount", sampleCount))
			return nil, err
		}

		end := min(start+cfg.batchSize, sampleCount)
		for i := start; i < end; i++ {
			x, y := s.draw()
			fx := f(x)
			if fx < 0 {
				err := fmt.Errorf("f(%v) = %v: %w", x, fx, common.ErrorNegativeFunction)
				logger.Error("negative sample", zap.Error(err))
				return nil, err
			}
			under := y <= fx
			if under {
				pointsUnder++
			}
			if cfg.keepSamples {
				samples = append(samples, model.SamplePoint{X: x, Y: y, UnderCurve: under})
			}
		}
	}

	hitRatio := float64(pointsUnder) / float64(sampleCount)
	area := box.Area()
	estimate := hitRatio * area
	stdError := area * math.Sqrt(hitRatio*(1-hitRatio)/float64(sampleCount))

	result := &model.EstimationResult{
		IntegralEstimate: estimate,
		PointsUnder:      pointsUnder,
		SampleCount:      sampleCount,
		BoundingBox:      box,
		HitRatio:         hitRatio,
		StdError:         stdError,
		Confidence:       confidenceInterval(estimate, stdError, area, cfg.confidenceLevel),
		Samples:          samples,
	}

	logger.Debug("estimate finished", zap.String("result", result.DebugString()))
	return result, nil
}

// confidenceInterval is the normal approximation of the binomial proportion,
// clipped to the [0, area] range the estimate can take.
func confidenceInterval(estimate, stdError, area, level float64) *model.ConfidenceInterval {
	z := distuv.UnitNormal.Quantile(0.5 + level/2)
	return &model.ConfidenceInterval{
		Level: level,
		Lower: max(estimate-z*stdError, 0),
		Upper: min(estimate+z*stdError, area),
	}
}
