// Package visual turns estimation and study results into plain data series
// for a plotting front end: a scatter of the sample points split by
// classification, the curve and sampling rectangle, and the convergence
// series with its O(1/sqrt(n)) reference line. Nothing here renders.
package visual

import (
	"fmt"
	"math/rand"

	"github.com/lightstep/varopt/simple"
	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/study"
	"github.com/uyouii/montecarlo-integration/utils"
)

// DefaultMaxDisplay is how many sample points a scatter shows at most.
const DefaultMaxDisplay = 5000

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ScatterSeries struct {
	Under []model.SamplePoint `json:"under"`
	Over  []model.SamplePoint `json:"over"`
}

func (s *ScatterSeries) Size() int {
	return len(s.Under) + len(s.Over)
}

// Scatter splits the sample points of result into under and over the curve.
// When there are more than maxDisplay points, a uniform subset of maxDisplay
// points drawn without replacement is shown instead.
func Scatter(result *model.EstimationResult, maxDisplay int, seed int64) (*ScatterSeries, error) {
	if result == nil || len(result.Samples) == 0 {
		return nil, fmt.Errorf("no sample points kept: %w", common.ErrorInvalidValue)
	}
	if maxDisplay <= 0 {
		return nil, fmt.Errorf("max display %d: %w", maxDisplay, common.ErrorInvalidValue)
	}

	displayed := result.Samples
	if len(displayed) > maxDisplay {
		reservoir := simple.New(maxDisplay, rand.New(rand.NewSource(seed)))
		for _, p := range result.Samples {
			reservoir.Add(p)
		}
		displayed = make([]model.SamplePoint, 0, reservoir.Size())
		for i := 0; i < reservoir.Size(); i++ {
			displayed = append(displayed, reservoir.Get(i).(model.SamplePoint))
		}
	}

	series := &ScatterSeries{}
	for _, p := range displayed {
		if p.UnderCurve {
			series.Under = append(series.Under, p)
		} else {
			series.Over = append(series.Over, p)
		}
	}
	return series, nil
}

// Curve samples f on n evenly spaced points of [a, b], for the filled area plot.
func Curve(f func(float64) float64, a, b float64, n int) []Point {
	xs := utils.Linspace(a, b, n)
	res := make([]Point, len(xs))
	for i, x := range xs {
		res[i] = Point{X: x, Y: f(x)}
	}
	return res
}

// Rectangle is the closed outline of the sampling box.
func Rectangle(box model.BoundingBox) []Point {
	a, b := box.Interval.Lower, box.Interval.Upper
	return []Point{
		{X: a, Y: 0},
		{X: b, Y: 0},
		{X: b, Y: box.MaxY},
		{X: a, Y: box.MaxY},
		{X: a, Y: 0},
	}
}

type ConvergencePoint struct {
	SampleCount          int     `json:"sample_count"`
	AbsoluteError        float64 `json:"absolute_error"`
	RelativeErrorPercent float64 `json:"relative_error_percent"`
	Theoretical          float64 `json:"theoretical"`
}

// ConvergenceSeries pairs each record with the O(1/sqrt(n)) line anchored at the first one.
func ConvergenceSeries(report *model.StudyReport) []ConvergencePoint {
	if report.IsEmpty() {
		return nil
	}
	theoretical := study.TheoreticalErrors(report.Records)
	res := make([]ConvergencePoint, len(report.Records))
	for i, record := range report.Records {
		res[i] = ConvergencePoint{
			SampleCount:          record.SampleCount,
			AbsoluteError:        record.AbsoluteError,
			RelativeErrorPercent: record.RelativeErrorPercent,
			Theoretical:          theoretical[i],
		}
	}
	return res
}
