package study

import (
	"fmt"
	"math"

	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"gonum.org/v1/gonum/stat"
)

// FitConvergenceRate fits log(absolute error) against log(sample count).
// Rejection sampling should give a slope close to -0.5.
// Records with a zero error carry no information on a log scale and are skipped.
func FitConvergenceRate(records []*model.ConvergenceRecord) (*model.ConvergenceRate, error) {
	ns := make([]int, 0, len(records))
	errs := make([]float64, 0, len(records))
	for _, record := range records {
		ns = append(ns, record.SampleCount)
		errs = append(errs, record.AbsoluteError)
	}
	return fitRate(ns, errs)
}

// FitTrialRate is FitConvergenceRate on the mean errors of repeated trials.
func FitTrialRate(summaries []*model.TrialSummary) (*model.ConvergenceRate, error) {
	ns := make([]int, 0, len(summaries))
	errs := make([]float64, 0, len(summaries))
	for _, summary := range summaries {
		ns = append(ns, summary.SampleCount)
		errs = append(errs, summary.MeanAbsoluteError)
	}
	return fitRate(ns, errs)
}

func fitRate(ns []int, errs []float64) (*model.ConvergenceRate, error) {
	xs, ys := []float64{}, []float64{}
	distinct := map[int]struct{}{}
	for i := range ns {
		if ns[i] <= 0 || !(errs[i] > 0) || math.IsInf(errs[i], 0) {
			continue
		}
		xs = append(xs, math.Log(float64(ns[i])))
		ys = append(ys, math.Log(errs[i]))
		distinct[ns[i]] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, fmt.Errorf("need 2 distinct sample counts with a positive error, got %d: %w",
			len(distinct), common.ErrorInvalidValue)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return &model.ConvergenceRate{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(xs, ys, nil, intercept, slope),
	}, nil
}

// TheoreticalErrors is the O(1/sqrt(n)) line through the first record.
func TheoreticalErrors(records []*model.ConvergenceRecord) []float64 {
	if len(records) == 0 {
		return nil
	}
	first := records[0]
	res := make([]float64, len(records))
	for i, record := range records {
		res[i] = first.AbsoluteError * math.Sqrt(float64(first.SampleCount)/float64(record.SampleCount))
	}
	return res
}
