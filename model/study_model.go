package model

import (
	"math"
	"time"
)

type ConvergenceRecord struct {
	SampleCount          int     `json:"sample_count"`
	Estimate             float64 `json:"estimate"`
	AbsoluteError        float64 `json:"absolute_error"`
	RelativeErrorPercent float64 `json:"relative_error_percent"`
	StdError             float64 `json:"std_error"`
}

func NewConvergenceRecord(sampleCount int, estimate, trueValue, stdError float64) *ConvergenceRecord {
	absErr := math.Abs(estimate - trueValue)
	return &ConvergenceRecord{
		SampleCount:          sampleCount,
		Estimate:             estimate,
		AbsoluteError:        absErr,
		RelativeErrorPercent: absErr / math.Abs(trueValue) * 100,
		StdError:             stdError,
	}
}

// StudyReport is the ordered result table of one convergence study.
type StudyReport struct {
	RunID       string               `json:"run_id"`
	Function    string               `json:"function,omitempty"`
	Interval    Interval             `json:"interval"`
	TrueValue   float64              `json:"true_value"`
	Records     []*ConvergenceRecord `json:"records"`
	CompletedAt time.Time            `json:"completed_at"`
}

func (r *StudyReport) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.Records) == 0
}

// TrialSummary aggregates repeated studies at one sample count.
type TrialSummary struct {
	SampleCount              int     `json:"sample_count"`
	Trials                   int     `json:"trials"`
	MeanEstimate             float64 `json:"mean_estimate"`
	MeanAbsoluteError        float64 `json:"mean_absolute_error"`
	StdDevAbsoluteError      float64 `json:"stddev_absolute_error"`
	MeanRelativeErrorPercent float64 `json:"mean_relative_error_percent"`
}

// ConvergenceRate is the fit log(err) = Intercept + Slope*log(n).
type ConvergenceRate struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// PredictError returns the fitted absolute error at n samples.
func (c *ConvergenceRate) PredictError(n int) float64 {
	return math.Exp(c.Intercept + c.Slope*math.Log(float64(n)))
}
