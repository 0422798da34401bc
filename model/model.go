package model

import (
	"fmt"
	"math"
)

// Interval is the closed integration domain [Lower, Upper].
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

func NewInterval(lower, upper float64) Interval {
	return Interval{Lower: lower, Upper: upper}
}

func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// Valid reports whether Lower < Upper and both bounds are finite.
func (i Interval) Valid() bool {
	if math.IsNaN(i.Lower) || math.IsNaN(i.Upper) || math.IsInf(i.Lower, 0) || math.IsInf(i.Upper, 0) {
		return false
	}
	return i.Lower < i.Upper
}

func (i Interval) String() string {
	return fmt.Sprintf("[%v, %v]", i.Lower, i.Upper)
}

type SamplePoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	UnderCurve bool    `json:"under"`
}

// BoundingBox is the sampling rectangle [Lower, Upper] x [0, MaxY].
// MaxY comes from a dense grid, so it can sit below the true supremum
// of a sharply peaked function.
type BoundingBox struct {
	Interval Interval `json:"interval"`
	MaxY     float64  `json:"max_y"`
}

func (b BoundingBox) Area() float64 {
	return b.Interval.Width() * b.MaxY
}

type ConfidenceInterval struct {
	Level float64 `json:"level"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

func (c *ConfidenceInterval) Contains(value float64) bool {
	if c == nil {
		return false
	}
	return value >= c.Lower && value <= c.Upper
}

type EstimationResult struct {
	IntegralEstimate float64             `json:"integral_estimate"`
	PointsUnder      int                 `json:"points_under"`
	SampleCount      int                 `json:"sample_count"`
	BoundingBox      BoundingBox         `json:"bounding_box"`
	HitRatio         float64             `json:"hit_ratio"`
	StdError         float64             `json:"std_error"`
	Confidence       *ConfidenceInterval `json:"confidence,omitempty"`

	// Samples is only filled when samples are kept, it exists for visualization.
	Samples []SamplePoint `json:"-"`
}

func (r *EstimationResult) DebugString() string {
	return fmt.Sprintf("estimate: %v, under: %v/%v, maxY: %v", r.IntegralEstimate,
		r.PointsUnder, r.SampleCount, r.BoundingBox.MaxY)
}

type QuadratureValue struct {
	Value       float64 `json:"value"`
	AbsError    float64 `json:"abs_error"`
	Evaluations int     `json:"evaluations"`
}
