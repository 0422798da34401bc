package montecarlo

import (
	"fmt"

	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/utils"
	"gonum.org/v1/gonum/floats"
)

// NewBoundingBox evaluates f on gridResolution evenly spaced points of the
// interval and uses the largest value as the rectangle height.
// Peaks narrower than the grid spacing are missed, which biases max_y low.
func NewBoundingBox(f func(float64) float64, interval model.Interval,
	gridResolution int) (model.BoundingBox, error) {
	if !interval.Valid() {
		return model.BoundingBox{}, fmt.Errorf("interval %v: %w", interval, common.ErrorInvalidDomain)
	}
	if gridResolution <= 0 {
		return model.BoundingBox{}, fmt.Errorf("grid resolution %d: %w",
			gridResolution, common.ErrorInvalidGridResolution)
	}

	grid := utils.Linspace(interval.Lower, interval.Upper, gridResolution)
	values := make([]float64, len(grid))
	for i, x := range grid {
		y := f(x)
		if !utils.IsFinite(y) {
			return model.BoundingBox{}, fmt.Errorf("f(%v) = %v: %w", x, y, common.ErrorDegenerateFunction)
		}
		if y < 0 {
			return model.BoundingBox{}, fmt.Errorf("f(%v) = %v: %w", x, y, common.ErrorNegativeFunction)
		}
		values[i] = y
	}

	maxY := floats.Max(values)
	if maxY <= 0 {
		return model.BoundingBox{}, fmt.Errorf("max_y = %v on %v: %w", maxY, interval,
			common.ErrorDegenerateFunction)
	}

	return model.BoundingBox{
		Interval: interval,
		MaxY:     maxY,
	}, nil
}
