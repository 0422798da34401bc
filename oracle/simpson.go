package oracle

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/utils"
	"gonum.org/v1/gonum/integrate"
)

const DefaultSimpsonPoints = 10001

// Simpson applies the composite Simpson's rule on a dense grid. The error
// bound is the difference with the same rule on every other grid point.
type Simpson struct {
	F      func(float64) float64
	Points int
}

func NewSimpson(f func(float64) float64) *Simpson {
	return &Simpson{F: f, Points: DefaultSimpsonPoints}
}

func (s *Simpson) Value(ctx context.Context, a, b float64) (*model.QuadratureValue, error) {
	if err := checkInterval(a, b); err != nil {
		return nil, err
	}
	// the half grid needs at least 3 points too
	if s.Points < 5 {
		return nil, fmt.Errorf("simpson with %d points: %w", s.Points, common.ErrorInvalidValue)
	}

	x := utils.Linspace(a, b, s.Points)
	y := make([]float64, len(x))
	for i := range x {
		y[i] = s.F(x[i])
	}

	halfX := make([]float64, 0, len(x)/2+1)
	halfY := make([]float64, 0, len(x)/2+1)
	for i := 0; i < len(x); i += 2 {
		halfX = append(halfX, x[i])
		halfY = append(halfY, y[i])
	}
	if halfX[len(halfX)-1] != x[len(x)-1] {
		halfX = append(halfX, x[len(x)-1])
		halfY = append(halfY, y[len(y)-1])
	}

	value := integrate.Simpsons(x, y)
	absErr := math.Abs(value - integrate.Simpsons(halfX, halfY))
	if !utils.IsFinite(value) {
		return nil, fmt.Errorf("non-finite value %v on [%v, %v]: %w", value, a, b, common.ErrorOracleFailure)
	}

	return &model.QuadratureValue{
		Value:       value,
		AbsError:    absErr,
		Evaluations: len(x),
	}, nil
}

func (s *Simpson) TrueValue(ctx context.Context, a, b float64) (float64, error) {
	res, err := s.Value(ctx, a, b)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}
