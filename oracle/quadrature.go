package oracle

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/integrate/quad"
)

const (
	DefaultAbsTolerance = 1.49e-8
	DefaultRelTolerance = 1.49e-8
	// DefaultPanelLimit is the largest number of panels before giving up.
	DefaultPanelLimit = 50
	DefaultPoints     = 10
)

// Quadrature is a globally adaptive Gauss-Legendre rule. Each panel is
// integrated with Points and 2*Points nodes, their difference is the panel
// error estimate, and the panel with the largest error is bisected until the
// total error meets the tolerance.
type Quadrature struct {
	F            func(float64) float64
	AbsTolerance float64
	RelTolerance float64
	PanelLimit   int
	Points       int
}

func NewQuadrature(f func(float64) float64) *Quadrature {
	return &Quadrature{
		F:            f,
		AbsTolerance: DefaultAbsTolerance,
		RelTolerance: DefaultRelTolerance,
		PanelLimit:   DefaultPanelLimit,
		Points:       DefaultPoints,
	}
}

// QuadratureValue integrates f over [a, b] with the default adaptive rule
// and returns the estimate and its absolute error bound.
func QuadratureValue(ctx context.Context, f func(float64) float64, a, b float64) (float64, float64, error) {
	res, err := NewQuadrature(f).Value(ctx, a, b)
	if err != nil {
		return 0, 0, err
	}
	return res.Value, res.AbsError, nil
}

func (q *Quadrature) TrueValue(ctx context.Context, a, b float64) (float64, error) {
	res, err := q.Value(ctx, a, b)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

type panel struct {
	a, b   float64
	value  float64
	absErr float64
}

func (q *Quadrature) evaluate(a, b float64) panel {
	coarse := quad.Fixed(q.F, a, b, q.Points, quad.Legendre{}, 0)
	fine := quad.Fixed(q.F, a, b, 2*q.Points, quad.Legendre{}, 0)
	return panel{a: a, b: b, value: fine, absErr: math.Abs(fine - coarse)}
}

func (q *Quadrature) Value(ctx context.Context, a, b float64) (*model.QuadratureValue, error) {
	logger := utils.GetLogger(ctx)

	if err := checkInterval(a, b); err != nil {
		return nil, err
	}
	if q.Points <= 0 || q.PanelLimit <= 0 {
		return nil, fmt.Errorf("points %d, panel limit %d: %w", q.Points, q.PanelLimit, common.ErrorInvalidValue)
	}

	panels := []panel{q.evaluate(a, b)}
	perPanel := 3 * q.Points
	for {
		value, absErr := 0.0, 0.0
		worst := 0
		for i, p := range panels {
			value += p.value
			absErr += p.absErr
			if p.absErr > panels[worst].absErr {
				worst = i
			}
		}

		if !utils.IsFinite(value) || !utils.IsFinite(absErr) {
			err := fmt.Errorf("non-finite value %v on [%v, %v]: %w", value, a, b, common.ErrorOracleFailure)
			logger.Error("quadrature failed", zap.Error(err))
			return nil, err
		}

		if absErr <= max(q.AbsTolerance, q.RelTolerance*math.Abs(value)) {
			return &model.QuadratureValue{
				Value:       value,
				AbsError:    absErr,
				Evaluations: perPanel * len(panels),
			}, nil
		}

		if len(panels) >= q.PanelLimit {
			err := fmt.Errorf("error %v after %d panels on [%v, %v]: %w", absErr, len(panels), a, b,
				common.ErrorOracleFailure)
			logger.Error("quadrature failed", zap.Error(err))
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := panels[worst]
		mid := p.a + (p.b-p.a)/2
		panels[worst] = q.evaluate(p.a, mid)
		panels = append(panels, q.evaluate(mid, p.b))
	}
}
