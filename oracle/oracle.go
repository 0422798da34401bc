// Package oracle provides reference values of definite integrals. They are
// only used to measure the error of a stochastic estimate.
package oracle

import (
	"context"
	"fmt"

	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/model"
)

// Oracle returns the trusted value of the integral over [a, b].
type Oracle interface {
	TrueValue(ctx context.Context, a, b float64) (float64, error)
}

// Func adapts a plain function to the Oracle interface.
type Func func(ctx context.Context, a, b float64) (float64, error)

func (f Func) TrueValue(ctx context.Context, a, b float64) (float64, error) {
	return f(ctx, a, b)
}

func checkInterval(a, b float64) error {
	interval := model.NewInterval(a, b)
	if !interval.Valid() {
		return fmt.Errorf("oracle on %v: %w", interval, common.ErrorInvalidDomain)
	}
	return nil
}
