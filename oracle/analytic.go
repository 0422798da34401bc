package oracle

import (
	"context"
	"math"
)

// Analytic evaluates a closed-form antiderivative: F(b) - F(a).
type Analytic struct {
	Antiderivative func(float64) float64
}

func NewAnalytic(antiderivative func(float64) float64) *Analytic {
	return &Analytic{Antiderivative: antiderivative}
}

// Power is the oracle of f(x) = x^n.
func Power(n int) *Analytic {
	if n == -1 {
		return NewAnalytic(func(x float64) float64 {
			return math.Log(math.Abs(x))
		})
	}
	p := float64(n + 1)
	return NewAnalytic(func(x float64) float64 {
		return math.Pow(x, p) / p
	})
}

func (o *Analytic) TrueValue(ctx context.Context, a, b float64) (float64, error) {
	if err := checkInterval(a, b); err != nil {
		return 0, err
	}
	return o.Antiderivative(b) - o.Antiderivative(a), nil
}
