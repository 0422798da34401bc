package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/uyouii/montecarlo-integration/common"
	"github.com/uyouii/montecarlo-integration/oracle"
)

type integrand struct {
	Label string
	F     func(float64) float64
	// Antiderivative is nil when there is no closed form.
	Antiderivative func(float64) float64
}

var integrands = map[string]integrand{
	"square": {
		Label:          "f(x) = x^2",
		F:              func(x float64) float64 { return x * x },
		Antiderivative: func(x float64) float64 { return x * x * x / 3 },
	},
	"cube": {
		Label:          "f(x) = x^3",
		F:              func(x float64) float64 { return x * x * x },
		Antiderivative: func(x float64) float64 { return x * x * x * x / 4 },
	},
	"sin": {
		Label:          "f(x) = sin(x)",
		F:              math.Sin,
		Antiderivative: func(x float64) float64 { return -math.Cos(x) },
	},
	"sqrt": {
		Label:          "f(x) = sqrt(x)",
		F:              math.Sqrt,
		Antiderivative: func(x float64) float64 { return 2 * math.Pow(x, 1.5) / 3 },
	},
	"exp": {
		Label:          "f(x) = exp(x)",
		F:              math.Exp,
		Antiderivative: math.Exp,
	},
	"gauss": {
		Label:          "f(x) = exp(-x^2)",
		F:              func(x float64) float64 { return math.Exp(-x * x) },
		Antiderivative: func(x float64) float64 { return math.Sqrt(math.Pi) / 2 * math.Erf(x) },
	},
	"bump": {
		Label: "f(x) = 1 + sin(10x) * exp(-x)",
		F:     func(x float64) float64 { return 1 + math.Sin(10*x)*math.Exp(-x) },
	},
	// negative on [0, 1), kept to show how such functions are rejected
	"shifted": {
		Label:          "f(x) = x - 1",
		F:              func(x float64) float64 { return x - 1 },
		Antiderivative: func(x float64) float64 { return x*x/2 - x },
	},
}

func integrandNames() string {
	names := make([]string, 0, len(integrands))
	for name := range integrands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupIntegrand(name string) (integrand, error) {
	fn, ok := integrands[name]
	if !ok {
		return integrand{}, fmt.Errorf("unknown function %q, known: %s: %w", name, integrandNames(),
			common.ErrorInvalidValue)
	}
	return fn, nil
}

// newOracle builds the reference oracle by kind: analytic, quadrature or simpson.
func newOracle(kind string, fn integrand) (oracle.Oracle, error) {
	switch kind {
	case "analytic":
		if fn.Antiderivative == nil {
			return nil, fmt.Errorf("%s has no closed form, use quadrature: %w", fn.Label, common.ErrorInvalidValue)
		}
		return oracle.NewAnalytic(fn.Antiderivative), nil
	case "quadrature":
		return oracle.NewQuadrature(fn.F), nil
	case "simpson":
		return oracle.NewSimpson(fn.F), nil
	}
	return nil, fmt.Errorf("unknown oracle %q: %w", kind, common.ErrorInvalidValue)
}
