package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/montecarlo"
	"github.com/uyouii/montecarlo-integration/oracle"
	"github.com/uyouii/montecarlo-integration/visual"
)

type estimateOutput struct {
	Function   string                  `json:"function"`
	Result     *model.EstimationResult `json:"result"`
	Analytic   *float64                `json:"analytic,omitempty"`
	Quadrature *model.QuadratureValue  `json:"quadrature,omitempty"`
	Scatter    *visual.ScatterSeries   `json:"scatter,omitempty"`
	Curve      []visual.Point          `json:"curve,omitempty"`
	Rectangle  []visual.Point          `json:"rectangle,omitempty"`
}

func (a *app) newEstimateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Run one rejection sampling estimation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEstimate(cmd)
		},
	}
	cmd.Flags().Int("samples", 500000, "number of random points")
	cmd.Flags().Int("display", visual.DefaultMaxDisplay, "points in the scatter series, JSON output only")
	return cmd
}

func (a *app) estimatorOptions() []montecarlo.Option {
	opts := []montecarlo.Option{montecarlo.WithGridResolution(a.v.GetInt("grid"))}
	if seed := a.v.GetUint64("seed"); seed != 0 {
		opts = append(opts, montecarlo.WithSeed(seed))
	}
	return opts
}

func (a *app) runEstimate(cmd *cobra.Command) error {
	ctx := a.context(cmd)
	fn, err := lookupIntegrand(a.v.GetString("function"))
	if err != nil {
		return err
	}
	lower, upper := a.v.GetFloat64("a"), a.v.GetFloat64("b")
	asJSON := a.v.GetBool("json")

	opts := append(a.estimatorOptions(), montecarlo.WithKeepSamples(asJSON))
	result, err := montecarlo.Estimate(ctx, fn.F, lower, upper, a.v.GetInt("samples"), opts...)
	if err != nil {
		return err
	}

	out := &estimateOutput{Function: fn.Label, Result: result}
	if fn.Antiderivative != nil {
		v, err := oracle.NewAnalytic(fn.Antiderivative).TrueValue(ctx, lower, upper)
		if err == nil {
			out.Analytic = &v
		}
	}
	if q, err := oracle.NewQuadrature(fn.F).Value(ctx, lower, upper); err == nil {
		out.Quadrature = q
	}

	w := cmd.OutOrStdout()
	if asJSON {
		out.Scatter, err = visual.Scatter(result, a.v.GetInt("display"), int64(a.v.GetUint64("seed")))
		if err != nil {
			return err
		}
		out.Curve = visual.Curve(fn.F, lower, upper, 400)
		out.Rectangle = visual.Rectangle(result.BoundingBox)
		return printJSON(w, out)
	}

	fmt.Fprintf(w, "Function: %s on [%v, %v]\n", fn.Label, lower, upper)
	fmt.Fprintf(w, "Points under the curve: %d\n", result.PointsUnder)
	fmt.Fprintf(w, "Total points:           %d\n", result.SampleCount)
	fmt.Fprintf(w, "Ratio:                  %.6f\n", result.HitRatio)
	fmt.Fprintf(w, "Bounding box:           [%v, %v] x [0, %v]\n", lower, upper, result.BoundingBox.MaxY)
	fmt.Fprintf(w, "Monte Carlo estimate:   %.15f\n", result.IntegralEstimate)
	fmt.Fprintf(w, "Standard error:         %.2e\n", result.StdError)
	fmt.Fprintf(w, "%-24s[%.10f, %.10f]\n", fmt.Sprintf("%.0f%% interval:", result.Confidence.Level*100),
		result.Confidence.Lower, result.Confidence.Upper)
	printReferences(w, out.Analytic, out.Quadrature)
	if out.Analytic != nil {
		printErrors(w, result.IntegralEstimate, *out.Analytic)
	}
	return nil
}
