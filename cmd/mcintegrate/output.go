package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/oracle"
	"github.com/uyouii/montecarlo-integration/utils"
)

var rule = strings.Repeat("=", 80)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// quadratureReference is shown next to the study oracle, nil when it does not converge.
func quadratureReference(ctx context.Context, fn integrand, a, b float64) *model.QuadratureValue {
	q, err := oracle.NewQuadrature(fn.F).Value(ctx, a, b)
	if err != nil {
		return nil
	}
	return q
}

func printReferences(w io.Writer, analytic *float64, q *model.QuadratureValue) {
	if analytic != nil {
		fmt.Fprintf(w, "Analytic value:         %.15f\n", *analytic)
	}
	if q != nil {
		fmt.Fprintf(w, "Quadrature value:       %.15f\n", q.Value)
		fmt.Fprintf(w, "Quadrature error:       %.2e\n", q.AbsError)
	}
}

func printErrors(w io.Writer, estimate, trueValue float64) {
	absErr := math.Abs(estimate - trueValue)
	fmt.Fprintf(w, "Absolute error:         %.10f\n", absErr)
	fmt.Fprintf(w, "Relative error:         %v%%\n", utils.FormatFloat(absErr/math.Abs(trueValue)*100, 6))
}

func printStudy(w io.Writer, report *model.StudyReport, q *model.QuadratureValue, rate *model.ConvergenceRate) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Function: %s on %v (run %s)\n", report.Function, report.Interval, report.RunID)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Reference value:        %.15f\n", report.TrueValue)
	printReferences(w, nil, q)
	fmt.Fprintln(w, rule)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Samples\tEstimate\tAbsolute error\tRelative error (%)")
	for _, r := range report.Records {
		fmt.Fprintf(tw, "%d\t%.15g\t%.10f\t%.6f\n", r.SampleCount, r.Estimate, r.AbsoluteError,
			r.RelativeErrorPercent)
	}
	tw.Flush()
	fmt.Fprintln(w, rule)
	printRate(w, rate)
}

func printRate(w io.Writer, rate *model.ConvergenceRate) {
	if rate == nil {
		return
	}
	fmt.Fprintf(w, "Fitted error ~ n^%v (R^2 = %v), rejection sampling expects n^-0.5\n",
		utils.FormatFloat(rate.Slope, 3), utils.FormatFloat(rate.RSquared, 3))
}
