package main

import (
	"github.com/spf13/cobra"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/montecarlo"
	"github.com/uyouii/montecarlo-integration/study"
	"github.com/uyouii/montecarlo-integration/visual"
)

var defaultCounts = []int{1000, 10000, 100000, 500000, 1000000}

type studyOutput struct {
	Report     *model.StudyReport        `json:"report"`
	Rate       *model.ConvergenceRate    `json:"rate,omitempty"`
	Series     []visual.ConvergencePoint `json:"series"`
	Quadrature *model.QuadratureValue    `json:"quadrature,omitempty"`
}

func (a *app) newStudyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Compare estimates against a reference value over increasing sample counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStudy(cmd)
		},
	}
	cmd.Flags().IntSlice("counts", defaultCounts, "sample counts, in study order")
	cmd.Flags().String("oracle", "analytic", "reference value: analytic, quadrature or simpson")
	cmd.Flags().Bool("parallel", false, "estimate the sample counts concurrently")
	cmd.Flags().Int("workers", 0, "goroutines for --parallel, 0 uses GOMAXPROCS")
	return cmd
}

func (a *app) studyOptions(fn integrand) []study.Option {
	opts := []study.Option{
		study.WithFunctionName(fn.Label),
		study.WithEstimatorOptions(montecarlo.WithGridResolution(a.v.GetInt("grid"))),
		study.WithWorkers(a.v.GetInt("workers")),
	}
	if seed := a.v.GetUint64("seed"); seed != 0 {
		opts = append(opts, study.WithSeed(seed))
	}
	return opts
}

func (a *app) runStudy(cmd *cobra.Command) error {
	ctx := a.context(cmd)
	fn, err := lookupIntegrand(a.v.GetString("function"))
	if err != nil {
		return err
	}
	o, err := newOracle(a.v.GetString("oracle"), fn)
	if err != nil {
		return err
	}
	lower, upper := a.v.GetFloat64("a"), a.v.GetFloat64("b")
	counts := a.v.GetIntSlice("counts")

	run := study.RunStudy
	if a.v.GetBool("parallel") {
		run = study.RunStudyParallel
	}
	report, err := run(ctx, fn.F, lower, upper, counts, o, a.studyOptions(fn)...)
	if err != nil {
		return err
	}

	out := &studyOutput{Report: report, Series: visual.ConvergenceSeries(report)}
	// a single record, or exact estimates, leave nothing to fit
	out.Rate, _ = study.FitConvergenceRate(report.Records)
	out.Quadrature = quadratureReference(ctx, fn, lower, upper)

	w := cmd.OutOrStdout()
	if a.v.GetBool("json") {
		return printJSON(w, out)
	}
	printStudy(w, report, out.Quadrature, out.Rate)
	return nil
}
