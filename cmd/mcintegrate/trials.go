package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/uyouii/montecarlo-integration/model"
	"github.com/uyouii/montecarlo-integration/study"
)

type trialsOutput struct {
	Function  string                 `json:"function"`
	Summaries []*model.TrialSummary  `json:"summaries"`
	Rate      *model.ConvergenceRate `json:"rate,omitempty"`
}

func (a *app) newTrialsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trials",
		Short: "Average the study errors over many independent trials and fit the convergence rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTrials(cmd)
		},
	}
	cmd.Flags().IntSlice("counts", []int{1000, 10000, 100000}, "sample counts")
	cmd.Flags().String("oracle", "analytic", "reference value: analytic, quadrature or simpson")
	cmd.Flags().Int("trials", 30, "independent studies to average")
	return cmd
}

func (a *app) runTrials(cmd *cobra.Command) error {
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

	summaries, err := study.RunTrials(ctx, fn.F, lower, upper, a.v.GetIntSlice("counts"), o,
		a.v.GetInt("trials"), a.studyOptions(fn)...)
	if err != nil {
		return err
	}
	out := &trialsOutput{Function: fn.Label, Summaries: summaries}
	out.Rate, _ = study.FitTrialRate(summaries)

	w := cmd.OutOrStdout()
	if a.v.GetBool("json") {
		return printJSON(w, out)
	}

	fmt.Fprintf(w, "Function: %s on [%v, %v], %d trials per sample count\n", fn.Label, lower, upper,
		a.v.GetInt("trials"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Samples\tMean estimate\tMean abs error\tStddev abs error\tMean rel error (%)")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%d\t%.15g\t%.10f\t%.10f\t%.6f\n", s.SampleCount, s.MeanEstimate,
			s.MeanAbsoluteError, s.StdDevAbsoluteError, s.MeanRelativeErrorPercent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printRate(w, out.Rate)
	return nil
}
