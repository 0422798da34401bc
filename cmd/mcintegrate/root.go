package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uyouii/montecarlo-integration/utils"
	"go.uber.org/zap"
)

const envPrefix = "MCINT"

type app struct {
	v *viper.Viper
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "mcintegrate",
		Short:        "Estimate definite integrals by rejection sampling and study their convergence",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.Bool("verbose", false, "development logging")
	flags.String("function", "square", "integrand, one of: "+integrandNames())
	flags.Float64("a", 0, "lower bound")
	flags.Float64("b", 2, "upper bound")
	flags.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	flags.Int("grid", 1000, "grid resolution used to bound the function")
	flags.Bool("json", false, "print JSON instead of tables")

	root.AddCommand(a.newEstimateCommand(), a.newStudyCommand(), a.newTrialsCommand())
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if a.v.GetBool("verbose") {
		utils.SetLogger(zap.Must(zap.NewDevelopment()))
	}
	return nil
}

func (a *app) context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
