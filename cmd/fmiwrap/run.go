package main

import (
	"encoding/json"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/fmiwrap/fmiwrap-go/internal/config"
	"github.com/fmiwrap/fmiwrap-go/internal/fmu"
	"github.com/fmiwrap/fmiwrap-go/internal/runner"
)

func newRunCmd(verbose *bool) *cobra.Command {
	var (
		configFile string
		plot       []string
		series     bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a co-simulation described by a yaml file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			unit, err := fmu.Open(cfg.FMU, cfg.WorkDir)
			if err != nil {
				return err
			}
			defer unit.Close()

			logger := newLogger(cmd.ErrOrStderr(), *verbose)
			res, err := runner.Run(cmd.Context(), unit, cfg, runner.WithLogger(logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range plot {
				data, ok := res.Series[name]
				if !ok {
					return fmt.Errorf("no numeric series for output %q", name)
				}
				fmt.Fprintln(out, asciigraph.Plot(data,
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(fmt.Sprintf("%s vs time", name)),
				))
				fmt.Fprintln(out)
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if series {
				return enc.Encode(res)
			}
			return enc.Encode(res.Final)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "sim.yaml", "run configuration (yaml)")
	cmd.Flags().StringSliceVar(&plot, "plot", nil, "plot the named outputs")
	cmd.Flags().BoolVar(&series, "series", false, "print the full time series instead of the final values")
	return cmd
}
