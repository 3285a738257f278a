package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fmiwrap/fmiwrap-go/internal/fmu"
	"github.com/fmiwrap/fmiwrap-go/pkg/fmi2"
)

func newInspectCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.fmu|library>",
		Short: "show the model description and exported entry points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			logger := newLogger(cmd.ErrOrStderr(), *verbose)
			path := args[0]

			if strings.EqualFold(filepath.Ext(path), ".fmu") {
				unit, err := fmu.Open(path, "")
				if err != nil {
					return err
				}
				defer unit.Close()
				printDescription(out, unit.Description)

				lib, err := unit.LibraryPath(unit.Description.CoSimulation != nil)
				if err != nil {
					return err
				}
				path = lib
			}

			b, err := fmi2.Bind(path, fmi2.WithLogger(logger))
			if err != nil {
				return err
			}
			defer b.Close()
			logger.Debug(context.Background(), "inspecting library", "path", path)
			printBinding(out, b)
			return nil
		},
	}
}

func printDescription(w io.Writer, md *fmu.ModelDescription) {
	fmt.Fprintf(w, "model:    %s\n", md.ModelName)
	fmt.Fprintf(w, "guid:     %s\n", md.GUID)
	fmt.Fprintf(w, "fmi:      %s\n", md.FMIVersion)
	if md.GenerationTool != "" {
		fmt.Fprintf(w, "tool:     %s\n", md.GenerationTool)
	}
	var kinds []string
	if md.CoSimulation != nil {
		kinds = append(kinds, "co-simulation ("+md.CoSimulation.ModelIdentifier+")")
	}
	if md.ModelExchange != nil {
		kinds = append(kinds, "model-exchange ("+md.ModelExchange.ModelIdentifier+")")
	}
	fmt.Fprintf(w, "types:    %s\n\n", strings.Join(kinds, ", "))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVR\tTYPE\tCAUSALITY\tVARIABILITY\tSTART")
	for _, v := range md.Variables {
		start, _ := v.Start()
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", v.Name, v.ValueReference, v.Kind(), v.Causality, v.Variability, start)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printBinding(w io.Writer, b *fmi2.Binding) {
	if platform, err := b.TypesPlatform(); err == nil {
		fmt.Fprintf(w, "types platform: %s\n", platform)
	}
	if version, err := b.Version(); err == nil {
		fmt.Fprintf(w, "version:        %s\n", version)
	}
	fmt.Fprintf(w, "entry points:   %d/%d\n", len(b.Symbols()), len(fmi2.EntryPoints()))
	for _, name := range b.Missing() {
		fmt.Fprintf(w, "  missing %s\n", name)
	}
}
