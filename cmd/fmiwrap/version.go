package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmiwrap/fmiwrap-go/pkg/fmi2"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the wrapper version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fmiwrap %s (FMI %s)\n", fmi2.WrapperVersion(), fmi2.FMIVersion)
		},
	}
}
