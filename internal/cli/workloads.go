package cli

import (
	"fmt"

	"github.com/dlshle/minbench/workload"
	"github.com/spf13/cobra"
)

func (a *app) newWorkloadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workloads",
		Short: "List the built-in workloads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range workload.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
