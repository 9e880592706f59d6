package cli

import (
	"fmt"

	"github.com/dlshle/minbench/performance"
	"github.com/spf13/cobra"
)

func (a *app) newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate how many runs of a given duration fit into a budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(a.v, cmd.Flags(), map[string]string{
				"single": "single",
				"budget": "budget",
				"policy": "policy",
			}); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			policy, err := performance.ParsePolicy(cfg.Policy)
			if err != nil {
				return err
			}
			iterations, err := policy.Estimate(cfg.Single, cfg.Budget)
			if err != nil {
				return err
			}
			a.logger.Debugf(cmd.Context(), "policy %s: %v per run, %v budget", policy, cfg.Single, cfg.Budget)
			fmt.Fprintln(cmd.OutOrStdout(), iterations)
			return nil
		},
	}
	cmd.Flags().Duration("single", 0, "duration of one run, e.g. 100ns")
	cmd.Flags().Duration("budget", 0, "total time budget, e.g. 1s")
	cmd.Flags().String("policy", "exact", "estimate policy: exact or pow10")
	return cmd
}
