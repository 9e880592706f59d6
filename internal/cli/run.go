package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dlshle/minbench/logging"
	"github.com/dlshle/minbench/performance"
	"github.com/dlshle/minbench/workload"
	"github.com/spf13/cobra"
)

func (a *app) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <workload>",
		Short: "Measure a workload repeatedly and report the fastest run",
		Long: "Measure a workload repeatedly and report the fastest run.\n" +
			"With --iterations 0, a single calibration run and --budget decide the count.\n" +
			"Workloads: " + strings.Join(workload.Names(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(a.v, cmd.Flags(), map[string]string{
				"iterations":          "iterations",
				"budget":              "budget",
				"policy":              "policy",
				"workload.sleep":      "sleep",
				"workload.sqrt_unit":  "sqrt-unit",
				"workload.badger_dir": "badger-dir",
				"workload.redis_addr": "redis-addr",
				"workload.redis_db":   "redis-db",
			}); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), args[0], cfg)
		},
	}
	cmd.Flags().Uint64P("iterations", "n", 0, "number of measured runs (0 derives it from --budget)")
	cmd.Flags().Duration("budget", 0, "total time budget used when --iterations is 0")
	cmd.Flags().String("policy", "exact", "estimate policy: exact or pow10")
	cmd.Flags().Duration("sleep", 0, "sleep workload: duration of one run")
	cmd.Flags().Int("sqrt-unit", 0, "sqrt workload: square roots per run")
	cmd.Flags().String("badger-dir", "", "badger-put workload: data dir (empty keeps it in memory)")
	cmd.Flags().String("redis-addr", "", "redis-ping workload: server address")
	cmd.Flags().Int("redis-db", 0, "redis-ping workload: database index")
	return cmd
}

func (a *app) run(ctx context.Context, name string, cfg *Config) (err error) {
	ctx = logging.WrapCtx(ctx, "workload", name)
	w, err := workload.New(ctx, name, cfg.Workload)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			a.logger.Warnf(ctx, "closing workload: %v", closeErr)
			if err == nil {
				err = closeErr
			}
		}
	}()

	measurer := performance.NewMeasurer(performance.WithLogger(a.logger))
	iterations := cfg.Iterations
	if iterations == 0 {
		if iterations, err = a.calibrate(ctx, measurer, w, cfg); err != nil {
			return err
		}
	}

	fastest, err := measurer.MeasureTimesErr(iterations, w.Run)
	if err != nil {
		return fmt.Errorf("workload %s failed: %w", name, err)
	}
	fastestRun, ok := fastest.Get()
	if !ok {
		a.logger.Warnf(ctx, "budget %v fits no run, nothing measured", cfg.Budget)
		return nil
	}
	a.logger.Infof(ctx, "fastest of %d runs: %v", iterations, fastestRun)
	return nil
}

func (a *app) calibrate(ctx context.Context, measurer *performance.Measurer, w workload.Workload, cfg *Config) (uint64, error) {
	if cfg.Budget <= 0 {
		return 0, fmt.Errorf("either --iterations or a positive --budget is required")
	}
	policy, err := performance.ParsePolicy(cfg.Policy)
	if err != nil {
		return 0, err
	}
	single, err := measurer.MeasureErr(w.Run)
	if err != nil {
		return 0, fmt.Errorf("calibration run failed: %w", err)
	}
	iterations, err := policy.Estimate(single, cfg.Budget)
	if err != nil {
		return 0, err
	}
	a.logger.Debugf(ctx, "calibration run took %v, %s policy allows %d runs in %v", single, policy, iterations, cfg.Budget)
	return iterations, nil
}
