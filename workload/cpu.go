package workload

import (
	"context"
	"math"
	"time"

	"github.com/dlshle/minbench/errors"
)

const (
	sqrtName  = "sqrt"
	sleepName = "sleep"

	defaultSqrtUnit = 100
)

// sqrtSink keeps the compiler from discarding the loop.
var sqrtSink float64

func takeSqrts(unit int) {
	acc := 0.0
	for i := 0; i < unit; i++ {
		acc += math.Sqrt(float64(i) + 10)
	}
	sqrtSink = acc
}

func newSqrtWorkload(_ context.Context, cfg Config) (Workload, error) {
	unit := cfg.SqrtUnit
	if unit <= 0 {
		unit = defaultSqrtUnit
	}
	return funcWorkload{name: sqrtName, run: func() error {
		takeSqrts(unit)
		return nil
	}}, nil
}

func newSleepWorkload(_ context.Context, cfg Config) (Workload, error) {
	if cfg.Sleep < 0 {
		return nil, errors.Errorf("sleep duration must not be negative, got %v", cfg.Sleep)
	}
	d := cfg.Sleep
	return funcWorkload{name: sleepName, run: func() error {
		time.Sleep(d)
		return nil
	}}, nil
}
