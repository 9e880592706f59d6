package performance

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/dlshle/minbench/errors"
)

var ErrInvalidInput = stderrors.New("invalid input")

type Policy int

const (
	// PolicyExact is floor(total / singleRun) in nanoseconds.
	PolicyExact Policy = iota
	// PolicyPow10 is the coarse power-of-ten search with the halving correction.
	PolicyPow10
)

var policyNames = map[Policy]string{
	PolicyExact: "exact",
	PolicyPow10: "pow10",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

func ParsePolicy(name string) (Policy, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == lower {
			return p, nil
		}
	}
	return PolicyExact, errors.Errorf("%w: unknown estimate policy %q", ErrInvalidInput, name)
}

func (p Policy) Estimate(singleRun, total time.Duration) (uint64, error) {
	switch p {
	case PolicyExact:
		return EstimateIterations(singleRun, total)
	case PolicyPow10:
		return EstimateIterationsPow10(singleRun, total)
	default:
		return 0, errors.Errorf("%w: unknown estimate policy %d", ErrInvalidInput, int(p))
	}
}

func checkSingleRun(singleRun time.Duration) error {
	if singleRun <= 0 {
		return errors.Errorf("%w: single run duration must be positive, got %v", ErrInvalidInput, singleRun)
	}
	return nil
}

// EstimateIterations returns how many runs of singleRun fit into total.
// A non-positive total fits nothing; a non-positive singleRun is rejected.
func EstimateIterations(singleRun, total time.Duration) (uint64, error) {
	if err := checkSingleRun(singleRun); err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, nil
	}
	return uint64(total.Nanoseconds()) / uint64(singleRun.Nanoseconds()), nil
}

// EstimateIterationsPow10 grows a power-of-ten scale until total/scale no
// longer exceeds singleRun and returns half of it. Re-measuring with the
// unhalved count took about twice the requested budget.
func EstimateIterationsPow10(singleRun, total time.Duration) (uint64, error) {
	if err := checkSingleRun(singleRun); err != nil {
		return 0, err
	}
	budget, single := uint64(0), uint64(singleRun.Nanoseconds())
	if total > 0 {
		budget = uint64(total.Nanoseconds())
	}
	// budget < 2^63, so scale stops at 10^19 at the latest and never overflows
	scale := uint64(1)
	for budget/scale > single {
		scale *= 10
	}
	return scale / 2, nil
}
