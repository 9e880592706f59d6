// Package performance times caller-supplied operations.
//
// Every measurement runs synchronously on the calling goroutine. Repeated
// measurements keep the smallest sample, since scheduler preemption, cache
// misses and background load can only make a run slower than its true cost.
package performance

import (
	"context"
	"time"

	"github.com/dlshle/minbench/logging"
	"github.com/dlshle/minbench/optional"
)

type Measurer struct {
	clock  Clock
	logger logging.Logger
}

type Option func(*Measurer)

func WithClock(clock Clock) Option {
	return func(m *Measurer) {
		m.clock = clock
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(m *Measurer) {
		m.logger = logger
	}
}

func NewMeasurer(opts ...Option) *Measurer {
	m := &Measurer{
		clock: MonotonicClock(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMeasurer = NewMeasurer()

// Measure times exactly one call of task. A panic in task is not recovered.
func (m *Measurer) Measure(task func()) time.Duration {
	from := m.clock.Now()
	task()
	return m.clock.Since(from)
}

// MeasureErr times one call of task and hands back its error untouched.
func (m *Measurer) MeasureErr(task func() error) (time.Duration, error) {
	from := m.clock.Now()
	err := task()
	return m.clock.Since(from), err
}

// MeasureTimes calls task iterations times in sequence and returns the fastest
// sample. Zero iterations yields an empty result and task is never called.
func (m *Measurer) MeasureTimes(iterations uint64, task func()) optional.Optional[time.Duration] {
	if iterations == 0 {
		return optional.Empty[time.Duration]()
	}
	fastest := m.Measure(task)
	for i := uint64(1); i < iterations; i++ {
		if elapsed := m.Measure(task); elapsed < fastest {
			fastest = elapsed
		}
	}
	return optional.Of(fastest)
}

// MeasureTimesErr stops at the first failing call. The returned minimum covers
// every call made, the failing one included.
func (m *Measurer) MeasureTimesErr(iterations uint64, task func() error) (optional.Optional[time.Duration], error) {
	fastest := optional.Empty[time.Duration]()
	for i := uint64(0); i < iterations; i++ {
		elapsed, err := m.MeasureErr(task)
		if current, ok := fastest.Get(); !ok || elapsed < current {
			fastest = optional.Of(elapsed)
		}
		if err != nil {
			return fastest, err
		}
	}
	return fastest, nil
}

// getLogger falls back to the global logger so SetLogger also reaches the default measurer.
func (m *Measurer) getLogger() logging.Logger {
	if m.logger == nil {
		return logging.GlobalLogger
	}
	return m.logger
}

func (m *Measurer) MeasureWithLog(ctx context.Context, name string, task func()) time.Duration {
	elapsed := m.Measure(task)
	m.getLogger().Infof(logging.WrapCtx(ctx, "measure", name), "%s took %v", name, elapsed)
	return elapsed
}

func Measure(task func()) time.Duration {
	return defaultMeasurer.Measure(task)
}

// MeasureValue times task and discards whatever it returns.
func MeasureValue[T any](task func() T) time.Duration {
	return defaultMeasurer.Measure(func() {
		task()
	})
}

func MeasureErr(task func() error) (time.Duration, error) {
	return defaultMeasurer.MeasureErr(task)
}

func MeasureTimes(iterations uint64, task func()) optional.Optional[time.Duration] {
	return defaultMeasurer.MeasureTimes(iterations, task)
}

func MeasureTimesErr(iterations uint64, task func() error) (optional.Optional[time.Duration], error) {
	return defaultMeasurer.MeasureTimesErr(iterations, task)
}

func MeasureWithLog(ctx context.Context, name string, task func()) time.Duration {
	return defaultMeasurer.MeasureWithLog(ctx, name, task)
}
