package performance

import (
	"bytes"
	"context"
	stderrors "errors"
	"math"
	"testing"
	"time"

	"github.com/dlshle/minbench/logging"
	"github.com/petermattis/goid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTask = stderrors.New("task failed")

func TestMeasure(t *testing.T) {
	t.Run("fast pure task is non-negative", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			assert.GreaterOrEqual(t, Measure(func() { _ = math.Sqrt(float64(i)) }), time.Duration(0))
		}
	})
	t.Run("reads the clock around exactly one call", func(t *testing.T) {
		clock := &scriptedClock{samples: []time.Duration{42 * time.Nanosecond}}
		calls := 0
		elapsed := NewMeasurer(WithClock(clock)).Measure(func() { calls++ })
		assert.Equal(t, 42*time.Nanosecond, elapsed)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, clock.nows)
		assert.Equal(t, 1, clock.sinces)
	})
	t.Run("panic propagates to the caller", func(t *testing.T) {
		assert.PanicsWithValue(t, "boom", func() {
			Measure(func() { panic("boom") })
		})
	})
	t.Run("error is returned unmodified", func(t *testing.T) {
		elapsed, err := MeasureErr(func() error { return errTask })
		assert.Same(t, errTask, err)
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	})
	t.Run("value result is discarded", func(t *testing.T) {
		calls := 0
		elapsed := MeasureValue(func() int {
			calls++
			return calls
		})
		assert.Equal(t, 1, calls)
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	})
	t.Run("runs on the calling goroutine", func(t *testing.T) {
		caller := goid.Get()
		var callee int64
		Measure(func() { callee = goid.Get() })
		assert.Equal(t, caller, callee)
	})
}

func TestMeasureTimes(t *testing.T) {
	t.Run("returns the smallest sample", func(t *testing.T) {
		clock := &scriptedClock{samples: []time.Duration{50, 30, 70, 31, 90}}
		calls := 0
		fastest, ok := NewMeasurer(WithClock(clock)).MeasureTimes(5, func() { calls++ }).Get()
		require.True(t, ok)
		assert.Equal(t, time.Duration(30), fastest)
		assert.Equal(t, 5, calls)
		assert.Equal(t, 5, clock.sinces)
	})
	t.Run("a zero sample is a present minimum", func(t *testing.T) {
		clock := &scriptedClock{samples: []time.Duration{10, 0, 5}}
		fastest, ok := NewMeasurer(WithClock(clock)).MeasureTimes(3, func() {}).Get()
		require.True(t, ok)
		assert.Equal(t, time.Duration(0), fastest)
	})
	t.Run("single iteration", func(t *testing.T) {
		clock := &scriptedClock{samples: []time.Duration{7}}
		assert.Equal(t, time.Duration(7), NewMeasurer(WithClock(clock)).MeasureTimes(1, func() {}).GetOrPanic())
	})
	t.Run("zero iterations never invokes the task", func(t *testing.T) {
		clock := &scriptedClock{samples: []time.Duration{1}}
		calls := 0
		result := NewMeasurer(WithClock(clock)).MeasureTimes(0, func() { calls++ })
		assert.False(t, result.IsPresent())
		assert.Equal(t, 0, calls)
		assert.Equal(t, 0, clock.nows)
	})
	t.Run("captured state accumulates across repetitions", func(t *testing.T) {
		counter := 0
		MeasureTimes(25, func() { counter++ })
		assert.Equal(t, 25, counter)
	})
	t.Run("iterations run one at a time on the caller", func(t *testing.T) {
		caller := goid.Get()
		active, maxActive := 0, 0
		MeasureTimes(10, func() {
			active++
			if active > maxActive {
				maxActive = active
			}
			assert.Equal(t, caller, goid.Get())
			active--
		})
		assert.Equal(t, 1, maxActive)
	})
	t.Run("panic stops the loop", func(t *testing.T) {
		calls := 0
		assert.Panics(t, func() {
			MeasureTimes(10, func() {
				calls++
				if calls == 3 {
					panic(errTask)
				}
			})
		})
		assert.Equal(t, 3, calls)
	})
}

func TestMeasureTimesErr(t *testing.T) {
	t.Run("stops at the first error", func(t *testing.T) {
		clock := &scriptedClock{samples: []time.Duration{40, 20, 30}}
		calls := 0
		fastest, err := NewMeasurer(WithClock(clock)).MeasureTimesErr(10, func() error {
			calls++
			if calls == 3 {
				return errTask
			}
			return nil
		})
		assert.Same(t, errTask, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, time.Duration(20), fastest.GetOrPanic())
	})
	t.Run("no error keeps the minimum", func(t *testing.T) {
		clock := &scriptedClock{samples: []time.Duration{40, 20, 30}}
		fastest, err := NewMeasurer(WithClock(clock)).MeasureTimesErr(3, func() error { return nil })
		require.NoError(t, err)
		assert.Equal(t, time.Duration(20), fastest.GetOrPanic())
	})
	t.Run("zero iterations", func(t *testing.T) {
		calls := 0
		fastest, err := MeasureTimesErr(0, func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.False(t, fastest.IsPresent())
		assert.Equal(t, 0, calls)
	})
}

func TestMeasureWithLog(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLevelLogger(&buf, "[bench]", logging.LogAllWaterMark)
	clock := &scriptedClock{samples: []time.Duration{3 * time.Millisecond}}
	elapsed := NewMeasurer(WithClock(clock), WithLogger(logger)).MeasureWithLog(context.Background(), "noop", func() {})
	assert.Equal(t, 3*time.Millisecond, elapsed)
	assert.Contains(t, buf.String(), "{measure:noop} noop took 3ms")
}

func TestSleepingTask(t *testing.T) {
	if testing.Short() {
		t.Skip("sleeps")
	}
	const (
		sleep = 10 * time.Millisecond
		floor = 9500 * time.Microsecond
	)
	task := func() { time.Sleep(sleep) }

	assert.GreaterOrEqual(t, Measure(task), floor)

	clock := &recordingClock{Clock: MonotonicClock()}
	fastest, ok := NewMeasurer(WithClock(clock)).MeasureTimes(5, task).Get()
	require.True(t, ok)
	require.Len(t, clock.samples, 5)
	assert.GreaterOrEqual(t, fastest, floor)
	for _, sample := range clock.samples {
		assert.LessOrEqual(t, fastest, sample)
	}
	assert.Contains(t, clock.samples, fastest)
}

func TestMeasureWithLogUsesGlobalLogger(t *testing.T) {
	previous := logging.GlobalLogger
	defer logging.SetLogger(previous)

	var buf bytes.Buffer
	logging.SetLogger(logging.NewLevelLogger(&buf, "", logging.LogAllWaterMark))
	MeasureWithLog(context.Background(), "global", func() {})
	assert.Contains(t, buf.String(), "{measure:global} global took ")
}
