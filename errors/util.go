package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 32

type stack []uintptr

func (s *stack) Format() string {
	frames := runtime.CallersFrames(*s)
	var b strings.Builder
	for {
		frame, more := frames.Next()
		b.WriteRune('\n')
		b.WriteString(frame.Function)
		b.WriteRune('\n')
		b.WriteRune('\t')
		b.WriteString(frame.File)
		b.WriteRune(':')
		b.WriteString(strconv.Itoa(frame.Line))
		if !more {
			break
		}
	}
	return b.String()
}

// TrackableError carries the stacktrace of the place it was created at.
type TrackableError struct {
	err        error
	stacktrace *stack
}

func (q *TrackableError) Error() string {
	return q.err.Error()
}

// Verbose renders the message together with the captured stacktrace.
func (q *TrackableError) Verbose() string {
	return fmt.Sprintf("original error: %s\nstacktrace:\n%s", q.err.Error(), q.stacktrace.Format())
}

func (q *TrackableError) Stacktrace() string {
	return q.stacktrace.Format()
}

func (q *TrackableError) Unwrap() error {
	return q.err
}

func Error(msg string) *TrackableError {
	return newTrackableErr(errors.New(msg), stacktraceWithDepth(maxStackDepth, 1))
}

func newTrackableErr(err error, stacktrace *stack) *TrackableError {
	return &TrackableError{
		err:        err,
		stacktrace: stacktrace,
	}
}

func stacktraceWithDepth(depth int, frameSkips int) *stack {
	pcs := make([]uintptr, depth)
	n := runtime.Callers(frameSkips+2, pcs[:]) // skip runtime.Callers and stacktraceWithDepth
	var st stack = pcs[:n]
	return &st
}

// Errorf supports %w, so the result unwraps to the wrapped error.
func Errorf(formatter string, fields ...any) *TrackableError {
	return newTrackableErr(fmt.Errorf(formatter, fields...), stacktraceWithDepth(maxStackDepth, 1))
}

func WrapWithStackTrace(err error) *TrackableError {
	if err == nil {
		return nil
	}
	return newTrackableErr(err, stacktraceWithDepth(maxStackDepth, 1))
}

// Is and As mirror the standard library helpers.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
