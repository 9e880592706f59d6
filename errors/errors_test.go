package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = stderrors.New("sentinel")

func TestTrackableError(t *testing.T) {
	t.Run("message is the wrapped message", func(t *testing.T) {
		err := Error("boom")
		assert.Equal(t, "boom", err.Error())
	})
	t.Run("stacktrace points at the caller", func(t *testing.T) {
		err := Error("boom")
		assert.Contains(t, err.Stacktrace(), "TestTrackableError")
		assert.True(t, strings.HasPrefix(err.Verbose(), "original error: boom"))
	})
	t.Run("errorf keeps the wrap chain", func(t *testing.T) {
		err := Errorf("%w: more detail", errSentinel)
		assert.True(t, Is(err, errSentinel))
		var tracked *TrackableError
		require.True(t, As(err, &tracked))
		assert.Equal(t, "sentinel: more detail", tracked.Error())
	})
	t.Run("wrap nil stays nil", func(t *testing.T) {
		assert.Nil(t, WrapWithStackTrace(nil))
	})
}

func TestMultiError(t *testing.T) {
	me := NewMultiError()
	assert.NoError(t, me.ErrorOrNil())
	me.Add(nil)
	assert.Equal(t, 0, me.Size())

	me.Add(errSentinel)
	me.Add(Error("second"))
	require.Error(t, me.ErrorOrNil())
	assert.Equal(t, 2, me.Size())
	assert.Equal(t, "sentinel\nsecond", me.Error())
	assert.True(t, stderrors.Is(me.ErrorOrNil(), errSentinel))
}
