package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBlocking_ReturnsResult(t *testing.T) {
	got, err := runBlocking(context.Background(), func() (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestRunBlocking_PropagatesError(t *testing.T) {
	want := errors.New("boom")

	_, err := runBlocking(context.Background(), func() (string, error) {
		return "", want
	})

	assert.ErrorIs(t, err, want)
}

func TestRunBlocking_DoneContextSkipsWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := runBlocking(ctx, func() (int, error) {
		called = true
		return 1, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestRunBlocking_StopsWaitingOnDeadline(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	started := time.Now()
	_, err := runBlocking(ctx, func() (int, error) {
		<-release
		return 1, nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(started), time.Second)
}

func TestIsContextError(t *testing.T) {
	assert.True(t, isContextError(context.Canceled))
	assert.True(t, isContextError(errors.Join(errors.New("query"), context.DeadlineExceeded)))
	assert.False(t, isContextError(errors.New("other")))
	assert.False(t, isContextError(nil))
}
