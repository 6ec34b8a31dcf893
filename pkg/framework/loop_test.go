package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitCycles(t *testing.T, cycleCh <-chan struct{}, n int) {
	t.Helper()
	timeout := time.After(time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-cycleCh:
		case <-timeout:
			t.Fatalf("timed out waiting for cycle %d", i+1)
		}
	}
}

func TestLoopCyclesUntilCanceled(t *testing.T) {
	cycleCh := make(chan struct{}, 16)
	loop := NewLoop()
	loop.Interval = time.Millisecond
	loop.AddController(ControlFunc(func(cc ControlContext) error {
		require.False(t, cc.Time().IsZero())
		select {
		case cycleCh <- struct{}{}:
		default:
		}
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	waitCycles(t, cycleCh, 3)
	cancel()
	require.Equal(t, context.Canceled, <-done)
}

func TestLoopControllerErrorDoesNotStopCycling(t *testing.T) {
	cycleCh := make(chan struct{}, 16)
	loop := NewLoop().At(1000)
	loop.AddController(ControlFunc(func(ControlContext) error {
		select {
		case cycleCh <- struct{}{}:
		default:
		}
		return errors.New("sink down")
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	waitCycles(t, cycleCh, 2)
	cancel()
	<-done
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	errs.Add(nil, nil)
	require.NoError(t, errs.Aggregate())
	errs.Add(errors.New("one"), nil, errors.New("two"))
	err := errs.Aggregate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "one")
	require.Contains(t, err.Error(), "two")
}
