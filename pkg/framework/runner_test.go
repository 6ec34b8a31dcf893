package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testCloser struct {
	closedCh chan struct{}
}

func (c *testCloser) Close() error {
	select {
	case <-c.closedCh:
	default:
		close(c.closedCh)
	}
	return nil
}

func TestRunWithContextCloserOnCancel(t *testing.T) {
	closer := &testCloser{closedCh: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- RunWithContextCloser(ctx, closer, func() error {
			// Blocks the way a listener does until Close releases it.
			<-closer.closedCh
			return errors.New("closed")
		})
	}()

	cancel()
	select {
	case err := <-done:
		require.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("cancel did not unblock the runner")
	}
	select {
	case <-closer.closedCh:
	default:
		t.Fatal("closer not closed on cancel")
	}
}

func TestRunWithContextCloserOnExit(t *testing.T) {
	closer := &testCloser{closedCh: make(chan struct{})}
	wantErr := errors.New("listener down")

	err := RunWithContextCloser(context.Background(), closer, func() error {
		return wantErr
	})
	require.Equal(t, wantErr, err)
	select {
	case <-closer.closedCh:
	default:
		t.Fatal("closer not closed on exit")
	}
}

func TestRunnerWaitAggregates(t *testing.T) {
	runner := NewRunner()
	runner.Go(
		runnableFunc(func(context.Context) error { return nil }),
		runnableFunc(func(context.Context) error { return errors.New("boom") }),
	)
	err := runner.Wait()
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

type runnableFunc func(context.Context) error

func (f runnableFunc) Run(ctx context.Context) error { return f(ctx) }
