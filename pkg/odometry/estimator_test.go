package odometry

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotracks/odom.go/pkg/calib"
)

func testGeometry() *calib.Geometry {
	return &calib.Geometry{Baseline: 0.1, Radius: 0.02}
}

func TestWrapHeading(t *testing.T) {
	testCases := []struct {
		name   string
		in     float64
		expect float64
	}{
		{name: "zero", in: 0, expect: 0},
		{name: "within range", in: 1.25, expect: 1.25},
		{name: "exactly 2pi", in: 2 * math.Pi, expect: 0},
		{name: "small negative", in: -1e-9, expect: 2*math.Pi - 1e-9},
		{name: "negative", in: -math.Pi / 2, expect: 3 * math.Pi / 2},
		{name: "above 4pi", in: 4*math.Pi + 0.5, expect: 0.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapHeading(tc.in)
			require.InDelta(t, tc.expect, got, 1e-9)
			require.True(t, got >= 0 && got < 2*math.Pi)
		})
	}
}

func TestEstimatorLeftRevolution(t *testing.T) {
	pose := NewPoseState()
	est := NewEstimator(testGeometry(), pose)

	stamp := time.Unix(100, 0)
	require.NoError(t, est.Apply(Left, 0, stamp))
	require.NoError(t, est.Apply(Left, 135, stamp.Add(time.Second)))

	left, right := est.Distances()
	require.InDelta(t, 2*math.Pi*0.02, left, 1e-9)
	require.Equal(t, 0.0, right)

	p, ready := pose.Snapshot()
	require.True(t, ready)
	require.InDelta(t, 2*math.Pi*0.02/0.1, p.Heading, 1e-9)
	require.Equal(t, stamp.Add(time.Second), p.Stamp)
}

func TestEstimatorStraightLine(t *testing.T) {
	pose := NewPoseState()
	est := NewEstimator(testGeometry(), pose)

	stamp := time.Unix(100, 0)
	for _, ticks := range []int32{0, 27, 135, 400} {
		require.NoError(t, est.Apply(Left, ticks, stamp))
		require.NoError(t, est.Apply(Right, ticks, stamp))
	}
	p, ready := pose.Snapshot()
	require.True(t, ready)
	require.Equal(t, 0.0, p.Heading)
}

func TestEstimatorUnknownSide(t *testing.T) {
	pose := NewPoseState()
	est := NewEstimator(testGeometry(), pose)

	err := est.Apply(Side(7), 42, time.Now())
	require.Equal(t, ErrUnknownSide, err)

	// A defective event must not mark the pose ready.
	_, ready := pose.Snapshot()
	require.False(t, ready)
}

func TestPoseReadyTransitions(t *testing.T) {
	pose := NewPoseState()
	est := NewEstimator(testGeometry(), pose)

	_, ready := pose.Snapshot()
	require.False(t, ready)

	require.NoError(t, est.Apply(Right, 10, time.Unix(1, 0)))
	_, ready = pose.Snapshot()
	require.True(t, ready)

	// Further updates never revert readiness.
	require.NoError(t, est.Apply(Left, 10, time.Unix(2, 0)))
	_, ready = pose.Snapshot()
	require.True(t, ready)
}

func TestEstimatorConcurrentWheels(t *testing.T) {
	// Left and right tick events may be dispatched on separate
	// goroutines while the publish path reads snapshots. Run all
	// three concurrently; the race detector flags any unguarded
	// access and the final state must equal the sequential result.
	pose := NewPoseState()
	est := NewEstimator(testGeometry(), pose)

	const steps = 200
	stamp := time.Unix(100, 0)

	var wg sync.WaitGroup
	wg.Add(2)
	stopCh := make(chan struct{})
	go func() {
		defer wg.Done()
		for i := int32(0); i <= steps; i++ {
			require.NoError(t, est.Apply(Left, 2*i, stamp))
		}
	}()
	go func() {
		defer wg.Done()
		for i := int32(0); i <= steps; i++ {
			require.NoError(t, est.Apply(Right, i, stamp))
		}
	}()

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		var seenReady bool
		for {
			p, ready := pose.Snapshot()
			if seenReady {
				// ready never reverts once observed.
				require.True(t, ready)
			}
			seenReady = seenReady || ready
			if ready {
				require.True(t, p.Heading >= 0 && p.Heading < 2*math.Pi)
			}
			select {
			case <-stopCh:
				return
			default:
			}
		}
	}()

	wg.Wait()
	close(stopCh)
	<-readerDone

	// Both counters started at 0, so left traveled 2x steps ticks
	// and right x steps, same as a sequential run.
	perTick := 2 * math.Pi * 0.02 / float64(EncoderResolution)
	left, right := est.Distances()
	require.InDelta(t, perTick*2*steps, left, 1e-9)
	require.InDelta(t, perTick*steps, right, 1e-9)

	p, ready := pose.Snapshot()
	require.True(t, ready)
	require.InDelta(t, WrapHeading((left-right)/0.1), p.Heading, 1e-12)
}

func TestSideString(t *testing.T) {
	require.Equal(t, "left", Left.String())
	require.Equal(t, "right", Right.String())
	require.Equal(t, "unknown", Side(7).String())
}
