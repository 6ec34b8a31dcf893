package odometry

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotracks/odom.go/pkg/calib"
)

// Side identifies a drive wheel.
type Side int

// Wheel sides.
const (
	Left Side = iota
	Right
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ErrUnknownSide indicates a tick event tagged with a wheel side the
// estimator does not know. This is a wiring defect upstream, not a
// runtime condition, and callers must fail loudly on it.
var ErrUnknownSide = errors.New("unknown wheel side")

// Estimator combines the two wheels' accumulated distances into a
// heading estimate and keeps PoseState current.
//
// The heading is recomputed from the full accumulated distances on
// every tick, so it is a function of total travel since startup
// rather than an incrementally integrated angle. Exact for a single
// continuous run; degrades if a tick counter wraps.
type Estimator struct {
	mu       sync.Mutex
	baseline float64
	left     *WheelTracker
	right    *WheelTracker
	pose     *PoseState
}

// NewEstimator creates an Estimator for the given geometry, writing
// estimates into pose.
func NewEstimator(geom *calib.Geometry, pose *PoseState) *Estimator {
	return &Estimator{
		baseline: geom.Baseline,
		left:     NewWheelTracker(geom.Radius),
		right:    NewWheelTracker(geom.Radius),
		pose:     pose,
	}
}

// Apply consumes one wheel tick event. Wheel events may be dispatched
// concurrently; Apply serializes them. stamp is the sensor-side time
// of the tick message and becomes the pose stamp.
func (e *Estimator) Apply(side Side, rawTicks int32, stamp time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch side {
	case Left:
		e.left.Update(rawTicks)
	case Right:
		e.right.Update(rawTicks)
	default:
		return ErrUnknownSide
	}
	heading := WrapHeading((e.left.Distance() - e.right.Distance()) / e.baseline)
	glog.V(1).Infof("theta = %v degrees", heading*180/math.Pi)
	e.pose.Set(heading, stamp)
	return nil
}

// Distances returns the accumulated travel of the left and right
// wheels in meters.
func (e *Estimator) Distances() (left, right float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.left.Distance(), e.right.Distance()
}

// WrapHeading wraps an angle in radians into [0, 2π).
func WrapHeading(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r -= 2 * math.Pi
	}
	return r
}
