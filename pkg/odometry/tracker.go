// Package odometry estimates the relative pose of a differential
// drive vehicle from its two wheel encoder tick streams.
package odometry

import "math"

// EncoderResolution is the number of ticks per full wheel revolution.
const EncoderResolution int32 = 135

// WheelTracker converts the raw cumulative tick counter of one wheel
// into accumulated travel distance. Each wheel side owns exactly one
// tracker and only that wheel's event stream updates it.
//
// The raw counter is trusted as-is: a counter reset or wrap shows up
// as a negative delta and flows into the distance unguarded.
type WheelTracker struct {
	radius     float64
	resolution int32

	initialized bool
	lastTicks   int32
	distance    float64
}

// NewWheelTracker creates a tracker for a wheel of the given radius
// in meters.
func NewWheelTracker(radius float64) *WheelTracker {
	return &WheelTracker{radius: radius, resolution: EncoderResolution}
}

// Update consumes the next raw cumulative tick count and returns the
// linear distance traveled since the previous count, in meters. The
// first call seeds the counter and returns 0.
func (t *WheelTracker) Update(rawTicks int32) float64 {
	if !t.initialized {
		t.lastTicks = rawTicks
		t.initialized = true
	}
	deltaTicks := rawTicks - t.lastTicks
	delta := 2 * math.Pi * t.radius * float64(deltaTicks) / float64(t.resolution)
	t.distance += delta
	t.lastTicks = rawTicks
	return delta
}

// Distance returns the total distance accumulated since startup.
func (t *WheelTracker) Distance() float64 {
	return t.distance
}
