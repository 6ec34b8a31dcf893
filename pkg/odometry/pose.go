package odometry

import (
	"sync"
	"time"
)

// Pose is the estimated pose of the vehicle relative to its start.
// Only the heading is estimated; see Publisher for how the transform
// is filled out.
type Pose struct {
	// Heading is the yaw in radians, wrapped into [0, 2π).
	Heading float64
	// Stamp is the time of the last wheel tick contributing to the
	// estimate, not the time it was computed.
	Stamp time.Time
}

// PoseState is the latest pose shared between the tick-driven update
// path and the fixed-rate publish path. The heading, stamp and ready
// flag are written and read as one unit.
type PoseState struct {
	mu    sync.Mutex
	pose  Pose
	ready bool
}

// NewPoseState creates a PoseState that is not ready until the first
// Set.
func NewPoseState() *PoseState {
	return &PoseState{}
}

// Set stores a new heading and stamp and marks the state ready.
func (s *PoseState) Set(heading float64, stamp time.Time) {
	s.mu.Lock()
	s.pose = Pose{Heading: heading, Stamp: stamp}
	s.ready = true
	s.mu.Unlock()
}

// Snapshot returns a consistent copy of the latest pose. The second
// return is false until the first Set and never reverts.
func (s *PoseState) Snapshot() (Pose, bool) {
	s.mu.Lock()
	pose, ready := s.pose, s.ready
	s.mu.Unlock()
	return pose, ready
}
