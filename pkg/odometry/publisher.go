package odometry

import (
	"math"

	fx "github.com/robotracks/odom.go/pkg/framework"
	"github.com/robotracks/odom.go/pkg/msgs"
)

// Frame names of the published transform.
const (
	DefaultFrameID      = "map"
	DefaultChildFrameID = "encoder_baselink"
)

// TransformSink consumes published transforms. Implementations are
// external collaborators and must not block the publish cycle.
type TransformSink interface {
	SendTransform(*msgs.TransformStamped) error
}

// TransformSinkFunc is the func form of TransformSink.
type TransformSinkFunc func(*msgs.TransformStamped) error

// SendTransform implements TransformSink.
func (f TransformSinkFunc) SendTransform(msg *msgs.TransformStamped) error {
	return f(msg)
}

// Publisher emits the latest pose as a transform once per loop cycle,
// decoupled from tick arrival: the same pose repeats across cycles
// when no new ticks arrived, and nothing is emitted before the first
// tick. It is a framework.Controller driven by the fixed-rate loop.
type Publisher struct {
	Pose         *PoseState
	FrameID      string
	ChildFrameID string
	Sinks        []TransformSink
}

// NewPublisher creates a Publisher sampling pose into the given sinks.
func NewPublisher(pose *PoseState, sinks ...TransformSink) *Publisher {
	return &Publisher{
		Pose:         pose,
		FrameID:      DefaultFrameID,
		ChildFrameID: DefaultChildFrameID,
		Sinks:        sinks,
	}
}

// Control implements framework.Controller. Sink errors are collected
// and reported; the next cycle proceeds regardless.
func (p *Publisher) Control(cc fx.ControlContext) error {
	pose, ready := p.Pose.Snapshot()
	if !ready {
		return nil
	}
	msg := p.transformFrom(pose)
	var errs fx.AggregatedError
	for _, sink := range p.Sinks {
		errs.Add(sink.SendTransform(msg))
	}
	return errs.Aggregate()
}

// transformFrom builds the output transform. The rotation is the yaw
// quaternion of the estimated heading; the translation stays zero as
// no translation is estimated.
func (p *Publisher) transformFrom(pose Pose) *msgs.TransformStamped {
	return &msgs.TransformStamped{
		Stamp:        msgs.StampFrom(pose.Stamp),
		FrameId:      p.FrameID,
		ChildFrameId: p.ChildFrameID,
		Translation:  &msgs.Vector3{},
		Rotation:     QuaternionFromYaw(pose.Heading),
		Heading:      pose.Heading,
	}
}

// QuaternionFromYaw converts a yaw angle in radians to a quaternion
// rotating about the vertical axis.
func QuaternionFromYaw(yaw float64) *msgs.Quaternion {
	return &msgs.Quaternion{
		Z: math.Sin(yaw / 2),
		W: math.Cos(yaw / 2),
	}
}
