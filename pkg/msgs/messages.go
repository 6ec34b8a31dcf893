// Package msgs defines the wire messages exchanged over the MQTT
// transport. The structs implement proto.Message directly and are
// kept in sync with odom.proto.
package msgs

import (
	"time"

	"github.com/golang/protobuf/proto"
)

// Stamp is the sensor-side time of an observation.
type Stamp struct {
	Sec  int64 `protobuf:"varint,1,opt,name=sec,proto3" json:"sec,omitempty"`
	Nsec int32 `protobuf:"varint,2,opt,name=nsec,proto3" json:"nsec,omitempty"`
}

// Reset implements proto.Message.
func (m *Stamp) Reset() { *m = Stamp{} }

// String implements proto.Message.
func (m *Stamp) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements proto.Message.
func (*Stamp) ProtoMessage() {}

// StampFrom creates a Stamp from time.Time.
func StampFrom(t time.Time) *Stamp {
	return &Stamp{Sec: t.Unix(), Nsec: int32(t.Nanosecond())}
}

// Time converts the Stamp back to time.Time. A nil Stamp maps to the
// zero time.
func (m *Stamp) Time() time.Time {
	if m == nil {
		return time.Time{}
	}
	return time.Unix(m.Sec, int64(m.Nsec))
}

// WheelTicksStamped is the cumulative encoder counter of one wheel.
// Ticks is raw hardware count since power-on, not a delta.
type WheelTicksStamped struct {
	Stamp      *Stamp `protobuf:"bytes,1,opt,name=stamp,proto3" json:"stamp,omitempty"`
	Ticks      int32  `protobuf:"varint,2,opt,name=ticks,proto3" json:"ticks,omitempty"`
	Resolution int32  `protobuf:"varint,3,opt,name=resolution,proto3" json:"resolution,omitempty"`
}

// Reset implements proto.Message.
func (m *WheelTicksStamped) Reset() { *m = WheelTicksStamped{} }

// String implements proto.Message.
func (m *WheelTicksStamped) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements proto.Message.
func (*WheelTicksStamped) ProtoMessage() {}

// Encode encodes the message to bytes.
func (m *WheelTicksStamped) Encode() ([]byte, error) {
	return proto.Marshal(m)
}

// DecodeWheelTicks decodes bytes into WheelTicksStamped.
func DecodeWheelTicks(data []byte) (*WheelTicksStamped, error) {
	var msg WheelTicksStamped
	if err := proto.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Vector3 is a 3D vector in meters.
type Vector3 struct {
	X float64 `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y float64 `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Z float64 `protobuf:"fixed64,3,opt,name=z,proto3" json:"z,omitempty"`
}

// Reset implements proto.Message.
func (m *Vector3) Reset() { *m = Vector3{} }

// String implements proto.Message.
func (m *Vector3) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements proto.Message.
func (*Vector3) ProtoMessage() {}

// Quaternion is a rotation in 3D space.
type Quaternion struct {
	X float64 `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y float64 `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Z float64 `protobuf:"fixed64,3,opt,name=z,proto3" json:"z,omitempty"`
	W float64 `protobuf:"fixed64,4,opt,name=w,proto3" json:"w,omitempty"`
}

// Reset implements proto.Message.
func (m *Quaternion) Reset() { *m = Quaternion{} }

// String implements proto.Message.
func (m *Quaternion) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements proto.Message.
func (*Quaternion) ProtoMessage() {}

// TransformStamped is a rigid-body transform between two named frames.
// Stamp carries the time of the last sensor observation contributing
// to the transform, not the time it was published.
type TransformStamped struct {
	Stamp        *Stamp      `protobuf:"bytes,1,opt,name=stamp,proto3" json:"stamp,omitempty"`
	FrameId      string      `protobuf:"bytes,2,opt,name=frame_id,json=frameId,proto3" json:"frame_id,omitempty"`
	ChildFrameId string      `protobuf:"bytes,3,opt,name=child_frame_id,json=childFrameId,proto3" json:"child_frame_id,omitempty"`
	Translation  *Vector3    `protobuf:"bytes,4,opt,name=translation,proto3" json:"translation,omitempty"`
	Rotation     *Quaternion `protobuf:"bytes,5,opt,name=rotation,proto3" json:"rotation,omitempty"`
	Heading      float64     `protobuf:"fixed64,6,opt,name=heading,proto3" json:"heading,omitempty"`
}

// Reset implements proto.Message.
func (m *TransformStamped) Reset() { *m = TransformStamped{} }

// String implements proto.Message.
func (m *TransformStamped) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements proto.Message.
func (*TransformStamped) ProtoMessage() {}

// Encode encodes the message to bytes.
func (m *TransformStamped) Encode() ([]byte, error) {
	return proto.Marshal(m)
}

// DecodeTransform decodes bytes into TransformStamped.
func DecodeTransform(data []byte) (*TransformStamped, error) {
	var msg TransformStamped
	if err := proto.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
