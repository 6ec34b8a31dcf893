package node

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotracks/odom.go/pkg/odometry"
)

func TestTopics(t *testing.T) {
	require.Equal(t, "duckie7/left_wheel_encoder/tick", TickTopic("duckie7", odometry.Left))
	require.Equal(t, "duckie7/right_wheel_encoder/tick", TickTopic("duckie7", odometry.Right))
	require.Equal(t, "duckie7/encoder_localization/transform", TransformTopic("duckie7"))
	require.Equal(t, "duckie7/tf", FrameTopic("duckie7"))
}

func TestConfigVehicleName(t *testing.T) {
	conf := Config{Vehicle: "duckie7"}
	name, err := conf.VehicleName()
	require.NoError(t, err)
	require.Equal(t, "duckie7", name)
}
