package msgs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStampRoundTrip(t *testing.T) {
	now := time.Unix(1583310845, 123456789)
	require.Equal(t, now, StampFrom(now).Time())
}

func TestNilStampIsZeroTime(t *testing.T) {
	var stamp *Stamp
	require.True(t, stamp.Time().IsZero())
}

func TestWheelTicksWire(t *testing.T) {
	now := time.Unix(100, 0)
	msg := &WheelTicksStamped{Stamp: StampFrom(now), Ticks: 135, Resolution: 135}
	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := DecodeWheelTicks(data)
	require.NoError(t, err)
	require.Equal(t, int32(135), decoded.Ticks)
	require.Equal(t, now, decoded.Stamp.Time())
}
