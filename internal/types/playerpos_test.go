package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// TestPlayerPosFixedPointRoundTrip covers spec.md §6.1's fixed-point
// scaling rule. Values are chosen to land exactly on the scale's grid
// (multiples of 1/100 for position/speed/angles, 1/80 for fov) so the
// round trip is exact rather than merely close.
func TestPlayerPosFixedPointRoundTrip(t *testing.T) {
	p := PlayerPos{
		Position:    V3F{X: 12.34, Y: -5.01, Z: 0},
		Speed:       V3F{X: -1.10, Y: 0, Z: 3.33},
		Pitch:       -90,
		Yaw:         179.99,
		KeysPressed: 0x0000003F,
		Fov:         1.25, // 100/80
		WantedRange: 200,
	}
	ctx := wire.ProtocolContext{SerFmt: 29}
	s := wire.NewSerializer(ctx)
	require.NoError(t, EncodePlayerPos(p, s))

	got, err := DecodePlayerPos(wire.NewDeserializer(ctx, s.Bytes()))
	require.NoError(t, err)
	require.InDelta(t, p.Position.X, got.Position.X, 1e-4)
	require.InDelta(t, p.Position.Y, got.Position.Y, 1e-4)
	require.InDelta(t, p.Position.Z, got.Position.Z, 1e-4)
	require.InDelta(t, p.Speed.X, got.Speed.X, 1e-4)
	require.InDelta(t, p.Speed.Y, got.Speed.Y, 1e-4)
	require.InDelta(t, p.Speed.Z, got.Speed.Z, 1e-4)
	require.InDelta(t, p.Pitch, got.Pitch, 1e-4)
	require.InDelta(t, p.Yaw, got.Yaw, 1e-4)
	require.Equal(t, p.KeysPressed, got.KeysPressed)
	require.InDelta(t, p.Fov, got.Fov, 1e-4)
	require.Equal(t, p.WantedRange, got.WantedRange)
}
