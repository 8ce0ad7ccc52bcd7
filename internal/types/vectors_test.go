package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

func vecTestCtx() wire.ProtocolContext { return wire.ProtocolContext{SerFmt: 29} }

func TestVectorRoundTrips(t *testing.T) {
	t.Run("V3F", func(t *testing.T) {
		v := V3F{X: 1.5, Y: -2.25, Z: 0}
		s := wire.NewSerializer(vecTestCtx())
		require.NoError(t, EncodeV3F(v, s))
		got, err := DecodeV3F(wire.NewDeserializer(vecTestCtx(), s.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	})

	t.Run("V2F", func(t *testing.T) {
		v := V2F{X: -3.5, Y: 42}
		s := wire.NewSerializer(vecTestCtx())
		require.NoError(t, EncodeV2F(v, s))
		got, err := DecodeV2F(wire.NewDeserializer(vecTestCtx(), s.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	})

	t.Run("V3S16", func(t *testing.T) {
		v := V3S16{X: -32768, Y: 0, Z: 32767}
		s := wire.NewSerializer(vecTestCtx())
		require.NoError(t, EncodeV3S16(v, s))
		got, err := DecodeV3S16(wire.NewDeserializer(vecTestCtx(), s.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	})

	t.Run("V3S32", func(t *testing.T) {
		v := V3S32{X: -2147483648, Y: 0, Z: 2147483647}
		s := wire.NewSerializer(vecTestCtx())
		require.NoError(t, EncodeV3S32(v, s))
		got, err := DecodeV3S32(wire.NewDeserializer(vecTestCtx(), s.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	})

	t.Run("V2U32", func(t *testing.T) {
		v := V2U32{X: 0, Y: 4294967295}
		s := wire.NewSerializer(vecTestCtx())
		require.NoError(t, EncodeV2U32(v, s))
		got, err := DecodeV2U32(wire.NewDeserializer(vecTestCtx(), s.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	})

	t.Run("V2S32", func(t *testing.T) {
		v := V2S32{X: -1, Y: 1}
		s := wire.NewSerializer(vecTestCtx())
		require.NoError(t, EncodeV2S32(v, s))
		got, err := DecodeV2S32(wire.NewDeserializer(vecTestCtx(), s.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	})
}
