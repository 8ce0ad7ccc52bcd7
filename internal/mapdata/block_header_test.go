package mapdata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

func ctx27() wire.ProtocolContext {
	return wire.ProtocolContext{SerFmt: 27}
}

// TestMapBlockHeaderFlagRoundTrip covers spec.md §8's header-flags
// property: each of the three meaningful bits round-trips independently.
func TestMapBlockHeaderFlagRoundTrip(t *testing.T) {
	lc := uint16(0xFFFF)
	cases := []mapBlockHeader{
		{IsUnderground: false, DayNightDiffers: false, Generated: true, LightingComplete: &lc},
		{IsUnderground: true, DayNightDiffers: false, Generated: true, LightingComplete: &lc},
		{IsUnderground: false, DayNightDiffers: true, Generated: true, LightingComplete: &lc},
		{IsUnderground: false, DayNightDiffers: false, Generated: false, LightingComplete: &lc},
		{IsUnderground: true, DayNightDiffers: true, Generated: false, LightingComplete: &lc},
	}
	for _, h := range cases {
		s := wire.NewSerializer(ctx27())
		require.NoError(t, encodeMapBlockHeader(h, s))

		d := wire.NewDeserializer(ctx27(), s.Bytes())
		got, err := decodeMapBlockHeader(d)
		require.NoError(t, err)
		require.Equal(t, h.IsUnderground, got.IsUnderground)
		require.Equal(t, h.DayNightDiffers, got.DayNightDiffers)
		require.Equal(t, h.Generated, got.Generated)
		require.Equal(t, *h.LightingComplete, *got.LightingComplete)
	}
}

// TestMapBlockHeaderRejectsUnknownFlagBits covers the "any other bit
// rejected" half of the same property.
func TestMapBlockHeaderRejectsUnknownFlagBits(t *testing.T) {
	s := wire.NewSerializer(ctx27())
	s.WriteU8(0x80) // unused bit set
	s.WriteU16(0)
	s.WriteU8(2)
	s.WriteU8(2)

	d := wire.NewDeserializer(ctx27(), s.Bytes())
	_, err := decodeMapBlockHeader(d)
	require.Error(t, err)
}
