package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeU8Byte(d *Deserializer) (byte, error) { return d.ReadU8() }
func encodeU8Byte(v byte, s *Serializer) error    { s.WriteU8(v); return nil }

// TestArray32RejectsLengthExceedingRemaining covers spec.md §8's "Array32
// bound": a declared length longer than the remaining bytes must be
// rejected outright, without allocating a slice of that length.
func TestArray32RejectsLengthExceedingRemaining(t *testing.T) {
	// Declares 1000 elements but supplies only 2 bytes of payload.
	buf := []byte{0x00, 0x00, 0x03, 0xE8, 0xAA, 0xBB}
	d := NewDeserializer(ProtocolContext{}, buf)

	_, err := DecodeArray32[byte](d, decodeU8Byte)
	require.Error(t, err)

	var pe *ProtoError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, KindCodec, pe.Kind)
}

func TestArray32RejectsDeclaredLengthAboveConstantCap(t *testing.T) {
	buf := make([]byte, 4+MaxReasonableArrayLen+1)
	buf[0], buf[1], buf[2], buf[3] = 0x01, 0x00, 0x00, 0x01 // count = MaxReasonableArrayLen + 1
	d := NewDeserializer(ProtocolContext{}, buf)

	_, err := DecodeArray32[byte](d, decodeU8Byte)
	require.Error(t, err)
}

func TestArray32RoundTrip(t *testing.T) {
	items := []byte{1, 2, 3, 4, 5}
	s := NewSerializer(ProtocolContext{})
	require.NoError(t, EncodeArray32(items, encodeU8Byte, s))

	d := NewDeserializer(ProtocolContext{}, s.Bytes())
	out, err := DecodeArray32[byte](d, decodeU8Byte)
	require.NoError(t, err)
	require.Equal(t, items, out)
}
