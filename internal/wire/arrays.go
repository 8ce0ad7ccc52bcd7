package wire

// MaxReasonableArrayLen bounds Array32's declared length against the
// remaining input before allocating, per spec.md's "Array32 bound"
// testable property: a declared length exceeding remaining bytes is
// rejected without allocating.
const MaxReasonableArrayLen = 1 << 24

// EncodeArray0 writes every element with no length prefix at all; the
// caller (typically a wrapping WrappedN) knows where the region ends.
func EncodeArray0[T any](items []T, enc Encoder[T], s *Serializer) error {
	for _, item := range items {
		if err := enc(item, s); err != nil {
			return err
		}
	}
	return nil
}

// DecodeArray0 reads elements with dec until the deserializer (which
// must be a bounded Slice) is exhausted.
func DecodeArray0[T any](d *Deserializer, dec Decoder[T]) ([]T, error) {
	var out []T
	for d.HasRemaining() {
		v, err := dec(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func encodeArrayN[T any](n int, items []T, enc Encoder[T], s *Serializer) error {
	switch n {
	case 8:
		s.WriteU8(uint8(len(items)))
	case 16:
		s.WriteU16(uint16(len(items)))
	case 32:
		s.WriteU32(uint32(len(items)))
	default:
		panic("wire: unsupported array length-prefix width")
	}
	return EncodeArray0(items, enc, s)
}

func decodeArrayN[T any](n int, d *Deserializer, dec Decoder[T]) ([]T, error) {
	var count uint32
	switch n {
	case 8:
		v, err := d.ReadU8()
		if err != nil {
			return nil, err
		}
		count = uint32(v)
	case 16:
		v, err := d.ReadU16()
		if err != nil {
			return nil, err
		}
		count = uint32(v)
	case 32:
		v, err := d.ReadU32()
		if err != nil {
			return nil, err
		}
		count = uint32(v)
		// DoS guard: reject an implausible declared length before
		// allocating anything, per spec.md's Array32 bound property.
		if count > uint32(d.Remaining()) || count > MaxReasonableArrayLen {
			return nil, Errorf(KindCodec, "array32", "declared length %d exceeds remaining %d bytes", count, d.Remaining())
		}
	default:
		panic("wire: unsupported array length-prefix width")
	}
	out := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := dec(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeArray8 writes a u8 length prefix then each element.
func EncodeArray8[T any](items []T, enc Encoder[T], s *Serializer) error {
	return encodeArrayN(8, items, enc, s)
}

// DecodeArray8 reads a u8 length prefix then that many elements.
func DecodeArray8[T any](d *Deserializer, dec Decoder[T]) ([]T, error) {
	return decodeArrayN(8, d, dec)
}

// EncodeArray16 writes a u16 length prefix then each element.
func EncodeArray16[T any](items []T, enc Encoder[T], s *Serializer) error {
	return encodeArrayN(16, items, enc, s)
}

// DecodeArray16 reads a u16 length prefix then that many elements.
func DecodeArray16[T any](d *Deserializer, dec Decoder[T]) ([]T, error) {
	return decodeArrayN(16, d, dec)
}

// EncodeArray32 writes a u32 length prefix then each element.
func EncodeArray32[T any](items []T, enc Encoder[T], s *Serializer) error {
	return encodeArrayN(32, items, enc, s)
}

// DecodeArray32 reads a u32 length prefix (with the DoS guard) then
// that many elements.
func DecodeArray32[T any](d *Deserializer, dec Decoder[T]) ([]T, error) {
	return decodeArrayN(32, d, dec)
}

// EncodeFixedArray writes exactly len(items) elements, no prefix;
// callers are expected to pass a slice of the declared fixed length N.
func EncodeFixedArray[T any](items []T, enc Encoder[T], s *Serializer) error {
	return EncodeArray0(items, enc, s)
}

// DecodeFixedArray reads exactly n elements, no prefix.
func DecodeFixedArray[T any](n int, d *Deserializer, dec Decoder[T]) ([]T, error) {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := dec(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeBinaryData16 writes a u16 byte-length prefix then raw bytes.
func EncodeBinaryData16(data []byte, s *Serializer) error {
	s.WriteU16(uint16(len(data)))
	s.WriteBytes(data)
	return nil
}

// DecodeBinaryData16 reads a u16 byte-length prefix then that many raw bytes.
func DecodeBinaryData16(d *Deserializer) ([]byte, error) {
	n, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	return d.Take(int(n))
}

// EncodeBinaryData32 writes a u32 byte-length prefix then raw bytes.
func EncodeBinaryData32(data []byte, s *Serializer) error {
	s.WriteU32(uint32(len(data)))
	s.WriteBytes(data)
	return nil
}

// DecodeBinaryData32 reads a u32 byte-length prefix then that many raw bytes.
func DecodeBinaryData32(d *Deserializer) ([]byte, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(d.Remaining()) {
		return nil, Errorf(KindCodec, "binary_data32", "declared length %d exceeds remaining %d bytes", n, d.Remaining())
	}
	return d.Take(int(n))
}
