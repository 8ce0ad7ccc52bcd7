package wire

import "unicode/utf16"

// EncodeString writes a u16-byte-length prefix then UTF-8 bytes (the
// plain `String`/`str` codec; spec.md's combinator list calls this the
// u16-prefixed string form used for most text fields).
func EncodeString(v string, s *Serializer) error {
	b := []byte(v)
	s.WriteU16(uint16(len(b)))
	s.WriteBytes(b)
	return nil
}

// DecodeString reads a u16 byte-length prefix then that many UTF-8 bytes.
func DecodeString(d *Deserializer) (string, error) {
	n, err := d.ReadU16()
	if err != nil {
		return "", err
	}
	b, err := d.Take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeLongString writes a u32-byte-length prefix then UTF-8 bytes.
func EncodeLongString(v string, s *Serializer) error {
	b := []byte(v)
	s.WriteU32(uint32(len(b)))
	s.WriteBytes(b)
	return nil
}

// DecodeLongString reads a u32-byte-length prefix then that many UTF-8 bytes.
func DecodeLongString(d *Deserializer) (string, error) {
	n, err := d.ReadU32()
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(d.Remaining()) {
		return "", Errorf(KindCodec, "long_string", "declared length %d exceeds remaining %d bytes", n, d.Remaining())
	}
	b, err := d.Take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeWString writes a u16 code-unit count then that many big-endian
// UTF-16 code units (spec.md §4.2/§6.1 WString).
func EncodeWString(v string, s *Serializer) error {
	units := utf16.Encode([]rune(v))
	s.WriteU16(uint16(len(units)))
	for _, u := range units {
		s.WriteU16(u)
	}
	return nil
}

// DecodeWString reads a u16 code-unit count then that many big-endian
// UTF-16 code units and decodes them to a Go string.
func DecodeWString(d *Deserializer) (string, error) {
	count, err := d.ReadU16()
	if err != nil {
		return "", err
	}
	if int(count) > d.Remaining()/2 {
		return "", Errorf(KindCodec, "wstring", "declared code-unit count %d exceeds remaining bytes", count)
	}
	units := make([]uint16, count)
	for i := range units {
		u, err := d.ReadU16()
		if err != nil {
			return "", err
		}
		units[i] = u
	}
	return string(utf16.Decode(units)), nil
}
