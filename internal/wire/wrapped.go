package wire

// EncodeWrapped16 reserves a u16 length marker, encodes the inner
// value with enc, then back-patches the marker with the byte length
// actually written (spec.md §9 "back-patched length markers").
func EncodeWrapped16[T any](v T, enc Encoder[T], s *Serializer) error {
	marker := s.WriteMarker(2)
	if err := enc(v, s); err != nil {
		return err
	}
	s.SetMarker(marker, 2, uint64(s.MarkerDistance(marker, 2)))
	return nil
}

// DecodeWrapped16 reads a u16 byte length, restricts the reader to
// that window, and decodes the inner value with dec.
func DecodeWrapped16[T any](d *Deserializer, dec Decoder[T]) (T, error) {
	var zero T
	n, err := d.ReadU16()
	if err != nil {
		return zero, err
	}
	sub, err := d.Slice(int(n))
	if err != nil {
		return zero, err
	}
	return dec(sub)
}

// EncodeWrapped32 is EncodeWrapped16 with a u32 length marker.
func EncodeWrapped32[T any](v T, enc Encoder[T], s *Serializer) error {
	marker := s.WriteMarker(4)
	if err := enc(v, s); err != nil {
		return err
	}
	s.SetMarker(marker, 4, uint64(s.MarkerDistance(marker, 4)))
	return nil
}

// DecodeWrapped32 is DecodeWrapped16 with a u32 length prefix.
func DecodeWrapped32[T any](d *Deserializer, dec Decoder[T]) (T, error) {
	var zero T
	n, err := d.ReadU32()
	if err != nil {
		return zero, err
	}
	if uint64(n) > uint64(d.Remaining()) {
		return zero, Errorf(KindCodec, "wrapped32", "declared length %d exceeds remaining %d bytes", n, d.Remaining())
	}
	sub, err := d.Slice(int(n))
	if err != nil {
		return zero, err
	}
	return dec(sub)
}
