package wire

// EncodeOption writes the inner value if present, nothing otherwise.
// Tail-optional: once an Option field is used in a struct, every
// subsequent field must also be tail-optional (spec.md §4.2).
func EncodeOption[T any](v *T, enc Encoder[T], s *Serializer) error {
	if v == nil {
		return nil
	}
	return enc(*v, s)
}

// DecodeOption reads the inner value iff bytes remain in d.
func DecodeOption[T any](d *Deserializer, dec Decoder[T]) (*T, error) {
	if !d.HasRemaining() {
		return nil, nil
	}
	v, err := dec(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// EncodeOption16 writes a u16 byte-length prefix; 0 means absent,
// otherwise the inner value follows inline within that many bytes.
func EncodeOption16[T any](v *T, enc Encoder[T], s *Serializer) error {
	if v == nil {
		s.WriteU16(0)
		return nil
	}
	return EncodeWrapped16(*v, enc, s)
}

// DecodeOption16 reads a u16 byte-length prefix; 0 means absent.
func DecodeOption16[T any](d *Deserializer, dec Decoder[T]) (*T, error) {
	n, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	sub, err := d.Slice(int(n))
	if err != nil {
		return nil, err
	}
	v, err := dec(sub)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
