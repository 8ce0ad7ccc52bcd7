package wire

// EncodePair writes a and b back to back with no separator, the
// `Pair<A, B>` combinator original_source leans on for things like
// `(String, s16)` item groups.
func EncodePair[A, B any](a A, b B, encA Encoder[A], encB Encoder[B], s *Serializer) error {
	if err := encA(a, s); err != nil {
		return err
	}
	return encB(b, s)
}

// DecodePair reads a followed by b with no separator.
func DecodePair[A, B any](d *Deserializer, decA Decoder[A], decB Decoder[B]) (A, B, error) {
	var zeroA A
	var zeroB B
	a, err := decA(d)
	if err != nil {
		return zeroA, zeroB, err
	}
	b, err := decB(d)
	if err != nil {
		return a, zeroB, err
	}
	return a, b, nil
}
