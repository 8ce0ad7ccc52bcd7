package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// SColor is a plain RGBA color (original_source/luanti-protocol/src/types/vectors.rs).
type SColor struct{ R, G, B, A uint8 }

func EncodeSColor(c SColor, s *wire.Serializer) error {
	s.WriteU8(c.R)
	s.WriteU8(c.G)
	s.WriteU8(c.B)
	s.WriteU8(c.A)
	return nil
}

func DecodeSColor(d *wire.Deserializer) (SColor, error) {
	var c SColor
	var err error
	if c.R, err = d.ReadU8(); err != nil {
		return c, err
	}
	if c.G, err = d.ReadU8(); err != nil {
		return c, err
	}
	if c.B, err = d.ReadU8(); err != nil {
		return c, err
	}
	if c.A, err = d.ReadU8(); err != nil {
		return c, err
	}
	return c, nil
}
