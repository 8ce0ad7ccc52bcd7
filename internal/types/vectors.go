// Package types implements the domain value types spec.md §2 calls
// out (vectors, colors, player position, inventory, item stacks,
// node-definition manager, tagged-union "kind" fields), each paired
// with wire codec functions built from internal/wire's combinators.
package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// V3F is a signed 3D float vector (e.g. positions, velocities).
type V3F struct{ X, Y, Z float32 }

func EncodeV3F(v V3F, s *wire.Serializer) error {
	s.WriteF32(v.X)
	s.WriteF32(v.Y)
	s.WriteF32(v.Z)
	return nil
}

func DecodeV3F(d *wire.Deserializer) (V3F, error) {
	var v V3F
	var err error
	if v.X, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.Y, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.Z, err = d.ReadF32(); err != nil {
		return v, err
	}
	return v, nil
}

// V2F is a signed 2D float vector.
type V2F struct{ X, Y float32 }

func EncodeV2F(v V2F, s *wire.Serializer) error {
	s.WriteF32(v.X)
	s.WriteF32(v.Y)
	return nil
}

func DecodeV2F(d *wire.Deserializer) (V2F, error) {
	var v V2F
	var err error
	if v.X, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.Y, err = d.ReadF32(); err != nil {
		return v, err
	}
	return v, nil
}

// V3S16 is a signed 16-bit 3D vector, used for node/block positions on the wire.
type V3S16 struct{ X, Y, Z int16 }

func EncodeV3S16(v V3S16, s *wire.Serializer) error {
	s.WriteI16(v.X)
	s.WriteI16(v.Y)
	s.WriteI16(v.Z)
	return nil
}

func DecodeV3S16(d *wire.Deserializer) (V3S16, error) {
	var v V3S16
	var err error
	if v.X, err = d.ReadI16(); err != nil {
		return v, err
	}
	if v.Y, err = d.ReadI16(); err != nil {
		return v, err
	}
	if v.Z, err = d.ReadI16(); err != nil {
		return v, err
	}
	return v, nil
}

// V3S32 is a signed 32-bit 3D vector. PlayerPos does not use it; it
// writes its fixed-point positions/speeds as individual i32 scalars.
type V3S32 struct{ X, Y, Z int32 }

func EncodeV3S32(v V3S32, s *wire.Serializer) error {
	s.WriteI32(v.X)
	s.WriteI32(v.Y)
	s.WriteI32(v.Z)
	return nil
}

func DecodeV3S32(d *wire.Deserializer) (V3S32, error) {
	var v V3S32
	var err error
	if v.X, err = d.ReadI32(); err != nil {
		return v, err
	}
	if v.Y, err = d.ReadI32(); err != nil {
		return v, err
	}
	if v.Z, err = d.ReadI32(); err != nil {
		return v, err
	}
	return v, nil
}

// V2U32 is an unsigned 32-bit 2D vector (e.g. render target size).
type V2U32 struct{ X, Y uint32 }

func EncodeV2U32(v V2U32, s *wire.Serializer) error {
	s.WriteU32(v.X)
	s.WriteU32(v.Y)
	return nil
}

func DecodeV2U32(d *wire.Deserializer) (V2U32, error) {
	var v V2U32
	var err error
	if v.X, err = d.ReadU32(); err != nil {
		return v, err
	}
	if v.Y, err = d.ReadU32(); err != nil {
		return v, err
	}
	return v, nil
}

// V2S32 is a signed 32-bit 2D vector.
type V2S32 struct{ X, Y int32 }

func EncodeV2S32(v V2S32, s *wire.Serializer) error {
	s.WriteI32(v.X)
	s.WriteI32(v.Y)
	return nil
}

func DecodeV2S32(d *wire.Deserializer) (V2S32, error) {
	var v V2S32
	var err error
	if v.X, err = d.ReadI32(); err != nil {
		return v, err
	}
	if v.Y, err = d.ReadI32(); err != nil {
		return v, err
	}
	return v, nil
}
