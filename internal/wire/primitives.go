package wire

// This file defines the primitive and combinator codec layer
// (spec.md §4.2). Each codec is a pair of plain functions rather than
// a method on a type, so the same Array16/Wrapped32/etc. combinators
// work uniformly over primitives and struct-shaped payloads; the
// command registry (internal/command) builds its per-field codecs out
// of these.

// Encoder writes a value of T into s.
type Encoder[T any] func(v T, s *Serializer) error

// Decoder reads a value of T out of d.
type Decoder[T any] func(d *Deserializer) (T, error)

// U8 primitive codec.
func EncodeU8(v uint8, s *Serializer) error { s.WriteU8(v); return nil }
func DecodeU8(d *Deserializer) (uint8, error) { return d.ReadU8() }

// U16 primitive codec.
func EncodeU16(v uint16, s *Serializer) error { s.WriteU16(v); return nil }
func DecodeU16(d *Deserializer) (uint16, error) { return d.ReadU16() }

// U32 primitive codec.
func EncodeU32(v uint32, s *Serializer) error { s.WriteU32(v); return nil }
func DecodeU32(d *Deserializer) (uint32, error) { return d.ReadU32() }

// U64 primitive codec.
func EncodeU64(v uint64, s *Serializer) error { s.WriteU64(v); return nil }
func DecodeU64(d *Deserializer) (uint64, error) { return d.ReadU64() }

// I8 primitive codec.
func EncodeI8(v int8, s *Serializer) error { s.WriteI8(v); return nil }
func DecodeI8(d *Deserializer) (int8, error) { return d.ReadI8() }

// I16 primitive codec.
func EncodeI16(v int16, s *Serializer) error { s.WriteI16(v); return nil }
func DecodeI16(d *Deserializer) (int16, error) { return d.ReadI16() }

// I32 primitive codec.
func EncodeI32(v int32, s *Serializer) error { s.WriteI32(v); return nil }
func DecodeI32(d *Deserializer) (int32, error) { return d.ReadI32() }

// F32 primitive codec.
func EncodeF32(v float32, s *Serializer) error { s.WriteF32(v); return nil }
func DecodeF32(d *Deserializer) (float32, error) { return d.ReadF32() }

// Bool primitive codec (0/1 only).
func EncodeBool(v bool, s *Serializer) error { s.WriteBool(v); return nil }
func DecodeBool(d *Deserializer) (bool, error) { return d.ReadBool() }
