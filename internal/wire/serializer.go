package wire

import (
	"encoding/binary"
	"math"
)

// Serializer appends bytes to a growing buffer and supports
// back-patchable length markers (spec.md §4.1, §9 "back-patched
// length markers"): reserve a span, write the inner value, then fill
// the span with the byte length actually written.
type Serializer struct {
	ctx ProtocolContext
	buf []byte
}

// NewSerializer creates an empty serializer carrying ctx.
func NewSerializer(ctx ProtocolContext) *Serializer {
	return &Serializer{ctx: ctx, buf: make([]byte, 0, 64)}
}

// Context returns the protocol context threaded through this serializer.
func (s *Serializer) Context() ProtocolContext { return s.ctx }

// SetContext overwrites the context (used when a Hello is observed
// mid-stream, per spec.md §4.7 "Observe Hello").
func (s *Serializer) SetContext(ctx ProtocolContext) { s.ctx = ctx }

// Bytes returns the serialized buffer.
func (s *Serializer) Bytes() []byte { return s.buf }

// Len reports the current buffer length.
func (s *Serializer) Len() int { return len(s.buf) }

// WriteBytes appends raw bytes verbatim.
func (s *Serializer) WriteBytes(b []byte) { s.buf = append(s.buf, b...) }

// WriteU8 appends a single byte.
func (s *Serializer) WriteU8(v uint8) { s.buf = append(s.buf, v) }

// WriteBool appends a boolean as 0 or 1 (spec.md: "Booleans... 0/1 only").
func (s *Serializer) WriteBool(v bool) {
	if v {
		s.WriteU8(1)
	} else {
		s.WriteU8(0)
	}
}

// WriteU16 appends a big-endian u16.
func (s *Serializer) WriteU16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	s.buf = append(s.buf, tmp[:]...)
}

// WriteU32 appends a big-endian u32.
func (s *Serializer) WriteU32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	s.buf = append(s.buf, tmp[:]...)
}

// WriteU64 appends a big-endian u64.
func (s *Serializer) WriteU64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	s.buf = append(s.buf, tmp[:]...)
}

// WriteI8 appends a signed byte.
func (s *Serializer) WriteI8(v int8) { s.WriteU8(uint8(v)) }

// WriteI16 appends a big-endian i16.
func (s *Serializer) WriteI16(v int16) { s.WriteU16(uint16(v)) }

// WriteI32 appends a big-endian i32.
func (s *Serializer) WriteI32(v int32) { s.WriteU32(uint32(v)) }

// WriteF32 appends a big-endian IEEE-754 float32.
func (s *Serializer) WriteF32(v float32) {
	s.WriteU32(math.Float32bits(v))
}

// WriteMarker reserves n zero bytes and returns their offset, to be
// filled in later via SetMarker once the inner value's length is known.
func (s *Serializer) WriteMarker(n int) int {
	offset := len(s.buf)
	s.buf = append(s.buf, make([]byte, n)...)
	return offset
}

// MarkerDistance returns how many bytes have been written since a
// marker of width n was reserved at offset.
func (s *Serializer) MarkerDistance(offset, n int) int {
	return len(s.buf) - offset - n
}

// SetMarker back-patches an n-byte (1, 2, or 4) big-endian value at offset.
func (s *Serializer) SetMarker(offset, n int, value uint64) {
	switch n {
	case 1:
		s.buf[offset] = byte(value)
	case 2:
		binary.BigEndian.PutUint16(s.buf[offset:offset+2], uint16(value))
	case 4:
		binary.BigEndian.PutUint32(s.buf[offset:offset+4], uint32(value))
	default:
		panic("wire: unsupported marker width")
	}
}
