package wire

import (
	"encoding/binary"
	"math"
)

// Deserializer consumes a byte slice with peek/take/line/word helpers,
// carrying the same ProtocolContext a Serializer carries (spec.md §4.1).
type Deserializer struct {
	ctx ProtocolContext
	buf []byte
	pos int
}

// NewDeserializer creates a deserializer over buf, starting at position 0.
func NewDeserializer(ctx ProtocolContext, buf []byte) *Deserializer {
	return &Deserializer{ctx: ctx, buf: buf}
}

// Context returns the protocol context threaded through this deserializer.
func (d *Deserializer) Context() ProtocolContext { return d.ctx }

// SetContext overwrites the context (used when a Hello is observed).
func (d *Deserializer) SetContext(ctx ProtocolContext) { d.ctx = ctx }

// Remaining reports how many unconsumed bytes are left.
func (d *Deserializer) Remaining() int { return len(d.buf) - d.pos }

// HasRemaining reports whether any bytes are left to consume.
func (d *Deserializer) HasRemaining() bool { return d.pos < len(d.buf) }

// PeekAll returns every unconsumed byte without advancing the cursor.
func (d *Deserializer) PeekAll() []byte { return d.buf[d.pos:] }

// Take consumes and returns the next n bytes, or a codec error on EOF.
func (d *Deserializer) Take(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, Errorf(KindCodec, "take", "premature EOF: wanted %d, have %d", n, d.Remaining())
	}
	out := d.buf[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

// Slice carves out a bounded sub-deserializer over the next n bytes,
// inheriting the same context, used by WrappedN<T> to restrict a
// nested decode to its declared-length window.
func (d *Deserializer) Slice(n int) (*Deserializer, error) {
	raw, err := d.Take(n)
	if err != nil {
		return nil, err
	}
	return &Deserializer{ctx: d.ctx, buf: raw}, nil
}

func (d *Deserializer) ReadU8() (uint8, error) {
	b, err := d.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Deserializer) ReadBool() (bool, error) {
	v, err := d.ReadU8()
	if err != nil {
		return false, err
	}
	if v > 1 {
		return false, Errorf(KindCodec, "bool", "invalid bool byte %d", v)
	}
	return v == 1, nil
}

func (d *Deserializer) ReadU16() (uint16, error) {
	b, err := d.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (d *Deserializer) ReadU32() (uint32, error) {
	b, err := d.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *Deserializer) ReadU64() (uint64, error) {
	b, err := d.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *Deserializer) ReadI8() (int8, error) {
	v, err := d.ReadU8()
	return int8(v), err
}

func (d *Deserializer) ReadI16() (int16, error) {
	v, err := d.ReadU16()
	return int16(v), err
}

func (d *Deserializer) ReadI32() (int32, error) {
	v, err := d.ReadU32()
	return int32(v), err
}

func (d *Deserializer) ReadF32() (float32, error) {
	v, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadLine consumes up to (and including) the next '\n', returning the
// line without its terminator; used by the inventory text format.
func (d *Deserializer) ReadLine() (string, error) {
	for i := d.pos; i < len(d.buf); i++ {
		if d.buf[i] == '\n' {
			line := string(d.buf[d.pos:i])
			d.pos = i + 1
			return trimCR(line), nil
		}
	}
	if d.pos >= len(d.buf) {
		return "", Errorf(KindCodec, "read_line", "premature EOF")
	}
	line := string(d.buf[d.pos:])
	d.pos = len(d.buf)
	return trimCR(line), nil
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}

// SkipWhitespace advances past ASCII spaces and tabs.
func (d *Deserializer) SkipWhitespace() {
	for d.pos < len(d.buf) && (d.buf[d.pos] == ' ' || d.buf[d.pos] == '\t') {
		d.pos++
	}
}

// ReadWord consumes whitespace-delimited text (inventory format's
// `next_word`), stopping before the next space/tab/newline.
func (d *Deserializer) ReadWord() (string, error) {
	d.SkipWhitespace()
	start := d.pos
	for d.pos < len(d.buf) && d.buf[d.pos] != ' ' && d.buf[d.pos] != '\t' && d.buf[d.pos] != '\n' && d.buf[d.pos] != '\r' {
		d.pos++
	}
	if start == d.pos {
		return "", Errorf(KindCodec, "read_word", "expected a word")
	}
	return string(d.buf[start:d.pos]), nil
}
