package wire

import (
	"bytes"
	"io"

	kzlib "github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// EncodeZLibCompressed serializes v with enc into a scratch buffer,
// zlib-compresses it, and writes a u32-length prefix followed by the
// compressed bytes (spec.md §4.2, §9 "compression wrappers").
func EncodeZLibCompressed[T any](v T, enc Encoder[T], s *Serializer) error {
	inner := NewSerializer(s.Context())
	if err := enc(v, inner); err != nil {
		return err
	}
	var buf bytes.Buffer
	w := kzlib.NewWriter(&buf)
	if _, err := w.Write(inner.Bytes()); err != nil {
		return Wrap(KindCodec, "zlib_compress", err)
	}
	if err := w.Close(); err != nil {
		return Wrap(KindCodec, "zlib_compress", err)
	}
	s.WriteU32(uint32(buf.Len()))
	s.WriteBytes(buf.Bytes())
	return nil
}

// DecodeZLibCompressed reads a u32-length-prefixed zlib region,
// decompresses it, and decodes the inner value with dec.
func DecodeZLibCompressed[T any](d *Deserializer, dec Decoder[T]) (T, error) {
	var zero T
	n, err := d.ReadU32()
	if err != nil {
		return zero, err
	}
	if uint64(n) > uint64(d.Remaining()) {
		return zero, Errorf(KindCodec, "zlib_decompress", "declared length %d exceeds remaining %d bytes", n, d.Remaining())
	}
	raw, err := d.Take(int(n))
	if err != nil {
		return zero, err
	}
	r, err := kzlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return zero, Wrap(KindCodec, "zlib_decompress", err)
	}
	defer r.Close()
	decompressed, err := io.ReadAll(r)
	if err != nil {
		return zero, Wrap(KindCodec, "zlib_decompress", err)
	}
	sub := NewDeserializer(d.Context(), decompressed)
	return dec(sub)
}

// EncodeZStdCompressed serializes v, zstd-compresses it, and writes
// the compressed stream with no explicit length prefix: the decoder's
// consumed-byte count determines how far the caller must advance.
func EncodeZStdCompressed[T any](v T, enc Encoder[T], s *Serializer) error {
	inner := NewSerializer(s.Context())
	if err := enc(v, inner); err != nil {
		return err
	}
	enc2, err := zstd.NewWriter(nil)
	if err != nil {
		return Wrap(KindCodec, "zstd_compress", err)
	}
	defer enc2.Close()
	s.WriteBytes(enc2.EncodeAll(inner.Bytes(), nil))
	return nil
}

// DecodeZStdCompressed decompresses the remaining bytes as a zstd
// stream and decodes the inner value with dec. Since zstd framing is
// self-terminating, this must be called on a deserializer that has
// already been bounded to exactly the compressed region (e.g. via the
// whole-block framing in internal/mapdata), because the stream decoder
// consumes the entire remaining input.
func DecodeZStdCompressed[T any](d *Deserializer, dec Decoder[T]) (T, error) {
	var zero T
	zr, err := zstd.NewReader(bytes.NewReader(d.PeekAll()))
	if err != nil {
		return zero, Wrap(KindCodec, "zstd_decompress", err)
	}
	defer zr.Close()
	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return zero, Wrap(KindCodec, "zstd_decompress", err)
	}
	sub := NewDeserializer(d.Context(), decompressed)
	return dec(sub)
}
