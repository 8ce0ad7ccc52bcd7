package mapdata

import "github.com/kawogi/luanti-go-proto/internal/wire"

const (
	flagUnderground   = 0x1
	flagDayNightDiffer = 0x2
	flagNotGenerated  = 0x8
)

// mapBlockHeader is MapBlock's fixed leading fields, serialized
// separately from the bulk node/metadata planes so the whole-block
// compression wrapper (ver >= 29) or the per-section wrapper (ver 28)
// can wrap everything else around it identically.
type mapBlockHeader struct {
	IsUnderground     bool
	DayNightDiffers   bool
	Generated         bool
	LightingComplete  *uint16
}

func encodeMapBlockHeader(h mapBlockHeader, s *wire.Serializer) error {
	var flags uint8
	if h.IsUnderground {
		flags |= flagUnderground
	}
	if h.DayNightDiffers {
		flags |= flagDayNightDiffer
	}
	if !h.Generated {
		flags |= flagNotGenerated
	}
	s.WriteU8(flags)
	if s.Context().SerFmt >= 27 {
		if h.LightingComplete == nil {
			return wire.Errorf(wire.KindCodec, "map_block_header", "lighting_complete required for ser_fmt >= 27")
		}
		s.WriteU16(*h.LightingComplete)
	}
	s.WriteU8(2) // content_width
	s.WriteU8(2) // params_width
	return nil
}

func decodeMapBlockHeader(d *wire.Deserializer) (mapBlockHeader, error) {
	var h mapBlockHeader
	flags, err := d.ReadU8()
	if err != nil {
		return h, err
	}
	if flags&^(flagUnderground|flagDayNightDiffer|flagNotGenerated) != 0 {
		return h, wire.Errorf(wire.KindCodec, "map_block_header", "invalid flags 0x%02x", flags)
	}
	h.IsUnderground = flags&flagUnderground != 0
	h.DayNightDiffers = flags&flagDayNightDiffer != 0
	h.Generated = flags&flagNotGenerated == 0
	if d.Context().SerFmt >= 27 {
		lc, err := d.ReadU16()
		if err != nil {
			return h, err
		}
		h.LightingComplete = &lc
	}
	contentWidth, err := d.ReadU8()
	if err != nil {
		return h, err
	}
	paramsWidth, err := d.ReadU8()
	if err != nil {
		return h, err
	}
	if contentWidth != 2 || paramsWidth != 2 {
		return h, wire.Errorf(wire.KindCodec, "map_block_header", "content_width/params_width not both 2")
	}
	return h, nil
}

// encodeNodesBulk writes every node's content id, then every param1,
// then every param2, as three parallel byte planes: compresses better
// than interleaved nodes (original_source/luanti-protocol/src/types.rs
// MapNodesBulk).
func encodeNodesBulk(nodes [NodeCount]MapNode, s *wire.Serializer) error {
	for i := range nodes {
		s.WriteU16(uint16(nodes[i].ContentId))
	}
	for i := range nodes {
		s.WriteU8(nodes[i].Param1)
	}
	for i := range nodes {
		s.WriteU8(nodes[i].Param2)
	}
	return nil
}

func decodeNodesBulk(d *wire.Deserializer) ([NodeCount]MapNode, error) {
	var nodes [NodeCount]MapNode
	raw, err := d.Take(4 * NodeCount)
	if err != nil {
		return nodes, err
	}
	param1Offset := 2 * NodeCount
	param2Offset := 3 * NodeCount
	for i := 0; i < NodeCount; i++ {
		contentID := uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
		nodes[i] = MapNode{
			ContentId: ContentId(contentID),
			Param1:    raw[param1Offset+i],
			Param2:    raw[param2Offset+i],
		}
	}
	return nodes, nil
}

// MapBlock is a full 16x16x16 node block as sent over the wire
// (original_source/luanti-protocol/src/types.rs MapBlock). Only
// ser_fmt >= 28 is supported, matching the original.
type MapBlock struct {
	IsUnderground    bool
	DayNightDiffers  bool
	Generated        bool
	LightingComplete *uint16
	Nodes            [NodeCount]MapNode
	Metadata         NodeMetadataList
}

// EncodeMapBlock serializes a block according to s.Context().SerFmt:
// >= 29 wraps the whole block (header+nodes+metadata) in one zstd
// stream; == 28 zlib-compresses the nodes and metadata sections
// separately, with the header left plain.
func EncodeMapBlock(v MapBlock, s *wire.Serializer) error {
	ver := s.Context().SerFmt
	if ver < 28 {
		return wire.Errorf(wire.KindCodec, "map_block", "unsupported ser_fmt %d", ver)
	}
	header := mapBlockHeader{
		IsUnderground:    v.IsUnderground,
		DayNightDiffers:  v.DayNightDiffers,
		Generated:        v.Generated,
		LightingComplete: v.LightingComplete,
	}
	if ver >= 29 {
		whole := wire.NewSerializer(s.Context())
		if err := encodeMapBlockHeader(header, whole); err != nil {
			return err
		}
		if err := encodeNodesBulk(v.Nodes, whole); err != nil {
			return err
		}
		if err := EncodeNodeMetadataList(v.Metadata, whole); err != nil {
			return err
		}
		return wire.EncodeZStdCompressed(whole.Bytes(), func(b []byte, s *wire.Serializer) error {
			s.WriteBytes(b)
			return nil
		}, s)
	}
	if err := encodeMapBlockHeader(header, s); err != nil {
		return err
	}
	if err := wire.EncodeZLibCompressed(v.Nodes, encodeNodesBulk, s); err != nil {
		return err
	}
	return wire.EncodeZLibCompressed(v.Metadata, EncodeNodeMetadataList, s)
}

// DecodeMapBlock parses a block per d.Context().SerFmt, mirroring EncodeMapBlock.
func DecodeMapBlock(d *wire.Deserializer) (MapBlock, error) {
	var v MapBlock
	ver := d.Context().SerFmt
	if ver < 28 {
		return v, wire.Errorf(wire.KindCodec, "map_block", "unsupported ser_fmt %d", ver)
	}
	if ver >= 29 {
		whole, err := wire.DecodeZStdCompressed(d, func(d *wire.Deserializer) ([]byte, error) { return d.Take(d.Remaining()) })
		if err != nil {
			return v, err
		}
		sub := wire.NewDeserializer(d.Context(), whole)
		header, err := decodeMapBlockHeader(sub)
		if err != nil {
			return v, err
		}
		nodes, err := decodeNodesBulk(sub)
		if err != nil {
			return v, err
		}
		metadata, err := DecodeNodeMetadataList(sub)
		if err != nil {
			return v, err
		}
		return blockFromParts(header, nodes, metadata), nil
	}
	header, err := decodeMapBlockHeader(d)
	if err != nil {
		return v, err
	}
	nodes, err := wire.DecodeZLibCompressed(d, decodeNodesBulk)
	if err != nil {
		return v, err
	}
	metadata, err := wire.DecodeZLibCompressed(d, DecodeNodeMetadataList)
	if err != nil {
		return v, err
	}
	return blockFromParts(header, nodes, metadata), nil
}

func blockFromParts(header mapBlockHeader, nodes [NodeCount]MapNode, metadata NodeMetadataList) MapBlock {
	return MapBlock{
		IsUnderground:    header.IsUnderground,
		DayNightDiffers:  header.DayNightDiffers,
		Generated:        header.Generated,
		LightingComplete: header.LightingComplete,
		Nodes:            nodes,
		Metadata:         metadata,
	}
}
