package mapdata

import (
	"github.com/kawogi/luanti-go-proto/internal/types"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// BlockPos addresses a single node within a block's metadata list as
// raw = (16*z + y)*16 + x, distinct from MapNodeIndex only in that it
// is validated strictly (raw < 4096) rather than wrapped.
type BlockPos struct{ Raw uint16 }

// NewBlockPos packs 0..15 coordinates into a BlockPos.
func NewBlockPos(x, y, z uint8) BlockPos {
	return BlockPos{Raw: (uint16(BlockSize)*uint16(z)+uint16(y))*uint16(BlockSize) + uint16(x)}
}

func EncodeBlockPos(v BlockPos, s *wire.Serializer) error {
	s.WriteU16(v.Raw)
	return nil
}

func DecodeBlockPos(d *wire.Deserializer) (BlockPos, error) {
	raw, err := d.ReadU16()
	if err != nil {
		return BlockPos{}, err
	}
	if raw >= NodeCount {
		return BlockPos{}, wire.Errorf(wire.KindCodec, "block_pos", "raw index %d out of range", raw)
	}
	return BlockPos{Raw: raw}, nil
}

// StringVar is one name/value entry attached to a node's metadata.
type StringVar struct {
	Name      string
	Value     []byte
	IsPrivate bool
}

func EncodeStringVar(v StringVar, s *wire.Serializer) error {
	if err := wire.EncodeString(v.Name, s); err != nil {
		return err
	}
	if err := wire.EncodeBinaryData32(v.Value, s); err != nil {
		return err
	}
	s.WriteBool(v.IsPrivate)
	return nil
}

func DecodeStringVar(d *wire.Deserializer) (StringVar, error) {
	var v StringVar
	var err error
	if v.Name, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.Value, err = wire.DecodeBinaryData32(d); err != nil {
		return v, err
	}
	if v.IsPrivate, err = d.ReadBool(); err != nil {
		return v, err
	}
	return v, nil
}

// NodeMetadata is the per-node string-var bag plus an optional
// attached inventory (e.g. a chest's contents).
type NodeMetadata struct {
	StringVars []StringVar
	Inventory  types.Inventory
}

func EncodeNodeMetadata(v NodeMetadata, s *wire.Serializer) error {
	if err := wire.EncodeArray32(v.StringVars, EncodeStringVar, s); err != nil {
		return err
	}
	return types.EncodeInventory(v.Inventory, s)
}

func DecodeNodeMetadata(d *wire.Deserializer) (NodeMetadata, error) {
	var v NodeMetadata
	var err error
	if v.StringVars, err = wire.DecodeArray32(d, DecodeStringVar); err != nil {
		return v, err
	}
	if v.Inventory, err = types.DecodeInventory(d); err != nil {
		return v, err
	}
	return v, nil
}

func encodeMetadataEntry(e NodeMetadataEntry, s *wire.Serializer) error {
	return wire.EncodePair(e.Pos, e.Metadata, EncodeBlockPos, EncodeNodeMetadata, s)
}

func decodeMetadataEntry(d *wire.Deserializer) (NodeMetadataEntry, error) {
	pos, meta, err := wire.DecodePair(d, DecodeBlockPos, DecodeNodeMetadata)
	return NodeMetadataEntry{Pos: pos, Metadata: meta}, err
}

// NodeMetadataEntry pairs a node's in-block position with its metadata.
type NodeMetadataEntry struct {
	Pos      BlockPos
	Metadata NodeMetadata
}

// NodeMetadataList is a MapBlock's full set of node metadata. Version 0
// means the list is empty and has no body at all; version 2 is
// followed by an Array16<Pair<BlockPos, NodeMetadata>>.
type NodeMetadataList struct {
	Entries []NodeMetadataEntry
}

func EncodeNodeMetadataList(v NodeMetadataList, s *wire.Serializer) error {
	if len(v.Entries) == 0 {
		s.WriteU8(0)
		return nil
	}
	s.WriteU8(2)
	return wire.EncodeArray16(v.Entries, encodeMetadataEntry, s)
}

func DecodeNodeMetadataList(d *wire.Deserializer) (NodeMetadataList, error) {
	var v NodeMetadataList
	ver, err := d.ReadU8()
	if err != nil {
		return v, err
	}
	switch ver {
	case 0:
		return v, nil
	case 2:
		if v.Entries, err = wire.DecodeArray16(d, decodeMetadataEntry); err != nil {
			return v, err
		}
		return v, nil
	default:
		return v, wire.Errorf(wire.KindCodec, "node_metadata_list", "invalid version %d", ver)
	}
}
