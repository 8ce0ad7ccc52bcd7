package mapdata

import "github.com/kawogi/luanti-go-proto/internal/wire"

// MapNode is a single voxel's material and its two auxiliary params
// (original_source/luanti-core/src/map_node.rs). The default
// (non-bulk) wire form uses the u16 content id as param0.
type MapNode struct {
	ContentId ContentId
	Param1    uint8
	Param2    uint8
}

func EncodeMapNode(v MapNode, s *wire.Serializer) error {
	if err := EncodeContentId(v.ContentId, s); err != nil {
		return err
	}
	s.WriteU8(v.Param1)
	s.WriteU8(v.Param2)
	return nil
}

func DecodeMapNode(d *wire.Deserializer) (MapNode, error) {
	var v MapNode
	var err error
	if v.ContentId, err = DecodeContentId(d); err != nil {
		return v, err
	}
	if v.Param1, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.Param2, err = d.ReadU8(); err != nil {
		return v, err
	}
	return v, nil
}
