// Package mapdata implements the voxel map layer: content ids, node
// positions, block positions, single nodes, and the bulk block codec
// (original_source/luanti-core/src/{content_id,map_node,map_block}.rs).
package mapdata

import "github.com/kawogi/luanti-go-proto/internal/wire"

// ContentId names the material a MapNode is made of.
type ContentId uint16

const (
	// ContentUnknown displays as unknown_node.png; used for ids the
	// client hasn't received a definition for yet.
	ContentUnknown ContentId = 125
	// ContentAir is the default walkable-through, light-transparent material.
	ContentAir ContentId = 126
	// ContentIgnore marks unloaded/not-yet-generated nodes.
	ContentIgnore ContentId = 127
)

func EncodeContentId(v ContentId, s *wire.Serializer) error {
	s.WriteU16(uint16(v))
	return nil
}

func DecodeContentId(d *wire.Deserializer) (ContentId, error) {
	v, err := d.ReadU16()
	return ContentId(v), err
}
