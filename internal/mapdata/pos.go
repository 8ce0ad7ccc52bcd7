package mapdata

// BlockSizeBits is the number of low bits of a node coordinate that
// address its position within its containing block.
const BlockSizeBits = 4

// BlockSize is the number of nodes per block edge.
const BlockSize = 1 << BlockSizeBits

// BlockSizeMask isolates a coordinate's in-block bits.
const BlockSizeMask = BlockSize - 1

// NodeCount is the number of nodes in a single block.
const NodeCount = BlockSize * BlockSize * BlockSize

// MapNodePos is a node's absolute position in world coordinates
// (original_source/luanti-core/src/map_node.rs).
type MapNodePos struct{ X, Y, Z int16 }

// MapBlockPos is the position of the block containing a node, i.e. the
// node position with its low BlockSizeBits bits shifted out.
type MapBlockPos struct{ X, Y, Z int16 }

// BlockPos converts a node position into the position of its block.
func (p MapNodePos) BlockPos() MapBlockPos {
	return MapBlockPos{X: p.X >> BlockSizeBits, Y: p.Y >> BlockSizeBits, Z: p.Z >> BlockSizeBits}
}

// Index returns the node's packed position within its block.
func (p MapNodePos) Index() MapNodeIndex {
	return MapNodeIndex(uint16(p.X&BlockSizeMask) | uint16(p.Y&BlockSizeMask)<<4 | uint16(p.Z&BlockSizeMask)<<8)
}

// SplitIndex is the combined (BlockPos, Index) decomposition of a node position.
func (p MapNodePos) SplitIndex() (MapBlockPos, MapNodeIndex) {
	return p.BlockPos(), p.Index()
}

// Contains reports whether node is located within block b.
func (b MapBlockPos) Contains(node MapNodePos) bool {
	return node.BlockPos() == b
}

// Origin returns the node position of this block's (0,0,0) corner.
func (b MapBlockPos) Origin() MapNodePos {
	return MapNodePos{X: b.X << BlockSizeBits, Y: b.Y << BlockSizeBits, Z: b.Z << BlockSizeBits}
}

// NodePos returns the absolute position of the node at index within block b.
func (b MapBlockPos) NodePos(index MapNodeIndex) MapNodePos {
	origin := b.Origin()
	x, y, z := index.XYZ()
	return MapNodePos{X: origin.X + int16(x), Y: origin.Y + int16(y), Z: origin.Z + int16(z)}
}

// MapNodeIndex is a node's packed position within its block:
// (z<<8)|(y<<4)|x, each coordinate 4 bits wide (0..15).
type MapNodeIndex uint16

// MaxMapNodeIndex is the largest valid index (15, 15, 15).
const MaxMapNodeIndex MapNodeIndex = NodeCount - 1

// XYZ unpacks the index back into its three 4-bit coordinates.
func (i MapNodeIndex) XYZ() (x, y, z uint8) {
	return uint8(i & 0xF), uint8((i >> 4) & 0xF), uint8((i >> 8) & 0xF)
}
