package mapdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapNodePosBlockBijection(t *testing.T) {
	for x := int16(-40); x <= 40; x++ {
		for y := int16(-2); y <= 2; y++ {
			for z := int16(-17); z <= 17; z++ {
				p := MapNodePos{X: x, Y: y, Z: z}
				block, index := p.SplitIndex()
				require.True(t, block.Contains(p), "block %+v must contain %+v", block, p)
				require.Equal(t, p, block.NodePos(index), "round trip via block+index must recover the original position")
			}
		}
	}
}

func TestCoordinateSplitScenario(t *testing.T) {
	// spec.md §8 scenario 6.
	p := MapNodePos{X: -1, Y: 0, Z: 31}
	block := p.BlockPos()
	require.Equal(t, MapBlockPos{X: -1, Y: 0, Z: 1}, block)

	x, y, z := p.Index().XYZ()
	require.Equal(t, uint8(15), x)
	require.Equal(t, uint8(0), y)
	require.Equal(t, uint8(15), z)
}

func TestMaxMapNodeIndex(t *testing.T) {
	x, y, z := MaxMapNodeIndex.XYZ()
	require.Equal(t, uint8(15), x)
	require.Equal(t, uint8(15), y)
	require.Equal(t, uint8(15), z)
}
