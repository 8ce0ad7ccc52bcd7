package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

func invTestCtx() wire.ProtocolContext { return wire.ProtocolContext{SerFmt: 29} }

func roundTripInventoryLocation(t *testing.T, v InventoryLocation) InventoryLocation {
	s := wire.NewSerializer(invTestCtx())
	require.NoError(t, EncodeInventoryLocation(v, s))
	got, err := DecodeInventoryLocation(wire.NewDeserializer(invTestCtx(), s.Bytes()))
	require.NoError(t, err)
	return got
}

func TestInventoryLocationRoundTrip(t *testing.T) {
	require.Equal(t, InventoryLocation{Kind: InventoryLocationUndefined}, roundTripInventoryLocation(t, InventoryLocation{Kind: InventoryLocationUndefined}))
	require.Equal(t, InventoryLocation{Kind: InventoryLocationCurrentPlayer}, roundTripInventoryLocation(t, InventoryLocation{Kind: InventoryLocationCurrentPlayer}))

	player := InventoryLocation{Kind: InventoryLocationPlayer, Name: "singleplayer"}
	require.Equal(t, player, roundTripInventoryLocation(t, player))

	nodemeta := InventoryLocation{Kind: InventoryLocationNodeMeta, Pos: MapNodePos{X: -1, Y: 2, Z: 300}}
	require.Equal(t, nodemeta, roundTripInventoryLocation(t, nodemeta))

	detached := InventoryLocation{Kind: InventoryLocationDetached, Name: "creative"}
	require.Equal(t, detached, roundTripInventoryLocation(t, detached))
}

func roundTripInventoryAction(t *testing.T, v InventoryAction) InventoryAction {
	s := wire.NewSerializer(invTestCtx())
	require.NoError(t, EncodeInventoryAction(v, s))
	got, err := DecodeInventoryAction(wire.NewDeserializer(invTestCtx(), s.Bytes()))
	require.NoError(t, err)
	return got
}

// TestInventoryActionMoveWithToI covers the "Move" variant, where ToI is present.
func TestInventoryActionMoveWithToI(t *testing.T) {
	toI := int16(3)
	v := InventoryAction{
		Kind:     InventoryActionMove,
		Count:    5,
		FromInv:  InventoryLocation{Kind: InventoryLocationCurrentPlayer},
		FromList: "main",
		FromI:    0,
		ToInv:    InventoryLocation{Kind: InventoryLocationCurrentPlayer},
		ToList:   "craft",
		ToI:      &toI,
	}
	got := roundTripInventoryAction(t, v)
	require.Equal(t, v.Kind, got.Kind)
	require.Equal(t, v.Count, got.Count)
	require.Equal(t, v.FromList, got.FromList)
	require.Equal(t, v.FromI, got.FromI)
	require.Equal(t, v.ToList, got.ToList)
	require.NotNil(t, got.ToI)
	require.Equal(t, *v.ToI, *got.ToI)
}

// TestInventoryActionMoveSomewhereWithoutToI covers the "MoveSomewhere"
// variant, which must decode back with a nil ToI.
func TestInventoryActionMoveSomewhereWithoutToI(t *testing.T) {
	v := InventoryAction{
		Kind:     InventoryActionMove,
		Count:    1,
		FromInv:  InventoryLocation{Kind: InventoryLocationCurrentPlayer},
		FromList: "main",
		FromI:    2,
		ToInv:    InventoryLocation{Kind: InventoryLocationCurrentPlayer},
		ToList:   "main",
		ToI:      nil,
	}
	got := roundTripInventoryAction(t, v)
	require.Equal(t, v.Kind, got.Kind)
	require.Nil(t, got.ToI)
}

func TestInventoryActionDropRoundTrip(t *testing.T) {
	v := InventoryAction{
		Kind:     InventoryActionDrop,
		Count:    10,
		FromInv:  InventoryLocation{Kind: InventoryLocationCurrentPlayer},
		FromList: "main",
		FromI:    4,
	}
	got := roundTripInventoryAction(t, v)
	require.Equal(t, v, got)
}

func TestInventoryActionCraftRoundTrip(t *testing.T) {
	v := InventoryAction{
		Kind:     InventoryActionCraft,
		Count:    1,
		CraftInv: InventoryLocation{Kind: InventoryLocationCurrentPlayer},
	}
	got := roundTripInventoryAction(t, v)
	require.Equal(t, v.Kind, got.Kind)
	require.Equal(t, v.Count, got.Count)
	require.Equal(t, v.CraftInv, got.CraftInv)
}
