package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawogi/luanti-go-proto/internal/mapdata"
	"github.com/kawogi/luanti-go-proto/internal/types"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

func toServerTestCtx() wire.ProtocolContext {
	return wire.ProtocolContext{Direction: wire.ToServer, ProtocolVersion: wire.LatestProtocolVersion, SerFmt: wire.SerFmtHighestWrite}
}

// roundTripToServer exercises the registry's generic dispatch, matching
// how a real peer would encode a command and later decode it back.
func roundTripToServer(t *testing.T, cmd ToServerCommand) ToServerCommand {
	s := wire.NewSerializer(toServerTestCtx())
	require.NoError(t, EncodeToServerCommand(cmd, s))

	d := wire.NewDeserializer(toServerTestCtx(), s.Bytes())
	got, err := DecodeToServerCommand(d)
	require.NoError(t, err)
	require.Equal(t, cmd.Tag, got.Tag)
	return got
}

func TestToServerInitRoundTrip(t *testing.T) {
	cmd := ToServerCommand{
		Tag: TagInit,
		Init: InitPayload{
			SerializationVerMax: wire.SerFmtHighestWrite,
			SupportedComprModes: 0,
			MinNetProtoVersion:  37,
			MaxNetProtoVersion:  wire.LatestProtocolVersion,
			PlayerName:          "singleplayer",
		},
	}
	got := roundTripToServer(t, cmd)
	require.Equal(t, cmd.Init, got.Init)
}

func TestToServerInit2RoundTrip(t *testing.T) {
	lang := "en"
	cmd := ToServerCommand{Tag: TagInit2, Init2: Init2Payload{Lang: &lang}}
	got := roundTripToServer(t, cmd)
	require.NotNil(t, got.Init2.Lang)
	require.Equal(t, lang, *got.Init2.Lang)
}

func TestToServerInit2NilLangRoundTrip(t *testing.T) {
	cmd := ToServerCommand{Tag: TagInit2, Init2: Init2Payload{Lang: nil}}
	got := roundTripToServer(t, cmd)
	require.Nil(t, got.Init2.Lang)
}

func TestToServerPlayerposRoundTrip(t *testing.T) {
	cmd := ToServerCommand{
		Tag: TagPlayerpos,
		Playerpos: PlayerposPayload{Pos: types.PlayerPos{
			Position:    types.V3F{X: 1, Y: 2, Z: 3},
			Speed:       types.V3F{X: 0, Y: 0, Z: 0},
			Pitch:       10,
			Yaw:         20,
			KeysPressed: 5,
			Fov:         1.25,
			WantedRange: 10,
		}},
	}
	got := roundTripToServer(t, cmd)
	require.InDelta(t, cmd.Playerpos.Pos.Position.X, got.Playerpos.Pos.Position.X, 1e-4)
	require.Equal(t, cmd.Playerpos.Pos.KeysPressed, got.Playerpos.Pos.KeysPressed)
}

func TestToServerGotblocksRoundTrip(t *testing.T) {
	cmd := ToServerCommand{
		Tag: TagGotblocks,
		Gotblocks: GotblocksPayload{Blocks: []mapdata.MapBlockPos{
			{X: 0, Y: 0, Z: 0},
			{X: -1, Y: 2, Z: 3},
		}},
	}
	got := roundTripToServer(t, cmd)
	require.Equal(t, cmd.Gotblocks.Blocks, got.Gotblocks.Blocks)
}

func TestToServerInventoryActionRoundTrip(t *testing.T) {
	cmd := ToServerCommand{
		Tag: TagInventoryAction,
		InventoryAction: InventoryActionPayload{Action: types.InventoryAction{
			Kind:     types.InventoryActionDrop,
			Count:    3,
			FromInv:  types.InventoryLocation{Kind: types.InventoryLocationCurrentPlayer},
			FromList: "main",
			FromI:    1,
		}},
	}
	got := roundTripToServer(t, cmd)
	require.Equal(t, cmd.InventoryAction.Action, got.InventoryAction.Action)
}

func TestToServerChatMessageRoundTrip(t *testing.T) {
	cmd := ToServerCommand{Tag: TagTSChatMessage, TSChatMessage: TSChatMessagePayload{Message: "hello world"}}
	got := roundTripToServer(t, cmd)
	require.Equal(t, cmd.TSChatMessage.Message, got.TSChatMessage.Message)
}

func TestToServerInteractRoundTrip(t *testing.T) {
	cmd := ToServerCommand{
		Tag: TagInteract,
		Interact: InteractPayload{
			Action:       types.InteractStartDigging,
			ItemIndex:    2,
			PointedThing: types.PointedThing{Kind: types.PointedThingNothing},
			PlayerPos:    types.PlayerPos{Position: types.V3F{X: 1, Y: 2, Z: 3}, Fov: 1.25},
		},
	}
	got := roundTripToServer(t, cmd)
	require.Equal(t, cmd.Interact.Action, got.Interact.Action)
	require.Equal(t, cmd.Interact.ItemIndex, got.Interact.ItemIndex)
	require.Equal(t, cmd.Interact.PointedThing, got.Interact.PointedThing)
}

func TestToServerClientReadyRoundTrip(t *testing.T) {
	formspecVer := uint16(4)
	cmd := ToServerCommand{
		Tag: TagClientReady,
		ClientReady: ClientReadyPayload{
			MajorVer:    5,
			MinorVer:    9,
			PatchVer:    0,
			Reserved:    0,
			FullVer:     "5.9.0",
			FormspecVer: &formspecVer,
		},
	}
	got := roundTripToServer(t, cmd)
	require.Equal(t, cmd.ClientReady.FullVer, got.ClientReady.FullVer)
	require.NotNil(t, got.ClientReady.FormspecVer)
	require.Equal(t, formspecVer, *got.ClientReady.FormspecVer)
}

func TestToServerSrpBytesARoundTrip(t *testing.T) {
	cmd := ToServerCommand{
		Tag:       TagSrpBytesA,
		SrpBytesA: SrpBytesAPayload{BytesA: []byte{1, 2, 3, 4}, BasedOn: 1},
	}
	got := roundTripToServer(t, cmd)
	require.Equal(t, cmd.SrpBytesA, got.SrpBytesA)
}

func TestToServerSrpBytesMRoundTrip(t *testing.T) {
	cmd := ToServerCommand{
		Tag:       TagSrpBytesM,
		SrpBytesM: SrpBytesMPayload{BytesM: []byte{9, 8, 7}},
	}
	got := roundTripToServer(t, cmd)
	require.Equal(t, cmd.SrpBytesM, got.SrpBytesM)
}

func TestDecodeToServerCommandUnknownTagIsFatal(t *testing.T) {
	s := wire.NewSerializer(toServerTestCtx())
	s.WriteU16(0xBEEF)
	d := wire.NewDeserializer(toServerTestCtx(), s.Bytes())
	_, err := DecodeToServerCommand(d)
	require.Error(t, err)
}
