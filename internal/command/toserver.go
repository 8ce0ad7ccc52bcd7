package command

import (
	"github.com/kawogi/luanti-go-proto/internal/mapdata"
	"github.com/kawogi/luanti-go-proto/internal/peer"
	"github.com/kawogi/luanti-go-proto/internal/types"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// ToServer command tags (original_source/luanti-protocol/src/commands/
// client_to_server.rs define_protocol! table). Only the subset spec.md
// §6.1 names as stable tags is wired; the registry mechanism itself
// supports adding any future tag as one more table row.
const (
	TagInit            ToServerTag = 0x02
	TagInit2           ToServerTag = 0x11
	TagPlayerpos       ToServerTag = 0x23
	TagGotblocks       ToServerTag = 0x24
	TagInventoryAction ToServerTag = 0x31
	TagTSChatMessage   ToServerTag = 0x32
	TagInteract        ToServerTag = 0x39
	TagClientReady     ToServerTag = 0x43
	TagSrpBytesA       ToServerTag = 0x51
	TagSrpBytesM       ToServerTag = 0x52
)

// InitPayload is ToServer::Init's handshake request (player's desired
// serialization/protocol bounds and name).
type InitPayload struct {
	SerializationVerMax uint8
	SupportedComprModes uint16
	MinNetProtoVersion  uint16
	MaxNetProtoVersion  uint16
	PlayerName          string
}

// Init2Payload is ToServer::Init2, sent once the handshake is accepted.
type Init2Payload struct {
	Lang *string
}

// PlayerposPayload wraps a PlayerPos snapshot sent unreliably every tick.
type PlayerposPayload struct {
	Pos types.PlayerPos
}

// GotblocksPayload acknowledges receipt of the listed map blocks.
type GotblocksPayload struct {
	Blocks []mapdata.MapBlockPos
}

// InventoryActionPayload wraps one inventory mutation request.
type InventoryActionPayload struct {
	Action types.InventoryAction
}

// TSChatMessagePayload is a chat line sent by the client.
type TSChatMessagePayload struct {
	Message string
}

// InteractPayload is a dig/place/use/activate request against whatever
// PointedThing the client's crosshair currently targets.
type InteractPayload struct {
	Action       types.InteractAction
	ItemIndex    uint16
	PointedThing types.PointedThing
	PlayerPos    types.PlayerPos
}

// ClientReadyPayload announces the client build version once loading finishes.
type ClientReadyPayload struct {
	MajorVer     uint8
	MinorVer     uint8
	PatchVer     uint8
	Reserved     uint8
	FullVer      string
	FormspecVer  *uint16
}

// SrpBytesAPayload is the client's SRP `A` value during login.
type SrpBytesAPayload struct {
	BytesA  []byte
	BasedOn uint8
}

// SrpBytesMPayload is the client's SRP `M` proof during login.
type SrpBytesMPayload struct {
	BytesM []byte
}

// ToServerCommand is the closed ToServer tagged union: Tag selects
// which of the following payload fields is valid.
type ToServerCommand struct {
	Tag             ToServerTag
	Init            InitPayload
	Init2           Init2Payload
	Playerpos       PlayerposPayload
	Gotblocks       GotblocksPayload
	InventoryAction InventoryActionPayload
	TSChatMessage   TSChatMessagePayload
	Interact        InteractPayload
	ClientReady     ClientReadyPayload
	SrpBytesA       SrpBytesAPayload
	SrpBytesM       SrpBytesMPayload
}

func encodeMapBlockPos(v mapdata.MapBlockPos, s *wire.Serializer) error {
	return types.EncodeV3S16(types.V3S16{X: v.X, Y: v.Y, Z: v.Z}, s)
}

func decodeMapBlockPos(d *wire.Deserializer) (mapdata.MapBlockPos, error) {
	v, err := types.DecodeV3S16(d)
	return mapdata.MapBlockPos{X: v.X, Y: v.Y, Z: v.Z}, err
}

func init() {
	registerToServer(TagInit, peer.ChannelInit, false,
		func(c ToServerCommand, s *wire.Serializer) error {
			p := c.Init
			s.WriteU8(p.SerializationVerMax)
			s.WriteU16(p.SupportedComprModes)
			s.WriteU16(p.MinNetProtoVersion)
			s.WriteU16(p.MaxNetProtoVersion)
			return wire.EncodeString(p.PlayerName, s)
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			var p InitPayload
			var err error
			if p.SerializationVerMax, err = d.ReadU8(); err != nil {
				return ToServerCommand{}, err
			}
			if p.SupportedComprModes, err = d.ReadU16(); err != nil {
				return ToServerCommand{}, err
			}
			if p.MinNetProtoVersion, err = d.ReadU16(); err != nil {
				return ToServerCommand{}, err
			}
			if p.MaxNetProtoVersion, err = d.ReadU16(); err != nil {
				return ToServerCommand{}, err
			}
			if p.PlayerName, err = wire.DecodeString(d); err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagInit, Init: p}, nil
		})

	registerToServer(TagInit2, peer.ChannelInit, true,
		func(c ToServerCommand, s *wire.Serializer) error {
			return wire.EncodeOption(c.Init2.Lang, wire.EncodeString, s)
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			lang, err := wire.DecodeOption(d, wire.DecodeString)
			if err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagInit2, Init2: Init2Payload{Lang: lang}}, nil
		})

	registerToServer(TagPlayerpos, peer.ChannelDefault, false,
		func(c ToServerCommand, s *wire.Serializer) error {
			return types.EncodePlayerPos(c.Playerpos.Pos, s)
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			pos, err := types.DecodePlayerPos(d)
			if err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagPlayerpos, Playerpos: PlayerposPayload{Pos: pos}}, nil
		})

	registerToServer(TagGotblocks, peer.ChannelResponse, true,
		func(c ToServerCommand, s *wire.Serializer) error {
			return wire.EncodeArray8(c.Gotblocks.Blocks, encodeMapBlockPos, s)
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			blocks, err := wire.DecodeArray8(d, decodeMapBlockPos)
			if err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagGotblocks, Gotblocks: GotblocksPayload{Blocks: blocks}}, nil
		})

	registerToServer(TagInventoryAction, peer.ChannelDefault, true,
		func(c ToServerCommand, s *wire.Serializer) error {
			return types.EncodeInventoryAction(c.InventoryAction.Action, s)
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			action, err := types.DecodeInventoryAction(d)
			if err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagInventoryAction, InventoryAction: InventoryActionPayload{Action: action}}, nil
		})

	registerToServer(TagTSChatMessage, peer.ChannelDefault, true,
		func(c ToServerCommand, s *wire.Serializer) error {
			return wire.EncodeWString(c.TSChatMessage.Message, s)
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			msg, err := wire.DecodeWString(d)
			if err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagTSChatMessage, TSChatMessage: TSChatMessagePayload{Message: msg}}, nil
		})

	registerToServer(TagInteract, peer.ChannelDefault, true,
		func(c ToServerCommand, s *wire.Serializer) error {
			p := c.Interact
			if err := types.EncodeInteractAction(p.Action, s); err != nil {
				return err
			}
			s.WriteU16(p.ItemIndex)
			if err := wire.EncodeWrapped32(p.PointedThing, types.EncodePointedThing, s); err != nil {
				return err
			}
			return types.EncodePlayerPos(p.PlayerPos, s)
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			var p InteractPayload
			var err error
			if p.Action, err = types.DecodeInteractAction(d); err != nil {
				return ToServerCommand{}, err
			}
			if p.ItemIndex, err = d.ReadU16(); err != nil {
				return ToServerCommand{}, err
			}
			if p.PointedThing, err = wire.DecodeWrapped32(d, types.DecodePointedThing); err != nil {
				return ToServerCommand{}, err
			}
			if p.PlayerPos, err = types.DecodePlayerPos(d); err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagInteract, Interact: p}, nil
		})

	registerToServer(TagClientReady, peer.ChannelInit, true,
		func(c ToServerCommand, s *wire.Serializer) error {
			p := c.ClientReady
			s.WriteU8(p.MajorVer)
			s.WriteU8(p.MinorVer)
			s.WriteU8(p.PatchVer)
			s.WriteU8(p.Reserved)
			if err := wire.EncodeString(p.FullVer, s); err != nil {
				return err
			}
			return wire.EncodeOption(p.FormspecVer, func(v uint16, s *wire.Serializer) error {
				s.WriteU16(v)
				return nil
			}, s)
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			var p ClientReadyPayload
			var err error
			if p.MajorVer, err = d.ReadU8(); err != nil {
				return ToServerCommand{}, err
			}
			if p.MinorVer, err = d.ReadU8(); err != nil {
				return ToServerCommand{}, err
			}
			if p.PatchVer, err = d.ReadU8(); err != nil {
				return ToServerCommand{}, err
			}
			if p.Reserved, err = d.ReadU8(); err != nil {
				return ToServerCommand{}, err
			}
			if p.FullVer, err = wire.DecodeString(d); err != nil {
				return ToServerCommand{}, err
			}
			if p.FormspecVer, err = wire.DecodeOption(d, (*wire.Deserializer).ReadU16); err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagClientReady, ClientReady: p}, nil
		})

	registerToServer(TagSrpBytesA, peer.ChannelInit, true,
		func(c ToServerCommand, s *wire.Serializer) error {
			p := c.SrpBytesA
			if err := wire.EncodeBinaryData16(p.BytesA, s); err != nil {
				return err
			}
			s.WriteU8(p.BasedOn)
			return nil
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			var p SrpBytesAPayload
			var err error
			if p.BytesA, err = wire.DecodeBinaryData16(d); err != nil {
				return ToServerCommand{}, err
			}
			if p.BasedOn, err = d.ReadU8(); err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagSrpBytesA, SrpBytesA: p}, nil
		})

	registerToServer(TagSrpBytesM, peer.ChannelInit, true,
		func(c ToServerCommand, s *wire.Serializer) error {
			return wire.EncodeBinaryData16(c.SrpBytesM.BytesM, s)
		},
		func(d *wire.Deserializer) (ToServerCommand, error) {
			bytesM, err := wire.DecodeBinaryData16(d)
			if err != nil {
				return ToServerCommand{}, err
			}
			return ToServerCommand{Tag: TagSrpBytesM, SrpBytesM: SrpBytesMPayload{BytesM: bytesM}}, nil
		})
}
