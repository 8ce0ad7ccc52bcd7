package command

import (
	"github.com/kawogi/luanti-go-proto/internal/mapdata"
	"github.com/kawogi/luanti-go-proto/internal/peer"
	"github.com/kawogi/luanti-go-proto/internal/types"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// ToClient command tags (original_source/luanti-protocol/src/commands/
// server_to_client.rs define_protocol! table). Only the subset
// spec.md §6.1 names as stable tags is wired, plus the two empty
// AcceptSudoMode/DenySudoMode commands.
const (
	TagHello                  ToClientTag = 0x02
	TagAuthAccept             ToClientTag = 0x03
	TagAcceptSudoMode         ToClientTag = 0x04
	TagDenySudoMode           ToClientTag = 0x05
	TagAccessDenied           ToClientTag = 0x0A
	TagBlockdata              ToClientTag = 0x20
	TagAddnode                ToClientTag = 0x21
	TagRemovenode             ToClientTag = 0x22
	TagInventory              ToClientTag = 0x27
	TagTimeOfDay              ToClientTag = 0x29
	TagMediaPush              ToClientTag = 0x2C
	TagTCChatMessage          ToClientTag = 0x2F
	TagActiveObjectRemoveAdd  ToClientTag = 0x31
	TagActiveObjectMessages   ToClientTag = 0x32
	TagHp                     ToClientTag = 0x33
	TagMovePlayer             ToClientTag = 0x34
	TagMedia                  ToClientTag = 0x38
	TagNodedef                ToClientTag = 0x3a
	TagItemdef                ToClientTag = 0x3d
	TagPlaySound              ToClientTag = 0x3f
	TagPrivileges             ToClientTag = 0x41
	TagInventoryFormspec      ToClientTag = 0x42
	TagMovement               ToClientTag = 0x45
	TagHudadd                 ToClientTag = 0x49
	TagSetLighting            ToClientTag = 0x63
)

type HelloPayload struct {
	SerializationVer uint8
	CompressionMode  uint16
	ProtoVer         uint16
	AuthMechs        types.AuthMechsBitset
	UsernameLegacy   string
}

type AuthAcceptPayload struct {
	PlayerPos               types.V3F
	MapSeed                 uint64
	RecommendedSendInterval float32
	SudoAuthMethods         uint32
}

type AccessDeniedPayload struct {
	Code      types.AccessDeniedCode
	Reason    string
	Reconnect bool
}

type BlockdataPayload struct {
	Pos                    mapdata.MapBlockPos
	Block                  mapdata.MapBlock
	NetworkSpecificVersion uint8
}

type AddnodePayload struct {
	Pos          mapdata.MapNodePos
	Node         mapdata.MapNode
	KeepMetadata bool
}

type RemovenodePayload struct {
	Pos mapdata.MapNodePos
}

type InventoryPayload struct {
	Inventory types.Inventory
}

type TimeOfDayPayload struct {
	TimeOfDay  uint16
	TimeSpeed  *float32
}

type MediaPushPayload struct {
	RawHash  string
	Filename string
	Cached   bool
	Token    uint32
}

type TCChatMessagePayload struct {
	Version     uint8
	MessageType uint8
	Sender      string
	Message     string
	Timestamp   uint64
}

type ActiveObjectRemoveAddPayload struct {
	RemovedObjectIDs []uint16
	AddedObjects     []types.AddedObject
}

type ActiveObjectMessagesPayload struct {
	Objects []types.ActiveObjectMessage
}

type HpPayload struct {
	Hp            uint16
	DamageEffect  *bool
}

type MovePlayerPayload struct {
	Pos   types.V3F
	Pitch float32
	Yaw   float32
}

type MediaPayload struct {
	NumBunches uint16
	BunchIndex uint16
	Files      []MediaFileData
}

// MediaFileData is one streamed media asset (original_source/
// luanti-protocol/src/types.rs MediaFileData).
type MediaFileData struct {
	Name string
	Data []byte
}

func encodeMediaFileData(v MediaFileData, s *wire.Serializer) error {
	if err := wire.EncodeString(v.Name, s); err != nil {
		return err
	}
	return wire.EncodeBinaryData32(v.Data, s)
}

func decodeMediaFileData(d *wire.Deserializer) (MediaFileData, error) {
	var v MediaFileData
	var err error
	if v.Name, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.Data, err = wire.DecodeBinaryData32(d); err != nil {
		return v, err
	}
	return v, nil
}

type NodedefPayload struct {
	NodeDef types.NodeDefManager
}

type ItemdefPayload struct {
	ItemDef types.ItemdefList
}

type PlaySoundPayload struct {
	ServerID   int32
	Name       string
	Gain       float32
	Typ        uint8
	Pos        types.V3F
	ObjectID   uint16
	Loop       bool
	Fade       *float32
	Pitch      *float32
	Ephemeral  *bool
}

type PrivilegesPayload struct {
	Privileges []string
}

type InventoryFormspecPayload struct {
	Formspec string
}

// MovementPayload carries the server's tuned movement-physics
// constants (original_source/luanti-protocol/src/commands/
// server_to_client.rs MovementSpec); wired as a flat float32 struct
// since none of its fields are tagged unions or variable-width.
type MovementPayload struct {
	AccelerationDefault  float32
	AccelerationAir      float32
	AccelerationFast     float32
	SpeedWalk            float32
	SpeedCrouch          float32
	SpeedFast            float32
	SpeedClimb           float32
	SpeedJump            float32
	LiquidFluidity       float32
	LiquidFluiditySmooth float32
	LiquidSink           float32
	Gravity              float32
}

func encodeMovementPayload(p MovementPayload, s *wire.Serializer) error {
	for _, f := range []float32{
		p.AccelerationDefault, p.AccelerationAir, p.AccelerationFast,
		p.SpeedWalk, p.SpeedCrouch, p.SpeedFast, p.SpeedClimb, p.SpeedJump,
		p.LiquidFluidity, p.LiquidFluiditySmooth, p.LiquidSink, p.Gravity,
	} {
		s.WriteF32(f)
	}
	return nil
}

func decodeMovementPayload(d *wire.Deserializer) (MovementPayload, error) {
	var p MovementPayload
	fields := []*float32{
		&p.AccelerationDefault, &p.AccelerationAir, &p.AccelerationFast,
		&p.SpeedWalk, &p.SpeedCrouch, &p.SpeedFast, &p.SpeedClimb, &p.SpeedJump,
		&p.LiquidFluidity, &p.LiquidFluiditySmooth, &p.LiquidSink, &p.Gravity,
	}
	for _, f := range fields {
		v, err := d.ReadF32()
		if err != nil {
			return p, err
		}
		*f = v
	}
	return p, nil
}

// HudaddPayload creates one HUD element (original_source/
// luanti-protocol/src/commands/server_to_client.rs HudaddSpec). The
// world_pos/size/z_index/text2/style tail fields are tail-optional.
type HudaddPayload struct {
	ServerID uint32
	Typ      uint8
	Pos      types.V2F
	Name     string
	Scale    types.V2F
	Text     string
	Number   uint32
	Item     uint32
	Dir      uint32
	Align    types.V2F
	Offset   types.V2F
	WorldPos *types.V3F
	Size     *types.V2S32
	ZIndex   *int16
	Text2    *string
	Style    *uint32
}

// AutoExposure parameterizes SetLighting's auto-exposure curve
// (original_source/luanti-protocol/src/types.rs AutoExposure).
type AutoExposure struct {
	LuminanceMin         float32
	LuminanceMax         float32
	ExposureCorrection   float32
	SpeedDarkBright      float32
	SpeedBrightDark      float32
	CenterWeightPower    float32
}

func encodeAutoExposure(v AutoExposure, s *wire.Serializer) error {
	s.WriteF32(v.LuminanceMin)
	s.WriteF32(v.LuminanceMax)
	s.WriteF32(v.ExposureCorrection)
	s.WriteF32(v.SpeedDarkBright)
	s.WriteF32(v.SpeedBrightDark)
	s.WriteF32(v.CenterWeightPower)
	return nil
}

func decodeAutoExposure(d *wire.Deserializer) (AutoExposure, error) {
	var v AutoExposure
	var err error
	if v.LuminanceMin, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.LuminanceMax, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.ExposureCorrection, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.SpeedDarkBright, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.SpeedBrightDark, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.CenterWeightPower, err = d.ReadF32(); err != nil {
		return v, err
	}
	return v, nil
}

// Lighting is SetLighting's payload (original_source/luanti-protocol/
// src/types.rs Lighting).
type Lighting struct {
	ShadowIntensity float32
	Saturation      float32
	Exposure        AutoExposure
}

type SetLightingPayload struct {
	Lighting Lighting
}

// ToClientCommand is the closed ToClient tagged union: Tag selects
// which of the following payload fields is valid.
type ToClientCommand struct {
	Tag ToClientTag

	Hello                  HelloPayload
	AuthAccept             AuthAcceptPayload
	AccessDenied           AccessDeniedPayload
	Blockdata              BlockdataPayload
	Addnode                AddnodePayload
	Removenode             RemovenodePayload
	Inventory              InventoryPayload
	TimeOfDay              TimeOfDayPayload
	MediaPush              MediaPushPayload
	TCChatMessage          TCChatMessagePayload
	ActiveObjectRemoveAdd  ActiveObjectRemoveAddPayload
	ActiveObjectMessages   ActiveObjectMessagesPayload
	Hp                     HpPayload
	MovePlayer             MovePlayerPayload
	Media                  MediaPayload
	Nodedef                NodedefPayload
	Itemdef                ItemdefPayload
	PlaySound              PlaySoundPayload
	Privileges             PrivilegesPayload
	InventoryFormspec      InventoryFormspecPayload
	Movement               MovementPayload
	Hudadd                 HudaddPayload
	SetLighting            SetLightingPayload
}

func encodeMapNodePos(v mapdata.MapNodePos, s *wire.Serializer) error {
	return types.EncodeV3S16(types.V3S16{X: v.X, Y: v.Y, Z: v.Z}, s)
}

func decodeMapNodePos(d *wire.Deserializer) (mapdata.MapNodePos, error) {
	v, err := types.DecodeV3S16(d)
	return mapdata.MapNodePos{X: v.X, Y: v.Y, Z: v.Z}, err
}

func encodeU16(v uint16, s *wire.Serializer) error { s.WriteU16(v); return nil }
func decodeU16(d *wire.Deserializer) (uint16, error) { return d.ReadU16() }

func encodeF32(v float32, s *wire.Serializer) error { s.WriteF32(v); return nil }
func decodeF32(d *wire.Deserializer) (float32, error) { return d.ReadF32() }

func encodeBool(v bool, s *wire.Serializer) error { s.WriteBool(v); return nil }
func decodeBool(d *wire.Deserializer) (bool, error) { return d.ReadBool() }

func encodeS16(v int16, s *wire.Serializer) error { s.WriteI16(v); return nil }
func decodeS16(d *wire.Deserializer) (int16, error) { return d.ReadI16() }

func encodeU32(v uint32, s *wire.Serializer) error { s.WriteU32(v); return nil }
func decodeU32(d *wire.Deserializer) (uint32, error) { return d.ReadU32() }

func init() {
	registerToClient(TagHello, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.Hello
			s.WriteU8(p.SerializationVer)
			s.WriteU16(p.CompressionMode)
			s.WriteU16(p.ProtoVer)
			if err := types.EncodeAuthMechsBitset(p.AuthMechs, s); err != nil {
				return err
			}
			return wire.EncodeString(p.UsernameLegacy, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p HelloPayload
			var err error
			if p.SerializationVer, err = d.ReadU8(); err != nil {
				return ToClientCommand{}, err
			}
			if p.CompressionMode, err = d.ReadU16(); err != nil {
				return ToClientCommand{}, err
			}
			if p.ProtoVer, err = d.ReadU16(); err != nil {
				return ToClientCommand{}, err
			}
			if p.AuthMechs, err = types.DecodeAuthMechsBitset(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.UsernameLegacy, err = wire.DecodeString(d); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagHello, Hello: p}, nil
		})

	registerToClient(TagAuthAccept, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.AuthAccept
			if err := types.EncodeV3F(p.PlayerPos, s); err != nil {
				return err
			}
			s.WriteU64(p.MapSeed)
			s.WriteF32(p.RecommendedSendInterval)
			s.WriteU32(p.SudoAuthMethods)
			return nil
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p AuthAcceptPayload
			var err error
			if p.PlayerPos, err = types.DecodeV3F(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.MapSeed, err = d.ReadU64(); err != nil {
				return ToClientCommand{}, err
			}
			if p.RecommendedSendInterval, err = d.ReadF32(); err != nil {
				return ToClientCommand{}, err
			}
			if p.SudoAuthMethods, err = d.ReadU32(); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagAuthAccept, AuthAccept: p}, nil
		})

	registerToClient(TagAcceptSudoMode, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error { return nil },
		func(d *wire.Deserializer) (ToClientCommand, error) { return ToClientCommand{Tag: TagAcceptSudoMode}, nil })

	registerToClient(TagDenySudoMode, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error { return nil },
		func(d *wire.Deserializer) (ToClientCommand, error) { return ToClientCommand{Tag: TagDenySudoMode}, nil })

	registerToClient(TagAccessDenied, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.AccessDenied
			if err := types.EncodeAccessDeniedCode(p.Code, s); err != nil {
				return err
			}
			if err := wire.EncodeString(p.Reason, s); err != nil {
				return err
			}
			s.WriteBool(p.Reconnect)
			return nil
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p AccessDeniedPayload
			var err error
			if p.Code, err = types.DecodeAccessDeniedCode(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Reason, err = wire.DecodeString(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Reconnect, err = d.ReadBool(); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagAccessDenied, AccessDenied: p}, nil
		})

	registerToClient(TagBlockdata, peer.ChannelResponse, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.Blockdata
			if err := encodeMapBlockPos(p.Pos, s); err != nil {
				return err
			}
			if err := mapdata.EncodeMapBlock(p.Block, s); err != nil {
				return err
			}
			s.WriteU8(p.NetworkSpecificVersion)
			return nil
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p BlockdataPayload
			var err error
			if p.Pos, err = decodeMapBlockPos(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Block, err = mapdata.DecodeMapBlock(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.NetworkSpecificVersion, err = d.ReadU8(); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagBlockdata, Blockdata: p}, nil
		})

	registerToClient(TagAddnode, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.Addnode
			if err := encodeMapNodePos(p.Pos, s); err != nil {
				return err
			}
			if err := mapdata.EncodeMapNode(p.Node, s); err != nil {
				return err
			}
			s.WriteBool(p.KeepMetadata)
			return nil
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p AddnodePayload
			var err error
			if p.Pos, err = decodeMapNodePos(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Node, err = mapdata.DecodeMapNode(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.KeepMetadata, err = d.ReadBool(); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagAddnode, Addnode: p}, nil
		})

	registerToClient(TagRemovenode, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			return encodeMapNodePos(c.Removenode.Pos, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			pos, err := decodeMapNodePos(d)
			if err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagRemovenode, Removenode: RemovenodePayload{Pos: pos}}, nil
		})

	registerToClient(TagInventory, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			return types.EncodeInventory(c.Inventory.Inventory, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			inv, err := types.DecodeInventory(d)
			if err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagInventory, Inventory: InventoryPayload{Inventory: inv}}, nil
		})

	registerToClient(TagTimeOfDay, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.TimeOfDay
			s.WriteU16(p.TimeOfDay)
			return wire.EncodeOption(p.TimeSpeed, encodeF32, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p TimeOfDayPayload
			var err error
			if p.TimeOfDay, err = d.ReadU16(); err != nil {
				return ToClientCommand{}, err
			}
			if p.TimeSpeed, err = wire.DecodeOption(d, decodeF32); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagTimeOfDay, TimeOfDay: p}, nil
		})

	registerToClient(TagMediaPush, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.MediaPush
			if err := wire.EncodeString(p.RawHash, s); err != nil {
				return err
			}
			if err := wire.EncodeString(p.Filename, s); err != nil {
				return err
			}
			s.WriteBool(p.Cached)
			s.WriteU32(p.Token)
			return nil
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p MediaPushPayload
			var err error
			if p.RawHash, err = wire.DecodeString(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Filename, err = wire.DecodeString(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Cached, err = d.ReadBool(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Token, err = d.ReadU32(); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagMediaPush, MediaPush: p}, nil
		})

	registerToClient(TagTCChatMessage, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.TCChatMessage
			s.WriteU8(p.Version)
			s.WriteU8(p.MessageType)
			if err := wire.EncodeWString(p.Sender, s); err != nil {
				return err
			}
			if err := wire.EncodeWString(p.Message, s); err != nil {
				return err
			}
			s.WriteU64(p.Timestamp)
			return nil
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p TCChatMessagePayload
			var err error
			if p.Version, err = d.ReadU8(); err != nil {
				return ToClientCommand{}, err
			}
			if p.MessageType, err = d.ReadU8(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Sender, err = wire.DecodeWString(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Message, err = wire.DecodeWString(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Timestamp, err = d.ReadU64(); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagTCChatMessage, TCChatMessage: p}, nil
		})

	registerToClient(TagActiveObjectRemoveAdd, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.ActiveObjectRemoveAdd
			if err := wire.EncodeArray16(p.RemovedObjectIDs, encodeU16, s); err != nil {
				return err
			}
			return wire.EncodeArray16(p.AddedObjects, types.EncodeAddedObject, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p ActiveObjectRemoveAddPayload
			var err error
			if p.RemovedObjectIDs, err = wire.DecodeArray16(d, decodeU16); err != nil {
				return ToClientCommand{}, err
			}
			if p.AddedObjects, err = wire.DecodeArray16(d, types.DecodeAddedObject); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagActiveObjectRemoveAdd, ActiveObjectRemoveAdd: p}, nil
		})

	registerToClient(TagActiveObjectMessages, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			return wire.EncodeArray0(c.ActiveObjectMessages.Objects, types.EncodeActiveObjectMessage, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			objects, err := wire.DecodeArray0(d, types.DecodeActiveObjectMessage)
			if err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagActiveObjectMessages, ActiveObjectMessages: ActiveObjectMessagesPayload{Objects: objects}}, nil
		})

	registerToClient(TagHp, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.Hp
			s.WriteU16(p.Hp)
			return wire.EncodeOption(p.DamageEffect, encodeBool, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p HpPayload
			var err error
			if p.Hp, err = d.ReadU16(); err != nil {
				return ToClientCommand{}, err
			}
			if p.DamageEffect, err = wire.DecodeOption(d, decodeBool); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagHp, Hp: p}, nil
		})

	registerToClient(TagMovePlayer, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.MovePlayer
			if err := types.EncodeV3F(p.Pos, s); err != nil {
				return err
			}
			s.WriteF32(p.Pitch)
			s.WriteF32(p.Yaw)
			return nil
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p MovePlayerPayload
			var err error
			if p.Pos, err = types.DecodeV3F(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Pitch, err = d.ReadF32(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Yaw, err = d.ReadF32(); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagMovePlayer, MovePlayer: p}, nil
		})

	registerToClient(TagMedia, peer.ChannelResponse, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.Media
			s.WriteU16(p.NumBunches)
			s.WriteU16(p.BunchIndex)
			return wire.EncodeArray32(p.Files, encodeMediaFileData, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p MediaPayload
			var err error
			if p.NumBunches, err = d.ReadU16(); err != nil {
				return ToClientCommand{}, err
			}
			if p.BunchIndex, err = d.ReadU16(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Files, err = wire.DecodeArray32(d, decodeMediaFileData); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagMedia, Media: p}, nil
		})

	registerToClient(TagNodedef, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			return wire.EncodeZLibCompressed(c.Nodedef.NodeDef, types.EncodeNodeDefManager, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			nodeDef, err := wire.DecodeZLibCompressed(d, types.DecodeNodeDefManager)
			if err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagNodedef, Nodedef: NodedefPayload{NodeDef: nodeDef}}, nil
		})

	registerToClient(TagItemdef, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			return wire.EncodeZLibCompressed(c.Itemdef.ItemDef, types.EncodeItemdefList, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			itemDef, err := wire.DecodeZLibCompressed(d, types.DecodeItemdefList)
			if err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagItemdef, Itemdef: ItemdefPayload{ItemDef: itemDef}}, nil
		})

	registerToClient(TagPlaySound, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.PlaySound
			s.WriteI32(p.ServerID)
			if err := wire.EncodeString(p.Name, s); err != nil {
				return err
			}
			s.WriteF32(p.Gain)
			s.WriteU8(p.Typ)
			if err := types.EncodeV3F(p.Pos, s); err != nil {
				return err
			}
			s.WriteU16(p.ObjectID)
			s.WriteBool(p.Loop)
			if err := wire.EncodeOption(p.Fade, encodeF32, s); err != nil {
				return err
			}
			if err := wire.EncodeOption(p.Pitch, encodeF32, s); err != nil {
				return err
			}
			return wire.EncodeOption(p.Ephemeral, encodeBool, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p PlaySoundPayload
			var err error
			if p.ServerID, err = d.ReadI32(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Name, err = wire.DecodeString(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Gain, err = d.ReadF32(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Typ, err = d.ReadU8(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Pos, err = types.DecodeV3F(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.ObjectID, err = d.ReadU16(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Loop, err = d.ReadBool(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Fade, err = wire.DecodeOption(d, decodeF32); err != nil {
				return ToClientCommand{}, err
			}
			if p.Pitch, err = wire.DecodeOption(d, decodeF32); err != nil {
				return ToClientCommand{}, err
			}
			if p.Ephemeral, err = wire.DecodeOption(d, decodeBool); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagPlaySound, PlaySound: p}, nil
		})

	registerToClient(TagPrivileges, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			return wire.EncodeArray16(c.Privileges.Privileges, wire.EncodeString, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			privs, err := wire.DecodeArray16(d, wire.DecodeString)
			if err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagPrivileges, Privileges: PrivilegesPayload{Privileges: privs}}, nil
		})

	registerToClient(TagInventoryFormspec, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			return wire.EncodeLongString(c.InventoryFormspec.Formspec, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			fs, err := wire.DecodeLongString(d)
			if err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagInventoryFormspec, InventoryFormspec: InventoryFormspecPayload{Formspec: fs}}, nil
		})

	registerToClient(TagMovement, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error { return encodeMovementPayload(c.Movement, s) },
		func(d *wire.Deserializer) (ToClientCommand, error) {
			p, err := decodeMovementPayload(d)
			if err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagMovement, Movement: p}, nil
		})

	registerToClient(TagHudadd, peer.ChannelInit, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			p := c.Hudadd
			s.WriteU32(p.ServerID)
			s.WriteU8(p.Typ)
			if err := types.EncodeV2F(p.Pos, s); err != nil {
				return err
			}
			if err := wire.EncodeString(p.Name, s); err != nil {
				return err
			}
			if err := types.EncodeV2F(p.Scale, s); err != nil {
				return err
			}
			if err := wire.EncodeString(p.Text, s); err != nil {
				return err
			}
			s.WriteU32(p.Number)
			s.WriteU32(p.Item)
			s.WriteU32(p.Dir)
			if err := types.EncodeV2F(p.Align, s); err != nil {
				return err
			}
			if err := types.EncodeV2F(p.Offset, s); err != nil {
				return err
			}
			if err := wire.EncodeOption(p.WorldPos, types.EncodeV3F, s); err != nil {
				return err
			}
			if err := wire.EncodeOption(p.Size, types.EncodeV2S32, s); err != nil {
				return err
			}
			if err := wire.EncodeOption(p.ZIndex, encodeS16, s); err != nil {
				return err
			}
			if err := wire.EncodeOption(p.Text2, wire.EncodeString, s); err != nil {
				return err
			}
			return wire.EncodeOption(p.Style, encodeU32, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var p HudaddPayload
			var err error
			if p.ServerID, err = d.ReadU32(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Typ, err = d.ReadU8(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Pos, err = types.DecodeV2F(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Name, err = wire.DecodeString(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Scale, err = types.DecodeV2F(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Text, err = wire.DecodeString(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Number, err = d.ReadU32(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Item, err = d.ReadU32(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Dir, err = d.ReadU32(); err != nil {
				return ToClientCommand{}, err
			}
			if p.Align, err = types.DecodeV2F(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.Offset, err = types.DecodeV2F(d); err != nil {
				return ToClientCommand{}, err
			}
			if p.WorldPos, err = wire.DecodeOption(d, types.DecodeV3F); err != nil {
				return ToClientCommand{}, err
			}
			if p.Size, err = wire.DecodeOption(d, types.DecodeV2S32); err != nil {
				return ToClientCommand{}, err
			}
			if p.ZIndex, err = wire.DecodeOption(d, decodeS16); err != nil {
				return ToClientCommand{}, err
			}
			if p.Text2, err = wire.DecodeOption(d, wire.DecodeString); err != nil {
				return ToClientCommand{}, err
			}
			if p.Style, err = wire.DecodeOption(d, decodeU32); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagHudadd, Hudadd: p}, nil
		})

	registerToClient(TagSetLighting, peer.ChannelDefault, true,
		func(c ToClientCommand, s *wire.Serializer) error {
			l := c.SetLighting.Lighting
			s.WriteF32(l.ShadowIntensity)
			s.WriteF32(l.Saturation)
			return encodeAutoExposure(l.Exposure, s)
		},
		func(d *wire.Deserializer) (ToClientCommand, error) {
			var l Lighting
			var err error
			if l.ShadowIntensity, err = d.ReadF32(); err != nil {
				return ToClientCommand{}, err
			}
			if l.Saturation, err = d.ReadF32(); err != nil {
				return ToClientCommand{}, err
			}
			if l.Exposure, err = decodeAutoExposure(d); err != nil {
				return ToClientCommand{}, err
			}
			return ToClientCommand{Tag: TagSetLighting, SetLighting: SetLightingPayload{Lighting: l}}, nil
		})
}
