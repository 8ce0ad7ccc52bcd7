package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// DrawType mirrors node drawing styles (original_source/luanti-protocol/src/types.rs).
type DrawType uint8

const (
	DrawTypeNormal DrawType = iota
	DrawTypeAirLike
	DrawTypeLiquid
	DrawTypeFlowingLiquid
	DrawTypeGlassLike
	DrawTypeAllFaces
	DrawTypeAllFacesOptional
	DrawTypeTorchLike
	DrawTypeSignLike
	DrawTypePlantLike
	DrawTypeFenceLike
	DrawTypeRailLike
	DrawTypeNodeBox
	DrawTypeGlassLikeFramed
	DrawTypeFireLike
	DrawTypeGlassLikeFramedOptional
	DrawTypeMesh
	DrawTypePlantLikeRooted
)

func EncodeDrawType(v DrawType, s *wire.Serializer) error {
	s.WriteU8(uint8(v))
	return nil
}

func DecodeDrawType(d *wire.Deserializer) (DrawType, error) {
	v, err := d.ReadU8()
	return DrawType(v), err
}

// AlphaMode selects the transparency mode a node's textures use.
type AlphaMode uint8

const (
	AlphaModeBlend AlphaMode = iota
	AlphaModeClip
	AlphaModeOpaque
	AlphaModeLegacyCompat
)

func EncodeAlphaMode(v AlphaMode, s *wire.Serializer) error {
	s.WriteU8(uint8(v))
	return nil
}

func DecodeAlphaMode(d *wire.Deserializer) (AlphaMode, error) {
	v, err := d.ReadU8()
	return AlphaMode(v), err
}

// GroupEntry is one (name, rating) pair of a group list.
type GroupEntry struct {
	Name   string
	Rating int16
}

func encodeGroupEntry(g GroupEntry, s *wire.Serializer) error {
	return wire.EncodePair(g.Name, g.Rating, wire.EncodeString, func(v int16, s *wire.Serializer) error {
		s.WriteI16(v)
		return nil
	}, s)
}

func decodeGroupEntry(d *wire.Deserializer) (GroupEntry, error) {
	name, rating, err := wire.DecodePair(d, wire.DecodeString, func(d *wire.Deserializer) (int16, error) { return d.ReadI16() })
	return GroupEntry{Name: name, Rating: rating}, err
}

// ContentFeatures is the per-node-id definition transmitted via Nodedef
// (original_source/luanti-protocol/src/types.rs ContentFeatures).
type ContentFeatures struct {
	Version uint8
	Name    string
	Groups  []GroupEntry

	ParamType  uint8
	ParamType2 uint8
	DrawType   DrawType
	Mesh       string
	VisualScale float32

	UnusedSix uint8

	Tiledef        [6]TileDef
	TiledefOverlay [6]TileDef
	TiledefSpecial []TileDef

	AlphaForLegacy uint8
	Red, Green, Blue uint8
	PaletteName    string

	Waving      uint8
	ConnectSides uint8
	ConnectsToIDs []uint16

	PostEffectColor SColor
	Leveled         uint8

	LightPropagates    uint8
	SunlightPropagates uint8
	LightSource        uint8

	IsGroundContent bool
	Walkable        bool
	Pointable       bool
	Diggable        bool
	Climbable       bool
	BuildableTo     bool
	Rightclickable  bool

	DamagePerSecond uint32

	LiquidTypeBC              uint8
	LiquidAlternativeFlowing  string
	LiquidAlternativeSource   string
	LiquidViscosity           uint8
	LiquidRenewable           bool
	LiquidRange               uint8
	Drowning                  uint8
	Floodable                 bool

	NodeBox      NodeBox
	SelectionBox NodeBox
	CollisionBox NodeBox

	SoundFootstep SimpleSoundSpec
	SoundDig      SimpleSoundSpec
	SoundDug      SimpleSoundSpec

	LegacyFacedirSimple bool
	LegacyWallmounted   bool

	NodeDigPrediction *string
	LeveledMax        *uint8
	Alpha             *AlphaMode
	MoveResistance    *uint8
	LiquidMovePhysics *bool
}

func EncodeContentFeatures(v ContentFeatures, s *wire.Serializer) error {
	s.WriteU8(v.Version)
	if err := wire.EncodeString(v.Name, s); err != nil {
		return err
	}
	if err := wire.EncodeArray16(v.Groups, encodeGroupEntry, s); err != nil {
		return err
	}
	s.WriteU8(v.ParamType)
	s.WriteU8(v.ParamType2)
	if err := EncodeDrawType(v.DrawType, s); err != nil {
		return err
	}
	if err := wire.EncodeString(v.Mesh, s); err != nil {
		return err
	}
	s.WriteF32(v.VisualScale)
	s.WriteU8(v.UnusedSix)
	if err := wire.EncodeFixedArray(v.Tiledef[:], EncodeTileDef, s); err != nil {
		return err
	}
	if err := wire.EncodeFixedArray(v.TiledefOverlay[:], EncodeTileDef, s); err != nil {
		return err
	}
	if err := wire.EncodeArray8(v.TiledefSpecial, EncodeTileDef, s); err != nil {
		return err
	}
	s.WriteU8(v.AlphaForLegacy)
	s.WriteU8(v.Red)
	s.WriteU8(v.Green)
	s.WriteU8(v.Blue)
	if err := wire.EncodeString(v.PaletteName, s); err != nil {
		return err
	}
	s.WriteU8(v.Waving)
	s.WriteU8(v.ConnectSides)
	if err := wire.EncodeArray16(v.ConnectsToIDs, func(u uint16, s *wire.Serializer) error { s.WriteU16(u); return nil }, s); err != nil {
		return err
	}
	if err := EncodeSColor(v.PostEffectColor, s); err != nil {
		return err
	}
	s.WriteU8(v.Leveled)
	s.WriteU8(v.LightPropagates)
	s.WriteU8(v.SunlightPropagates)
	s.WriteU8(v.LightSource)
	s.WriteBool(v.IsGroundContent)
	s.WriteBool(v.Walkable)
	s.WriteBool(v.Pointable)
	s.WriteBool(v.Diggable)
	s.WriteBool(v.Climbable)
	s.WriteBool(v.BuildableTo)
	s.WriteBool(v.Rightclickable)
	s.WriteU32(v.DamagePerSecond)
	s.WriteU8(v.LiquidTypeBC)
	if err := wire.EncodeString(v.LiquidAlternativeFlowing, s); err != nil {
		return err
	}
	if err := wire.EncodeString(v.LiquidAlternativeSource, s); err != nil {
		return err
	}
	s.WriteU8(v.LiquidViscosity)
	s.WriteBool(v.LiquidRenewable)
	s.WriteU8(v.LiquidRange)
	s.WriteU8(v.Drowning)
	s.WriteBool(v.Floodable)
	if err := EncodeNodeBox(v.NodeBox, s); err != nil {
		return err
	}
	if err := EncodeNodeBox(v.SelectionBox, s); err != nil {
		return err
	}
	if err := EncodeNodeBox(v.CollisionBox, s); err != nil {
		return err
	}
	if err := EncodeSimpleSoundSpec(v.SoundFootstep, s); err != nil {
		return err
	}
	if err := EncodeSimpleSoundSpec(v.SoundDig, s); err != nil {
		return err
	}
	if err := EncodeSimpleSoundSpec(v.SoundDug, s); err != nil {
		return err
	}
	s.WriteBool(v.LegacyFacedirSimple)
	s.WriteBool(v.LegacyWallmounted)
	// Tail-optional fields: once nil is written, later fields must also
	// be omitted by callers, matching the original's Option chain.
	if err := wire.EncodeOption(v.NodeDigPrediction, wire.EncodeString, s); err != nil {
		return err
	}
	if err := wire.EncodeOption(v.LeveledMax, func(u uint8, s *wire.Serializer) error { s.WriteU8(u); return nil }, s); err != nil {
		return err
	}
	if err := wire.EncodeOption(v.Alpha, EncodeAlphaMode, s); err != nil {
		return err
	}
	if err := wire.EncodeOption(v.MoveResistance, func(u uint8, s *wire.Serializer) error { s.WriteU8(u); return nil }, s); err != nil {
		return err
	}
	if err := wire.EncodeOption(v.LiquidMovePhysics, func(b bool, s *wire.Serializer) error { s.WriteBool(b); return nil }, s); err != nil {
		return err
	}
	return nil
}

func DecodeContentFeatures(d *wire.Deserializer) (ContentFeatures, error) {
	var v ContentFeatures
	var err error
	if v.Version, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.Name, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.Groups, err = wire.DecodeArray16(d, decodeGroupEntry); err != nil {
		return v, err
	}
	if v.ParamType, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.ParamType2, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.DrawType, err = DecodeDrawType(d); err != nil {
		return v, err
	}
	if v.Mesh, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.VisualScale, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.UnusedSix, err = d.ReadU8(); err != nil {
		return v, err
	}
	tiledef, err := wire.DecodeFixedArray(6, d, DecodeTileDef)
	if err != nil {
		return v, err
	}
	copy(v.Tiledef[:], tiledef)
	tiledefOverlay, err := wire.DecodeFixedArray(6, d, DecodeTileDef)
	if err != nil {
		return v, err
	}
	copy(v.TiledefOverlay[:], tiledefOverlay)
	if v.TiledefSpecial, err = wire.DecodeArray8(d, DecodeTileDef); err != nil {
		return v, err
	}
	if v.AlphaForLegacy, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.Red, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.Green, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.Blue, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.PaletteName, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.Waving, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.ConnectSides, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.ConnectsToIDs, err = wire.DecodeArray16(d, func(d *wire.Deserializer) (uint16, error) { return d.ReadU16() }); err != nil {
		return v, err
	}
	if v.PostEffectColor, err = DecodeSColor(d); err != nil {
		return v, err
	}
	if v.Leveled, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.LightPropagates, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.SunlightPropagates, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.LightSource, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.IsGroundContent, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.Walkable, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.Pointable, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.Diggable, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.Climbable, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.BuildableTo, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.Rightclickable, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.DamagePerSecond, err = d.ReadU32(); err != nil {
		return v, err
	}
	if v.LiquidTypeBC, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.LiquidAlternativeFlowing, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.LiquidAlternativeSource, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.LiquidViscosity, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.LiquidRenewable, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.LiquidRange, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.Drowning, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.Floodable, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.NodeBox, err = DecodeNodeBox(d); err != nil {
		return v, err
	}
	if v.SelectionBox, err = DecodeNodeBox(d); err != nil {
		return v, err
	}
	if v.CollisionBox, err = DecodeNodeBox(d); err != nil {
		return v, err
	}
	if v.SoundFootstep, err = DecodeSimpleSoundSpec(d); err != nil {
		return v, err
	}
	if v.SoundDig, err = DecodeSimpleSoundSpec(d); err != nil {
		return v, err
	}
	if v.SoundDug, err = DecodeSimpleSoundSpec(d); err != nil {
		return v, err
	}
	if v.LegacyFacedirSimple, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.LegacyWallmounted, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.NodeDigPrediction, err = wire.DecodeOption(d, wire.DecodeString); err != nil {
		return v, err
	}
	if v.LeveledMax, err = wire.DecodeOption(d, func(d *wire.Deserializer) (uint8, error) { return d.ReadU8() }); err != nil {
		return v, err
	}
	if v.Alpha, err = wire.DecodeOption(d, DecodeAlphaMode); err != nil {
		return v, err
	}
	if v.MoveResistance, err = wire.DecodeOption(d, func(d *wire.Deserializer) (uint8, error) { return d.ReadU8() }); err != nil {
		return v, err
	}
	if v.LiquidMovePhysics, err = wire.DecodeOption(d, func(d *wire.Deserializer) (bool, error) { return d.ReadBool() }); err != nil {
		return v, err
	}
	return v, nil
}

// NodeDefEntry pairs a content id with its feature definition.
type NodeDefEntry struct {
	ID       uint16
	Features ContentFeatures
}

// NodeDefManager is the Nodedef command's payload: every content id's
// definition, wrapped so ContentFeatures can grow without breaking
// older clients (original_source/luanti-protocol/src/types.rs).
type NodeDefManager struct {
	ContentFeatures []NodeDefEntry
}

func EncodeNodeDefManager(v NodeDefManager, s *wire.Serializer) error {
	s.WriteU8(1) // version
	s.WriteU16(uint16(len(v.ContentFeatures)))
	marker := s.WriteMarker(4)
	for _, entry := range v.ContentFeatures {
		s.WriteU16(entry.ID)
		innerMarker := s.WriteMarker(2)
		if err := EncodeContentFeatures(entry.Features, s); err != nil {
			return err
		}
		s.SetMarker(innerMarker, 2, uint64(s.MarkerDistance(innerMarker, 2)))
	}
	s.SetMarker(marker, 4, uint64(s.MarkerDistance(marker, 4)))
	return nil
}

func DecodeNodeDefManager(d *wire.Deserializer) (NodeDefManager, error) {
	var v NodeDefManager
	ver, err := d.ReadU8()
	if err != nil {
		return v, err
	}
	if ver != 1 {
		return v, wire.Errorf(wire.KindCodec, "node_def_manager", "bad version %d", ver)
	}
	count, err := d.ReadU16()
	if err != nil {
		return v, err
	}
	outerLen, err := d.ReadU32()
	if err != nil {
		return v, err
	}
	sub, err := d.Slice(int(outerLen))
	if err != nil {
		return v, err
	}
	v.ContentFeatures = make([]NodeDefEntry, 0, count)
	for i := uint16(0); i < count; i++ {
		id, err := sub.ReadU16()
		if err != nil {
			return v, err
		}
		innerLen, err := sub.ReadU16()
		if err != nil {
			return v, err
		}
		innerSub, err := sub.Slice(int(innerLen))
		if err != nil {
			return v, err
		}
		features, err := DecodeContentFeatures(innerSub)
		if err != nil {
			return v, err
		}
		v.ContentFeatures = append(v.ContentFeatures, NodeDefEntry{ID: id, Features: features})
	}
	return v, nil
}
