package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// ItemType selects what kind of thing an ItemDef describes
// (original_source/luanti-protocol/src/commands/server_to_client/item_def.rs).
type ItemType uint8

const (
	ItemTypeNone ItemType = iota
	ItemTypeNode
	ItemTypeCraft
	ItemTypeTool
)

func EncodeItemType(v ItemType, s *wire.Serializer) error {
	s.WriteU8(uint8(v))
	return nil
}

func DecodeItemType(d *wire.Deserializer) (ItemType, error) {
	v, err := d.ReadU8()
	return ItemType(v), err
}

// ToolGroupCapTime is one (level, time) entry of a ToolGroupCap.
type ToolGroupCapTime struct {
	Level int16
	Time  float32
}

func encodeToolGroupCapTime(v ToolGroupCapTime, s *wire.Serializer) error {
	return wire.EncodePair(v.Level, v.Time,
		func(i int16, s *wire.Serializer) error { s.WriteI16(i); return nil },
		func(f float32, s *wire.Serializer) error { s.WriteF32(f); return nil }, s)
}

func decodeToolGroupCapTime(d *wire.Deserializer) (ToolGroupCapTime, error) {
	level, time, err := wire.DecodePair(d,
		func(d *wire.Deserializer) (int16, error) { return d.ReadI16() },
		func(d *wire.Deserializer) (float32, error) { return d.ReadF32() })
	return ToolGroupCapTime{Level: level, Time: time}, err
}

// ToolGroupCap describes how a tool performs against one dig group.
type ToolGroupCap struct {
	Uses     int16
	MaxLevel int16
	Times    []ToolGroupCapTime
}

func EncodeToolGroupCap(v ToolGroupCap, s *wire.Serializer) error {
	s.WriteI16(v.Uses)
	s.WriteI16(v.MaxLevel)
	return wire.EncodeArray32(v.Times, encodeToolGroupCapTime, s)
}

func DecodeToolGroupCap(d *wire.Deserializer) (ToolGroupCap, error) {
	var v ToolGroupCap
	var err error
	if v.Uses, err = d.ReadI16(); err != nil {
		return v, err
	}
	if v.MaxLevel, err = d.ReadI16(); err != nil {
		return v, err
	}
	if v.Times, err = wire.DecodeArray32(d, decodeToolGroupCapTime); err != nil {
		return v, err
	}
	return v, nil
}

// ToolGroupCapEntry pairs a dig-group name with its capability.
type ToolGroupCapEntry struct {
	Name string
	Cap  ToolGroupCap
}

func encodeToolGroupCapEntry(v ToolGroupCapEntry, s *wire.Serializer) error {
	return wire.EncodePair(v.Name, v.Cap, wire.EncodeString, EncodeToolGroupCap, s)
}

func decodeToolGroupCapEntry(d *wire.Deserializer) (ToolGroupCapEntry, error) {
	name, cap, err := wire.DecodePair(d, wire.DecodeString, DecodeToolGroupCap)
	return ToolGroupCapEntry{Name: name, Cap: cap}, err
}

// DamageGroupEntry pairs a damage-group name with a rating.
type DamageGroupEntry struct {
	Name   string
	Rating int16
}

func encodeDamageGroupEntry(v DamageGroupEntry, s *wire.Serializer) error {
	return wire.EncodePair(v.Name, v.Rating, wire.EncodeString,
		func(i int16, s *wire.Serializer) error { s.WriteI16(i); return nil }, s)
}

func decodeDamageGroupEntry(d *wire.Deserializer) (DamageGroupEntry, error) {
	name, rating, err := wire.DecodePair(d, wire.DecodeString,
		func(d *wire.Deserializer) (int16, error) { return d.ReadI16() })
	return DamageGroupEntry{Name: name, Rating: rating}, err
}

// ToolCapabilities describes a tool's digging/combat behavior.
type ToolCapabilities struct {
	Version            uint8
	FullPunchInterval  float32
	MaxDropLevel       int16
	GroupCaps          []ToolGroupCapEntry
	DamageGroups       []DamageGroupEntry
	PunchAttackUses    *uint16
}

func EncodeToolCapabilities(v ToolCapabilities, s *wire.Serializer) error {
	s.WriteU8(v.Version)
	s.WriteF32(v.FullPunchInterval)
	s.WriteI16(v.MaxDropLevel)
	if err := wire.EncodeArray32(v.GroupCaps, encodeToolGroupCapEntry, s); err != nil {
		return err
	}
	if err := wire.EncodeArray32(v.DamageGroups, encodeDamageGroupEntry, s); err != nil {
		return err
	}
	return wire.EncodeOption(v.PunchAttackUses, func(u uint16, s *wire.Serializer) error { s.WriteU16(u); return nil }, s)
}

func DecodeToolCapabilities(d *wire.Deserializer) (ToolCapabilities, error) {
	var v ToolCapabilities
	var err error
	if v.Version, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.FullPunchInterval, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.MaxDropLevel, err = d.ReadI16(); err != nil {
		return v, err
	}
	if v.GroupCaps, err = wire.DecodeArray32(d, decodeToolGroupCapEntry); err != nil {
		return v, err
	}
	if v.DamageGroups, err = wire.DecodeArray32(d, decodeDamageGroupEntry); err != nil {
		return v, err
	}
	if v.PunchAttackUses, err = wire.DecodeOption(d, func(d *wire.Deserializer) (uint16, error) { return d.ReadU16() }); err != nil {
		return v, err
	}
	return v, nil
}

// ItemDef is a single item/tool/craft definition (item_def.rs ItemDef).
type ItemDef struct {
	Version           uint8
	ItemType          ItemType
	Name              string
	Description       string
	InventoryImage    string
	WieldImage        string
	WieldScale        V3F
	StackMax          int16
	Usable            bool
	LiquidsPointable  bool
	ToolCapabilities  *ToolCapabilities
	Groups            []GroupEntry
	NodePlacementPrediction string
	SoundPlace        SimpleSoundSpec
	SoundPlaceFailed  SimpleSoundSpec
	Range             float32
	PaletteImage      string
	Color             SColor
	InventoryOverlay  string
	WieldOverlay      string
	ShortDescription  *string
	SoundUse          *SimpleSoundSpec
	SoundUseAir       *SimpleSoundSpec
	PlaceParam2       *uint8
}

func EncodeItemDef(v ItemDef, s *wire.Serializer) error {
	s.WriteU8(v.Version)
	if err := EncodeItemType(v.ItemType, s); err != nil {
		return err
	}
	if err := wire.EncodeString(v.Name, s); err != nil {
		return err
	}
	if err := wire.EncodeString(v.Description, s); err != nil {
		return err
	}
	if err := wire.EncodeString(v.InventoryImage, s); err != nil {
		return err
	}
	if err := wire.EncodeString(v.WieldImage, s); err != nil {
		return err
	}
	if err := EncodeV3F(v.WieldScale, s); err != nil {
		return err
	}
	s.WriteI16(v.StackMax)
	s.WriteBool(v.Usable)
	s.WriteBool(v.LiquidsPointable)
	if err := wire.EncodeOption16(v.ToolCapabilities, EncodeToolCapabilities, s); err != nil {
		return err
	}
	if err := wire.EncodeArray16(v.Groups, encodeGroupEntry, s); err != nil {
		return err
	}
	if err := wire.EncodeString(v.NodePlacementPrediction, s); err != nil {
		return err
	}
	if err := EncodeSimpleSoundSpec(v.SoundPlace, s); err != nil {
		return err
	}
	if err := EncodeSimpleSoundSpec(v.SoundPlaceFailed, s); err != nil {
		return err
	}
	s.WriteF32(v.Range)
	if err := wire.EncodeString(v.PaletteImage, s); err != nil {
		return err
	}
	if err := EncodeSColor(v.Color, s); err != nil {
		return err
	}
	if err := wire.EncodeString(v.InventoryOverlay, s); err != nil {
		return err
	}
	if err := wire.EncodeString(v.WieldOverlay, s); err != nil {
		return err
	}
	if err := wire.EncodeOption(v.ShortDescription, wire.EncodeString, s); err != nil {
		return err
	}
	if err := wire.EncodeOption(v.SoundUse, EncodeSimpleSoundSpec, s); err != nil {
		return err
	}
	if err := wire.EncodeOption(v.SoundUseAir, EncodeSimpleSoundSpec, s); err != nil {
		return err
	}
	return wire.EncodeOption(v.PlaceParam2, func(u uint8, s *wire.Serializer) error { s.WriteU8(u); return nil }, s)
}

func DecodeItemDef(d *wire.Deserializer) (ItemDef, error) {
	var v ItemDef
	var err error
	if v.Version, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.ItemType, err = DecodeItemType(d); err != nil {
		return v, err
	}
	if v.Name, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.Description, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.InventoryImage, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.WieldImage, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.WieldScale, err = DecodeV3F(d); err != nil {
		return v, err
	}
	if v.StackMax, err = d.ReadI16(); err != nil {
		return v, err
	}
	if v.Usable, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.LiquidsPointable, err = d.ReadBool(); err != nil {
		return v, err
	}
	if v.ToolCapabilities, err = wire.DecodeOption16(d, DecodeToolCapabilities); err != nil {
		return v, err
	}
	if v.Groups, err = wire.DecodeArray16(d, decodeGroupEntry); err != nil {
		return v, err
	}
	if v.NodePlacementPrediction, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.SoundPlace, err = DecodeSimpleSoundSpec(d); err != nil {
		return v, err
	}
	if v.SoundPlaceFailed, err = DecodeSimpleSoundSpec(d); err != nil {
		return v, err
	}
	if v.Range, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.PaletteImage, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.Color, err = DecodeSColor(d); err != nil {
		return v, err
	}
	if v.InventoryOverlay, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.WieldOverlay, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.ShortDescription, err = wire.DecodeOption(d, wire.DecodeString); err != nil {
		return v, err
	}
	if v.SoundUse, err = wire.DecodeOption(d, DecodeSimpleSoundSpec); err != nil {
		return v, err
	}
	if v.SoundUseAir, err = wire.DecodeOption(d, DecodeSimpleSoundSpec); err != nil {
		return v, err
	}
	if v.PlaceParam2, err = wire.DecodeOption(d, func(d *wire.Deserializer) (uint8, error) { return d.ReadU8() }); err != nil {
		return v, err
	}
	return v, nil
}

// ItemAlias maps an alternate item name to its canonical target.
type ItemAlias struct {
	Name      string
	ConvertTo string
}

func EncodeItemAlias(v ItemAlias, s *wire.Serializer) error {
	if err := wire.EncodeString(v.Name, s); err != nil {
		return err
	}
	return wire.EncodeString(v.ConvertTo, s)
}

func DecodeItemAlias(d *wire.Deserializer) (ItemAlias, error) {
	var v ItemAlias
	var err error
	if v.Name, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.ConvertTo, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	return v, nil
}

func encodeWrappedItemDef(v ItemDef, s *wire.Serializer) error {
	return wire.EncodeWrapped16(v, EncodeItemDef, s)
}

func decodeWrappedItemDef(d *wire.Deserializer) (ItemDef, error) {
	return wire.DecodeWrapped16(d, DecodeItemDef)
}

// ItemdefList is the Itemdef command's inner (ZLib-wrapped) payload.
type ItemdefList struct {
	ManagerVersion uint8
	Defs           []ItemDef
	Aliases        []ItemAlias
}

func EncodeItemdefList(v ItemdefList, s *wire.Serializer) error {
	s.WriteU8(v.ManagerVersion)
	if err := wire.EncodeArray16(v.Defs, encodeWrappedItemDef, s); err != nil {
		return err
	}
	return wire.EncodeArray16(v.Aliases, EncodeItemAlias, s)
}

func DecodeItemdefList(d *wire.Deserializer) (ItemdefList, error) {
	var v ItemdefList
	var err error
	if v.ManagerVersion, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.Defs, err = wire.DecodeArray16(d, decodeWrappedItemDef); err != nil {
		return v, err
	}
	if v.Aliases, err = wire.DecodeArray16(d, DecodeItemAlias); err != nil {
		return v, err
	}
	return v, nil
}
