package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// AlignStyle mirrors tile.rs's texture alignment enum.
type AlignStyle uint8

const (
	AlignStyleNode AlignStyle = iota
	AlignStyleWorld
	AlignStyleUserDefined
)

// TileAnimationKind selects the TileAnimationParams variant.
type TileAnimationKind uint8

const (
	TileAnimationNone TileAnimationKind = iota
	TileAnimationVerticalFrames
	TileAnimationSheet2D
)

// TileAnimationParams is tile.rs's TileAnimationParams tagged union.
type TileAnimationParams struct {
	Kind TileAnimationKind

	// VerticalFrames
	AspectW, AspectH uint16
	Length           float32

	// Sheet2D
	FramesW, FramesH uint8
	FrameLength      float32
}

func EncodeTileAnimationParams(v TileAnimationParams, s *wire.Serializer) error {
	switch v.Kind {
	case TileAnimationNone:
		s.WriteU8(0)
	case TileAnimationVerticalFrames:
		s.WriteU8(1)
		s.WriteU16(v.AspectW)
		s.WriteU16(v.AspectH)
		s.WriteF32(v.Length)
	case TileAnimationSheet2D:
		s.WriteU8(2)
		s.WriteU8(v.FramesW)
		s.WriteU8(v.FramesH)
		s.WriteF32(v.FrameLength)
	default:
		return wire.Errorf(wire.KindCodec, "tile_animation", "unknown kind %d", v.Kind)
	}
	return nil
}

func DecodeTileAnimationParams(d *wire.Deserializer) (TileAnimationParams, error) {
	var v TileAnimationParams
	tag, err := d.ReadU8()
	if err != nil {
		return v, err
	}
	switch tag {
	case 0:
		v.Kind = TileAnimationNone
	case 1:
		v.Kind = TileAnimationVerticalFrames
		if v.AspectW, err = d.ReadU16(); err != nil {
			return v, err
		}
		if v.AspectH, err = d.ReadU16(); err != nil {
			return v, err
		}
		if v.Length, err = d.ReadF32(); err != nil {
			return v, err
		}
	case 2:
		v.Kind = TileAnimationSheet2D
		if v.FramesW, err = d.ReadU8(); err != nil {
			return v, err
		}
		if v.FramesH, err = d.ReadU8(); err != nil {
			return v, err
		}
		if v.FrameLength, err = d.ReadF32(); err != nil {
			return v, err
		}
	default:
		return v, wire.Errorf(wire.KindCodec, "tile_animation", "unknown tag %d", tag)
	}
	return v, nil
}

// TileDef is a single tile definition within ContentFeatures' tiledef arrays.
type TileDef struct {
	Name             string
	AnimationParams  TileAnimationParams
	Backface         bool
	TileableHoriz    bool
	TileableVert     bool
	HasColor         bool
	Color            SColor
	Scale            uint8
	Align            AlignStyle
}

func EncodeTileDef(t TileDef, s *wire.Serializer) error {
	if err := wire.EncodeString(t.Name, s); err != nil {
		return err
	}
	if err := EncodeTileAnimationParams(t.AnimationParams, s); err != nil {
		return err
	}
	s.WriteBool(t.Backface)
	s.WriteBool(t.TileableHoriz)
	s.WriteBool(t.TileableVert)
	s.WriteBool(t.HasColor)
	if t.HasColor {
		if err := EncodeSColor(t.Color, s); err != nil {
			return err
		}
	}
	s.WriteU8(t.Scale)
	s.WriteU8(uint8(t.Align))
	return nil
}

func DecodeTileDef(d *wire.Deserializer) (TileDef, error) {
	var t TileDef
	var err error
	if t.Name, err = wire.DecodeString(d); err != nil {
		return t, err
	}
	if t.AnimationParams, err = DecodeTileAnimationParams(d); err != nil {
		return t, err
	}
	if t.Backface, err = d.ReadBool(); err != nil {
		return t, err
	}
	if t.TileableHoriz, err = d.ReadBool(); err != nil {
		return t, err
	}
	if t.TileableVert, err = d.ReadBool(); err != nil {
		return t, err
	}
	if t.HasColor, err = d.ReadBool(); err != nil {
		return t, err
	}
	if t.HasColor {
		if t.Color, err = DecodeSColor(d); err != nil {
			return t, err
		}
	}
	if t.Scale, err = d.ReadU8(); err != nil {
		return t, err
	}
	align, err := d.ReadU8()
	if err != nil {
		return t, err
	}
	t.Align = AlignStyle(align)
	return t, nil
}
