package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// InteractAction is the Interact command's action enum
// (original_source/luanti-protocol/src/types.rs).
type InteractAction uint8

const (
	InteractStartDigging InteractAction = iota
	InteractStopDigging
	InteractDiggingCompleted
	InteractPlace
	InteractUse
	InteractActivate
)

func EncodeInteractAction(v InteractAction, s *wire.Serializer) error {
	if v > InteractActivate {
		return wire.Errorf(wire.KindCodec, "interact_action", "unknown action %d", v)
	}
	s.WriteU8(uint8(v))
	return nil
}

func DecodeInteractAction(d *wire.Deserializer) (InteractAction, error) {
	v, err := d.ReadU8()
	if err != nil {
		return 0, err
	}
	if v > uint8(InteractActivate) {
		return 0, wire.Errorf(wire.KindCodec, "interact_action", "unknown action %d", v)
	}
	return InteractAction(v), nil
}

// PointedThingKind selects the PointedThing variant.
type PointedThingKind uint8

const (
	PointedThingNothing PointedThingKind = iota
	PointedThingNode
	PointedThingObject
)

// PointedThing is what an Interact command targets: nothing, a node
// face, or an active object. The wire form carries a leading version
// byte, always 0.
type PointedThing struct {
	Kind PointedThingKind

	UnderSurface V3S16
	AboveSurface V3S16

	ObjectID uint16
}

func EncodePointedThing(v PointedThing, s *wire.Serializer) error {
	s.WriteU8(0) // version
	switch v.Kind {
	case PointedThingNothing:
		s.WriteU8(0)
	case PointedThingNode:
		s.WriteU8(1)
		if err := EncodeV3S16(v.UnderSurface, s); err != nil {
			return err
		}
		if err := EncodeV3S16(v.AboveSurface, s); err != nil {
			return err
		}
	case PointedThingObject:
		s.WriteU8(2)
		s.WriteU16(v.ObjectID)
	default:
		return wire.Errorf(wire.KindCodec, "pointed_thing", "unknown kind %d", v.Kind)
	}
	return nil
}

func DecodePointedThing(d *wire.Deserializer) (PointedThing, error) {
	var v PointedThing
	ver, err := d.ReadU8()
	if err != nil {
		return v, err
	}
	if ver != 0 {
		return v, wire.Errorf(wire.KindCodec, "pointed_thing", "invalid version %d", ver)
	}
	tag, err := d.ReadU8()
	if err != nil {
		return v, err
	}
	switch tag {
	case 0:
		v.Kind = PointedThingNothing
	case 1:
		v.Kind = PointedThingNode
		if v.UnderSurface, err = DecodeV3S16(d); err != nil {
			return v, err
		}
		if v.AboveSurface, err = DecodeV3S16(d); err != nil {
			return v, err
		}
	case 2:
		v.Kind = PointedThingObject
		if v.ObjectID, err = d.ReadU16(); err != nil {
			return v, err
		}
	default:
		return v, wire.Errorf(wire.KindCodec, "pointed_thing", "unknown type %d", tag)
	}
	return v, nil
}
