package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// AABB3F is an axis-aligned box given by two corners, used throughout NodeBox.
type AABB3F struct {
	Min, Max V3F
}

func EncodeAABB3F(b AABB3F, s *wire.Serializer) error {
	if err := EncodeV3F(b.Min, s); err != nil {
		return err
	}
	return EncodeV3F(b.Max, s)
}

func DecodeAABB3F(d *wire.Deserializer) (AABB3F, error) {
	var b AABB3F
	var err error
	if b.Min, err = DecodeV3F(d); err != nil {
		return b, err
	}
	if b.Max, err = DecodeV3F(d); err != nil {
		return b, err
	}
	return b, nil
}

// NodeBoxKind selects which variant of NodeBox is in play
// (original_source/luanti-protocol/src/types/node_box.rs).
type NodeBoxKind uint8

const (
	NodeBoxRegular NodeBoxKind = iota
	NodeBoxFixed
	NodeBoxWallmounted
	NodeBoxLeveled
	NodeBoxConnected
)

// NodeBox is the node_box.rs tagged union. The wire discriminant is a
// u8 version byte 0–4; any other value (including 6) is rejected on
// decode.
type NodeBox struct {
	Kind NodeBoxKind

	// Fixed / Leveled
	Boxes []AABB3F

	// Wallmounted
	WallTop, WallBottom, WallSide AABB3F

	// Connected
	ConnectTop, ConnectBottom, ConnectFront, ConnectLeft, ConnectBack, ConnectRight []AABB3F
	DisconnectedTop, DisconnectedBottom, DisconnectedFront, DisconnectedLeft,
	DisconnectedBack, DisconnectedRight, DisconnectedAll, DisconnectedSidesAll []AABB3F
}

func EncodeNodeBox(n NodeBox, s *wire.Serializer) error {
	switch n.Kind {
	case NodeBoxRegular:
		s.WriteU8(0)
	case NodeBoxFixed:
		s.WriteU8(1)
		if err := wire.EncodeArray16(n.Boxes, EncodeAABB3F, s); err != nil {
			return err
		}
	case NodeBoxWallmounted:
		s.WriteU8(2)
		if err := EncodeAABB3F(n.WallTop, s); err != nil {
			return err
		}
		if err := EncodeAABB3F(n.WallBottom, s); err != nil {
			return err
		}
		if err := EncodeAABB3F(n.WallSide, s); err != nil {
			return err
		}
	case NodeBoxLeveled:
		s.WriteU8(3)
		if err := wire.EncodeArray16(n.Boxes, EncodeAABB3F, s); err != nil {
			return err
		}
	case NodeBoxConnected:
		s.WriteU8(4)
		groups := [][]AABB3F{
			n.ConnectTop, n.ConnectBottom, n.ConnectFront, n.ConnectLeft, n.ConnectBack, n.ConnectRight,
			n.DisconnectedTop, n.DisconnectedBottom, n.DisconnectedFront, n.DisconnectedLeft,
			n.DisconnectedBack, n.DisconnectedRight, n.DisconnectedAll, n.DisconnectedSidesAll,
		}
		for _, g := range groups {
			if err := wire.EncodeArray16(g, EncodeAABB3F, s); err != nil {
				return err
			}
		}
	default:
		return wire.Errorf(wire.KindCodec, "node_box", "unknown kind %d", n.Kind)
	}
	return nil
}

func DecodeNodeBox(d *wire.Deserializer) (NodeBox, error) {
	var n NodeBox
	tag, err := d.ReadU8()
	if err != nil {
		return n, err
	}
	switch tag {
	case 0:
		n.Kind = NodeBoxRegular
	case 1:
		n.Kind = NodeBoxFixed
		if n.Boxes, err = wire.DecodeArray16(d, DecodeAABB3F); err != nil {
			return n, err
		}
	case 2:
		n.Kind = NodeBoxWallmounted
		if n.WallTop, err = DecodeAABB3F(d); err != nil {
			return n, err
		}
		if n.WallBottom, err = DecodeAABB3F(d); err != nil {
			return n, err
		}
		if n.WallSide, err = DecodeAABB3F(d); err != nil {
			return n, err
		}
	case 3:
		n.Kind = NodeBoxLeveled
		if n.Boxes, err = wire.DecodeArray16(d, DecodeAABB3F); err != nil {
			return n, err
		}
	case 4:
		n.Kind = NodeBoxConnected
		slots := []*[]AABB3F{
			&n.ConnectTop, &n.ConnectBottom, &n.ConnectFront, &n.ConnectLeft, &n.ConnectBack, &n.ConnectRight,
			&n.DisconnectedTop, &n.DisconnectedBottom, &n.DisconnectedFront, &n.DisconnectedLeft,
			&n.DisconnectedBack, &n.DisconnectedRight, &n.DisconnectedAll, &n.DisconnectedSidesAll,
		}
		for _, slot := range slots {
			if *slot, err = wire.DecodeArray16(d, DecodeAABB3F); err != nil {
				return n, err
			}
		}
	default:
		return n, wire.Errorf(wire.KindCodec, "node_box", "unknown version byte %d", tag)
	}
	return n, nil
}
