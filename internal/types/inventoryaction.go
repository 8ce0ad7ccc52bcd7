package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// InventoryLocationKind discriminates InventoryLocation's variants.
type InventoryLocationKind uint8

const (
	InventoryLocationUndefined InventoryLocationKind = iota
	InventoryLocationCurrentPlayer
	InventoryLocationPlayer
	InventoryLocationNodeMeta
	InventoryLocationDetached
)

// InventoryLocation names where an InventoryAction's items move to/from,
// written as one whitespace-delimited word (original_source/
// luanti-protocol/src/types.rs InventoryLocation).
type InventoryLocation struct {
	Kind InventoryLocationKind
	Name string     // valid iff Kind == Player or Detached
	Pos  MapNodePos // valid iff Kind == NodeMeta
}

// MapNodePos mirrors mapdata.MapNodePos's shape without importing
// mapdata (which imports types), avoiding an import cycle; command
// callers convert between the two via their X/Y/Z fields.
type MapNodePos struct{ X, Y, Z int16 }

func EncodeInventoryLocation(v InventoryLocation, s *wire.Serializer) error {
	var word string
	switch v.Kind {
	case InventoryLocationUndefined:
		word = "undefined"
	case InventoryLocationCurrentPlayer:
		word = "current_player"
	case InventoryLocationPlayer:
		word = "player:" + v.Name
	case InventoryLocationNodeMeta:
		word = fmt.Sprintf("nodemeta:%d,%d,%d", v.Pos.X, v.Pos.Y, v.Pos.Z)
	case InventoryLocationDetached:
		word = "detached:" + v.Name
	default:
		return wire.Errorf(wire.KindCodec, "inventory_location", "invalid kind %d", v.Kind)
	}
	s.WriteBytes([]byte(word))
	return nil
}

func DecodeInventoryLocation(d *wire.Deserializer) (InventoryLocation, error) {
	word, err := d.ReadWord()
	if err != nil {
		return InventoryLocation{}, err
	}
	switch {
	case word == "undefined":
		return InventoryLocation{Kind: InventoryLocationUndefined}, nil
	case word == "current_player":
		return InventoryLocation{Kind: InventoryLocationCurrentPlayer}, nil
	case strings.HasPrefix(word, "player:"):
		return InventoryLocation{Kind: InventoryLocationPlayer, Name: word[len("player:"):]}, nil
	case strings.HasPrefix(word, "nodemeta:"):
		coords := strings.Split(word[len("nodemeta:"):], ",")
		if len(coords) != 3 {
			return InventoryLocation{}, wire.Errorf(wire.KindCodec, "inventory_location", "corrupted nodemeta location %q", word)
		}
		var xyz [3]int16
		for i, c := range coords {
			n, err := strconv.ParseInt(c, 10, 16)
			if err != nil {
				return InventoryLocation{}, wire.Errorf(wire.KindCodec, "inventory_location", "bad nodemeta coordinate %q", c)
			}
			xyz[i] = int16(n)
		}
		return InventoryLocation{Kind: InventoryLocationNodeMeta, Pos: MapNodePos{X: xyz[0], Y: xyz[1], Z: xyz[2]}}, nil
	case strings.HasPrefix(word, "detached:"):
		return InventoryLocation{Kind: InventoryLocationDetached, Name: word[len("detached:"):]}, nil
	default:
		return InventoryLocation{}, wire.Errorf(wire.KindCodec, "inventory_location", "unknown inventory location %q", word)
	}
}

// InventoryActionKind discriminates InventoryAction's variants.
type InventoryActionKind uint8

const (
	InventoryActionMove InventoryActionKind = iota
	InventoryActionCraft
	InventoryActionDrop
)

// InventoryAction is a player's requested inventory mutation, written
// as a whitespace-delimited text line (original_source/
// luanti-protocol/src/types.rs InventoryAction). ToI is tail-optional:
// present for "Move", absent for "MoveSomewhere".
type InventoryAction struct {
	Kind     InventoryActionKind
	Count    uint16
	FromInv  InventoryLocation
	FromList string
	FromI    int16
	ToInv    InventoryLocation // valid iff Kind == Move
	ToList   string            // valid iff Kind == Move
	ToI      *int16            // valid iff Kind == Move
	CraftInv InventoryLocation // valid iff Kind == Craft
}

func writeWordSpace(s *wire.Serializer, word string) {
	s.WriteBytes([]byte(word))
	s.WriteBytes([]byte(" "))
}

func EncodeInventoryAction(v InventoryAction, s *wire.Serializer) error {
	switch v.Kind {
	case InventoryActionMove:
		if v.ToI != nil {
			writeWordSpace(s, "Move")
		} else {
			writeWordSpace(s, "MoveSomewhere")
		}
		writeWordSpace(s, strconv.FormatUint(uint64(v.Count), 10))
		if err := EncodeInventoryLocation(v.FromInv, s); err != nil {
			return err
		}
		s.WriteBytes([]byte(" "))
		writeWordSpace(s, v.FromList)
		writeWordSpace(s, strconv.FormatInt(int64(v.FromI), 10))
		if err := EncodeInventoryLocation(v.ToInv, s); err != nil {
			return err
		}
		s.WriteBytes([]byte(" "))
		s.WriteBytes([]byte(v.ToList))
		if v.ToI != nil {
			s.WriteBytes([]byte(" "))
			s.WriteBytes([]byte(strconv.FormatInt(int64(*v.ToI), 10)))
		}
		return nil
	case InventoryActionCraft:
		writeWordSpace(s, "Craft")
		writeWordSpace(s, strconv.FormatUint(uint64(v.Count), 10))
		if err := EncodeInventoryLocation(v.CraftInv, s); err != nil {
			return err
		}
		s.WriteBytes([]byte(" "))
		return nil
	case InventoryActionDrop:
		writeWordSpace(s, "Drop")
		writeWordSpace(s, strconv.FormatUint(uint64(v.Count), 10))
		if err := EncodeInventoryLocation(v.FromInv, s); err != nil {
			return err
		}
		s.WriteBytes([]byte(" "))
		writeWordSpace(s, v.FromList)
		s.WriteBytes([]byte(strconv.FormatInt(int64(v.FromI), 10)))
		return nil
	default:
		return wire.Errorf(wire.KindCodec, "inventory_action", "invalid kind %d", v.Kind)
	}
}

func parseS16Word(d *wire.Deserializer) (int16, error) {
	word, err := d.ReadWord()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(word, 10, 16)
	if err != nil {
		return 0, wire.Errorf(wire.KindCodec, "inventory_action", "bad integer %q", word)
	}
	return int16(n), nil
}

func parseU16Word(d *wire.Deserializer) (uint16, error) {
	word, err := d.ReadWord()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(word, 10, 16)
	if err != nil {
		return 0, wire.Errorf(wire.KindCodec, "inventory_action", "bad integer %q", word)
	}
	return uint16(n), nil
}

func DecodeInventoryAction(d *wire.Deserializer) (InventoryAction, error) {
	var v InventoryAction
	word, err := d.ReadWord()
	if err != nil {
		return v, err
	}
	switch word {
	case "Move", "MoveSomewhere":
		v.Kind = InventoryActionMove
		if v.Count, err = parseU16Word(d); err != nil {
			return v, err
		}
		if v.FromInv, err = DecodeInventoryLocation(d); err != nil {
			return v, err
		}
		if v.FromList, err = d.ReadWord(); err != nil {
			return v, err
		}
		if v.FromI, err = parseS16Word(d); err != nil {
			return v, err
		}
		if v.ToInv, err = DecodeInventoryLocation(d); err != nil {
			return v, err
		}
		if v.ToList, err = d.ReadWord(); err != nil {
			return v, err
		}
		if word == "Move" {
			toI, err := parseS16Word(d)
			if err != nil {
				return v, err
			}
			v.ToI = &toI
		}
		return v, nil
	case "Drop":
		v.Kind = InventoryActionDrop
		if v.Count, err = parseU16Word(d); err != nil {
			return v, err
		}
		if v.FromInv, err = DecodeInventoryLocation(d); err != nil {
			return v, err
		}
		if v.FromList, err = d.ReadWord(); err != nil {
			return v, err
		}
		if v.FromI, err = parseS16Word(d); err != nil {
			return v, err
		}
		return v, nil
	case "Craft":
		v.Kind = InventoryActionCraft
		if v.Count, err = parseU16Word(d); err != nil {
			return v, err
		}
		if v.CraftInv, err = DecodeInventoryLocation(d); err != nil {
			return v, err
		}
		return v, nil
	default:
		return v, wire.Errorf(wire.KindCodec, "inventory_action", "invalid inventory action kind %q", word)
	}
}
