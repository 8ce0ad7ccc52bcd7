package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// ItemStackMetadata is an ordered list of key/value string pairs
// attached to an ItemStack. The wire framing follows spec.md's
// control-byte scheme: `\x01` starts the region, `\x02` separates a
// pair's key from its value, `\x03` separates one pair from the next.
// This differs deliberately from original_source's JSON-string escape
// helpers.
type ItemStackMetadata struct {
	StringVars []KV
}

// KV is one metadata key/value pair.
type KV struct {
	Key, Value string
}

const (
	metaStart   = '\x01'
	metaKVDelim = '\x02'
	metaPairDelim = '\x03'
)

// EncodeItemStackMetadata writes the metadata blob; the start byte is
// written even when there are no pairs (the ItemStack encoder omits
// this part entirely in that case and does not call it).
func EncodeItemStackMetadata(v ItemStackMetadata, s *wire.Serializer) error {
	var b strings.Builder
	b.WriteByte(metaStart)
	for i, kv := range v.StringVars {
		if strings.IndexByte(kv.Key, 0) >= 0 || strings.IndexByte(kv.Value, 0) >= 0 {
			return wire.Errorf(wire.KindCodec, "item_stack_metadata", "embedded NUL in key/value")
		}
		if i > 0 {
			b.WriteByte(metaPairDelim)
		}
		b.WriteString(kv.Key)
		b.WriteByte(metaKVDelim)
		b.WriteString(kv.Value)
	}
	s.WriteBytes([]byte(b.String()))
	return nil
}

// DecodeItemStackMetadata parses a metadata blob already isolated as
// its own token (the trailing field of an Item line).
func DecodeItemStackMetadata(raw string) (ItemStackMetadata, error) {
	var v ItemStackMetadata
	if raw == "" {
		return v, nil
	}
	if raw[0] != metaStart {
		return v, wire.Errorf(wire.KindCodec, "item_stack_metadata", "missing start byte")
	}
	body := raw[1:]
	if body == "" {
		return v, nil
	}
	for _, pair := range strings.Split(body, string(metaPairDelim)) {
		if pair == "" {
			continue
		}
		idx := strings.IndexByte(pair, metaKVDelim)
		if idx < 0 {
			return v, wire.Errorf(wire.KindCodec, "item_stack_metadata", "pair missing kv delimiter")
		}
		v.StringVars = append(v.StringVars, KV{Key: pair[:idx], Value: pair[idx+1:]})
	}
	return v, nil
}

// ItemStack is a named, counted item occupying one inventory slot.
type ItemStack struct {
	Name     string
	Count    uint16
	Wear     uint16
	Metadata ItemStackMetadata
}

// writeItemStackLine appends the `Item ...` line (without trailing
// newline) to b, matching the original's variable-part-count scheme.
func writeItemStackLine(v ItemStack, b *strings.Builder) {
	b.WriteString("Item ")
	b.WriteString(v.Name)
	parts := 1
	if len(v.Metadata.StringVars) > 0 {
		parts = 4
	} else if v.Wear != 0 {
		parts = 3
	} else if v.Count != 1 {
		parts = 2
	}
	if parts >= 2 {
		fmt.Fprintf(b, " %d", v.Count)
	}
	if parts >= 3 {
		fmt.Fprintf(b, " %d", v.Wear)
	}
	if parts >= 4 {
		b.WriteByte(' ')
		meta := wire.NewSerializer(wire.ProtocolContext{})
		_ = EncodeItemStackMetadata(v.Metadata, meta)
		b.Write(meta.Bytes())
	}
}

func parseItemStackLine(line string) (ItemStack, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != "Item" {
		return ItemStack{}, wire.Errorf(wire.KindCodec, "item_stack", "invalid Item line")
	}
	v := ItemStack{Count: 1}
	if len(fields) < 2 {
		return v, wire.Errorf(wire.KindCodec, "item_stack", "Item line missing name")
	}
	v.Name = fields[1]
	if len(fields) >= 3 {
		count, err := strconv.ParseUint(fields[2], 10, 16)
		if err != nil {
			return v, wire.Wrap(wire.KindCodec, "item_stack", err)
		}
		v.Count = uint16(count)
	}
	if len(fields) >= 4 {
		wear, err := strconv.ParseUint(fields[3], 10, 16)
		if err != nil {
			return v, wire.Wrap(wire.KindCodec, "item_stack", err)
		}
		v.Wear = uint16(wear)
	}
	if len(fields) >= 5 {
		meta, err := DecodeItemStackMetadata(fields[4])
		if err != nil {
			return v, err
		}
		v.Metadata = meta
	}
	return v, nil
}

// ItemStackUpdateKind selects an inventory slot's update variant.
type ItemStackUpdateKind uint8

const (
	ItemStackUpdateEmpty ItemStackUpdateKind = iota
	ItemStackUpdateKeep
	ItemStackUpdateItem
)

// ItemStackUpdate is one line within an InventoryList's item sequence.
type ItemStackUpdate struct {
	Kind ItemStackUpdateKind
	Item ItemStack
}

// InventoryList is a single named list of item slots.
type InventoryList struct {
	Name  string
	Width uint32
	Items []ItemStackUpdate
}

func writeInventoryList(v InventoryList, b *strings.Builder) {
	fmt.Fprintf(b, "List %s %d\n", v.Name, len(v.Items))
	fmt.Fprintf(b, "Width %d\n", v.Width)
	for _, item := range v.Items {
		switch item.Kind {
		case ItemStackUpdateEmpty:
			b.WriteString("Empty\n")
		case ItemStackUpdateKeep:
			b.WriteString("Keep\n")
		case ItemStackUpdateItem:
			writeItemStackLine(item.Item, b)
			b.WriteByte('\n')
		}
	}
	b.WriteString("EndInventoryList\n")
}

// readInventoryListBody parses everything after the already-consumed
// `List <name> <count>` header line.
func readInventoryListBody(d *wire.Deserializer, name string) (InventoryList, error) {
	v := InventoryList{Name: name}
	for d.HasRemaining() {
		line, err := d.ReadLine()
		if err != nil {
			return v, err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "EndInventoryList", "end":
			return v, nil
		case "Width":
			if len(fields) < 2 {
				return v, wire.Errorf(wire.KindCodec, "inventory_list", "Width missing value")
			}
			width, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return v, wire.Wrap(wire.KindCodec, "inventory_list", err)
			}
			v.Width = uint32(width)
		case "Item":
			item, err := parseItemStackLine(line)
			if err != nil {
				return v, err
			}
			v.Items = append(v.Items, ItemStackUpdate{Kind: ItemStackUpdateItem, Item: item})
		case "Empty":
			v.Items = append(v.Items, ItemStackUpdate{Kind: ItemStackUpdateEmpty})
		case "Keep":
			v.Items = append(v.Items, ItemStackUpdate{Kind: ItemStackUpdateKeep})
		}
	}
	return v, wire.Errorf(wire.KindCodec, "inventory_list", "premature EOF")
}

// InventoryEntryKind selects whether an Inventory entry keeps an
// existing list untouched or replaces it wholesale.
type InventoryEntryKind uint8

const (
	InventoryEntryKeepList InventoryEntryKind = iota
	InventoryEntryUpdate
)

// InventoryEntry is one top-level line group of an Inventory.
type InventoryEntry struct {
	Kind     InventoryEntryKind
	ListName string // KeepList
	List     InventoryList
}

// Inventory is the line-oriented text format the Inventory command
// and node metadata carry (original_source/luanti-protocol/src/types.rs).
type Inventory struct {
	Entries []InventoryEntry
}

func EncodeInventory(v Inventory, s *wire.Serializer) error {
	var b strings.Builder
	for _, e := range v.Entries {
		switch e.Kind {
		case InventoryEntryKeepList:
			fmt.Fprintf(&b, "KeepList %s\n", e.ListName)
		case InventoryEntryUpdate:
			writeInventoryList(e.List, &b)
		}
	}
	b.WriteString("EndInventory\n")
	s.WriteBytes([]byte(b.String()))
	return nil
}

func DecodeInventory(d *wire.Deserializer) (Inventory, error) {
	var v Inventory
	for d.HasRemaining() {
		line, err := d.ReadLine()
		if err != nil {
			return v, err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "EndInventory", "End":
			return v, nil
		case "List":
			if len(fields) != 3 {
				return v, wire.Errorf(wire.KindCodec, "inventory", "broken List line %q", line)
			}
			list, err := readInventoryListBody(d, fields[1])
			if err != nil {
				return v, err
			}
			v.Entries = append(v.Entries, InventoryEntry{Kind: InventoryEntryUpdate, List: list})
		case "KeepList":
			if len(fields) < 2 {
				return v, wire.Errorf(wire.KindCodec, "inventory", "KeepList missing name")
			}
			v.Entries = append(v.Entries, InventoryEntry{Kind: InventoryEntryKeepList, ListName: fields[1]})
		}
	}
	return v, wire.Errorf(wire.KindCodec, "inventory", "premature EOF")
}
