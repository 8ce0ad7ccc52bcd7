// Package command implements the closed ToServer/ToClient command
// taxonomy: a tabular registry of (tag, channel, reliability, codec)
// per variant, consumed by one generic encode/decode dispatch pair
// per direction, mirroring original_source/luanti-protocol's
// `define_protocol!` table (wire/command.rs).
package command

import (
	"github.com/kawogi/luanti-go-proto/internal/peer"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// ToServerTag is a ToServer command's stable wire tag.
type ToServerTag uint16

// ToClientTag is a ToClient command's stable wire tag.
type ToClientTag uint16

// toServerEntry describes one ToServer variant's wire properties and codec.
type toServerEntry struct {
	channel  peer.ChannelID
	reliable bool
	encode   func(ToServerCommand, *wire.Serializer) error
	decode   func(*wire.Deserializer) (ToServerCommand, error)
}

// toClientEntry describes one ToClient variant's wire properties and codec.
type toClientEntry struct {
	channel  peer.ChannelID
	reliable bool
	encode   func(ToClientCommand, *wire.Serializer) error
	decode   func(*wire.Deserializer) (ToClientCommand, error)
}

var toServerRegistry = map[ToServerTag]toServerEntry{}
var toClientRegistry = map[ToClientTag]toClientEntry{}

func registerToServer(tag ToServerTag, ch peer.ChannelID, reliable bool, enc func(ToServerCommand, *wire.Serializer) error, dec func(*wire.Deserializer) (ToServerCommand, error)) {
	toServerRegistry[tag] = toServerEntry{channel: ch, reliable: reliable, encode: enc, decode: dec}
}

func registerToClient(tag ToClientTag, ch peer.ChannelID, reliable bool, enc func(ToClientCommand, *wire.Serializer) error, dec func(*wire.Deserializer) (ToClientCommand, error)) {
	toClientRegistry[tag] = toClientEntry{channel: ch, reliable: reliable, encode: enc, decode: dec}
}

// ToServerChannel reports a ToServer command's default channel, or
// false if tag is unregistered.
func ToServerChannel(tag ToServerTag) (peer.ChannelID, bool) {
	e, ok := toServerRegistry[tag]
	return e.channel, ok
}

// ToServerReliable reports a ToServer command's default reliability
// flag, or false if tag is unregistered.
func ToServerReliable(tag ToServerTag) (bool, bool) {
	e, ok := toServerRegistry[tag]
	return e.reliable, ok
}

// ToClientChannel reports a ToClient command's default channel, or
// false if tag is unregistered.
func ToClientChannel(tag ToClientTag) (peer.ChannelID, bool) {
	e, ok := toClientRegistry[tag]
	return e.channel, ok
}

// ToClientReliable reports a ToClient command's default reliability
// flag, or false if tag is unregistered.
func ToClientReliable(tag ToClientTag) (bool, bool) {
	e, ok := toClientRegistry[tag]
	return e.reliable, ok
}

// EncodeToServerCommand writes cmd.Tag then its payload via the
// registered codec. Unknown tags are a programmer error (the Tag
// field only ever holds a value this package defined), not a wire
// condition, so this panics rather than returning an error.
func EncodeToServerCommand(cmd ToServerCommand, s *wire.Serializer) error {
	entry, ok := toServerRegistry[cmd.Tag]
	if !ok {
		panic("command: unregistered ToServer tag")
	}
	s.WriteU16(uint16(cmd.Tag))
	return entry.encode(cmd, s)
}

// DecodeToServerCommand reads a u16 tag then dispatches to the
// registered decoder. An unrecognized tag is fatal per spec.md §4.7
// ("unknown tag for the current direction is a fatal BadPacketId").
func DecodeToServerCommand(d *wire.Deserializer) (ToServerCommand, error) {
	tagValue, err := d.ReadU16()
	if err != nil {
		return ToServerCommand{}, err
	}
	tag := ToServerTag(tagValue)
	entry, ok := toServerRegistry[tag]
	if !ok {
		return ToServerCommand{}, wire.Errorf(wire.KindProtocol, "to_server_command", "unknown ToServer tag 0x%02x", tagValue)
	}
	cmd, err := entry.decode(d)
	if err != nil {
		return ToServerCommand{}, err
	}
	cmd.Tag = tag
	return cmd, nil
}

// EncodeToClientCommand writes cmd.Tag then its payload via the
// registered codec.
func EncodeToClientCommand(cmd ToClientCommand, s *wire.Serializer) error {
	entry, ok := toClientRegistry[cmd.Tag]
	if !ok {
		panic("command: unregistered ToClient tag")
	}
	s.WriteU16(uint16(cmd.Tag))
	return entry.encode(cmd, s)
}

// DecodeToClientCommand reads a u16 tag then dispatches to the
// registered decoder. An unrecognized tag is fatal per spec.md §4.7.
func DecodeToClientCommand(d *wire.Deserializer) (ToClientCommand, error) {
	tagValue, err := d.ReadU16()
	if err != nil {
		return ToClientCommand{}, err
	}
	tag := ToClientTag(tagValue)
	entry, ok := toClientRegistry[tag]
	if !ok {
		return ToClientCommand{}, wire.Errorf(wire.KindProtocol, "to_client_command", "unknown ToClient tag 0x%02x", tagValue)
	}
	cmd, err := entry.decode(d)
	if err != nil {
		return ToClientCommand{}, err
	}
	cmd.Tag = tag
	return cmd, nil
}
