package conn

import (
	"github.com/kawogi/luanti-go-proto/internal/command"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// serverHelloSniffer watches payloads arriving at a server-side peer
// for ToServer::Init and adopts the negotiated protocol/serialization
// version, mirroring spec.md's scenario 2 (Hello exchange). Kept here
// rather than in internal/peer, which must not import internal/command.
func serverHelloSniffer(payload []byte, currentSend, currentRecv wire.ProtocolContext) (send, recv wire.ProtocolContext, isHello bool) {
	d := wire.NewDeserializer(currentRecv, payload)
	tagValue, err := d.ReadU16()
	if err != nil || command.ToServerTag(tagValue) != command.TagInit {
		return currentSend, currentRecv, false
	}
	if _, err := d.ReadU8(); err != nil { // serialization_ver_max
		return currentSend, currentRecv, false
	}
	if _, err := d.ReadU16(); err != nil { // supported_compr_modes
		return currentSend, currentRecv, false
	}
	if _, err := d.ReadU16(); err != nil { // min_net_proto_version
		return currentSend, currentRecv, false
	}
	maxNetProtoVersion, err := d.ReadU16()
	if err != nil {
		return currentSend, currentRecv, false
	}
	negotiated := negotiateProtocolVersion(maxNetProtoVersion)
	send = wire.ProtocolContext{Direction: wire.ToClient, ProtocolVersion: negotiated, SerFmt: wire.SerFmtHighestWrite}
	recv = wire.ProtocolContext{Direction: wire.ToServer, ProtocolVersion: negotiated, SerFmt: wire.SerFmtHighestRead}
	return send, recv, true
}

// clientHelloSniffer watches payloads arriving at a client-side peer
// for ToClient::Hello and adopts the server-dictated protocol context.
func clientHelloSniffer(payload []byte, currentSend, currentRecv wire.ProtocolContext) (send, recv wire.ProtocolContext, isHello bool) {
	d := wire.NewDeserializer(currentRecv, payload)
	tagValue, err := d.ReadU16()
	if err != nil || command.ToClientTag(tagValue) != command.TagHello {
		return currentSend, currentRecv, false
	}
	serializationVer, err := d.ReadU8()
	if err != nil {
		return currentSend, currentRecv, false
	}
	if _, err := d.ReadU16(); err != nil { // compression_mode
		return currentSend, currentRecv, false
	}
	protoVer, err := d.ReadU16()
	if err != nil {
		return currentSend, currentRecv, false
	}
	send = wire.ProtocolContext{Direction: wire.ToServer, ProtocolVersion: protoVer, SerFmt: serializationVer}
	recv = wire.ProtocolContext{Direction: wire.ToClient, ProtocolVersion: protoVer, SerFmt: serializationVer}
	return send, recv, true
}

// negotiateProtocolVersion clamps a client's advertised maximum to the
// version this module speaks. The source crate leaves the exact
// negotiation policy to the embedding application (spec.md names only
// the fields, not the negotiation algorithm); this module picks the
// simplest sound rule, recorded in DESIGN.md as an Open Question
// decision.
func negotiateProtocolVersion(clientMax uint16) uint16 {
	if clientMax < wire.LatestProtocolVersion {
		return clientMax
	}
	return wire.LatestProtocolVersion
}
