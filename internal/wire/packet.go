package wire

// Wire-format constants (spec.md §6.1, §6.2).
const (
	ProtocolID = 0x4f457403

	ChannelCount = 3

	PacketHeaderSize   = 7
	ReliableHeaderSize = 3
	SplitHeaderSize    = 7

	MaxPacketSize       = 512
	MaxOriginalBodySize = MaxPacketSize - PacketHeaderSize - ReliableHeaderSize // 502
	MaxSplitBodySize    = MaxOriginalBodySize - SplitHeaderSize                // 495

	MaxDatagramSize = 65536

	SeqnumInitial = 65500
)

// BodyType discriminates a packet's top-level body kind.
type BodyType uint8

const (
	BodyControl  BodyType = 0
	BodyOriginal BodyType = 1
	BodySplit    BodyType = 2
	BodyReliable BodyType = 3
)

// ControlKind discriminates a control body's subtype.
type ControlKind uint8

const (
	ControlAck       ControlKind = 0
	ControlSetPeerID ControlKind = 1
	ControlPing      ControlKind = 2
	ControlDisconnect ControlKind = 3
)

// ControlBody is one of Ack(seqnum) / SetPeerId(peer_id) / Ping / Disconnect.
type ControlBody struct {
	Kind   ControlKind
	Seqnum uint16 // valid iff Kind == ControlAck
	PeerID uint16 // valid iff Kind == ControlSetPeerID
}

// OriginalBody carries at most one complete command's raw bytes (the
// command codec itself lives in internal/command; wire stays
// byte-oriented so it never needs to import the command package).
type OriginalBody struct {
	// CommandPayload is empty for the "null probe" used to solicit a
	// peer-id assignment.
	CommandPayload []byte
}

// SplitBody is one fragment of an oversized command.
type SplitBody struct {
	Seqnum     uint16
	ChunkCount uint16
	ChunkNum   uint16
	ChunkData  []byte
}

// InnerKind discriminates an InnerBody's subtype.
type InnerKind uint8

const (
	InnerControl  InnerKind = 0
	InnerOriginal InnerKind = 1
	InnerSplit    InnerKind = 2
)

// InnerBody is the payload carried either directly (BodyOriginal/
// BodyControl/BodySplit at the top level) or wrapped in a ReliableBody.
type InnerBody struct {
	Kind     InnerKind
	Control  ControlBody
	Original OriginalBody
	Split    SplitBody
}

// ReliableBody wraps an InnerBody with a sequence number requiring
// acknowledgement.
type ReliableBody struct {
	Seqnum uint16
	Inner  InnerBody
}

// PacketBody is the packet's top-level payload: either a bare inner
// body or one wrapped reliably.
type PacketBody struct {
	Reliable bool
	Inner    InnerBody    // valid iff !Reliable
	Wrapped  ReliableBody // valid iff Reliable
}

// Packet is a full wire datagram (spec.md §6.1).
type Packet struct {
	SenderPeerID uint16
	Channel      uint8
	Body         PacketBody
}

// EncodeInnerBody writes an InnerBody's type tag and payload.
func EncodeInnerBody(b InnerBody, s *Serializer) error {
	s.WriteU8(uint8(b.Kind))
	switch b.Kind {
	case InnerControl:
		return EncodeControlBody(b.Control, s)
	case InnerOriginal:
		s.WriteBytes(b.Original.CommandPayload)
		return nil
	case InnerSplit:
		return EncodeSplitBody(b.Split, s)
	default:
		return Errorf(KindFraming, "inner_body", "invalid inner body kind %d", b.Kind)
	}
}

// DecodeInnerBody reads an InnerBody's type tag and payload. d must
// already be bounded to exactly this inner body's bytes (e.g. sliced
// out of the packet by the caller), since Original bodies consume all
// remaining bytes as the command payload.
func DecodeInnerBody(d *Deserializer) (InnerBody, error) {
	kind, err := d.ReadU8()
	if err != nil {
		return InnerBody{}, err
	}
	switch InnerKind(kind) {
	case InnerControl:
		cb, err := DecodeControlBody(d)
		return InnerBody{Kind: InnerControl, Control: cb}, err
	case InnerOriginal:
		payload := d.PeekAll()
		_, _ = d.Take(len(payload))
		return InnerBody{Kind: InnerOriginal, Original: OriginalBody{CommandPayload: payload}}, nil
	case InnerSplit:
		sb, err := DecodeSplitBody(d)
		return InnerBody{Kind: InnerSplit, Split: sb}, err
	default:
		return InnerBody{}, Errorf(KindFraming, "inner_body", "invalid inner body kind %d", kind)
	}
}

// EncodeControlBody writes a control body's kind tag and payload.
func EncodeControlBody(b ControlBody, s *Serializer) error {
	s.WriteU8(uint8(b.Kind))
	switch b.Kind {
	case ControlAck:
		s.WriteU16(b.Seqnum)
	case ControlSetPeerID:
		s.WriteU16(b.PeerID)
	case ControlPing, ControlDisconnect:
		// no payload
	default:
		return Errorf(KindFraming, "control_body", "invalid control kind %d", b.Kind)
	}
	return nil
}

// DecodeControlBody reads a control body's kind tag and payload.
func DecodeControlBody(d *Deserializer) (ControlBody, error) {
	kind, err := d.ReadU8()
	if err != nil {
		return ControlBody{}, err
	}
	cb := ControlBody{Kind: ControlKind(kind)}
	switch cb.Kind {
	case ControlAck:
		cb.Seqnum, err = d.ReadU16()
	case ControlSetPeerID:
		cb.PeerID, err = d.ReadU16()
	case ControlPing, ControlDisconnect:
		// no payload
	default:
		return ControlBody{}, Errorf(KindFraming, "control_body", "invalid control kind %d", kind)
	}
	return cb, err
}

// EncodeSplitBody writes a split fragment header and its chunk data.
func EncodeSplitBody(b SplitBody, s *Serializer) error {
	s.WriteU16(b.Seqnum)
	s.WriteU16(b.ChunkCount)
	s.WriteU16(b.ChunkNum)
	s.WriteBytes(b.ChunkData)
	return nil
}

// DecodeSplitBody reads a split fragment header; d must be bounded to
// exactly this fragment so the remaining bytes are the chunk data.
func DecodeSplitBody(d *Deserializer) (SplitBody, error) {
	var b SplitBody
	var err error
	if b.Seqnum, err = d.ReadU16(); err != nil {
		return b, err
	}
	if b.ChunkCount, err = d.ReadU16(); err != nil {
		return b, err
	}
	if b.ChunkNum, err = d.ReadU16(); err != nil {
		return b, err
	}
	b.ChunkData = d.PeekAll()
	_, _ = d.Take(len(b.ChunkData))
	return b, nil
}

// EncodePacket writes the full wire frame: header, then body (with the
// reliable seqnum+inner-type prefix when Body.Reliable).
func EncodePacket(p Packet, s *Serializer) error {
	s.WriteU32(ProtocolID)
	s.WriteU16(p.SenderPeerID)
	s.WriteU8(p.Channel)
	if p.Body.Reliable {
		s.WriteU8(uint8(BodyReliable))
		s.WriteU16(p.Body.Wrapped.Seqnum)
		return EncodeInnerBody(p.Body.Wrapped.Inner, s)
	}
	s.WriteU8(uint8(innerKindToBodyType(p.Body.Inner.Kind)))
	return encodeBareInner(p.Body.Inner, s)
}

func innerKindToBodyType(k InnerKind) BodyType {
	switch k {
	case InnerControl:
		return BodyControl
	case InnerOriginal:
		return BodyOriginal
	case InnerSplit:
		return BodySplit
	default:
		panic("wire: invalid inner kind")
	}
}

// encodeBareInner writes an inner body's payload without its own type
// tag (the outer body_type byte already disambiguates it at top level).
func encodeBareInner(b InnerBody, s *Serializer) error {
	switch b.Kind {
	case InnerControl:
		return EncodeControlBody(b.Control, s)
	case InnerOriginal:
		s.WriteBytes(b.Original.CommandPayload)
		return nil
	case InnerSplit:
		return EncodeSplitBody(b.Split, s)
	default:
		return Errorf(KindFraming, "packet", "invalid inner kind %d", b.Kind)
	}
}

// DecodePacket reads a full wire frame from raw, validating the
// protocol id and channel.
func DecodePacket(ctx ProtocolContext, raw []byte) (Packet, error) {
	d := NewDeserializer(ctx, raw)
	protoID, err := d.ReadU32()
	if err != nil {
		return Packet{}, err
	}
	if protoID != ProtocolID {
		return Packet{}, Errorf(KindFraming, "packet", "bad protocol id 0x%08x", protoID)
	}
	var p Packet
	if p.SenderPeerID, err = d.ReadU16(); err != nil {
		return Packet{}, err
	}
	if p.Channel, err = d.ReadU8(); err != nil {
		return Packet{}, err
	}
	if p.Channel >= ChannelCount {
		return Packet{}, Errorf(KindFraming, "packet", "invalid channel %d", p.Channel)
	}
	bodyType, err := d.ReadU8()
	if err != nil {
		return Packet{}, err
	}
	switch BodyType(bodyType) {
	case BodyReliable:
		seqnum, err := d.ReadU16()
		if err != nil {
			return Packet{}, err
		}
		innerKind, err := d.ReadU8()
		if err != nil {
			return Packet{}, err
		}
		inner, err := decodeBareInner(InnerKind(innerKind), d)
		if err != nil {
			return Packet{}, err
		}
		p.Body = PacketBody{Reliable: true, Wrapped: ReliableBody{Seqnum: seqnum, Inner: inner}}
	case BodyControl, BodyOriginal, BodySplit:
		inner, err := decodeBareInner(bodyTypeToInnerKind(BodyType(bodyType)), d)
		if err != nil {
			return Packet{}, err
		}
		p.Body = PacketBody{Reliable: false, Inner: inner}
	default:
		return Packet{}, Errorf(KindFraming, "packet", "invalid body type %d", bodyType)
	}
	return p, nil
}

func bodyTypeToInnerKind(t BodyType) InnerKind {
	switch t {
	case BodyControl:
		return InnerControl
	case BodyOriginal:
		return InnerOriginal
	case BodySplit:
		return InnerSplit
	default:
		panic("wire: invalid body type")
	}
}

func decodeBareInner(kind InnerKind, d *Deserializer) (InnerBody, error) {
	switch kind {
	case InnerControl:
		cb, err := DecodeControlBody(d)
		return InnerBody{Kind: InnerControl, Control: cb}, err
	case InnerOriginal:
		payload := d.PeekAll()
		_, _ = d.Take(len(payload))
		return InnerBody{Kind: InnerOriginal, Original: OriginalBody{CommandPayload: payload}}, nil
	case InnerSplit:
		sb, err := DecodeSplitBody(d)
		return InnerBody{Kind: InnerSplit, Split: sb}, err
	default:
		return InnerBody{}, Errorf(KindFraming, "packet", "invalid inner kind %d", kind)
	}
}
