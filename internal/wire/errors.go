package wire

import "fmt"

// Kind is the design-level error taxonomy from the protocol's error
// handling design: transport, framing, codec, protocol.
type Kind int

const (
	// KindTransport covers socket/controller closure and peer disconnects.
	KindTransport Kind = iota
	// KindFraming covers invalid protocol id/channel/packet kind/control type.
	KindFraming
	// KindCodec covers premature EOF, bad discriminants, bad UTF, decompression failure.
	KindCodec
	// KindProtocol covers handshake/peer-id/grace-window violations.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindFraming:
		return "framing"
	case KindCodec:
		return "codec"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// ProtoError is a structured error carrying one of the design-level
// Kinds, so callers (notably Connection.recv) can discriminate on
// failure kind without string matching.
type ProtoError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *ProtoError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *ProtoError) Unwrap() error { return e.Err }

// Errorf builds a ProtoError of the given kind.
func Errorf(kind Kind, op string, format string, args ...interface{}) error {
	return &ProtoError{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap wraps an existing error with a Kind and operation label.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProtoError{Kind: kind, Op: op, Err: err}
}
