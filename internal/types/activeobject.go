package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// AddedObject describes one active object as it enters a client's view
// (original_source/luanti-protocol/src/types.rs). GenericInitData's
// deep per-object-type payload (position, appearance, animation state,
// ...) is game logic, out of scope here, so InitData is carried as an
// opaque Wrapped32 blob rather than decoded field by field.
type AddedObject struct {
	ID       uint16
	Type     uint8
	InitData []byte
}

func EncodeAddedObject(v AddedObject, s *wire.Serializer) error {
	s.WriteU16(v.ID)
	s.WriteU8(v.Type)
	return wire.EncodeWrapped32(v.InitData, func(b []byte, s *wire.Serializer) error {
		s.WriteBytes(b)
		return nil
	}, s)
}

func DecodeAddedObject(d *wire.Deserializer) (AddedObject, error) {
	var v AddedObject
	var err error
	if v.ID, err = d.ReadU16(); err != nil {
		return v, err
	}
	if v.Type, err = d.ReadU8(); err != nil {
		return v, err
	}
	if v.InitData, err = wire.DecodeWrapped32(d, func(d *wire.Deserializer) ([]byte, error) { return d.Take(d.Remaining()) }); err != nil {
		return v, err
	}
	return v, nil
}

// ActiveObjectMessage is one per-object update batch within
// ActiveObjectMessages. Like AddedObject's init data, the per-kind
// ActiveObjectCommand payload (set-properties, animation, bone
// position, ...) is game logic and is kept as an opaque Wrapped16 blob.
type ActiveObjectMessage struct {
	ID   uint16
	Data []byte
}

func EncodeActiveObjectMessage(v ActiveObjectMessage, s *wire.Serializer) error {
	s.WriteU16(v.ID)
	return wire.EncodeWrapped16(v.Data, func(b []byte, s *wire.Serializer) error {
		s.WriteBytes(b)
		return nil
	}, s)
}

func DecodeActiveObjectMessage(d *wire.Deserializer) (ActiveObjectMessage, error) {
	var v ActiveObjectMessage
	var err error
	if v.ID, err = d.ReadU16(); err != nil {
		return v, err
	}
	if v.Data, err = wire.DecodeWrapped16(d, func(d *wire.Deserializer) ([]byte, error) { return d.Take(d.Remaining()) }); err != nil {
		return v, err
	}
	return v, nil
}
