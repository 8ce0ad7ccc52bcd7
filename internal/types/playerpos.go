package types

import (
	"math"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// PlayerPos is the player-position payload shared by ToServer::Playerpos
// and ToServer::Interact. On the wire, positions/speeds are fixed-point
// encoded (spec.md §6.1): "v3s32 = round(v3f·100); pitch and yaw as
// s32 = round(·100); fov as u8 = round(·80); wanted_range as u8."
type PlayerPos struct {
	Position    V3F
	Speed       V3F
	Pitch       float32
	Yaw         float32
	KeysPressed uint32
	Fov         float32
	WantedRange uint8
}

func fixedRound(v float32, scale float32) int32 {
	return int32(math.Round(float64(v * scale)))
}

func EncodePlayerPos(p PlayerPos, s *wire.Serializer) error {
	s.WriteI32(fixedRound(p.Position.X, 100))
	s.WriteI32(fixedRound(p.Position.Y, 100))
	s.WriteI32(fixedRound(p.Position.Z, 100))
	s.WriteI32(fixedRound(p.Speed.X, 100))
	s.WriteI32(fixedRound(p.Speed.Y, 100))
	s.WriteI32(fixedRound(p.Speed.Z, 100))
	s.WriteI32(fixedRound(p.Pitch, 100))
	s.WriteI32(fixedRound(p.Yaw, 100))
	s.WriteU32(p.KeysPressed)
	s.WriteU8(uint8(math.Round(float64(p.Fov * 80))))
	s.WriteU8(p.WantedRange)
	return nil
}

func DecodePlayerPos(d *wire.Deserializer) (PlayerPos, error) {
	var p PlayerPos
	readFixed := func() (float32, error) {
		v, err := d.ReadI32()
		return float32(v) / 100, err
	}
	var err error
	if p.Position.X, err = readFixed(); err != nil {
		return p, err
	}
	if p.Position.Y, err = readFixed(); err != nil {
		return p, err
	}
	if p.Position.Z, err = readFixed(); err != nil {
		return p, err
	}
	if p.Speed.X, err = readFixed(); err != nil {
		return p, err
	}
	if p.Speed.Y, err = readFixed(); err != nil {
		return p, err
	}
	if p.Speed.Z, err = readFixed(); err != nil {
		return p, err
	}
	if p.Pitch, err = readFixed(); err != nil {
		return p, err
	}
	if p.Yaw, err = readFixed(); err != nil {
		return p, err
	}
	if p.KeysPressed, err = d.ReadU32(); err != nil {
		return p, err
	}
	fov, err := d.ReadU8()
	if err != nil {
		return p, err
	}
	p.Fov = float32(fov) / 80
	if p.WantedRange, err = d.ReadU8(); err != nil {
		return p, err
	}
	return p, nil
}
