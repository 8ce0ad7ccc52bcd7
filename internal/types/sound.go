package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// SimpleSoundSpec names a sound to play with gain/pitch/fade knobs
// (original_source/luanti-protocol/src/types.rs).
type SimpleSoundSpec struct {
	Name   string
	Gain   float32
	Pitch  float32
	Fade   float32
}

func EncodeSimpleSoundSpec(v SimpleSoundSpec, s *wire.Serializer) error {
	if err := wire.EncodeString(v.Name, s); err != nil {
		return err
	}
	s.WriteF32(v.Gain)
	s.WriteF32(v.Pitch)
	s.WriteF32(v.Fade)
	return nil
}

func DecodeSimpleSoundSpec(d *wire.Deserializer) (SimpleSoundSpec, error) {
	var v SimpleSoundSpec
	var err error
	if v.Name, err = wire.DecodeString(d); err != nil {
		return v, err
	}
	if v.Gain, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.Pitch, err = d.ReadF32(); err != nil {
		return v, err
	}
	if v.Fade, err = d.ReadF32(); err != nil {
		return v, err
	}
	return v, nil
}
