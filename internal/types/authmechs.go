package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// AuthMech is one bit of the AuthMechsBitset Hello advertises.
type AuthMech uint32

const (
	AuthMechLegacyPassword AuthMech = 1 << 0
	AuthMechSRP            AuthMech = 1 << 1
	AuthMechFirstSRP       AuthMech = 1 << 2
)

// AuthMechsBitset is a plain u32 bitset of AuthMech flags.
type AuthMechsBitset uint32

func EncodeAuthMechsBitset(v AuthMechsBitset, s *wire.Serializer) error {
	s.WriteU32(uint32(v))
	return nil
}

func DecodeAuthMechsBitset(d *wire.Deserializer) (AuthMechsBitset, error) {
	v, err := d.ReadU32()
	return AuthMechsBitset(v), err
}

// Has reports whether mech is set in the bitset.
func (v AuthMechsBitset) Has(mech AuthMech) bool {
	return uint32(v)&uint32(mech) != 0
}
