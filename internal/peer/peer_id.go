package peer

import "math/rand"

// ID is a 16-bit opaque peer identifier (spec.md §3).
type ID uint16

// Reserved peer ids.
const (
	IDNone   ID = 0
	IDServer ID = 1
)

// RandomID samples a server-assigned id in [2, 0xFFFF]. Collisions
// with ids already assigned to other peers are not checked, here or by
// its caller; two peers can end up with the same id.
func RandomID() ID {
	return ID(2 + rand.Intn(0xFFFF-2+1))
}
