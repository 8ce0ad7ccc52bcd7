// Package peer implements the per-peer runtime: sequence number lift,
// reliable sender/receiver, split sender/receiver, channel, and the
// peer state machine (spec.md §4.3–§4.7).
package peer

// RelativeDistance computes the signed delta of b relative to a on the
// wrapping 16-bit wire, choosing the representative in (-32768, 32768]
// (spec.md §3 "Sequence number").
func RelativeDistance(a, b uint16) int64 {
	d := int64(b - a) // wraps modulo 65536 via uint16 subtraction
	d = int64(uint16(d))
	if d <= 0x8000 {
		return d
	}
	return d - 0x10000
}

// RelToAbs lifts a 16-bit wire seqnum to the 64-bit stream position
// nearest to base (spec.md §3, §9 "sequence number lift").
func RelToAbs(base uint64, seqnum uint16) uint64 {
	delta := RelativeDistance(uint16(base), seqnum)
	return uint64(int64(base) + delta)
}
