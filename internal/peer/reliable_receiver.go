package peer

import (
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// ReliableReceiver buffers out-of-order reliable bodies and drains them
// strictly in order (spec.md §4.4). It is not safe for concurrent use;
// the owning Channel serializes access.
type ReliableReceiver struct {
	nextSeqnum uint64
	buffer     map[uint64]wire.InnerBody
}

// NewReliableReceiver creates a receiver starting at the wire's initial seqnum.
func NewReliableReceiver() *ReliableReceiver {
	return &ReliableReceiver{
		nextSeqnum: uint64(wire.SeqnumInitial),
		buffer:     make(map[uint64]wire.InnerBody),
	}
}

// Push lifts body's 16-bit seqnum relative to the next-expected
// position and buffers it, first-write-wins, dropping anything already
// delivered.
func (r *ReliableReceiver) Push(body wire.ReliableBody) {
	seqnum := RelToAbs(r.nextSeqnum, body.Seqnum)
	if seqnum < r.nextSeqnum {
		return // already delivered; ignore
	}
	if _, exists := r.buffer[seqnum]; !exists {
		r.buffer[seqnum] = body.Inner
	}
}

// Pop returns the next inner body if the next-expected position is
// buffered, advancing the stream position. Callers must drain Pop
// until it returns false after each Push, per the in-order invariant.
func (r *ReliableReceiver) Pop() (wire.InnerBody, bool) {
	body, ok := r.buffer[r.nextSeqnum]
	if !ok {
		return wire.InnerBody{}, false
	}
	delete(r.buffer, r.nextSeqnum)
	r.nextSeqnum++
	return body, true
}
