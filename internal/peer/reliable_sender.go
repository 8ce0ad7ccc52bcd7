package peer

import (
	"time"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// Resend timing defaults (spec.md §9 Open Question: "conservative
// defaults... validated against a reference server").
const (
	InitialResendTimeout = 500 * time.Millisecond
	MaxResendTimeout     = 8 * time.Second
	MaxInFlight          = 64
)

type envelope struct {
	seqnum      uint64
	body        wire.InnerBody
	firstSentAt time.Time
	lastSentAt  time.Time
	sent        bool
	retries     int
}

// ReliableSender assigns sequential seqnums to outgoing bodies and
// retransmits unacked envelopes on a growing timeout (spec.md §4.3).
type ReliableSender struct {
	nextSeqnum uint64
	unacked    []*envelope
}

// NewReliableSender creates a sender starting at the wire's initial seqnum.
func NewReliableSender() *ReliableSender {
	return &ReliableSender{nextSeqnum: uint64(wire.SeqnumInitial)}
}

// Push assigns the next seqnum to body and appends it to the unacked
// deque; it will be emitted on the next eligible Pop.
func (s *ReliableSender) Push(body wire.InnerBody) {
	s.unacked = append(s.unacked, &envelope{seqnum: s.nextSeqnum, body: body})
	s.nextSeqnum++
}

// Pop returns the next envelope ready to (re)transmit at now: either
// never sent, or whose resend timeout has elapsed. Envelopes are
// considered in seqnum (insertion) order.
func (s *ReliableSender) Pop(now time.Time) (wire.PacketBody, bool) {
	for _, e := range s.unacked {
		if !e.sent {
			e.sent = true
			e.firstSentAt = now
			e.lastSentAt = now
			return s.frame(e), true
		}
		timeout := resendTimeout(e.retries)
		if !e.lastSentAt.Add(timeout).After(now) {
			e.lastSentAt = now
			e.retries++
			return s.frame(e), true
		}
	}
	return wire.PacketBody{}, false
}

func (s *ReliableSender) frame(e *envelope) wire.PacketBody {
	return wire.PacketBody{
		Reliable: true,
		Wrapped:  wire.ReliableBody{Seqnum: uint16(e.seqnum), Inner: e.body},
	}
}

func resendTimeout(retries int) time.Duration {
	t := InitialResendTimeout
	for i := 0; i < retries; i++ {
		t *= 2
		if t >= MaxResendTimeout {
			return MaxResendTimeout
		}
	}
	return t
}

// ProcessAck removes the envelope whose lifted seqnum matches ack,
// translated relative to nextSeqnum. Unknown seqnums are ignored.
func (s *ReliableSender) ProcessAck(ack uint16) {
	target := RelToAbs(s.nextSeqnum, ack)
	for i, e := range s.unacked {
		if e.seqnum == target {
			s.unacked = append(s.unacked[:i], s.unacked[i+1:]...)
			return
		}
	}
}

// NextTimeout returns the earliest lastSentAt+timeout across unacked,
// already-sent envelopes, or zero-value/false if none are outstanding.
func (s *ReliableSender) NextTimeout() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, e := range s.unacked {
		if !e.sent {
			return time.Time{}, true // ready to send immediately
		}
		due := e.lastSentAt.Add(resendTimeout(e.retries))
		if !found || due.Before(earliest) {
			earliest = due
			found = true
		}
	}
	return earliest, found
}

// InFlight reports how many envelopes are unacked.
func (s *ReliableSender) InFlight() int { return len(s.unacked) }
