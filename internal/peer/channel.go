package peer

import (
	"time"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// Channel composes a split-sender, a reliable-sender, a split-receiver,
// and a reliable-receiver for one of the three channels a peer owns
// (spec.md §4.6). It is deliberately decoupled from command decoding:
// Process/Send operate on raw serialized command payloads, and the
// owning Peer hands those to internal/command.
type Channel struct {
	unreliableOut []wire.InnerBody

	reliableIn  *ReliableReceiver
	reliableOut *ReliableSender

	splitIn  *SplitReceiver
	splitOut *SplitSender

	RecvContext wire.ProtocolContext
	SendContext wire.ProtocolContext
}

// NewChannel creates a channel with contexts appropriate for a peer
// that has not yet observed a Hello.
func NewChannel(remoteIsServer bool) *Channel {
	return &Channel{
		reliableIn:  NewReliableReceiver(),
		reliableOut: NewReliableSender(),
		splitIn:     NewSplitReceiver(),
		splitOut:    NewSplitSender(),
		RecvContext: wire.LatestForReceive(remoteIsServer),
		SendContext: wire.LatestForSend(remoteIsServer),
	}
}

// UpdateContext overwrites both contexts, e.g. after observing a Hello.
func (c *Channel) UpdateContext(recv, send wire.ProtocolContext) {
	c.RecvContext = recv
	c.SendContext = send
}

// ReceivedAck feeds an observed Ack control body into the reliable sender.
func (c *Channel) ReceivedAck(seqnum uint16) {
	c.reliableOut.ProcessAck(seqnum)
}

// Process handles one packet body arriving on this channel, returning
// zero or more raw command payloads that became ready (either a direct
// Original payload or a fully reassembled Split group). Control bodies
// other than Ack are returned to the caller unprocessed via the second
// return slot so the owning Peer can act on Ping/Disconnect/SetPeerId.
func (c *Channel) Process(now time.Time, body wire.PacketBody) ([][]byte, []wire.ControlBody, error) {
	if body.Reliable {
		c.reliableIn.Push(body.Wrapped)
		var payloads [][]byte
		var controls []wire.ControlBody
		for {
			inner, ok := c.reliableIn.Pop()
			if !ok {
				break
			}
			p, ctrl, err := c.processInner(now, inner)
			if err != nil {
				return payloads, controls, err
			}
			payloads = append(payloads, p...)
			controls = append(controls, ctrl...)
		}
		return payloads, controls, nil
	}
	p, ctrl, err := c.processInner(now, body.Inner)
	return p, ctrl, err
}

func (c *Channel) processInner(now time.Time, inner wire.InnerBody) ([][]byte, []wire.ControlBody, error) {
	switch inner.Kind {
	case wire.InnerControl:
		if inner.Control.Kind == wire.ControlAck {
			c.ReceivedAck(inner.Control.Seqnum)
			return nil, nil, nil
		}
		return nil, []wire.ControlBody{inner.Control}, nil
	case wire.InnerOriginal:
		if len(inner.Original.CommandPayload) == 0 {
			return nil, nil, nil // null probe; nothing to decode
		}
		return [][]byte{inner.Original.CommandPayload}, nil, nil
	case wire.InnerSplit:
		assembled, err := c.splitIn.Push(now, inner.Split)
		if err != nil {
			return nil, nil, err
		}
		if assembled == nil {
			return nil, nil, nil
		}
		return [][]byte{assembled}, nil, nil
	default:
		return nil, nil, wire.Errorf(wire.KindFraming, "channel", "invalid inner kind %d", inner.Kind)
	}
}

// Send takes an already-serialized command payload and enqueues the
// resulting inner body/bodies, splitting if necessary.
func (c *Channel) Send(reliable bool, payload []byte) {
	for _, body := range c.splitOut.Push(payload) {
		c.SendInner(reliable, body)
	}
}

// SendInner enqueues a pre-built inner body directly (used for control
// bodies like Ack/SetPeerId/Ping/Disconnect, which never go through
// the split sender).
func (c *Channel) SendInner(reliable bool, body wire.InnerBody) {
	if reliable {
		c.reliableOut.Push(body)
	} else {
		c.unreliableOut = append(c.unreliableOut, body)
	}
}

// NextSend returns the next packet body ready to transmit: unreliable
// queue first, then a ready reliable envelope.
func (c *Channel) NextSend(now time.Time) (wire.PacketBody, bool) {
	if len(c.unreliableOut) > 0 {
		body := c.unreliableOut[0]
		c.unreliableOut = c.unreliableOut[1:]
		return wire.PacketBody{Reliable: false, Inner: body}, true
	}
	return c.reliableOut.Pop(now)
}

// NextTimeout reports the reliable sender's earliest pending deadline.
// Only meaningful after NextSend has been drained for this tick.
func (c *Channel) NextTimeout() (time.Time, bool) {
	return c.reliableOut.NextTimeout()
}
