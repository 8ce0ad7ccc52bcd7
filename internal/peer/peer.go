package peer

import (
	"context"
	"time"

	"github.com/kawogi/luanti-go-proto/internal/log"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// INEXISTENT_PEER_ID_GRACE per spec.md §4.7: window after a peer is
// first seen during which a sender-peer-id of NONE is still accepted.
const InexistentPeerIDGrace = 20 * time.Second

// MailboxCapacity bounds each of a peer's queues. An inbound command
// that finds ToController full fails the peer (it sends Disconnect);
// a full FromControl makes internal/conn's Send return an error.
const MailboxCapacity = 256

// State is the peer-level connection state machine (spec.md §4.7).
type State int

const (
	StateFresh State = iota
	StateAssigned
	StateRunning
	StateDisconnected
)

// HelloSniffer inspects a just-decoded command's raw payload and, if it
// is a Hello, returns the updated protocol context to adopt. Kept as a
// callback so this package never imports the command package (command
// depends on peer for ChannelID, not the other way around).
type HelloSniffer func(payload []byte, currentSend, currentRecv wire.ProtocolContext) (send, recv wire.ProtocolContext, isHello bool)

// InboundDatagram is one UDP payload handed to a peer by the demux,
// already stripped of the outer packet header.
type InboundDatagram struct {
	Channel ChannelID
	Body    wire.PacketBody
}

// OutboundCommand is a request from the controller to send an
// already-serialized command payload.
type OutboundCommand struct {
	Channel   ChannelID
	Reliable  bool
	Payload   []byte
}

// OutboundDatagram is a fully framed packet ready for the socket demux
// to write, tagged with whether it should jump the outbound queue.
type OutboundDatagram struct {
	Data     []byte
	Priority bool
}

// CommandEvent is a decoded command payload (or a terminal error)
// delivered to the controller.
type CommandEvent struct {
	Payload []byte
	Err     error
}

// Peer owns three channels, the local/remote peer ids, and the queues
// connecting it to its controller and to the socket demux (spec.md
// §4.7). One goroutine runs its select loop.
type Peer struct {
	remoteIsServer bool
	sniffHello     HelloSniffer

	channels [3]*Channel

	localID  ID
	remoteID ID
	state    State
	created  time.Time

	FromSocket   chan InboundDatagram
	FromControl  chan OutboundCommand
	ToController chan CommandEvent
	ToSocket     chan OutboundDatagram
}

// NewPeer creates a peer. remoteIsServer is true when running on the
// client side (the remote end is the server); false on the server side.
// localID should be IDServer on the server side, IDNone until assigned
// on the client side.
func NewPeer(remoteIsServer bool, localID ID, sniffHello HelloSniffer) *Peer {
	p := &Peer{
		remoteIsServer: remoteIsServer,
		sniffHello:     sniffHello,
		localID:        localID,
		state:          StateFresh,
		created:        time.Now(),
		FromSocket:     make(chan InboundDatagram, MailboxCapacity),
		FromControl:    make(chan OutboundCommand, MailboxCapacity),
		ToController:   make(chan CommandEvent, MailboxCapacity),
		ToSocket:       make(chan OutboundDatagram, MailboxCapacity),
	}
	for i := range p.channels {
		p.channels[i] = NewChannel(remoteIsServer)
	}
	return p
}

// State reports the peer's current state-machine value.
func (p *Peer) State() State { return p.state }

// RemoteID reports the peer id currently assigned to the remote end.
func (p *Peer) RemoteID() ID { return p.remoteID }

// SendContext reports the protocol context currently used to encode
// outbound traffic on the default channel (spec.md §3); internal/conn
// reads this to build the serializer for each outgoing command.
func (p *Peer) SendContext() wire.ProtocolContext { return p.channels[ChannelDefault].SendContext }

// RecvContext is the receive-side analogue of SendContext.
func (p *Peer) RecvContext() wire.ProtocolContext { return p.channels[ChannelDefault].RecvContext }

// Run executes the peer's select loop until ctx is canceled, the
// controller channel closes, or a fatal protocol error occurs.
func (p *Peer) Run(ctx context.Context) {
	defer close(p.ToController)
	for {
		timeout, hasTimeout := p.earliestTimeout()
		var timerC <-chan time.Time
		if hasTimeout {
			timer := time.NewTimer(time.Until(timeout))
			defer timer.Stop()
			timerC = timer.C
		}
		select {
		case <-ctx.Done():
			p.state = StateDisconnected
			return
		case dg, ok := <-p.FromSocket:
			if !ok {
				p.state = StateDisconnected
				return
			}
			if err := p.handleDatagram(time.Now(), dg); err != nil {
				p.fail(err)
				return
			}
		case cmd, ok := <-p.FromControl:
			if !ok {
				p.disconnectGracefully()
				return
			}
			p.send(cmd)
		case <-timerC:
			// fallthrough to flush loop below
		}
		p.flushOutbound(time.Now())
		if p.state == StateDisconnected {
			return
		}
	}
}

func (p *Peer) earliestTimeout() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, c := range p.channels {
		t, ok := c.NextTimeout()
		if !ok {
			continue
		}
		if t.IsZero() {
			return time.Now(), true
		}
		if !found || t.Before(earliest) {
			earliest = t
			found = true
		}
	}
	return earliest, found
}

func (p *Peer) flushOutbound(now time.Time) {
	for chID, c := range p.channels {
		for {
			body, ok := c.NextSend(now)
			if !ok {
				break
			}
			p.emit(ChannelID(chID), body, false)
		}
	}
}

func (p *Peer) emit(ch ChannelID, body wire.PacketBody, priority bool) {
	pkt := wire.Packet{SenderPeerID: uint16(p.localID), Channel: uint8(ch), Body: body}
	s := wire.NewSerializer(p.channels[ch].SendContext)
	if err := wire.EncodePacket(pkt, s); err != nil {
		log.Warn("peer: failed to encode outbound packet: %v", err)
		return
	}
	p.ToSocket <- OutboundDatagram{Data: s.Bytes(), Priority: priority}
}

// handleDatagram processes one inbound packet body on its channel,
// running the handshake/ack/hello logic spec.md §4.7 describes.
func (p *Peer) handleDatagram(now time.Time, dg InboundDatagram) error {
	if p.state == StateFresh {
		p.onFirstPacket()
	}
	ch := p.channels[dg.Channel]
	payloads, controls, err := ch.Process(now, dg.Body)
	if err != nil {
		return err
	}
	if dg.Body.Reliable {
		p.sendAck(dg.Channel, dg.Body.Wrapped.Seqnum)
	}
	for _, ctrl := range controls {
		if err := p.handleControl(dg.Channel, ctrl); err != nil {
			return err
		}
	}
	for _, payload := range payloads {
		if p.sniffHello != nil {
			if send, recv, isHello := p.sniffHello(payload, ch.SendContext, ch.RecvContext); isHello {
				for _, c := range p.channels {
					c.UpdateContext(recv, send)
				}
			}
		}
		if p.state == StateAssigned {
			p.state = StateRunning
		}
		select {
		case p.ToController <- CommandEvent{Payload: payload}:
		default:
			return wire.Errorf(wire.KindTransport, "peer", "controller queue overflow")
		}
	}
	return nil
}

func (p *Peer) onFirstPacket() {
	if !p.remoteIsServer {
		// Server side: first packet from a fresh source assigns a
		// random remote id and starts retransmitting SetPeerId.
		p.remoteID = RandomID()
		p.state = StateAssigned
		p.channels[ChannelDefault].SendInner(true, wire.InnerBody{
			Kind:    wire.InnerControl,
			Control: wire.ControlBody{Kind: wire.ControlSetPeerID, PeerID: uint16(p.remoteID)},
		})
	}
}

func (p *Peer) handleControl(ch ChannelID, ctrl wire.ControlBody) error {
	switch ctrl.Kind {
	case wire.ControlSetPeerID:
		if p.remoteIsServer && p.state == StateFresh {
			p.localID = ID(ctrl.PeerID)
			p.state = StateAssigned
		}
	case wire.ControlPing:
		// no-op: a Ping carries nothing to act on
	case wire.ControlDisconnect:
		p.state = StateDisconnected
		return errDisconnected
	}
	return nil
}

var errDisconnected = &disconnectSignal{}

type disconnectSignal struct{}

func (*disconnectSignal) Error() string { return "peer disconnected cleanly" }

func (p *Peer) sendAck(ch ChannelID, seqnum uint16) {
	body := wire.PacketBody{Reliable: false, Inner: wire.InnerBody{
		Kind:    wire.InnerControl,
		Control: wire.ControlBody{Kind: wire.ControlAck, Seqnum: seqnum},
	}}
	p.emit(ch, body, true)
}

func (p *Peer) send(cmd OutboundCommand) {
	p.channels[cmd.Channel].Send(cmd.Reliable, cmd.Payload)
}

func (p *Peer) fail(err error) {
	if err == errDisconnected {
		p.state = StateDisconnected
		return
	}
	log.Warn("peer: fatal error, disconnecting: %v", err)
	p.emit(ChannelDefault, wire.PacketBody{Reliable: false, Inner: wire.InnerBody{
		Kind:    wire.InnerControl,
		Control: wire.ControlBody{Kind: wire.ControlDisconnect},
	}}, true)
	p.state = StateDisconnected
	select {
	case p.ToController <- CommandEvent{Err: err}:
	default:
	}
}

func (p *Peer) disconnectGracefully() {
	p.emit(ChannelDefault, wire.PacketBody{Reliable: false, Inner: wire.InnerBody{
		Kind:    wire.InnerControl,
		Control: wire.ControlBody{Kind: wire.ControlDisconnect},
	}}, true)
	p.state = StateDisconnected
}

// AcceptsSourcePeerID reports whether sourceID is a valid sender id for
// this peer at time now: either the previously assigned remote id, or
// IDNone within the grace window (spec.md §4.7 "Accept null probe").
func (p *Peer) AcceptsSourcePeerID(sourceID ID, now time.Time) bool {
	if sourceID == p.remoteID && p.remoteID != IDNone {
		return true
	}
	if sourceID == IDNone {
		return now.Sub(p.created) <= InexistentPeerIDGrace
	}
	return false
}
