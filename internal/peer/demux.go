package peer

import (
	"context"
	"net"
	"sync"

	"github.com/kawogi/luanti-go-proto/internal/log"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// Demux owns the UDP endpoint and routes datagrams to the right peer,
// creating new peer entries on first-seen source (server mode) or
// explicit Connect (client mode) (spec.md §4.8).
type Demux struct {
	conn           *net.UDPConn
	remoteIsServer bool
	sniffHello     HelloSniffer

	mu    sync.Mutex
	peers map[string]*peerEntry

	NewPeers chan AcceptedPeer
}

// AcceptedPeer pairs a freshly created server-side peer with the
// remote address it was first seen from, so a connection facade can
// report RemoteAddr without reaching into the demux's internal table.
type AcceptedPeer struct {
	Peer *Peer
	Addr *net.UDPAddr
}

type peerEntry struct {
	peer *Peer
	addr *net.UDPAddr
	cancel context.CancelFunc
}

// NewDemux binds conn and returns a demux ready to Run.
func NewDemux(conn *net.UDPConn, remoteIsServer bool, sniffHello HelloSniffer) *Demux {
	return &Demux{
		conn:           conn,
		remoteIsServer: remoteIsServer,
		sniffHello:     sniffHello,
		peers:          make(map[string]*peerEntry),
		NewPeers:       make(chan AcceptedPeer, 16),
	}
}

// Run reads datagrams until ctx is canceled or the socket errors.
func (d *Demux) Run(ctx context.Context) {
	buf := make([]byte, wire.MaxDatagramSize)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		n, addr, err := d.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn("demux: read error: %v", err)
			continue
		}
		data := make([]byte, n)
		copy(data, buf[:n])
		d.handleDatagram(ctx, addr, data)
	}
}

func (d *Demux) handleDatagram(ctx context.Context, addr *net.UDPAddr, data []byte) {
	// Peek the header without committing to a channel/context yet;
	// the packet proper is re-decoded per-peer context in handleDatagram.
	probe := wire.NewDeserializer(wire.ProtocolContext{}, data)
	if _, err := probe.Take(wire.PacketHeaderSize); err != nil {
		log.Warn("demux: short packet from %s", addr)
		return
	}

	d.mu.Lock()
	entry, ok := d.peers[addr.String()]
	if !ok {
		if d.remoteIsServer {
			// Client mode: peers exist only through Connect.
			d.mu.Unlock()
			log.Warn("demux: dropping datagram from unknown source %s", addr)
			return
		}
		p := NewPeer(d.remoteIsServer, IDServer, d.sniffHello)
		pctx, cancel := context.WithCancel(ctx)
		entry = &peerEntry{peer: p, addr: addr, cancel: cancel}
		d.peers[addr.String()] = entry
		d.mu.Unlock()
		go d.runPeer(pctx, entry)
		d.NewPeers <- AcceptedPeer{Peer: p, Addr: addr}
	} else {
		d.mu.Unlock()
	}

	pkt, err := wire.DecodePacket(entry.peer.channels[0].RecvContext, data)
	if err != nil {
		log.Warn("demux: failed to decode packet from %s: %v", addr, err)
		return
	}
	entry.peer.FromSocket <- InboundDatagram{Channel: ChannelID(pkt.Channel), Body: pkt.Body}
}

func (d *Demux) runPeer(ctx context.Context, entry *peerEntry) {
	go func() {
		for dg := range entry.peer.ToSocket {
			if _, err := d.conn.WriteToUDP(dg.Data, entry.addr); err != nil {
				log.Warn("demux: write error to %s: %v", entry.addr, err)
			}
		}
	}()
	entry.peer.Run(ctx)
	d.mu.Lock()
	delete(d.peers, entry.addr.String())
	d.mu.Unlock()
}

// Connect creates a client-side peer targeting addr and starts its run
// loop; the caller drives the handshake by sending the null probe.
func (d *Demux) Connect(ctx context.Context, addr *net.UDPAddr) *Peer {
	p := NewPeer(true, IDNone, d.sniffHello)
	pctx, cancel := context.WithCancel(ctx)
	entry := &peerEntry{peer: p, addr: addr, cancel: cancel}
	d.mu.Lock()
	d.peers[addr.String()] = entry
	d.mu.Unlock()
	go d.runPeer(pctx, entry)
	return p
}
