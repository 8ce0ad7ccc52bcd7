package conn

import (
	"context"
	"net"

	"github.com/kawogi/luanti-go-proto/internal/command"
	"github.com/kawogi/luanti-go-proto/internal/peer"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// Client dials a server and produces ClientConns (spec.md §6.3's
// client-side symmetric counterpart to Server/ServerConn).
type Client struct {
	sock  *net.UDPConn
	demux *peer.Demux
}

// Dial opens a local UDP socket (an ephemeral port) and starts routing
// inbound datagrams. Call Connect, once or repeatedly, to establish a
// peer against a given server address; Run must drive the socket loop
// in its own goroutine for either to make progress.
func Dial() (*Client, error) {
	sock, err := net.ListenUDP("udp", &net.UDPAddr{})
	if err != nil {
		return nil, wire.Wrap(wire.KindTransport, "conn.dial", err)
	}
	demux := peer.NewDemux(sock, true, clientHelloSniffer)
	return &Client{sock: sock, demux: demux}, nil
}

// Run drives the underlying socket demux until ctx is canceled.
func (c *Client) Run(ctx context.Context) {
	c.demux.Run(ctx)
}

// Close releases the underlying socket.
func (c *Client) Close() error {
	return c.sock.Close()
}

// Connect creates a peer targeting addr, sends the null probe that
// solicits a SetPeerId (spec.md §8 scenario 1), and returns a
// ClientConn ready for Init/Hello exchange.
func (c *Client) Connect(ctx context.Context, addr string) (*ClientConn, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, wire.Wrap(wire.KindTransport, "conn.connect", err)
	}
	p := c.demux.Connect(ctx, udpAddr)
	select {
	case p.FromControl <- peer.OutboundCommand{Channel: peer.ChannelDefault, Reliable: false, Payload: nil}:
	case <-ctx.Done():
		return nil, wire.Wrap(wire.KindTransport, "conn.connect", ctx.Err())
	}
	return &ClientConn{peer: p}, nil
}

// ClientConn is the client side of one duplex command stream: send
// ToServerCommand, receive ToClientCommand.
type ClientConn struct {
	peer *peer.Peer
}

// Send serializes cmd and enqueues it on its registered channel with
// its registered default reliability.
func (c *ClientConn) Send(cmd command.ToServerCommand) error {
	ch, ok := command.ToServerChannel(cmd.Tag)
	if !ok {
		return wire.Errorf(wire.KindProtocol, "conn.send", "unregistered ToServer tag 0x%02x", cmd.Tag)
	}
	reliable, _ := command.ToServerReliable(cmd.Tag)
	s := wire.NewSerializer(c.peer.SendContext())
	if err := command.EncodeToServerCommand(cmd, s); err != nil {
		return wire.Wrap(wire.KindCodec, "conn.send", err)
	}
	select {
	case c.peer.FromControl <- peer.OutboundCommand{Channel: ch, Reliable: reliable, Payload: s.Bytes()}:
		return nil
	default:
		return wire.Errorf(wire.KindTransport, "conn.send", "send queue full")
	}
}

// Recv blocks for the next decoded ToClientCommand, or returns an
// error describing why the connection ended.
func (c *ClientConn) Recv() (command.ToClientCommand, error) {
	event, ok := <-c.peer.ToController
	if !ok {
		return command.ToClientCommand{}, wire.Errorf(wire.KindTransport, "conn.recv", "connection closed")
	}
	if event.Err != nil {
		return command.ToClientCommand{}, event.Err
	}
	d := wire.NewDeserializer(c.peer.RecvContext(), event.Payload)
	return command.DecodeToClientCommand(d)
}
