package conn

import (
	"context"
	"net"

	"github.com/kawogi/luanti-go-proto/internal/command"
	"github.com/kawogi/luanti-go-proto/internal/peer"
	"github.com/kawogi/luanti-go-proto/internal/types"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// Server is the socket-level acceptor (spec.md §6.3): it owns one UDP
// endpoint and hands out a ServerConn per newly seen remote address.
type Server struct {
	sock  *net.UDPConn
	demux *peer.Demux
}

// Listen binds addr and starts routing inbound datagrams. Call Accept
// in a loop (and Run, in a separate goroutine) to drive it.
func Listen(addr string) (*Server, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, wire.Wrap(wire.KindTransport, "conn.listen", err)
	}
	sock, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, wire.Wrap(wire.KindTransport, "conn.listen", err)
	}
	demux := peer.NewDemux(sock, false, serverHelloSniffer)
	return &Server{sock: sock, demux: demux}, nil
}

// Run drives the underlying socket demux until ctx is canceled. Must
// run concurrently with Accept.
func (s *Server) Run(ctx context.Context) {
	s.demux.Run(ctx)
}

// Accept blocks until a new remote peer is first seen, or ctx is
// canceled.
func (s *Server) Accept(ctx context.Context) (*ServerConn, error) {
	select {
	case <-ctx.Done():
		return nil, wire.Wrap(wire.KindTransport, "conn.accept", ctx.Err())
	case accepted, ok := <-s.demux.NewPeers:
		if !ok {
			return nil, wire.Errorf(wire.KindTransport, "conn.accept", "listener closed")
		}
		return &ServerConn{peer: accepted.Peer, addr: accepted.Addr}, nil
	}
}

// Close releases the underlying socket. In-flight ServerConns stop
// receiving traffic once their peer's Run loop observes ctx.Done.
func (s *Server) Close() error {
	return s.sock.Close()
}

// ServerConn is one connected player's duplex command stream: send
// ToClientCommand, receive ToServerCommand (spec.md §6.3).
type ServerConn struct {
	peer *peer.Peer
	addr *net.UDPAddr
}

// RemoteAddr reports the UDP address this connection was accepted from.
func (c *ServerConn) RemoteAddr() *net.UDPAddr { return c.addr }

// Send serializes cmd and enqueues it on its registered channel with
// its registered default reliability.
func (c *ServerConn) Send(cmd command.ToClientCommand) error {
	ch, ok := command.ToClientChannel(cmd.Tag)
	if !ok {
		return wire.Errorf(wire.KindProtocol, "conn.send", "unregistered ToClient tag 0x%02x", cmd.Tag)
	}
	reliable, _ := command.ToClientReliable(cmd.Tag)
	s := wire.NewSerializer(c.peer.SendContext())
	if err := command.EncodeToClientCommand(cmd, s); err != nil {
		return wire.Wrap(wire.KindCodec, "conn.send", err)
	}
	select {
	case c.peer.FromControl <- peer.OutboundCommand{Channel: ch, Reliable: reliable, Payload: s.Bytes()}:
		return nil
	default:
		return wire.Errorf(wire.KindTransport, "conn.send", "send queue full")
	}
}

// SendAccessDenied is a specialized helper for the common
// deny-and-disconnect flow (spec.md §6.3 "specialized helpers may be
// provided").
func (c *ServerConn) SendAccessDenied(code types.AccessDeniedCode) error {
	msg := code.Message
	if msg == "" {
		msg = code.DefaultMessage()
	}
	return c.Send(command.ToClientCommand{
		Tag: command.TagAccessDenied,
		AccessDenied: command.AccessDeniedPayload{
			Code:      code,
			Reason:    msg,
			Reconnect: code.Reconnect,
		},
	})
}

// Recv blocks for the next decoded ToServerCommand, or returns an
// error describing why the connection ended.
func (c *ServerConn) Recv() (command.ToServerCommand, error) {
	event, ok := <-c.peer.ToController
	if !ok {
		return command.ToServerCommand{}, wire.Errorf(wire.KindTransport, "conn.recv", "connection closed")
	}
	if event.Err != nil {
		return command.ToServerCommand{}, event.Err
	}
	d := wire.NewDeserializer(c.peer.RecvContext(), event.Payload)
	return command.DecodeToServerCommand(d)
}
