// Package udp implements internal/transport.Transport over a UDP socket,
// framing each datagram as one protocol message.
package udp

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/transport"
)

const maxDatagramSize = 65507

// pollInterval bounds how long a blocking read waits before checking
// ctx again, since net.PacketConn has no context-aware read.
const pollInterval = 200 * time.Millisecond

// Endpoint wraps a *net.UDPAddr so it satisfies transport.Endpoint and
// can be used as a map key (net.UDPAddr is not itself comparable, so
// this wraps the canonical string form).
type Endpoint struct {
	addr *net.UDPAddr
	key  string
}

// String returns the canonical "host:port" form of the endpoint.
func (e Endpoint) String() string { return e.key }

func newEndpoint(addr *net.UDPAddr) Endpoint {
	return Endpoint{addr: addr, key: addr.String()}
}

// Transport is a net.PacketConn-backed realization of transport.Transport.
type Transport struct {
	conn *net.UDPConn
}

// Listen binds a UDP socket on the given port (0 picks an ephemeral port)
// and returns a ready-to-use Transport.
func Listen(port int) (*Transport, error) {
	addr := &net.UDPAddr{Port: port}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("udp: listen on port %d: %w", port, err)
	}
	return &Transport{conn: conn}, nil
}

// Dial connects a UDP socket to a remote host:port, for client use.
func Dial(hostport string) (*Transport, error) {
	remote, err := net.ResolveUDPAddr("udp", hostport)
	if err != nil {
		return nil, fmt.Errorf("udp: resolve %s: %w", hostport, err)
	}
	conn, err := net.DialUDP("udp", nil, remote)
	if err != nil {
		return nil, fmt.Errorf("udp: dial %s: %w", hostport, err)
	}
	return &Transport{conn: conn}, nil
}

// LocalPort returns the port this transport is bound to, for startup
// announcement.
func (t *Transport) LocalPort() int {
	if addr, ok := t.conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.Port
	}
	return 0
}

// ReceiveFrom blocks for the next inbound datagram, polling ctx
// cancellation at pollInterval since UDP reads are not natively
// context-aware.
func (t *Transport) ReceiveFrom(ctx context.Context) (transport.Endpoint, string, error) {
	buf := make([]byte, maxDatagramSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		t.conn.SetReadDeadline(time.Now().Add(pollInterval))
		n, addr, err := t.conn.ReadFromUDP(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return nil, "", fmt.Errorf("udp: read: %w", err)
		}
		return newEndpoint(addr), string(buf[:n]), nil
	}
}

// SendTo writes body to the given endpoint. The endpoint must be one
// returned by this Transport's ReceiveFrom, or — for a connected client
// socket — any Endpoint value (the connected peer is used instead).
func (t *Transport) SendTo(to transport.Endpoint, body string) error {
	if ep, ok := to.(Endpoint); ok && ep.addr != nil {
		_, err := t.conn.WriteToUDP([]byte(body), ep.addr)
		return err
	}
	_, err := t.conn.Write([]byte(body))
	return err
}

// Close releases the socket.
func (t *Transport) Close() error { return t.conn.Close() }
