// Package transport moves telemetry frames over UDP. The sender packs one
// frame per datagram; the listener exposes received datagrams as a
// stream.ChunkSource so the same frame decoder serves sockets and log
// files alike.
package transport

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/psas-avionics/telempack/pkg/codec"
	"github.com/psas-avionics/telempack/pkg/stream"
)

// Sender transmits telemetry frames to a fixed destination.
type Sender struct {
	conn net.Conn
}

// NewSender connects a UDP socket to addr (host:port).
func NewSender(addr string) (*Sender, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, err
	}
	return &Sender{conn: conn}, nil
}

// SendMessage encodes data as one frame and sends it in a single datagram.
// The timestamp is masked to the header's 48-bit counter.
func (s *Sender) SendMessage(mt *codec.MessageType, timestamp uint64, data map[string]float64) error {
	body := mt.Encode(data)
	frame := append(codec.EncodeHeader(mt.FourCC, timestamp, uint16(len(body))), body...)
	_, err := s.conn.Write(frame)
	return err
}

// SendRaw sends already-framed bytes in a single datagram.
func (s *Sender) SendRaw(frame []byte) error {
	_, err := s.conn.Write(frame)
	return err
}

// Close releases the socket.
func (s *Sender) Close() error { return s.conn.Close() }

// Listener receives telemetry datagrams and hands them out as chunks.
type Listener struct {
	conn    *net.UDPConn
	timeout time.Duration
}

// Listen binds a UDP socket on addr (host:port). A non-zero timeout becomes
// the per-receive deadline; an elapsed deadline yields an empty chunk, the
// "no data within the provider's timeout" convention of stream.ChunkSource.
func Listen(addr string, timeout time.Duration) (*Listener, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, err
	}
	return &Listener{conn: conn, timeout: timeout}, nil
}

// ReadChunk returns the next datagram, up to max bytes. A timed-out receive
// returns an empty chunk with nil error; a closed socket returns io.EOF.
func (l *Listener) ReadChunk(max int) ([]byte, error) {
	if l.timeout > 0 {
		if err := l.conn.SetReadDeadline(time.Now().Add(l.timeout)); err != nil {
			return nil, err
		}
	}
	buf := make([]byte, max)
	n, _, err := l.conn.ReadFromUDP(buf)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, nil
		}
		if errors.Is(err, net.ErrClosed) {
			return nil, io.EOF
		}
		return nil, err
	}
	return buf[:n], nil
}

// LocalAddr returns the bound address, useful when listening on port 0.
func (l *Listener) LocalAddr() net.Addr { return l.conn.LocalAddr() }

// Close releases the socket; a blocked ReadChunk returns io.EOF.
func (l *Listener) Close() error { return l.conn.Close() }

var _ stream.ChunkSource = (*Listener)(nil)
