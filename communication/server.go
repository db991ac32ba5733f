package communication

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/rs/zerolog/log"
)

// Server serves one emulator bridge over TCP. Each read from the peer is one
// record and gets exactly one reply before the next read.
type Server struct {
	addr      string
	responder Responder
}

func NewServer(addr string, responder Responder) *Server {
	return &Server{addr: addr, responder: responder}
}

// ListenAndServe accepts exactly one peer on the server address and serves it
// until the peer disconnects or ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	defer ln.Close()
	stopListener := context.AfterFunc(ctx, func() { ln.Close() })
	defer stopListener()

	log.Info().Msgf("waiting for a connection on %s", ln.Addr())
	conn, err := ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to accept connection: %w", err)
	}
	ln.Close() // One peer only
	log.Info().Msgf("connected to %s", conn.RemoteAddr())

	stopConn := context.AfterFunc(ctx, func() { conn.Close() })
	defer stopConn()

	err = s.Serve(conn)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Serve runs the request/response loop on conn and closes it when done. A
// closed peer ends the loop without error.
func (s *Server) Serve(conn net.Conn) error {
	defer conn.Close()

	buf := make([]byte, BufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			reply := s.responder.Respond(string(buf[:n]))
			if _, werr := io.WriteString(conn, reply); werr != nil {
				return fmt.Errorf("failed to write response: %w", werr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				log.Info().Msg("connection closed by peer")
				return nil
			}
			return fmt.Errorf("failed to read record: %w", err)
		}
		if n == 0 {
			return nil
		}
	}
}
