package communication

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WebSocketPath is where the bridge connects.
const WebSocketPath = "/ws"

// WebSocketServer serves bridges that speak WebSocket. Each message is one
// record and gets one text message back. Only one session runs at a time.
type WebSocketServer struct {
	addr      string
	responder Responder
	upgrader  websocket.Upgrader

	mu     sync.Mutex
	active bool
}

func NewWebSocketServer(addr string, responder Responder) *WebSocketServer {
	return &WebSocketServer{
		addr:      addr,
		responder: responder,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  BufferSize,
			WriteBufferSize: BufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // Local bridge only
			},
		},
	}
}

func (s *WebSocketServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(WebSocketPath, s.handleSession)
	return mux
}

// ListenAndServe serves sessions until ctx is cancelled.
func (s *WebSocketServer) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	stop := context.AfterFunc(ctx, func() { srv.Close() })
	defer stop()

	log.Info().Msgf("waiting for a websocket connection on ws://%s%s", s.addr, WebSocketPath)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("websocket server failed: %w", err)
}

func (s *WebSocketServer) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return false
	}
	s.active = true
	return true
}

func (s *WebSocketServer) release() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

func (s *WebSocketServer) handleSession(w http.ResponseWriter, r *http.Request) {
	if !s.acquire() {
		http.Error(w, "a session is already active", http.StatusConflict)
		return
	}
	defer s.release()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	log.Info().Msgf("websocket connected to %s", conn.RemoteAddr())

	conn.SetReadLimit(BufferSize)
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("websocket read failed")
			} else {
				log.Info().Msg("websocket closed by peer")
			}
			return
		}

		reply := s.responder.Respond(string(message))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			log.Error().Err(err).Msg("websocket write failed")
			return
		}
	}
}
