// Package network bridges the game engine to websocket clients.
//
// Each connection gets a Session owning its own game.Engine. All engines share
// one scheduler, so every game callback runs on the same logical thread.
package network

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/fruit-catcher/engine"
	"github.com/lixenwraith/fruit-catcher/game"
)

var (
	// ErrServerFull is reported to clients connecting past MaxSessions
	ErrServerFull = errors.New("session limit reached")

	// ErrServerClosed is reported to clients connecting after Close
	ErrServerClosed = errors.New("server closed")
)

// Server accepts websocket connections and runs one game per connection
type Server struct {
	cfg      *Config
	sched    engine.Scheduler
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	closed   bool

	// Cached registry pointers
	active      *atomic.Int64
	accepted    *atomic.Int64
	rejected    *atomic.Int64
	messagesIn  *atomic.Int64
	messagesOut *atomic.Int64
	dropped     *atomic.Int64
	failed      *atomic.Int64
}

// NewServer creates a bridge whose engines run on sched
// Nil config fields fall back to DefaultConfig
func NewServer(sched engine.Scheduler, cfg *Config) (*Server, error) {
	if sched == nil {
		return nil, game.ErrNilScheduler
	}

	def := DefaultConfig()
	if cfg == nil {
		cfg = def
	}
	if cfg.Codec == nil {
		cfg.Codec = def.Codec
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	if cfg.Metrics == nil {
		cfg.Metrics = def.Metrics
	}
	if cfg.SendQueueSize <= 0 {
		cfg.SendQueueSize = def.SendQueueSize
	}
	if cfg.PingInterval <= 0 || cfg.PongTimeout <= 0 {
		cfg.PingInterval, cfg.PongTimeout = def.PingInterval, def.PongTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	reg := cfg.Metrics
	return &Server{
		cfg:   cfg,
		sched: sched,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Pose clients are served from arbitrary local pages
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions:    make(map[uuid.UUID]*Session),
		active:      reg.Ints.Get("ws.sessions"),
		accepted:    reg.Ints.Get("ws.accepted"),
		rejected:    reg.Ints.Get("ws.rejected"),
		messagesIn:  reg.Ints.Get("ws.messages_in"),
		messagesOut: reg.Ints.Get("ws.messages_out"),
		dropped:     reg.Ints.Get("ws.dropped"),
		failed:      reg.Ints.Get("ws.errors"),
	}, nil
}

// Handler routes /ws to the bridge and /metrics to the registry dump
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWS)
	mux.HandleFunc("/metrics", s.serveMetrics)
	return mux
}

// ServeWS upgrades the request and runs the session until the connection ends
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.cfg.Logger.Printf("upgrade: %v", err)
		return
	}

	sess, err := newSession(s, conn)
	if err == nil {
		err = s.register(sess)
	}
	if err != nil {
		s.rejected.Add(1)
		s.cfg.Logger.Printf("reject %s: %v", r.RemoteAddr, err)
		msg := websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error())
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.cfg.WriteTimeout))
		conn.Close()
		return
	}

	s.cfg.Logger.Printf("session %s connected from %s", sess.ID, r.RemoteAddr)
	sess.run()
}

// Sessions returns the number of connected sessions
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close disconnects every session and refuses new ones
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	open := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		open = append(open, sess)
	}
	s.mu.Unlock()

	for _, sess := range open {
		sess.Close()
	}
}

func (s *Server) register(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrServerClosed
	}
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		return ErrServerFull
	}
	s.sessions[sess.ID] = sess
	s.active.Store(int64(len(s.sessions)))
	s.accepted.Add(1)
	return nil
}

func (s *Server) unregister(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; ok {
		delete(s.sessions, sess.ID)
		s.active.Store(int64(len(s.sessions)))
	}
}

func (s *Server) serveMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.cfg.Metrics.Snapshot()); err != nil {
		s.cfg.Logger.Printf("metrics: %v", err)
	}
}
