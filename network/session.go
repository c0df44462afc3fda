package network

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/fruit-catcher/core"
	"github.com/lixenwraith/fruit-catcher/game"
	"github.com/lixenwraith/fruit-catcher/input"
	"github.com/lixenwraith/fruit-catcher/parameter"
	"github.com/lixenwraith/fruit-catcher/protocol"
)

// ErrInvalidPose is returned for a pose x outside [0,1]
var ErrInvalidPose = errors.New("pose x out of range")

// Session is one websocket client and its game
type Session struct {
	ID uuid.UUID

	server *Server
	conn   *websocket.Conn
	codec  protocol.Codec
	engine *game.Engine

	// Read goroutine only
	pose *input.PoseClassifier

	// Scheduler thread only
	stateEvery int
	stateCount int

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(s *Server, conn *websocket.Conn) (*Session, error) {
	sess := &Session{
		ID:         uuid.New(),
		server:     s,
		conn:       conn,
		codec:      s.cfg.Codec,
		pose:       input.NewPoseClassifier(s.cfg.Mirror),
		stateEvery: s.cfg.stateEvery(),
		send:       make(chan []byte, s.cfg.SendQueueSize),
		done:       make(chan struct{}),
	}

	eng, err := game.New(s.sched, sess.hooks(),
		game.WithLogger(s.cfg.Logger),
		game.WithSharedMetrics(s.cfg.Metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("session engine: %w", err)
	}
	sess.engine = eng
	return sess, nil
}

// Engine returns the session's game
func (sess *Session) Engine() *game.Engine {
	return sess.engine
}

// Close stops the game and tears the connection down; safe to call repeatedly
func (sess *Session) Close() {
	sess.closeOnce.Do(func() {
		close(sess.done)
		sess.engine.Stop()
		sess.server.unregister(sess)
		sess.server.cfg.Logger.Printf("session %s closed", sess.ID)
	})
}

// run greets the client and blocks until the connection ends
func (sess *Session) run() {
	sess.emit(protocol.MsgWelcome, protocol.Welcome{
		SessionID: sess.ID.String(),
		TickHz:    parameter.TickHz,
		StateHz:   parameter.TickHz / sess.stateEvery,
		Codec:     sess.codec.Name(),
	})
	core.Go(sess.writePump)
	sess.readPump()
}

// hooks encodes engine notifications onto the send queue
func (sess *Session) hooks() game.Hooks {
	return game.Hooks{
		OnStateUpdate: func(snap game.Snapshot) {
			n := sess.stateCount
			sess.stateCount++
			if n%sess.stateEvery != 0 {
				return
			}
			sess.emit(protocol.MsgState, snap)
		},
		OnScoreChange: func(score, level int) {
			sess.emit(protocol.MsgScore, protocol.Score{Score: score, Level: level})
		},
		OnGameEnd: func(end game.GameEnd) {
			sess.stateCount = 0
			sess.emit(protocol.MsgEnd, protocol.End{
				Score:  end.Score,
				Level:  end.Level,
				Reason: string(end.Reason),
			})
		},
	}
}

// emit encodes and queues one frame
func (sess *Session) emit(t string, payload any) {
	frame, err := protocol.Encode(sess.codec, t, payload)
	if err != nil {
		sess.server.failed.Add(1)
		sess.server.cfg.Logger.Printf("session %s: %v", sess.ID, err)
		return
	}
	sess.enqueue(frame)
}

// enqueue never blocks; a client that cannot keep up is dropped
func (sess *Session) enqueue(frame []byte) {
	select {
	case <-sess.done:
		return
	default:
	}

	select {
	case sess.send <- frame:
	default:
		sess.server.dropped.Add(1)
		sess.server.cfg.Logger.Printf("session %s: send queue full, dropping client", sess.ID)
		sess.Close()
	}
}

// readPump decodes client frames and drives the engine
func (sess *Session) readPump() {
	defer sess.Close()

	cfg := sess.server.cfg
	if cfg.MaxMessageSize > 0 {
		sess.conn.SetReadLimit(cfg.MaxMessageSize)
	}
	_ = sess.conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
	sess.conn.SetPongHandler(func(string) error {
		return sess.conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
	})

	for {
		_, frame, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				cfg.Logger.Printf("session %s read: %v", sess.ID, err)
			}
			return
		}
		sess.server.messagesIn.Add(1)

		if err := sess.handle(frame); err != nil {
			sess.server.failed.Add(1)
			sess.emit(protocol.MsgError, protocol.Error{Message: err.Error()})
		}
	}
}

// handle routes one inbound envelope
func (sess *Session) handle(frame []byte) error {
	env, err := protocol.DecodeEnvelope(sess.codec, frame)
	if err != nil {
		return err
	}

	switch env.T {
	case protocol.MsgStart:
		cfg := game.Config{TimeLimit: parameter.DefaultTimeLimit}
		if len(env.P) > 0 {
			msg, err := protocol.DecodePayload[protocol.Start](sess.codec, env)
			if err != nil {
				return err
			}
			cfg.TimeLimit = msg.TimeLimit
		}
		if err := sess.engine.Start(cfg); err != nil {
			return err
		}
		sess.pose.Reset()
		return nil

	case protocol.MsgStop:
		sess.engine.Stop()
		return nil

	case protocol.MsgLane:
		msg, err := protocol.DecodePayload[protocol.Lane](sess.codec, env)
		if err != nil {
			return err
		}
		return sess.engine.SetBasketLane(msg.Lane)

	case protocol.MsgPose:
		msg, err := protocol.DecodePayload[protocol.Pose](sess.codec, env)
		if err != nil {
			return err
		}
		lane, ok := sess.pose.Classify(msg.X)
		if !ok {
			return fmt.Errorf("%w: %v", ErrInvalidPose, msg.X)
		}
		return sess.engine.SetBasketLane(lane)
	}

	return fmt.Errorf("%w: %q", protocol.ErrUnknownMessage, env.T)
}

// writePump flushes queued frames and keeps the connection alive with pings
// It owns closing the underlying connection
func (sess *Session) writePump() {
	cfg := sess.server.cfg
	ticker := time.NewTicker(cfg.PingInterval)
	defer func() {
		ticker.Stop()
		sess.conn.Close()
		sess.Close()
	}()

	msgType := websocket.TextMessage
	if sess.codec.Binary() {
		msgType = websocket.BinaryMessage
	}

	for {
		select {
		case frame := <-sess.send:
			_ = sess.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
			if err := sess.conn.WriteMessage(msgType, frame); err != nil {
				return
			}
			sess.server.messagesOut.Add(1)

		case <-sess.done:
			// Frames queued before the close still go out
			sess.flush(msgType)
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = sess.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(cfg.WriteTimeout))
			return

		case <-ticker.C:
			_ = sess.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
			if err := sess.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (sess *Session) flush(msgType int) {
	for {
		select {
		case frame := <-sess.send:
			_ = sess.conn.SetWriteDeadline(time.Now().Add(sess.server.cfg.WriteTimeout))
			if err := sess.conn.WriteMessage(msgType, frame); err != nil {
				return
			}
			sess.server.messagesOut.Add(1)
		default:
			return
		}
	}
}
