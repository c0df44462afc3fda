package network

import (
	"io"
	"log"
	"time"

	"github.com/lixenwraith/fruit-catcher/parameter"
	"github.com/lixenwraith/fruit-catcher/protocol"
	"github.com/lixenwraith/fruit-catcher/status"
)

// Config holds bridge configuration
type Config struct {
	// Codec encodes every frame of every session
	Codec protocol.Codec

	// Mirror flips pose x before lane classification
	Mirror bool

	// Connection limits
	MaxSessions    int
	MaxMessageSize int64

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	PingInterval time.Duration // Must be less than PongTimeout

	// StateHz caps state frames per session per second
	StateHz int

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int

	Logger  *log.Logger
	Metrics *status.Registry
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Codec:           protocol.JSONCodec{},
		Mirror:          true,
		MaxSessions:     64,
		MaxMessageSize:  4 * 1024,
		WriteTimeout:    10 * time.Second,
		PongTimeout:     60 * time.Second,
		PingInterval:    54 * time.Second,
		StateHz:         parameter.BroadcastHz,
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 16 * 1024,
		SendQueueSize:   256,
		Logger:          log.New(io.Discard, "", 0),
		Metrics:         status.NewRegistry(),
	}
}

// stateEvery converts StateHz into a physics tick divisor
func (c *Config) stateEvery() int {
	if c.StateHz <= 0 || c.StateHz >= parameter.TickHz {
		return 1
	}
	return parameter.TickHz / c.StateHz
}
