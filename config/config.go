// Package config resolves host settings from flags, the process environment
// and an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/fruit-catcher/game"
	"github.com/lixenwraith/fruit-catcher/parameter"
	"github.com/lixenwraith/fruit-catcher/protocol"
)

// Host modes
const (
	ModeTUI   = "tui"
	ModeServe = "serve"
)

// EnvFile is the dotenv file read by Load when present
const EnvFile = ".env"

// Environment keys
const (
	EnvMode      = "FRUIT_MODE"
	EnvTimeLimit = "FRUIT_TIME_LIMIT"
	EnvSeed      = "FRUIT_SEED"
	EnvAddr      = "FRUIT_ADDR"
	EnvMute      = "FRUIT_MUTE"
	EnvDebug     = "FRUIT_DEBUG"
	EnvCodec     = "FRUIT_CODEC"
	EnvMirror    = "FRUIT_MIRROR"
)

var ErrInvalidMode = errors.New("mode must be tui or serve")

// Config holds host settings
type Config struct {
	Mode      string
	TimeLimit int   // Seconds, 0 is unlimited
	Seed      int64 // 0 seeds from the clock
	Addr      string
	Mute      bool
	Debug     bool
	Codec     string // Bridge codec, json or msgpack
	Mirror    bool   // Flip pose x for selfie cameras
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Mode:      ModeTUI,
		TimeLimit: parameter.DefaultTimeLimit,
		Addr:      ":8080",
		Codec:     "json",
		Mirror:    true,
	}
}

// Load reads .env if present, overlays the process environment, then parses args
func Load(args []string) (Config, error) {
	env, err := godotenv.Read(EnvFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", EnvFile, err)
		}
		env = make(map[string]string)
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, "FRUIT_") {
			env[k] = v
		}
	}

	return Parse(args, env)
}

// Parse builds a Config from defaults, env and command-line args
func Parse(args []string, env map[string]string) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}

	flags := newFlagSet(&cfg)
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Usage writes the flag reference to w
func Usage(w io.Writer) {
	cfg := Default()
	flags := newFlagSet(&cfg)
	fmt.Fprintf(w, "Usage: fruit-catcher [flags]\n\nFlags:\n")
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment: %s, %s, %s, %s, %s, %s, %s, %s (also read from %s)\n",
		EnvMode, EnvTimeLimit, EnvSeed, EnvAddr, EnvMute, EnvDebug, EnvCodec, EnvMirror, EnvFile)
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	flags := flag.NewFlagSet("fruit-catcher", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "Host mode: tui, serve")
	flags.IntVar(&cfg.TimeLimit, "time", cfg.TimeLimit, "Round length in seconds, 0 for unlimited")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for time-based")
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address for serve mode")
	flags.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs to logs/")
	flags.StringVar(&cfg.Codec, "codec", cfg.Codec, "Bridge codec: json, msgpack")
	flags.BoolVar(&cfg.Mirror, "mirror", cfg.Mirror, "Mirror pose x for selfie cameras")
	return flags
}

// Validate checks field ranges
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTUI, ModeServe:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidMode, c.Mode)
	}
	if err := (game.Config{TimeLimit: c.TimeLimit}).Validate(); err != nil {
		return err
	}
	if _, err := protocol.CodecByName(c.Codec); err != nil {
		return err
	}
	if c.Mode == ModeServe && c.Addr == "" {
		return errors.New("serve mode needs a listen address")
	}
	return nil
}

func (c *Config) applyEnv(env map[string]string) error {
	var err error
	str := func(key string, dst *string) {
		if v, ok := env[key]; ok && v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := env[key]; ok && v != "" && err == nil {
			b, perr := strconv.ParseBool(v)
			if perr != nil {
				err = fmt.Errorf("%s: %w", key, perr)
				return
			}
			*dst = b
		}
	}

	str(EnvMode, &c.Mode)
	str(EnvAddr, &c.Addr)
	str(EnvCodec, &c.Codec)
	boolean(EnvMute, &c.Mute)
	boolean(EnvDebug, &c.Debug)
	boolean(EnvMirror, &c.Mirror)

	if v := env[EnvTimeLimit]; v != "" && err == nil {
		n, perr := strconv.Atoi(v)
		if perr != nil {
			return fmt.Errorf("%s: %w", EnvTimeLimit, perr)
		}
		c.TimeLimit = n
	}
	if v := env[EnvSeed]; v != "" && err == nil {
		n, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("%s: %w", EnvSeed, perr)
		}
		c.Seed = n
	}
	return err
}
