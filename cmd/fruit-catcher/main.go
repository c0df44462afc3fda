// Command fruit-catcher runs the Fruit Catcher game in the terminal, or serves
// it to pose-tracking clients over a websocket bridge.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/lixenwraith/fruit-catcher/config"
	"github.com/lixenwraith/fruit-catcher/core"
	"github.com/lixenwraith/fruit-catcher/game"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Panic recovery restores the terminal through the registered cleanup
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fruit-catcher: %v\n\n", err)
		config.Usage(os.Stderr)
		return 2
	}

	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}
	log.Printf("config: mode=%s time=%d seed=%d codec=%s", cfg.Mode, cfg.TimeLimit, cfg.Seed, cfg.Codec)

	switch cfg.Mode {
	case config.ModeServe:
		err = runServe(cfg)
	default:
		err = runTUI(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fruit-catcher: %v\n", err)
		return 1
	}
	return 0
}

// engineOptions maps host settings onto engine options
func engineOptions(cfg config.Config) []game.Option {
	opts := []game.Option{game.WithLogger(log.Default())}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}
	return opts
}
