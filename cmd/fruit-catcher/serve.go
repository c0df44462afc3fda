package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/fruit-catcher/config"
	"github.com/lixenwraith/fruit-catcher/core"
	"github.com/lixenwraith/fruit-catcher/engine"
	"github.com/lixenwraith/fruit-catcher/network"
	"github.com/lixenwraith/fruit-catcher/parameter"
	"github.com/lixenwraith/fruit-catcher/protocol"
	"github.com/lixenwraith/fruit-catcher/status"
)

const shutdownTimeout = 5 * time.Second

// runServe hosts the websocket bridge until SIGINT or SIGTERM
func runServe(cfg config.Config) error {
	codec, err := protocol.CodecByName(cfg.Codec)
	if err != nil {
		return err
	}

	sched := engine.NewClockScheduler(parameter.FrameInterval)
	sched.Start()
	defer sched.Stop()

	ncfg := network.DefaultConfig()
	ncfg.Codec = codec
	ncfg.Mirror = cfg.Mirror
	ncfg.Logger = log.Default()
	ncfg.Metrics = status.NewRegistry()

	bridge, err := network.NewServer(sched, ncfg)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           bridge.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	core.Go(func() {
		errCh <- httpSrv.ListenAndServe()
	})
	fmt.Fprintf(os.Stderr, "fruit-catcher: serving %s codec on %s (ws: /ws, metrics: /metrics)\n", codec.Name(), cfg.Addr)
	log.Printf("bridge listening on %s", cfg.Addr)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("shutting down, %d sessions open", bridge.Sessions())
	bridge.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
