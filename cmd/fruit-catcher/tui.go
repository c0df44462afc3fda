package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruit-catcher/audio"
	"github.com/lixenwraith/fruit-catcher/config"
	"github.com/lixenwraith/fruit-catcher/core"
	"github.com/lixenwraith/fruit-catcher/engine"
	"github.com/lixenwraith/fruit-catcher/game"
	"github.com/lixenwraith/fruit-catcher/input"
	"github.com/lixenwraith/fruit-catcher/parameter"
	"github.com/lixenwraith/fruit-catcher/render"
	"github.com/lixenwraith/fruit-catcher/status"
)

// runTUI plays one terminal session until the player quits
// Rendering happens on the scheduler thread; the main goroutine only polls input
func runTUI(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	sched := engine.NewClockScheduler(parameter.FrameInterval)
	sched.Start()
	defer sched.Stop()

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}
	defer sound.Cleanup()
	if cfg.Mute {
		sound.SetMuted(true)
	}

	renderer := render.NewRenderer(screen)
	renderer.SetMuted(sound.Muted())

	// Scheduler thread state
	var (
		eng   *game.Engine
		ended *game.GameEnd
	)
	redraw := func() {
		if ended != nil {
			renderer.DrawEnd(eng.Snapshot(), *ended)
			return
		}
		renderer.Draw(eng.Snapshot())
	}

	hooks := audio.Cues(sound, game.Hooks{
		OnStateUpdate: renderer.Draw,
		OnGameEnd: func(end game.GameEnd) {
			ended = &end
			renderer.DrawEnd(eng.Snapshot(), end)
		},
	})

	reg := status.NewRegistry()
	eng, err = game.New(sched, hooks, append(engineOptions(cfg), game.WithMetrics(reg))...)
	if err != nil {
		return err
	}
	defer func() { log.Printf("session metrics: %v", reg.Snapshot()) }()

	gameCfg := game.Config{TimeLimit: cfg.TimeLimit}
	restart := func() error {
		sched.Post(func() { ended = nil })
		return eng.Start(gameCfg)
	}
	if err := restart(); err != nil {
		return err
	}

	keys := input.DefaultKeyTable()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil

		case *tcell.EventResize:
			sched.Post(func() {
				renderer.Resize()
				redraw()
			})

		case *tcell.EventKey:
			in := keys.Map(ev)
			switch in.Type {
			case input.IntentQuit:
				eng.Stop()
				return nil
			case input.IntentRestart:
				if err := restart(); err != nil {
					return err
				}
			case input.IntentToggleMute:
				sched.Post(func() {
					sound.SetMuted(!sound.Muted())
					renderer.SetMuted(sound.Muted())
					redraw()
				})
			case input.IntentLane:
				if err := eng.SetBasketLane(in.Lane); err != nil {
					log.Printf("key %s: %v", ev.Name(), err)
				}
			}
		}
	}
}
