package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fruit-catcher/game"
)

// SoundManager plays game cues through the beep speaker
// All Play methods are no-ops until Initialize succeeds, and while muted
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager, nil cfg uses the default mix
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; clearing the mixer leaves the device silent
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayCatch plays the catch blip for category
func (sm *SoundManager) PlayCatch(category game.Category) {
	sm.play(func() beep.Streamer { return CreateCatchSound(sm.cfg, category) })
}

// PlayBomb plays the explosion
func (sm *SoundManager) PlayBomb() {
	sm.play(func() beep.Streamer { return CreateBombSound(sm.cfg) })
}

// PlayLevelUp plays the level-up arpeggio
func (sm *SoundManager) PlayLevelUp() {
	sm.play(func() beep.Streamer { return CreateLevelUpSound(sm.cfg) })
}

// PlayTimeUp plays the end-of-time tone
func (sm *SoundManager) PlayTimeUp() {
	sm.play(func() beep.Streamer { return CreateTimeUpSound(sm.cfg) })
}

// play builds the streamer only when it will be heard
func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
