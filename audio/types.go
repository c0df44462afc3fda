package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundCatch   SoundType = iota // Fruit caught
	SoundBomb                     // Bomb caught, game over
	SoundLevelUp                  // Level increased
	SoundTimeUp                   // Countdown expired
	soundTypeCount
)

var soundNames = [...]string{"catch", "bomb", "levelup", "timeup"}

// String returns the sound name used in configuration
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// AudioConfig holds volume and format settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the standard mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundCatch:   0.8,
			SoundBomb:    1.0,
			SoundLevelUp: 0.7,
			SoundTimeUp:  0.6,
		},
		SampleRate: 44100,
	}
}
