package audio

import "testing"

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		}
	}
}

// TestLoadAudioConfig verifies environment overrides
func TestLoadAudioConfig(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *AudioConfig)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.MasterVolume != 0.5 || !cfg.Enabled {
					t.Errorf("Expected defaults, got %+v", cfg)
				}
			},
		},
		{
			name: "disabled",
			env:  map[string]string{"FRUIT_AUDIO_ENABLED": "false"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.Enabled {
					t.Error("Expected Enabled=false")
				}
			},
		},
		{
			name: "volume clamped",
			env:  map[string]string{"FRUIT_MASTER_VOLUME": "150"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.MasterVolume != 1 {
					t.Errorf("Expected clamp to 1, got %f", cfg.MasterVolume)
				}
			},
		},
		{
			name: "effect volumes",
			env:  map[string]string{"FRUIT_SFX_VOLUMES": `{"bomb":0.25,"catch":0.1}`},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.EffectVolumes[SoundBomb] != 0.25 || cfg.EffectVolumes[SoundCatch] != 0.1 {
					t.Errorf("Unexpected effect volumes %v", cfg.EffectVolumes)
				}
				if cfg.EffectVolumes[SoundLevelUp] != 0.7 {
					t.Error("Expected untouched volume to keep its default")
				}
			},
		},
		{
			name: "invalid sample rate ignored",
			env:  map[string]string{"FRUIT_SAMPLE_RATE": "-1"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.SampleRate != 44100 {
					t.Errorf("Expected default sample rate, got %d", cfg.SampleRate)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"FRUIT_AUDIO_ENABLED", "FRUIT_MASTER_VOLUME", "FRUIT_SFX_VOLUMES", "FRUIT_SAMPLE_RATE"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, LoadAudioConfig())
		})
	}
}
