package audio

import "testing"

func TestSoundTypeString(t *testing.T) {
	tests := []struct {
		s    SoundType
		want string
	}{
		{SoundCatch, "catch"},
		{SoundBomb, "bomb"},
		{SoundLevelUp, "levelup"},
		{SoundTimeUp, "timeup"},
		{soundTypeCount, "unknown"},
		{SoundType(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("SoundType(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestDefaultVolumesCoverEverySound(t *testing.T) {
	cfg := DefaultAudioConfig()
	for s := SoundType(0); s < soundTypeCount; s++ {
		v, ok := cfg.EffectVolumes[s]
		if !ok {
			t.Errorf("no default volume for %s", s)
			continue
		}
		if v <= 0 || v > 1 {
			t.Errorf("%s volume %v outside (0,1]", s, v)
		}
	}
}
