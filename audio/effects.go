package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/fruit-catcher/game"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect timings
const (
	catchDuration  = 90 * time.Millisecond
	catchAttack    = 5 * time.Millisecond
	catchRelease   = 60 * time.Millisecond
	bombDuration   = 450 * time.Millisecond
	bombAttack     = 2 * time.Millisecond
	bombRelease    = 380 * time.Millisecond
	levelNote      = 80 * time.Millisecond
	levelRelease   = 40 * time.Millisecond
	timeUpNote     = 180 * time.Millisecond
	timeUpRelease  = 120 * time.Millisecond
	envelopeAttack = 5 * time.Millisecond
)

// catchPitch maps categories to a note, unknown categories use the apple pitch
var catchPitch = map[game.Category]float64{
	game.CategoryApple:  659.25, // E5
	game.CategoryOrange: 987.77, // B5
	game.CategoryBomb:   110.00, // A2
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateCatchSound generates a short blip pitched by category
func CreateCatchSound(cfg *AudioConfig, category game.Category) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	freq, ok := catchPitch[category]
	if !ok {
		freq = catchPitch[game.CategoryApple]
	}

	fund := NewEnvelope(NewOscillator(freq, catchDuration, WaveSine, rate), catchDuration, catchAttack, catchRelease, rate)

	// Octave overtone; SineTone rejects frequencies above Nyquist
	var tone beep.Streamer
	if sine, err := generators.SineTone(rate, freq*2); err == nil {
		tone = beep.Take(rate.N(catchDuration), sine)
	} else {
		tone = NewOscillator(freq*2, catchDuration, WaveSine, rate)
	}
	over := NewEnvelope(tone, catchDuration, catchAttack, catchRelease/2, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, effectVolume(cfg, SoundCatch))
}

// CreateBombSound generates a noise burst over a low rumble
func CreateBombSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewEnvelope(NewOscillator(0, bombDuration, WaveNoise, rate), bombDuration, bombAttack, bombRelease, rate)
	rumble := NewEnvelope(NewOscillator(catchPitch[game.CategoryBomb], bombDuration, WaveSaw, rate), bombDuration, bombAttack, bombRelease, rate)

	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
	return newVolume(mixed, effectVolume(cfg, SoundBomb))
}

// CreateLevelUpSound generates a rising major arpeggio
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99, 1046.50} // C5 E5 G5 C6
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, levelNote, WaveSquare, rate)
		seq = append(seq, NewEnvelope(osc, levelNote, envelopeAttack, levelRelease, rate))
	}

	return newVolume(beep.Seq(seq...), effectVolume(cfg, SoundLevelUp)*0.5)
}

// CreateTimeUpSound generates a falling two-note tone
func CreateTimeUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewEnvelope(NewOscillator(783.99, timeUpNote, WaveSine, rate), timeUpNote, envelopeAttack, timeUpRelease, rate)
	n2 := NewEnvelope(NewOscillator(523.25, timeUpNote*2, WaveSine, rate), timeUpNote*2, envelopeAttack, timeUpRelease*2, rate)

	return newVolume(beep.Seq(n1, n2), effectVolume(cfg, SoundTimeUp))
}
