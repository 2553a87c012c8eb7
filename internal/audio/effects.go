// Package audio synthesises the game's sound effects with beep.
// Nothing is loaded from disk; every effect is built from oscillators.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/asteroids/internal/core"
)

// SampleRate is the output rate used for every effect.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sound identifies one synthesised effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundLaser
	SoundHit
	SoundExplode
	SoundThrust
	SoundLevel
	SoundGameOver
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundHit:
		return "hit"
	case SoundExplode:
		return "explode"
	case SoundThrust:
		return "thrust"
	case SoundLevel:
		return "level"
	case SoundGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// SoundFor maps a simulation event to its effect.
func SoundFor(e core.Event) Sound {
	switch e {
	case core.EventFire:
		return SoundLaser
	case core.EventObstacleHit:
		return SoundHit
	case core.EventShipExploded:
		return SoundExplode
	case core.EventThrust:
		return SoundThrust
	case core.EventLevelCleared:
		return SoundLevel
	case core.EventGameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}

// oscillator generates a wave whose frequency slides linearly from
// freq to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *core.RNG
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator that glides between two frequencies.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    core.NewRNG(int64(from*1000) + 1),
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
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		f := o.freq
		if o.duration > 0 {
			f += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
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

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

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
			remaining := e.totalSamples - e.position
			vol = math.Max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or negative volume is silent
// because the base-2 volume effect cannot express log2(0).
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Effect durations
const (
	laserDuration   = 120 * time.Millisecond
	hitDuration     = 180 * time.Millisecond
	explodeDuration = 600 * time.Millisecond
	thrustDuration  = 250 * time.Millisecond
	levelNote       = 120 * time.Millisecond
	gameOverNote    = 300 * time.Millisecond
)

// CreateLaserSound is a falling square sweep.
func CreateLaserSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1400, 300, laserDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, laserDuration, 5*time.Millisecond, 80*time.Millisecond, rate), 0.35)
}

// CreateHitSound is a short noise burst.
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, hitDuration, WaveNoise, rate)
	return newVolume(NewEnvelope(noise, hitDuration, 2*time.Millisecond, 150*time.Millisecond, rate), 0.5)
}

// CreateExplodeSound layers long noise over a low rumble.
func CreateExplodeSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, explodeDuration, WaveNoise, rate), explodeDuration, 5*time.Millisecond, 500*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(90, 40, explodeDuration, WaveSaw, rate), explodeDuration, 5*time.Millisecond, 450*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
}

// CreateThrustSound is a low saw hum.
func CreateThrustSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(55, thrustDuration, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, thrustDuration, 30*time.Millisecond, 120*time.Millisecond, rate), 0.25)
}

// CreateLevelSound is a rising two-note chime.
func CreateLevelSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(659.25, levelNote, WaveSine, rate), levelNote, 5*time.Millisecond, 60*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(987.77, 2*levelNote, WaveSine, rate), 2*levelNote, 5*time.Millisecond, 150*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), 0.5)
}

// CreateGameOverSound is a falling two-note phrase.
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(392, gameOverNote, WaveSquare, rate), gameOverNote, 10*time.Millisecond, 120*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(196, 2*gameOverNote, WaveSquare, rate), 2*gameOverNote, 10*time.Millisecond, 400*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), 0.3)
}

// Effect returns a fresh streamer for the sound, scaled by master volume.
// Returns nil for SoundNone.
func Effect(s Sound, master float64, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundLaser:
		st = CreateLaserSound(rate)
	case SoundHit:
		st = CreateHitSound(rate)
	case SoundExplode:
		st = CreateExplodeSound(rate)
	case SoundThrust:
		st = CreateThrustSound(rate)
	case SoundLevel:
		st = CreateLevelSound(rate)
	case SoundGameOver:
		st = CreateGameOverSound(rate)
	default:
		return nil
	}
	return newVolume(st, master)
}
