package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/asteroids/internal/config"
	"github.com/vovakirdan/asteroids/internal/core"
)

// drain streams s to the end and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			v := buf[j][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, tc.wave, rate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Stream() = %d, %v", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Fatalf("sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Fatalf("sample %d not mono", i)
				}
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error %v", osc.Err())
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, SampleRate)
	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f", i, v)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	osc := NewSweep(1000, 200, 100*time.Millisecond, WaveSine, SampleRate)
	n, _ := drain(t, osc)
	if want := SampleRate.N(100 * time.Millisecond); n != want {
		t.Errorf("streamed %d samples, expected %d", n, want)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, SampleRate) // Constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)

	samples := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("streamed %d, expected %d", n, len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0][0])
	}
	mid := samples[n/2][0]
	if mid != 1 {
		t.Errorf("sustain = %f, expected 1", mid)
	}
	if last := samples[n-1][0]; last <= 0 || last >= 0.01 {
		t.Errorf("release should end near zero, got %f", last)
	}
}

func TestEffectsAreFinite(t *testing.T) {
	sounds := []Sound{SoundLaser, SoundHit, SoundExplode, SoundThrust, SoundLevel, SoundGameOver}
	for _, s := range sounds {
		t.Run(s.String(), func(t *testing.T) {
			st := Effect(s, 0.5, SampleRate)
			if st == nil {
				t.Fatal("nil streamer")
			}
			n, peak := drain(t, st)
			if n == 0 {
				t.Error("effect produced no samples")
			}
			if n > SampleRate.N(2*time.Second) {
				t.Errorf("effect too long: %d samples", n)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %f, expected (0, 1]", peak)
			}
		})
	}

	if Effect(SoundNone, 1, SampleRate) != nil {
		t.Error("SoundNone should have no streamer")
	}
}

func TestMutedEffectIsSilent(t *testing.T) {
	_, peak := drain(t, Effect(SoundLaser, 0, SampleRate))
	if peak != 0 {
		t.Errorf("muted effect peak = %f", peak)
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		event core.Event
		sound Sound
	}{
		{core.EventFire, SoundLaser},
		{core.EventObstacleHit, SoundHit},
		{core.EventShipExploded, SoundExplode},
		{core.EventThrust, SoundThrust},
		{core.EventLevelCleared, SoundLevel},
		{core.EventGameOver, SoundGameOver},
		{core.EventShipRespawned, SoundNone},
		{core.EventHighScore, SoundNone},
	}
	for _, tc := range tests {
		if got := SoundFor(tc.event); got != tc.sound {
			t.Errorf("SoundFor(%s) = %s, expected %s", tc.event, got, tc.sound)
		}
	}
}

func TestHandleWithoutDevice(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: false, MasterVolume: 1})
	if err := sm.Initialize(); err != nil {
		t.Fatalf("disabled Initialize() should not fail: %v", err)
	}
	if sm.Active() {
		t.Fatal("disabled manager should not open the device")
	}

	sm.Handle([]core.Event{core.EventFire, core.EventObstacleHit, core.EventObstacleHit, core.EventHighScore})
	sm.Handle([]core.Event{core.EventFire})

	if sm.Played(SoundLaser) != 2 {
		t.Errorf("laser played %d times, expected 2", sm.Played(SoundLaser))
	}
	if sm.Played(SoundHit) != 1 {
		t.Errorf("duplicate hits in one tick should collapse, got %d", sm.Played(SoundHit))
	}

	sm.Cleanup()
}
