package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/asteroids/internal/config"
	"github.com/vovakirdan/asteroids/internal/core"
)

// SoundManager plays effects for simulation events through one mixer.
// It is safe to call from the game loop goroutine while the speaker
// goroutine drains the mixer.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      map[Sound]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		played: make(map[Sound]int),
	}
}

// Initialize opens the audio device. A disabled manager stays silent and
// returns nil; a missing device returns the error and the caller carries on
// without sound.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Handle plays the effect for every event that has one.
// Duplicate effects within one tick are collapsed.
func (sm *SoundManager) Handle(events []core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	seen := make(map[Sound]bool, len(events))
	for _, e := range events {
		s := SoundFor(e)
		if s == SoundNone || seen[s] {
			continue
		}
		seen[s] = true
		sm.play(s)
	}
}

// play queues one effect. Counts are kept even when silent.
func (sm *SoundManager) play(s Sound) {
	sm.played[s]++
	if !sm.initialized {
		return
	}
	st := Effect(s, sm.cfg.MasterVolume, SampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// Played returns how many times a sound was requested.
func (sm *SoundManager) Played(s Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}

// Active reports whether the audio device is open.
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
