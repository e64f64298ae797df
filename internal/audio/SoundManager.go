package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	speakerBuffer = 100 * time.Millisecond
	defaultVolume = 0.5
)

// SoundManager plays a chime when food is eaten and a buzz on a crash.
// It satisfies game.Listener. Before Initialize, and after Cleanup, it is silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      int
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize opens the audio device and starts the mixer on it.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Debug("Audio initialized", "sampleRate", sampleRate)
	return nil
}

// Cleanup drops queued sounds and releases the audio device.
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

func (sm *SoundManager) FoodEaten(score int) {
	sm.play(chime(sampleRate, sm.volume))
}

func (sm *SoundManager) Crashed(reason error) {
	sm.play(buzz(sampleRate, sm.volume))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}
