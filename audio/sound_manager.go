package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/wheel-of-names/constants"
	"github.com/lixenwraith/wheel-of-names/logger"
)

// SoundManager plays wheel sounds through the beep speaker. Calls before
// Initialize or after Cleanup are silently dropped.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastTick    time.Time
	now         func() time.Time
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := sm.cfg.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
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
	sm.initialized = false
}

// Play queues soundType on the mixer
func (sm *SoundManager) Play(soundType SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}
	s := GetSoundEffect(soundType, sm.cfg)
	if s == nil {
		return ErrUnknownSound
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Tick plays the crossing click, dropping ticks closer than MinTickGap so a
// fast spin does not pile up overlapping clicks
func (sm *SoundManager) Tick() {
	sm.mu.Lock()
	now := sm.now()
	if !sm.lastTick.IsZero() && now.Sub(sm.lastTick) < constants.MinTickGap {
		sm.mu.Unlock()
		return
	}
	sm.lastTick = now
	sm.mu.Unlock()

	_ = sm.Play(SoundTick)
}

// Win plays the winner fanfare
func (sm *SoundManager) Win() { _ = sm.Play(SoundWin) }

// Close implements Player
func (sm *SoundManager) Close() { sm.Cleanup() }

// Open returns a speaker-backed Player, or Nop when audio is disabled or the
// speaker cannot be opened. Failure is logged and otherwise ignored.
func Open(cfg *AudioConfig, log logger.Logger) Player {
	if cfg == nil || !cfg.Enabled {
		log.Debug("audio disabled")
		return Nop{}
	}
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		log.Warnf("audio unavailable, continuing silently: %v", err)
		return Nop{}
	}
	log.Debugf("audio initialized at %d Hz", cfg.SampleRate)
	return sm
}
