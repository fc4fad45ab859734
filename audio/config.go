package audio

import (
	"fmt"

	"github.com/lixenwraith/wheel-of-names/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundTick: constants.TickVolume,
			SoundWin:  constants.WinVolume,
		},
	}
}

// Validate clamps volumes into [0, 1] and rejects a non-positive sample rate
func (c *AudioConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.SampleRate)
	}
	c.MasterVolume = clamp01(c.MasterVolume)
	if c.EffectVolumes == nil {
		c.EffectVolumes = DefaultAudioConfig().EffectVolumes
	}
	for k, v := range c.EffectVolumes {
		c.EffectVolumes[k] = clamp01(v)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
