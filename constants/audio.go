package constants

import "time"

// Audio Engine Timing
const (
	// SpeakerBufferDuration is the speaker buffer length passed to speaker.Init
	SpeakerBufferDuration = 50 * time.Millisecond

	// MinTickGap is the minimum gap between consecutive tick sounds
	MinTickGap = 25 * time.Millisecond
)

// Tick Sound Timing
const (
	TickSoundDuration = 30 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 20 * time.Millisecond
	TickSoundFreq     = 1760.0
)

// Win Sound Timing
const (
	WinSoundNoteDuration = 140 * time.Millisecond
	WinSoundLastDuration = 600 * time.Millisecond
	WinSoundAttack       = 5 * time.Millisecond
	WinSoundNoteRelease  = 60 * time.Millisecond
	WinSoundLastRelease  = 450 * time.Millisecond
)

// WinSoundNotes is a rising major arpeggio (C5 E5 G5 C6)
var WinSoundNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// Volume defaults (0.0-1.0)
const (
	DefaultMasterVolume = 0.5
	TickVolume          = 0.3
	WinVolume           = 0.5
)

// DefaultSampleRate is the speaker sample rate in Hz
const DefaultSampleRate = 44100
