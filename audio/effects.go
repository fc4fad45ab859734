package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/wheel-of-names/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
)

// oscillator generates a fixed-length periodic wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that stops after duration
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
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; effects.Volume works in log space so
// zero is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateTickSound generates the short click played on each sector crossing
func CreateTickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.TickSoundFreq, constants.TickSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundTick]*cfg.MasterVolume)
}

// CreateWinSound generates a rising arpeggio; the last note rings out
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(constants.WinSoundNotes))
	last := len(constants.WinSoundNotes) - 1
	for i, freq := range constants.WinSoundNotes {
		d, rel := constants.WinSoundNoteDuration, constants.WinSoundNoteRelease
		if i == last {
			d, rel = constants.WinSoundLastDuration, constants.WinSoundLastRelease
		}
		fund := NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, constants.WinSoundAttack, rel, rate)
		over := NewEnvelope(NewOscillator(freq*2, d, WaveSine, rate), d, constants.WinSoundAttack, rel/2, rate)
		notes = append(notes, beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)))
	}

	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundWin]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for soundType, or nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundTick:
		return CreateTickSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}

// soundLength is the playing time of soundType
func soundLength(soundType SoundType) time.Duration {
	switch soundType {
	case SoundTick:
		return constants.TickSoundDuration
	case SoundWin:
		n := time.Duration(len(constants.WinSoundNotes) - 1)
		return n*constants.WinSoundNoteDuration + constants.WinSoundLastDuration
	default:
		return 0
	}
}
