package audio

import "errors"

// SoundType represents the wheel sound effects
type SoundType int

const (
	SoundTick SoundType = iota // Pointer passes a sector boundary
	SoundWin                   // Spin settled on a winner
	soundTypeCount
)

// String returns the config key of the sound
func (s SoundType) String() string {
	switch s {
	case SoundTick:
		return "tick"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

// ErrUnknownSound is returned for a SoundType outside the defined set
var ErrUnknownSound = errors.New("unknown sound type")

// Player is the sound surface the game drives. Implementations never block
// the caller and never report playback failures.
type Player interface {
	Tick()
	Win()
	Close()
}

// Nop is a Player that does nothing; used when audio is disabled or the
// speaker cannot be opened
type Nop struct{}

func (Nop) Tick()  {}
func (Nop) Win()   {}
func (Nop) Close() {}
