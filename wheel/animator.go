package wheel

import "time"

// Phase is the animator state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSpinning
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	default:
		return "unknown"
	}
}

// Animator drives one spin at a time: Idle -> Spinning -> Idle.
// It is not safe for concurrent use; the host steps it from one goroutine.
type Animator struct {
	rng      RNG
	phase    Phase
	spin     *SpinState
	rotation float64
}

// NewAnimator creates an idle animator at rotation zero
func NewAnimator(rng RNG) *Animator {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Animator{rng: rng}
}

// Phase returns the current state
func (a *Animator) Phase() Phase { return a.phase }

// Spinning reports whether a spin is in flight
func (a *Animator) Spinning() bool { return a.phase == PhaseSpinning }

// Rotation returns the latest rotation; normalized to [0, 2π) while idle
func (a *Animator) Rotation() float64 { return a.rotation }

// State returns a copy of the in-flight spin state
func (a *Animator) State() (SpinState, bool) {
	if a.spin == nil {
		return SpinState{}, false
	}
	return *a.spin, true
}

// SetRotation places the wheel while idle
func (a *Animator) SetRotation(r float64) error {
	if a.phase == PhaseSpinning {
		return ErrBusy
	}
	if !isFinite(r) {
		return ErrInvalidInput
	}
	a.rotation = Normalize(r)
	return nil
}

// Start begins a spin from the current rotation. While spinning it returns
// ErrBusy and leaves the in-flight state untouched.
func (a *Animator) Start(entries []Entry, duration time.Duration, now time.Time) (SpinState, error) {
	if a.phase == PhaseSpinning {
		return SpinState{}, ErrBusy
	}
	st, err := StartSpin(entries, duration, a.rotation, now, a.rng)
	if err != nil {
		return SpinState{}, err
	}
	a.spin = st
	a.phase = PhaseSpinning
	return *st, nil
}

// Advance steps the in-flight spin. On the finishing frame the rotation is
// normalized into [0, 2π) and the animator returns to Idle. Idle animators
// return a static frame.
func (a *Animator) Advance(now time.Time) Frame {
	if a.phase != PhaseSpinning {
		return Frame{Rotation: a.rotation}
	}
	f := a.spin.Advance(now)
	a.rotation = f.Rotation
	if f.Done {
		a.rotation = Normalize(f.Rotation)
		f.Rotation = a.rotation
		a.spin = nil
		a.phase = PhaseIdle
	}
	return f
}

// Cancel aborts the in-flight spin without producing a winner. It reports
// whether a spin was cancelled.
func (a *Animator) Cancel() bool {
	if a.phase != PhaseSpinning {
		return false
	}
	a.rotation = Normalize(a.rotation)
	a.spin = nil
	a.phase = PhaseIdle
	return true
}
