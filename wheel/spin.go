package wheel

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/xid"

	"github.com/lixenwraith/wheel-of-names/constants"
)

// Crossing reports that the sector under the pointer changed
type Crossing struct {
	Sector int
}

// Frame is the result of one animation step
type Frame struct {
	Rotation float64
	Progress float64
	Crossing *Crossing
	Done     bool
}

// SpinState is the transient data of one spin. TargetRotation is fixed at
// start so Advance is a function of elapsed time only.
type SpinState struct {
	ID             string
	StartRotation  float64
	TargetRotation float64
	StartTime      time.Time
	Duration       time.Duration
	LastCrossed    int

	sectors *SectorMap
}

// SpinDuration converts the user's seconds setting to a duration, doubled
// once when slow spin is on
func SpinDuration(seconds float64, slow bool) (time.Duration, error) {
	if !isFinite(seconds) || seconds <= 0 {
		return 0, fmt.Errorf("%w: spin duration must be positive, got %v", ErrInvalidInput, seconds)
	}
	d := time.Duration(seconds * float64(time.Second))
	if slow {
		d *= constants.SlowSpinFactor
	}
	return d, nil
}

// StartSpin draws the spin's total rotation: MinRevolutions plus U full turns
// plus a uniform offset V·2π, with U and V drawn once from rng.
func StartSpin(entries []Entry, duration time.Duration, currentRotation float64, now time.Time, rng RNG) (*SpinState, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: cannot spin an empty wheel", ErrInvalidInput)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: spin duration must be positive, got %v", ErrInvalidInput, duration)
	}
	if !isFinite(currentRotation) {
		return nil, fmt.Errorf("%w: rotation %v is not finite", ErrInvalidInput, currentRotation)
	}
	sectors, err := BuildSectors(entries)
	if err != nil {
		return nil, err
	}

	u := rng.Float64()
	v := rng.Float64()
	total := (constants.MinRevolutions+u)*constants.FullTurn + v*constants.FullTurn

	return &SpinState{
		ID:             xid.New().String(),
		StartRotation:  currentRotation,
		TargetRotation: currentRotation + total,
		StartTime:      now,
		Duration:       duration,
		LastCrossed:    NoSector,
		sectors:        sectors,
	}, nil
}

// Ease is the cubic ease-out deceleration curve
func Ease(progress float64) float64 {
	return 1 - math.Pow(1-progress, 3)
}

// Progress returns elapsed/duration clamped to [0, 1]
func (s *SpinState) Progress(now time.Time) float64 {
	p := float64(now.Sub(s.StartTime)) / float64(s.Duration)
	return math.Max(0, math.Min(1, p))
}

// RotationAt returns the eased rotation at now without touching crossing state
func (s *SpinState) RotationAt(now time.Time) float64 {
	p := s.Progress(now)
	if p >= 1 {
		return s.TargetRotation
	}
	r := s.StartRotation + (s.TargetRotation-s.StartRotation)*Ease(p)
	// Ease rounds to 1 a hair before the end; never overshoot the target
	return math.Min(r, s.TargetRotation)
}

// SectorCount returns the number of sectors the spin was started with
func (s *SpinState) SectorCount() int { return s.sectors.Len() }

// Advance computes the frame at now. Crossings are reported only while
// progress is below the tick cutoff; the sector is found with the same pointer
// convention the resolver uses.
func (s *SpinState) Advance(now time.Time) Frame {
	p := s.Progress(now)
	f := Frame{
		Rotation: s.RotationAt(now),
		Progress: p,
		Done:     p >= 1,
	}
	if p < constants.TickCutoffProgress {
		if cur := s.sectors.Resolve(f.Rotation); cur != s.LastCrossed {
			s.LastCrossed = cur
			f.Crossing = &Crossing{Sector: cur}
		}
	}
	return f
}
