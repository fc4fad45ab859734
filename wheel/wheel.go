package wheel

import (
	"fmt"
	"time"
)

// Result is the settled outcome of one spin
type Result struct {
	SpinID    string
	Index     int // EntrySet index
	ViewIndex int // index within the selection view the spin used
	Entry     Entry
	Rotation  float64
}

// Wheel is the single owner of the live EntrySet and the Animator. Every
// mutation goes through it so the entry set cannot change under a spin.
type Wheel struct {
	entries   *EntrySet
	anim      *Animator
	selection *Viewer

	// selection view frozen at spin start
	view   View
	spinID string
}

// Option configures a Wheel
type Option func(*Wheel)

// WithSelection sets the view offered to the sector map
func WithSelection(v *Viewer) Option {
	return func(w *Wheel) { w.selection = v }
}

// WithRotation sets the initial resting rotation
func WithRotation(r float64) Option {
	return func(w *Wheel) {
		if isFinite(r) {
			w.anim.rotation = Normalize(r)
		}
	}
}

// New creates an idle wheel over entries. A nil set starts empty.
func New(entries *EntrySet, rng RNG, opts ...Option) *Wheel {
	if entries == nil {
		entries = &EntrySet{}
	}
	w := &Wheel{
		entries: entries,
		anim:    NewAnimator(rng),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spinning reports whether a spin is in flight
func (w *Wheel) Spinning() bool { return w.anim.Spinning() }

// Phase returns the animator state
func (w *Wheel) Phase() Phase { return w.anim.Phase() }

// Rotation returns the current rotation
func (w *Wheel) Rotation() float64 { return w.anim.Rotation() }

// Len returns the number of entries in the set
func (w *Wheel) Len() int { return w.entries.Len() }

// Entries returns a copy of the entry set contents
func (w *Wheel) Entries() []Entry { return w.entries.Entries() }

// Share returns entry i's fraction of the total weight
func (w *Wheel) Share(i int) float64 { return w.entries.Share(i) }

// TotalWeight returns the entry set's total weight
func (w *Wheel) TotalWeight() float64 { return w.entries.TotalWeight() }

// View derives a view of the current entries
func (w *Wheel) View(v *Viewer) View { return v.Apply(w.entries) }

// SelectionView returns the view the next spin would use
func (w *Wheel) SelectionView() View { return w.selection.Apply(w.entries) }

// Selection returns the selection viewer
func (w *Wheel) Selection() *Viewer { return w.selection }

// SetSelection replaces the selection viewer; refused while spinning
func (w *Wheel) SetSelection(v *Viewer) error {
	if w.Spinning() {
		return ErrBusy
	}
	w.selection = v
	return nil
}

// Spin starts a spin over the selection view. ErrBusy while spinning,
// ErrInvalidInput when the view is empty.
func (w *Wheel) Spin(duration time.Duration, now time.Time) (SpinState, error) {
	if w.Spinning() {
		return SpinState{}, ErrBusy
	}
	view := w.selection.Apply(w.entries)
	if view.Len() == 0 {
		return SpinState{}, fmt.Errorf("%w: no entries eligible for selection", ErrInvalidInput)
	}
	st, err := w.anim.Start(view.Entries, duration, now)
	if err != nil {
		return SpinState{}, err
	}
	w.view = view
	w.spinID = st.ID
	return st, nil
}

// Advance steps the spin. The result is non-nil exactly once, on the frame
// that finishes the spin.
func (w *Wheel) Advance(now time.Time) (Frame, *Result) {
	f := w.anim.Advance(now)
	if !f.Done {
		return f, nil
	}
	vi, err := Resolve(w.view.Entries, f.Rotation)
	if err != nil {
		// The view was validated at spin start and cannot change mid-spin
		return f, nil
	}
	res := &Result{
		SpinID:    w.spinID,
		Index:     w.view.Source(vi),
		ViewIndex: vi,
		Entry:     w.view.Entries[vi],
		Rotation:  f.Rotation,
	}
	if res.Index >= 0 {
		if e, err := w.entries.At(res.Index); err == nil {
			res.Entry = e
		}
	}
	w.view = View{}
	return f, res
}

// Cancel aborts the spin in flight; no result is produced
func (w *Wheel) Cancel() bool {
	w.view = View{}
	return w.anim.Cancel()
}

// Mutate runs fn against the entry set. Refused with ErrBusy while spinning.
func (w *Wheel) Mutate(fn func(*EntrySet) error) error {
	if w.Spinning() {
		return ErrBusy
	}
	return fn(w.entries)
}

// RemoveWinner deletes the winning entry. The entry at the result's index
// must still carry the winner's name.
func (w *Wheel) RemoveWinner(r Result) error {
	return w.Mutate(func(s *EntrySet) error {
		e, err := s.At(r.Index)
		if err != nil {
			return err
		}
		if e.Name != r.Entry.Name {
			return fmt.Errorf("%w: entry %d is %q, not winner %q", ErrInvalidInput, r.Index, e.Name, r.Entry.Name)
		}
		_, err = s.Remove(r.Index)
		return err
	})
}
