package wheel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wheel-of-names/constants"
)

// fixedRNG returns values from a pre-set sequence
type fixedRNG struct {
	values []float64
	idx    int
}

func (r *fixedRNG) Float64() float64 {
	v := r.values[r.idx%len(r.values)]
	r.idx++
	return v
}

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestSpinDuration(t *testing.T) {
	d, err := SpinDuration(4, false)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, d)

	d, err = SpinDuration(4, true)
	require.NoError(t, err)
	assert.Equal(t, 8*time.Second, d)

	d, err = SpinDuration(0.5, true)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)

	for _, s := range []float64{0, -1, math.NaN()} {
		_, err = SpinDuration(s, false)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestStartSpin_InvalidInput(t *testing.T) {
	rng := &fixedRNG{values: []float64{0}}
	_, err := StartSpin(nil, time.Second, 0, t0, rng)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = StartSpin(weighted(1), 0, 0, t0, rng)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = StartSpin(weighted(1), time.Second, math.Inf(-1), t0, rng)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStartSpin_TargetRotation(t *testing.T) {
	rng := &fixedRNG{values: []float64{0.5, 0.25}}
	st, err := StartSpin(weighted(1, 1), 4*time.Second, 1.0, t0, rng)
	require.NoError(t, err)

	want := 1.0 + (constants.MinRevolutions+0.5)*constants.FullTurn + 0.25*constants.FullTurn
	assert.InDelta(t, want, st.TargetRotation, eps)
	assert.Equal(t, 1.0, st.StartRotation)
	assert.Equal(t, t0, st.StartTime)
	assert.Equal(t, 4*time.Second, st.Duration)
	assert.Equal(t, NoSector, st.LastCrossed)
	assert.NotEmpty(t, st.ID)
}

func TestStartSpin_AtLeastMinRevolutions(t *testing.T) {
	rng := NewSeededRNG(7)
	for range 1000 {
		st, err := StartSpin(weighted(1, 2), time.Second, 0, t0, rng)
		require.NoError(t, err)
		total := st.TargetRotation - st.StartRotation
		assert.GreaterOrEqual(t, total, constants.MinRevolutions*constants.FullTurn)
		assert.Less(t, total, (constants.MinRevolutions+2)*constants.FullTurn)
	}
}

func TestEase(t *testing.T) {
	assert.Equal(t, 0.0, Ease(0))
	assert.Equal(t, 1.0, Ease(1))
	assert.InDelta(t, 0.875, Ease(0.5), eps)
	prev := 0.0
	for p := 0.0; p <= 1; p += 0.01 {
		e := Ease(p)
		assert.GreaterOrEqual(t, e, prev)
		prev = e
	}
}

func TestAdvance_Monotonic(t *testing.T) {
	st, err := StartSpin(weighted(1, 2, 3, 4), 4*time.Second, 0.7, t0, NewSeededRNG(1))
	require.NoError(t, err)

	prev := st.StartRotation
	end := t0.Add(st.Duration)
	for now := t0; now.Before(end); now = now.Add(7 * time.Millisecond) {
		f := st.Advance(now)
		assert.False(t, f.Done, "done before end at %v", now.Sub(t0))
		assert.GreaterOrEqual(t, f.Rotation, prev)
		assert.LessOrEqual(t, f.Rotation, st.TargetRotation)
		prev = f.Rotation
	}

	// Approaching the end converges on the target
	near := st.Advance(end.Add(-time.Millisecond))
	assert.InDelta(t, st.TargetRotation, near.Rotation, 1e-6)
	assert.False(t, near.Done)

	f := st.Advance(end)
	assert.True(t, f.Done)
	assert.Equal(t, st.TargetRotation, f.Rotation)
	assert.Equal(t, 1.0, f.Progress)

	// Past the end stays done at the target
	f = st.Advance(end.Add(time.Second))
	assert.True(t, f.Done)
	assert.Equal(t, st.TargetRotation, f.Rotation)
}

func TestAdvance_ProgressClamped(t *testing.T) {
	st, err := StartSpin(weighted(1), time.Second, 0, t0, NewSeededRNG(2))
	require.NoError(t, err)

	f := st.Advance(t0.Add(-time.Second))
	assert.Equal(t, 0.0, f.Progress)
	assert.Equal(t, st.StartRotation, f.Rotation)
}

func TestAdvance_CrossingEvents(t *testing.T) {
	entries := weighted(1, 1, 1, 1, 1, 1, 1, 1)
	st, err := StartSpin(entries, 4*time.Second, 0, t0, NewSeededRNG(3))
	require.NoError(t, err)
	m, err := BuildSectors(entries)
	require.NoError(t, err)

	crossings := 0
	last := NoSector
	step := 2 * time.Millisecond
	for now := t0; ; now = now.Add(step) {
		f := st.Advance(now)
		if f.Crossing != nil {
			crossings++
			// Crossing sector agrees with the resolver at the same rotation
			assert.Equal(t, m.Resolve(f.Rotation), f.Crossing.Sector)
			assert.NotEqual(t, last, f.Crossing.Sector)
			assert.Less(t, f.Progress, constants.TickCutoffProgress)
			last = f.Crossing.Sector
		}
		if f.Progress >= constants.TickCutoffProgress {
			assert.Nil(t, f.Crossing, "crossing after cutoff at progress %v", f.Progress)
		}
		if f.Done {
			break
		}
	}
	// At least five revolutions over eight sectors, each passed once per turn
	assert.Greater(t, crossings, 8*3)
	assert.Equal(t, last, st.LastCrossed)
}

func TestAdvance_FirstFrameReportsStartingSector(t *testing.T) {
	st, err := StartSpin(weighted(1, 1), time.Second, 0, t0, NewSeededRNG(4))
	require.NoError(t, err)
	f := st.Advance(t0)
	require.NotNil(t, f.Crossing)
	assert.Equal(t, 0, f.Crossing.Sector)
	assert.Nil(t, st.Advance(t0).Crossing)
}

func TestAnimator_BusyGuard(t *testing.T) {
	a := NewAnimator(NewSeededRNG(5))
	assert.Equal(t, PhaseIdle, a.Phase())

	first, err := a.Start(weighted(1, 1), time.Second, t0)
	require.NoError(t, err)
	assert.Equal(t, PhaseSpinning, a.Phase())

	_, err = a.Start(weighted(1, 2, 3), 5*time.Second, t0.Add(100*time.Millisecond))
	assert.ErrorIs(t, err, ErrBusy)

	cur, ok := a.State()
	require.True(t, ok)
	assert.Equal(t, first.ID, cur.ID)
	assert.Equal(t, first.TargetRotation, cur.TargetRotation)
	assert.Equal(t, first.StartTime, cur.StartTime)
	assert.Equal(t, first.Duration, cur.Duration)
	assert.Equal(t, 2, cur.SectorCount())
}

func TestAnimator_Lifecycle(t *testing.T) {
	a := NewAnimator(NewSeededRNG(6))
	st, err := a.Start(weighted(1, 3), 2*time.Second, t0)
	require.NoError(t, err)

	f := a.Advance(t0.Add(time.Second))
	assert.False(t, f.Done)
	assert.True(t, a.Spinning())

	f = a.Advance(t0.Add(2 * time.Second))
	assert.True(t, f.Done)
	assert.False(t, a.Spinning())
	assert.GreaterOrEqual(t, f.Rotation, 0.0)
	assert.Less(t, f.Rotation, constants.FullTurn)
	assert.InDelta(t, Normalize(st.TargetRotation), f.Rotation, eps)
	assert.Equal(t, f.Rotation, a.Rotation())

	// Idle frames are static and never done again
	again := a.Advance(t0.Add(3 * time.Second))
	assert.False(t, again.Done)
	assert.Equal(t, f.Rotation, again.Rotation)

	// The next spin starts from the settled rotation
	next, err := a.Start(weighted(1, 3), time.Second, t0.Add(4*time.Second))
	require.NoError(t, err)
	assert.Equal(t, f.Rotation, next.StartRotation)
}

func TestAnimator_Cancel(t *testing.T) {
	a := NewAnimator(NewSeededRNG(8))
	assert.False(t, a.Cancel())

	_, err := a.Start(weighted(1, 1), time.Second, t0)
	require.NoError(t, err)
	mid := a.Advance(t0.Add(300 * time.Millisecond))

	assert.True(t, a.Cancel())
	assert.Equal(t, PhaseIdle, a.Phase())
	assert.InDelta(t, Normalize(mid.Rotation), a.Rotation(), eps)

	f := a.Advance(t0.Add(2 * time.Second))
	assert.False(t, f.Done)
}

func TestAnimator_SetRotation(t *testing.T) {
	a := NewAnimator(NewSeededRNG(9))
	require.NoError(t, a.SetRotation(-math.Pi))
	assert.InDelta(t, math.Pi, a.Rotation(), eps)
	assert.ErrorIs(t, a.SetRotation(math.NaN()), ErrInvalidInput)

	_, err := a.Start(weighted(1), time.Second, t0)
	require.NoError(t, err)
	assert.ErrorIs(t, a.SetRotation(0), ErrBusy)
}

// Over many spins the empirical win frequency approaches weight/total
func TestSpin_WeightedConvergence(t *testing.T) {
	entries := weighted(1, 3, 6)
	total := 10.0
	const spins = 200000

	rng := NewSeededRNG(42)
	wins := make([]int, len(entries))
	rotation := 0.0
	for range spins {
		st, err := StartSpin(entries, time.Second, rotation, t0, rng)
		require.NoError(t, err)
		rotation = Normalize(st.TargetRotation)
		idx, err := Resolve(entries, rotation)
		require.NoError(t, err)
		wins[idx]++
	}

	for i, e := range entries {
		got := float64(wins[i]) / spins
		want := e.Weight / total
		// ~5 standard deviations at this sample size
		tol := 5 * math.Sqrt(want*(1-want)/spins)
		assert.InDelta(t, want, got, tol, "entry %d", i)
	}
}
