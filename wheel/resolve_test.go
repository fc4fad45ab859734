package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wheel-of-names/constants"
)

// rotationFor returns a rotation that puts offset (from the reference angle)
// under the pointer
func rotationFor(offset float64) float64 {
	return Normalize(-offset)
}

func TestResolve_Empty(t *testing.T) {
	_, err := Resolve(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolve_NonFiniteRotation(t *testing.T) {
	_, err := Resolve(weighted(1, 1), math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Resolve(weighted(1, 1), math.NaN())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolve_ZeroRotationIsFirstEntry(t *testing.T) {
	idx, err := Resolve(weighted(2, 1, 1), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

// A = [ref, ref+π/2), B = [ref+π/2, ref+2π); pointer at offset π is inside B
func TestResolve_Example(t *testing.T) {
	entries := []Entry{{Name: "A", Weight: 1}, {Name: "B", Weight: 3}}
	idx, err := Resolve(entries, rotationFor(math.Pi))
	require.NoError(t, err)
	assert.Equal(t, "B", entries[idx].Name)

	idx, err = Resolve(entries, rotationFor(math.Pi/4))
	require.NoError(t, err)
	assert.Equal(t, "A", entries[idx].Name)
}

func TestResolve_AgreesWithSectorMap(t *testing.T) {
	entries := weighted(0.5, 3, 1, 7, 0.25, 2)
	m, err := BuildSectors(entries)
	require.NoError(t, err)

	for i := 0; i < m.Len(); i++ {
		w := m.Width(i)
		for _, frac := range []float64{0.01, 0.5, 0.99} {
			offset := m.Boundary(i) + w*frac
			for lap := 0; lap < 3; lap++ {
				rot := rotationFor(offset) + float64(lap)*constants.FullTurn
				idx, err := Resolve(entries, rot)
				require.NoError(t, err)
				assert.Equal(t, i, idx, "sector %d frac %v lap %d", i, frac, lap)
			}
		}
	}
}

// Increasing rotation carries material away from the pointer, so the pointer
// sees the sectors in reverse order
func TestResolve_RotationDirection(t *testing.T) {
	entries := weighted(1, 1, 1, 1)
	quarter := constants.FullTurn / 4
	want := []int{3, 2, 1, 0}
	for k, w := range want {
		idx, err := Resolve(entries, float64(k)*quarter+quarter/2)
		require.NoError(t, err)
		assert.Equal(t, w, idx, "k=%d", k)
	}
}

func TestResolve_BoundaryDeterminism(t *testing.T) {
	// rotation π puts offset π, the start of the second half, under the pointer
	entries := weighted(1, 1)
	for range 5 {
		idx, err := Resolve(entries, math.Pi)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	}

	// offset π is also the start of the third quarter
	quarters := weighted(1, 1, 1, 1)
	for range 5 {
		idx, err := Resolve(quarters, math.Pi)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	}

	// rotation 0 sits on the boundary between the last and first sector
	idx, err := Resolve(quarters, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestResolve_SingleEntry(t *testing.T) {
	entries := weighted(4.2)
	for _, rot := range []float64{0, 0.3, math.Pi, 5.9, -2, 1000, -1e6, constants.FullTurn} {
		idx, err := Resolve(entries, rot)
		require.NoError(t, err)
		assert.Equal(t, 0, idx, "rotation %v", rot)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	entries := weighted(1, 2, 3)
	before := append([]Entry(nil), entries...)
	a, err := Resolve(entries, 2.5)
	require.NoError(t, err)
	b, err := Resolve(entries, 2.5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, before, entries)
}
