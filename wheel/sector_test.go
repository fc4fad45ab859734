package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wheel-of-names/constants"
)

const eps = 1e-9

func weighted(ws ...float64) []Entry {
	out := make([]Entry, len(ws))
	for i, w := range ws {
		out[i] = Entry{Name: string(rune('A' + i)), Weight: w}
	}
	return out
}

func TestBuildSectors_Empty(t *testing.T) {
	_, err := BuildSectors(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildSectors_RejectsNonPositiveWeight(t *testing.T) {
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := BuildSectors(weighted(1, w))
		assert.ErrorIs(t, err, ErrInvalidInput, "weight %v", w)
	}
}

// Partition completeness and proportionality over assorted weight sets
func TestBuildSectors_Partition(t *testing.T) {
	cases := [][]float64{
		{1},
		{1, 1},
		{1, 3},
		{0.1, 100, 7.3, 2},
		{1, 1, 1, 1, 1, 1, 1},
		{0.3, 0.3, 0.3, 0.1, 0.7, 13, 0.2, 0.4, 0.9, 5, 5, 5},
	}
	for _, ws := range cases {
		m, err := BuildSectors(weighted(ws...))
		require.NoError(t, err)
		require.Equal(t, len(ws), m.Len())

		total := 0.0
		for _, w := range ws {
			total += w
		}

		sectors := m.Sectors()
		assert.Equal(t, constants.ReferenceAngle, sectors[0].Start)
		assert.Equal(t, constants.ReferenceAngle+constants.FullTurn, sectors[len(sectors)-1].End)

		sum := 0.0
		for i, s := range sectors {
			assert.Equal(t, i, s.Index)
			assert.InDelta(t, constants.FullTurn*ws[i]/total, s.Width(), eps, "sector %d width", i)
			if i > 0 {
				assert.Equal(t, sectors[i-1].End, s.Start, "sector %d not contiguous", i)
			}
			sum += s.Width()
		}
		assert.InDelta(t, constants.FullTurn, sum, eps)
	}
}

func TestSectorAt_Example(t *testing.T) {
	m, err := BuildSectors(weighted(1, 3))
	require.NoError(t, err)

	a := m.Sector(0)
	b := m.Sector(1)
	assert.InDelta(t, constants.ReferenceAngle, a.Start, eps)
	assert.InDelta(t, constants.ReferenceAngle+math.Pi/2, a.End, eps)
	assert.InDelta(t, constants.ReferenceAngle+math.Pi/2, b.Start, eps)
	assert.InDelta(t, constants.ReferenceAngle+2*math.Pi, b.End, eps)

	assert.Equal(t, 0, m.SectorAtOffset(0))
	assert.Equal(t, 0, m.SectorAtOffset(math.Pi/4))
	assert.Equal(t, 1, m.SectorAtOffset(math.Pi))
	assert.Equal(t, 1, m.SectorAtOffset(constants.FullTurn-1e-12))
}

func TestSectorAt_BoundaryBelongsToStartingSector(t *testing.T) {
	m, err := BuildSectors(weighted(1, 1, 1, 1))
	require.NoError(t, err)

	for i := 0; i < m.Len(); i++ {
		for range 3 {
			assert.Equal(t, i, m.SectorAtOffset(m.Boundary(i)), "boundary %d", i)
		}
	}
}

func TestSectorAt_NormalizesAbsoluteAngles(t *testing.T) {
	m, err := BuildSectors(weighted(1, 1))
	require.NoError(t, err)

	// Just past the reference angle is sector 0, whichever lap the angle is on
	for lap := -3; lap <= 3; lap++ {
		angle := constants.ReferenceAngle + 0.1 + float64(lap)*constants.FullTurn
		assert.Equal(t, 0, m.SectorAt(angle), "lap %d", lap)
	}
	// Half a turn past the reference is the second sector
	assert.Equal(t, 1, m.SectorAt(constants.ReferenceAngle+math.Pi+0.1))
	// Just before the reference wraps to the last sector
	assert.Equal(t, 1, m.SectorAt(constants.ReferenceAngle-0.1))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{constants.FullTurn, 0},
		{3 * constants.FullTurn, 0},
		{-1e-18, 0},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		assert.InDelta(t, tt.want, got, eps, "Normalize(%v)", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, constants.FullTurn)
	}
	assert.True(t, math.IsNaN(Normalize(math.NaN())))
}
