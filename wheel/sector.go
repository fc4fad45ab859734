package wheel

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/wheel-of-names/constants"
)

// NoSector marks "no sector crossed yet"
const NoSector = -1

// Sector is the angular interval [Start, End) owned by entry Index
type Sector struct {
	Index int
	Start float64
	End   float64
}

// Width returns the angular width of the sector
func (s Sector) Width() float64 { return s.End - s.Start }

// SectorMap partitions the circle starting at constants.ReferenceAngle.
// bounds holds cumulative offsets from the reference angle: bounds[0] is 0
// and bounds[n] is pinned to exactly one full turn.
type SectorMap struct {
	bounds []float64
}

// BuildSectors lays entries out around the circle in order, each taking
// 2π·weight/total. Boundaries come from cumulative weights so rounding never
// opens a gap or overlap.
func BuildSectors(entries []Entry) (*SectorMap, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries to lay out", ErrInvalidInput)
	}
	total := 0.0
	for i, e := range entries {
		if err := validateWeight(e.Weight); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		total += e.Weight
	}
	if !isFinite(total) || total <= 0 {
		return nil, fmt.Errorf("%w: total weight must be positive, got %v", ErrInvalidInput, total)
	}

	bounds := make([]float64, len(entries)+1)
	cum := 0.0
	for i, e := range entries {
		cum += e.Weight
		bounds[i+1] = constants.FullTurn * (cum / total)
	}
	bounds[len(entries)] = constants.FullTurn

	return &SectorMap{bounds: bounds}, nil
}

// Len returns the number of sectors
func (m *SectorMap) Len() int { return len(m.bounds) - 1 }

// Sector returns sector i in absolute angles
func (m *SectorMap) Sector(i int) Sector {
	s := Sector{
		Index: i,
		Start: constants.ReferenceAngle + m.bounds[i],
		End:   constants.ReferenceAngle + m.bounds[i+1],
	}
	if i == 0 {
		s.Start = constants.ReferenceAngle
	}
	if i == m.Len()-1 {
		s.End = constants.ReferenceAngle + constants.FullTurn
	}
	return s
}

// Sectors returns all sectors in entry order
func (m *SectorMap) Sectors() []Sector {
	out := make([]Sector, m.Len())
	for i := range out {
		out[i] = m.Sector(i)
	}
	return out
}

// Width returns the angular width of sector i
func (m *SectorMap) Width(i int) float64 { return m.bounds[i+1] - m.bounds[i] }

// MidOffset returns the offset from the reference angle of sector i's bisector
func (m *SectorMap) MidOffset(i int) float64 { return (m.bounds[i] + m.bounds[i+1]) / 2 }

// Boundary returns the offset where sector i starts
func (m *SectorMap) Boundary(i int) float64 { return m.bounds[i] }

// SectorAtOffset returns the sector containing an offset measured from the
// reference angle. A boundary belongs to the sector that starts there.
func (m *SectorMap) SectorAtOffset(offset float64) int {
	if offset < 0 || offset >= constants.FullTurn {
		offset = Normalize(offset)
	}
	n := m.Len()
	i := sort.Search(n, func(i int) bool { return m.bounds[i+1] > offset })
	if i >= n {
		// Only reachable with a non-finite offset
		i = n - 1
	}
	return i
}

// SectorAt returns the sector containing an absolute angle
func (m *SectorMap) SectorAt(angle float64) int {
	return m.SectorAtOffset(Normalize(angle - constants.ReferenceAngle))
}

// Resolve returns the sector under the pointer for a wheel rotation
func (m *SectorMap) Resolve(rotation float64) int {
	return m.SectorAtOffset(pointerOffset(rotation))
}
