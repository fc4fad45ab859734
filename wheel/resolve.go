package wheel

import "fmt"

// Resolve maps a settled rotation to the winning entry index. It is a pure
// function of its inputs.
func Resolve(entries []Entry, finalRotation float64) (int, error) {
	if !isFinite(finalRotation) {
		return 0, fmt.Errorf("%w: rotation %v is not finite", ErrInvalidInput, finalRotation)
	}
	m, err := BuildSectors(entries)
	if err != nil {
		return 0, err
	}
	return m.Resolve(finalRotation), nil
}
