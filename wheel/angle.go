package wheel

import (
	"math"

	"github.com/lixenwraith/wheel-of-names/constants"
)

// Normalize maps an angle into [0, 2π). Non-finite input is returned unchanged.
func Normalize(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return a
	}
	a = math.Mod(a, constants.FullTurn)
	if a < 0 {
		a += constants.FullTurn
	}
	// -tiny + 2π rounds up to 2π
	if a >= constants.FullTurn {
		a = 0
	}
	return a
}

// pointerOffset returns the offset from the reference angle of the wheel
// material currently under the fixed pointer. Rotation is subtracted because
// increasing rotation carries material away from the pointer.
func pointerOffset(rotation float64) float64 {
	return Normalize(constants.PointerAngle - constants.ReferenceAngle - Normalize(rotation))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
