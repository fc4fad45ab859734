package constants

import "math"

// Wheel Geometry Constants
const (
	// FullTurn is one complete revolution in radians
	FullTurn = 2 * math.Pi

	// ReferenceAngle is where sector 0 begins when rotation is zero.
	// Screen y grows downward, so -π/2 is the top of the wheel and increasing
	// angles turn clockwise on screen.
	ReferenceAngle = -math.Pi / 2

	// PointerAngle is the fixed screen angle of the pointer (top of the wheel)
	PointerAngle = ReferenceAngle

	// AngleEpsilon is the tolerance used when comparing accumulated angles
	AngleEpsilon = 1e-9
)

// Spin Constants
const (
	// MinRevolutions is the guaranteed number of full turns per spin
	MinRevolutions = 5

	// TickCutoffProgress is the progress after which crossings are not reported
	TickCutoffProgress = 0.8

	// SlowSpinFactor multiplies the spin duration when slow spin is enabled
	SlowSpinFactor = 2
)

// Entry Constants
const (
	// DefaultWeight is assigned to entries created from plain names
	DefaultWeight = 1.0

	// MinWeight and MaxWeight bound weights entered through the editor
	MinWeight = 0.1
	MaxWeight = 100.0

	// WeightStep is the increment used by the weight keys
	WeightStep = 0.5
)

// DefaultPalette cycles over entries that carry no color of their own
var DefaultPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E2",
}

// DefaultNames seeds a fresh wheel
var DefaultNames = []string{"Alice", "Bob", "Charlie", "David", "Emma"}
