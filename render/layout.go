package render

import (
	"math"

	"github.com/lixenwraith/wheel-of-names/constants"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

// minWheelWidth is the narrowest wheel area that still gets a sidebar
const minWheelWidth = 24

// Layout is the screen geometry of one frame. Wheel distances are measured
// in rows; a column is 1/CellAspect of a row.
type Layout struct {
	// Wheel centre in cell coordinates; cell x spans [x, x+1)
	CX, CY float64
	Radius float64

	// PointerX, PointerY is the cell holding the pointer glyph
	PointerX, PointerY int

	TitleY   int // -1 when hidden
	WheelW   int // columns left of the sidebar
	SidebarX int // -1 when hidden
	SidebarW int
	StatusY  int
	Width    int
	Height   int
}

// ComputeLayout places the wheel left of the sidebar, under the optional
// title and above the status bar. The centre sits on a cell centre so the
// pointer column lies exactly on the pointer angle.
func ComputeLayout(width, height int, showTitle bool) Layout {
	l := Layout{Width: width, Height: height, TitleY: -1, SidebarX: -1}

	l.WheelW = width
	if width-constants.SidebarWidth >= minWheelWidth {
		l.WheelW = width - constants.SidebarWidth
		l.SidebarX = l.WheelW
		l.SidebarW = constants.SidebarWidth
	}

	top := 0
	if showTitle {
		l.TitleY = 0
		top = constants.TitleHeight
	}
	l.StatusY = height - constants.StatusBarHeight

	// One row above the disc for the pointer
	discTop := top + 1
	discH := l.StatusY - discTop
	if discH < 1 || l.WheelW < 1 {
		return l
	}

	midRow := discTop + (discH-1)/2
	midCol := (l.WheelW - 1) / 2
	l.CX = float64(midCol) + 0.5
	l.CY = float64(midRow) + 0.5

	rows := float64(discH) / 2
	cols := float64(l.WheelW) / (2 * constants.CellAspect)
	l.Radius = math.Max(0, math.Min(rows, cols)-0.25)

	l.PointerX = midCol
	l.PointerY = int(math.Floor(l.CY-l.Radius)) - 1
	if l.PointerY < top {
		l.PointerY = top
	}
	return l
}

// Polar converts a cell to wheel polar coordinates: distance from the centre
// in rows and screen angle (clockwise from +x, since y grows downward)
func (l Layout) Polar(x, y int) (r, theta float64) {
	dx := (float64(x) + 0.5 - l.CX) / constants.CellAspect
	dy := float64(y) + 0.5 - l.CY
	return math.Hypot(dx, dy), math.Atan2(dy, dx)
}

// SectorAtCell returns the sector drawn at cell x, y for a rotation, or
// wheel.NoSector outside the disc or inside the hub
func (l Layout) SectorAtCell(m *wheel.SectorMap, rotation float64, x, y int) int {
	if m == nil || l.Radius <= 0 {
		return wheel.NoSector
	}
	r, theta := l.Polar(x, y)
	if r > l.Radius || r <= l.Radius*constants.HubRadius {
		return wheel.NoSector
	}
	return m.SectorAt(theta - rotation)
}

// Point returns the cell at screen angle theta and distance r rows from the
// centre
func (l Layout) Point(theta, r float64) (int, int) {
	x := l.CX + math.Cos(theta)*r*constants.CellAspect
	y := l.CY + math.Sin(theta)*r
	return int(math.Floor(x)), int(math.Floor(y))
}
