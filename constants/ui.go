package constants

import "time"

// UI Layout Constants
const (
	// SidebarWidth is the width of the entry list on the right of the wheel
	SidebarWidth = 30

	// StatusBarHeight is the number of rows reserved at the bottom
	StatusBarHeight = 1

	// TitleHeight is the number of rows reserved for the wheel title
	TitleHeight = 1

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0

	// LabelRadius is the fraction of the radius where sector labels are centred
	LabelRadius = 0.62

	// HubRadius is the fraction of the radius covered by the centre hub
	HubRadius = 0.12

	// BorderThickness is the angular half-width (radians at unit radius) of sector borders
	BorderThickness = 0.6

	// DefaultDisplayLimit is the default number of names drawn on the wheel
	DefaultDisplayLimit = 100
)

// Celebration Constants
const (
	// ConfettiDuration is how long a confetti burst stays on screen
	ConfettiDuration = 2500 * time.Millisecond

	// ConfettiGravity is the downward acceleration in cells per second squared
	ConfettiGravity = 18.0

	// ConfettiBurst sizes for the centre burst and each side burst
	ConfettiMainBurst = 100
	ConfettiSideBurst = 50

	// ConfettiSideDelay and ConfettiLastDelay stagger the side bursts
	ConfettiSideDelay = 250 * time.Millisecond
	ConfettiLastDelay = 400 * time.Millisecond
)

// ConfettiRunes are the glyphs a particle may use
var ConfettiRunes = []rune{'*', '+', 'o', '•', '·', '✦'}
