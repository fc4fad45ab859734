package constants

import "time"

// Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultSpinDuration is the spin length before slow spin doubling
	DefaultSpinDuration = 4 * time.Second

	// MinSpinDuration and MaxSpinDuration bound the spin duration slider
	MinSpinDuration = 1 * time.Second
	MaxSpinDuration = 30 * time.Second

	// StatusMessageTimeout is how long status bar messages stay visible
	StatusMessageTimeout = 3 * time.Second

	// EmptyWheelNoticeDelay delays the "all names selected" notice after the last removal
	EmptyWheelNoticeDelay = 500 * time.Millisecond
)
