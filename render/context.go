package render

import (
	"time"

	"github.com/lixenwraith/wheel-of-names/wheel"
)

// SidebarEntry is one row of the entry list
type SidebarEntry struct {
	Name   string
	Weight float64
	Share  float64
	Color  string
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now   time.Time
	Theme Theme

	// Screen dimensions, filled by the orchestrator
	ScreenWidth  int
	ScreenHeight int

	// Wheel state
	Rotation    float64
	Display     wheel.View
	Spinning    bool
	Progress    float64
	Winner      *wheel.Result
	ShowBorders bool

	// Chrome
	Title     string
	ShowTitle bool
	Sidebar   []SidebarEntry
	Cursor    int // selected sidebar row, -1 for none
	Status    string
	Help      string
}

// Layout returns the geometry for the context's screen size
func (ctx RenderContext) Layout() Layout {
	return ComputeLayout(ctx.ScreenWidth, ctx.ScreenHeight, ctx.ShowTitle)
}
