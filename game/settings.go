package game

import (
	"math"
	"time"

	"github.com/lixenwraith/wheel-of-names/config"
	"github.com/lixenwraith/wheel-of-names/constants"
	"github.com/lixenwraith/wheel-of-names/document"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

// Settings are the live session options. They start from the config, are
// overridden by a loaded document and change through the toggle keys.
type Settings struct {
	SpinSeconds float64
	SlowSpin    bool

	Selection wheel.ViewOptions
	Display   wheel.ViewOptions

	Title       string
	ShowTitle   bool
	ShowBorders bool
	DarkMode    bool

	RemoveWinner bool
	PlaySound    bool
	Confetti     bool

	Palette       []string
	File          string // save target
	FrameInterval time.Duration
}

// SettingsFromConfig copies the session options out of c
func SettingsFromConfig(c *config.Config) Settings {
	s := Settings{
		SpinSeconds:  c.Spin.Duration,
		SlowSpin:     c.Spin.Slow,
		Selection:    c.Selection.Options(),
		Display:      c.Display.ViewConfig.Options(),
		Title:        c.Display.Title,
		ShowTitle:    c.Display.ShowTitle,
		ShowBorders:  c.Display.ShowBorders,
		DarkMode:     c.Display.DarkMode,
		RemoveWinner: c.After.RemoveWinner,
		PlaySound:    c.After.PlaySound,
		Confetti:     c.After.Confetti,
		Palette:      c.Palette,
		File:         c.File,
	}
	if c.Display.FPS > 0 {
		s.FrameInterval = time.Second / time.Duration(c.Display.FPS)
	}
	return s
}

// ApplyDocument overrides the settings a document carries. displayDuplicates
// off folds same-name entries in both views; maxNames limits both.
func (s *Settings) ApplyDocument(o document.Options) {
	if o.DisplayDuplicates != nil {
		merge := !*o.DisplayDuplicates
		s.Selection.MergeDuplicates = merge
		s.Display.MergeDuplicates = merge
	}
	s.SlowSpin = document.Bool(o.SpinSlowly, s.SlowSpin)
	s.ShowTitle = document.Bool(o.ShowTitle, s.ShowTitle)
	if d := o.SpinDuration.Float(0); d > 0 && !math.IsInf(d, 0) {
		s.SpinSeconds = d
	}
	if n := o.MaxNames.Float(-1); n >= 0 && !math.IsInf(n, 0) {
		s.Display.Limit = int(n)
		s.Selection.Limit = int(n)
	}
	s.RemoveWinner = document.Bool(o.RemoveWinner, s.RemoveWinner)
	s.PlaySound = document.Bool(o.PlaySound, s.PlaySound)
	s.Confetti = document.Bool(o.Confetti, s.Confetti)
	s.DarkMode = document.Bool(o.DarkMode, s.DarkMode)
	s.ShowBorders = document.Bool(o.ShowBorders, s.ShowBorders)
	s.Title = document.String(o.WheelTitle, s.Title)
}

// DocumentOptions is the inverse of ApplyDocument, used when saving
func (s Settings) DocumentOptions() document.Options {
	o := document.Options{
		DisplayDuplicates: document.Ptr(!s.Display.MergeDuplicates),
		SpinSlowly:        document.Ptr(s.SlowSpin),
		ShowTitle:         document.Ptr(s.ShowTitle),
		SpinDuration:      document.Ptr(document.FlexNumber(s.SpinSeconds)),
		RemoveWinner:      document.Ptr(s.RemoveWinner),
		PlaySound:         document.Ptr(s.PlaySound),
		Confetti:          document.Ptr(s.Confetti),
		DarkMode:          document.Ptr(s.DarkMode),
		ShowBorders:       document.Ptr(s.ShowBorders),
		WheelTitle:        document.Ptr(s.Title),
	}
	if s.Display.Limit > 0 {
		o.MaxNames = document.Ptr(document.FlexNumber(s.Display.Limit))
	}
	return o
}

// WheelView narrows by both configured views. The disc draws it and spins
// resolve over it, so every drawn sector can win and every winner is drawn.
func (s Settings) WheelView() wheel.ViewOptions {
	v := wheel.ViewOptions{
		Limit:           s.Selection.Limit,
		MergeDuplicates: s.Selection.MergeDuplicates || s.Display.MergeDuplicates,
		Exclude:         append(append([]string(nil), s.Selection.Exclude...), s.Display.Exclude...),
	}
	if s.Display.Limit > 0 && (v.Limit == 0 || s.Display.Limit < v.Limit) {
		v.Limit = s.Display.Limit
	}
	return v
}

// DisplayTitle is the title row text
func (s Settings) DisplayTitle() string {
	if s.Title == "" {
		return "Wheel of Names"
	}
	return s.Title
}

// stepDuration moves the spin duration by delta seconds within the slider range
func (s *Settings) stepDuration(delta float64) {
	d := math.Round(s.SpinSeconds + delta)
	s.SpinSeconds = math.Max(constants.MinSpinDuration.Seconds(), math.Min(constants.MaxSpinDuration.Seconds(), d))
}
