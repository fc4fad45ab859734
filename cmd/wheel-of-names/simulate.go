package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/wheel-of-names/game"
	"github.com/lixenwraith/wheel-of-names/render"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

// simulate runs n headless spins over the wheel view the TUI would draw and
// prints each entry's observed win share next to its weight share
func simulate(out io.Writer, set *wheel.EntrySet, s game.Settings, n int, rng wheel.RNG) error {
	sel, err := wheel.NewViewer(s.WheelView())
	if err != nil {
		return err
	}
	w := wheel.New(set, rng, wheel.WithSelection(sel))
	view := w.SelectionView()
	if view.Len() == 0 {
		return fmt.Errorf("%w: no entries eligible for selection", wheel.ErrInvalidInput)
	}

	d, err := wheel.SpinDuration(s.SpinSeconds, s.SlowSpin)
	if err != nil {
		return err
	}

	counts := make([]int, view.Len())
	now := time.Unix(0, 0)
	for range n {
		if _, err := w.Spin(d, now); err != nil {
			return err
		}
		now = now.Add(d)
		_, res := w.Advance(now)
		if res == nil {
			return fmt.Errorf("spin did not settle")
		}
		counts[res.ViewIndex]++
	}

	total := 0.0
	nameW := len("Entry")
	for _, e := range view.Entries {
		total += e.Weight
		nameW = max(nameW, render.TextWidth(e.Name))
	}
	nameW = min(nameW, 32)

	fmt.Fprintf(out, "%s spins over %s entries\n\n", humanize.Comma(int64(n)), humanize.Comma(int64(view.Len())))
	fmt.Fprintf(out, "%s %8s %9s %9s %10s\n", render.PadRight("Entry", nameW), "Weight", "Expected", "Observed", "Wins")

	worst := 0.0
	for i, e := range view.Entries {
		expected := e.Weight / total
		observed := float64(counts[i]) / float64(n)
		worst = math.Max(worst, math.Abs(observed-expected))
		fmt.Fprintf(out, "%s %8s %9s %9s %10s\n",
			render.PadRight(e.Name, nameW),
			render.FormatWeight(e.Weight),
			render.FormatShare(expected),
			render.FormatShare(observed),
			humanize.Comma(int64(counts[i])),
		)
	}
	fmt.Fprintf(out, "\nmax deviation %s\n", render.FormatShare(worst))
	return nil
}
