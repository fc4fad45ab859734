package game

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Run drives the session until quit, ctx cancellation or terminal closure.
// Input is polled on its own goroutine and handled here, so the wheel is
// only ever touched by the loop goroutine.
func (g *Game) Run(ctx context.Context) error {
	frameTicker := time.NewTicker(g.settings.FrameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(eventChan, done)

	g.Render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				return nil
			}
			// Redraw immediately so input does not wait for the next tick
			g.Render()

		case <-frameTicker.C:
			g.Update()
			g.Render()
		}
	}
}

// pollEvents feeds terminal events to the loop. The channel is closed when
// the screen is finalized.
func (g *Game) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	// Panic recovery for input polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			g.crash(r)
		}
	}()
	defer close(out)

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// defaultCrash restores the terminal and exits with the stack trace visible
func (g *Game) defaultCrash(r any) {
	g.screen.Fini()
	g.log.Errorf("event poller crashed: %v", r)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
