package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wheel-of-names/constants"
)

// Rand is the randomness the particle system draws from
type Rand interface {
	Float64() float64
}

type particle struct {
	x, y   float64 // cells
	vx, vy float64 // cells per second
	born   time.Time
	glyph  rune
	color  RGB
}

type pendingBurst struct {
	at     time.Time
	x, y   float64
	count  int
	spread float64 // half-angle in radians around straight up
}

// Confetti is a particle burst drawn over the wheel after a win. It never
// touches engine state.
type Confetti struct {
	rng       Rand
	palette   []RGB
	particles []particle
	pending   []pendingBurst
	last      time.Time
}

// NewConfetti creates an idle particle system coloured from palette
func NewConfetti(rng Rand, palette []string) *Confetti {
	c := &Confetti{rng: rng}
	for _, p := range palette {
		if col, ok := ParseHex(p); ok {
			c.palette = append(c.palette, col)
		}
	}
	if len(c.palette) == 0 {
		c.palette = []RGB{RGBWhite}
	}
	return c
}

// Celebrate schedules the centre burst now and the two side bursts shortly
// after, around the layout's wheel
func (c *Confetti) Celebrate(now time.Time, l Layout) {
	spanX := l.Radius * constants.CellAspect
	c.pending = append(c.pending,
		pendingBurst{at: now, x: l.CX, y: l.CY, count: constants.ConfettiMainBurst, spread: math.Pi / 3},
		pendingBurst{at: now.Add(constants.ConfettiSideDelay), x: l.CX - spanX, y: l.CY + l.Radius/2, count: constants.ConfettiSideBurst, spread: math.Pi / 4},
		pendingBurst{at: now.Add(constants.ConfettiLastDelay), x: l.CX + spanX, y: l.CY + l.Radius/2, count: constants.ConfettiSideBurst, spread: math.Pi / 4},
	)
}

// Active reports whether anything is scheduled or on screen
func (c *Confetti) Active() bool {
	return len(c.particles) > 0 || len(c.pending) > 0
}

// Clear drops every particle and pending burst
func (c *Confetti) Clear() {
	c.particles = c.particles[:0]
	c.pending = c.pending[:0]
}

// Update fires due bursts, integrates motion and expires old particles
func (c *Confetti) Update(now time.Time) {
	dt := 0.0
	if !c.last.IsZero() {
		dt = math.Max(0, now.Sub(c.last).Seconds())
	}
	c.last = now

	kept := c.pending[:0]
	for _, b := range c.pending {
		if now.Before(b.at) {
			kept = append(kept, b)
			continue
		}
		c.burst(b, now)
	}
	c.pending = kept

	alive := c.particles[:0]
	for _, p := range c.particles {
		if now.Sub(p.born) >= constants.ConfettiDuration {
			continue
		}
		p.vy += constants.ConfettiGravity * dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		alive = append(alive, p)
	}
	c.particles = alive
}

func (c *Confetti) burst(b pendingBurst, now time.Time) {
	for range b.count {
		angle := -math.Pi/2 + (c.rng.Float64()*2-1)*b.spread
		speed := 10 + c.rng.Float64()*14
		c.particles = append(c.particles, particle{
			x:     b.x,
			y:     b.y,
			vx:    math.Cos(angle) * speed * constants.CellAspect,
			vy:    math.Sin(angle) * speed,
			born:  now,
			glyph: constants.ConfettiRunes[int(c.rng.Float64()*float64(len(constants.ConfettiRunes)))%len(constants.ConfettiRunes)],
			color: c.palette[int(c.rng.Float64()*float64(len(c.palette)))%len(c.palette)],
		})
	}
}

// Render implements SystemRenderer; particles fade toward the background
// over their lifetime
func (c *Confetti) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, p := range c.particles {
		age := ctx.Now.Sub(p.born).Seconds() / constants.ConfettiDuration.Seconds()
		fg := Blend(p.color, ctx.Theme.Background, math.Max(0, age-0.6)/0.4)
		buf.SetFgOnly(int(math.Floor(p.x)), int(math.Floor(p.y)), p.glyph, fg, tcell.AttrBold)
	}
}

// IsVisible implements VisibilityToggle
func (c *Confetti) IsVisible() bool { return len(c.particles) > 0 }
