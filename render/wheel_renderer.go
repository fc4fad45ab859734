package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wheel-of-names/constants"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

// WheelRenderer draws the disc, sector labels and hub
type WheelRenderer struct {
	// Cached sector layout, rebuilt when the display entries change
	entries []wheel.Entry
	sectors *wheel.SectorMap
	colors  []RGB
}

// NewWheelRenderer creates a wheel renderer
func NewWheelRenderer() *WheelRenderer {
	return &WheelRenderer{}
}

// Sectors returns the sector map for the current display entries
func (r *WheelRenderer) Sectors(entries []wheel.Entry) *wheel.SectorMap {
	if !sameEntries(r.entries, entries) {
		r.entries = append(r.entries[:0], entries...)
		r.sectors, _ = wheel.BuildSectors(entries)
		r.colors = r.colors[:0]
		for i, e := range entries {
			c, ok := ParseHex(e.Color)
			if !ok {
				c = MustHex(constants.DefaultPalette[i%len(constants.DefaultPalette)])
			}
			r.colors = append(r.colors, c)
		}
	}
	return r.sectors
}

func sameEntries(a, b []wheel.Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Render implements SystemRenderer
func (r *WheelRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	l := ctx.Layout()
	if l.Radius < 1 {
		return
	}
	m := r.Sectors(ctx.Display.Entries)
	if m == nil {
		r.renderEmpty(ctx, l, buf)
		return
	}

	hub := l.Radius * constants.HubRadius
	top := int(math.Floor(l.CY - l.Radius))
	bottom := int(math.Ceil(l.CY + l.Radius))
	left := int(math.Floor(l.CX - l.Radius*constants.CellAspect))
	right := int(math.Ceil(l.CX + l.Radius*constants.CellAspect))

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			dist, theta := l.Polar(x, y)
			if dist > l.Radius {
				continue
			}
			if dist <= hub {
				buf.SetWithBg(x, y, ' ', ctx.Theme.Text, ctx.Theme.Hub)
				continue
			}

			offset := wheel.Normalize(theta - ctx.Rotation - constants.ReferenceAngle)
			i := m.SectorAtOffset(offset)
			bg := r.colors[i]

			if ctx.ShowBorders && m.Len() > 1 {
				toStart := offset - m.Boundary(i)
				toEnd := m.Boundary(i) + m.Width(i) - offset
				if math.Min(toStart, toEnd)*dist < constants.BorderThickness/2 {
					bg = Mix(bg, ctx.Theme.Border, 0.7)
				}
			}
			if ctx.ShowBorders && dist > l.Radius-0.5 {
				bg = Mix(bg, ctx.Theme.Border, 0.5)
			}
			buf.SetWithBg(x, y, ' ', ctx.Theme.Text, bg)
		}
	}

	r.renderLabels(ctx, l, m, buf)
}

// renderLabels writes each name horizontally at its sector bisector. Labels
// that do not fit the sector chord are shortened, or dropped below one cell.
func (r *WheelRenderer) renderLabels(ctx RenderContext, l Layout, m *wheel.SectorMap, buf *RenderBuffer) {
	labelR := l.Radius * constants.LabelRadius
	if labelR < 1 {
		return
	}
	for i := 0; i < m.Len(); i++ {
		theta := constants.ReferenceAngle + m.MidOffset(i) + ctx.Rotation
		// Chord width available at the label radius, in columns
		chord := 2 * labelR * math.Sin(math.Min(m.Width(i), math.Pi)/2) * constants.CellAspect
		maxW := int(math.Min(chord, (l.Radius-constants.HubRadius*l.Radius)*constants.CellAspect))
		if maxW < 1 {
			continue
		}
		label := Fit(ctx.Display.Entries[i].Name, maxW)
		w := TextWidth(label)
		cx, cy := l.Point(theta, labelR)
		x := cx - w/2
		buf.Text(x, cy, label, Contrast(r.colors[i]), tcell.AttrBold)
	}
}

func (r *WheelRenderer) renderEmpty(ctx RenderContext, l Layout, buf *RenderBuffer) {
	msg := Fit("Add names to spin", l.WheelW)
	buf.Text(l.PointerX-TextWidth(msg)/2, int(l.CY), msg, ctx.Theme.Muted, tcell.AttrNone)
}

// PointerRenderer draws the fixed pointer above the wheel
type PointerRenderer struct{}

// Render implements SystemRenderer
func (PointerRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	l := ctx.Layout()
	if l.Radius < 1 {
		return
	}
	buf.SetFgOnly(l.PointerX, l.PointerY, '▼', ctx.Theme.Pointer, tcell.AttrBold)
}
