package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
)

// SidebarRenderer lists entries with weight and share of the wheel
type SidebarRenderer struct{}

// FormatWeight renders a weight compactly: 1, 2.5, 1,000
func FormatWeight(w float64) string {
	if w == float64(int64(w)) {
		return humanize.Comma(int64(w))
	}
	return humanize.CommafWithDigits(w, 2)
}

// FormatShare renders a 0-1 share as a percentage with one decimal
func FormatShare(share float64) string {
	return humanize.FtoaWithDigits(share*100, 1) + "%"
}

// Render implements SystemRenderer
func (SidebarRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	l := ctx.Layout()
	if l.SidebarX < 0 {
		return
	}
	x0 := l.SidebarX + 1
	w := l.SidebarW - 2
	y := 0
	if l.TitleY >= 0 {
		y = l.TitleY + 1
	}

	header := fmt.Sprintf("Entries (%s)", humanize.Comma(int64(len(ctx.Sidebar))))
	buf.Text(x0, y, Fit(header, w), ctx.Theme.Text, tcell.AttrBold)
	y++

	rows := l.StatusY - y
	if rows <= 0 {
		return
	}

	// Keep the cursor row visible
	first := 0
	if ctx.Cursor >= rows {
		first = ctx.Cursor - rows + 1
	}

	for i := first; i < len(ctx.Sidebar) && y < l.StatusY; i++ {
		e := ctx.Sidebar[i]
		swatch, ok := ParseHex(e.Color)
		if !ok {
			swatch = ctx.Theme.Muted
		}

		stats := FormatWeight(e.Weight) + " " + FormatShare(e.Share)
		nameW := w - 2 - TextWidth(stats) - 1
		line := PadRight(e.Name, max(nameW, 0))

		fg, attrs := ctx.Theme.Text, tcell.AttrNone
		if i == ctx.Cursor {
			for x := x0; x < x0+w; x++ {
				buf.SetBgOnly(x, y, Mix(ctx.Theme.Background, ctx.Theme.Highlight, 0.35))
			}
			attrs = tcell.AttrBold
		}
		if ctx.Winner != nil && ctx.Winner.Index == i && !ctx.Spinning {
			fg, attrs = ctx.Theme.Text, tcell.AttrBold|tcell.AttrReverse
		}

		buf.SetWithBg(x0, y, ' ', swatch, swatch)
		x := buf.Text(x0+2, y, line, fg, attrs)
		buf.Text(x+1, y, stats, ctx.Theme.Muted, tcell.AttrNone)
		y++
	}
}

// ChromeRenderer draws the title row and the status bar
type ChromeRenderer struct{}

// Render implements SystemRenderer
func (ChromeRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	l := ctx.Layout()

	if l.TitleY >= 0 && ctx.Title != "" {
		title := Fit(ctx.Title, l.WheelW)
		buf.Text(l.PointerX-TextWidth(title)/2+1, l.TitleY, title, ctx.Theme.Text, tcell.AttrBold)
	}

	if l.StatusY < 0 || l.StatusY >= l.Height {
		return
	}
	for x := 0; x < l.Width; x++ {
		buf.SetWithBg(x, l.StatusY, ' ', ctx.Theme.StatusText, ctx.Theme.StatusBg)
	}

	left := ctx.Status
	if left == "" && ctx.Spinning {
		left = "Spinning" + strings.Repeat(".", 1+int(ctx.Progress*3)%3)
	}
	right := ctx.Help
	if TextWidth(left)+TextWidth(right)+2 > l.Width {
		right = ""
	}
	buf.Text(1, l.StatusY, Fit(left, l.Width-2), ctx.Theme.StatusText, tcell.AttrNone)
	if right != "" {
		buf.Text(l.Width-1-TextWidth(right), l.StatusY, right, ctx.Theme.StatusText, tcell.AttrDim)
	}
}

// WinnerRenderer draws the winner box over the wheel once a spin settles
type WinnerRenderer struct{}

// Render implements SystemRenderer
func (WinnerRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if ctx.Winner == nil || ctx.Spinning {
		return
	}
	l := ctx.Layout()
	name := ctx.Winner.Entry.Name
	inner := max(TextWidth(name), len("Winner!"))
	inner = min(inner, l.WheelW-6)
	if inner < 1 {
		return
	}
	name = Fit(name, inner)

	boxW := inner + 4
	x0 := l.PointerX - boxW/2 + 1
	y0 := int(l.CY) - 2

	for y := y0; y < y0+5; y++ {
		for x := x0; x < x0+boxW; x++ {
			buf.SetWithBg(x, y, ' ', ctx.Theme.WinnerText, ctx.Theme.WinnerBg)
		}
	}
	for x := x0; x < x0+boxW; x++ {
		buf.SetFgOnly(x, y0, '─', ctx.Theme.Highlight, tcell.AttrNone)
		buf.SetFgOnly(x, y0+4, '─', ctx.Theme.Highlight, tcell.AttrNone)
	}
	buf.Text(x0+(boxW-len("Winner!"))/2, y0+1, "Winner!", ctx.Theme.Muted, tcell.AttrNone)
	buf.Text(x0+(boxW-TextWidth(name))/2, y0+2, name, ctx.Theme.WinnerText, tcell.AttrBold)
}
