package overlay

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/muesli/reflow/wordwrap"

	"github.com/lixenwraith/templewalk/render"
)

// glyphAdvance is the average glyph width as a fraction of font size
const glyphAdvance = 0.5

type tracked struct {
	panel *Panel
	lines []string
	dirty bool
}

// Layout keeps wrapped text for tracked panels
// Update only re-wraps panels marked dirty
type Layout struct {
	entries []*tracked
	passes  int
}

func NewLayout() *Layout {
	return &Layout{}
}

// Track registers a panel and marks it for layout
func (l *Layout) Track(p *Panel) {
	l.entries = append(l.entries, &tracked{panel: p, dirty: true})
}

// Update recomputes layout for dirty panels, returns true if anything changed
func (l *Layout) Update() bool {
	changed := false
	for _, e := range l.entries {
		if !e.dirty {
			continue
		}
		e.lines = Wrap(e.panel.def)
		e.dirty = false
		changed = true
	}
	if changed {
		l.passes++
	}
	return changed
}

// Passes counts Update calls that did work
func (l *Layout) Passes() int {
	return l.passes
}

// Blocks returns the laid out panels in world space
// Panels awaiting Update are left out
func (l *Layout) Blocks() []render.TextBlock {
	var out []render.TextBlock
	for _, e := range l.entries {
		if e.dirty {
			continue
		}
		lines := make([]string, len(e.lines))
		copy(lines, e.lines)
		out = append(out, render.TextBlock{
			Corners: corners(e.panel),
			Lines:   lines,
			Color:   render.ColorText,
		})
	}
	return out
}

// CharsPerLine is how many glyphs fit inside the padded panel width
func CharsPerLine(def PanelDef) int {
	if def.FontSize <= 0 {
		return 0
	}
	inner := def.Width - 2*def.Padding
	n := int(math.Floor(inner / (def.FontSize * glyphAdvance)))
	if n < 1 {
		n = 1
	}
	return n
}

// Wrap splits the panel text into lines that fit the panel
func Wrap(def PanelDef) []string {
	n := CharsPerLine(def)
	if n == 0 || def.Text == "" {
		return nil
	}
	wrapped := wordwrap.String(def.Text, n)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func corners(p *Panel) [4]mgl64.Vec3 {
	m := p.Node.WorldMatrix()
	hw, hh := p.def.Width/2, p.def.Height/2
	local := [4]mgl64.Vec3{
		{-hw, hh, 0}, {hw, hh, 0}, {hw, -hh, 0}, {-hw, -hh, 0},
	}
	var out [4]mgl64.Vec3
	for i, c := range local {
		out[i] = m.Mul4x1(c.Vec4(1)).Vec3()
	}
	return out
}
