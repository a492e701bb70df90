package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one character cell of the compositor
type Cell struct {
	Rune rune
	Fg   uint32
	Bg   uint32
}

// Buffer is a row-major cell compositor flushed to a tcell screen
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(0)
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear fills every cell with a blank on bg using exponential copy
func (b *Buffer) Clear(bg uint32) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes rune and foreground, preserving background
func (b *Buffer) Set(x, y int, r rune, fg uint32) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// SetWithBg writes a fully opaque cell
func (b *Buffer) SetWithBg(x, y int, r rune, fg, bg uint32) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// Text writes s left to right starting at x, clipped to the buffer
func (b *Buffer) Text(x, y int, s string, fg, bg uint32) {
	for _, r := range s {
		b.SetWithBg(x, y, r, fg, bg)
		x++
	}
}

// Get returns the cell at x, y, zero Cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Flush writes the buffer to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, Style(c.Fg, c.Bg))
		}
	}
	screen.Show()
}
