package render

import "github.com/gdamore/tcell/v2"

// Default palette, 0xRRGGBB
const (
	ColorText       uint32 = 0x202020
	ColorPanel      uint32 = 0xf0f0f0
	ColorPanelEdge  uint32 = 0x404040
	ColorLight      uint32 = 0xfff5b0
	ColorController uint32 = 0x3090ff
	ColorStatus     uint32 = 0xffffff
	ColorStatusBg   uint32 = 0x303030
)

// Style builds a tcell style from two 0xRRGGBB colors
func Style(fg, bg uint32) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewHexColor(int32(fg))).
		Background(tcell.NewHexColor(int32(bg)))
}

// Shade scales a color toward black, f in [0, 1]
func Shade(c uint32, f float64) uint32 {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	r := uint32(float64((c>>16)&0xff) * f)
	g := uint32(float64((c>>8)&0xff) * f)
	b := uint32(float64(c&0xff) * f)
	return r<<16 | g<<8 | b
}
