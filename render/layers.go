package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/scene"
)

// groundSpacing is the world distance between sampled ground grid points
const groundSpacing = 5.0

// groundRadius bounds sampling around the camera footprint
const groundRadius = 120.0

// PlaneLayer draws flat plane items as a perspective dot grid
type PlaneLayer struct{}

func (PlaneLayer) Render(f Frame, p Projector, buf *Buffer) {
	for _, it := range f.Items {
		if it.Shape != scene.ShapePlane {
			continue
		}
		cx := math.Round(f.CameraPosition.X()/groundSpacing) * groundSpacing
		cz := math.Round(f.CameraPosition.Z()/groundSpacing) * groundSpacing
		for gx := cx - groundRadius; gx <= cx+groundRadius; gx += groundSpacing {
			if math.Abs(gx-it.Position.X()) > it.Extent {
				continue
			}
			for gz := cz - groundRadius; gz <= cz+groundRadius; gz += groundSpacing {
				if math.Abs(gz-it.Position.Z()) > it.Extent {
					continue
				}
				x, y, depth, ok := p.Project(mgl64.Vec3{gx, it.Position.Y(), gz})
				if !ok || !p.Inside(x, y) {
					continue
				}
				buf.Set(x, y, '·', Shade(it.Color, 1-depth*0.5))
			}
		}
	}
}

// SolidLayer draws boxes and point markers far to near
type SolidLayer struct{}

type projectedItem struct {
	item  Item
	x, y  int
	depth float64
	half  int
}

func (SolidLayer) Render(f Frame, p Projector, buf *Buffer) {
	right := f.View.Row(0).Vec3()
	visible := make([]projectedItem, 0, len(f.Items))
	for _, it := range f.Items {
		if it.Shape == scene.ShapePlane {
			continue
		}
		x, y, depth, ok := p.Project(it.Position)
		if !ok {
			continue
		}
		half := 0
		if it.Shape == scene.ShapeBox && it.Extent > 0 {
			if ex, _, _, ok := p.Project(it.Position.Add(right.Mul(it.Extent))); ok {
				half = absInt(ex - x)
			}
		}
		visible = append(visible, projectedItem{item: it, x: x, y: y, depth: depth, half: half})
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].depth > visible[j].depth
	})

	for _, v := range visible {
		switch v.item.Shape {
		case scene.ShapeBox:
			// cells are roughly twice as tall as wide
			hy := v.half / 2
			for y := v.y - hy; y <= v.y+hy; y++ {
				for x := v.x - v.half; x <= v.x+v.half; x++ {
					buf.SetWithBg(x, y, '▓', v.item.Color, Shade(v.item.Color, 0.6))
				}
			}
			buf.Text(v.x-len(v.item.Name)/2, v.y+hy+1, v.item.Name, ColorStatus, Shade(v.item.Color, 0.4))
		default:
			buf.Set(v.x, v.y, glyphFor(v.item.Kind), v.item.Color)
		}
	}
}

func glyphFor(k scene.Kind) rune {
	switch k {
	case scene.KindLight:
		return '*'
	case scene.KindController:
		return '+'
	case scene.KindMesh:
		return '#'
	}
	return '•'
}

// PanelLayer draws world-anchored text blocks as bordered boxes
type PanelLayer struct{}

func (PanelLayer) Render(f Frame, p Projector, buf *Buffer) {
	for _, b := range f.Blocks {
		minX, minY := math.MaxInt, math.MaxInt
		maxX, maxY := math.MinInt, math.MinInt
		for _, c := range b.Corners {
			x, y, _, ok := p.Project(c)
			if !ok {
				minX = math.MaxInt
				break
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
		if minX == math.MaxInt || maxX-minX < 2 || maxY-minY < 2 {
			continue
		}
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				r := ' '
				switch {
				case (y == minY || y == maxY) && (x == minX || x == maxX):
					r = '+'
				case y == minY || y == maxY:
					r = '-'
				case x == minX || x == maxX:
					r = '|'
				}
				buf.SetWithBg(x, y, r, ColorPanelEdge, ColorPanel)
			}
		}
		innerW := maxX - minX - 1
		for i, line := range b.Lines {
			y := minY + 1 + i
			if y >= maxY {
				break
			}
			runes := []rune(line)
			if len(runes) > innerW {
				runes = runes[:innerW]
			}
			buf.Text(minX+1, y, string(runes), b.Color, ColorPanel)
		}
	}
}

// StatusLayer draws the HUD line on the bottom row
type StatusLayer struct{}

func (StatusLayer) Render(f Frame, p Projector, buf *Buffer) {
	if f.Status == "" {
		return
	}
	w, h := buf.Size()
	if h == 0 {
		return
	}
	for x := 0; x < w; x++ {
		buf.SetWithBg(x, h-1, ' ', ColorStatus, ColorStatusBg)
	}
	buf.Text(0, h-1, f.Status, ColorStatus, ColorStatusBg)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
