package render

// Target is the surface frames are drawn to
type Target interface {
	// Resize sets the surface dimensions in cells
	Resize(width, height int)
	// Size returns the current dimensions
	Size() (width, height int)
	// Draw renders one frame
	Draw(f Frame)
}

// Layer is one pass of the terminal pipeline
type Layer interface {
	Render(f Frame, p Projector, buf *Buffer)
}
