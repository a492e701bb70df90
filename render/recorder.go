package render

// Recorder is a Target that keeps every frame, used by tests and headless runs
type Recorder struct {
	Frames  []Frame
	Resizes [][2]int

	width, height int
}

// NewRecorder creates a recorder with initial dimensions
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.Resizes = append(r.Resizes, [2]int{width, height})
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) Draw(f Frame) {
	r.Frames = append(r.Frames, f)
}

// Last returns the most recent frame and whether any frame was drawn
func (r *Recorder) Last() (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

var _ Target = (*Recorder)(nil)
