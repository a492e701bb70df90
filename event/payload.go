package event

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/templewalk/scene"
)

// KeyPayload carries a key press
// Key/Rune come from terminal hosts, Code from hosts reporting DOM key codes
type KeyPayload struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
	Code int
}

// PointerPayload carries pointer state in surface cells
type PointerPayload struct {
	X, Y    int
	Primary bool // primary button held
	Wheel   int  // -1 wheel up, +1 wheel down, 0 none
}

// ResizePayload carries new surface dimensions
type ResizePayload struct {
	Width  int
	Height int
}

// ModelLoadedPayload carries the asynchronous load result
// Exactly one of Node or Err is set
type ModelLoadedPayload struct {
	Path string
	Node *scene.Node
	Err  error
}
