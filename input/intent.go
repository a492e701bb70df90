package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit          // Ctrl+Q, Ctrl+C, Escape
	IntentStep          // arrow keys, DOM codes 37-40
	IntentToggleSession // v, the display session button
)

// Direction is one of the four discrete step directions
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	}
	return "none"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type      IntentType
	Direction Direction
}
