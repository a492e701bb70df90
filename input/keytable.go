package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/templewalk/event"
)

// DOM key codes for the four arrow keys
const (
	CodeLeft  = 37
	CodeUp    = 38
	CodeRight = 39
	CodeDown  = 40
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent    IntentType
	Direction Direction
}

// KeyTable maps host keys to intents
// Fixed bindings, no runtime remapping
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry

	// DOM keyCode bindings for hosts that report numeric codes
	Codes map[int]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {IntentQuit, DirNone},
			tcell.KeyCtrlC:  {IntentQuit, DirNone},
			tcell.KeyEscape: {IntentQuit, DirNone},
			tcell.KeyLeft:   {IntentStep, DirLeft},
			tcell.KeyUp:     {IntentStep, DirUp},
			tcell.KeyRight:  {IntentStep, DirRight},
			tcell.KeyDown:   {IntentStep, DirDown},
		},
		Runes: map[rune]KeyEntry{
			'v': {IntentToggleSession, DirNone},
			'V': {IntentToggleSession, DirNone},
		},
		Codes: map[int]KeyEntry{
			CodeLeft:  {IntentStep, DirLeft},
			CodeUp:    {IntentStep, DirUp},
			CodeRight: {IntentStep, DirRight},
			CodeDown:  {IntentStep, DirDown},
		},
	}
}

// Resolve maps a key payload to an intent
// Unrecognized keys resolve to IntentNone and are ignored by callers
func (kt *KeyTable) Resolve(p *event.KeyPayload) Intent {
	if p == nil {
		return Intent{}
	}
	if p.Code != 0 {
		if e, ok := kt.Codes[p.Code]; ok {
			return Intent{Type: e.Intent, Direction: e.Direction}
		}
		return Intent{}
	}
	if p.Key == tcell.KeyRune {
		if e, ok := kt.Runes[p.Rune]; ok {
			return Intent{Type: e.Intent, Direction: e.Direction}
		}
		return Intent{}
	}
	if e, ok := kt.SpecialKeys[p.Key]; ok {
		return Intent{Type: e.Intent, Direction: e.Direction}
	}
	return Intent{}
}
