// Package terminal hosts the tcell screen and turns its events into loop events
package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/templewalk/event"
)

// Host owns the terminal screen for the lifetime of the program
type Host struct {
	screen   tcell.Screen
	finiOnce sync.Once
}

// NewHost opens the controlling terminal
func NewHost() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewHostWithScreen(screen)
}

// NewHostWithScreen initializes screen, used with simulation screens in tests
func NewHostWithScreen(screen tcell.Screen) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return &Host{screen: screen}, nil
}

func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Size returns the screen dimensions in cells
func (h *Host) Size() (int, int) {
	return h.screen.Size()
}

// Fini restores the terminal, safe to call more than once
func (h *Host) Fini() {
	h.finiOnce.Do(h.screen.Fini)
}

// Interrupt wakes a blocked Poll so it can observe cancellation
func (h *Host) Interrupt() {
	_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Poll forwards translated events to poster until ctx is done or the screen is finalized
// A screen closing underneath a live context posts EventQuit
// Runs on its own goroutine, never touches scene state
func (h *Host) Poll(ctx context.Context, poster event.Poster) {
	for {
		ev := h.screen.PollEvent()
		if ctx.Err() != nil {
			return
		}
		if ev == nil {
			event.EmitQuit(poster)
			return
		}
		if out, ok := Translate(ev); ok {
			poster.Push(out)
		}
	}
}

// Translate converts a tcell event, unsupported events report false
func Translate(ev tcell.Event) (event.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return event.Event{
			Type:    event.EventKeyDown,
			Payload: &event.KeyPayload{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()},
		}, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		btn := ev.Buttons()
		p := &event.PointerPayload{X: x, Y: y, Primary: btn&tcell.Button1 != 0}
		switch {
		case btn&tcell.WheelUp != 0:
			p.Wheel = -1
		case btn&tcell.WheelDown != 0:
			p.Wheel = 1
		}
		return event.Event{Type: event.EventPointer, Payload: p}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return event.Event{Type: event.EventResize, Payload: &event.ResizePayload{Width: w, Height: h}}, true
	}
	return event.Event{}, false
}
