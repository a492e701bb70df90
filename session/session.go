package session

import (
	"errors"
	"log"
)

var ErrNoControllers = errors.New("session: no controllers")

// Provider is a display session with hand controllers
type Provider interface {
	Start() error
	Stop()
	Active() bool
	Controllers() []*Controller
}

// Emulated drives controller 0 from the host pointer while active
// The pointer's primary button is the trigger
type Emulated struct {
	controllers []*Controller
	active      bool
	held        bool

	onChange []func(active bool)
}

// NewEmulated creates a session with n controllers
func NewEmulated(n int) *Emulated {
	e := &Emulated{}
	for i := 0; i < n; i++ {
		e.controllers = append(e.controllers, NewController(i))
	}
	return e
}

func (e *Emulated) Start() error {
	if len(e.controllers) == 0 {
		return ErrNoControllers
	}
	if e.active {
		return nil
	}
	e.active = true
	log.Printf("session: started with %d controllers", len(e.controllers))
	e.notify()
	return nil
}

// Stop ends the session, a held trigger is released first
func (e *Emulated) Stop() {
	if !e.active {
		return
	}
	if e.held {
		e.held = false
		e.controllers[0].SelectEnd()
	}
	e.active = false
	log.Printf("session: stopped")
	e.notify()
}

// Toggle starts an inactive session or stops an active one
func (e *Emulated) Toggle() error {
	if e.active {
		e.Stop()
		return nil
	}
	return e.Start()
}

func (e *Emulated) Active() bool {
	return e.active
}

func (e *Emulated) Controllers() []*Controller {
	out := make([]*Controller, len(e.controllers))
	copy(out, e.controllers)
	return out
}

// OnActiveChange registers fn for session start and stop
func (e *Emulated) OnActiveChange(fn func(active bool)) {
	e.onChange = append(e.onChange, fn)
}

// HandlePointer maps primary button edges to select events
// Returns false when the pointer is not consumed by the session
func (e *Emulated) HandlePointer(pressed bool) bool {
	if !e.active || len(e.controllers) == 0 {
		return false
	}
	switch {
	case pressed && !e.held:
		e.held = true
		e.controllers[0].SelectStart()
	case !pressed && e.held:
		e.held = false
		e.controllers[0].SelectEnd()
	}
	return true
}

func (e *Emulated) notify() {
	for _, fn := range e.onChange {
		fn(e.active)
	}
}

var _ Provider = (*Emulated)(nil)
