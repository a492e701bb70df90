package event

// EventType represents the type of loop event
type EventType uint8

const (
	EventNone EventType = iota

	// === Host Input ===

	// EventKeyDown signals a key press from the host window
	// Trigger: terminal poller | Consumer: input.Tracker via KeyTable | Payload: *KeyPayload
	EventKeyDown

	// EventPointer signals a pointer button/move/wheel change
	// Trigger: terminal poller | Consumer: session.Emulated or orbit.Controls | Payload: *PointerPayload
	EventPointer

	// EventResize signals a new display surface size
	// Trigger: terminal poller | Consumer: viewport.Reconciler | Payload: *ResizePayload
	EventResize

	// === Timing ===

	// EventTick is one locomotion period elapsing
	// Trigger: locomotion.Scheduler | Consumer: locomotion.Glider | Payload: nil
	EventTick

	// === Assets ===

	// EventModelLoaded signals the asynchronous model load resolved (success or failure)
	// Trigger: asset.LoadAsync | Consumer: engine.Loop | Payload: *ModelLoadedPayload
	EventModelLoaded

	// === Lifecycle ===

	// EventQuit stops the loop
	// Trigger: terminal poller when the screen closes | Consumer: engine.Loop | Payload: nil
	EventQuit
)

// Event is a single message dispatched on the loop goroutine
type Event struct {
	Type    EventType
	Payload any
}
