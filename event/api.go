package event

// Poster is the producer side of the queue, handed to goroutines outside the loop
type Poster interface {
	Push(Event)
}

// EmitResize posts a resize event
func EmitResize(p Poster, width, height int) {
	p.Push(Event{Type: EventResize, Payload: &ResizePayload{Width: width, Height: height}})
}

// EmitTick posts a locomotion tick
func EmitTick(p Poster) {
	p.Push(Event{Type: EventTick})
}

// EmitQuit asks the loop to stop
func EmitQuit(p Poster) {
	p.Push(Event{Type: EventQuit})
}
