package event

var typeToName = map[EventType]string{
	EventNone:        "None",
	EventKeyDown:     "KeyDown",
	EventPointer:     "Pointer",
	EventResize:      "Resize",
	EventTick:        "Tick",
	EventModelLoaded: "ModelLoaded",
	EventQuit:        "Quit",
}

// String returns the registered name, used in debug logs
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}
