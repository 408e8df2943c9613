// Package input turns SDL events into per-frame key, button and mouse state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseDown
	EventMouseUp
)

// Event is one discrete input edge from the last Update.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	Button uint8
}

// Input holds this frame's edges and the keys held across frames.
type Input struct {
	events  []Event
	held    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool
	clicked uint32 // bit per mouse button pressed this frame

	mouseDX, mouseDY float32
}

func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		held:    make(map[sdl.Scancode]bool),
		pressed: make(map[sdl.Scancode]bool),
	}
}

// Update drains the SDL queue. It returns true when the window was asked
// to close.
func (i *Input) Update() bool {
	i.reset()

	quit := false
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if i.handle(ev) {
			quit = true
		}
	}
	return quit
}

func (i *Input) reset() {
	i.events = i.events[:0]
	clear(i.pressed)
	i.clicked = 0
	i.mouseDX, i.mouseDY = 0, 0
}

// handle folds one SDL event into the frame state.
func (i *Input) handle(ev sdl.Event) (quit bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.events = append(i.events, Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)})
		}

	case *sdl.KeyboardEvent:
		if e.Repeat == 0 {
			i.key(e.Keysym.Scancode, e.Type == sdl.KEYDOWN)
		}

	case *sdl.MouseMotionEvent:
		i.mouseDX += float32(e.XRel)
		i.mouseDY += float32(e.YRel)

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.clicked |= 1 << e.Button
			i.events = append(i.events, Event{Type: EventMouseDown, Button: e.Button})
		} else {
			i.events = append(i.events, Event{Type: EventMouseUp, Button: e.Button})
		}
	}
	return false
}

func (i *Input) key(sc sdl.Scancode, down bool) {
	if !down {
		delete(i.held, sc)
		i.events = append(i.events, Event{Type: EventKeyUp, Key: sc})
		return
	}
	i.held[sc] = true
	i.pressed[sc] = true
	i.events = append(i.events, Event{Type: EventKeyDown, Key: sc})
}

// Events returns the edges seen by the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports a key that went down during the last Update.
func (i *Input) IsKeyPressed(sc sdl.Scancode) bool {
	return i.pressed[sc]
}

func (i *Input) IsKeyHeld(sc sdl.Scancode) bool {
	return i.held[sc]
}

// IsButtonPressed reports a mouse button that went down during the last
// Update.
func (i *Input) IsButtonPressed(button uint8) bool {
	return i.clicked&(1<<button) != 0
}

// Axis is +1 when only positive is held, -1 when only negative is.
func (i *Input) Axis(positive, negative sdl.Scancode) float32 {
	var v float32
	if i.held[positive] {
		v++
	}
	if i.held[negative] {
		v--
	}
	return v
}

// MouseDelta is the relative motion accumulated by the last Update.
func (i *Input) MouseDelta() (dx, dy float32) {
	return i.mouseDX, i.mouseDY
}
