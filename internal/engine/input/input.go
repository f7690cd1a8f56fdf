// Package input turns SDL2 events into the player host's frame input.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX float32
	DeltaY float32
	Button uint8
}

// Input collects one frame of events plus orbit gestures.
type Input struct {
	events   []Event
	dragging bool

	// DragX/DragY sum left-button drag motion this frame, in pixels.
	DragX, DragY float32
	// Wheel sums vertical scroll this frame; positive scrolls away from the user.
	Wheel float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{events: make([]Event, 0, 16)}
}

// Update polls SDL events. It returns true when the window should close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.DragX, i.DragY, i.Wheel = 0, 0, 0

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			typ := EventKeyUp
			if e.Type == sdl.KEYDOWN {
				typ = EventKeyDown
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			}
			i.events = append(i.events, Event{Type: typ, Key: e.Keysym.Scancode})

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.DragX += float32(e.XRel)
				i.DragY += float32(e.YRel)
			}
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DeltaX: float32(e.XRel),
				DeltaY: float32(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			typ := EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				typ = EventMouseDown
			}
			if e.Button == sdl.BUTTON_LEFT {
				i.dragging = typ == EventMouseDown
			}
			i.events = append(i.events, Event{
				Type:   typ,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			i.Wheel += dy
			i.events = append(i.events, Event{Type: EventMouseWheel, DeltaY: dy})
		}
	}
	return quit
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Resized returns the last window size change this frame.
func (i *Input) Resized() (width, height int, ok bool) {
	for _, e := range i.events {
		if e.Type == EventWindowResize {
			width, height, ok = e.Width, e.Height, true
		}
	}
	return width, height, ok
}
