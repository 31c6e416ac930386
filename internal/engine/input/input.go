// Package input polls SDL2 events and delivers them to game states.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-state/internal/engine/gamestate"
)

// Input collects the SDL events of one frame.
type Input struct {
	events []sdl.Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]sdl.Event, 0, 16),
	}
}

// Poll drains the SDL event queue into this frame's event list.
// Returns true if a quit event was received; the quit event is still recorded.
func (i *Input) Poll() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.events = append(i.events, event)
		if _, ok := event.(*sdl.QuitEvent); ok {
			quit = true
		}
	}
	return quit
}

// Events returns the events from the last Poll.
func (i *Input) Events() []sdl.Event {
	return i.events
}

// IsKeyPressed checks if a specific key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if ke, ok := e.(*sdl.KeyboardEvent); ok {
			if code, down := KeyDown(ke); down && code == scancode {
				return true
			}
		}
	}
	return false
}

// Dispatch delivers one event to a listener. Every event reaches OnEvent
// first; keyboard events then also reach OnKeyboardEvent.
func Dispatch(l gamestate.InputListener, event sdl.Event) {
	if l == nil || event == nil {
		return
	}
	l.OnEvent(event)
	if ke, ok := event.(*sdl.KeyboardEvent); ok {
		l.OnKeyboardEvent(ke)
	}
}

// KeyDown returns the scancode of a fresh key press. Auto-repeat presses and
// releases report false.
func KeyDown(e *sdl.KeyboardEvent) (sdl.Scancode, bool) {
	if e == nil || e.Type != sdl.KEYDOWN || e.Repeat != 0 {
		return 0, false
	}
	return e.Keysym.Scancode, true
}

// Resized reports the new drawable size carried by a window resize event.
func Resized(event sdl.Event) (width, height int, ok bool) {
	we, isWindow := event.(*sdl.WindowEvent)
	if !isWindow || we.Event != sdl.WINDOWEVENT_RESIZED {
		return 0, 0, false
	}
	return int(we.Data1), int(we.Data2), true
}

// FocusLost reports whether the event is the window losing keyboard focus.
func FocusLost(event sdl.Event) bool {
	we, ok := event.(*sdl.WindowEvent)
	return ok && we.Event == sdl.WINDOWEVENT_FOCUS_LOST
}
