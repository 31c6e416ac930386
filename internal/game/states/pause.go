package states

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-state/internal/engine/gamestate"
	"github.com/Faultbox/midgard-state/internal/engine/input"
)

// PauseState is the overlay pushed over gameplay.
type PauseState struct {
	gamestate.Base

	stack  *Stack
	canvas Canvas
	onQuit func(stack *Stack)
	closed bool
}

// NewPauseState creates a pause overlay.
func NewPauseState(stack *Stack, canvas Canvas, onQuit func(stack *Stack)) *PauseState {
	return &PauseState{
		Base:   gamestate.NewBase("pause"),
		stack:  stack,
		canvas: canvas,
		onQuit: onQuit,
	}
}

// OnInitialize re-arms the overlay for another close.
func (s *PauseState) OnInitialize() {
	s.closed = false
	s.Base.OnInitialize()
}

// OnKeyboardEvent resumes on Escape or P and quits on Q.
func (s *PauseState) OnKeyboardEvent(e *sdl.KeyboardEvent) {
	code, ok := input.KeyDown(e)
	if !ok || s.closed {
		return
	}

	switch code {
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_P:
		s.closed = true
		s.stack.Pop()
	case sdl.SCANCODE_Q:
		s.closed = true
		if s.onQuit != nil {
			s.onQuit(s.stack)
		} else {
			s.stack.Clear()
		}
	}
}

// OnRender dims the screen.
func (s *PauseState) OnRender() {
	if s.canvas != nil {
		s.canvas.Fill(0.05, 0.05, 0.08, 1)
	}
}
