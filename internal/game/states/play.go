package states

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-state/internal/engine/gamestate"
	"github.com/Faultbox/midgard-state/internal/engine/input"
	"github.com/Faultbox/midgard-state/internal/logger"
)

// PlayState is the gameplay state. It advances a tick counter every update
// and opens a pause overlay on Escape, P or focus loss.
type PlayState struct {
	gamestate.Base

	stack  *Stack
	canvas Canvas
	onQuit func(stack *Stack)
	log    *zap.Logger

	ticks       int
	renders     int
	pauseQueued bool
}

// NewPlayState creates the gameplay state. onQuit is handed to the pause
// overlay and runs when the player quits from there.
func NewPlayState(stack *Stack, canvas Canvas, onQuit func(stack *Stack)) *PlayState {
	return &PlayState{
		Base:   gamestate.NewBase("play"),
		stack:  stack,
		canvas: canvas,
		onQuit: onQuit,
		log:    logger.Named("play"),
	}
}

// OnInitialize starts a fresh session.
func (s *PlayState) OnInitialize() {
	s.ticks = 0
	s.renders = 0
	s.pauseQueued = false
	s.log.Info("session started")
	s.Base.OnInitialize()
}

// OnPause keeps the session intact.
func (s *PlayState) OnPause() {
	s.log.Info("session paused", zap.Int("tick", s.ticks))
	s.Base.OnPause()
}

// OnContinue resumes the session where it stopped.
func (s *PlayState) OnContinue() {
	s.pauseQueued = false
	s.log.Info("session resumed", zap.Int("tick", s.ticks))
	s.Base.OnContinue()
}

// OnDeinitialize ends the session.
func (s *PlayState) OnDeinitialize() {
	s.log.Info("session ended", zap.Int("ticks", s.ticks))
	s.Base.OnDeinitialize()
}

// OnEvent pauses when the window loses focus.
func (s *PlayState) OnEvent(e sdl.Event) {
	if input.FocusLost(e) {
		s.requestPause()
	}
}

// OnKeyboardEvent pauses on Escape or P.
func (s *PlayState) OnKeyboardEvent(e *sdl.KeyboardEvent) {
	code, ok := input.KeyDown(e)
	if !ok {
		return
	}
	if code == sdl.SCANCODE_ESCAPE || code == sdl.SCANCODE_P {
		s.requestPause()
	}
}

// OnUpdate advances the simulation by one tick.
func (s *PlayState) OnUpdate() {
	s.ticks++
}

// OnRender draws the playfield.
func (s *PlayState) OnRender() {
	s.renders++
	if s.canvas != nil {
		s.canvas.Fill(0.1, 0.1, 0.15, 1)
	}
}

// Ticks returns the number of simulated ticks.
func (s *PlayState) Ticks() int {
	return s.ticks
}

// Renders returns the number of rendered frames.
func (s *PlayState) Renders() int {
	return s.renders
}

// requestPause queues a single pause overlay while active.
func (s *PlayState) requestPause() {
	if s.pauseQueued || !s.Status().Active() {
		return
	}
	s.pauseQueued = true
	s.stack.Push(NewPauseState(s.stack, s.canvas, s.onQuit))
}
