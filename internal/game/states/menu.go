package states

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-state/internal/engine/gamestate"
	"github.com/Faultbox/midgard-state/internal/engine/input"
	"github.com/Faultbox/midgard-state/internal/logger"
)

// MenuItem is one selectable entry of a MenuState.
type MenuItem struct {
	Label  string
	Action func(stack *Stack)
}

// MenuState is a keyboard-driven list of actions.
type MenuState struct {
	gamestate.Base

	items     []MenuItem
	selected  int
	activated bool
	stack     *Stack
	canvas    Canvas
	onQuit    func()
	log       *zap.Logger
}

// NewMenuState creates a menu. onQuit runs when Escape is pressed.
func NewMenuState(items []MenuItem, stack *Stack, canvas Canvas, onQuit func()) *MenuState {
	return &MenuState{
		Base:   gamestate.NewBase("menu"),
		items:  items,
		stack:  stack,
		canvas: canvas,
		onQuit: onQuit,
		log:    logger.Named("menu"),
	}
}

// OnInitialize resets the selection.
func (s *MenuState) OnInitialize() {
	s.selected = 0
	s.activated = false
	s.log.Info("menu opened", zap.Int("items", len(s.items)))
	s.Base.OnInitialize()
}

// OnContinue re-arms activation when the menu is uncovered.
func (s *MenuState) OnContinue() {
	s.activated = false
	s.Base.OnContinue()
}

// OnUpdate re-arms activation. At most one item runs per frame.
func (s *MenuState) OnUpdate() {
	s.activated = false
}

// OnKeyboardEvent moves the selection and activates items.
func (s *MenuState) OnKeyboardEvent(e *sdl.KeyboardEvent) {
	code, ok := input.KeyDown(e)
	if !ok || !s.Status().Active() || len(s.items) == 0 {
		return
	}

	switch code {
	case sdl.SCANCODE_UP:
		s.selected = (s.selected + len(s.items) - 1) % len(s.items)
	case sdl.SCANCODE_DOWN:
		s.selected = (s.selected + 1) % len(s.items)
	case sdl.SCANCODE_RETURN, sdl.SCANCODE_KP_ENTER:
		if s.activated {
			return
		}
		s.activated = true
		item := s.items[s.selected]
		s.log.Debug("menu item activated", zap.String("item", item.Label))
		if item.Action != nil {
			item.Action(s.stack)
		}
	case sdl.SCANCODE_ESCAPE:
		if s.onQuit != nil {
			s.onQuit()
		}
	}
}

// OnRender tints the screen per selected item.
func (s *MenuState) OnRender() {
	if s.canvas == nil {
		return
	}
	shade := float32(0.15)
	if n := len(s.items); n > 1 {
		shade += 0.2 * float32(s.selected) / float32(n-1)
	}
	s.canvas.Fill(0.1, shade, 0.25, 1)
}

// Selected returns the index of the highlighted item.
func (s *MenuState) Selected() int {
	return s.selected
}
