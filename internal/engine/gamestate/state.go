package gamestate

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Lifecycle is the caller-invoked transition API of a state.
// The owner decides when each transition happens; a state never triggers
// one on itself through this interface.
type Lifecycle interface {
	// OnInitialize performs first-time setup.
	OnInitialize()
	// OnPause suspends the state without releasing resources.
	OnPause()
	// OnContinue resumes the state after a pause.
	OnContinue()
	// OnDeinitialize releases resources. It is valid from any status.
	OnDeinitialize()
	// Status returns the current status. Safe in every phase.
	Status() Status
}

// InputListener receives input at two granularities. The hooks are
// independent: overriding one leaves the other's default in place.
type InputListener interface {
	// OnEvent receives generic events (window, pointer, system).
	OnEvent(event sdl.Event)
	// OnKeyboardEvent receives key press and release events.
	OnKeyboardEvent(event *sdl.KeyboardEvent)
}

// FrameDriver is driven once per frame by the owner while the state is active.
type FrameDriver interface {
	// OnUpdate advances the state by one owner-defined tick.
	OnUpdate()
	// OnRender draws the current frame. It must not mutate simulation state.
	OnRender()
}

// State is a game state: a lifecycle that listens to input and is driven per frame.
type State interface {
	Lifecycle
	InputListener
	FrameDriver
}

// Base provides the default behaviour of State. Embed it in concrete states
// and call the embedded lifecycle method from every override, otherwise the
// status stops tracking transitions.
//
//	type MenuState struct {
//		gamestate.Base
//	}
//
//	func (s *MenuState) OnInitialize() {
//		s.buildMenu()
//		s.Base.OnInitialize()
//	}
type Base struct {
	name   string
	status Status
}

var _ State = (*Base)(nil)

// NewBase returns an uninitialized Base. The name is only used in log output.
func NewBase(name string) Base {
	return Base{name: name}
}

// Name returns the state name given to NewBase.
func (b *Base) Name() string {
	if b.name == "" {
		return "state"
	}
	return b.name
}

// Status returns the current status.
func (b *Base) Status() Status {
	return b.status
}

// SetStatus forces a status outside the four lifecycle operations.
// It is meant for embedding states implementing custom transitions and is
// deliberately not part of any interface an owner sees.
func (b *Base) SetStatus(status Status) {
	b.status = status
}

// OnInitialize sets the status to StatusInitialized.
func (b *Base) OnInitialize() {
	b.transition(OpInitialize)
}

// OnPause sets the status to StatusPaused.
func (b *Base) OnPause() {
	b.transition(OpPause)
}

// OnContinue sets the status to StatusContinuing.
func (b *Base) OnContinue() {
	b.transition(OpContinue)
}

// OnDeinitialize sets the status to StatusDeinitializing.
func (b *Base) OnDeinitialize() {
	b.transition(OpDeinitialize)
}

// OnEvent ignores the event.
func (b *Base) OnEvent(sdl.Event) {}

// OnKeyboardEvent ignores the event.
func (b *Base) OnKeyboardEvent(*sdl.KeyboardEvent) {}

// OnUpdate does nothing.
func (b *Base) OnUpdate() {}

// OnRender does nothing.
func (b *Base) OnRender() {}

// transition reports an out-of-order call and then applies the target
// status unconditionally.
func (b *Base) transition(op Op) {
	if err := Validate(b.status, op); err != nil {
		warnTransition(b.Name(), b.status, op, err)
	}
	b.status = op.Target()
}
