// Package states implements the game's concrete states and the stack that
// drives their lifecycle.
package states

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-state/internal/engine/gamestate"
	"github.com/Faultbox/midgard-state/internal/engine/input"
	"github.com/Faultbox/midgard-state/internal/logger"
)

// Canvas is the drawing surface states render to.
type Canvas interface {
	Fill(r, g, b, a float32)
}

type requestKind int

const (
	requestPush requestKind = iota
	requestPop
	requestReplace
	requestClear
)

func (k requestKind) String() string {
	switch k {
	case requestPush:
		return "push"
	case requestPop:
		return "pop"
	case requestReplace:
		return "replace"
	case requestClear:
		return "clear"
	default:
		return "unknown"
	}
}

type request struct {
	kind  requestKind
	state gamestate.State
}

// entry is a stacked state with its skip bookkeeping. The state itself need
// not be comparable.
type entry struct {
	state   gamestate.State
	skipped gamestate.Status
	warned  bool
}

// Entry describes one stacked state in a Snapshot.
type Entry struct {
	Name   string           `yaml:"name"`
	Status gamestate.Status `yaml:"status"`
}

// Stack owns game states and drives them. Only the top state receives
// input and frame calls. Changes are queued and applied at the start of the
// next Update so states can request them from inside their own hooks.
type Stack struct {
	states  []entry
	pending []request
	log     *zap.Logger
}

// NewStack creates an empty state stack.
func NewStack() *Stack {
	return &Stack{
		log: logger.Named("states"),
	}
}

// Push schedules a state to be placed on top. The current top is paused.
func (m *Stack) Push(s gamestate.State) {
	m.pending = append(m.pending, request{kind: requestPush, state: s})
}

// Pop schedules removal of the top state. The state below is continued.
func (m *Stack) Pop() {
	m.pending = append(m.pending, request{kind: requestPop})
}

// Replace schedules swapping the top state for s.
func (m *Stack) Replace(s gamestate.State) {
	m.pending = append(m.pending, request{kind: requestReplace, state: s})
}

// Clear schedules removal of every state.
func (m *Stack) Clear() {
	m.pending = append(m.pending, request{kind: requestClear})
}

// Top returns the top state, or nil when the stack is empty.
func (m *Stack) Top() gamestate.State {
	if len(m.states) == 0 {
		return nil
	}
	return m.states[len(m.states)-1].state
}

// Len returns the number of states on the stack.
func (m *Stack) Len() int {
	return len(m.states)
}

// Empty reports whether the stack holds no state and has nothing pending.
func (m *Stack) Empty() bool {
	return len(m.states) == 0 && len(m.pending) == 0
}

// Snapshot lists the stacked states from bottom to top.
func (m *Stack) Snapshot() []Entry {
	out := make([]Entry, len(m.states))
	for i, e := range m.states {
		out[i] = Entry{Name: nameOf(e.state), Status: e.state.Status()}
	}
	return out
}

// Apply runs every queued change, including changes queued by the hooks
// it triggers.
func (m *Stack) Apply() {
	if len(m.pending) == 0 {
		return
	}
	for len(m.pending) > 0 {
		req := m.pending[0]
		m.pending = m.pending[1:]
		m.apply(req)
	}
	m.pending = m.pending[:0]

	if ce := m.log.Check(zap.DebugLevel, "state stack"); ce != nil {
		out, err := yaml.Marshal(m.Snapshot())
		if err != nil {
			ce.Write(zap.Error(err))
			return
		}
		ce.Write(zap.String("snapshot", string(out)))
	}
}

// Update applies pending changes and updates the top state.
func (m *Stack) Update() {
	m.Apply()

	if top := m.drivable("update"); top != nil {
		top.OnUpdate()
	}
}

// Render renders the top state.
func (m *Stack) Render() {
	if top := m.drivable("render"); top != nil {
		top.OnRender()
	}
}

// HandleEvent forwards an input event to the top state.
func (m *Stack) HandleEvent(event sdl.Event) {
	if top := m.Top(); top != nil {
		input.Dispatch(top, event)
	}
}

func (m *Stack) apply(req request) {
	m.log.Debug("applying state change",
		zap.Stringer("kind", req.kind),
		zap.String("state", nameOf(req.state)),
		zap.Int("depth", len(m.states)),
	)

	switch req.kind {
	case requestPush:
		if req.state == nil {
			return
		}
		if top := m.Top(); top != nil && top.Status().Active() {
			top.OnPause()
		}
		m.states = append(m.states, entry{state: req.state})
		req.state.OnInitialize()

	case requestPop:
		if m.Top() == nil {
			m.log.Warn("pop on empty state stack")
			return
		}
		m.remove()
		if top := m.Top(); top != nil && top.Status() == gamestate.StatusPaused {
			top.OnContinue()
		}

	case requestReplace:
		if m.Top() != nil {
			m.remove()
		}
		if req.state == nil {
			return
		}
		m.states = append(m.states, entry{state: req.state})
		req.state.OnInitialize()

	case requestClear:
		for m.Top() != nil {
			m.remove()
		}
	}
}

// remove deinitializes and drops the top state.
func (m *Stack) remove() {
	last := len(m.states) - 1
	m.states[last].state.OnDeinitialize()
	m.states[last] = entry{}
	m.states = m.states[:last]
}

// drivable returns the top state if it may receive frame calls. An inactive
// top is skipped with one warning per status it sits in.
func (m *Stack) drivable(hook string) gamestate.State {
	if len(m.states) == 0 {
		return nil
	}
	top := &m.states[len(m.states)-1]
	status := top.state.Status()
	if status.Active() {
		top.warned = false
		return top.state
	}
	if !top.warned || top.skipped != status {
		top.skipped = status
		top.warned = true
		m.log.Warn("skipping frame hook on inactive state",
			zap.String("state", nameOf(top.state)),
			zap.String("hook", hook),
			zap.Stringer("status", status),
		)
	}
	return nil
}

func nameOf(s gamestate.State) string {
	if s == nil {
		return ""
	}
	if n, ok := s.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "state"
}
