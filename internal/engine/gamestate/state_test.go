package gamestate

import (
	"errors"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/midgard-state/internal/logger"
)

// counterState overrides OnUpdate and OnKeyboardEvent only.
type counterState struct {
	Base
	updates int
	keys    int
}

func (s *counterState) OnUpdate() {
	s.updates++
}

func (s *counterState) OnKeyboardEvent(*sdl.KeyboardEvent) {
	s.keys++
}

// setupState overrides OnInitialize and chains to Base.
type setupState struct {
	Base
	built bool
}

func (s *setupState) OnInitialize() {
	s.built = true
	s.Base.OnInitialize()
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })
	return logs
}

func TestNewStateIsUninitialized(t *testing.T) {
	var zero Base
	if zero.Status() != StatusUninitialized {
		t.Errorf("zero Base status = %v, want uninitialized", zero.Status())
	}

	b := NewBase("menu")
	if b.Status() != StatusUninitialized {
		t.Errorf("NewBase status = %v, want uninitialized", b.Status())
	}
	if b.Name() != "menu" {
		t.Errorf("Name() = %q, want menu", b.Name())
	}
	if zero.Name() != "state" {
		t.Errorf("zero Name() = %q, want state", zero.Name())
	}
}

func TestDefaultHooksBeforeInitialize(t *testing.T) {
	b := NewBase("idle")

	b.OnEvent(&sdl.QuitEvent{Type: sdl.QUIT})
	b.OnEvent(nil)
	b.OnKeyboardEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN})
	b.OnKeyboardEvent(nil)
	b.OnUpdate()
	b.OnRender()

	if b.Status() != StatusUninitialized {
		t.Errorf("status after default hooks = %v, want uninitialized", b.Status())
	}
}

func TestTransitionsAreUnconditional(t *testing.T) {
	logs := observeLogs(t)

	for _, from := range Statuses() {
		for _, op := range Ops() {
			b := NewBase("sample")
			b.SetStatus(from)

			switch op {
			case OpInitialize:
				b.OnInitialize()
			case OpPause:
				b.OnPause()
			case OpContinue:
				b.OnContinue()
			case OpDeinitialize:
				b.OnDeinitialize()
			}

			if got := b.Status(); got != op.Target() {
				t.Errorf("%s from %s: status = %v, want %v", op, from, got, op.Target())
			}
		}
	}

	if logs.Len() == 0 {
		t.Error("expected warnings for out-of-order transitions")
	}
}

func TestDeinitializeFromEveryStatus(t *testing.T) {
	logs := observeLogs(t)

	for _, from := range Statuses() {
		b := NewBase("teardown")
		b.SetStatus(from)
		b.OnDeinitialize()

		if b.Status() != StatusDeinitializing {
			t.Errorf("deinitialize from %s: status = %v, want deinitializing", from, b.Status())
		}
	}

	if logs.Len() != 0 {
		t.Errorf("deinitialize should never warn, got %d entries", logs.Len())
	}
}

func TestLifecycleScenario(t *testing.T) {
	logs := observeLogs(t)
	b := NewBase("scenario")

	steps := []struct {
		call func()
		want Status
	}{
		{b.OnInitialize, StatusInitialized},
		{b.OnPause, StatusPaused},
		{b.OnContinue, StatusContinuing},
		{b.OnDeinitialize, StatusDeinitializing},
		{b.OnInitialize, StatusInitialized}, // re-entry
	}

	for i, step := range steps {
		step.call()
		if got := b.Status(); got != step.want {
			t.Fatalf("step %d: status = %v, want %v", i, got, step.want)
		}
	}

	if logs.Len() != 0 {
		t.Errorf("in-order scenario logged %d warnings", logs.Len())
	}
}

func TestContinuingStaysActive(t *testing.T) {
	b := NewBase("resume")
	b.OnInitialize()
	b.OnPause()
	b.OnContinue()

	for i := 0; i < 3; i++ {
		b.OnUpdate()
		b.OnRender()
	}

	if b.Status() != StatusContinuing {
		t.Errorf("status after frames = %v, want continuing", b.Status())
	}
	if !b.Status().Active() {
		t.Error("continuing should be frame-drivable")
	}

	b.OnPause()
	if b.Status() != StatusPaused {
		t.Errorf("pause from continuing: status = %v, want paused", b.Status())
	}
}

func TestOutOfOrderWarns(t *testing.T) {
	logs := observeLogs(t)

	b := NewBase("early")
	b.OnPause()

	if b.Status() != StatusPaused {
		t.Errorf("status = %v, want paused", b.Status())
	}

	entries := logs.FilterMessage("lifecycle operation out of order").All()
	if len(entries) != 1 {
		t.Fatalf("got %d warnings, want 1", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", e.Level)
	}
	fields := e.ContextMap()
	if fields["state"] != "early" {
		t.Errorf("state field = %v, want early", fields["state"])
	}
	if fields["op"] != "pause" {
		t.Errorf("op field = %v, want pause", fields["op"])
	}
	if fields["from"] != "uninitialized" {
		t.Errorf("from field = %v, want uninitialized", fields["from"])
	}
}

func TestOverrideChainsToBase(t *testing.T) {
	s := &setupState{Base: NewBase("setup")}
	var st State = s

	st.OnInitialize()

	if !s.built {
		t.Error("override did not run")
	}
	if st.Status() != StatusInitialized {
		t.Errorf("status = %v, want initialized", st.Status())
	}
}

func TestUpdateCounterIgnoresRender(t *testing.T) {
	s := &counterState{Base: NewBase("counter")}
	var st State = s
	st.OnInitialize()

	for frame := 0; frame < 10; frame++ {
		st.OnUpdate()
		if frame%3 == 0 {
			st.OnRender()
			st.OnRender()
		}
	}

	if s.updates != 10 {
		t.Errorf("updates = %d, want 10", s.updates)
	}
}

func TestEventHooksAreIndependent(t *testing.T) {
	s := &counterState{Base: NewBase("keys")}
	var l InputListener = s

	l.OnEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN})
	l.OnEvent(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION})
	if s.keys != 0 {
		t.Errorf("generic hook reached keyboard override: keys = %d", s.keys)
	}

	l.OnKeyboardEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN})
	if s.keys != 1 {
		t.Errorf("keys = %d, want 1", s.keys)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		from Status
		op   Op
		ok   bool
	}{
		{StatusUninitialized, OpInitialize, true},
		{StatusDeinitializing, OpInitialize, true},
		{StatusInitialized, OpInitialize, false},
		{StatusInitialized, OpPause, true},
		{StatusContinuing, OpPause, true},
		{StatusUninitialized, OpPause, false},
		{StatusPaused, OpPause, false},
		{StatusPaused, OpContinue, true},
		{StatusInitialized, OpContinue, true},
		{StatusUninitialized, OpContinue, false},
		{StatusDeinitializing, OpContinue, false},
		{StatusUninitialized, OpDeinitialize, true},
		{StatusPaused, OpDeinitialize, true},
		{StatusDeinitializing, OpDeinitialize, true},
	}

	for _, tt := range tests {
		err := Validate(tt.from, tt.op)
		if tt.ok && err != nil {
			t.Errorf("Validate(%s, %s) = %v, want nil", tt.from, tt.op, err)
		}
		if !tt.ok && !errors.Is(err, ErrUnexpectedTransition) {
			t.Errorf("Validate(%s, %s) = %v, want ErrUnexpectedTransition", tt.from, tt.op, err)
		}
	}

	if err := Validate(StatusInitialized, Op(42)); !errors.Is(err, ErrUnexpectedTransition) {
		t.Errorf("unknown op: got %v, want ErrUnexpectedTransition", err)
	}
}

func TestOpTargets(t *testing.T) {
	want := map[Op]Status{
		OpInitialize:   StatusInitialized,
		OpPause:        StatusPaused,
		OpContinue:     StatusContinuing,
		OpDeinitialize: StatusDeinitializing,
	}
	for op, status := range want {
		if op.Target() != status {
			t.Errorf("%s.Target() = %v, want %v", op, op.Target(), status)
		}
	}
	if Op(-1).String() != "unknown" {
		t.Errorf("Op(-1).String() = %q, want unknown", Op(-1).String())
	}
}
