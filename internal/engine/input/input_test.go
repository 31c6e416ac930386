package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-state/internal/engine/gamestate"
)

// recorder logs the order in which hooks fire.
type recorder struct {
	gamestate.Base
	calls []string
}

func (r *recorder) OnEvent(sdl.Event) {
	r.calls = append(r.calls, "event")
}

func (r *recorder) OnKeyboardEvent(*sdl.KeyboardEvent) {
	r.calls = append(r.calls, "keyboard")
}

func keyEvent(typ uint32, code sdl.Scancode, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Type:   typ,
		Repeat: repeat,
		Keysym: sdl.Keysym{Scancode: code},
	}
}

func TestDispatchOrder(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  []string
	}{
		{"keyboard", keyEvent(sdl.KEYDOWN, sdl.SCANCODE_A, 0), []string{"event", "keyboard"}},
		{"mouse", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION}, []string{"event"}},
		{"window", &sdl.WindowEvent{Type: sdl.WINDOWEVENT}, []string{"event"}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			Dispatch(r, tt.event)

			if len(r.calls) != len(tt.want) {
				t.Fatalf("calls = %v, want %v", r.calls, tt.want)
			}
			for i := range tt.want {
				if r.calls[i] != tt.want[i] {
					t.Errorf("call %d = %s, want %s", i, r.calls[i], tt.want[i])
				}
			}
		})
	}
}

func TestDispatchNilListener(t *testing.T) {
	// Must not panic.
	Dispatch(nil, keyEvent(sdl.KEYDOWN, sdl.SCANCODE_A, 0))
}

func TestKeyDown(t *testing.T) {
	tests := []struct {
		name   string
		event  *sdl.KeyboardEvent
		want   sdl.Scancode
		wantOK bool
	}{
		{"press", keyEvent(sdl.KEYDOWN, sdl.SCANCODE_ESCAPE, 0), sdl.SCANCODE_ESCAPE, true},
		{"repeat", keyEvent(sdl.KEYDOWN, sdl.SCANCODE_ESCAPE, 1), 0, false},
		{"release", keyEvent(sdl.KEYUP, sdl.SCANCODE_ESCAPE, 0), 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		code, ok := KeyDown(tt.event)
		if ok != tt.wantOK || code != tt.want {
			t.Errorf("%s: KeyDown = (%d, %v), want (%d, %v)", tt.name, code, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsKeyPressed(t *testing.T) {
	in := New()
	in.events = append(in.events,
		&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION},
		keyEvent(sdl.KEYUP, sdl.SCANCODE_Q, 0),
		keyEvent(sdl.KEYDOWN, sdl.SCANCODE_P, 0),
	)

	if !in.IsKeyPressed(sdl.SCANCODE_P) {
		t.Error("expected P to be pressed")
	}
	if in.IsKeyPressed(sdl.SCANCODE_Q) {
		t.Error("Q was released, not pressed")
	}
	if len(in.Events()) != 3 {
		t.Errorf("Events() len = %d, want 3", len(in.Events()))
	}
}

func TestWindowHelpers(t *testing.T) {
	resize := &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600}
	w, h, ok := Resized(resize)
	if !ok || w != 800 || h != 600 {
		t.Errorf("Resized = (%d, %d, %v), want (800, 600, true)", w, h, ok)
	}
	if _, _, ok := Resized(keyEvent(sdl.KEYDOWN, sdl.SCANCODE_A, 0)); ok {
		t.Error("keyboard event is not a resize")
	}

	if !FocusLost(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_LOST}) {
		t.Error("expected focus lost")
	}
	if FocusLost(resize) {
		t.Error("resize is not focus lost")
	}
}
