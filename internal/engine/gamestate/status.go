// Package gamestate defines the lifecycle, input and per-frame contract of a
// single game state (menu, gameplay, pause overlay, loading screen).
//
// A state is purely reactive: its owner decides when it is initialized,
// paused, continued or torn down, which events reach it, and when it is
// updated and rendered. The package only holds the status value faithfully
// and provides no-op defaults for every hook.
package gamestate

// Status is the current phase of a state's existence.
type Status int

const (
	// StatusUninitialized is the status of a freshly constructed state.
	StatusUninitialized Status = iota
	// StatusInitialized means setup is done and the state is running.
	StatusInitialized
	// StatusPaused means the state is suspended but keeps its resources.
	StatusPaused
	// StatusContinuing means the state was resumed after a pause. It is
	// frame-drivable exactly like StatusInitialized and stays until the
	// next transition.
	StatusContinuing
	// StatusDeinitializing is the terminal phase: resources are released.
	StatusDeinitializing
)

var statusNames = [...]string{
	StatusUninitialized:  "uninitialized",
	StatusInitialized:    "initialized",
	StatusPaused:         "paused",
	StatusContinuing:     "continuing",
	StatusDeinitializing: "deinitializing",
}

// Statuses lists every status in declaration order.
func Statuses() []Status {
	return []Status{
		StatusUninitialized,
		StatusInitialized,
		StatusPaused,
		StatusContinuing,
		StatusDeinitializing,
	}
}

// String returns a human-readable status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Active reports whether update and render may be driven in this status.
func (s Status) Active() bool {
	return s == StatusInitialized || s == StatusContinuing
}

// MarshalYAML encodes the status by name.
func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
