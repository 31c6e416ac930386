package gamestate

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-state/internal/logger"
)

// Op identifies one of the four lifecycle operations.
type Op int

const (
	// OpInitialize prepares a state for use. Its target is StatusInitialized.
	OpInitialize Op = iota
	// OpPause suspends an active state. Its target is StatusPaused.
	OpPause
	// OpContinue resumes a paused state. Its target is StatusContinuing.
	OpContinue
	// OpDeinitialize tears a state down. Its target is StatusDeinitializing.
	OpDeinitialize
)

// ErrUnexpectedTransition is returned by Validate when an operation is
// invoked from a status it is not expected to follow.
var ErrUnexpectedTransition = errors.New("unexpected lifecycle transition")

type opInfo struct {
	name   string
	target Status
	from   []Status // nil means any status
}

var ops = [...]opInfo{
	OpInitialize: {
		name:   "initialize",
		target: StatusInitialized,
		from:   []Status{StatusUninitialized, StatusDeinitializing},
	},
	OpPause: {
		name:   "pause",
		target: StatusPaused,
		from:   []Status{StatusInitialized, StatusContinuing},
	},
	OpContinue: {
		name:   "continue",
		target: StatusContinuing,
		from:   []Status{StatusPaused, StatusInitialized},
	},
	OpDeinitialize: {
		name:   "deinitialize",
		target: StatusDeinitializing,
	},
}

// Ops lists every lifecycle operation.
func Ops() []Op {
	return []Op{OpInitialize, OpPause, OpContinue, OpDeinitialize}
}

func (o Op) valid() bool {
	return o >= 0 && int(o) < len(ops)
}

// String returns the operation name.
func (o Op) String() string {
	if !o.valid() {
		return "unknown"
	}
	return ops[o].name
}

// Target returns the fixed status the operation sets.
func (o Op) Target() Status {
	if !o.valid() {
		return StatusUninitialized
	}
	return ops[o].target
}

// Validate checks whether op is expected after status from.
// Transitions are never refused; the error only feeds diagnostics.
func Validate(from Status, op Op) error {
	if !op.valid() {
		return fmt.Errorf("%w: unknown operation %d", ErrUnexpectedTransition, int(op))
	}
	info := ops[op]
	if info.from == nil {
		return nil
	}
	for _, s := range info.from {
		if s == from {
			return nil
		}
	}
	return fmt.Errorf("%w: %s from %s", ErrUnexpectedTransition, info.name, from)
}

func warnTransition(name string, from Status, op Op, err error) {
	logger.Warn("lifecycle operation out of order",
		zap.String("state", name),
		zap.Stringer("op", op),
		zap.Stringer("from", from),
		zap.Stringer("to", op.Target()),
		zap.Error(err),
	)
}
