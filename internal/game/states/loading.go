package states

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-state/internal/engine/gamestate"
	"github.com/Faultbox/midgard-state/internal/logger"
)

// Phase is the progress of a LoadingState.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// LoadingStateConfig contains configuration for the loading state.
type LoadingStateConfig struct {
	Name string

	// Load runs off the frame loop. A nil Load finishes immediately.
	Load func() error

	// MinFrames keeps the loading screen up for at least this many updates.
	MinFrames int

	// OnDone is called once from OnUpdate after Load succeeded.
	OnDone func(stack *Stack)

	// OnFail is called once from OnUpdate after Load failed.
	OnFail func(stack *Stack, err error)
}

// LoadingState runs a loader in the background and polls it every frame.
// On failure it reports the error through Err and forces itself to
// StatusDeinitializing so its owner stops driving it.
type LoadingState struct {
	gamestate.Base

	config LoadingStateConfig
	stack  *Stack
	canvas Canvas
	log    *zap.Logger

	phase  Phase
	result chan error
	err    error
	frames int
}

// NewLoadingState creates a new loading state.
func NewLoadingState(cfg LoadingStateConfig, stack *Stack, canvas Canvas) *LoadingState {
	if cfg.Name == "" {
		cfg.Name = "loading"
	}
	return &LoadingState{
		Base:   gamestate.NewBase(cfg.Name),
		config: cfg,
		stack:  stack,
		canvas: canvas,
		log:    logger.Named(cfg.Name),
	}
}

// OnInitialize starts the loader and returns without waiting for it.
func (s *LoadingState) OnInitialize() {
	s.phase = PhaseLoading
	s.err = nil
	s.frames = 0
	s.result = make(chan error, 1)

	s.log.Info("loading started", zap.Int("minFrames", s.config.MinFrames))
	go run(s.config.Load, s.result)

	s.Base.OnInitialize()
}

// OnUpdate polls the loader.
func (s *LoadingState) OnUpdate() {
	s.frames++

	if s.phase == PhaseLoading {
		select {
		case err := <-s.result:
			if err != nil {
				s.fail(err)
				return
			}
			s.phase = PhaseReady
			s.log.Debug("loader finished", zap.Int("frames", s.frames))
		default:
		}
	}

	if s.phase == PhaseReady && s.frames >= s.config.MinFrames {
		s.phase = PhaseDone
		s.log.Info("loading complete", zap.Int("frames", s.frames))
		if s.config.OnDone != nil {
			s.config.OnDone(s.stack)
		}
	}
}

// OnRender draws a bar colour that brightens while loading.
func (s *LoadingState) OnRender() {
	if s.canvas == nil {
		return
	}
	level := float32(0.1)
	if s.config.MinFrames > 0 {
		level += 0.4 * float32(min(s.frames, s.config.MinFrames)) / float32(s.config.MinFrames)
	}
	s.canvas.Fill(level, level, level+0.05, 1)
}

// Phase returns the loading phase.
func (s *LoadingState) Phase() Phase {
	return s.phase
}

// Err returns the loader error after a failure.
func (s *LoadingState) Err() error {
	return s.err
}

// Frames returns the number of updates since initialization.
func (s *LoadingState) Frames() int {
	return s.frames
}

func (s *LoadingState) fail(err error) {
	s.phase = PhaseFailed
	s.err = errors.Wrap(err, s.Name())
	s.log.Error("loading failed", zap.Error(s.err))

	// The state is dead; tell the owner without waiting for it to notice.
	s.SetStatus(gamestate.StatusDeinitializing)

	if s.config.OnFail != nil {
		s.config.OnFail(s.stack, s.err)
	}
}

// run executes load and always delivers exactly one result.
func run(load func() error, result chan<- error) {
	defer func() {
		if r := recover(); r != nil {
			result <- errors.Errorf("loader panicked: %v", r)
		}
	}()
	if load == nil {
		result <- nil
		return
	}
	result <- load()
}
