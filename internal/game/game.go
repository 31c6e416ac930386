// Package game implements the main loop that drives the state stack.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-state/internal/config"
	"github.com/Faultbox/midgard-state/internal/engine/gamestate"
	"github.com/Faultbox/midgard-state/internal/engine/input"
	"github.com/Faultbox/midgard-state/internal/engine/renderer"
	"github.com/Faultbox/midgard-state/internal/engine/window"
	"github.com/Faultbox/midgard-state/internal/game/states"
	"github.com/Faultbox/midgard-state/internal/logger"
)

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	stack    *states.Stack
}

// New creates the window and renderer and schedules the start state.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("start", cfg.Game.StartState),
	)

	g := &Game{
		config: cfg,
		input:  input.New(),
		stack:  states.NewStack(),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context must exist before the renderer is created. Fullscreen
	// may not honour the configured size, so ask the window.
	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	Start(g.stack, g.renderer, cfg.Game, g.Quit)

	logger.Info("game initialized successfully")
	return g, nil
}

// Start schedules the configured start state on the stack, behind a loading
// screen when cfg.LoadingFrames is positive. quit is called from the menu.
func Start(stack *states.Stack, canvas states.Canvas, cfg config.GameConfig, quit func()) {
	var menu *states.MenuState
	toMenu := func(s *states.Stack) {
		s.Clear()
		s.Push(menu)
	}
	newPlay := func() *states.PlayState {
		return states.NewPlayState(stack, canvas, toMenu)
	}
	menu = states.NewMenuState([]states.MenuItem{
		{Label: "Play", Action: func(s *states.Stack) { s.Replace(newPlay()) }},
		{Label: "Quit", Action: func(*states.Stack) { quit() }},
	}, stack, canvas, quit)

	var first gamestate.State = menu
	if cfg.StartState == config.StartPlay {
		first = newPlay()
	}

	if cfg.LoadingFrames <= 0 {
		stack.Push(first)
		return
	}

	stack.Push(states.NewLoadingState(states.LoadingStateConfig{
		MinFrames: cfg.LoadingFrames,
		OnDone:    func(s *states.Stack) { s.Replace(first) },
		OnFail: func(s *states.Stack, err error) {
			logger.Error("startup loading failed", zap.Error(err))
			quit()
		},
	}, stack, canvas))
}

// Run starts the main game loop. It returns when Quit is called, the window
// is closed, or the state stack runs empty.
func (g *Game) Run() error {
	g.running = true

	budget := g.config.FrameBudget()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop", zap.Duration("frameBudget", budget))

	for g.running {
		frameStart := time.Now()

		if g.input.Poll() {
			g.running = false
		}
		for _, event := range g.input.Events() {
			if w, h, ok := input.Resized(event); ok {
				g.renderer.Resize(w, h)
			}
			g.stack.HandleEvent(event)
		}
		if !g.running {
			break
		}

		g.stack.Update()
		if g.stack.Empty() {
			logger.Info("state stack empty, stopping")
			break
		}

		g.renderer.Begin()
		g.stack.Render()
		g.renderer.End()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.config.Game.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("%s - %d fps", g.config.Window.Title, frameCount))
			}
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if budget > 0 {
			if rest := budget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

// Quit stops the loop after the current frame.
func (g *Game) Quit() {
	g.running = false
}

// Close deinitializes every state and releases the renderer and window.
func (g *Game) Close() {
	logger.Info("closing game")

	g.stack.Clear()
	g.stack.Apply()

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
