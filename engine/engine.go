package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumen-gfx/lumen/engine/core"
	"github.com/lumen-gfx/lumen/engine/platform"
	"github.com/lumen-gfx/lumen/engine/renderer"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// surface is the slice of the platform the loop and the event handlers
// need: the event pump, the close flag, the current drawable size and a
// way to wake the loop.
type surface interface {
	FramebufferSize() (uint32, uint32)
	RequestRedraw()
	PumpMessages()
	ShouldClose() bool
}

// Engine owns the window, the renderer and the main loop. It clears the
// screen every frame and reacts to resize, minimize and quit; everything
// else is left for the application built on top of it.
type Engine struct {
	currentStage Stage
	sessionID    uuid.UUID
	config       *Config
	platform     *platform.Platform
	surface      surface
	renderer     *renderer.Renderer
	watcher      *ConfigWatcher
	clock        *core.Clock
	isRunning    bool
	isSuspended  bool
	width        uint32
	height       uint32
	lastTime     float64
	frameCount   uint64
}

func New(config *Config) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	core.LogSetLevel(logLevelFromString(config.LogLevel))

	p := platform.New()
	r := renderer.New(p, renderer.Options{
		Debug:             config.Debug,
		Vsync:             config.Vsync,
		PreferDiscreteGPU: config.DiscreteGPU,
	})

	return &Engine{
		currentStage: EngineStageUninitialized,
		sessionID:    uuid.New(),
		config:       config,
		clock:        core.NewClock(),
		platform:     p,
		surface:      p,
		renderer:     r,
		isRunning:    false,
		isSuspended:  false,
		width:        config.StartWidth,
		height:       config.StartHeight,
	}, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine already initialized")
	}
	e.currentStage = EngineStageInitializing

	core.LogInfo("Starting session %s", e.sessionID)

	if err := core.InputInitialize(); err != nil {
		return err
	}
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)

	if err := e.platform.Startup(e.config.ApplicationName,
		e.config.StartPosX,
		e.config.StartPosY,
		e.config.StartWidth,
		e.config.StartHeight); err != nil {
		return err
	}

	r, g, b, a, err := ParseClearColor(e.config.ClearColor)
	if err != nil {
		core.LogWarn("invalid clear_color %q: %s", e.config.ClearColor, err)
	} else {
		e.renderer.SetClearColor(r, g, b, a)
	}

	if err := e.renderer.Initialize(e.config.ApplicationName, e.width, e.height); err != nil {
		return err
	}

	// Hot reload is best effort; the engine runs fine without it.
	if watcher, err := NewConfigWatcher("lumen.toml"); err != nil {
		core.LogWarn("config watcher unavailable: %s", err)
	} else {
		e.watcher = watcher
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// Run drives the main loop until a quit event, window close or a fatal
// frame error. The loop blocks in PumpMessages and wakes itself with a
// redraw request after every frame, so it spins only as fast as the
// presentation engine allows while still reacting to every OS event.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine is not initialized")
	}
	e.currentStage = EngineStageRunning
	e.isRunning = true

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	// Kick the first frame; PumpMessages would otherwise block until
	// the OS delivers something.
	e.surface.RequestRedraw()

	for e.isRunning {
		e.surface.PumpMessages()

		if e.surface.ShouldClose() {
			e.isRunning = false
			break
		}

		core.ProcessEvents()
		e.applyConfigChanges()

		if !e.isRunning {
			break
		}

		if !e.isSuspended {
			if err := e.frame(); err != nil {
				core.LogError("frame failed, shutting down: %s", err)
				e.isRunning = false
				break
			}
			// Keep rendering continuously.
			e.surface.RequestRedraw()
		}
	}

	return nil
}

// frame renders one frame and classifies the outcome. A lost surface is
// reconfigured with the window's current size and retried next frame; out
// of memory is fatal; anything else skips the frame.
func (e *Engine) frame() error {
	e.clock.Update()
	currentTime := e.clock.Elapsed()
	delta := currentTime - e.lastTime

	err := e.renderer.DrawFrame()
	switch {
	case err == nil:
	case errors.Is(err, core.ErrSurfaceLost):
		core.LogWarn("surface lost, reconfiguring")
		w, h := e.surface.FramebufferSize()
		if resizeErr := e.renderer.OnResize(w, h); resizeErr != nil {
			return resizeErr
		}
	case errors.Is(err, core.ErrOutOfMemory):
		return err
	default:
		core.LogWarn("frame skipped: %s", err)
	}

	// Frame-to-frame wall clock, not just the draw duration.
	core.MetricsUpdate(delta)
	e.frameCount++
	if e.frameCount%300 == 0 {
		fps, frameTime := core.MetricsFrame()
		core.LogDebug("fps: %.1f, frame time: %.2fms", fps, frameTime)
	}

	// Input state flips to the next frame after everything that wanted
	// to read it this frame has run.
	core.InputUpdate(delta)
	e.lastTime = currentTime

	return nil
}

// applyConfigChanges picks up hot-reloaded configs without blocking the
// loop. Only live-applicable settings are honored.
func (e *Engine) applyConfigChanges() {
	if e.watcher == nil {
		return
	}
	select {
	case config := <-e.watcher.Changes():
		core.LogInfo("config reloaded")
		core.LogSetLevel(logLevelFromString(config.LogLevel))
		if r, g, b, a, err := ParseClearColor(config.ClearColor); err != nil {
			core.LogWarn("invalid clear_color %q: %s", config.ClearColor, err)
		} else {
			e.renderer.SetClearColor(r, g, b, a)
		}
		e.config.LogLevel = config.LogLevel
		e.config.ClearColor = config.ClearColor
	default:
	}
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown

	if e.watcher != nil {
		e.watcher.Shutdown()
		e.watcher = nil
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	// The renderer owns the surface and must release it before the
	// platform destroys the window.
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}

	e.currentStage = EngineStageUninitialized
	return nil
}

// GetFramebufferSize returns the width and height (in this order) of the
// last known framebuffer size.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// RequestQuit fires the application quit event and wakes the loop. Safe
// to call from any goroutine.
func (e *Engine) RequestQuit() {
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_APPLICATION_QUIT,
	})
	e.surface.RequestRedraw()
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("Quit event received, shutting down.")
		e.isRunning = false
	}
}

func (e *Engine) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong payload for event type `%d`", context.Type)
		return
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED && ke.KeyCode == core.KEY_ESCAPE {
		// Firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
	}
}

func (e *Engine) onResized(context core.EventContext) {
	if context.Type != core.EVENT_CODE_RESIZED {
		return
	}
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong payload for event type `%d`", context.Type)
		return
	}
	e.resize(se.WindowWidth, se.WindowHeight)
}

// resize updates the tracked size and reconfigures the renderer exactly
// once per change. A zero dimension means the window is minimized; the
// engine suspends and keeps the last valid size untouched.
func (e *Engine) resize(width, height uint32) {
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return
	}

	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
		// Wake the loop; no redraw requests were queued while suspended.
		e.surface.RequestRedraw()
	}

	if width == e.width && height == e.height {
		return
	}

	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	if err := e.renderer.OnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
}
