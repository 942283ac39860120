package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-gfx/lumen/engine/core"
	"github.com/lumen-gfx/lumen/engine/renderer"
)

// fakeBackend records renderer calls and returns scripted frame errors.
type fakeBackend struct {
	initCalls    int
	drawCalls    int
	resizeCalls  int
	lastResizeW  uint32
	lastResizeH  uint32
	clearR       float32
	clearG       float32
	clearB       float32
	clearA       float32
	drawErr      error
	shutdownDone bool
}

func (f *fakeBackend) Initialize(appName string, appWidth, appHeight uint32) error {
	f.initCalls++
	return nil
}

func (f *fakeBackend) Shutdown() error {
	f.shutdownDone = true
	return nil
}

func (f *fakeBackend) Resized(width, height uint32) error {
	f.resizeCalls++
	f.lastResizeW = width
	f.lastResizeH = height
	return nil
}

func (f *fakeBackend) DrawFrame() error {
	f.drawCalls++
	return f.drawErr
}

func (f *fakeBackend) SetClearColor(r, g, b, a float32) {
	f.clearR, f.clearG, f.clearB, f.clearA = r, g, b, a
}

// fakeSurface stands in for the platform window. With closeAfter set, the
// close flag raises once that many pumps have run, so loop tests can step
// a bounded number of iterations.
type fakeSurface struct {
	width, height uint32
	redraws       int
	pumps         int
	closeAfter    int
}

func (f *fakeSurface) FramebufferSize() (uint32, uint32) {
	return f.width, f.height
}

func (f *fakeSurface) RequestRedraw() {
	f.redraws++
}

func (f *fakeSurface) PumpMessages() {
	f.pumps++
}

func (f *fakeSurface) ShouldClose() bool {
	return f.closeAfter > 0 && f.pumps >= f.closeAfter
}

func newTestEngine(t *testing.T, backend *fakeBackend, surf *fakeSurface) *Engine {
	t.Helper()
	return &Engine{
		currentStage: EngineStageInitialized,
		config:       DefaultConfig(),
		clock:        core.NewClock(),
		renderer:     renderer.NewWithBackend(backend),
		surface:      surf,
		width:        1280,
		height:       720,
	}
}

func TestResizeZeroDimensionSuspends(t *testing.T) {
	backend := &fakeBackend{}
	e := newTestEngine(t, backend, &fakeSurface{})

	e.resize(0, 720)
	assert.True(t, e.isSuspended)
	assert.Zero(t, backend.resizeCalls)
	// The last valid size survives minimization.
	assert.Equal(t, uint32(1280), e.width)
	assert.Equal(t, uint32(720), e.height)

	e.resize(1280, 0)
	assert.True(t, e.isSuspended)
	assert.Zero(t, backend.resizeCalls)
}

func TestResizeStoresSizeAndReconfiguresOnce(t *testing.T) {
	backend := &fakeBackend{}
	e := newTestEngine(t, backend, &fakeSurface{})

	e.resize(800, 600)
	assert.Equal(t, uint32(800), e.width)
	assert.Equal(t, uint32(600), e.height)
	assert.Equal(t, 1, backend.resizeCalls)
	assert.Equal(t, uint32(800), backend.lastResizeW)
	assert.Equal(t, uint32(600), backend.lastResizeH)

	// The same size again does not reconfigure.
	e.resize(800, 600)
	assert.Equal(t, 1, backend.resizeCalls)
}

func TestResizeRestoreResumesWithoutReconfigure(t *testing.T) {
	backend := &fakeBackend{}
	surf := &fakeSurface{}
	e := newTestEngine(t, backend, surf)

	e.resize(0, 0)
	require.True(t, e.isSuspended)

	// Restoring at the pre-minimize size resumes but does not rebuild.
	e.resize(1280, 720)
	assert.False(t, e.isSuspended)
	assert.Zero(t, backend.resizeCalls)
	// The loop gets woken so rendering picks back up.
	assert.Equal(t, 1, surf.redraws)
}

func TestFrameRendersAndSucceeds(t *testing.T) {
	backend := &fakeBackend{}
	e := newTestEngine(t, backend, &fakeSurface{})

	require.NoError(t, e.frame())
	require.NoError(t, e.frame())
	assert.Equal(t, 2, backend.drawCalls)
}

func TestFrameSurfaceLostReconfiguresWithCurrentSize(t *testing.T) {
	backend := &fakeBackend{drawErr: core.ErrSurfaceLost}
	surf := &fakeSurface{width: 1024, height: 768}
	e := newTestEngine(t, backend, surf)

	// A lost surface is not fatal; the engine reconfigures at the
	// window's current size and the next frame retries.
	require.NoError(t, e.frame())
	assert.Equal(t, 1, backend.resizeCalls)
	assert.Equal(t, uint32(1024), backend.lastResizeW)
	assert.Equal(t, uint32(768), backend.lastResizeH)
}

func TestFrameOutOfMemoryIsFatal(t *testing.T) {
	backend := &fakeBackend{drawErr: core.ErrOutOfMemory}
	e := newTestEngine(t, backend, &fakeSurface{})

	err := e.frame()
	assert.ErrorIs(t, err, core.ErrOutOfMemory)
	assert.Zero(t, backend.resizeCalls)
}

func TestFrameOtherErrorsAreSkipped(t *testing.T) {
	backend := &fakeBackend{drawErr: errors.New("transient hiccup")}
	e := newTestEngine(t, backend, &fakeSurface{})

	assert.NoError(t, e.frame())
	assert.Zero(t, backend.resizeCalls)

	backend.drawErr = core.ErrFrameTimeout
	assert.NoError(t, e.frame())
	assert.Zero(t, backend.resizeCalls)
}

func TestEscapeRequestsQuit(t *testing.T) {
	require.NoError(t, core.EventSystemShutdown())
	require.True(t, core.EventSystemInitialize())
	t.Cleanup(func() { core.EventSystemShutdown() })

	backend := &fakeBackend{}
	e := newTestEngine(t, backend, &fakeSurface{})
	e.isRunning = true

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)

	e.onKey(core.EventContext{
		Type: core.EVENT_CODE_KEY_PRESSED,
		Data: &core.KeyEvent{KeyCode: core.KEY_ESCAPE},
	})
	core.ProcessEvents()

	assert.False(t, e.isRunning)
}

func TestNonEscapeKeyDoesNotQuit(t *testing.T) {
	require.NoError(t, core.EventSystemShutdown())
	require.True(t, core.EventSystemInitialize())
	t.Cleanup(func() { core.EventSystemShutdown() })

	backend := &fakeBackend{}
	e := newTestEngine(t, backend, &fakeSurface{})
	e.isRunning = true

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)

	e.onKey(core.EventContext{
		Type: core.EVENT_CODE_KEY_PRESSED,
		Data: &core.KeyEvent{KeyCode: core.KEY_A},
	})
	core.ProcessEvents()

	assert.True(t, e.isRunning)
}

func TestRunCloseStopsBeforeRendering(t *testing.T) {
	backend := &fakeBackend{}
	surf := &fakeSurface{closeAfter: 1}
	e := newTestEngine(t, backend, surf)

	require.NoError(t, e.Run())

	// The close flag was already up on the first pump; nothing rendered
	// and only the initial kick was queued.
	assert.Zero(t, backend.drawCalls)
	assert.Equal(t, 1, surf.redraws)
}

func TestRunFrameQueuesExactlyOneRedraw(t *testing.T) {
	backend := &fakeBackend{}
	surf := &fakeSurface{closeAfter: 2}
	e := newTestEngine(t, backend, surf)

	require.NoError(t, e.Run())

	// One full iteration before the close: one frame drawn, and the
	// initial kick plus exactly one follow-up redraw.
	assert.Equal(t, 1, backend.drawCalls)
	assert.Equal(t, 2, surf.redraws)
}

func TestRunOutOfMemoryStopsWithoutRedraw(t *testing.T) {
	backend := &fakeBackend{drawErr: core.ErrOutOfMemory}
	surf := &fakeSurface{}
	e := newTestEngine(t, backend, surf)

	require.NoError(t, e.Run())

	// The loop winds down after the failed frame instead of queuing
	// another redraw and spinning on the error.
	assert.Equal(t, 1, backend.drawCalls)
	assert.Equal(t, 1, surf.redraws)
	assert.False(t, e.isRunning)
}

func TestFrameMetricsUseFrameToFrameTime(t *testing.T) {
	require.NoError(t, core.MetricsInitialize())

	backend := &fakeBackend{}
	e := newTestEngine(t, backend, &fakeSurface{})
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	// The fake backend draws in microseconds; only the wall-clock delta
	// between frames can account for the pacing below.
	for i := 0; i < 30; i++ {
		time.Sleep(5 * time.Millisecond)
		require.NoError(t, e.frame())
	}

	_, frameMS := core.MetricsFrame()
	assert.GreaterOrEqual(t, frameMS, 3.0)
}

func TestClearColorForwardedToBackend(t *testing.T) {
	backend := &fakeBackend{}
	e := newTestEngine(t, backend, &fakeSurface{})

	e.renderer.SetClearColor(0.1, 0.2, 0.3, 1.0)
	assert.InDelta(t, 0.1, backend.clearR, 0.0001)
	assert.InDelta(t, 0.2, backend.clearG, 0.0001)
	assert.InDelta(t, 0.3, backend.clearB, 0.0001)
	assert.InDelta(t, 1.0, backend.clearA, 0.0001)
}
