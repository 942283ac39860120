package renderer

import (
	"github.com/lumen-gfx/lumen/engine/platform"
	"github.com/lumen-gfx/lumen/engine/renderer/vulkan"
)

// Backend is the contract every rendering backend fulfils. The template
// ships a Vulkan backend; the interface is the seam for other APIs and for
// tests.
type Backend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	DrawFrame() error
	SetClearColor(r, g, b, a float32)
}

type BackendType uint8

const (
	Vulkan BackendType = iota
	DirectX
	Metal
	OpenGL
)

// Options forwards presentation and device preferences to the backend.
type Options struct {
	Debug             bool
	Vsync             bool
	PreferDiscreteGPU bool
}

// Renderer is the thin frontend the engine talks to.
type Renderer struct {
	backend Backend
}

// New creates a renderer with the default Vulkan backend bound to the
// given platform window.
func New(p *platform.Platform, opts Options) *Renderer {
	return &Renderer{
		backend: vulkan.New(p, vulkan.Config{
			Debug:             opts.Debug,
			Vsync:             opts.Vsync,
			PreferDiscreteGPU: opts.PreferDiscreteGPU,
		}),
	}
}

// NewWithBackend injects a specific backend. Used by tests.
func NewWithBackend(b Backend) *Renderer {
	return &Renderer{backend: b}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	return r.backend.Initialize(appName, appWidth, appHeight)
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) DrawFrame() error {
	return r.backend.DrawFrame()
}

func (r *Renderer) SetClearColor(red, green, blue, alpha float32) {
	r.backend.SetClearColor(red, green, blue, alpha)
}
