package core

import "errors"

// Per-frame error classes surfaced by the renderer backend. The engine
// decides on recovery: ErrSurfaceLost triggers a reconfigure with the
// window's current size, ErrOutOfMemory stops the loop, ErrFrameTimeout
// (and anything else) is skipped and the next frame tries again.
var (
	ErrSurfaceLost  = errors.New("presentable surface lost")
	ErrOutOfMemory  = errors.New("device out of memory")
	ErrFrameTimeout = errors.New("frame not ready in time")
)
