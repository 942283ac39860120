package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupInput(t *testing.T) {
	t.Helper()
	setupEvents(t)
	assert.NoError(t, InputInitialize())
	*inputState = InputState{}
	t.Cleanup(func() {
		InputShutdown()
	})
}

func TestInputKeyEdge(t *testing.T) {
	setupInput(t)

	assert.False(t, InputIsKeyDown(KEY_A))
	assert.NoError(t, InputProcessKey(KEY_A, true))
	assert.True(t, InputIsKeyDown(KEY_A))
	assert.False(t, InputWasKeyDown(KEY_A))

	// Update flips current into previous.
	assert.NoError(t, InputUpdate(0.016))
	assert.True(t, InputWasKeyDown(KEY_A))

	assert.NoError(t, InputProcessKey(KEY_A, false))
	assert.False(t, InputIsKeyDown(KEY_A))
	assert.True(t, InputWasKeyDown(KEY_A))
}

func TestInputKeyRepeatFiltered(t *testing.T) {
	setupInput(t)

	pressed := 0
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) { pressed++ })

	// OS key repeat delivers the same state over and over.
	InputProcessKey(KEY_SPACE, true)
	InputProcessKey(KEY_SPACE, true)
	InputProcessKey(KEY_SPACE, true)
	ProcessEvents()

	assert.Equal(t, 1, pressed)
}

func TestInputKeyOutOfRange(t *testing.T) {
	setupInput(t)

	assert.NoError(t, InputProcessKey(KEYS_MAX_KEYS, true))
	assert.False(t, InputIsKeyDown(KEYS_MAX_KEYS))
}

func TestInputButtonsAndMouse(t *testing.T) {
	setupInput(t)

	var events []EventCode
	for _, code := range []EventCode{EVENT_CODE_BUTTON_PRESSED, EVENT_CODE_BUTTON_RELEASED, EVENT_CODE_MOUSE_MOVED, EVENT_CODE_MOUSE_WHEEL} {
		EventRegister(code, func(ctx EventContext) { events = append(events, ctx.Type) })
	}

	InputProcessButton(BUTTON_LEFT, true)
	assert.True(t, InputIsButtonDown(BUTTON_LEFT))
	InputProcessButton(BUTTON_LEFT, false)

	InputProcessMouseMove(10, 20)
	x, y := InputGetMousePosition()
	assert.Equal(t, int32(10), x)
	assert.Equal(t, int32(20), y)

	// Same position again does not fire.
	InputProcessMouseMove(10, 20)

	InputProcessMouseWheel(1)

	ProcessEvents()
	assert.Equal(t, []EventCode{
		EVENT_CODE_BUTTON_PRESSED,
		EVENT_CODE_BUTTON_RELEASED,
		EVENT_CODE_MOUSE_MOVED,
		EVENT_CODE_MOUSE_WHEEL,
	}, events)
}

func TestInputIgnoredWhenShutDown(t *testing.T) {
	setupInput(t)
	InputShutdown()

	assert.NoError(t, InputProcessKey(KEY_B, true))
	assert.False(t, InputIsKeyDown(KEY_B))
}
