package core

import (
	"sync"

	"github.com/lumen-gfx/lumen/engine/containers"
)

// EventCode identifies one kind of engine event. Codes below 255 are
// reserved for the engine; applications built on the template should use
// codes beyond that.
type EventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed/released. Data is *KeyEvent.
	EVENT_CODE_KEY_PRESSED  EventCode = 0x02
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Mouse button pressed/released. Data is *MouseEvent.
	EVENT_CODE_BUTTON_PRESSED  EventCode = 0x04
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05

	// Mouse moved/scrolled. Data is *MouseEvent.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07

	// Window resized/resolution changed from the OS. Data is *SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08

	MAX_EVENT_CODE EventCode = 0xFF
)

// EventContext is the tagged payload delivered to listeners.
type EventContext struct {
	Type EventCode
	Data interface{}
}

// KeyEvent is the payload for key press/release events.
type KeyEvent struct {
	KeyCode KeyCode
}

// MouseEvent is the payload for button, move and wheel events.
type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

// SystemEvent is the payload for window-level events.
type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

// FnOnEvent is invoked for every event of a registered code.
type FnOnEvent func(context EventContext)

// pendingQueueSize bounds how many events can pile up between two drains of
// the queue. One swing of input plus a resize fits with a lot of room.
const pendingQueueSize = 512

type eventSystemState struct {
	listeners map[EventCode][]FnOnEvent
	pending   *containers.RingQueue[EventContext]

	// Fired events may come from the config watcher or a signal handler,
	// so the queue itself is guarded. Dispatch always happens on the main
	// thread.
	mu sync.Mutex
}

var eventState *eventSystemState

// EventSystemInitialize prepares the listener table and the pending queue.
// Returns false when already initialized.
func EventSystemInitialize() bool {
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		listeners: make(map[EventCode][]FnOnEvent),
		pending:   containers.NewRingQueue[EventContext](pendingQueueSize),
	}
	return true
}

// EventSystemShutdown releases the event system. A later
// EventSystemInitialize starts fresh. Stragglers holding the old state
// still see a valid queue; their events are simply never drained.
func EventSystemShutdown() error {
	eventState = nil
	return nil
}

// EventRegister subscribes a callback to the given code. Listeners for the
// same code are invoked in registration order.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if eventState == nil || onEvent == nil {
		return false
	}
	eventState.mu.Lock()
	eventState.listeners[code] = append(eventState.listeners[code], onEvent)
	eventState.mu.Unlock()
	return true
}

// EventUnregisterAll drops every listener for the given code.
func EventUnregisterAll(code EventCode) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	if _, ok := eventState.listeners[code]; !ok {
		return false
	}
	delete(eventState.listeners, code)
	return true
}

// EventFire enqueues an event for the next ProcessEvents drain. Events fired
// with no listener registered are dropped there silently.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	err := eventState.pending.Enqueue(context)
	eventState.mu.Unlock()
	if err != nil {
		LogWarn("event queue full, dropping event code %d", context.Type)
		return false
	}
	return true
}

// ProcessEvents drains the pending queue and dispatches each event to its
// listeners. Called once per loop iteration by the engine.
func ProcessEvents() {
	if eventState == nil {
		return
	}
	for {
		eventState.mu.Lock()
		context, err := eventState.pending.Dequeue()
		var callbacks []FnOnEvent
		if err == nil {
			callbacks = eventState.listeners[context.Type]
		}
		eventState.mu.Unlock()
		if err != nil {
			return
		}
		for _, cb := range callbacks {
			cb(context)
		}
	}
}
