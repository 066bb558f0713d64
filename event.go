package sprig

import "fmt"

// EventCategory is a bitmask used to filter events by source.
type EventCategory uint8

const (
	CategoryApplication EventCategory = 1 << iota
	CategoryInput
	CategoryKeyboard
	CategoryMouse
)

// Event is a window or input event delivered to layers, top of the stack first.
type Event interface {
	Name() string
	Categories() EventCategory
	// Handled reports whether a layer consumed the event. Layers further
	// down the stack do not see handled events.
	Handled() bool
	setHandled(bool)
}

// eventBase carries the handled flag for every event type.
type eventBase struct {
	handled bool
}

func (e *eventBase) Handled() bool     { return e.handled }
func (e *eventBase) setHandled(h bool) { e.handled = e.handled || h }

// InCategory reports whether e belongs to c.
func InCategory(e Event, c EventCategory) bool {
	return e.Categories()&c != 0
}

// Dispatch calls fn when e has type T and marks e handled if fn returns
// true. It reports whether fn ran.
//
//	sprig.Dispatch(e, func(e *sprig.WindowResizeEvent) bool { ... })
func Dispatch[T Event](e Event, fn func(T) bool) bool {
	te, ok := e.(T)
	if !ok {
		return false
	}
	e.setHandled(fn(te))
	return true
}

// WindowResizeEvent fires when the window's logical size changes.
type WindowResizeEvent struct {
	eventBase
	Width, Height int
}

func (*WindowResizeEvent) Name() string              { return "WindowResize" }
func (*WindowResizeEvent) Categories() EventCategory { return CategoryApplication }
func (e *WindowResizeEvent) String() string {
	return fmt.Sprintf("WindowResize: %d, %d", e.Width, e.Height)
}

// WindowCloseEvent fires when the user asks to close the window.
type WindowCloseEvent struct {
	eventBase
}

func (*WindowCloseEvent) Name() string              { return "WindowClose" }
func (*WindowCloseEvent) Categories() EventCategory { return CategoryApplication }

// MouseScrolledEvent fires when the wheel moves. Positive YOffset scrolls up.
type MouseScrolledEvent struct {
	eventBase
	XOffset, YOffset float64
}

func (*MouseScrolledEvent) Name() string { return "MouseScrolled" }
func (*MouseScrolledEvent) Categories() EventCategory {
	return CategoryInput | CategoryMouse
}
func (e *MouseScrolledEvent) String() string {
	return fmt.Sprintf("MouseScrolled: %g, %g", e.XOffset, e.YOffset)
}

// KeyPressedEvent fires on the frame a key goes down.
type KeyPressedEvent struct {
	eventBase
	Key       Key
	Modifiers KeyModifiers
}

func (*KeyPressedEvent) Name() string { return "KeyPressed" }
func (*KeyPressedEvent) Categories() EventCategory {
	return CategoryInput | CategoryKeyboard
}
func (e *KeyPressedEvent) String() string { return "KeyPressed: " + e.Key.String() }

// KeyReleasedEvent fires on the frame a key goes up.
type KeyReleasedEvent struct {
	eventBase
	Key Key
}

func (*KeyReleasedEvent) Name() string { return "KeyReleased" }
func (*KeyReleasedEvent) Categories() EventCategory {
	return CategoryInput | CategoryKeyboard
}
