package sprig

// InjectedInput layers synthetic key, button and cursor state over a live
// Input. Scripted runs and tests drive the engine through it exactly as a
// user at the keyboard would: injected keys read as held until released, and
// queued events are delivered on the next Application.Update.
type InjectedInput struct {
	fallback Input

	keys    map[Key]bool
	buttons map[MouseButton]bool

	cursorSet        bool
	cursorX, cursorY float32

	queue []Event
}

// NewInjectedInput wraps fallback, which may be nil.
func NewInjectedInput(fallback Input) *InjectedInput {
	return &InjectedInput{
		fallback: fallback,
		keys:     make(map[Key]bool),
		buttons:  make(map[MouseButton]bool),
	}
}

// PressKey holds k down and queues a KeyPressedEvent.
func (in *InjectedInput) PressKey(k Key) {
	if in.keys[k] {
		return
	}
	in.keys[k] = true
	in.queue = append(in.queue, &KeyPressedEvent{Key: k})
}

// ReleaseKey lets go of k and queues a KeyReleasedEvent.
func (in *InjectedInput) ReleaseKey(k Key) {
	if !in.keys[k] {
		return
	}
	delete(in.keys, k)
	in.queue = append(in.queue, &KeyReleasedEvent{Key: k})
}

// PressButton holds b down.
func (in *InjectedInput) PressButton(b MouseButton) { in.buttons[b] = true }

// ReleaseButton lets go of b.
func (in *InjectedInput) ReleaseButton(b MouseButton) { delete(in.buttons, b) }

// MoveCursor overrides the cursor position until ResetCursor.
func (in *InjectedInput) MoveCursor(x, y float32) {
	in.cursorSet = true
	in.cursorX, in.cursorY = x, y
}

// ResetCursor returns cursor queries to the fallback.
func (in *InjectedInput) ResetCursor() { in.cursorSet = false }

// Scroll queues a MouseScrolledEvent.
func (in *InjectedInput) Scroll(xoff, yoff float64) {
	in.queue = append(in.queue, &MouseScrolledEvent{XOffset: xoff, YOffset: yoff})
}

// Post queues an arbitrary event.
func (in *InjectedInput) Post(e Event) {
	in.queue = append(in.queue, e)
}

// Pending returns the number of queued events.
func (in *InjectedInput) Pending() int { return len(in.queue) }

// Reset releases everything and drops queued events.
func (in *InjectedInput) Reset() {
	clear(in.keys)
	clear(in.buttons)
	in.cursorSet = false
	in.queue = in.queue[:0]
}

// drain appends the queued events to buf and empties the queue.
func (in *InjectedInput) drain(buf []Event) []Event {
	buf = append(buf, in.queue...)
	clear(in.queue)
	in.queue = in.queue[:0]
	return buf
}

func (in *InjectedInput) IsKeyPressed(k Key) bool {
	if in.keys[k] {
		return true
	}
	return in.fallback != nil && in.fallback.IsKeyPressed(k)
}

func (in *InjectedInput) IsMouseButtonPressed(b MouseButton) bool {
	if in.buttons[b] {
		return true
	}
	return in.fallback != nil && in.fallback.IsMouseButtonPressed(b)
}

func (in *InjectedInput) MousePosition() (float32, float32) {
	if in.cursorSet || in.fallback == nil {
		return in.cursorX, in.cursorY
	}
	return in.fallback.MousePosition()
}
