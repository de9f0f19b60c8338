package events

import (
	"slices"

	"github.com/hubastard/libgfx/engine/core"
)

// Callback receives one dispatched event.
type Callback func(Event)

// ListenerID identifies one AddListener registration. IDs are never reused,
// so a stale ID can not remove a newer listener.
type ListenerID uint64

// TextInputHost is the platform side of text input: it turns IME and
// character delivery on and off and positions the candidate window.
type TextInputHost interface {
	StartTextInput()
	StopTextInput()
	SetTextInputRect(r core.Rect)
}

type Option func(*Dispatcher)

// WithTextInputHost forwards text input start/stop and the input rect to h.
func WithTextInputHost(h TextInputHost) Option {
	return func(d *Dispatcher) { d.host = h }
}

type listener struct {
	id ListenerID
	cb Callback
}

// Dispatcher translates platform events, keeps the derived input state and
// invokes listeners synchronously in registration order. It is not safe for
// concurrent use; call it from the loop that polls the platform.
type Dispatcher struct {
	tr   Translator
	host TextInputHost

	listeners map[EventType][]listener
	types     map[ListenerID]EventType
	lastID    ListenerID

	keys    map[KeyCode]bool
	buttons map[MouseButton]bool
	mouse   core.Point
	delta   core.Point

	textActive bool
	textRect   core.Rect
}

// NewDispatcher returns a dispatcher using tr for key and button codes. A
// nil tr selects Identity.
func NewDispatcher(tr Translator, opts ...Option) *Dispatcher {
	if tr == nil {
		tr = Identity{}
	}
	d := &Dispatcher{
		tr:        tr,
		listeners: make(map[EventType][]listener),
		types:     make(map[ListenerID]EventType),
		keys:      make(map[KeyCode]bool),
		buttons:   make(map[MouseButton]bool),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// PollEvents translates pe, updates the input state and invokes every
// listener registered for the resulting type. The translated event is
// returned; its Type is EventNone when pe was not an input event, in which
// case no listener runs.
func (d *Dispatcher) PollEvents(pe PlatformEvent) Event {
	ev := d.translate(pe)
	if ev.Type == EventNone {
		return ev
	}
	// Listeners added or removed by a callback take effect on the next
	// dispatch: RemoveListener never mutates a slice in place.
	for _, l := range d.listeners[ev.Type] {
		l.cb(ev)
	}
	return ev
}

func (d *Dispatcher) translate(pe PlatformEvent) Event {
	var ev Event
	pos := core.Pt(pe.X, pe.Y)

	switch pe.Kind {
	case KindMouseButtonDown, KindMouseButtonUp:
		down := pe.Kind == KindMouseButtonDown
		ev.Type = EventMouseButtonUp
		if down {
			ev.Type = EventMouseButtonDown
		}
		ev.Mouse.Button = d.tr.MouseButton(pe.Code)
		ev.Mouse.Position = pos
		ev.Mouse.Clicks = pe.Clicks
		if ev.Mouse.Button != ButtonUnknown {
			d.buttons[ev.Mouse.Button] = down
		}
		d.mouse = pos

	case KindMouseMotion:
		ev.Type = EventMouseMotion
		ev.Mouse.Position = pos
		ev.Mouse.Relative = core.Pt(pe.XRel, pe.YRel)
		d.mouse = pos
		d.delta = ev.Mouse.Relative

	case KindMouseWheel:
		ev.Type = EventMouseWheel
		ev.Mouse.Position = d.mouse
		ev.Mouse.WheelX = pe.WheelX
		ev.Mouse.WheelY = pe.WheelY

	case KindKeyDown, KindKeyUp:
		down := pe.Kind == KindKeyDown
		ev.Type = EventKeyUp
		if down {
			ev.Type = EventKeyDown
		}
		ev.Keyboard = KeyboardData{
			Key:    d.tr.Key(pe.Code),
			Repeat: down && pe.Repeat,
			Alt:    pe.Mods&ModAlt != 0,
			Ctrl:   pe.Mods&ModCtrl != 0,
			Shift:  pe.Mods&ModShift != 0,
			Gui:    pe.Mods&ModGui != 0,
		}
		if ev.Keyboard.Key != KeyUnknown {
			d.keys[ev.Keyboard.Key] = down
		}

	case KindTextInput:
		if !d.textActive || pe.Text == "" {
			return Event{}
		}
		ev.Type = EventTextInput
		ev.Text = pe.Text
	}
	return ev
}

// AddListener registers cb for events of type t. Listeners of one type run
// in registration order.
func (d *Dispatcher) AddListener(t EventType, cb Callback) ListenerID {
	d.lastID++
	id := d.lastID
	d.listeners[t] = append(d.listeners[t], listener{id: id, cb: cb})
	d.types[id] = t
	return id
}

// RemoveListener unregisters id and reports whether it was registered.
func (d *Dispatcher) RemoveListener(id ListenerID) bool {
	t, ok := d.types[id]
	if !ok {
		return false
	}
	delete(d.types, id)
	d.listeners[t] = slices.DeleteFunc(slices.Clone(d.listeners[t]), func(l listener) bool {
		return l.id == id
	})
	if len(d.listeners[t]) == 0 {
		delete(d.listeners, t)
	}
	return true
}

// ListenerCount reports how many listeners are registered for t.
func (d *Dispatcher) ListenerCount(t EventType) int { return len(d.listeners[t]) }

// IsKeyPressed reports whether k is held. Keys never seen report false.
func (d *Dispatcher) IsKeyPressed(k KeyCode) bool { return d.keys[k] }

// IsMouseButtonPressed reports whether b is held.
func (d *Dispatcher) IsMouseButtonPressed(b MouseButton) bool { return d.buttons[b] }

// MousePosition is the last position seen in a motion or button event.
func (d *Dispatcher) MousePosition() core.Point { return d.mouse }

// MouseDelta is the relative motion of the last motion event.
func (d *Dispatcher) MouseDelta() core.Point { return d.delta }

// StartTextInput enables TextInput events.
func (d *Dispatcher) StartTextInput() {
	d.textActive = true
	if d.host != nil {
		d.host.StartTextInput()
	}
}

// StopTextInput disables TextInput events; text delivered afterwards is
// dropped.
func (d *Dispatcher) StopTextInput() {
	d.textActive = false
	if d.host != nil {
		d.host.StopTextInput()
	}
}

func (d *Dispatcher) TextInputActive() bool { return d.textActive }

// SetTextInputRect sets where text is being entered, for IME candidate
// placement.
func (d *Dispatcher) SetTextInputRect(r core.Rect) {
	d.textRect = r
	if d.host != nil {
		d.host.SetTextInputRect(r)
	}
}

func (d *Dispatcher) TextInputRect() core.Rect { return d.textRect }
