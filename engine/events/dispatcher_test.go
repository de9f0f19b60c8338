package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/libgfx/engine/core"
)

// mapTranslator knows a handful of platform codes.
type mapTranslator struct{}

func (mapTranslator) Key(code int) KeyCode {
	switch code {
	case 65:
		return KeyA
	case 256:
		return KeyEscape
	}
	return KeyUnknown
}

func (mapTranslator) MouseButton(code int) MouseButton {
	if code == 0 {
		return ButtonLeft
	}
	return ButtonUnknown
}

func keyDown(code int) PlatformEvent { return PlatformEvent{Kind: KindKeyDown, Code: code} }
func keyUp(code int) PlatformEvent   { return PlatformEvent{Kind: KindKeyUp, Code: code} }

func TestKeyStateMachine(t *testing.T) {
	d := NewDispatcher(mapTranslator{})
	assert.False(t, d.IsKeyPressed(KeyA))

	ev := d.PollEvents(keyDown(65))
	assert.Equal(t, EventKeyDown, ev.Type)
	assert.Equal(t, KeyA, ev.Keyboard.Key)
	assert.True(t, d.IsKeyPressed(KeyA))

	repeat := keyDown(65)
	repeat.Repeat = true
	ev = d.PollEvents(repeat)
	assert.True(t, ev.Keyboard.Repeat)
	assert.True(t, d.IsKeyPressed(KeyA))

	d.PollEvents(keyUp(65))
	assert.False(t, d.IsKeyPressed(KeyA))
}

func TestUnknownKeyLeavesStateAlone(t *testing.T) {
	d := NewDispatcher(mapTranslator{})
	d.PollEvents(keyDown(256))

	ev := d.PollEvents(keyDown(9999))
	assert.Equal(t, EventKeyDown, ev.Type)
	assert.Equal(t, KeyUnknown, ev.Keyboard.Key)
	assert.False(t, d.IsKeyPressed(KeyUnknown))

	d.PollEvents(keyUp(12345))
	assert.True(t, d.IsKeyPressed(KeyEscape))
	assert.False(t, d.IsKeyPressed(KeyUnknown))
}

func TestModifiers(t *testing.T) {
	d := NewDispatcher(mapTranslator{})
	pe := keyDown(65)
	pe.Mods = ModCtrl | ModShift

	ev := d.PollEvents(pe)
	assert.True(t, ev.Keyboard.Ctrl)
	assert.True(t, ev.Keyboard.Shift)
	assert.False(t, ev.Keyboard.Alt)
	assert.False(t, ev.Keyboard.Gui)
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	d := NewDispatcher(mapTranslator{})
	var calls []string
	d.AddListener(EventKeyDown, func(Event) { calls = append(calls, "f1") })
	d.AddListener(EventKeyDown, func(Event) { calls = append(calls, "f2") })
	d.AddListener(EventKeyDown, func(Event) { calls = append(calls, "f3") })
	d.AddListener(EventKeyUp, func(Event) { calls = append(calls, "up") })

	d.PollEvents(keyDown(65))
	assert.Equal(t, []string{"f1", "f2", "f3"}, calls)
}

func TestListenerReceivesEvent(t *testing.T) {
	d := NewDispatcher(mapTranslator{})
	var got Event
	d.AddListener(EventMouseButtonDown, func(ev Event) { got = ev })

	d.PollEvents(PlatformEvent{Kind: KindMouseButtonDown, Code: 0, X: 12, Y: 34, Clicks: 2})
	assert.Equal(t, EventMouseButtonDown, got.Type)
	assert.Equal(t, ButtonLeft, got.Mouse.Button)
	assert.Equal(t, core.Pt(12, 34), got.Mouse.Position)
	assert.Equal(t, 2, got.Mouse.Clicks)
}

func TestOtherEventsReachNoListener(t *testing.T) {
	d := NewDispatcher(mapTranslator{})
	called := false
	for typ := EventNone; typ <= EventTextInput; typ++ {
		d.AddListener(typ, func(Event) { called = true })
	}

	ev := d.PollEvents(PlatformEvent{Kind: KindOther})
	assert.Equal(t, EventNone, ev.Type)
	ev = d.PollEvents(PlatformEvent{Kind: Kind(99)})
	assert.Equal(t, EventNone, ev.Type)
	assert.False(t, called)
}

func TestRemoveListener(t *testing.T) {
	d := NewDispatcher(mapTranslator{})
	var calls []int
	id1 := d.AddListener(EventKeyDown, func(Event) { calls = append(calls, 1) })
	d.AddListener(EventKeyDown, func(Event) { calls = append(calls, 2) })

	assert.True(t, d.RemoveListener(id1))
	assert.False(t, d.RemoveListener(id1))
	assert.False(t, d.RemoveListener(ListenerID(999)))
	assert.Equal(t, 1, d.ListenerCount(EventKeyDown))

	d.PollEvents(keyDown(65))
	assert.Equal(t, []int{2}, calls)
}

func TestRemoveDuringDispatch(t *testing.T) {
	d := NewDispatcher(mapTranslator{})
	var calls []int
	var id2 ListenerID
	d.AddListener(EventKeyDown, func(Event) {
		calls = append(calls, 1)
		d.RemoveListener(id2)
		d.AddListener(EventKeyDown, func(Event) { calls = append(calls, 3) })
	})
	id2 = d.AddListener(EventKeyDown, func(Event) { calls = append(calls, 2) })

	d.PollEvents(keyDown(65))
	assert.Equal(t, []int{1, 2}, calls, "changes apply to later dispatches")

	calls = nil
	d.PollEvents(keyDown(65))
	assert.Equal(t, []int{1, 3}, calls)
}

func TestMouseState(t *testing.T) {
	d := NewDispatcher(mapTranslator{})

	d.PollEvents(PlatformEvent{Kind: KindMouseMotion, X: 10, Y: 20, XRel: 3, YRel: -4})
	assert.Equal(t, core.Pt(10, 20), d.MousePosition())
	assert.Equal(t, core.Pt(3, -4), d.MouseDelta())

	d.PollEvents(PlatformEvent{Kind: KindMouseButtonDown, Code: 0, X: 11, Y: 21})
	assert.True(t, d.IsMouseButtonPressed(ButtonLeft))
	assert.Equal(t, core.Pt(11, 21), d.MousePosition())

	d.PollEvents(PlatformEvent{Kind: KindMouseButtonDown, Code: 7})
	assert.False(t, d.IsMouseButtonPressed(ButtonUnknown))

	d.PollEvents(PlatformEvent{Kind: KindMouseButtonUp, Code: 0, X: 11, Y: 21})
	assert.False(t, d.IsMouseButtonPressed(ButtonLeft))
	assert.False(t, d.IsMouseButtonPressed(ButtonRight))

	ev := d.PollEvents(PlatformEvent{Kind: KindMouseWheel, WheelY: -1})
	assert.Equal(t, EventMouseWheel, ev.Type)
	assert.Equal(t, -1, ev.Mouse.WheelY)
	assert.Equal(t, core.Pt(11, 21), ev.Mouse.Position)
}

type fakeHost struct {
	started, stopped int
	rect             core.Rect
}

func (h *fakeHost) StartTextInput()              { h.started++ }
func (h *fakeHost) StopTextInput()               { h.stopped++ }
func (h *fakeHost) SetTextInputRect(r core.Rect) { h.rect = r }

func TestTextInput(t *testing.T) {
	host := &fakeHost{}
	d := NewDispatcher(mapTranslator{}, WithTextInputHost(host))
	var texts []string
	d.AddListener(EventTextInput, func(ev Event) { texts = append(texts, ev.Text) })

	text := PlatformEvent{Kind: KindTextInput, Text: "é"}
	ev := d.PollEvents(text)
	assert.Equal(t, EventNone, ev.Type, "dropped while inactive")

	d.StartTextInput()
	assert.True(t, d.TextInputActive())
	ev = d.PollEvents(text)
	assert.Equal(t, EventTextInput, ev.Type)

	d.SetTextInputRect(core.R(1, 2, 3, 4))
	assert.Equal(t, core.R(1, 2, 3, 4), d.TextInputRect())

	d.StopTextInput()
	d.PollEvents(text)

	assert.Equal(t, []string{"é"}, texts)
	assert.Equal(t, 1, host.started)
	assert.Equal(t, 1, host.stopped)
	assert.Equal(t, core.R(1, 2, 3, 4), host.rect)
}

func TestIdentityTranslator(t *testing.T) {
	d := NewDispatcher(nil)
	d.PollEvents(keyDown(int(KeySpace)))
	assert.True(t, d.IsKeyPressed(KeySpace))

	assert.Equal(t, KeyUnknown, Identity{}.Key(-1))
	assert.Equal(t, KeyUnknown, Identity{}.Key(int(keyCount)))
	assert.Equal(t, ButtonX2, Identity{}.MouseButton(int(ButtonX2)))
	assert.Equal(t, ButtonUnknown, Identity{}.MouseButton(42))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "KeyDown", EventKeyDown.String())
	assert.Equal(t, "EventType(42)", EventType(42).String())
	assert.Equal(t, "Right", ButtonRight.String())
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "KPEnter", KeyKPEnter.String())
	assert.Equal(t, "F12", KeyF12.String())
	assert.Equal(t, "KeyCode(-3)", KeyCode(-3).String())

	for k := KeyUnknown; k < keyCount; k++ {
		require.NotEmpty(t, k.String(), int(k))
	}
}
