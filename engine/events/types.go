// Package events turns platform input into engine events, tracks key and
// mouse state, and fans events out to listeners registered per type.
package events

import (
	"fmt"

	"github.com/hubastard/libgfx/engine/core"
)

type EventType int

const (
	EventNone EventType = iota
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMotion
	EventMouseWheel
	EventKeyDown
	EventKeyUp
	EventTextInput
)

var eventTypeNames = [...]string{
	EventNone:            "None",
	EventMouseButtonDown: "MouseButtonDown",
	EventMouseButtonUp:   "MouseButtonUp",
	EventMouseMotion:     "MouseMotion",
	EventMouseWheel:      "MouseWheel",
	EventKeyDown:         "KeyDown",
	EventKeyUp:           "KeyUp",
	EventTextInput:       "TextInput",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// MouseButton identifies a mouse button. The zero value is ButtonUnknown.
type MouseButton int

const (
	ButtonUnknown MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

var buttonNames = [...]string{
	ButtonUnknown: "Unknown",
	ButtonLeft:    "Left",
	ButtonMiddle:  "Middle",
	ButtonRight:   "Right",
	ButtonX1:      "X1",
	ButtonX2:      "X2",
}

func (b MouseButton) String() string {
	if b >= 0 && int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// Mod is a bit set of held modifier keys.
type Mod int

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModGui
)

// MouseData is the mouse payload of an Event.
type MouseData struct {
	Position core.Point
	Relative core.Point // motion since the previous motion event
	Button   MouseButton
	Clicks   int // 1 for a single click, 2 for a double click
	WheelX   int
	WheelY   int
}

// KeyboardData is the keyboard payload of an Event.
type KeyboardData struct {
	Key    KeyCode
	Repeat bool
	Alt    bool
	Ctrl   bool
	Shift  bool
	Gui    bool // Windows or Command key
}

// Event is the engine's tagged input event. Only the payload matching Type
// is meaningful.
type Event struct {
	Type     EventType
	Mouse    MouseData
	Keyboard KeyboardData
	Text     string // UTF-8, TextInput only
}

// Kind classifies a PlatformEvent. KindOther covers everything the
// dispatcher does not translate, such as window events.
type Kind int

const (
	KindOther Kind = iota
	KindMouseButtonDown
	KindMouseButtonUp
	KindMouseMotion
	KindMouseWheel
	KindKeyDown
	KindKeyUp
	KindTextInput
)

// PlatformEvent is one raw event as delivered by the windowing layer. Code
// is the platform key or button code and is resolved by a Translator.
type PlatformEvent struct {
	Kind       Kind
	Code       int
	Repeat     bool
	Mods       Mod
	X, Y       float32
	XRel, YRel float32
	Clicks     int
	WheelX     int
	WheelY     int
	Text       string
}

// Translator maps platform key and button codes to engine codes. Codes it
// does not know map to KeyUnknown and ButtonUnknown.
type Translator interface {
	Key(code int) KeyCode
	MouseButton(code int) MouseButton
}

// Identity is a Translator for producers that already speak engine codes,
// such as tests or synthetic input.
type Identity struct{}

func (Identity) Key(code int) KeyCode {
	if k := KeyCode(code); k.Valid() {
		return k
	}
	return KeyUnknown
}

func (Identity) MouseButton(code int) MouseButton {
	if b := MouseButton(code); b > ButtonUnknown && b <= ButtonX2 {
		return b
	}
	return ButtonUnknown
}
