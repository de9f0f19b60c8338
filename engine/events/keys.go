package events

import "fmt"

// KeyCode identifies a physical key independent of the platform layer.
type KeyCode int

const (
	KeyUnknown KeyCode = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digits on the main row
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrows
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// Modifiers
	KeyLShift
	KeyRShift
	KeyLCtrl
	KeyRCtrl
	KeyLAlt
	KeyRAlt
	KeyLGui
	KeyRGui

	// Keypad
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPEnter
	KeyKPPlus
	KeyKPMinus
	KeyKPMultiply
	KeyKPDivide
	KeyKPPeriod

	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:     "Unknown",
	KeyA:           "A",
	KeyB:           "B",
	KeyC:           "C",
	KeyD:           "D",
	KeyE:           "E",
	KeyF:           "F",
	KeyG:           "G",
	KeyH:           "H",
	KeyI:           "I",
	KeyJ:           "J",
	KeyK:           "K",
	KeyL:           "L",
	KeyM:           "M",
	KeyN:           "N",
	KeyO:           "O",
	KeyP:           "P",
	KeyQ:           "Q",
	KeyR:           "R",
	KeyS:           "S",
	KeyT:           "T",
	KeyU:           "U",
	KeyV:           "V",
	KeyW:           "W",
	KeyX:           "X",
	KeyY:           "Y",
	KeyZ:           "Z",
	KeyNum0:        "Num0",
	KeyNum1:        "Num1",
	KeyNum2:        "Num2",
	KeyNum3:        "Num3",
	KeyNum4:        "Num4",
	KeyNum5:        "Num5",
	KeyNum6:        "Num6",
	KeyNum7:        "Num7",
	KeyNum8:        "Num8",
	KeyNum9:        "Num9",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
	KeyEscape:      "Escape",
	KeySpace:       "Space",
	KeyEnter:       "Enter",
	KeyTab:         "Tab",
	KeyBackspace:   "Backspace",
	KeyDelete:      "Delete",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyLShift:      "LShift",
	KeyRShift:      "RShift",
	KeyLCtrl:       "LCtrl",
	KeyRCtrl:       "RCtrl",
	KeyLAlt:        "LAlt",
	KeyRAlt:        "RAlt",
	KeyLGui:        "LGui",
	KeyRGui:        "RGui",
	KeyKP0:         "KP0",
	KeyKP1:         "KP1",
	KeyKP2:         "KP2",
	KeyKP3:         "KP3",
	KeyKP4:         "KP4",
	KeyKP5:         "KP5",
	KeyKP6:         "KP6",
	KeyKP7:         "KP7",
	KeyKP8:         "KP8",
	KeyKP9:         "KP9",
	KeyKPEnter:     "KPEnter",
	KeyKPPlus:      "KPPlus",
	KeyKPMinus:     "KPMinus",
	KeyKPMultiply:  "KPMultiply",
	KeyKPDivide:    "KPDivide",
	KeyKPPeriod:    "KPPeriod",
	KeyCapsLock:    "CapsLock",
	KeyScrollLock:  "ScrollLock",
	KeyNumLock:     "NumLock",
	KeyPrintScreen: "PrintScreen",
	KeyPause:       "Pause",
}

// Valid reports whether k is a defined key code, KeyUnknown included.
func (k KeyCode) Valid() bool { return k >= 0 && k < keyCount }

func (k KeyCode) String() string {
	if k.Valid() {
		return keyNames[k]
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}
