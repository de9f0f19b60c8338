package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/libgfx/engine/events"
)

// Translator maps GLFW key and mouse button codes to engine codes.
type Translator struct{}

var _ events.Translator = Translator{}

func (Translator) Key(code int) events.KeyCode {
	if k, ok := keyMap[glfw.Key(code)]; ok {
		return k
	}
	return events.KeyUnknown
}

func (Translator) MouseButton(code int) events.MouseButton {
	switch glfw.MouseButton(code) {
	case glfw.MouseButtonLeft:
		return events.ButtonLeft
	case glfw.MouseButtonMiddle:
		return events.ButtonMiddle
	case glfw.MouseButtonRight:
		return events.ButtonRight
	case glfw.MouseButton4:
		return events.ButtonX1
	case glfw.MouseButton5:
		return events.ButtonX2
	}
	return events.ButtonUnknown
}

func translateMods(m glfw.ModifierKey) events.Mod {
	var out events.Mod
	if m&glfw.ModShift != 0 {
		out |= events.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= events.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= events.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= events.ModGui
	}
	return out
}

var keyMap = func() map[glfw.Key]events.KeyCode {
	m := map[glfw.Key]events.KeyCode{
		glfw.KeyEscape:    events.KeyEscape,
		glfw.KeySpace:     events.KeySpace,
		glfw.KeyEnter:     events.KeyEnter,
		glfw.KeyTab:       events.KeyTab,
		glfw.KeyBackspace: events.KeyBackspace,
		glfw.KeyDelete:    events.KeyDelete,
		glfw.KeyInsert:    events.KeyInsert,
		glfw.KeyHome:      events.KeyHome,
		glfw.KeyEnd:       events.KeyEnd,
		glfw.KeyPageUp:    events.KeyPageUp,
		glfw.KeyPageDown:  events.KeyPageDown,

		glfw.KeyLeft:  events.KeyLeft,
		glfw.KeyRight: events.KeyRight,
		glfw.KeyUp:    events.KeyUp,
		glfw.KeyDown:  events.KeyDown,

		glfw.KeyLeftShift:    events.KeyLShift,
		glfw.KeyRightShift:   events.KeyRShift,
		glfw.KeyLeftControl:  events.KeyLCtrl,
		glfw.KeyRightControl: events.KeyRCtrl,
		glfw.KeyLeftAlt:      events.KeyLAlt,
		glfw.KeyRightAlt:     events.KeyRAlt,
		glfw.KeyLeftSuper:    events.KeyLGui,
		glfw.KeyRightSuper:   events.KeyRGui,

		glfw.KeyKPEnter:    events.KeyKPEnter,
		glfw.KeyKPAdd:      events.KeyKPPlus,
		glfw.KeyKPSubtract: events.KeyKPMinus,
		glfw.KeyKPMultiply: events.KeyKPMultiply,
		glfw.KeyKPDivide:   events.KeyKPDivide,
		glfw.KeyKPDecimal:  events.KeyKPPeriod,

		glfw.KeyCapsLock:    events.KeyCapsLock,
		glfw.KeyScrollLock:  events.KeyScrollLock,
		glfw.KeyNumLock:     events.KeyNumLock,
		glfw.KeyPrintScreen: events.KeyPrintScreen,
		glfw.KeyPause:       events.KeyPause,
	}
	// GLFW numbers letters, digits, F-keys and keypad digits contiguously,
	// and so does events.KeyCode.
	for i := 0; i < 26; i++ {
		m[glfw.KeyA+glfw.Key(i)] = events.KeyA + events.KeyCode(i)
	}
	for i := 0; i < 10; i++ {
		m[glfw.Key0+glfw.Key(i)] = events.KeyNum0 + events.KeyCode(i)
		m[glfw.KeyKP0+glfw.Key(i)] = events.KeyKP0 + events.KeyCode(i)
	}
	for i := 0; i < 12; i++ {
		m[glfw.KeyF1+glfw.Key(i)] = events.KeyF1 + events.KeyCode(i)
	}
	return m
}()
