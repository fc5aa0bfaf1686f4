package window

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kreedahq/kreeda/input"
)

var glfwToKey = map[glfw.Key]input.Key{
	glfw.KeyA: input.KeyA,
	glfw.KeyB: input.KeyB,
	glfw.KeyC: input.KeyC,
	glfw.KeyD: input.KeyD,
	glfw.KeyE: input.KeyE,
	glfw.KeyF: input.KeyF,
	glfw.KeyG: input.KeyG,
	glfw.KeyH: input.KeyH,
	glfw.KeyI: input.KeyI,
	glfw.KeyJ: input.KeyJ,
	glfw.KeyK: input.KeyK,
	glfw.KeyL: input.KeyL,
	glfw.KeyM: input.KeyM,
	glfw.KeyN: input.KeyN,
	glfw.KeyO: input.KeyO,
	glfw.KeyP: input.KeyP,
	glfw.KeyQ: input.KeyQ,
	glfw.KeyR: input.KeyR,
	glfw.KeyS: input.KeyS,
	glfw.KeyT: input.KeyT,
	glfw.KeyU: input.KeyU,
	glfw.KeyV: input.KeyV,
	glfw.KeyW: input.KeyW,
	glfw.KeyX: input.KeyX,
	glfw.KeyY: input.KeyY,
	glfw.KeyZ: input.KeyZ,

	glfw.Key0: input.Key0,
	glfw.Key1: input.Key1,
	glfw.Key2: input.Key2,
	glfw.Key3: input.Key3,
	glfw.Key4: input.Key4,
	glfw.Key5: input.Key5,
	glfw.Key6: input.Key6,
	glfw.Key7: input.Key7,
	glfw.Key8: input.Key8,
	glfw.Key9: input.Key9,

	glfw.KeySpace:     input.KeySpace,
	glfw.KeyEnter:     input.KeyEnter,
	glfw.KeyEscape:    input.KeyEscape,
	glfw.KeyTab:       input.KeyTab,
	glfw.KeyBackspace: input.KeyBackspace,
	glfw.KeyDelete:    input.KeyDelete,

	glfw.KeyUp:    input.KeyUp,
	glfw.KeyDown:  input.KeyDown,
	glfw.KeyLeft:  input.KeyLeft,
	glfw.KeyRight: input.KeyRight,

	glfw.KeyLeftShift:    input.KeyLeftShift,
	glfw.KeyRightShift:   input.KeyRightShift,
	glfw.KeyLeftControl:  input.KeyLeftControl,
	glfw.KeyRightControl: input.KeyRightControl,
	glfw.KeyLeftAlt:      input.KeyLeftAlt,
	glfw.KeyRightAlt:     input.KeyRightAlt,

	glfw.KeyF1:  input.KeyF1,
	glfw.KeyF2:  input.KeyF2,
	glfw.KeyF3:  input.KeyF3,
	glfw.KeyF4:  input.KeyF4,
	glfw.KeyF5:  input.KeyF5,
	glfw.KeyF6:  input.KeyF6,
	glfw.KeyF7:  input.KeyF7,
	glfw.KeyF8:  input.KeyF8,
	glfw.KeyF9:  input.KeyF9,
	glfw.KeyF10: input.KeyF10,
	glfw.KeyF11: input.KeyF11,
	glfw.KeyF12: input.KeyF12,
}

func keyOf(glfwKey glfw.Key) (key input.Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug("Unknown key code", slog.Int("key", int(glfwKey)))
	}

	return
}

func buttonOf(btn glfw.MouseButton) (input.MouseButton, bool) {
	switch btn {
	case glfw.MouseButtonLeft:
		return input.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return input.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return input.MouseButtonMiddle, true
	default:
		// only the three standard buttons are tracked
		return 0, false
	}
}
