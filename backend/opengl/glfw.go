package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dropdown/gui"
)

// InputAdapter collects GLFW window events into a gui.InputState.
//
// Per frame: glfw.PollEvents, then Frame, then the GUI frame, then
// EndFrame to clear the events that frame consumed.
type InputAdapter struct {
	window *glfw.Window
	input  *gui.InputState
}

// NewInputAdapter installs input callbacks on window, replacing any
// already set.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	a := &InputAdapter{
		window: window,
		input:  gui.NewInputState(),
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Frame samples modifiers and the cursor. The returned state is valid
// until EndFrame; GUI.Begin advances its key repeat timers.
func (a *InputAdapter) Frame() *gui.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = a.pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)
	return a.input
}

// EndFrame drops the events of the frame just drawn.
func (a *InputAdapter) EndFrame() {
	a.input.Reset()
}

func (a *InputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (a *InputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := keyMap[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *InputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *InputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mouseMap[button]
	if !ok {
		return
	}
	a.input.SetMouseButton(b, action == glfw.Press)
}

// Several scroll events can arrive between frames; they add up.
func (a *InputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *InputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
}

var keyMap = map[glfw.Key]gui.Key{
	glfw.KeyTab:       gui.KeyTab,
	glfw.KeyLeft:      gui.KeyLeft,
	glfw.KeyRight:     gui.KeyRight,
	glfw.KeyUp:        gui.KeyUp,
	glfw.KeyDown:      gui.KeyDown,
	glfw.KeyPageUp:    gui.KeyPageUp,
	glfw.KeyPageDown:  gui.KeyPageDown,
	glfw.KeyHome:      gui.KeyHome,
	glfw.KeyEnd:       gui.KeyEnd,
	glfw.KeyDelete:    gui.KeyDelete,
	glfw.KeyBackspace: gui.KeyBackspace,
	glfw.KeyEnter:     gui.KeyEnter,
	glfw.KeyKPEnter:   gui.KeyEnter,
	glfw.KeyEscape:    gui.KeyEscape,
	glfw.KeyA:         gui.KeyA,
	glfw.KeyC:         gui.KeyC,
	glfw.KeyV:         gui.KeyV,
	glfw.KeyX:         gui.KeyX,
	glfw.KeyY:         gui.KeyY,
	glfw.KeyZ:         gui.KeyZ,
}

var mouseMap = map[glfw.MouseButton]gui.MouseButton{
	glfw.MouseButtonLeft:   gui.MouseButtonLeft,
	glfw.MouseButtonRight:  gui.MouseButtonRight,
	glfw.MouseButtonMiddle: gui.MouseButtonMiddle,
}

// Clipboard is a gui.ClipboardProvider backed by the system clipboard.
// Like all GLFW window calls it must be used from the main thread.
type Clipboard struct {
	Window *glfw.Window
}

var _ gui.ClipboardProvider = Clipboard{}

func (c Clipboard) GetText() string {
	return c.Window.GetClipboardString()
}

func (c Clipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}
