package gui

// MouseButton is a mouse button index.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key is a keyboard key the widgets react to. Printable text arrives
// separately through AddInputChar.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyCount
)

// Key repeat timing, in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

type buttonState struct {
	down, pressed, released bool
}

func (b *buttonState) set(down bool) {
	if down && !b.down {
		b.pressed = true
	}
	if !down && b.down {
		b.released = true
	}
	b.down = down
}

// InputState is the input of one frame. A backend (see backend/opengl)
// feeds it from window events; tests drive it directly.
//
// Call Reset once per frame before collecting new events: it clears the
// edge flags (pressed/released), typed characters and wheel deltas, but
// keeps which buttons and keys are held.
type InputState struct {
	MouseX, MouseY float32
	MouseWheelX    float32
	MouseWheelY    float32

	// InputChars holds the characters typed this frame.
	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool

	mouse   [MouseButtonCount]buttonState
	keys    [KeyCount]buttonState
	keyHeld [KeyCount]float32
	dt      float32
}

// NewInputState returns an empty InputState.
func NewInputState() *InputState {
	return &InputState{InputChars: make([]rune, 0, 16)}
}

// Reset clears per-frame events.
func (s *InputState) Reset() {
	for i := range s.mouse {
		s.mouse[i].pressed, s.mouse[i].released = false, false
	}
	for i := range s.keys {
		s.keys[i].pressed, s.keys[i].released = false, false
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX, s.MouseWheelY = 0, 0
}

func (s *InputState) SetMousePos(x, y float32) { s.MouseX, s.MouseY = x, y }

func (s *InputState) SetMouseWheel(x, y float32) { s.MouseWheelX, s.MouseWheelY = x, y }

func (s *InputState) SetMouseButton(b MouseButton, down bool) {
	if b >= 0 && b < MouseButtonCount {
		s.mouse[b].set(down)
	}
}

func (s *InputState) SetKey(k Key, down bool) {
	if k <= KeyNone || k >= KeyCount {
		return
	}
	if down != s.keys[k].down {
		s.keyHeld[k] = 0
	}
	s.keys[k].set(down)
}

// AddInputChar appends a typed character.
func (s *InputState) AddInputChar(ch rune) { s.InputChars = append(s.InputChars, ch) }

// UpdateKeyRepeat advances hold timers. Call once per frame with the frame time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	s.dt = dt
	for k := range s.keys {
		if s.keys[k].down {
			s.keyHeld[k] += dt
		}
	}
}

// MousePos returns the pointer position.
func (s *InputState) MousePos() Vec2 { return Vec2{X: s.MouseX, Y: s.MouseY} }

func (s *InputState) MouseDown(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouse[b].down
}

// MouseClicked reports a press that happened this frame.
func (s *InputState) MouseClicked(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouse[b].pressed
}

func (s *InputState) MouseReleased(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouse[b].released
}

func (s *InputState) KeyDown(k Key) bool { return k > KeyNone && k < KeyCount && s.keys[k].down }

// KeyPressed reports a press that happened this frame.
func (s *InputState) KeyPressed(k Key) bool {
	return k > KeyNone && k < KeyCount && s.keys[k].pressed
}

// KeyRepeated is true on the press frame and then, while the key is held,
// every KeyRepeatInterval after KeyRepeatDelay.
func (s *InputState) KeyRepeated(k Key) bool {
	if s.KeyPressed(k) {
		return true
	}
	if !s.KeyDown(k) {
		return false
	}
	held := s.keyHeld[k]
	if held < KeyRepeatDelay {
		return false
	}
	dt := s.dt
	if dt <= 0 {
		dt = 1.0 / 60
	}
	now := int((held - KeyRepeatDelay) / KeyRepeatInterval)
	before := int((held - dt - KeyRepeatDelay) / KeyRepeatInterval)
	return now > before
}

// ConsumeInputChars drops this frame's typed characters so no later widget sees them.
func (s *InputState) ConsumeInputChars() { s.InputChars = s.InputChars[:0] }
