package gui

// Memory is the retained interaction state of a Context: which widget has
// keyboard focus and which popup is open. Everything is addressed by ID,
// and an ID Memory has never seen is unfocused and closed.
//
// Changes apply immediately: a popup opened by a widget is open for any
// code that runs later in the same frame.
type Memory struct {
	focused   ID
	focusSeen bool // the focused widget has been drawn with focus

	popup ID

	// Pointer input inside these rects belongs to the open popup. blockPrev
	// is last frame's popup, blockCur this frame's once drawn.
	blockPrev, blockCur Rect
}

func (m *Memory) beginFrame() {
	m.blockPrev, m.blockCur = m.blockCur, Rect{}
}

// RequestFocus gives keyboard focus to id.
func (m *Memory) RequestFocus(id ID) {
	if m.focused == id {
		return
	}
	Logger().Debug("focus", "from", m.focused, "to", id)
	m.focused = id
	m.focusSeen = false
}

// SurrenderFocus drops focus if id holds it.
func (m *Memory) SurrenderFocus(id ID) {
	if m.focused != id || id == 0 {
		return
	}
	Logger().Debug("focus released", "id", id)
	m.focused = 0
	m.focusSeen = false
}

// HasFocus reports whether id holds keyboard focus.
func (m *Memory) HasFocus(id ID) bool { return id != 0 && m.focused == id }

// FocusedID returns the focused widget, or 0.
func (m *Memory) FocusedID() ID { return m.focused }

// GainedFocus reports whether id holds focus but has not yet been drawn
// with it. A widget sees this once per focus gain, in the first frame it
// is drawn after the gain, no matter when in a frame focus moved.
func (m *Memory) GainedFocus(id ID) bool {
	return m.HasFocus(id) && !m.focusSeen
}

// markFocusSeen consumes the gained-focus edge of id.
func (m *Memory) markFocusSeen(id ID) {
	if m.HasFocus(id) {
		m.focusSeen = true
	}
}

// OpenPopup opens the popup id, closing any other popup.
func (m *Memory) OpenPopup(id ID) {
	if m.popup == id {
		return
	}
	Logger().Debug("popup open", "id", id, "replaces", m.popup)
	m.popup = id
}

// ClosePopup closes the popup id if it is open.
func (m *Memory) ClosePopup(id ID) {
	if m.popup != id || id == 0 {
		return
	}
	Logger().Debug("popup close", "id", id)
	m.popup = 0
}

// TogglePopup opens id if it is closed and closes it otherwise.
func (m *Memory) TogglePopup(id ID) {
	if m.IsPopupOpen(id) {
		m.ClosePopup(id)
	} else {
		m.OpenPopup(id)
	}
}

// IsPopupOpen reports whether the popup id is open.
func (m *Memory) IsPopupOpen(id ID) bool { return id != 0 && m.popup == id }

// AnyPopupOpen reports whether some popup is open.
func (m *Memory) AnyPopupOpen() bool { return m.popup != 0 }

func (m *Memory) setPopupRect(r Rect) { m.blockCur = r }

// blocks reports whether p is covered by an open popup.
func (m *Memory) blocks(p Vec2) bool {
	if m.popup == 0 {
		return false
	}
	return m.blockPrev.Contains(p) || m.blockCur.Contains(p)
}
