package gui

// StateStore keeps widget state between frames. It is explicit and
// replaceable (see WithStateStore) so applications can inspect or reset it.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is the default in-memory StateStore.
type MapStateStore map[ID]any

func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

func (m MapStateStore) Set(id ID, value any) { m[id] = value }

func (m MapStateStore) Delete(id ID) { delete(m, id) }

// GetState returns the state stored under id, or def if there is none or
// it has a different type.
func GetState[T any](ctx *Context, id ID, def T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return def
}

// LookupState is GetState without a default.
func LookupState[T any](ctx *Context, id ID) (T, bool) {
	var zero T
	v, ok := ctx.stateStore.Get(id)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// SetState stores value under id.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// DeleteState forgets the state under id.
func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

const maxUndo = 50

// TextEditState is the retained editing state of a TextEdit: cursor,
// selection, horizontal scroll and undo history. Positions count runes,
// not bytes.
//
// A TextEdit reads its state at the start of Show and writes it back at the
// end. Code that changes the state after Show (for example to select the
// whole text when the field gains focus) must call Store, and the change is
// visible from the next frame on.
type TextEditState struct {
	// Anchor is where the selection started; Cursor is the moving end.
	// Anchor == Cursor means no selection.
	Anchor int
	Cursor int

	ScrollX float32

	history []string
	histPos int
	blink   float32
	focused bool
}

// LoadTextEditState returns the state stored for the text edit id.
func LoadTextEditState(ctx *Context, id ID) (TextEditState, bool) {
	return LookupState[TextEditState](ctx, id)
}

// Store persists s as the state of the text edit id.
func (s TextEditState) Store(ctx *Context, id ID) {
	SetState(ctx, id, s)
}

// SetCharRange selects [start, end). The cursor ends up at end.
func (s *TextEditState) SetCharRange(start, end int) {
	s.Anchor = start
	s.Cursor = end
	s.blink = 0
}

// CharRange returns the selection ordered so that start <= end.
// Without a selection both values equal the cursor.
func (s *TextEditState) CharRange() (start, end int) {
	if s.Anchor <= s.Cursor {
		return s.Anchor, s.Cursor
	}
	return s.Cursor, s.Anchor
}

// HasSelection reports whether a non-empty range is selected.
func (s *TextEditState) HasSelection() bool { return s.Anchor != s.Cursor }

// SelectAll selects n runes from the start.
func (s *TextEditState) SelectAll(n int) { s.SetCharRange(0, n) }

// MoveCursor places the cursor at pos, extending the selection if extend
// is set and collapsing it otherwise.
func (s *TextEditState) MoveCursor(pos int, extend bool) {
	s.Cursor = pos
	if !extend {
		s.Anchor = pos
	}
	s.blink = 0
}

// clamp keeps the cursor and anchor inside a text of n runes, for when the
// buffer was changed behind the widget's back.
func (s *TextEditState) clamp(n int) {
	s.Cursor = min(max(s.Cursor, 0), n)
	s.Anchor = min(max(s.Anchor, 0), n)
}

// PushUndo records text as an undo point. Call it before modifying the text.
func (s *TextEditState) PushUndo(text string) {
	h := s.history[:s.histPos:s.histPos]
	if len(h) == 0 || h[len(h)-1] != text {
		h = append(h, text)
	}
	if len(h) > maxUndo {
		h = h[len(h)-maxUndo:]
	}
	s.history = h
	s.histPos = len(h)
}

// Undo returns the text before the last recorded change.
func (s *TextEditState) Undo(current string) (string, bool) {
	if s.histPos == 0 {
		return "", false
	}
	if s.histPos == len(s.history) {
		s.history = append(s.history, current)
	}
	s.histPos--
	return s.history[s.histPos], true
}

// Redo reapplies a change reverted by Undo.
func (s *TextEditState) Redo() (string, bool) {
	if s.histPos+1 >= len(s.history) {
		return "", false
	}
	s.histPos++
	return s.history[s.histPos], true
}

// CanUndo reports whether Undo would do anything.
func (s *TextEditState) CanUndo() bool { return s.histPos > 0 }

// CanRedo reports whether Redo would do anything.
func (s *TextEditState) CanRedo() bool { return s.histPos+1 < len(s.history) }
