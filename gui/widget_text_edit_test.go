package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/dropdown/gui"
)

// editFrame draws a lone text field over buf at the origin.
func editFrame(h *harness, buf *string, configure ...func(gui.TextEdit) gui.TextEdit) gui.TextEditOutput {
	var out gui.TextEditOutput
	h.frame(func(ctx *gui.Context) {
		te := gui.SingleLine(buf)
		for _, c := range configure {
			te = c(te)
		}
		out = te.Show(ctx)
	})
	return out
}

func focusEdit(h *harness, buf *string) gui.TextEditOutput {
	h.t.Helper()
	h.click(5, 5)
	out := editFrame(h, buf)
	require.True(h.t, out.Response.HasFocus)
	return out
}

func TestTextEditFocusEdges(t *testing.T) {
	h := newHarness(t)
	buf := "hello"

	out := editFrame(h, &buf)
	assert.False(t, out.Response.HasFocus)
	assert.Equal(t, gui.Rect{W: gui.DefaultTextEditWidth, H: 13 + 2*4}, out.Response.Rect)

	h.click(5, 5)
	out = editFrame(h, &buf)
	assert.True(t, out.Response.Clicked)
	assert.True(t, out.Response.HasFocus)
	assert.True(t, out.Response.GainedFocus)

	out = editFrame(h, &buf)
	assert.True(t, out.Response.HasFocus)
	assert.False(t, out.Response.GainedFocus, "gained focus is reported once")

	h.click(500, 500)
	out = editFrame(h, &buf)
	assert.False(t, out.Response.HasFocus)
	assert.True(t, out.Response.LostFocus)

	out = editFrame(h, &buf)
	assert.False(t, out.Response.LostFocus)
}

func TestTextEditFocusRequestedBetweenFrames(t *testing.T) {
	h := newHarness(t)
	buf := ""
	id := gui.NewID("field")
	withID := func(te gui.TextEdit) gui.TextEdit { return te.ID(id) }

	editFrame(h, &buf, withID)
	h.ui.Memory().RequestFocus(id)

	out := editFrame(h, &buf, withID)
	assert.True(t, out.Response.GainedFocus)
	assert.Equal(t, id, out.Response.ID)
	out = editFrame(h, &buf, withID)
	assert.False(t, out.Response.GainedFocus)
}

func TestTextEditTyping(t *testing.T) {
	h := newHarness(t)
	buf := ""
	focusEdit(h, &buf)

	h.typeText("hi")
	out := editFrame(h, &buf)
	assert.True(t, out.Response.TextChanged)
	assert.Equal(t, "hi", buf)
	assert.Equal(t, 2, out.State.Cursor)

	out = editFrame(h, &buf)
	assert.False(t, out.Response.TextChanged)

	h.typeText("\x01é")
	editFrame(h, &buf)
	assert.Equal(t, "hié", buf, "control characters are dropped")
}

func TestTextEditIgnoresInputWithoutFocus(t *testing.T) {
	h := newHarness(t)
	buf := "keep"
	h.typeText("xyz")
	h.key(gui.KeyBackspace)
	out := editFrame(h, &buf)
	assert.False(t, out.Response.TextChanged)
	assert.Equal(t, "keep", buf)
}

func TestTextEditKeys(t *testing.T) {
	tests := []struct {
		name  string
		start string
		keys  []gui.Key
		ctrl  bool
		want  string
	}{
		{"backspace at end", "abc", []gui.Key{gui.KeyEnd, gui.KeyBackspace}, false, "ab"},
		{"delete at start", "abc", []gui.Key{gui.KeyHome, gui.KeyDelete}, false, "bc"},
		{"ctrl backspace deletes word", "foo bar", []gui.Key{gui.KeyEnd, gui.KeyBackspace}, true, "foo "},
		{"ctrl delete deletes word", "foo bar", []gui.Key{gui.KeyHome, gui.KeyDelete}, true, "bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			buf := tt.start
			focusEdit(h, &buf)
			for _, k := range tt.keys {
				h.in.ModCtrl = tt.ctrl
				h.key(k)
				editFrame(h, &buf)
			}
			assert.Equal(t, tt.want, buf)
		})
	}
}

func TestTextEditSelectAllAndReplace(t *testing.T) {
	h := newHarness(t)
	buf := "hello"
	focusEdit(h, &buf)

	h.in.ModCtrl = true
	h.key(gui.KeyA)
	out := editFrame(h, &buf)
	start, end := out.State.CharRange()
	assert.Equal(t, [2]int{0, 5}, [2]int{start, end})

	h.typeText("x")
	editFrame(h, &buf)
	assert.Equal(t, "x", buf)
}

func TestTextEditShiftSelection(t *testing.T) {
	h := newHarness(t)
	buf := "hello"
	focusEdit(h, &buf)

	h.key(gui.KeyEnd)
	editFrame(h, &buf)
	h.in.ModShift = true
	h.key(gui.KeyLeft)
	editFrame(h, &buf)
	h.in.ModShift = true
	h.key(gui.KeyHome)
	out := editFrame(h, &buf)

	start, end := out.State.CharRange()
	assert.Equal(t, [2]int{0, 5}, [2]int{start, end})
	assert.Equal(t, 0, out.State.Cursor, "the cursor is the moving end")
}

func TestTextEditStoredStateAppliesNextFrame(t *testing.T) {
	h := newHarness(t)
	buf := "hello"
	var out gui.TextEditOutput
	h.frame(func(ctx *gui.Context) {
		out = gui.SingleLine(&buf).Show(ctx)
		out.State.SetCharRange(1, 3)
		out.State.Store(ctx, out.Response.ID)
	})
	out = editFrame(h, &buf)
	start, end := out.State.CharRange()
	assert.Equal(t, [2]int{1, 3}, [2]int{start, end})
}

func TestTextEditUndoRedo(t *testing.T) {
	h := newHarness(t)
	buf := ""
	focusEdit(h, &buf)
	h.typeText("a")
	editFrame(h, &buf)
	h.typeText("b")
	editFrame(h, &buf)
	require.Equal(t, "ab", buf)

	h.in.ModCtrl = true
	h.key(gui.KeyZ)
	out := editFrame(h, &buf)
	assert.Equal(t, "a", buf)
	assert.True(t, out.Response.TextChanged)
	assert.True(t, out.State.CanRedo())

	h.in.ModCtrl = true
	h.key(gui.KeyY)
	editFrame(h, &buf)
	assert.Equal(t, "ab", buf)
}

func TestTextEditClipboard(t *testing.T) {
	cb := &gui.MemoryClipboard{}
	h := newHarness(t, gui.WithClipboard(cb))
	buf := "abc"
	focusEdit(h, &buf)

	h.in.ModCtrl = true
	h.key(gui.KeyA)
	editFrame(h, &buf)
	h.in.ModCtrl = true
	h.key(gui.KeyC)
	editFrame(h, &buf)
	assert.Equal(t, "abc", cb.GetText())

	h.key(gui.KeyEnd)
	editFrame(h, &buf)
	cb.SetText("\nd")
	h.in.ModCtrl = true
	h.key(gui.KeyV)
	editFrame(h, &buf)
	assert.Equal(t, "abc d", buf, "pasted line breaks become spaces")
}

func TestTextEditEnterSurrendersFocus(t *testing.T) {
	h := newHarness(t)
	buf := "x"
	focusEdit(h, &buf)
	h.key(gui.KeyEnter)
	out := editFrame(h, &buf)
	assert.False(t, out.Response.HasFocus)
	assert.True(t, out.Response.LostFocus)
}

func TestTextEditDisabled(t *testing.T) {
	h := newHarness(t)
	buf := "x"
	disabled := func(te gui.TextEdit) gui.TextEdit { return te.Disabled(true) }
	h.click(5, 5)
	out := editFrame(h, &buf, disabled)
	assert.False(t, out.Response.HasFocus)
	assert.False(t, out.Response.Clicked)
}

func TestTextEditCharLimit(t *testing.T) {
	h := newHarness(t)
	buf := ""
	limit := func(te gui.TextEdit) gui.TextEdit { return te.CharLimit(3) }
	h.click(5, 5)
	editFrame(h, &buf, limit)
	h.typeText("abcdef")
	editFrame(h, &buf, limit)
	assert.Equal(t, "abc", buf)
}

func TestTextEditLabelAndWidth(t *testing.T) {
	h := newHarness(t)
	buf := ""
	out := editFrame(h, &buf, func(te gui.TextEdit) gui.TextEdit {
		return te.Label("Name").DesiredWidth(120)
	})
	assert.Equal(t, float32(4*7+4), out.Response.Rect.X)
	assert.Equal(t, float32(120), out.Response.Rect.W)
}

func TestTextEditClampsExternallyChangedBuffer(t *testing.T) {
	h := newHarness(t)
	buf := "hello"
	focusEdit(h, &buf)
	h.key(gui.KeyEnd)
	editFrame(h, &buf)

	buf = "hi"
	out := editFrame(h, &buf)
	assert.Equal(t, 2, out.State.Cursor)
}

func TestInputText(t *testing.T) {
	h := newHarness(t)
	value := ""
	var changed bool
	h.click(60, 5)
	h.frame(func(ctx *gui.Context) { changed = ctx.InputText("Label", &value, gui.WithHint("type")) })
	assert.False(t, changed)

	h.typeText("Hi")
	h.frame(func(ctx *gui.Context) { changed = ctx.InputText("Label", &value, gui.WithHint("type")) })
	assert.True(t, changed)
	assert.Equal(t, "Hi", value)
}
