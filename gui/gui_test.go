package gui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/dropdown/gui"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	err         error
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

var displaySize = gui.Vec2{X: 800, Y: 600}

// harness drives frames against a mock renderer. Input set between frames
// is seen by the next frame; edge flags are cleared after it.
type harness struct {
	t        *testing.T
	ui       *gui.GUI
	in       *gui.InputState
	renderer *mockRenderer
}

func newHarness(t *testing.T, opts ...gui.GUIOption) *harness {
	t.Helper()
	// FrameStores are shared by all GUIs; let entries of earlier tests expire.
	gui.NextFrame()
	gui.NextFrame()
	r := &mockRenderer{}
	return &harness{t: t, ui: gui.New(r, opts...), in: gui.NewInputState(), renderer: r}
}

func (h *harness) frame(draw func(ctx *gui.Context)) {
	h.t.Helper()
	ctx := h.ui.Begin(h.in, displaySize, 1.0/60)
	draw(ctx)
	require.NoError(h.t, h.ui.End())
	h.in.Reset()
	h.in.SetMouseButton(gui.MouseButtonLeft, false)
	for k := gui.KeyNone + 1; k < gui.KeyCount; k++ {
		h.in.SetKey(k, false)
	}
	h.in.ModCtrl, h.in.ModShift = false, false
	h.in.Reset()
}

// click presses the left button at (x, y) for the next frame.
func (h *harness) click(x, y float32) {
	h.in.SetMousePos(x, y)
	h.in.SetMouseButton(gui.MouseButtonLeft, true)
}

// key presses k for the next frame.
func (h *harness) key(k gui.Key) { h.in.SetKey(k, true) }

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.in.AddInputChar(r)
	}
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))

	ctx := ui.Begin(gui.NewInputState(), displaySize, 0.016)
	require.NotNil(t, ctx)
	ctx.Text("Hello World")
	ctx.TextColored("Colored", gui.ColorYellow)

	require.NoError(t, ui.End())
	assert.Equal(t, 1, renderer.renderCalls, "empty foreground list is not rendered")
	assert.Nil(t, ctx.DrawList, "draw lists are released by End")
}

func TestEndWrapsRenderError(t *testing.T) {
	boom := errors.New("boom")
	ui := gui.New(&mockRenderer{err: boom})

	ui.Begin(gui.NewInputState(), displaySize, 0.016)
	err := ui.End()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "render")
}

func TestEndWithoutBegin(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	assert.NoError(t, ui.End())
}

func TestForegroundRenderedAfterPopup(t *testing.T) {
	h := newHarness(t)
	id := gui.NewID("menu")
	h.ui.Memory().OpenPopup(id)
	h.frame(func(ctx *gui.Context) {
		anchor := ctx.Button("Open")
		ctx.PopupBelow(id, anchor, func() {
			ctx.Text("inside")
		})
	})
	assert.Equal(t, 2, h.renderer.renderCalls)
}

func TestButtonClick(t *testing.T) {
	h := newHarness(t)
	var resp gui.Response
	h.frame(func(ctx *gui.Context) { resp = ctx.Button("Click Me") })
	assert.False(t, resp.Clicked, "no click without mouse input")

	h.click(10, 5)
	h.frame(func(ctx *gui.Context) { resp = ctx.Button("Click Me") })
	assert.True(t, resp.Clicked)
	assert.True(t, resp.Hovered)
	assert.Equal(t, gui.Rect{X: 0, Y: 0, W: 8*7 + 12, H: 13 + 12}, resp.Rect)

	h.click(10, 5)
	h.frame(func(ctx *gui.Context) { resp = ctx.Button("Click Me", gui.WithDisabled(true)) })
	assert.False(t, resp.Clicked, "disabled buttons ignore clicks")
}

func TestSelectableSpansAvailableWidth(t *testing.T) {
	h := newHarness(t)
	var resp gui.Response
	h.frame(func(ctx *gui.Context) {
		ctx.VStack(gui.Width(150))(func() {
			resp = ctx.Selectable("row", false)
		})
	})
	assert.Equal(t, float32(150), resp.Rect.W)
	assert.Equal(t, float32(13), resp.Rect.H)
}

func TestLayoutPositions(t *testing.T) {
	h := newHarness(t)
	var a, b, c gui.Response
	h.frame(func(ctx *gui.Context) {
		ctx.VStack(gui.Gap(10))(func() {
			ctx.HStack(gui.Gap(5))(func() {
				a = ctx.Button("A")
				b = ctx.Button("B")
			})
			c = ctx.Button("C")
		})
	})
	assert.Zero(t, a.Rect.X)
	assert.Zero(t, a.Rect.Y)
	assert.Equal(t, a.Rect.Right()+5, b.Rect.X)
	assert.Equal(t, a.Rect.Y, b.Rect.Y)
	assert.Equal(t, a.Rect.Bottom()+10, c.Rect.Y)
}

func TestSameLine(t *testing.T) {
	h := newHarness(t)
	var a, b, c gui.Response
	h.frame(func(ctx *gui.Context) {
		a = ctx.Button("A")
		ctx.SameLine()
		b = ctx.Button("B")
		c = ctx.Button("C")
	})
	assert.Equal(t, a.Rect.Right()+4, b.Rect.X)
	assert.Equal(t, a.Rect.Y, b.Rect.Y)
	assert.Equal(t, a.Rect.X, c.Rect.X)
	assert.Equal(t, a.Rect.Bottom()+4, c.Rect.Y)
}

func TestPanel(t *testing.T) {
	h := newHarness(t)
	var inner gui.Response
	h.frame(func(ctx *gui.Context) {
		ctx.Panel("Test Panel", gui.Gap(8), gui.Padding(12))(func() {
			ctx.Text("Line 1")
			inner = ctx.Button("Line 2")
		})
	})
	assert.Equal(t, float32(12), inner.Rect.X)
	assert.Greater(t, inner.Rect.Y, float32(13+12*2))
}

func TestDrawListPool(t *testing.T) {
	dl1 := gui.AcquireDrawList()
	require.NotNil(t, dl1)
	dl1.AddRect(0, 0, 100, 100, gui.ColorWhite)
	gui.ReleaseDrawList(dl1)

	dl2 := gui.AcquireDrawList()
	require.NotNil(t, dl2)
	assert.Empty(t, dl2.VtxBuffer, "reused DrawList should be cleared")
	gui.ReleaseDrawList(dl2)
}

func TestDrawListClipSplitsCommands(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.PushClipRect(0, 0, 50, 50)
	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.AddRect(20, 0, 10, 10, gui.ColorWhite)
	dl.PopClipRect()
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2, "the empty command after PopClipRect is dropped")
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, uint32(12), dl.CmdBuffer[1].ElemCount)
	assert.Equal(t, [4]float32{0, 0, 50, 50}, dl.CmdBuffer[1].ClipRect)
}

func TestRectSlotDrawsBehind(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	slot := dl.ReserveRect()
	dl.AddRect(5, 5, 10, 10, gui.ColorRed)
	slot.Fill(0, 0, 20, 20, gui.ColorBlack)

	require.Len(t, dl.VtxBuffer, 8)
	assert.Equal(t, gui.ColorBlack, dl.VtxBuffer[0].Color)
	assert.Equal(t, [2]float32{20, 20}, dl.VtxBuffer[2].Pos)
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"Zürich", 6},
		{"東京", 4},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, gui.TextWidth(tt.text))
		})
	}
}

func TestIDGeneration(t *testing.T) {
	h := newHarness(t)
	var first, again [2]gui.ID
	h.frame(func(ctx *gui.Context) {
		first[0] = ctx.GetID("button")
		first[1] = ctx.GetID("button")
	})
	h.frame(func(ctx *gui.Context) {
		again[0] = ctx.GetID("button")
		again[1] = ctx.GetID("button")
	})
	assert.NotEqual(t, first[0], first[1], "same label twice in a frame gets two IDs")
	assert.Equal(t, first, again, "IDs are stable across frames")
}

func TestPushPopID(t *testing.T) {
	h := newHarness(t)
	var id1, id2 gui.ID
	h.frame(func(ctx *gui.Context) {
		ctx.PushID("section1")
		id1 = ctx.GetID("item")
		ctx.PopID()

		ctx.PushID("section2")
		id2 = ctx.GetID("item")
		ctx.PopID()
		assert.Zero(t, ctx.CurrentID())
	})
	assert.NotEqual(t, id1, id2)
}

func TestNewID(t *testing.T) {
	assert.Equal(t, gui.NewID("country"), gui.NewID("country"))
	assert.NotEqual(t, gui.NewID("country"), gui.NewID("city"))
	assert.NotEqual(t, gui.NewID("1"), gui.NewID(1), "seeds of different types differ")
	assert.NotEqual(t, gui.NewID(1), gui.NewID(1).With("edit"))
	assert.Equal(t, gui.NewID(1).With("edit"), gui.NewID(1).With("edit"))

	type key struct {
		row int
		col string
	}
	assert.Equal(t, gui.NewID(key{1, "a"}), gui.NewID(key{1, "a"}))
}

func TestStateStore(t *testing.T) {
	store := make(gui.MapStateStore)
	h := newHarness(t, gui.WithStateStore(store))
	h.frame(func(ctx *gui.Context) {
		id := ctx.GetID("test_state")
		gui.SetState(ctx, id, float32(42.5))
		assert.Equal(t, float32(42.5), gui.GetState(ctx, id, float32(0)))
		assert.Equal(t, 7, gui.GetState(ctx, id, 7), "wrong type yields the default")
		assert.Equal(t, float32(99), gui.GetState(ctx, ctx.GetID("nonexistent"), float32(99)))

		gui.DeleteState(ctx, id)
		_, ok := gui.LookupState[float32](ctx, id)
		assert.False(t, ok)
	})
}

func TestFrameStoreEvictsUnused(t *testing.T) {
	store := gui.NewFrameStore[int]()
	h := newHarness(t)
	id := gui.NewID("kept")
	other := gui.NewID("dropped")

	h.frame(func(*gui.Context) {
		*store.Get(id, 0) = 1
		*store.Get(other, 0) = 2
	})
	h.frame(func(*gui.Context) { store.Get(id, 0) })
	h.frame(func(*gui.Context) { store.Get(id, 0) })

	v, ok := store.Lookup(id)
	require.True(t, ok)
	assert.Equal(t, 1, *v)
	_, ok = store.Lookup(other)
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestStyles(t *testing.T) {
	for _, name := range []string{"", "default", "dark", "gta", "light"} {
		t.Run(name, func(t *testing.T) {
			style, ok := gui.StyleByName(name)
			require.True(t, ok)
			assert.NotZero(t, style.TextColor)
			assert.NotZero(t, style.CharWidth)
			assert.NotZero(t, style.PopupBgColor)
		})
	}
	_, ok := gui.StyleByName("neon")
	assert.False(t, ok)
}

func TestPushPopStyle(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		s := ctx.Style()
		s.FontScale = 2
		ctx.PushStyle(s)
		assert.Equal(t, float32(26), ctx.LineHeight())
		assert.Equal(t, gui.Vec2{X: 28, Y: 26}, ctx.MeasureText("ab"))
		ctx.PopStyle()
		assert.Equal(t, float32(13), ctx.LineHeight())
	})
}

func TestColorFunctions(t *testing.T) {
	c := gui.RGBA(255, 128, 64, 200)
	r, g, b, a := gui.UnpackRGBA(c)
	assert.Equal(t, [4]uint8{255, 128, 64, 200}, [4]uint8{r, g, b, a})
}

func TestOptions(t *testing.T) {
	key := gui.NewOptKey("tint", gui.ColorWhite)
	assert.Equal(t, gui.ColorWhite, gui.ApplyAndGet(nil, key))
	assert.Equal(t, gui.ColorRed, gui.ApplyAndGet([]gui.Option{gui.WithOpt(key, gui.ColorRed)}, key))
	assert.Equal(t, float32(30), gui.ApplyAndGet([]gui.Option{nil, gui.WithMaxHeight(30)}, gui.OptMaxHeight))
}

func TestMemoryClipboard(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		cb := ctx.Clipboard()
		require.NotNil(t, cb)
		cb.SetText("copied")
		assert.Equal(t, "copied", ctx.Clipboard().GetText())
	})

	custom := &gui.MemoryClipboard{}
	h = newHarness(t, gui.WithClipboard(custom))
	h.frame(func(ctx *gui.Context) { ctx.Clipboard().SetText("x") })
	assert.Equal(t, "x", custom.GetText())
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, gui.ColorWhite)
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddText(0, float32(i%100*10), "Hello World", gui.ColorWhite, 7, 13)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, displaySize, 0.016)
		ctx.Panel("Menu", gui.Gap(8))(func() {
			ctx.Text("Title")
			for j := 0; j < 10; j++ {
				ctx.Selectable("Item", false)
			}
		})
		_ = ui.End()
	}
}
