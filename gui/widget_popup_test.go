package gui_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/dropdown/gui"
)

// popupFrame draws a button anchoring the popup id with n rows and
// returns the anchor, the rows and whether the popup was drawn.
func popupFrame(h *harness, id gui.ID, n int, opts ...gui.Option) (gui.Response, []gui.Response, bool) {
	var (
		anchor gui.Response
		rows   []gui.Response
		shown  bool
	)
	h.frame(func(ctx *gui.Context) {
		anchor = ctx.Button("Open", gui.WithWidth(120))
		shown = ctx.PopupBelow(id, anchor, func() {
			for i := range n {
				rows = append(rows, ctx.Selectable(fmt.Sprintf("row %d", i), false))
			}
		}, opts...)
	})
	return anchor, rows, shown
}

func TestPopupClosedDrawsNothing(t *testing.T) {
	h := newHarness(t)
	_, rows, shown := popupFrame(h, gui.NewID("menu"), 3)
	assert.False(t, shown)
	assert.Empty(t, rows)
	assert.Equal(t, 1, h.renderer.renderCalls)
}

func TestPopupPlacedBelowAnchor(t *testing.T) {
	h := newHarness(t)
	id := gui.NewID("menu")
	h.ui.Memory().OpenPopup(id)

	anchor, rows, shown := popupFrame(h, id, 3)
	require.True(t, shown)
	require.Len(t, rows, 3)
	assert.Equal(t, anchor.Rect.X+4, rows[0].Rect.X)
	assert.Equal(t, anchor.Rect.Bottom()+4, rows[0].Rect.Y)
	assert.Equal(t, anchor.Rect.W-8, rows[0].Rect.W)
	assert.Equal(t, rows[0].Rect.Bottom()+4, rows[1].Rect.Y)
}

func TestPopupCloses(t *testing.T) {
	tests := []struct {
		name     string
		act      func(h *harness)
		wantOpen bool
	}{
		{"escape", func(h *harness) { h.key(gui.KeyEscape) }, false},
		{"click outside", func(h *harness) { h.click(400, 400) }, false},
		{"click on anchor", func(h *harness) { h.click(10, 10) }, true},
		{"click inside", func(h *harness) { h.click(10, 35) }, true},
		{"no input", func(h *harness) {}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			id := gui.NewID("menu")
			h.ui.Memory().OpenPopup(id)
			popupFrame(h, id, 3)

			tt.act(h)
			popupFrame(h, id, 3)
			assert.Equal(t, tt.wantOpen, h.ui.Memory().IsPopupOpen(id))
		})
	}
}

func TestPopupBlocksWidgetsBehindIt(t *testing.T) {
	h := newHarness(t)
	id := gui.NewID("menu")
	h.ui.Memory().OpenPopup(id)

	draw := func() (row, under gui.Response) {
		h.frame(func(ctx *gui.Context) {
			anchor := ctx.Button("Open", gui.WithWidth(120))
			ctx.PopupBelow(id, anchor, func() {
				row = ctx.Selectable("row", false)
			})
			under = ctx.Button("Under", gui.WithWidth(120))
		})
		return row, under
	}
	draw()

	h.click(10, 32)
	row, under := draw()
	require.True(t, under.Rect.Contains(gui.Vec2{X: 10, Y: 32}))
	assert.True(t, row.Clicked)
	assert.False(t, under.Clicked)
	assert.False(t, under.Hovered)

	h.ui.Memory().ClosePopup(id)
	draw()
	h.click(10, 32)
	_, under = draw()
	assert.True(t, under.Clicked, "a closed popup blocks nothing")
}

func TestPopupScrollsBeyondMaxHeight(t *testing.T) {
	h := newHarness(t)
	id := gui.NewID("menu")
	h.ui.Memory().OpenPopup(id)

	popupFrame(h, id, 30, gui.WithMaxHeight(100))
	_, rows, _ := popupFrame(h, id, 30, gui.WithMaxHeight(100))
	first := rows[0].Rect.Y
	assert.Less(t, rows[0].Rect.W, float32(120-8), "room is made for the scrollbar")

	h.in.SetMousePos(10, 50)
	h.in.SetMouseWheel(0, -1)
	popupFrame(h, id, 30, gui.WithMaxHeight(100))
	_, rows, _ = popupFrame(h, id, 30, gui.WithMaxHeight(100))
	assert.Equal(t, first-30, rows[0].Rect.Y)

	h.click(10, 130)
	_, rows, _ = popupFrame(h, id, 30, gui.WithMaxHeight(100))
	for i, r := range rows {
		assert.False(t, r.Clicked, "row %d is clipped away", i)
	}
	assert.False(t, h.ui.Memory().IsPopupOpen(id), "the click was outside the popup")
}
