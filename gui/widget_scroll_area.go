package gui

// ScrollAreaState is the retained state of a scroll area.
type ScrollAreaState struct {
	ScrollY       float32
	ContentHeight float32

	Dragging        bool
	DragStartY      float32
	DragStartScroll float32

	measured bool
}

var scrollAreas = NewFrameStore[ScrollAreaState]()

const wheelStep = 30

// ScrollArea draws its contents in a vertical layout clipped to a viewport.
// The viewport is as tall as the contents up to maxHeight; beyond that the
// contents scroll with the wheel or the scrollbar. maxHeight <= 0 means
// the rest of the display.
//
//	ctx.ScrollArea("log", 120)(func() {
//	    for _, line := range lines {
//	        ctx.Text(line)
//	    }
//	})
func (ctx *Context) ScrollArea(id string, maxHeight float32, opts ...Option) func(func()) {
	return func(contents func()) {
		o := applyOptions(opts)
		sid := ctx.GetID(id)
		w := GetOpt(o, OptWidth)
		if w <= 0 {
			w = ctx.AvailableWidth()
		}
		pos := ctx.ItemPos()
		r := ctx.scrollArea(sid, pos, w, maxHeight, o, contents)
		ctx.cursor = pos
		ctx.AdvanceCursor(Vec2{X: r.W, Y: r.H})
	}
}

// scrollArea runs contents inside a viewport at pos and returns the
// viewport. It leaves the cursor wherever contents left it.
func (ctx *Context) scrollArea(id ID, pos Vec2, width, maxHeight float32, o options, contents func()) Rect {
	st := scrollAreas.Get(id, ScrollAreaState{})
	if maxHeight <= 0 {
		maxHeight = maxf(ctx.DisplaySize.Y-pos.Y, 0)
	}
	height := maxHeight
	if st.measured {
		height = minf(st.ContentHeight, maxHeight)
	}
	maxScroll := maxf(0, st.ContentHeight-height)
	st.ScrollY = clampf(st.ScrollY, 0, maxScroll)

	vis := GetOpt(o, OptScrollbarVisibility)
	showBar := vis == ScrollbarAlways || (vis == ScrollbarAuto && st.ContentHeight > height)
	barW := float32(0)
	if showBar {
		barW = ctx.style.ScrollbarSize
	}

	view := Rect{X: pos.X, Y: pos.Y, W: width, H: height}
	ctx.DrawList.PushClipRect(view.X, view.Y, view.Right()-barW, view.Bottom())
	ctx.pushViewport(view)

	outer := ctx.layoutStack
	ctx.layoutStack = nil
	ctx.cursor = Vec2{X: pos.X, Y: pos.Y - st.ScrollY}
	ctx.pushLayout(&Layout{Type: LayoutVertical, Width: width - barW, Height: maxHeight})
	contents()
	bounds := ctx.popLayout()
	ctx.layoutStack = outer

	ctx.popViewport()
	ctx.DrawList.PopClipRect()

	st.ContentHeight = bounds.H
	st.measured = true
	maxScroll = maxf(0, st.ContentHeight-height)

	if ctx.Input != nil && ctx.IsHovered(view) && ctx.Input.MouseWheelY != 0 {
		st.ScrollY = clampf(st.ScrollY-ctx.Input.MouseWheelY*wheelStep, 0, maxScroll)
	}

	if showBar && st.ContentHeight > height {
		ctx.scrollbar(st, Rect{X: view.Right() - barW, Y: view.Y, W: barW, H: height}, maxScroll)
	}
	return view
}

func (ctx *Context) scrollbar(st *ScrollAreaState, track Rect, maxScroll float32) {
	thumbH := maxf(20, track.H*track.H/st.ContentHeight)
	thumbH = minf(thumbH, track.H)
	thumbY := track.Y
	if maxScroll > 0 {
		thumbY += st.ScrollY / maxScroll * (track.H - thumbH)
	}
	thumb := Rect{X: track.X, Y: thumbY, W: track.W, H: thumbH}
	hovered := ctx.IsHovered(thumb)

	if ctx.Input != nil {
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			st.Dragging = true
			st.DragStartY = ctx.Input.MouseY
			st.DragStartScroll = st.ScrollY
		}
		if st.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				if free := track.H - thumbH; free > 0 {
					delta := (ctx.Input.MouseY - st.DragStartY) * maxScroll / free
					st.ScrollY = clampf(st.DragStartScroll+delta, 0, maxScroll)
				}
			} else {
				st.Dragging = false
			}
		}
		if !hovered && ctx.IsClicked(track) {
			if ctx.Input.MouseY < thumb.Y {
				st.ScrollY = clampf(st.ScrollY-track.H, 0, maxScroll)
			} else if ctx.Input.MouseY > thumb.Bottom() {
				st.ScrollY = clampf(st.ScrollY+track.H, 0, maxScroll)
			}
		}
	}

	ctx.DrawList.AddRect(track.X, track.Y, track.W, track.H, ctx.style.ScrollbarBgColor)
	color := ctx.style.ScrollbarGrabColor
	if hovered || st.Dragging {
		color = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(thumb.X, thumb.Y, thumb.W, thumb.H, color)
}
