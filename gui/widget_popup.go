package gui

// DefaultPopupMaxHeight is the height a popup scrolls beyond when no
// WithMaxHeight is given.
const DefaultPopupMaxHeight float32 = 200

// PopupBelow draws contents in a popup attached under anchor, as wide as
// anchor, if the popup id is open in Memory. It reports whether the popup
// was drawn.
//
// Contents go to the foreground draw list in a vertical ScrollArea capped at
// WithMaxHeight. While the popup is open, widgets outside it do not see the
// pointer over it. Escape or a click outside both the popup and the anchor
// closes it.
//
//	if resp.GainedFocus {
//	    ctx.Memory().OpenPopup(menuID)
//	}
//	ctx.PopupBelow(menuID, resp, func() {
//	    if ctx.Selectable("Copy", false).Clicked {
//	        ctx.Memory().ClosePopup(menuID)
//	    }
//	})
func (ctx *Context) PopupBelow(id ID, anchor Response, contents func(), opts ...Option) bool {
	if !ctx.memory.IsPopupOpen(id) {
		return false
	}
	o := applyOptions(opts)
	maxH := GetOpt(o, OptMaxHeight)
	if maxH <= 0 {
		maxH = DefaultPopupMaxHeight
	}
	pad := ctx.style.PopupPadding

	prevDL := ctx.DrawList
	prevCursor := ctx.cursor
	prevLayouts := ctx.layoutStack
	prevViewports := ctx.viewports
	prevLast, prevOnLine, prevLineX, prevLineH := ctx.lastItem, ctx.onLine, ctx.lineX, ctx.lineH
	if ctx.ForegroundDrawList != nil {
		ctx.DrawList = ctx.ForegroundDrawList
	}
	ctx.layoutStack = nil
	ctx.viewports = nil
	ctx.popupDepth++
	ctx.PushID(id)

	origin := Vec2{X: anchor.Rect.X, Y: anchor.Rect.Bottom()}
	bg := ctx.DrawList.ReserveRect()
	inner := ctx.scrollArea(id.With("scroll"),
		Vec2{X: origin.X + pad, Y: origin.Y + pad},
		maxf(anchor.Rect.W-pad*2, 0), maxH-pad*2, o, contents)
	rect := Rect{X: origin.X, Y: origin.Y, W: anchor.Rect.W, H: inner.H + pad*2}

	bg.Fill(rect.X, rect.Y, rect.W, rect.H, ctx.style.PopupBgColor)
	if ctx.style.BorderSize > 0 {
		ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.PopupBorderColor, ctx.style.BorderSize)
	}
	ctx.memory.setPopupRect(rect)
	if ctx.IsHovered(rect) {
		ctx.WantCaptureMouse = true
	}

	ctx.PopID()
	ctx.popupDepth--
	ctx.DrawList = prevDL
	ctx.cursor = prevCursor
	ctx.layoutStack = prevLayouts
	ctx.viewports = prevViewports
	ctx.lastItem, ctx.onLine, ctx.lineX, ctx.lineH = prevLast, prevOnLine, prevLineX, prevLineH

	if ctx.Input != nil && ctx.memory.IsPopupOpen(id) {
		if ctx.Input.KeyPressed(KeyEscape) {
			ctx.memory.ClosePopup(id)
		} else if ctx.Input.MouseClicked(MouseButtonLeft) {
			p := ctx.Input.MousePos()
			if !rect.Contains(p) && !anchor.Rect.Contains(p) {
				ctx.memory.ClosePopup(id)
			}
		}
	}
	return true
}
