package gui

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

// Button draws a button sized to its label.
func (ctx *Context) Button(label string, opts ...Option) Response {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	disabled := GetOpt(o, OptDisabled)
	resp := Response{ID: id, Rect: rect}
	resp.Hovered = !disabled && ctx.IsHovered(rect)
	resp.Clicked = !disabled && ctx.IsClicked(rect)

	bg := ctx.style.ButtonColor
	switch {
	case disabled:
		bg = ctx.style.ButtonDisabledColor
	case ctx.isPressed(rect):
		bg = ctx.style.ButtonActiveColor
	case resp.Hovered:
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, textColor)

	ctx.AdvanceCursor(size)
	return resp
}

// Selectable draws a one-line item spanning the available width, as used
// for list rows. It is highlighted while hovered or selected.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) Response {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	pad := ctx.style.ItemSpacing
	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = maxf(ctx.AvailableWidth(), ctx.MeasureText(label).X+pad*2)
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: ctx.LineHeight()}

	disabled := GetOpt(o, OptDisabled)
	resp := Response{ID: id, Rect: rect}
	resp.Hovered = !disabled && ctx.IsHovered(rect)
	resp.Clicked = !disabled && ctx.IsClicked(rect)

	textColor := ctx.style.TextColor
	if c := GetOpt(o, OptTextColor); c != 0 {
		textColor = c
	}
	switch {
	case disabled:
		textColor = ctx.style.TextDisabledColor
	case selected:
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.SelectedBgColor)
		ctx.DrawList.AddRect(rect.X, rect.Y, 3, rect.H, ctx.style.TextHighlightColor)
		textColor = ctx.style.SelectedTextColor
	case resp.Hovered:
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.HoveredBgColor)
	}
	ctx.AddText(pos.X+pad, pos.Y, label, textColor)

	ctx.AdvanceCursor(Vec2{X: w, Y: rect.H})
	return resp
}
