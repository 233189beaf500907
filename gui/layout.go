package gui

// LayoutType is the direction a layout stacks its children in.
type LayoutType uint8

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// Layout tracks the children of one container while they are drawn.
type Layout struct {
	Type LayoutType

	StartX, StartY float32

	// Width and Height are the space available to children.
	Width, Height float32
	// MaxWidth and MaxHeight accumulate the size of what was drawn.
	MaxWidth, MaxHeight float32

	Gap     float32
	Padding float32

	ItemCount int

	sameLine bool // the layout itself was placed with SameLine
}

func (l *Layout) gap(s Style) float32 {
	if l.Gap > 0 {
		return l.Gap
	}
	return s.ItemSpacing
}

// LayoutOption configures a container.
type LayoutOption func(*Layout)

// Gap sets the space between children.
func Gap(px float32) LayoutOption { return func(l *Layout) { l.Gap = px } }

// Padding sets the inner padding of a Panel.
func Padding(px float32) LayoutOption { return func(l *Layout) { l.Padding = px } }

// Width fixes the width of a container.
func Width(w float32) LayoutOption { return func(l *Layout) { l.Width = w } }

// Height fixes the height of a container.
func Height(h float32) LayoutOption { return func(l *Layout) { l.Height = h } }

func (ctx *Context) pushLayout(l *Layout) {
	l.StartX, l.StartY = ctx.cursor.X, ctx.cursor.Y
	if l.Width == 0 {
		l.Width = ctx.AvailableWidth()
	}
	if l.Height == 0 {
		l.Height = ctx.DisplaySize.Y - ctx.cursor.Y
	}
	l.sameLine, ctx.sameLine = ctx.sameLine, false
	ctx.layoutStack = append(ctx.layoutStack, l)
}

// popLayout closes the innermost layout, places it in its parent as one
// item, and returns the area its children covered.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	l := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	bounds := Rect{X: l.StartX, Y: l.StartY, W: l.MaxWidth, H: l.MaxHeight}

	ctx.cursor = Vec2{X: l.StartX, Y: l.StartY}
	ctx.sameLine = l.sameLine
	ctx.AdvanceCursor(Vec2{X: bounds.W, Y: bounds.H})
	if parent := ctx.currentLayout(); parent != nil && parent.Type == LayoutHorizontal {
		ctx.cursor.Y = parent.StartY
	} else {
		ctx.cursor.X = l.StartX
	}
	return bounds
}

func (ctx *Context) stack(t LayoutType, opts []LayoutOption, contents func()) Rect {
	l := &Layout{Type: t}
	for _, opt := range opts {
		opt(l)
	}
	ctx.ItemPos()
	ctx.pushLayout(l)
	contents()
	return ctx.popLayout()
}

// VStack stacks its contents top to bottom.
//
//	ctx.VStack(gui.Gap(8))(func() {
//	    ctx.Text("Country")
//	    box.Show(ctx)
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) { ctx.stack(LayoutVertical, opts, contents) }
}

// HStack stacks its contents left to right.
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) { ctx.stack(LayoutHorizontal, opts, contents) }
}

// Panel draws a titled, padded background behind its contents, sized to fit.
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		l := &Layout{Type: LayoutVertical, Padding: ctx.style.PanelPadding}
		for _, opt := range opts {
			opt(l)
		}
		pad := l.Padding
		userW, userH := l.Width, l.Height
		start := ctx.ItemPos()
		outer := ctx.layoutStack
		ctx.layoutStack = nil

		bg := ctx.DrawList.ReserveRect()
		headerH := float32(0)
		if title != "" {
			headerH = ctx.LineHeight() + pad*2
		}
		ctx.cursor = Vec2{X: start.X + pad, Y: start.Y + headerH + pad}
		if l.Width > 0 {
			l.Width -= pad * 2
		}
		ctx.pushLayout(l)
		contents()
		inner := ctx.popLayout()

		w := maxf(inner.W+pad*2, userW)
		if title != "" {
			w = maxf(w, ctx.MeasureText(title).X+pad*2)
		}
		h := maxf(inner.H+headerH+pad*2, userH)
		bg.Fill(start.X, start.Y, w, h, ctx.style.PanelColor)
		if title != "" {
			ctx.DrawList.AddRect(start.X, start.Y, w, headerH, ctx.style.PanelHeaderBgColor)
			ctx.AddText(start.X+pad, start.Y+pad, title, ctx.style.TextColor)
		}
		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(start.X, start.Y, w, h, ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}
		if ctx.IsHovered(Rect{X: start.X, Y: start.Y, W: w, H: h}) {
			ctx.WantCaptureMouse = true
		}

		ctx.layoutStack = outer
		ctx.cursor = start
		ctx.AdvanceCursor(Vec2{X: w, Y: h})
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(px float32) { ctx.cursor.Y += px }

// Separator draws a horizontal rule across the available width.
func (ctx *Context) Separator() {
	p := ctx.ItemPos()
	w := ctx.AvailableWidth()
	ctx.DrawList.AddLine(p.X, p.Y+2, p.X+w, p.Y+2, ctx.style.SeparatorColor, 1)
	ctx.AdvanceCursor(Vec2{X: w, Y: 4})
}

// Indent shifts following widgets right.
func (ctx *Context) Indent(px float32) { ctx.cursor.X += px }
