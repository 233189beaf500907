package gui

// Context is the state of one frame: where the next widget goes, what the
// input is, and where geometry is written. It is not a context.Context.
// Obtain it from GUI.Begin; it is valid until GUI.End.
type Context struct {
	DrawList *DrawList
	// ForegroundDrawList is rendered after DrawList. Popups draw into it.
	ForegroundDrawList *DrawList

	Input *InputState

	DisplaySize   Vec2
	FrameCount    uint64
	DeltaTime     float32
	FontTextureID uint32

	// Set during the frame: the application should not act on pointer or
	// keyboard input the GUI consumed.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	style      Style
	styleStack []Style

	cursor      Vec2
	layoutStack []*Layout

	lastItem Rect
	sameLine bool
	onLine   bool
	lineX    float32
	lineH    float32

	stateStore StateStore
	memory     *Memory
	clipboard  ClipboardProvider

	idStack   []ID
	idCounter int

	measureCache map[string]Vec2

	viewports  []Rect // pointer-visible regions of enclosing scroll areas
	popupDepth int
}

// NewContext returns a Context with default style and empty stores. GUI
// creates one for you; tests of custom widgets may use it directly.
func NewContext() *Context {
	return &Context{
		style:        DefaultStyle(),
		stateStore:   make(MapStateStore),
		memory:       &Memory{},
		layoutStack:  make([]*Layout, 0, 8),
		idStack:      make([]ID, 0, 16),
		measureCache: make(map[string]Vec2, 64),
	}
}

func (ctx *Context) Style() Style { return ctx.style }

func (ctx *Context) SetStyle(s Style) {
	ctx.style = s
	clear(ctx.measureCache)
}

// PushStyle overrides the style until the matching PopStyle.
func (ctx *Context) PushStyle(s Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.SetStyle(s)
}

func (ctx *Context) PopStyle() {
	if n := len(ctx.styleStack); n > 0 {
		ctx.SetStyle(ctx.styleStack[n-1])
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Memory returns the retained focus and popup state.
func (ctx *Context) Memory() *Memory { return ctx.memory }

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, dt float32) {
	NextFrame()
	ctx.FrameCount++
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = dt
	ctx.cursor = Vec2{}
	ctx.lastItem = Rect{}
	ctx.sameLine, ctx.onLine = false, false
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.viewports = ctx.viewports[:0]
	ctx.popupDepth = 0
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	clear(ctx.measureCache)
	ctx.memory.beginFrame()
	if ctx.Input != nil {
		ctx.Input.UpdateKeyRepeat(dt)
	}
}

func (ctx *Context) mousePos() Vec2 {
	if ctx.Input == nil {
		return Vec2{X: -1e9, Y: -1e9}
	}
	return ctx.Input.MousePos()
}

// IsHovered reports whether the pointer is over r and nothing covers it:
// r must be inside the visible part of any enclosing scroll area, and
// widgets outside popups do not see the pointer over an open popup.
func (ctx *Context) IsHovered(r Rect) bool {
	if ctx.Input == nil {
		return false
	}
	p := ctx.Input.MousePos()
	if !r.Contains(p) {
		return false
	}
	if n := len(ctx.viewports); n > 0 && !ctx.viewports[n-1].Contains(p) {
		return false
	}
	if ctx.popupDepth == 0 && ctx.memory.blocks(p) {
		return false
	}
	return true
}

// IsClicked reports a left click on r this frame.
func (ctx *Context) IsClicked(r Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	hit := ctx.IsHovered(r)
	if verbose() {
		Logger().Debug("click", "rect", r, "mouse", ctx.Input.MousePos(), "hit", hit)
	}
	return hit
}

func (ctx *Context) isPressed(r Rect) bool {
	return ctx.Input != nil && ctx.Input.MouseDown(MouseButtonLeft) && ctx.IsHovered(r)
}

// LineHeight is the height of one line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

func (ctx *Context) charWidth() float32 {
	return ctx.style.CharWidth * ctx.style.FontScale
}

// MeasureText returns the size text takes when drawn with the current style.
func (ctx *Context) MeasureText(text string) Vec2 {
	if v, ok := ctx.measureCache[text]; ok {
		return v
	}
	v := Vec2{X: float32(TextWidth(text)) * ctx.charWidth(), Y: ctx.LineHeight()}
	if ctx.measureCache != nil {
		ctx.measureCache[text] = v
	}
	return v
}

// AddText draws text at (x, y) into the current draw list.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text into dl.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.charWidth(), ctx.LineHeight())
	dl.SetTexture(0)
}

func (ctx *Context) SetCursorPos(x, y float32) { ctx.cursor = Vec2{X: x, Y: y} }

func (ctx *Context) CursorPos() Vec2 { return ctx.cursor }

// ItemPos applies the layout gap and returns where the next widget goes.
func (ctx *Context) ItemPos() Vec2 {
	if ctx.sameLine {
		return ctx.cursor
	}
	if l := ctx.currentLayout(); l != nil && l.ItemCount > 0 {
		gap := l.gap(ctx.style)
		if l.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}
	return ctx.cursor
}

// AdvanceCursor moves past a widget of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.lastItem = Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: size.X, H: size.Y}
	if ctx.sameLine {
		ctx.sameLine = false
		ctx.lineH = maxf(ctx.lineH, size.Y)
		ctx.cursor = Vec2{X: ctx.lineX, Y: ctx.lastItem.Y}
		size = Vec2{X: ctx.lastItem.Right() - ctx.lineX, Y: ctx.lineH}
	} else {
		ctx.onLine = false
	}
	l := ctx.currentLayout()
	if l == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}
	if l.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		l.MaxWidth = maxf(l.MaxWidth, size.X)
		l.MaxHeight = ctx.cursor.Y - l.StartY
	} else {
		ctx.cursor.X += size.X
		l.MaxWidth = ctx.cursor.X - l.StartX
		l.MaxHeight = maxf(l.MaxHeight, size.Y)
	}
	l.ItemCount++
}

// SameLine places the next widget right of the previous one instead of
// below it.
func (ctx *Context) SameLine() {
	last := ctx.lastItem
	if last.W == 0 && last.H == 0 {
		return
	}
	if !ctx.onLine {
		ctx.onLine = true
		ctx.lineX, ctx.lineH = last.X, 0
	}
	ctx.lineH = maxf(ctx.lineH, last.H)
	ctx.sameLine = true
	ctx.cursor = Vec2{X: last.Right() + ctx.style.ItemSpacing, Y: last.Y}
}

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

// AvailableWidth is the width left for widgets in the current layout.
func (ctx *Context) AvailableWidth() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Width
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

func (ctx *Context) pushViewport(r Rect) {
	if n := len(ctx.viewports); n > 0 {
		r = intersect(r, ctx.viewports[n-1])
	}
	ctx.viewports = append(ctx.viewports, r)
}

func (ctx *Context) popViewport() {
	if n := len(ctx.viewports); n > 0 {
		ctx.viewports = ctx.viewports[:n-1]
	}
}

func intersect(a, b Rect) Rect {
	x0, y0 := maxf(a.X, b.X), maxf(a.Y, b.Y)
	x1, y1 := minf(a.Right(), b.Right()), minf(a.Bottom(), b.Bottom())
	return Rect{X: x0, Y: y0, W: maxf(0, x1-x0), H: maxf(0, y1-y0)}
}
