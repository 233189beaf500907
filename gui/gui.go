package gui

import "fmt"

// Renderer draws the geometry of one frame.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI owns the Context and the retained state across frames.
type GUI struct {
	renderer   Renderer
	stateStore StateStore
	clipboard  ClipboardProvider
	style      Style
	ctx        *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

// WithClipboard makes text fields copy and paste through c instead of an
// in-process buffer.
func WithClipboard(c ClipboardProvider) GUIOption {
	return func(g *GUI) { g.clipboard = c }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		ctx:        NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.stateStore = g.stateStore
	ctx.SetStyle(g.style)
	if g.renderer != nil {
		ctx.FontTextureID = g.renderer.FontTextureID()
	}
	if g.clipboard != nil {
		ctx.clipboard = g.clipboard
	}

	ctx.Reset(displaySize, deltaTime)
	if verbose() {
		Logger().Debug("frame", "n", ctx.FrameCount, "size", displaySize, "focus", ctx.memory.FocusedID())
	}
	return ctx
}

// End finishes the frame, renders both draw lists and returns them to the
// pool. The foreground list (popups) is rendered last.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}
	defer func() {
		ReleaseDrawList(ctx.DrawList)
		ReleaseDrawList(ctx.ForegroundDrawList)
		ctx.DrawList, ctx.ForegroundDrawList = nil, nil
	}()

	if g.renderer == nil {
		return nil
	}
	ctx.DrawList.Finalize()
	if err := g.renderer.Render(ctx.DrawList); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if fg := ctx.ForegroundDrawList; fg != nil && len(fg.VtxBuffer) > 0 {
		fg.Finalize()
		if err := g.renderer.Render(fg); err != nil {
			return fmt.Errorf("render foreground: %w", err)
		}
	}
	return nil
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the style used from the next Begin on.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Memory returns the retained focus and popup state.
func (g *GUI) Memory() *Memory {
	return g.ctx.memory
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
