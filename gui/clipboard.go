package gui

import "sync"

// ClipboardProvider gives text widgets access to a clipboard. The default
// is process-local (MemoryClipboard); backends supply the system one, see
// opengl.Clipboard.
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" if it holds none.
	GetText() string
	SetText(text string)
}

// MemoryClipboard is a ClipboardProvider that never leaves the process.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemoryClipboard) GetText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

func (c *MemoryClipboard) SetText(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
}

// Clipboard returns the clipboard widgets in this context use.
func (ctx *Context) Clipboard() ClipboardProvider {
	if ctx.clipboard == nil {
		ctx.clipboard = &MemoryClipboard{}
	}
	return ctx.clipboard
}
