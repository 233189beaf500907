package gui

import (
	"fmt"
	"hash/fnv"
	"io"
)

// ID identifies a widget across frames. Retained state (focus, popups,
// cursor positions) is keyed by it.
type ID uint64

// NewID hashes an arbitrary seed into an ID. Equal seeds of the same
// dynamic type always give the same ID, in any frame and any process, so
// it is the way to name things whose identity must not depend on call order.
// The seed is formatted with %v; seeds that format identically collide.
func NewID(seed any) ID {
	h := fnv.New64a()
	writeSeed(h, seed)
	return ID(h.Sum64())
}

// With derives a child ID from id and a seed.
func (id ID) With(seed any) ID {
	h := fnv.New64a()
	var b [8]byte
	for i := range b {
		b[i] = byte(id >> (8 * i))
	}
	h.Write(b[:])
	writeSeed(h, seed)
	return ID(h.Sum64())
}

func writeSeed(w io.Writer, seed any) {
	switch s := seed.(type) {
	case string:
		io.WriteString(w, "string\x00")
		io.WriteString(w, s)
	case ID:
		fmt.Fprintf(w, "gui.ID\x00%d", uint64(s))
	default:
		fmt.Fprintf(w, "%T\x00%v", seed, seed)
	}
}

// GetID returns an ID for label under the current ID stack. Each call
// advances a per-frame counter, so the same label used twice in one frame
// gets two IDs; IDs stay stable as long as widgets are submitted in the
// same order every frame.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++
	return ctx.CurrentID().With(idKey{label: label, n: ctx.idCounter})
}

type idKey struct {
	label string
	n     int
}

// PushID scopes subsequent GetID calls under seed. Unlike GetID it does
// not depend on call order.
func (ctx *Context) PushID(seed any) {
	ctx.idStack = append(ctx.idStack, ctx.CurrentID().With(seed))
}

// PopID removes the innermost scope pushed by PushID.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the innermost scope, or 0 at the root.
func (ctx *Context) CurrentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return 0
}
