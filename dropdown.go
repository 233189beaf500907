package dropdown

import (
	"fmt"
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/go-theft-auto/dropdown/gui"
)

// DisplayFunc draws one suggestion and returns its response. A suggestion
// whose response is Clicked is committed to the buffer.
type DisplayFunc func(ctx *gui.Context, text string) gui.Response

// Selectable is the DisplayFunc used when none is given: a full-width row
// that highlights under the pointer.
func Selectable(ctx *gui.Context, text string) gui.Response {
	return ctx.Selectable(text, false)
}

// Box is a single-line text field with a popup of suggestions below it.
//
// A Box is built and shown every frame. Everything that must survive a
// frame (focus, whether the popup is open, cursor and selection) is kept
// by the gui.Context under IDs derived from the seed, so the seed must be
// the same every frame and unique among the Boxes on screen.
//
//	dropdown.FromSlice(countries, "country", &country, dropdown.Selectable).
//	    SelectOnFocus(true).
//	    DesiredWidth(240).
//	    Show(ctx)
type Box struct {
	popupID gui.ID
	items   iter.Seq[string]
	buf     *string
	display DisplayFunc

	textProps     func(gui.TextEdit) gui.TextEdit
	filter        bool
	selectOnFocus bool
	width         float32
	matcher       Matcher
	maxHeight     float32
}

// New returns a Box editing *buf and suggesting items. items is iterated
// once per Show, so it must yield afresh every time it is ranged over or be
// rebuilt every frame.
func New[S ~string](items iter.Seq[S], seed any, buf *string, display DisplayFunc) Box {
	var seq iter.Seq[string]
	if items != nil {
		seq = func(yield func(string) bool) {
			for s := range items {
				if !yield(string(s)) {
					return
				}
			}
		}
	}
	return newBox(seq, seed, buf, display)
}

// FromSlice is New over the elements of items.
func FromSlice[S ~string](items []S, seed any, buf *string, display DisplayFunc) Box {
	return New(slices.Values(items), seed, buf, display)
}

// FromStringers is New over values shown through their String method.
func FromStringers[T fmt.Stringer](items iter.Seq[T], seed any, buf *string, display DisplayFunc) Box {
	var seq iter.Seq[string]
	if items != nil {
		seq = func(yield func(string) bool) {
			for v := range items {
				if !yield(v.String()) {
					return
				}
			}
		}
	}
	return newBox(seq, seed, buf, display)
}

func newBox(items iter.Seq[string], seed any, buf *string, display DisplayFunc) Box {
	if buf == nil {
		buf = new(string)
	}
	if display == nil {
		display = Selectable
	}
	return Box{
		popupID: gui.NewID(seed),
		items:   items,
		buf:     buf,
		display: display,
		filter:  true,
		matcher: Substring,
	}
}

// TextProperties customizes the text field. f receives the field already
// bound to the buffer and may restyle it or give it another ID; the buffer
// itself cannot be replaced.
func (b Box) TextProperties(f func(gui.TextEdit) gui.TextEdit) Box {
	b.textProps = f
	return b
}

// FilterByInput hides suggestions that do not match the text typed so far.
// On by default.
func (b Box) FilterByInput(on bool) Box {
	b.filter = on
	return b
}

// SelectOnFocus selects the whole text when the field gains focus, so that
// typing replaces it. Off by default.
func (b Box) SelectOnFocus(on bool) Box {
	b.selectOnFocus = on
	return b
}

// DesiredWidth sets the width of the text field and of the popup. It
// overrides a width set through TextProperties.
func (b Box) DesiredWidth(w float32) Box {
	b.width = w
	return b
}

// Matcher replaces the case-insensitive substring test used for filtering.
// A nil m restores it.
func (b Box) Matcher(m Matcher) Box {
	if m == nil {
		m = Substring
	}
	b.matcher = m
	return b
}

// MaxPopupHeight caps the popup; longer lists scroll. Zero or less means
// gui.DefaultPopupMaxHeight.
func (b Box) MaxPopupHeight(h float32) Box {
	b.maxHeight = h
	return b
}

// PopupID returns the ID the popup is opened under in gui.Memory.
func (b Box) PopupID() gui.ID { return b.popupID }

// Show draws the Box and returns the text field's response. ValueChanged
// is set when a suggestion was clicked this frame and its text written to
// the buffer; TextChanged is set when the user edited the text.
//
// The popup opens when the field gains focus and closes when a suggestion
// is picked, on Escape, or on a click elsewhere.
func (b Box) Show(ctx *gui.Context) gui.Response {
	edit := gui.SingleLine(b.buf).ID(b.popupID.With("edit"))
	if b.textProps != nil {
		edit = b.textProps(edit)
	}
	if b.width > 0 {
		edit = edit.DesiredWidth(b.width)
	}
	out := edit.Show(ctx)
	resp := out.Response

	if resp.GainedFocus {
		if b.selectOnFocus {
			out.State.SetCharRange(0, utf8.RuneCountInString(*b.buf))
			out.State.Store(ctx, resp.ID)
		}
		ctx.Memory().OpenPopup(b.popupID)
	}

	changed := false
	ctx.PopupBelow(b.popupID, resp, func() {
		if b.items == nil {
			return
		}
		for text := range b.items {
			if b.filter && *b.buf != "" && !b.matcher.Match(*b.buf, text) {
				continue
			}
			if b.display(ctx, text).Clicked {
				gui.Logger().Debug("dropdown select", "popup", b.popupID, "text", text)
				*b.buf = text
				changed = true
				ctx.Memory().ClosePopup(b.popupID)
			}
		}
	}, gui.WithMaxHeight(b.maxHeight))

	if changed {
		resp.MarkChanged()
	}
	return resp
}
