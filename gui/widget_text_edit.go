package gui

import "unicode"

// DefaultTextEditWidth is the width of a TextEdit that did not ask for one.
const DefaultTextEditWidth float32 = 200

// TextEdit is a single-line editable text field bound to a caller-owned
// string. Configure it with the builder methods, then call Show every frame:
//
//	out := gui.SingleLine(&name).HintText("Name").DesiredWidth(240).Show(ctx)
//	if out.Response.TextChanged {
//	    validate(name)
//	}
//
// The buffer a TextEdit edits is fixed by SingleLine; the builder methods
// only change how it looks and behaves.
type TextEdit struct {
	buf       *string
	id        ID
	label     string
	width     float32
	hint      string
	textColor uint32
	disabled  bool
	charLimit int
}

// TextEditOutput is the result of TextEdit.Show.
type TextEditOutput struct {
	Response Response
	// State is the editing state after this frame. Changes to it only
	// stick if written back with State.Store.
	State TextEditState
}

// SingleLine returns a TextEdit editing *buf.
func SingleLine(buf *string) TextEdit {
	return TextEdit{buf: buf}
}

// ID sets the identity the field's focus and editing state are kept
// under. Without it the ID comes from GetID(label).
func (te TextEdit) ID(id ID) TextEdit {
	te.id = id
	return te
}

// Label draws text left of the field.
func (te TextEdit) Label(label string) TextEdit {
	te.label = label
	return te
}

// DesiredWidth sets the width of the field itself, without the label.
// Zero or less means DefaultTextEditWidth.
func (te TextEdit) DesiredWidth(w float32) TextEdit {
	te.width = w
	return te
}

// HintText is shown greyed out while the buffer is empty.
func (te TextEdit) HintText(hint string) TextEdit {
	te.hint = hint
	return te
}

// TextColor overrides the style's text color. Zero keeps the style's.
func (te TextEdit) TextColor(c uint32) TextEdit {
	te.textColor = c
	return te
}

// Disabled greys the field out and keeps it from taking focus.
func (te TextEdit) Disabled(d bool) TextEdit {
	te.disabled = d
	return te
}

// CharLimit caps the length of the text in runes. Zero means no limit.
func (te TextEdit) CharLimit(n int) TextEdit {
	te.charLimit = n
	return te
}

// Show draws the field, handles pointer and keyboard input and returns
// the response together with the editing state.
//
// The field takes focus when clicked and gives it up on a click anywhere
// else, on Enter and on Escape. Response.GainedFocus is set on the first
// frame the field is drawn with focus.
func (te TextEdit) Show(ctx *Context) TextEditOutput {
	if te.buf == nil {
		var scratch string
		te.buf = &scratch
	}
	pos := ctx.ItemPos()
	id := te.id
	if id == 0 {
		id = ctx.GetID(te.label)
	}
	mem := ctx.memory
	s := ctx.style

	runes := []rune(*te.buf)
	st, ok := LoadTextEditState(ctx, id)
	if !ok {
		st.MoveCursor(len(runes), false)
	}
	st.clamp(len(runes))

	x := pos.X
	if te.label != "" {
		labelColor := s.TextColor
		if te.disabled {
			labelColor = s.TextDisabledColor
		}
		ctx.AddText(x, pos.Y+s.InputPadding, te.label, labelColor)
		x += ctx.MeasureText(te.label).X + s.ItemSpacing
	}
	w := te.width
	if w <= 0 {
		w = DefaultTextEditWidth
	}
	h := ctx.LineHeight() + s.InputPadding*2
	rect := Rect{X: x, Y: pos.Y, W: w, H: h}
	textX := x + s.InputPadding
	textW := w - s.InputPadding*2

	resp := Response{ID: id, Rect: rect}
	if te.disabled {
		mem.SurrenderFocus(id)
	} else {
		resp.Hovered = ctx.IsHovered(rect)
		if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
			if resp.Hovered {
				resp.Clicked = true
				extend := ctx.Input.ModShift && mem.HasFocus(id)
				mem.RequestFocus(id)
				col := ctx.Input.MouseX - textX + st.ScrollX
				st.MoveCursor(te.cursorAt(ctx, runes, col), extend)
			} else {
				mem.SurrenderFocus(id)
			}
		}
	}

	resp.GainedFocus = mem.GainedFocus(id)
	mem.markFocusSeen(id)

	if mem.HasFocus(id) && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		resp.TextChanged = te.handleKeys(ctx, id, &st, &runes)
		st.blink += ctx.DeltaTime
	}
	resp.HasFocus = mem.HasFocus(id)
	resp.LostFocus = st.focused && !resp.HasFocus
	st.focused = resp.HasFocus

	cursorX := ctx.MeasureText(string(runes[:st.Cursor])).X
	switch {
	case cursorX-st.ScrollX > textW:
		st.ScrollX = cursorX - textW + ctx.charWidth()
	case cursorX < st.ScrollX:
		st.ScrollX = cursorX
	}
	st.ScrollX = maxf(st.ScrollX, 0)

	bg, border := s.InputBgColor, s.InputBorderColor
	if resp.HasFocus {
		bg, border = s.InputFocusedBgColor, s.InputFocusedBorder
	}
	dl := ctx.DrawList
	dl.AddRect(x, pos.Y, w, h, bg)
	dl.AddRectOutline(x, pos.Y, w, h, border, 1)

	dl.PushClipRect(textX, pos.Y, textX+textW, pos.Y+h)
	if resp.HasFocus && st.HasSelection() {
		a, b := st.CharRange()
		ax := ctx.MeasureText(string(runes[:a])).X - st.ScrollX
		bx := ctx.MeasureText(string(runes[:b])).X - st.ScrollX
		dl.AddRect(textX+ax, pos.Y+2, bx-ax, h-4, s.TextSelectionColor)
	}
	textColor := s.TextColor
	if te.textColor != 0 {
		textColor = te.textColor
	}
	if te.disabled {
		textColor = s.TextDisabledColor
	}
	if len(runes) == 0 && te.hint != "" {
		ctx.AddText(textX, pos.Y+s.InputPadding, te.hint, s.HintTextColor)
	} else {
		ctx.AddText(textX-st.ScrollX, pos.Y+s.InputPadding, string(runes), textColor)
	}
	dl.PopClipRect()

	if resp.HasFocus && int(st.blink*2)%2 == 0 {
		cx := textX + cursorX - st.ScrollX
		dl.AddLine(cx, pos.Y+2, cx, pos.Y+h-2, s.CursorColor, 1)
	}

	st.Store(ctx, id)
	ctx.cursor.X = pos.X
	ctx.AdvanceCursor(Vec2{X: x - pos.X + w, Y: h})
	return TextEditOutput{Response: resp, State: st}
}

// cursorAt returns the rune index closest to column x of the text.
func (te TextEdit) cursorAt(ctx *Context, runes []rune, x float32) int {
	prev := float32(0)
	for i := 1; i <= len(runes); i++ {
		cur := ctx.MeasureText(string(runes[:i])).X
		if x < (prev+cur)/2 {
			return i - 1
		}
		prev = cur
	}
	return len(runes)
}

// handleKeys applies this frame's keyboard input and reports whether the
// text changed.
func (te TextEdit) handleKeys(ctx *Context, id ID, st *TextEditState, runes *[]rune) bool {
	in := ctx.Input
	buf := te.buf
	changed := false

	set := func(r []rune) {
		*runes = r
		*buf = string(r)
		changed = true
	}
	deleteSelection := func() {
		if !st.HasSelection() {
			return
		}
		a, b := st.CharRange()
		st.PushUndo(*buf)
		set(append((*runes)[:a:a], (*runes)[b:]...))
		st.MoveCursor(a, false)
	}
	insert := func(ins []rune) {
		if te.charLimit > 0 {
			room := te.charLimit - len(*runes)
			if st.HasSelection() {
				a, b := st.CharRange()
				room += b - a
			}
			if room <= 0 {
				return
			}
			if len(ins) > room {
				ins = ins[:room]
			}
		}
		deleteSelection()
		st.PushUndo(*buf)
		c := st.Cursor
		r := make([]rune, 0, len(*runes)+len(ins))
		r = append(r, (*runes)[:c]...)
		r = append(r, ins...)
		r = append(r, (*runes)[c:]...)
		set(r)
		st.MoveCursor(c+len(ins), false)
	}
	restore := func(text string) {
		set([]rune(text))
		st.MoveCursor(len(*runes), false)
	}

	if in.ModCtrl {
		switch {
		case in.KeyPressed(KeyA):
			st.SelectAll(len(*runes))
			return false
		case in.KeyPressed(KeyC):
			if st.HasSelection() {
				a, b := st.CharRange()
				ctx.Clipboard().SetText(string((*runes)[a:b]))
			}
			return false
		case in.KeyPressed(KeyX):
			if st.HasSelection() {
				a, b := st.CharRange()
				ctx.Clipboard().SetText(string((*runes)[a:b]))
				deleteSelection()
			}
			return changed
		case in.KeyPressed(KeyV):
			if clip := ctx.Clipboard().GetText(); clip != "" {
				insert([]rune(singleLine(clip)))
			}
			return changed
		case in.KeyPressed(KeyZ) && !in.ModShift:
			if prev, ok := st.Undo(*buf); ok {
				restore(prev)
			}
			return changed
		case in.KeyPressed(KeyY), in.KeyPressed(KeyZ) && in.ModShift:
			if next, ok := st.Redo(); ok {
				restore(next)
			}
			return changed
		}
	}

	n := len(*runes)
	if in.KeyRepeated(KeyLeft) {
		switch {
		case st.HasSelection() && !in.ModShift:
			a, _ := st.CharRange()
			st.MoveCursor(a, false)
		case in.ModCtrl:
			st.MoveCursor(wordLeft(*runes, st.Cursor), in.ModShift)
		default:
			st.MoveCursor(max(st.Cursor-1, 0), in.ModShift)
		}
	}
	if in.KeyRepeated(KeyRight) {
		switch {
		case st.HasSelection() && !in.ModShift:
			_, b := st.CharRange()
			st.MoveCursor(b, false)
		case in.ModCtrl:
			st.MoveCursor(wordRight(*runes, st.Cursor), in.ModShift)
		default:
			st.MoveCursor(min(st.Cursor+1, n), in.ModShift)
		}
	}
	if in.KeyPressed(KeyHome) {
		st.MoveCursor(0, in.ModShift)
	}
	if in.KeyPressed(KeyEnd) {
		st.MoveCursor(n, in.ModShift)
	}

	if in.KeyRepeated(KeyBackspace) {
		switch {
		case st.HasSelection():
			deleteSelection()
		case st.Cursor > 0:
			from := st.Cursor - 1
			if in.ModCtrl {
				from = wordLeft(*runes, st.Cursor)
			}
			st.SetCharRange(from, st.Cursor)
			deleteSelection()
		}
	}
	if in.KeyRepeated(KeyDelete) {
		switch {
		case st.HasSelection():
			deleteSelection()
		case st.Cursor < len(*runes):
			to := st.Cursor + 1
			if in.ModCtrl {
				to = wordRight(*runes, st.Cursor)
			}
			st.SetCharRange(st.Cursor, to)
			deleteSelection()
		}
	}

	if in.KeyPressed(KeyEnter) || in.KeyPressed(KeyEscape) {
		ctx.memory.SurrenderFocus(id)
		return changed
	}

	if !in.ModCtrl && len(in.InputChars) > 0 {
		typed := make([]rune, 0, len(in.InputChars))
		for _, ch := range in.InputChars {
			if unicode.IsPrint(ch) {
				typed = append(typed, ch)
			}
		}
		if len(typed) > 0 {
			insert(typed)
		}
	}
	return changed
}

// singleLine flattens pasted text onto one line.
func singleLine(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r == '\n' || r == '\r' || r == '\t' {
			out[i] = ' '
		}
	}
	return string(out)
}

func wordLeft(r []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(r[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(r[pos-1]) {
		pos--
	}
	return pos
}

func wordRight(r []rune, pos int) int {
	for pos < len(r) && !unicode.IsSpace(r[pos]) {
		pos++
	}
	for pos < len(r) && unicode.IsSpace(r[pos]) {
		pos++
	}
	return pos
}

// InputText is the option-style shorthand for a labelled TextEdit. It
// reports whether the user edited the value this frame.
func (ctx *Context) InputText(label string, value *string, opts ...Option) bool {
	o := applyOptions(opts)
	te := SingleLine(value).
		Label(label).
		DesiredWidth(GetOpt(o, OptWidth)).
		HintText(GetOpt(o, OptHint)).
		TextColor(GetOpt(o, OptTextColor)).
		Disabled(GetOpt(o, OptDisabled))
	if name := GetOpt(o, OptID); name != "" {
		te = te.ID(ctx.CurrentID().With(name))
	}
	return te.Show(ctx).Response.TextChanged
}
