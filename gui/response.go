package gui

// Response is what an interactive widget reports about the frame it was
// drawn in.
type Response struct {
	ID   ID
	Rect Rect

	Hovered bool
	Clicked bool

	HasFocus    bool
	GainedFocus bool
	LostFocus   bool

	// TextChanged is set when the user edited the text of a text field
	// this frame.
	TextChanged bool

	// ValueChanged is set by composite widgets through MarkChanged when
	// they changed the value on the user's behalf, such as a dropdown
	// committing a suggestion. It is independent of TextChanged.
	ValueChanged bool
}

// MarkChanged sets ValueChanged.
func (r *Response) MarkChanged() { r.ValueChanged = true }

// Changed reports whether the widget's value changed for either reason.
func (r Response) Changed() bool { return r.TextChanged || r.ValueChanged }
