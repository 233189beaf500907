package gui

// Option configures one widget call.
type Option func(*options)

type options struct {
	values map[string]any
}

// OptKey is a typed widget option with a default. Widgets outside this
// package define their own keys the same way:
//
//	var OptRowTint = gui.NewOptKey("rowTint", gui.ColorTransparent)
//	ctx.Selectable(name, false, gui.WithOpt(OptRowTint, gui.ColorRed))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey declares an option named name whose unset value is def.
func NewOptKey[T any](name string, def T) OptKey[T] {
	return OptKey[T]{name: name, def: def}
}

func (k OptKey[T]) Name() string { return k.name }

func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any, 4)
		}
		o.values[key.name] = value
	}
}

// GetOpt returns the value of key, or its default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.values[key.name].(T); ok {
		return v
	}
	return key.def
}

// HasOpt reports whether key was set explicitly.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet is GetOpt over a raw option list, for widgets in other packages.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ScrollbarVisibility controls when a ScrollArea draws its scrollbar.
type ScrollbarVisibility int

const (
	ScrollbarAuto ScrollbarVisibility = iota
	ScrollbarAlways
	ScrollbarNever
)

var (
	OptID        = NewOptKey("id", "")
	OptDisabled  = NewOptKey("disabled", false)
	OptWidth     = NewOptKey[float32]("width", 0)
	OptHeight    = NewOptKey[float32]("height", 0)
	OptTextColor = NewOptKey[uint32]("textColor", 0)
	OptHint      = NewOptKey("hint", "")

	// OptMaxHeight caps a ScrollArea or popup; content beyond it scrolls.
	OptMaxHeight = NewOptKey[float32]("maxHeight", 0)

	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
)

// WithID names the widget independently of its label.
func WithID(id string) Option { return WithOpt(OptID, id) }

func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

func WithWidth(w float32) Option { return WithOpt(OptWidth, w) }

func WithHeight(h float32) Option { return WithOpt(OptHeight, h) }

// WithHint sets the placeholder shown by an empty text field.
func WithHint(hint string) Option { return WithOpt(OptHint, hint) }

func WithMaxHeight(h float32) Option { return WithOpt(OptMaxHeight, h) }

func WithTextColor(c uint32) Option { return WithOpt(OptTextColor, c) }
