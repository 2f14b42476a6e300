package overlay

// Option configures a widget at construction time.
type Option func(*options)

// options holds widget configuration keyed by OptKey name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options. Built-in keys are declared
// below; external widget packages can declare their own.
//
// Example:
//
//	var OptGlow = overlay.NewOptKey[float32]("glow", 0)
//
//	btn, err := mywidgets.NewGlowButton(overlay.WithOpt(OptGlow, 4))
//
//	// inside the constructor
//	glow := overlay.ApplyAndGet(opts, OptGlow)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// --- Geometry Options ---
var (
	OptPosition    = NewOptKey("position", Vec2{})
	OptWidth       = NewOptKey[float32]("width", 0)
	OptHeight      = NewOptKey[float32]("height", 0)
	OptScale       = NewOptKey[float32]("scale", 0)
	OptPadding     = NewOptKey[float32]("padding", 0)
	OptSizeHint    = NewOptKey("sizeHint", SizeHint{})
	OptSizeHintMin = NewOptKey("sizeHintMin", Vec2{})
	OptSizeHintMax = NewOptKey("sizeHintMax", Vec2{})
)

// --- Content Options ---
var (
	OptText     = NewOptKey("text", "")
	OptStyle    = NewOptKey[StyleSet]("style", nil)
	OptDisabled = NewOptKey("disabled", false)
	OptOnClick  = NewOptKey[func()]("onClick", nil)
)

// --- Texture Options ---
var (
	OptTexture         = NewOptKey[Texture]("texture", nil)
	OptTextureHovered  = NewOptKey[Texture]("textureHovered", nil)
	OptTexturePressed  = NewOptKey[Texture]("texturePressed", nil)
	OptTextureDisabled = NewOptKey[Texture]("textureDisabled", nil)
)

// WithPosition places the widget's top-left corner.
func WithPosition(x, y float32) Option { return WithOpt(OptPosition, Vec2{X: x, Y: y}) }

// WithSize sets the widget's width and height.
func WithSize(w, h float32) Option {
	return func(o *options) {
		WithOpt(OptWidth, w)(o)
		WithOpt(OptHeight, h)(o)
	}
}

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithScale sizes a texture button to its texture's size times s.
// It wins over WithWidth/WithHeight when a texture is present.
func WithScale(s float32) Option { return WithOpt(OptScale, s) }

// WithPadding shrinks the content area by p on every side.
func WithPadding(p float32) Option { return WithOpt(OptPadding, p) }

// WithSizeHint requests a fraction (0-1) of the parent's size per axis.
// A zero component leaves that axis alone.
func WithSizeHint(w, h float32) Option { return WithOpt(OptSizeHint, SizeHint{W: w, H: h}) }

// WithSizeHintMin sets the minimum size in pixels.
func WithSizeHintMin(w, h float32) Option { return WithOpt(OptSizeHintMin, Vec2{X: w, Y: h}) }

// WithSizeHintMax sets the maximum size in pixels (0 = unbounded).
func WithSizeHintMax(w, h float32) Option { return WithOpt(OptSizeHintMax, Vec2{X: w, Y: h}) }

// WithText sets the button's label text.
func WithText(text string) Option { return WithOpt(OptText, text) }

// WithStyle replaces the default style set. It must cover every State.
func WithStyle(style StyleSet) Option { return WithOpt(OptStyle, style) }

// WithDisabled creates the widget disabled.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithOnClick registers the click callback.
func WithOnClick(fn func()) Option { return WithOpt(OptOnClick, fn) }

// WithTexture sets the normal texture, which also fills every unset state.
func WithTexture(tex Texture) Option { return WithOpt(OptTexture, tex) }

// WithTextureHovered sets the texture shown while hovered.
func WithTextureHovered(tex Texture) Option { return WithOpt(OptTextureHovered, tex) }

// WithTexturePressed sets the texture shown while pressed.
func WithTexturePressed(tex Texture) Option { return WithOpt(OptTexturePressed, tex) }

// WithTextureDisabled sets the texture shown while disabled.
func WithTextureDisabled(tex Texture) Option { return WithOpt(OptTextureDisabled, tex) }
