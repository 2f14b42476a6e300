package overlay

import (
	"image"

	"github.com/sirupsen/logrus"
)

// Renderer is the interface for flushing draw data to the GPU.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
	// UploadTexture creates a GPU texture from img and returns its id.
	// *image.Alpha images are uploaded as tint masks, anything else as RGBA.
	UploadTexture(img image.Image) (uint32, error)
}

// Overlay owns a set of retained widgets, feeds them input and redraws them
// when one of them asks for it.
type Overlay struct {
	renderer Renderer
	fonts    FontProvider
	log      *logrus.Entry

	widgets  []Widget
	textures *textureCache
	dl       *DrawList
	size     Vec2
	dirty    bool
	rebuilds int
}

// OverlayOption configures an Overlay instance.
type OverlayOption func(*Overlay)

// WithFontProvider sets the provider used to lay out widget labels.
func WithFontProvider(fp FontProvider) OverlayOption {
	return func(o *Overlay) { o.fonts = fp }
}

// WithLogger sets the log entry used by the overlay.
func WithLogger(log *logrus.Entry) OverlayOption {
	return func(o *Overlay) { o.log = log }
}

// New creates an overlay drawing through renderer.
func New(renderer Renderer, opts ...OverlayOption) *Overlay {
	o := &Overlay{
		renderer: renderer,
		log:      logrus.WithField("component", "overlay"),
		dirty:    true,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.textures = newTextureCache(renderer.UploadTexture)
	return o
}

// Add attaches widgets to the overlay. Later widgets draw on top.
func (o *Overlay) Add(widgets ...Widget) {
	for _, w := range widgets {
		w.SetObserver(o)
		w.Label().setFontProvider(o.fonts)
		o.widgets = append(o.widgets, w)
	}
	o.dirty = true
}

// Remove detaches a widget. It reports whether the widget was attached.
func (o *Overlay) Remove(w Widget) bool {
	for i, cur := range o.widgets {
		if cur == w {
			o.widgets = append(o.widgets[:i], o.widgets[i+1:]...)
			w.SetObserver(nil)
			o.dirty = true
			return true
		}
	}
	return false
}

// Widgets returns the attached widgets in draw order.
func (o *Overlay) Widgets() []Widget {
	return o.widgets
}

// OnChange implements Observer; any widget change schedules a rebuild.
func (o *Overlay) OnChange(w Widget) {
	o.dirty = true
}

// Dirty reports whether the next Draw rebuilds the draw list.
func (o *Overlay) Dirty() bool {
	return o.dirty
}

// Rebuilds returns how many times the draw list has been rebuilt.
func (o *Overlay) Rebuilds() int {
	return o.rebuilds
}

// HandleInput updates every widget's interaction flags from input and fires
// click callbacks. A click is a left-button press and release that both
// land on the same enabled widget.
func (o *Overlay) HandleInput(input *InputState) {
	mouse := Vec2{X: input.MouseX, Y: input.MouseY}

	// Topmost widget wins the cursor.
	var top Widget
	for i := len(o.widgets) - 1; i >= 0; i-- {
		if o.widgets[i].Bounds().Contains(mouse) {
			top = o.widgets[i]
			break
		}
	}

	for _, w := range o.widgets {
		in := w.Interaction()
		hovered := w == top
		in.SetHovered(hovered)

		if in.Disabled() {
			in.SetPressed(false)
			continue
		}

		if hovered && input.MouseClicked(MouseButtonLeft) {
			in.SetPressed(true)
		}
		if input.MouseReleased(MouseButtonLeft) {
			wasPressed := in.Pressed()
			in.SetPressed(false)
			if wasPressed && hovered {
				o.log.WithField("text", w.Label().Text()).Debug("button clicked")
				w.Click()
			}
		}
	}
}

// Resize updates the display size and re-applies widget size hints.
func (o *Overlay) Resize(width, height int) {
	o.size = Vec2{X: float32(width), Y: float32(height)}
	o.renderer.Resize(width, height)
	for _, w := range o.widgets {
		if h, ok := w.(interface{ ApplySizeHint(Vec2) }); ok {
			h.ApplySizeHint(o.size)
		}
	}
	o.dirty = true
}

// Draw renders the overlay. The draw list is rebuilt only when a widget
// changed since the last call; otherwise the cached one is flushed again.
func (o *Overlay) Draw() error {
	if o.dirty || o.dl == nil {
		o.rebuild()
	}
	return o.renderer.Render(o.dl)
}

func (o *Overlay) rebuild() {
	if o.dl == nil {
		o.dl = AcquireDrawList()
	} else {
		o.dl.Clear()
	}

	surface := &drawListSurface{
		dl:       o.dl,
		textures: o.textures,
		onError: func(err error) {
			o.log.WithError(err).Warn("skipping texture")
		},
	}
	for _, w := range o.widgets {
		r := w.Bounds()
		surface.origin = Vec2{X: r.X, Y: r.Y}
		surface.size = Vec2{X: r.W, Y: r.H}

		surface.begin()
		w.Render(surface)
		surface.end()
		w.ClearDirty()
	}

	o.dirty = false
	o.rebuilds++
}

// Close returns the cached draw list to the pool.
func (o *Overlay) Close() {
	ReleaseDrawList(o.dl)
	o.dl = nil
}
