package overlay

// Widget is a retained element of the overlay.
//
// Buttons compose their behaviour from owned parts: an Interaction for
// input flags, a StyleSet for per-state looks and a Label for text. The
// overlay only talks to them through this interface.
type Widget interface {
	// Bounds returns the widget's screen rectangle.
	Bounds() Rect
	// Render draws the widget on s in local coordinates.
	Render(s Surface)
	// Interaction returns the widget's input flags.
	Interaction() *Interaction
	// Label returns the widget's text label.
	Label() *Label
	// SetObserver installs the receiver of re-render requests.
	SetObserver(o Observer)
	// Dirty reports whether the widget needs redrawing.
	Dirty() bool
	// ClearDirty is called by the renderer after the widget was drawn.
	ClearDirty()
	// Click invokes the widget's click callback, if any.
	Click()
}

// Observer receives a widget's re-render requests.
type Observer interface {
	OnChange(w Widget)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(w Widget)

// OnChange implements Observer.
func (f ObserverFunc) OnChange(w Widget) { f(w) }

// SizeHint is the fraction of the parent's size a widget asks for.
type SizeHint struct {
	W, H float32
}

// widgetBase carries the state shared by every button. Embedding types must
// call init with themselves so observers receive the outer widget.
type widgetBase struct {
	self Widget

	rect        Rect
	padding     float32
	sizeHint    SizeHint
	sizeHintMin Vec2
	sizeHintMax Vec2

	interaction Interaction
	label       *Label
	onClick     func()

	observer Observer
	dirty    bool
}

func (b *widgetBase) init(self Widget, o options, defaultSize Vec2) {
	b.self = self

	pos := GetOpt(o, OptPosition)
	b.rect = Rect{X: pos.X, Y: pos.Y, W: defaultSize.X, H: defaultSize.Y}
	b.padding = GetOpt(o, OptPadding)
	b.sizeHint = GetOpt(o, OptSizeHint)
	b.sizeHintMin = GetOpt(o, OptSizeHintMin)
	b.sizeHintMax = GetOpt(o, OptSizeHintMax)
	b.onClick = GetOpt(o, OptOnClick)

	b.label = NewLabel(GetOpt(o, OptText))
	b.interaction.disabled = GetOpt(o, OptDisabled)
	b.interaction.onChange = b.triggerRender
	b.dirty = true
}

// Bounds implements Widget.
func (b *widgetBase) Bounds() Rect { return b.rect }

// Width returns the widget width.
func (b *widgetBase) Width() float32 { return b.rect.W }

// Height returns the widget height.
func (b *widgetBase) Height() float32 { return b.rect.H }

// Interaction implements Widget.
func (b *widgetBase) Interaction() *Interaction { return &b.interaction }

// Label implements Widget.
func (b *widgetBase) Label() *Label { return b.label }

// SetObserver implements Widget.
func (b *widgetBase) SetObserver(o Observer) { b.observer = o }

// Dirty implements Widget.
func (b *widgetBase) Dirty() bool { return b.dirty }

// ClearDirty implements Widget.
func (b *widgetBase) ClearDirty() { b.dirty = false }

// Click implements Widget.
func (b *widgetBase) Click() {
	if b.onClick != nil && !b.interaction.disabled {
		b.onClick()
	}
}

// SetOnClick replaces the click callback.
func (b *widgetBase) SetOnClick(fn func()) { b.onClick = fn }

// SetPosition moves the widget.
func (b *widgetBase) SetPosition(x, y float32) {
	if b.rect.X == x && b.rect.Y == y {
		return
	}
	b.rect.X, b.rect.Y = x, y
	b.triggerRender()
}

// SetSize resizes the widget.
func (b *widgetBase) SetSize(w, h float32) {
	if b.rect.W == w && b.rect.H == h {
		return
	}
	b.rect.W, b.rect.H = w, h
	b.triggerRender()
}

// SetText changes the label text.
func (b *widgetBase) SetText(text string) {
	if b.label.Text() == text {
		return
	}
	b.label.SetText(text)
	b.triggerRender()
}

// SetDisabled enables or disables the widget.
func (b *widgetBase) SetDisabled(disabled bool) {
	b.interaction.SetDisabled(disabled)
}

// SizeHints returns the size hint and its pixel bounds.
func (b *widgetBase) SizeHints() (hint SizeHint, minSize, maxSize Vec2) {
	return b.sizeHint, b.sizeHintMin, b.sizeHintMax
}

// ApplySizeHint resizes the widget from its size hint relative to parent,
// clamped to the min/max bounds. Axes without a hint keep their size but
// are still clamped.
func (b *widgetBase) ApplySizeHint(parent Vec2) {
	w, h := b.rect.W, b.rect.H
	if b.sizeHint.W > 0 {
		w = parent.X * b.sizeHint.W
	}
	if b.sizeHint.H > 0 {
		h = parent.Y * b.sizeHint.H
	}
	w = clampHint(w, b.sizeHintMin.X, b.sizeHintMax.X)
	h = clampHint(h, b.sizeHintMin.Y, b.sizeHintMax.Y)
	b.SetSize(w, h)
}

func clampHint(v, lo, hi float32) float32 {
	if hi > 0 {
		v = minf(v, hi)
	}
	return maxf(v, lo)
}

// contentRect returns the local content area (bounds minus padding).
func (b *widgetBase) contentRect() Rect {
	return Rect{W: b.rect.W, H: b.rect.H}.Inset(b.padding)
}

// triggerRender marks the widget dirty and notifies the observer once.
func (b *widgetBase) triggerRender() {
	b.dirty = true
	if b.observer != nil {
		b.observer.OnChange(b.self)
	}
}
