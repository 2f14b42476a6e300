package overlay

import "fmt"

// Default flat button size when none is given.
const (
	FlatButtonWidth  float32 = 100
	FlatButtonHeight float32 = 50
)

// FlatButton is a text button with a per-state background and border.
type FlatButton struct {
	widgetBase

	style StyleSet
}

// NewFlatButton creates a flat button, 100×50 unless sized explicitly.
func NewFlatButton(opts ...Option) (*FlatButton, error) {
	o := applyOptions(opts)

	style := DefaultFlatButtonStyle()
	if custom := GetOpt(o, OptStyle); custom != nil {
		if err := custom.Validate(); err != nil {
			return nil, fmt.Errorf("flat button: %w", err)
		}
		style = custom.Clone()
	}

	size := Vec2{X: FlatButtonWidth, Y: FlatButtonHeight}
	if HasOpt(o, OptWidth) {
		size.X = GetOpt(o, OptWidth)
	}
	if HasOpt(o, OptHeight) {
		size.Y = GetOpt(o, OptHeight)
	}

	b := &FlatButton{style: style}
	b.init(b, o, size)
	b.label.ApplyStyle(b.style[b.interaction.State()])
	return b, nil
}

// Style returns a copy of the button's style set.
func (b *FlatButton) Style() StyleSet { return b.style.Clone() }

// SetStyle replaces the style set. A set missing any State is rejected and
// the current one is kept.
func (b *FlatButton) SetStyle(style StyleSet) error {
	if err := style.Validate(); err != nil {
		return fmt.Errorf("flat button: %w", err)
	}
	b.style = style.Clone()
	b.triggerRender()
	return nil
}

// Render implements Widget.
func (b *FlatButton) Render(s Surface) {
	rec := b.style[b.interaction.State()]
	b.label.ApplyStyle(rec)

	content := b.contentRect()
	if rec.Bg.IsSet() {
		s.Fill(content.X, content.Y, content.W, content.H, rec.Bg)
	}

	// The button's own border, drawn inside the content area.
	if bw := rec.BorderWidth; rec.Border.IsSet() && bw > 0 {
		s.DrawRectOutline(
			content.X+bw,
			content.Y+bw,
			content.W-2*bw,
			content.H-2*bw,
			rec.Border,
			bw,
		)
	}

	b.label.draw(s, content)
}
