package overlay

import "fmt"

// TextureButton is a button whose face is an image, one per State.
type TextureButton struct {
	widgetBase

	style    StyleSet
	textures map[State]Texture
}

// NewTextureButton creates a texture button.
//
// Without WithWidth/WithHeight the size comes from the normal texture; with
// WithScale and a texture the size is the texture size times the scale.
// A normal texture fills every state that has no texture of its own.
func NewTextureButton(opts ...Option) (*TextureButton, error) {
	o := applyOptions(opts)

	style := DefaultTextureButtonStyle()
	if custom := GetOpt(o, OptStyle); custom != nil {
		if err := custom.Validate(); err != nil {
			return nil, fmt.Errorf("texture button: %w", err)
		}
		style = custom.Clone()
	}

	tex := GetOpt(o, OptTexture)
	size := Vec2{X: GetOpt(o, OptWidth), Y: GetOpt(o, OptHeight)}
	if tex != nil {
		native := tex.Size()
		if !HasOpt(o, OptWidth) {
			size.X = native.X
		}
		if !HasOpt(o, OptHeight) {
			size.Y = native.Y
		}
		if HasOpt(o, OptScale) {
			size = native.Mul(GetOpt(o, OptScale))
		}
	}

	b := &TextureButton{
		style:    style,
		textures: make(map[State]Texture, len(States)),
	}
	b.init(b, o, size)

	if tex != nil {
		for _, st := range States {
			b.textures[st] = tex
		}
	}
	for st, key := range map[State]OptKey[Texture]{
		StateHover:    OptTextureHovered,
		StatePress:    OptTexturePressed,
		StateDisabled: OptTextureDisabled,
	} {
		if t := GetOpt(o, key); t != nil {
			b.textures[st] = t
		}
	}

	b.label.ApplyStyle(b.style[b.interaction.State()])
	return b, nil
}

// Style returns a copy of the button's style set.
func (b *TextureButton) Style() StyleSet { return b.style.Clone() }

// SetStyle replaces the style set. A set missing any State is rejected and
// the current one is kept.
func (b *TextureButton) SetStyle(style StyleSet) error {
	if err := style.Validate(); err != nil {
		return fmt.Errorf("texture button: %w", err)
	}
	b.style = style.Clone()
	b.triggerRender()
	return nil
}

// Texture returns the normal texture.
func (b *TextureButton) Texture() Texture { return b.textures[StateNormal] }

// TextureHovered returns the hover texture.
func (b *TextureButton) TextureHovered() Texture { return b.textures[StateHover] }

// TexturePressed returns the press texture.
func (b *TextureButton) TexturePressed() Texture { return b.textures[StatePress] }

// TextureDisabled returns the disabled texture.
func (b *TextureButton) TextureDisabled() Texture { return b.textures[StateDisabled] }

// TextureFor returns the texture drawn in state st, or nil.
func (b *TextureButton) TextureFor(st State) Texture { return b.textures[st] }

// SetTexture replaces the normal texture only.
func (b *TextureButton) SetTexture(tex Texture) { b.setTexture(StateNormal, tex) }

// SetTextureHovered replaces the hover texture.
func (b *TextureButton) SetTextureHovered(tex Texture) { b.setTexture(StateHover, tex) }

// SetTexturePressed replaces the press texture.
func (b *TextureButton) SetTexturePressed(tex Texture) { b.setTexture(StatePress, tex) }

// SetTextureDisabled replaces the disabled texture.
func (b *TextureButton) SetTextureDisabled(tex Texture) { b.setTexture(StateDisabled, tex) }

func (b *TextureButton) setTexture(st State, tex Texture) {
	if tex == nil {
		delete(b.textures, st)
	} else {
		b.textures[st] = tex
	}
	b.triggerRender()
}

// Render implements Widget.
func (b *TextureButton) Render(s Surface) {
	st := b.interaction.State()
	b.label.ApplyStyle(b.style[st])

	if tex := b.textures[st]; tex != nil {
		s.DrawTexture(0, 0, b.rect.W, b.rect.H, tex)
	}

	b.label.draw(s, b.contentRect())
}
