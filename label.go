package overlay

import "slices"

// Label is the text sub-object every button owns. Attribute writes between
// BeginUpdate and EndUpdate are batched into at most one relayout.
type Label struct {
	text     string
	fontName []string
	fontSize float32
	color    Color

	updating int
	stale    bool

	fonts    FontProvider
	font     Font
	size     Vec2
	relayout int
}

// NewLabel creates a label with the default font attributes.
func NewLabel(text string) *Label {
	l := &Label{
		text:     text,
		fontName: append([]string(nil), DefaultFontName...),
		fontSize: 12,
		color:    ColorWhite,
	}
	l.layout()
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// FontName returns the font fallback list.
func (l *Label) FontName() []string { return l.fontName }

// FontSize returns the font size in pixels.
func (l *Label) FontSize() float32 { return l.fontSize }

// Color returns the text color.
func (l *Label) Color() Color { return l.color }

// Size returns the laid-out text size.
func (l *Label) Size() Vec2 { return l.size }

// Relayouts returns how many times the label has been laid out.
func (l *Label) Relayouts() int { return l.relayout }

// BeginUpdate starts a batch of attribute writes. Calls nest.
func (l *Label) BeginUpdate() {
	l.updating++
}

// EndUpdate closes a batch and relayouts once if anything changed.
func (l *Label) EndUpdate() {
	if l.updating == 0 {
		return
	}
	l.updating--
	if l.updating == 0 && l.stale {
		l.layout()
	}
}

// SetText changes the label text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.invalidate()
}

// SetFontName changes the font fallback list.
func (l *Label) SetFontName(names []string) {
	if slices.Equal(l.fontName, names) {
		return
	}
	l.fontName = append(l.fontName[:0:0], names...)
	l.font = nil
	l.invalidate()
}

// SetFontSize changes the font size.
func (l *Label) SetFontSize(size float32) {
	if l.fontSize == size {
		return
	}
	l.fontSize = size
	l.font = nil
	l.invalidate()
}

// SetColor changes the text color. Color does not affect layout.
func (l *Label) SetColor(c Color) {
	l.color = c
}

// ApplyStyle copies the font attributes of rec in a single batch.
func (l *Label) ApplyStyle(rec StyleRecord) {
	l.BeginUpdate()
	defer l.EndUpdate()

	l.SetFontName(rec.FontName)
	l.SetFontSize(rec.FontSize)
	l.SetColor(rec.FontColor)
}

// setFontProvider swaps the provider and relayouts if it changed.
func (l *Label) setFontProvider(fp FontProvider) {
	if l.fonts == fp {
		return
	}
	l.fonts = fp
	l.font = nil
	l.invalidate()
}

func (l *Label) invalidate() {
	if l.updating > 0 {
		l.stale = true
		return
	}
	l.layout()
}

func (l *Label) layout() {
	l.stale = false
	l.relayout++

	if l.font == nil && l.fonts != nil {
		l.font = l.fonts.Face(l.fontName, l.fontSize)
	}
	if l.font == nil {
		l.font = newBitmapFont(l.fontSize)
	}
	l.size = l.font.MeasureText(l.text)
}

// draw renders the label centered in area.
func (l *Label) draw(s Surface, area Rect) {
	if l.text == "" {
		return
	}
	x := area.X + (area.W-l.size.X)/2
	y := area.Y + (area.H-l.size.Y)/2
	s.DrawText(x, y, l)
}
