package overlay

// FontProvider resolves style font attributes to a concrete Font.
// The overlay package does not depend on any font implementation; the
// application injects one (see package fontface) with WithFontProvider.
//
// Example usage:
//
//	fonts, err := fontface.NewProvider()
//	if err != nil {
//	    return err
//	}
//	ui := overlay.New(renderer, overlay.WithFontProvider(fonts))
type FontProvider interface {
	// Face returns a font for the first known name in names at the given
	// pixel size. A nil result makes the label use the built-in 7x13 face.
	Face(names []string, size float32) Font
}

// Font is a single face at a fixed size that can lay out and draw text.
//
// Implementations should pre-generate a glyph atlas rather than rasterize at
// render time; the overlay uploads Atlas() once through its texture cache.
type Font interface {
	// Atlas returns the glyph atlas texture. Alpha-only images are tinted by
	// the label color.
	Atlas() Texture

	// HasGlyph returns true if the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// MeasureText returns the pixel dimensions of the given text.
	MeasureText(text string) Vec2

	// GetGlyphQuads generates quads for drawing text with its top-left
	// corner at (x, y). The returned slice should be used immediately.
	GetGlyphQuads(text string, x, y float32) []GlyphQuad

	// LineHeight returns the distance between baselines.
	LineHeight() float32
}
