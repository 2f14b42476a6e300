package overlay

import (
	"golang.org/x/image/font/basicfont"
)

// bitmapFont is the fixed-width face labels use when no FontProvider is
// installed or the provider returns nil. It scales basicfont.Face7x13 to
// the requested pixel size; the face's mask strip doubles as the atlas.
type bitmapFont struct {
	face  *basicfont.Face
	atlas Texture
	scale float32
	quads []GlyphQuad
}

var defaultBitmapAtlas = NewImageTexture(basicfont.Face7x13.Mask)

func newBitmapFont(size float32) *bitmapFont {
	f := basicfont.Face7x13
	scale := float32(1)
	if size > 0 {
		scale = size / float32(f.Ascent+f.Descent)
	}
	return &bitmapFont{face: f, atlas: defaultBitmapAtlas, scale: scale}
}

func (f *bitmapFont) Atlas() Texture { return f.atlas }

func (f *bitmapFont) HasGlyph(r rune) bool {
	_, ok := f.index(r)
	return ok
}

func (f *bitmapFont) LineHeight() float32 {
	return float32(f.face.Ascent+f.face.Descent) * f.scale
}

func (f *bitmapFont) MeasureText(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{
		X: float32(n*f.face.Advance) * f.scale,
		Y: f.LineHeight(),
	}
}

func (f *bitmapFont) GetGlyphQuads(text string, x, y float32) []GlyphQuad {
	f.quads = f.quads[:0]

	cellH := f.face.Ascent + f.face.Descent
	mask := f.face.Mask.Bounds()
	texW, texH := float32(mask.Dx()), float32(mask.Dy())
	adv := float32(f.face.Advance) * f.scale
	w := float32(f.face.Width) * f.scale
	h := float32(cellH) * f.scale

	for _, r := range text {
		i, ok := f.index(r)
		if !ok {
			i, _ = f.index('?')
		}
		top := float32(i * cellH)
		px := x - float32(f.face.Left)*f.scale
		f.quads = append(f.quads, GlyphQuad{
			X0: px, Y0: y, X1: px + w, Y1: y + h,
			U0: 0, V0: top / texH,
			U1: float32(f.face.Width) / texW, V1: (top + float32(cellH)) / texH,
		})
		x += adv
	}
	return f.quads
}

// index returns the glyph row of r in the mask strip.
func (f *bitmapFont) index(r rune) (int, bool) {
	for _, rng := range f.face.Ranges {
		if r >= rng.Low && r < rng.High {
			return int(r-rng.Low) + rng.Offset, true
		}
	}
	return 0, false
}
