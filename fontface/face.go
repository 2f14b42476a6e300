package fontface

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/overlay"
)

// Atlas layout: glyphs sit in a grid of equal cells.
const (
	firstRune   = 32
	lastRune    = 255
	atlasCols   = 16
	cellPadding = 1
)

type glyph struct {
	advance float32
	u0, v0  float32
	u1, v1  float32
}

// Face is an overlay.Font rasterized at a single pixel size.
type Face struct {
	glyphs     map[rune]glyph
	atlas      *overlay.ImageTexture
	cellW      float32
	cellH      float32
	lineHeight float32
}

func newFace(f *opentype.Font, size float32) (*Face, error) {
	src, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer src.Close()

	m := src.Metrics()
	ascent := m.Ascent.Ceil()
	cellH := ascent + m.Descent.Ceil() + 2*cellPadding

	maxAdv := fixed.Int26_6(0)
	for r := rune(firstRune); r <= lastRune; r++ {
		if adv, ok := src.GlyphAdvance(r); ok && adv > maxAdv {
			maxAdv = adv
		}
	}
	cellW := maxAdv.Ceil() + 2*cellPadding

	count := lastRune - firstRune + 1
	rows := (count + atlasCols - 1) / atlasCols
	atlas := image.NewAlpha(image.Rect(0, 0, atlasCols*cellW, rows*cellH))

	d := font.Drawer{Dst: atlas, Src: image.White, Face: src}
	face := &Face{
		glyphs:     make(map[rune]glyph, count),
		cellW:      float32(cellW),
		cellH:      float32(cellH),
		lineHeight: float32(m.Height.Ceil()),
	}

	aw, ah := float32(atlas.Bounds().Dx()), float32(atlas.Bounds().Dy())
	for i := 0; i < count; i++ {
		r := rune(firstRune + i)
		if r >= 0x7f && r < 0xa0 {
			continue
		}
		adv, ok := src.GlyphAdvance(r)
		if !ok {
			continue
		}
		x := (i % atlasCols) * cellW
		y := (i / atlasCols) * cellH

		d.Dot = fixed.P(x+cellPadding, y+cellPadding+ascent)
		d.DrawString(string(r))

		face.glyphs[r] = glyph{
			advance: float32(adv) / 64,
			u0:      float32(x) / aw,
			v0:      float32(y) / ah,
			u1:      float32(x+cellW) / aw,
			v1:      float32(y+cellH) / ah,
		}
	}
	face.atlas = overlay.NewImageTexture(atlas)
	return face, nil
}

// Atlas implements overlay.Font.
func (f *Face) Atlas() overlay.Texture { return f.atlas }

// HasGlyph implements overlay.Font.
func (f *Face) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// LineHeight implements overlay.Font.
func (f *Face) LineHeight() float32 { return f.lineHeight }

// MeasureText implements overlay.Font.
func (f *Face) MeasureText(text string) overlay.Vec2 {
	var w float32
	for _, r := range text {
		w += f.lookup(r).advance
	}
	return overlay.Vec2{X: float32(math.Ceil(float64(w))), Y: f.cellH - 2*cellPadding}
}

// GetGlyphQuads implements overlay.Font. Cells are drawn whole so glyphs
// that overhang their advance are not cut off.
func (f *Face) GetGlyphQuads(text string, x, y float32) []overlay.GlyphQuad {
	quads := make([]overlay.GlyphQuad, 0, len(text))
	pen := x - cellPadding
	top := y - cellPadding
	for _, r := range text {
		g := f.lookup(r)
		quads = append(quads, overlay.GlyphQuad{
			X0: pen, Y0: top,
			X1: pen + f.cellW, Y1: top + f.cellH,
			U0: g.u0, V0: g.v0,
			U1: g.u1, V1: g.v1,
		})
		pen += g.advance
	}
	return quads
}

// lookup returns the glyph for r, substituting '?' for unknown runes.
func (f *Face) lookup(r rune) glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.glyphs['?']
}
