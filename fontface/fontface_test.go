package fontface

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/go-theft-auto/overlay"
)

func TestProvider_FallsBackToGoRegular(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	assert.True(t, p.Has(FallbackName))
	assert.False(t, p.Has("calibri"))

	f := p.Face(overlay.DefaultFontName, 12)
	require.NotNil(t, f)

	// Same resolved font and size share one face.
	assert.Same(t, f, p.Face([]string{"goregular"}, 12))
	assert.NotSame(t, f, p.Face(nil, 16))
}

func TestProvider_Register(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	require.NoError(t, p.Register("Arial", gomono.TTF))
	assert.True(t, p.Has("arial"))

	mono := p.Face([]string{"calibri", "ARIAL"}, 12)
	regular := p.Face([]string{"goregular"}, 12)
	require.NotNil(t, mono)
	require.NotNil(t, regular)

	// Go Mono has equal advances; Go Regular does not.
	assert.Equal(t, mono.MeasureText("iiii").X, mono.MeasureText("WWWW").X)
	assert.Less(t, regular.MeasureText("iiii").X, regular.MeasureText("WWWW").X)

	assert.Error(t, p.Register("broken", []byte("not a font")))
}

func TestProvider_InvalidSize(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	assert.Nil(t, p.Face(nil, 0))
}

func TestFace_Layout(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)
	f := p.Face(nil, 16)
	require.NotNil(t, f)

	assert.True(t, f.HasGlyph('A'))
	assert.True(t, f.HasGlyph('é'))
	assert.False(t, f.HasGlyph('世'))
	assert.Greater(t, f.LineHeight(), float32(0))

	size := f.MeasureText("Hello")
	assert.Greater(t, size.X, float32(0))
	assert.Greater(t, size.Y, float32(0))
	assert.Equal(t, float32(0), f.MeasureText("").X)

	quads := f.GetGlyphQuads("Hi世", 10, 20)
	require.Len(t, quads, 3)
	assert.Less(t, quads[0].X0, quads[1].X0, "pen advances")
	assert.NotEqual(t,
		[2]float32{quads[0].U0, quads[0].V0},
		[2]float32{quads[2].U0, quads[2].V0},
		"unknown rune uses the '?' cell")

	_, ok := f.Atlas().Image().(*image.Alpha)
	assert.True(t, ok, "atlas should be an alpha mask")
}
