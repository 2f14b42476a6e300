package theme

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/overlay"
)

func TestLoadFile(t *testing.T) {
	th, err := LoadFile(filepath.Join("testdata", "dark.toml"))
	require.NoError(t, err)

	normal := th.Flat[overlay.StateNormal]
	assert.Equal(t, float32(14), normal.FontSize)
	assert.Equal(t, overlay.RGB(0x20, 0x20, 0x20), normal.Bg)
	assert.Equal(t, []string{"calibri", "arial"}, normal.FontName, "unset fields keep defaults")

	hover := th.Flat[overlay.StateHover]
	assert.Equal(t, overlay.RGB(0xff, 0xcc, 0x00), hover.Border)
	assert.Equal(t, float32(3), hover.BorderWidth)

	press := th.Flat[overlay.StatePress]
	assert.Equal(t, overlay.ColorBlack, press.FontColor)

	disabled := th.Flat[overlay.StateDisabled]
	assert.Equal(t, overlay.RGBA(0x80, 0x80, 0x80, 0x80), disabled.Bg)
	assert.False(t, disabled.Border.IsSet())

	assert.Equal(t, overlay.DefaultTextureButtonStyle(), th.Texture, "omitted set keeps defaults")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing state",
			doc:  "[flat.normal]\nbg = \"#000000\"\n",
			want: "missing a state",
		},
		{
			name: "unknown state",
			doc:  "[texture.pressed]\nfont_size = 10\n",
			want: `unknown state "pressed"`,
		},
		{
			name: "unknown key",
			doc:  "[flat.normal]\nbackground = \"#000000\"\n",
			want: "unknown keys: flat.normal.background",
		},
		{
			name: "bad color",
			doc:  fullSet("bg = \"red\""),
			want: "bg: invalid color",
		},
		{
			name: "bad font size",
			doc:  fullSet("font_size = 0"),
			want: "font_size must be positive",
		},
		{
			name: "negative border",
			doc:  fullSet("border_width = -1"),
			want: "border_width must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingStateIsErrMissingState(t *testing.T) {
	_, err := Load(strings.NewReader("[texture.normal]\n[texture.hover]\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, overlay.ErrMissingState))
}

func TestLoad_ResultIsUsable(t *testing.T) {
	th, err := Load(strings.NewReader(fullSet(`font_color = "#ff0000"`)))
	require.NoError(t, err)

	b, err := overlay.NewFlatButton(overlay.WithStyle(th.Flat))
	require.NoError(t, err)
	assert.Equal(t, overlay.ColorRed, b.Style()[overlay.StateNormal].FontColor)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want overlay.Color
		ok   bool
	}{
		{"#ffffff", overlay.ColorWhite, true},
		{"#FF0000", overlay.ColorRed, true},
		{"#00ff0080", overlay.RGBA(0, 255, 0, 128), true},
		{" none ", overlay.ColorNone, true},
		{"", overlay.ColorNone, true},
		{"ffffff", 0, false},
		{"#fff", 0, false},
		{"#gggggg", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

// fullSet returns a flat set with line added to every state table.
func fullSet(line string) string {
	var sb strings.Builder
	for _, st := range overlay.States {
		sb.WriteString("[flat." + st.String() + "]\n" + line + "\n")
	}
	return sb.String()
}
