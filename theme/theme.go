// Package theme loads button style sets from TOML files.
//
// A theme has up to two sets, [flat.<state>] and [texture.<state>], where
// <state> is normal, hover, press or disabled:
//
//	[flat.normal]
//	font_name = ["calibri", "arial"]
//	font_size = 12
//	font_color = "#ffffff"
//	bg = "#151315"
//
//	[flat.hover]
//	bg = "#151315"
//	border = "#4d5157"
//	border_width = 2
//
// A set that is omitted entirely keeps the built-in defaults. A set that is
// present must define all four states; fields left out of a state table
// take the built-in default for that state.
package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/go-theft-auto/overlay"
)

// Theme holds the style sets for both button kinds.
type Theme struct {
	Flat    overlay.StyleSet
	Texture overlay.StyleSet
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Flat:    overlay.DefaultFlatButtonStyle(),
		Texture: overlay.DefaultTextureButtonStyle(),
	}
}

// styleFile is the TOML shape of one state table. Pointers tell an absent
// key from a zero value.
type styleFile struct {
	FontName    []string `toml:"font_name"`
	FontSize    *float32 `toml:"font_size"`
	FontColor   *string  `toml:"font_color"`
	Bg          *string  `toml:"bg"`
	Border      *string  `toml:"border"`
	BorderWidth *float32 `toml:"border_width"`
}

type themeFile struct {
	Flat    map[string]styleFile `toml:"flat"`
	Texture map[string]styleFile `toml:"texture"`
}

var log = logrus.WithField("component", "theme")

// LoadFile reads a theme from path.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	t, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithField("path", path).Debug("theme loaded")
	return t, nil
}

// Load decodes a theme. Every set it returns passes StyleSet.Validate.
func Load(r io.Reader) (*Theme, error) {
	var f themeFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode theme: unknown keys: %s", strings.Join(keys, ", "))
	}

	t := Default()
	if f.Flat != nil {
		if t.Flat, err = buildSet(f.Flat, t.Flat); err != nil {
			return nil, fmt.Errorf("flat: %w", err)
		}
	}
	if f.Texture != nil {
		if t.Texture, err = buildSet(f.Texture, t.Texture); err != nil {
			return nil, fmt.Errorf("texture: %w", err)
		}
	}
	return t, nil
}

func buildSet(tables map[string]styleFile, defaults overlay.StyleSet) (overlay.StyleSet, error) {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	set := make(overlay.StyleSet, len(tables))
	for _, name := range names {
		st, err := overlay.ParseState(name)
		if err != nil {
			return nil, err
		}
		rec, err := tables[name].apply(defaults[st])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		set[st] = rec
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func (s styleFile) apply(rec overlay.StyleRecord) (overlay.StyleRecord, error) {
	if s.FontName != nil {
		rec.FontName = append([]string(nil), s.FontName...)
	}
	if s.FontSize != nil {
		if *s.FontSize <= 0 {
			return rec, fmt.Errorf("font_size must be positive, got %v", *s.FontSize)
		}
		rec.FontSize = *s.FontSize
	}
	if s.BorderWidth != nil {
		if *s.BorderWidth < 0 {
			return rec, fmt.Errorf("border_width must not be negative, got %v", *s.BorderWidth)
		}
		rec.BorderWidth = *s.BorderWidth
	}

	for _, c := range []struct {
		key string
		src *string
		dst *overlay.Color
	}{
		{"font_color", s.FontColor, &rec.FontColor},
		{"bg", s.Bg, &rec.Bg},
		{"border", s.Border, &rec.Border},
	} {
		if c.src == nil {
			continue
		}
		col, err := ParseColor(*c.src)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = col
	}
	return rec, nil
}
