package overlay

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingState is returned when a style set does not cover every State.
var ErrMissingState = errors.New("style set is missing a state")

// DefaultFontName is the font fallback list used by the default style sets.
var DefaultFontName = []string{"calibri", "arial"}

// StyleRecord is the set of visual attributes applied while one state is
// active. Records are values; a widget never shares one with its caller.
type StyleRecord struct {
	FontName  []string // Tried in order; first one the FontProvider knows wins
	FontSize  float32
	FontColor Color

	Bg          Color // ColorNone = no background fill
	Border      Color // ColorNone = no border
	BorderWidth float32
}

// clone returns a copy whose FontName does not alias r's.
func (r StyleRecord) clone() StyleRecord {
	r.FontName = append([]string(nil), r.FontName...)
	return r
}

// StyleSet maps each State to the StyleRecord used while it is current.
type StyleSet map[State]StyleRecord

// Validate checks that every State has a record.
func (s StyleSet) Validate() error {
	var missing []string
	for _, st := range States {
		if _, ok := s[st]; !ok {
			missing = append(missing, st.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingState, strings.Join(missing, ", "))
	}
	return nil
}

// Clone returns a deep copy of the set.
func (s StyleSet) Clone() StyleSet {
	out := make(StyleSet, len(s))
	for st, rec := range s {
		out[st] = rec.clone()
	}
	return out
}

// DefaultTextureButtonStyle returns the stock style set for TextureButton.
func DefaultTextureButtonStyle() StyleSet {
	base := StyleRecord{
		FontName:    DefaultFontName,
		FontSize:    12,
		FontColor:   ColorWhite,
		BorderWidth: 2,
	}

	press := base
	press.FontColor = ColorBlack

	return StyleSet{
		StateNormal:   base.clone(),
		StateHover:    base.clone(),
		StatePress:    press.clone(),
		StateDisabled: base.clone(),
	}
}

// DefaultFlatButtonStyle returns the stock style set for FlatButton.
func DefaultFlatButtonStyle() StyleSet {
	return StyleSet{
		StateNormal: {
			FontName:  append([]string(nil), DefaultFontName...),
			FontSize:  12,
			FontColor: ColorWhite,
			Bg:        RGB(21, 19, 21),
		},
		StateHover: {
			FontName:    append([]string(nil), DefaultFontName...),
			FontSize:    12,
			FontColor:   ColorWhite,
			Bg:          RGB(21, 19, 21),
			Border:      RGB(77, 81, 87),
			BorderWidth: 2,
		},
		StatePress: {
			FontName:    append([]string(nil), DefaultFontName...),
			FontSize:    12,
			FontColor:   ColorBlack,
			Bg:          ColorWhite,
			Border:      ColorWhite,
			BorderWidth: 2,
		},
		StateDisabled: {
			FontName:    append([]string(nil), DefaultFontName...),
			FontSize:    12,
			FontColor:   ColorWhite,
			Bg:          ColorGray,
			BorderWidth: 2,
		},
	}
}
