package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-theft-auto/overlay"
)

// ParseColor parses "#rrggbb" or "#rrggbbaa". The empty string and "none"
// yield overlay.ColorNone.
func ParseColor(s string) (overlay.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return overlay.ColorNone, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return overlay.ColorNone, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return overlay.ColorNone, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return overlay.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
