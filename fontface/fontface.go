// Package fontface implements overlay.FontProvider on top of OpenType fonts.
//
// Fonts are registered by name; a style's font name list is resolved to the
// first registered name and falls back to Go Regular otherwise. Each
// (font, size) pair is rasterized once into an alpha glyph atlas covering
// printable ASCII and Latin-1.
package fontface

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/go-theft-auto/overlay"
)

// FallbackName is the name under which the built-in Go Regular font is
// registered.
const FallbackName = "goregular"

type faceKey struct {
	name string
	size float32
}

// Provider resolves font names to rasterized faces.
type Provider struct {
	fonts  map[string]*opentype.Font
	faces  map[faceKey]*Face
	warned map[string]bool
	log    *logrus.Entry
}

// NewProvider creates a provider with Go Regular registered as the fallback.
func NewProvider() (*Provider, error) {
	p := &Provider{
		fonts:  make(map[string]*opentype.Font),
		faces:  make(map[faceKey]*Face),
		warned: make(map[string]bool),
		log:    logrus.WithField("component", "fontface"),
	}
	if err := p.Register(FallbackName, goregular.TTF); err != nil {
		return nil, err
	}
	return p, nil
}

// Register parses an OpenType/TrueType font and makes it available under
// name. Names are case-insensitive.
func (p *Provider) Register(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	key := strings.ToLower(name)
	p.fonts[key] = f
	for k := range p.faces {
		if k.name == key {
			delete(p.faces, k)
		}
	}
	return nil
}

// Has reports whether a font is registered under name.
func (p *Provider) Has(name string) bool {
	_, ok := p.fonts[strings.ToLower(name)]
	return ok
}

// Face implements overlay.FontProvider.
func (p *Provider) Face(names []string, size float32) overlay.Font {
	face, err := p.face(names, size)
	if err != nil {
		p.log.WithError(err).WithField("size", size).Warn("font face unavailable")
		return nil
	}
	return face
}

func (p *Provider) face(names []string, size float32) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}

	name := p.resolve(names)
	key := faceKey{name: name, size: size}
	if f, ok := p.faces[key]; ok {
		return f, nil
	}

	f, err := newFace(p.fonts[name], size)
	if err != nil {
		return nil, fmt.Errorf("font %q at %vpx: %w", name, size, err)
	}
	p.faces[key] = f
	return f, nil
}

// resolve returns the first registered name, or the fallback.
func (p *Provider) resolve(names []string) string {
	for _, n := range names {
		if key := strings.ToLower(n); p.fonts[key] != nil {
			return key
		}
	}

	list := strings.Join(names, ",")
	if len(names) > 0 && !p.warned[list] {
		p.warned[list] = true
		p.log.WithField("fonts", list).Debug("no registered font, using fallback")
	}
	return FallbackName
}
