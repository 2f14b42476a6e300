package overlay

// Surface is what a widget draws on. Coordinates are local to the widget:
// (0, 0) is its top-left corner and Size() its extent.
type Surface interface {
	// Size returns the drawable area of the widget.
	Size() Vec2

	// DrawTexture draws tex stretched to fill the given rectangle.
	DrawTexture(x, y, w, h float32, tex Texture)

	// DrawRectOutline draws an outline whose stroke lies inside the rectangle.
	DrawRectOutline(x, y, w, h float32, color Color, thickness float32)

	// Clear fills the whole area with color.
	Clear(color Color)

	// Fill fills a rectangle with color.
	Fill(x, y, w, h float32, color Color)

	// DrawText draws a laid-out label with its top-left corner at (x, y).
	DrawText(x, y float32, l *Label)
}

// drawListSurface is the Surface the overlay hands to widgets: it offsets
// local coordinates to the widget's screen position and clips to its bounds.
type drawListSurface struct {
	dl       *DrawList
	origin   Vec2
	size     Vec2
	textures *textureCache
	onError  func(error)
}

func (s *drawListSurface) Size() Vec2 { return s.size }

func (s *drawListSurface) begin() {
	s.dl.PushClipRect(s.origin.X, s.origin.Y, s.origin.X+s.size.X, s.origin.Y+s.size.Y)
}

func (s *drawListSurface) end() {
	s.dl.PopClipRect()
}

func (s *drawListSurface) DrawTexture(x, y, w, h float32, tex Texture) {
	if tex == nil {
		return
	}
	id, err := s.textures.resolve(tex)
	if err != nil {
		s.onError(err)
		return
	}

	x += s.origin.X
	y += s.origin.Y

	np, ok := tex.(*NinePatchTexture)
	if !ok {
		s.dl.AddImage(id, x, y, w, h, 0, 0, 1, 1, ColorWhite)
		return
	}
	for _, p := range np.patches(w, h) {
		dst, uv := p[0], p[1]
		s.dl.AddImage(id, x+dst.X, y+dst.Y, dst.W, dst.H, uv.X, uv.Y, uv.X+uv.W, uv.Y+uv.H, ColorWhite)
	}
}

func (s *drawListSurface) DrawRectOutline(x, y, w, h float32, color Color, thickness float32) {
	s.dl.AddRectOutline(s.origin.X+x, s.origin.Y+y, w, h, color, thickness)
}

func (s *drawListSurface) Clear(color Color) {
	s.Fill(0, 0, s.size.X, s.size.Y, color)
}

func (s *drawListSurface) Fill(x, y, w, h float32, color Color) {
	s.dl.AddRect(s.origin.X+x, s.origin.Y+y, w, h, color)
}

func (s *drawListSurface) DrawText(x, y float32, l *Label) {
	if l.font == nil {
		return
	}
	x += s.origin.X
	y += s.origin.Y

	id, err := s.textures.resolve(l.font.Atlas())
	if err != nil {
		s.onError(err)
		return
	}
	s.dl.AddGlyphQuads(id, l.font.GetGlyphQuads(l.text, x, y), l.color)
}
