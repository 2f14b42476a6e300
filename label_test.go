package overlay

import "testing"

// fixedFont measures every rune as 10×20.
type fixedFont struct{}

func (fixedFont) Atlas() Texture       { return nil }
func (fixedFont) HasGlyph(r rune) bool { return true }
func (fixedFont) LineHeight() float32  { return 20 }
func (fixedFont) MeasureText(text string) Vec2 {
	return Vec2{X: float32(len([]rune(text))) * 10, Y: 20}
}
func (fixedFont) GetGlyphQuads(text string, x, y float32) []GlyphQuad { return nil }

type fakeProvider struct {
	font  Font
	calls int
	names []string
	size  float32
}

func (p *fakeProvider) Face(names []string, size float32) Font {
	p.calls++
	p.names, p.size = names, size
	return p.font
}

func TestLabel_BatchedUpdateRelayoutsOnce(t *testing.T) {
	l := NewLabel("hello")
	before := l.Relayouts()

	l.ApplyStyle(StyleRecord{
		FontName:  []string{"impact"},
		FontSize:  30,
		FontColor: ColorRed,
	})

	if got := l.Relayouts() - before; got != 1 {
		t.Errorf("ApplyStyle relayouts = %d, want 1", got)
	}
	if l.FontSize() != 30 || l.FontName()[0] != "impact" || l.Color() != ColorRed {
		t.Error("style attributes not applied")
	}
}

func TestLabel_NestedBatch(t *testing.T) {
	l := NewLabel("x")
	before := l.Relayouts()

	l.BeginUpdate()
	l.SetText("y")
	l.BeginUpdate()
	l.SetFontSize(20)
	l.EndUpdate()
	if l.Relayouts() != before {
		t.Fatal("inner EndUpdate must not relayout")
	}
	l.EndUpdate()

	if got := l.Relayouts() - before; got != 1 {
		t.Errorf("relayouts = %d, want 1", got)
	}

	// Unbalanced EndUpdate is ignored.
	l.EndUpdate()
	if got := l.Relayouts() - before; got != 1 {
		t.Errorf("extra EndUpdate relayouted: %d", got)
	}
}

func TestLabel_NoOpWritesDoNotRelayout(t *testing.T) {
	l := NewLabel("same")
	before := l.Relayouts()

	l.SetText("same")
	l.SetFontSize(l.FontSize())
	l.SetFontName(DefaultFontName)
	l.SetColor(ColorBlue)
	l.ApplyStyle(StyleRecord{FontName: DefaultFontName, FontSize: 12, FontColor: ColorWhite})

	if l.Relayouts() != before {
		t.Errorf("unchanged attributes caused %d relayouts", l.Relayouts()-before)
	}
}

func TestLabel_BuiltinFontMetrics(t *testing.T) {
	l := NewLabel("abc")
	l.SetFontSize(26)

	// 7px advance and 13px cells at 2x.
	if got := l.Size(); got != (Vec2{X: 42, Y: 26}) {
		t.Errorf("size = %+v, want 42x26", got)
	}
}

func TestLabel_UsesFontProvider(t *testing.T) {
	fp := &fakeProvider{font: fixedFont{}}
	l := NewLabel("abcd")
	l.setFontProvider(fp)

	if fp.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", fp.calls)
	}
	if fp.size != 12 || fp.names[0] != "calibri" {
		t.Errorf("provider asked for %v at %v", fp.names, fp.size)
	}
	if got := l.Size(); got != (Vec2{X: 40, Y: 20}) {
		t.Errorf("size = %+v, want 40x20", got)
	}

	// Text changes reuse the resolved face.
	l.SetText("ab")
	if fp.calls != 1 {
		t.Errorf("text change should not re-resolve the font")
	}
	l.SetFontSize(14)
	if fp.calls != 2 {
		t.Errorf("size change should re-resolve the font")
	}
}

func TestLabel_NilFaceFallsBack(t *testing.T) {
	l := NewLabel("ab")
	l.setFontProvider(&fakeProvider{})
	l.SetFontSize(13)

	if got := l.Size(); got != (Vec2{X: 14, Y: 13}) {
		t.Errorf("size = %+v, want built-in 14x13", got)
	}
}

func TestLabel_DrawCentered(t *testing.T) {
	l := NewLabel("ab")
	l.setFontProvider(&fakeProvider{font: fixedFont{}})

	s := &recordingSurface{}
	l.draw(s, Rect{X: 0, Y: 0, W: 100, H: 50})

	op, ok := s.first(opText)
	if !ok {
		t.Fatal("expected text draw")
	}
	if op.rect.X != 40 || op.rect.Y != 15 {
		t.Errorf("text at (%v, %v), want (40, 15)", op.rect.X, op.rect.Y)
	}

	empty := NewLabel("")
	s = &recordingSurface{}
	empty.draw(s, Rect{W: 100, H: 50})
	if len(s.ops) != 0 {
		t.Error("empty label should draw nothing")
	}
}

func TestBitmapFont_GlyphQuads(t *testing.T) {
	f := newBitmapFont(13)
	quads := f.GetGlyphQuads("A世", 10, 20)
	if len(quads) != 2 {
		t.Fatalf("quads = %d, want 2", len(quads))
	}
	if quads[0].X0 != 10 || quads[1].X0 != 17 {
		t.Errorf("advance wrong: %v, %v", quads[0].X0, quads[1].X0)
	}
	if f.HasGlyph('世') {
		t.Error("built-in face has no CJK glyphs")
	}
	// Unknown runes borrow the '?' cell.
	q := newBitmapFont(13).GetGlyphQuads("?", 0, 0)[0]
	if quads[1].V0 != q.V0 {
		t.Error("unknown rune should map to '?'")
	}
}
