package overlay

import (
	"image"
	"math"
)

type opKind int

const (
	opTexture opKind = iota
	opOutline
	opClear
	opFill
	opText
)

type drawOp struct {
	kind  opKind
	rect  Rect
	color Color
	width float32
	tex   Texture
	text  string
}

// recordingSurface remembers every draw call in order.
type recordingSurface struct {
	size Vec2
	ops  []drawOp
}

func (s *recordingSurface) Size() Vec2 { return s.size }

func (s *recordingSurface) DrawTexture(x, y, w, h float32, tex Texture) {
	s.ops = append(s.ops, drawOp{kind: opTexture, rect: Rect{x, y, w, h}, tex: tex})
}

func (s *recordingSurface) DrawRectOutline(x, y, w, h float32, color Color, thickness float32) {
	s.ops = append(s.ops, drawOp{kind: opOutline, rect: Rect{x, y, w, h}, color: color, width: thickness})
}

func (s *recordingSurface) Clear(color Color) {
	s.ops = append(s.ops, drawOp{kind: opClear, rect: Rect{W: s.size.X, H: s.size.Y}, color: color})
}

func (s *recordingSurface) Fill(x, y, w, h float32, color Color) {
	s.ops = append(s.ops, drawOp{kind: opFill, rect: Rect{x, y, w, h}, color: color})
}

func (s *recordingSurface) DrawText(x, y float32, l *Label) {
	s.ops = append(s.ops, drawOp{kind: opText, rect: Rect{X: x, Y: y, W: l.Size().X, H: l.Size().Y}, color: l.Color(), text: l.Text()})
}

func (s *recordingSurface) count(kind opKind) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) first(kind opKind) (drawOp, bool) {
	for _, op := range s.ops {
		if op.kind == kind {
			return op, true
		}
	}
	return drawOp{}, false
}

// renderTo renders w on a fresh recording surface the size of w.
func renderTo(w Widget) *recordingSurface {
	r := w.Bounds()
	s := &recordingSurface{size: Vec2{X: r.W, Y: r.H}}
	w.Render(s)
	return s
}

// countingObserver counts change notifications.
type countingObserver struct {
	calls int
	last  Widget
}

func (o *countingObserver) OnChange(w Widget) {
	o.calls++
	o.last = w
}

func solidTexture(w, h int) *ImageTexture {
	return NewImageTexture(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}
