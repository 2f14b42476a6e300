package overlay

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Inset shrinks the rectangle by the given amount on every side.
// The result never has a negative size.
func (r Rect) Inset(d float32) Rect {
	return Rect{
		X: r.X + d,
		Y: r.Y + d,
		W: maxf(r.W-2*d, 0),
		H: maxf(r.H-2*d, 0),
	}
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color is an RGBA color packed as 0xAABBGGRR for OpenGL compatibility.
// The zero value, ColorNone, means "not set" and is never drawn.
type Color uint32

// Color constants
const (
	ColorNone  Color = 0x00000000
	ColorWhite Color = 0xFFFFFFFF
	ColorBlack Color = 0xFF000000
	ColorRed   Color = 0xFF0000FF
	ColorGreen Color = 0xFF00FF00
	ColorBlue  Color = 0xFFFF0000
	ColorGray  Color = 0xFF808080
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGB creates an opaque packed color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// RGBA extracts RGBA components from a packed color.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// IsSet reports whether the color is anything other than ColorNone.
func (c Color) IsSet() bool {
	return c != ColorNone
}

// visible reports whether drawing with c would produce any pixels.
func (c Color) visible() bool {
	return uint32(c)&0xFF000000 != 0
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
