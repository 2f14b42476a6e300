package overlay

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Texture is an image resource a widget can draw. Textures are compared by
// identity, so the same value placed in several state slots is one texture.
type Texture interface {
	// Size returns the texture's pixel size.
	Size() Vec2
	// Image returns the pixels to upload.
	Image() image.Image
}

// ImageTexture is a texture backed by a decoded image.
type ImageTexture struct {
	img image.Image
}

// NewImageTexture wraps img as a texture.
func NewImageTexture(img image.Image) *ImageTexture {
	return &ImageTexture{img: img}
}

// LoadTexture decodes a PNG, JPEG, BMP or WebP image.
func LoadTexture(r io.Reader) (*ImageTexture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode texture: empty %s image", format)
	}
	return NewImageTexture(img), nil
}

// Size implements Texture.
func (t *ImageTexture) Size() Vec2 {
	b := t.img.Bounds()
	return Vec2{X: float32(b.Dx()), Y: float32(b.Dy())}
}

// Image implements Texture.
func (t *ImageTexture) Image() image.Image {
	return t.img
}

// NinePatchTexture stretches a texture while keeping its corners at their
// native size. Left/Right/Top/Bottom are the fixed border sizes in pixels.
type NinePatchTexture struct {
	Texture
	Left, Right, Top, Bottom float32
}

// NewNinePatch wraps tex with the given fixed borders.
func NewNinePatch(tex Texture, left, right, top, bottom float32) *NinePatchTexture {
	return &NinePatchTexture{Texture: tex, Left: left, Right: right, Top: top, Bottom: bottom}
}

// patches returns the nine (destination, uv) pairs for drawing the texture
// over a w×h area. Borders shrink proportionally when the area is smaller
// than the corners.
func (n *NinePatchTexture) patches(w, h float32) [9][2]Rect {
	size := n.Size()
	left, right := fitBorders(n.Left, n.Right, w)
	top, bottom := fitBorders(n.Top, n.Bottom, h)

	dx := [4]float32{0, left, w - right, w}
	dy := [4]float32{0, top, h - bottom, h}
	ux := [4]float32{0, n.Left / size.X, 1 - n.Right/size.X, 1}
	uy := [4]float32{0, n.Top / size.Y, 1 - n.Bottom/size.Y, 1}

	var out [9][2]Rect
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = [2]Rect{
				{X: dx[col], Y: dy[row], W: dx[col+1] - dx[col], H: dy[row+1] - dy[row]},
				{X: ux[col], Y: uy[row], W: ux[col+1] - ux[col], H: uy[row+1] - uy[row]},
			}
		}
	}
	return out
}

func fitBorders(a, b, total float32) (float32, float32) {
	if a+b <= total || a+b == 0 {
		return a, b
	}
	k := total / (a + b)
	return a * k, b * k
}

// baseImage unwraps nine-patches so every patch of a texture shares one
// GPU upload.
func baseImage(tex Texture) image.Image {
	if np, ok := tex.(*NinePatchTexture); ok {
		return baseImage(np.Texture)
	}
	return tex.Image()
}

// textureCache maps images to GPU texture ids, uploading on first use.
type textureCache struct {
	upload func(image.Image) (uint32, error)
	ids    map[image.Image]uint32
	failed map[image.Image]error
}

func newTextureCache(upload func(image.Image) (uint32, error)) *textureCache {
	return &textureCache{
		upload: upload,
		ids:    make(map[image.Image]uint32),
		failed: make(map[image.Image]error),
	}
}

// resolve returns the GPU id for tex. A failed upload is remembered and
// not retried.
func (c *textureCache) resolve(tex Texture) (uint32, error) {
	img := baseImage(tex)
	if id, ok := c.ids[img]; ok {
		return id, nil
	}
	if err, ok := c.failed[img]; ok {
		return 0, err
	}
	id, err := c.upload(img)
	if err != nil {
		err = fmt.Errorf("upload texture: %w", err)
		c.failed[img] = err
		return 0, err
	}
	c.ids[img] = id
	return id, nil
}
