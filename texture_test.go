package overlay

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
)

func TestNinePatch_Patches(t *testing.T) {
	np := NewNinePatch(solidTexture(30, 30), 10, 10, 10, 10)
	p := np.patches(90, 60)

	corner := p[0]
	if corner[0] != (Rect{W: 10, H: 10}) {
		t.Errorf("top-left dest = %+v", corner[0])
	}
	if !approxEqual(corner[1].W, 1.0/3) || !approxEqual(corner[1].H, 1.0/3) {
		t.Errorf("top-left uv = %+v", corner[1])
	}

	center := p[4]
	if center[0] != (Rect{X: 10, Y: 10, W: 70, H: 40}) {
		t.Errorf("center dest = %+v", center[0])
	}
	if !approxEqual(center[1].X, 1.0/3) || !approxEqual(center[1].W, 1.0/3) {
		t.Errorf("center uv = %+v", center[1])
	}

	br := p[8]
	if br[0] != (Rect{X: 80, Y: 50, W: 10, H: 10}) {
		t.Errorf("bottom-right dest = %+v", br[0])
	}
}

func TestNinePatch_BordersShrinkInSmallArea(t *testing.T) {
	np := NewNinePatch(solidTexture(30, 30), 10, 10, 10, 10)
	p := np.patches(10, 40)

	if p[0][0].W != 5 || p[2][0].X != 5 || p[2][0].W != 5 {
		t.Errorf("horizontal borders should scale to fit: %+v %+v", p[0][0], p[2][0])
	}
	if p[4][0].W != 0 {
		t.Errorf("center should collapse, got width %v", p[4][0].W)
	}
	if p[0][0].H != 10 {
		t.Errorf("vertical borders fit and keep their size, got %v", p[0][0].H)
	}
}

func TestTextureCache_UploadsOncePerImage(t *testing.T) {
	uploads := 0
	cache := newTextureCache(func(image.Image) (uint32, error) {
		uploads++
		return uint32(uploads), nil
	})

	base := solidTexture(8, 8)
	np := NewNinePatch(base, 2, 2, 2, 2)

	id1, err := cache.resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := cache.resolve(np)
	if err != nil {
		t.Fatal(err)
	}
	if id1 != id2 || uploads != 1 {
		t.Errorf("nine-patch should share its base upload: ids %d/%d, uploads %d", id1, id2, uploads)
	}
}

func TestTextureCache_RemembersFailure(t *testing.T) {
	uploads := 0
	boom := errors.New("out of memory")
	cache := newTextureCache(func(image.Image) (uint32, error) {
		uploads++
		return 0, boom
	})

	tex := solidTexture(4, 4)
	for i := 0; i < 3; i++ {
		if _, err := cache.resolve(tex); !errors.Is(err, boom) {
			t.Fatalf("expected upload error, got %v", err)
		}
	}
	if uploads != 1 {
		t.Errorf("failed upload retried %d times", uploads)
	}
}

func TestLoadTexture(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 50, 30))); err != nil {
		t.Fatal(err)
	}

	tex, err := LoadTexture(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Size() != (Vec2{X: 50, Y: 30}) {
		t.Errorf("size = %+v, want 50x30", tex.Size())
	}

	if _, err := LoadTexture(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected decode error")
	}
}
