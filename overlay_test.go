package overlay_test

import (
	"errors"
	"image"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/go-theft-auto/overlay"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	uploads     int
	uploadErr   error
	width       int
	height      int
	lastCmds    int
}

func (m *mockRenderer) Render(dl *overlay.DrawList) error {
	m.renderCalls++
	dl.Finalize()
	m.lastCmds = len(dl.CmdBuffer)
	return nil
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

func (m *mockRenderer) UploadTexture(img image.Image) (uint32, error) {
	if m.uploadErr != nil {
		return 0, m.uploadErr
	}
	m.uploads++
	return uint32(m.uploads), nil
}

func newFlat(t *testing.T, x, y float32, opts ...overlay.Option) *overlay.FlatButton {
	t.Helper()
	b, err := overlay.NewFlatButton(append([]overlay.Option{overlay.WithPosition(x, y)}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// click presses and releases the left button at (x, y) over two frames.
func click(ui *overlay.Overlay, input *overlay.InputState, x, y float32) {
	input.SetMousePos(x, y)
	input.SetMouseButton(overlay.MouseButtonLeft, true)
	ui.HandleInput(input)
	input.Reset()

	input.SetMouseButton(overlay.MouseButtonLeft, false)
	ui.HandleInput(input)
	input.Reset()
}

func TestOverlay_DrawRebuildsOnlyWhenDirty(t *testing.T) {
	renderer := &mockRenderer{}
	ui := overlay.New(renderer)
	defer ui.Close()

	b := newFlat(t, 0, 0, overlay.WithText("Play"))
	ui.Add(b)

	for i := 0; i < 3; i++ {
		if err := ui.Draw(); err != nil {
			t.Fatalf("Draw() returned error: %v", err)
		}
	}
	if renderer.renderCalls != 3 {
		t.Errorf("expected 3 render calls, got %d", renderer.renderCalls)
	}
	if ui.Rebuilds() != 1 {
		t.Errorf("expected 1 rebuild, got %d", ui.Rebuilds())
	}
	if b.Dirty() {
		t.Error("drawn widget should be clean")
	}

	b.SetText("Pause")
	if !ui.Dirty() {
		t.Fatal("setter should schedule a rebuild")
	}
	_ = ui.Draw()
	if ui.Rebuilds() != 2 {
		t.Errorf("expected 2 rebuilds, got %d", ui.Rebuilds())
	}
}

func TestOverlay_ClickDispatch(t *testing.T) {
	ui := overlay.New(&mockRenderer{})
	input := overlay.NewInputState()

	clicks := 0
	b := newFlat(t, 0, 0, overlay.WithOnClick(func() { clicks++ }))
	ui.Add(b)

	input.SetMousePos(10, 10)
	input.SetMouseButton(overlay.MouseButtonLeft, true)
	ui.HandleInput(input)
	if b.Interaction().State() != overlay.StatePress {
		t.Fatalf("expected press state, got %v", b.Interaction().State())
	}
	input.Reset()

	input.SetMouseButton(overlay.MouseButtonLeft, false)
	ui.HandleInput(input)
	if clicks != 1 {
		t.Errorf("expected 1 click, got %d", clicks)
	}
	if b.Interaction().State() != overlay.StateHover {
		t.Errorf("expected hover after release, got %v", b.Interaction().State())
	}
}

func TestOverlay_ReleaseOutsideDoesNotClick(t *testing.T) {
	ui := overlay.New(&mockRenderer{})
	input := overlay.NewInputState()

	clicks := 0
	b := newFlat(t, 0, 0, overlay.WithOnClick(func() { clicks++ }))
	ui.Add(b)

	input.SetMousePos(10, 10)
	input.SetMouseButton(overlay.MouseButtonLeft, true)
	ui.HandleInput(input)
	input.Reset()

	input.SetMousePos(500, 500)
	input.SetMouseButton(overlay.MouseButtonLeft, false)
	ui.HandleInput(input)

	if clicks != 0 {
		t.Errorf("release outside should not click, got %d", clicks)
	}
	if b.Interaction().State() != overlay.StateNormal {
		t.Errorf("expected normal state, got %v", b.Interaction().State())
	}
}

func TestOverlay_DisabledIgnoresClicks(t *testing.T) {
	ui := overlay.New(&mockRenderer{})
	input := overlay.NewInputState()

	clicks := 0
	b := newFlat(t, 0, 0, overlay.WithDisabled(true), overlay.WithOnClick(func() { clicks++ }))
	ui.Add(b)

	click(ui, input, 10, 10)
	if clicks != 0 {
		t.Errorf("disabled button clicked %d times", clicks)
	}
	if b.Interaction().Pressed() {
		t.Error("disabled button must not be pressed")
	}
	if b.Interaction().State() != overlay.StateDisabled {
		t.Errorf("expected disabled state, got %v", b.Interaction().State())
	}
}

func TestOverlay_TopmostWidgetWins(t *testing.T) {
	ui := overlay.New(&mockRenderer{})
	input := overlay.NewInputState()

	var hits []string
	bottom := newFlat(t, 0, 0, overlay.WithOnClick(func() { hits = append(hits, "bottom") }))
	top := newFlat(t, 50, 20, overlay.WithOnClick(func() { hits = append(hits, "top") }))
	ui.Add(bottom, top)

	click(ui, input, 60, 30)
	if len(hits) != 1 || hits[0] != "top" {
		t.Errorf("expected only the top button to click, got %v", hits)
	}

	input.SetMousePos(60, 30)
	ui.HandleInput(input)
	if bottom.Interaction().Hovered() {
		t.Error("covered button should not be hovered")
	}
}

func TestOverlay_Remove(t *testing.T) {
	ui := overlay.New(&mockRenderer{})
	b := newFlat(t, 0, 0)
	ui.Add(b)
	_ = ui.Draw()

	if !ui.Remove(b) {
		t.Fatal("expected Remove to find the widget")
	}
	if ui.Remove(b) {
		t.Error("second Remove should report false")
	}
	if len(ui.Widgets()) != 0 {
		t.Error("widget list should be empty")
	}

	_ = ui.Draw()
	rebuilds := ui.Rebuilds()
	b.SetText("detached")
	if ui.Dirty() {
		t.Error("detached widget must not dirty the overlay")
	}
	_ = ui.Draw()
	if ui.Rebuilds() != rebuilds {
		t.Error("unexpected rebuild")
	}
}

func TestOverlay_ResizeAppliesSizeHints(t *testing.T) {
	renderer := &mockRenderer{}
	ui := overlay.New(renderer)
	b := newFlat(t, 0, 0, overlay.WithSizeHint(0.5, 0.1), overlay.WithSizeHintMax(300, 0))
	ui.Add(b)

	ui.Resize(800, 600)
	if b.Width() != 300 || b.Height() != 60 {
		t.Errorf("size = %vx%v, want 300x60", b.Width(), b.Height())
	}
	if renderer.width != 800 || renderer.height != 600 {
		t.Error("renderer not resized")
	}
}

func TestOverlay_TextureUploadOnce(t *testing.T) {
	renderer := &mockRenderer{}
	ui := overlay.New(renderer)

	tex := overlay.NewImageTexture(image.NewRGBA(image.Rect(0, 0, 20, 20)))
	b, err := overlay.NewTextureButton(overlay.WithTexture(tex))
	if err != nil {
		t.Fatal(err)
	}
	ui.Add(b)

	_ = ui.Draw()
	b.Interaction().SetHovered(true)
	_ = ui.Draw()

	if renderer.uploads != 1 {
		t.Errorf("expected 1 upload, got %d", renderer.uploads)
	}
	if renderer.lastCmds == 0 {
		t.Error("expected draw commands")
	}
}

func TestOverlay_FailedUploadIsLoggedAndSkipped(t *testing.T) {
	logger, hook := test.NewNullLogger()
	renderer := &mockRenderer{uploadErr: errors.New("no GL context")}
	ui := overlay.New(renderer, overlay.WithLogger(logrus.NewEntry(logger)))

	tex := overlay.NewImageTexture(image.NewRGBA(image.Rect(0, 0, 20, 20)))
	b, err := overlay.NewTextureButton(overlay.WithTexture(tex))
	if err != nil {
		t.Fatal(err)
	}
	ui.Add(b)

	if err := ui.Draw(); err != nil {
		t.Fatalf("a missing texture must not fail the draw: %v", err)
	}

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "skipping texture" {
			warned = true
		}
	}
	if !warned {
		t.Error("expected a warning for the failed upload")
	}
}
