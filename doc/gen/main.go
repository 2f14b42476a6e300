// Command gen renders both button kinds in each of their four states,
// captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/ [-theme theme.toml]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/backend/opengl"
	"github.com/go-theft-auto/overlay/fontface"
	"github.com/go-theft-auto/overlay/theme"
)

const (
	shotWidth  = 160
	shotHeight = 80
)

func init() {
	runtime.LockOSThread()
}

func main() {
	themePath := flag.String("theme", "", "TOML theme file")
	out := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()

	if err := run(*themePath, *out); err != nil {
		logrus.WithError(err).Error("screenshot generation failed")
		os.Exit(1)
	}
}

// screenshot is one button captured in one state.
type screenshot struct {
	name   string
	widget overlay.Widget
	state  overlay.State
}

func run(themePath, outDir string) error {
	th := theme.Default()
	if themePath != "" {
		var err error
		if th, err = theme.LoadFile(themePath); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(shotWidth, shotHeight)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	fonts, err := fontface.NewProvider()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots, err := buildScreenshots(th)
	if err != nil {
		return err
	}
	for _, s := range shots {
		// Fresh overlay per screenshot so cached draw lists never leak.
		ui := overlay.New(renderer, overlay.WithFontProvider(fonts))
		ui.Add(s.widget)
		setState(s.widget.Interaction(), s.state)

		err := capture(ui, filepath.Join(outDir, s.name+".jpg"))
		ui.Close()
		if err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func buildScreenshots(th *theme.Theme) ([]screenshot, error) {
	face := overlay.NewNinePatch(overlay.NewImageTexture(gradient(32, 32)), 6, 6, 6, 6)

	var shots []screenshot
	for _, st := range overlay.States {
		flat, err := overlay.NewFlatButton(
			overlay.WithPosition(30, 15),
			overlay.WithText("Flat"),
			overlay.WithStyle(th.Flat),
		)
		if err != nil {
			return nil, err
		}
		tex, err := overlay.NewTextureButton(
			overlay.WithPosition(20, 16),
			overlay.WithTexture(face),
			overlay.WithSize(120, 48),
			overlay.WithText("Texture"),
			overlay.WithStyle(th.Texture),
		)
		if err != nil {
			return nil, err
		}
		shots = append(shots,
			screenshot{name: "flat_" + st.String(), widget: flat, state: st},
			screenshot{name: "texture_" + st.String(), widget: tex, state: st},
		)
	}
	return shots, nil
}

func setState(in *overlay.Interaction, st overlay.State) {
	switch st {
	case overlay.StateHover:
		in.SetHovered(true)
	case overlay.StatePress:
		in.SetHovered(true)
		in.SetPressed(true)
	case overlay.StateDisabled:
		in.SetDisabled(true)
	}
}

func capture(ui *overlay.Overlay, path string) error {
	gl.Viewport(0, 0, shotWidth, shotHeight)
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := ui.Draw(); err != nil {
		return err
	}

	pixels := make([]byte, shotWidth*shotHeight*4)
	gl.ReadPixels(0, 0, shotWidth, shotHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	rowLen := shotWidth * 4
	for y := 0; y < shotHeight; y++ {
		src := (shotHeight - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// gradient is a vertical blue gradient with a lighter 6px rim.
func gradient(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		shade := uint8(60 + 120*y/h)
		for x := 0; x < w; x++ {
			c := color.RGBA{R: shade / 3, G: shade / 2, B: shade, A: 255}
			if x < 6 || y < 6 || x >= w-6 || y >= h-6 {
				c = color.RGBA{R: 220, G: 220, B: 230, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
