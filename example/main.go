// Example shows a flat button and a texture button over a cleared GL frame.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/ [-theme theme.toml] [-texture button.png]
//
// Without -texture the texture button uses a generated nine-patch frame.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
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
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "overlay example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	themePath := flag.String("theme", "", "TOML theme file")
	texturePath := flag.String("texture", "", "image for the texture button")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := run(*themePath, *texturePath); err != nil {
		logrus.WithError(err).Error("example failed")
		os.Exit(1)
	}
}

func run(themePath, texturePath string) error {
	th := theme.Default()
	if themePath != "" {
		var err error
		if th, err = theme.LoadFile(themePath); err != nil {
			return err
		}
	}

	face, err := loadFace(texturePath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	fonts, err := fontface.NewProvider()
	if err != nil {
		return err
	}
	ui := overlay.New(renderer, overlay.WithFontProvider(fonts))
	defer ui.Close()

	input := opengl.NewGLFWInputAdapter(window, ui.Resize)

	clicks := 0
	var counter *overlay.FlatButton
	counter, err = overlay.NewFlatButton(
		overlay.WithPosition(40, 40),
		overlay.WithSize(200, 50),
		overlay.WithText("Click me (0)"),
		overlay.WithStyle(th.Flat),
		overlay.WithOnClick(func() {
			clicks++
			counter.SetText(fmt.Sprintf("Click me (%d)", clicks))
		}),
	)
	if err != nil {
		return err
	}

	disabled, err := overlay.NewFlatButton(
		overlay.WithPosition(40, 110),
		overlay.WithText("Disabled"),
		overlay.WithStyle(th.Flat),
		overlay.WithDisabled(true),
	)
	if err != nil {
		return err
	}

	textured, err := overlay.NewTextureButton(
		overlay.WithPosition(40, 180),
		overlay.WithTexture(face),
		overlay.WithWidth(240),
		overlay.WithHeight(64),
		overlay.WithText("Texture"),
		overlay.WithStyle(th.Texture),
		overlay.WithOnClick(func() {
			disabled.SetDisabled(!disabled.Interaction().Disabled())
		}),
	)
	if err != nil {
		return err
	}

	ui.Add(counter, disabled, textured)

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ui.HandleInput(input.Input())
		input.EndFrame()

		if err := ui.Draw(); err != nil {
			return fmt.Errorf("overlay draw: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func loadFace(path string) (overlay.Texture, error) {
	if path == "" {
		return overlay.NewNinePatch(overlay.NewImageTexture(frameImage(48, 48, 8)), 8, 8, 8, 8), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tex, err := overlay.LoadTexture(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tex, nil
}

// frameImage draws a square with a light border of width b.
func frameImage(w, h, b int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	edge := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	fill := color.RGBA{R: 50, G: 60, B: 90, A: 230}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fill
			if x < b || y < b || x >= w-b || y >= h-b {
				c = edge
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
