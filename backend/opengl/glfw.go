package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/overlay"
)

// GLFWInputAdapter feeds GLFW pointer events into an overlay.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *overlay.InputState
	resize func(width, height int)
}

// NewGLFWInputAdapter installs mouse and framebuffer callbacks on window.
// onResize, if not nil, is called with the new framebuffer size.
func NewGLFWInputAdapter(window *glfw.Window, onResize func(width, height int)) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  overlay.NewInputState(),
		resize: onResize,
	}

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)

	return a
}

// Input returns the state for the current frame. Call EndFrame once the
// overlay has consumed it.
func (a *GLFWInputAdapter) Input() *overlay.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	return a.input
}

// EndFrame clears the per-frame click and release edges.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := mouseButton(button)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func (a *GLFWInputAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if a.resize != nil {
		a.resize(width, height)
	}
}

func mouseButton(button glfw.MouseButton) (overlay.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return overlay.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return overlay.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return overlay.MouseButtonMiddle, true
	}
	return 0, false
}
