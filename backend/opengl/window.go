package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/clouds"
)

// Window owns the GLFW window and its OpenGL 3.3 core context.
// GLFW callbacks only record events; the render loop drains them through
// PollEvents.
type Window struct {
	window *glfw.Window
	events *clouds.EventQueue
}

// NewWindow initializes GLFW, opens a fixed-size window with a current
// 3.3 core forward-compatible context and loads the GL entry points.
// On failure every partially initialized GLFW resource is released.
// Must be called from the main OS thread.
func NewWindow(cfg clouds.Config) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	gw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	gw.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		gw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	w := &Window{
		window: gw,
		events: clouds.NewEventQueue(),
	}
	gw.SetKeyCallback(w.keyCallback)
	gw.SetCloseCallback(w.closeCallback)

	clouds.Logger.Debug("window created",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	return w, nil
}

// PollEvents processes pending window system events and returns the input
// events they produced, in arrival order. It never blocks.
func (w *Window) PollEvents() []clouds.Event {
	glfw.PollEvents()
	return w.events.Drain()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == clouds.KeyNone {
		return
	}
	w.events.Push(clouds.KeyEvent(k, glfwActionToAction(action)))
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.events.Push(clouds.CloseEvent())
}

// glfwKeyToKey maps GLFW keys to clouds keys.
func glfwKeyToKey(key glfw.Key) clouds.Key {
	switch key {
	case glfw.KeyEscape:
		return clouds.KeyEscape
	case glfw.KeyEnter:
		return clouds.KeyEnter
	case glfw.KeySpace:
		return clouds.KeySpace
	case glfw.KeyQ:
		return clouds.KeyQ
	case glfw.KeyW:
		return clouds.KeyW
	default:
		return clouds.KeyNone
	}
}

// glfwActionToAction maps GLFW key actions to clouds actions.
func glfwActionToAction(action glfw.Action) clouds.Action {
	switch action {
	case glfw.Press:
		return clouds.ActionPress
	case glfw.Repeat:
		return clouds.ActionRepeat
	default:
		return clouds.ActionRelease
	}
}
