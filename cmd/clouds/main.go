// Clouds opens a window and draws a single colored quad until Escape is
// pressed or the window is closed.
//
// Prerequisites:
//
//	devbox shell              # provides Go + OpenGL/X11 headers
//	go run ./cmd/clouds/
//
// Exit status is 0 on a normal close and 1 when the window, the GL context or
// the shader program could not be created.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/clouds"
	"github.com/go-theft-auto/clouds/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	err := run(clouds.DefaultConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps the result of run onto the process exit status.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

func run(cfg clouds.Config) error {
	window, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	program, err := opengl.NewProgram(clouds.VertexShaderSource, clouds.FragmentShaderSource)
	if err != nil {
		return fmt.Errorf("shader program: %w", err)
	}

	geometry, err := opengl.UploadMesh(clouds.QuadMesh())
	if err != nil {
		program.Delete()
		return err
	}

	renderer := opengl.NewRenderer(cfg, program, geometry)
	defer renderer.Delete()
	renderer.SetViewport(window.FramebufferSize())

	return clouds.NewLoop(window, renderer).Run()
}
