// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// newWindow creates a window with a current OpenGL 4.1
// core context. glfw.Terminate must be called when the
// window is no longer needed.
func newWindow(width, height int, vsync bool) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.New("initializing glfw failed").Wrap(err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, "ocean", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.New("creating window failed").
			WithTag("width", width).
			WithTag("height", height).
			Wrap(err)
	}
	win.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return win, nil
}

// center returns the center of the window, in screen
// coordinates.
func center(win *glfw.Window) (x, y float64) {
	w, h := win.GetSize()
	return float64(w) / 2, float64(h) / 2
}

// setMouse enables or disables mouse look.
func setMouse(win *glfw.Window, on bool) {
	if on {
		win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		win.SetCursorPos(center(win))
	} else {
		win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}
