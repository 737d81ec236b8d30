// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gviegas/ocean/light"
)

// action is a side effect of a key press that the
// window must carry out.
type action int

const (
	actNone action = iota
	actQuit
	actMouse
	actDump
)

// controls holds the state changed by the keyboard.
type controls struct {
	wireframe bool
	frozen    bool
	info      bool
	mouse     bool
	waveSize  uint32
	lights    light.Set
	cam       *camera
}

// key handles a key press.
func (c *controls) key(k glfw.Key) action {
	switch k {
	case glfw.KeyQ, glfw.KeyEscape:
		return actQuit
	case glfw.KeyG:
		c.wireframe = !c.wireframe
	case glfw.KeyT:
		c.frozen = !c.frozen
	case glfw.KeyI:
		c.info = !c.info
	case glfw.KeyP:
		c.cam.perspective = !c.cam.perspective
	case glfw.KeyC:
		c.mouse = !c.mouse
		return actMouse
	case glfw.Key1:
		c.lights.Toggle(light.Directional)
	case glfw.Key2:
		c.lights.Toggle(light.Point)
	case glfw.Key3:
		c.lights.Toggle(light.Spot)
	case glfw.KeyY, glfw.KeyEqual, glfw.KeyKPAdd:
		c.waveSize++
	case glfw.KeyU, glfw.KeyMinus, glfw.KeyKPSubtract:
		if c.waveSize > 0 {
			c.waveSize--
		}
	case glfw.KeyJ:
		return actDump
	}
	return actNone
}

// motion returns the forward and strafe factors of the
// movement keys currently held.
func motion(pressed func(glfw.Key) bool) (forward, strafe float32) {
	if pressed(glfw.KeyW) {
		forward++
	}
	if pressed(glfw.KeyS) {
		forward--
	}
	if pressed(glfw.KeyD) {
		strafe++
	}
	if pressed(glfw.KeyA) {
		strafe--
	}
	return
}
