package platform

import (
	"github.com/gekko3d/camgizmo"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyBindings = []struct {
	key  camgizmo.Key
	glfw glfw.Key
}{
	{camgizmo.KeyA, glfw.KeyA}, {camgizmo.KeyB, glfw.KeyB}, {camgizmo.KeyC, glfw.KeyC},
	{camgizmo.KeyD, glfw.KeyD}, {camgizmo.KeyE, glfw.KeyE}, {camgizmo.KeyF, glfw.KeyF},
	{camgizmo.KeyG, glfw.KeyG}, {camgizmo.KeyH, glfw.KeyH}, {camgizmo.KeyI, glfw.KeyI},
	{camgizmo.KeyJ, glfw.KeyJ}, {camgizmo.KeyK, glfw.KeyK}, {camgizmo.KeyL, glfw.KeyL},
	{camgizmo.KeyM, glfw.KeyM}, {camgizmo.KeyN, glfw.KeyN}, {camgizmo.KeyO, glfw.KeyO},
	{camgizmo.KeyP, glfw.KeyP}, {camgizmo.KeyQ, glfw.KeyQ}, {camgizmo.KeyR, glfw.KeyR},
	{camgizmo.KeyS, glfw.KeyS}, {camgizmo.KeyT, glfw.KeyT}, {camgizmo.KeyU, glfw.KeyU},
	{camgizmo.KeyV, glfw.KeyV}, {camgizmo.KeyW, glfw.KeyW}, {camgizmo.KeyX, glfw.KeyX},
	{camgizmo.KeyY, glfw.KeyY}, {camgizmo.KeyZ, glfw.KeyZ},
	{camgizmo.Key0, glfw.Key0}, {camgizmo.Key1, glfw.Key1}, {camgizmo.Key2, glfw.Key2},
	{camgizmo.Key3, glfw.Key3}, {camgizmo.Key4, glfw.Key4}, {camgizmo.Key5, glfw.Key5},
	{camgizmo.Key6, glfw.Key6}, {camgizmo.Key7, glfw.Key7}, {camgizmo.Key8, glfw.Key8},
	{camgizmo.Key9, glfw.Key9},
	{camgizmo.KeySpace, glfw.KeySpace},
	{camgizmo.KeyEnter, glfw.KeyEnter},
	{camgizmo.KeyEscape, glfw.KeyEscape},
	{camgizmo.KeyTab, glfw.KeyTab},
	{camgizmo.KeyRight, glfw.KeyRight},
	{camgizmo.KeyLeft, glfw.KeyLeft},
	{camgizmo.KeyDown, glfw.KeyDown},
	{camgizmo.KeyUp, glfw.KeyUp},
	{camgizmo.KeyShift, glfw.KeyLeftShift},
	{camgizmo.KeyControl, glfw.KeyLeftControl},
}
