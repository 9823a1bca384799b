package camgizmo

import (
	"fmt"
	"iter"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type Key int

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyShift
	KeyControl

	keyCount
)

var keyNames = [keyCount]string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"Space", "Enter", "Escape", "Tab", "Right", "Left", "Down", "Up",
	"Shift", "Control",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey resolves a key name case-insensitively.
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// MouseMotion is a relative cursor movement in physical pixels.
type MouseMotion struct {
	Delta mgl32.Vec2
}

// SumMouseMotion folds a frame's motion events into one delta.
func SumMouseMotion(events iter.Seq[MouseMotion]) mgl32.Vec2 {
	var sum mgl32.Vec2
	for ev := range events {
		sum = sum.Add(ev.Delta)
	}
	return sum
}

// Input holds the keyboard state of the current frame. Pressed is level
// state; JustPressed is the press edge and lasts one frame.
type Input struct {
	Pressed     [keyCount]bool
	JustPressed [keyCount]bool

	// MouseCaptured asks the platform to hide and lock the cursor.
	MouseCaptured bool

	// Frame counts BeginFrame calls. Edge consumers use it to act at most
	// once per edge.
	Frame uint64
}

// BeginFrame clears the edges of the previous frame.
func (in *Input) BeginFrame() {
	in.JustPressed = [keyCount]bool{}
	in.Frame++
}

// SetKey records the key's level for this frame and derives the press edge.
func (in *Input) SetKey(key Key, down bool) {
	if key < 0 || key >= keyCount {
		return
	}
	if down && !in.Pressed[key] {
		in.JustPressed[key] = true
	}
	in.Pressed[key] = down
}

func (in *Input) IsJustPressed(key Key) bool {
	return key >= 0 && key < keyCount && in.JustPressed[key]
}

// InputModule provides the Input resource and the MouseMotion channel. A
// platform module is expected to fill them in PreUpdate.
type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	if Resource[Input](app) == nil {
		cmd.AddResources(&Input{})
	}
	addEventChannel[MouseMotion](app)
}
