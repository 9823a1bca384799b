package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Kind int

const (
	KindPosition Kind = iota
	KindRotation
	KindYawPitch
	KindSmoothing
	KindArm
)

func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "Position"
	case KindRotation:
		return "Rotation"
	case KindYawPitch:
		return "YawPitch"
	case KindSmoothing:
		return "Smoothing"
	case KindArm:
		return "Arm"
	}
	return "Unknown"
}

// Driver is one stage of a rig. The set of drivers is closed: only the types
// in this package implement it.
type Driver interface {
	Kind() Kind
	update(dt float32, parent Transform) Transform
}

// Position overwrites the translation of the accumulated transform.
type Position struct {
	Position mgl32.Vec3
}

func NewPosition(p mgl32.Vec3) *Position { return &Position{Position: p} }

func (*Position) Kind() Kind { return KindPosition }

func (d *Position) Set(p mgl32.Vec3) { d.Position = p }

func (d *Position) update(dt float32, parent Transform) Transform {
	return Transform{Position: d.Position, Rotation: parent.Rotation}
}

// Rotation overwrites the rotation of the accumulated transform.
type Rotation struct {
	Rotation mgl32.Quat
}

func NewRotation(q mgl32.Quat) *Rotation { return &Rotation{Rotation: q} }

func (*Rotation) Kind() Kind { return KindRotation }

func (d *Rotation) Set(q mgl32.Quat) { d.Rotation = q }

func (d *Rotation) update(dt float32, parent Transform) Transform {
	return Transform{Position: parent.Position, Rotation: d.Rotation}
}

// YawPitch sets an absolute orientation from yaw (around +Y) and pitch
// (around +X), both in degrees.
//
// The stored angles are not a running sum. Yaw is kept as the remainder of
// 720, so a step that crosses ±720 changes YawDegrees by the step minus 720
// while the orientation still turns by exactly the step. Pitch saturates at
// ±90, so pitch input beyond straight up or down is dropped.
type YawPitch struct {
	YawDegrees   float32
	PitchDegrees float32
}

func NewYawPitch() *YawPitch { return &YawPitch{} }

func (*YawPitch) Kind() Kind { return KindYawPitch }

// RotateYawPitch turns by the given deltas. Yaw wraps at ±720 to keep
// precision, pitch is clamped to [-90, 90].
func (d *YawPitch) RotateYawPitch(yawDegrees, pitchDegrees float32) {
	d.YawDegrees = float32(math.Mod(float64(d.YawDegrees+yawDegrees), 720))
	d.PitchDegrees = mgl32.Clamp(d.PitchDegrees+pitchDegrees, -90, 90)
}

func (d *YawPitch) Quat() mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(d.YawDegrees), mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(mgl32.DegToRad(d.PitchDegrees), mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch).Normalize()
}

func (d *YawPitch) update(dt float32, parent Transform) Transform {
	return Transform{Position: parent.Position, Rotation: d.Quat()}
}

// Smoothing damps the incoming rotation. RotationSmoothness is a time
// constant in seconds; zero disables damping.
type Smoothing struct {
	RotationSmoothness float32

	prev    mgl32.Quat
	started bool
}

func NewSmoothing(rotationSmoothness float32) *Smoothing {
	return &Smoothing{RotationSmoothness: rotationSmoothness}
}

func (*Smoothing) Kind() Kind { return KindSmoothing }

func (d *Smoothing) update(dt float32, parent Transform) Transform {
	target := parent.Rotation
	if !d.started || d.RotationSmoothness <= 0 {
		d.prev = target
		d.started = true
		return parent
	}

	t := 1 - float32(math.Exp(float64(-8*dt/max(d.RotationSmoothness, 1e-5))))
	if d.prev.Dot(target) < 0 {
		target = target.Scale(-1)
	}
	d.prev = mgl32.QuatSlerp(d.prev, target, mgl32.Clamp(t, 0, 1)).Normalize()

	return Transform{Position: parent.Position, Rotation: d.prev}
}

// Arm offsets the translation by a vector expressed in the rig's local frame.
type Arm struct {
	Offset mgl32.Vec3
}

func NewArm(offset mgl32.Vec3) *Arm { return &Arm{Offset: offset} }

func (*Arm) Kind() Kind { return KindArm }

func (d *Arm) update(dt float32, parent Transform) Transform {
	return Transform{
		Position: parent.Position.Add(parent.Rotation.Rotate(d.Offset)),
		Rotation: parent.Rotation,
	}
}
