package camgizmo

import (
	"errors"
	"fmt"

	"github.com/gekko3d/camgizmo/rig"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrCameraNotFound   = errors.New("camera not found")
	ErrCameraNotUnique  = errors.New("camera not unique")
	ErrCameraMissingRig = errors.New("camera has no rig")
)

const (
	DefaultYawStepDegrees = 90

	// mouseLookScale converts sensitivity-scaled pixels to degrees.
	mouseLookScale = 0.1
)

type ControlSettings struct {
	ToggleKey       Key
	StepNegativeKey Key
	StepPositiveKey Key

	YawStepDegrees   float32
	MouseSensitivity mgl32.Vec2

	// GizmoPivot pins the gizmo rig's Position driver every frame.
	GizmoPivot mgl32.Vec3
}

func DefaultControlSettings() ControlSettings {
	s, err := DefaultConfig().ControlSettings()
	if err != nil {
		panic(err)
	}
	return s
}

// CameraInput is one frame of input already reduced for the coordinator.
type CameraInput struct {
	MouseDelta   mgl32.Vec2
	StepNegative bool
	StepPositive bool
}

func ReadCameraInput(input *Input, motion *Events[MouseMotion], s ControlSettings) CameraInput {
	return CameraInput{
		MouseDelta:   SumMouseMotion(motion.Read()),
		StepNegative: input.IsJustPressed(s.StepNegativeKey),
		StepPositive: input.IsJustPressed(s.StepPositiveKey),
	}
}

type CameraPoses struct {
	Gizmo rig.Transform
	Main  rig.Transform
}

// UpdateCameras advances both rigs by one frame. The gizmo rig is turned by
// input and resolved first; its rotation is then copied by value into the
// main rig's Rotation driver. Translations stay independent.
//
// The gizmo rig needs Position and YawPitch drivers, the main rig a Rotation
// driver. All lookups happen before any mutation.
func UpdateCameras(gizmo, main *rig.Rig, mode PanMode, in CameraInput, s ControlSettings, dt float32) (CameraPoses, error) {
	yawPitch, err := rig.Get[*rig.YawPitch](gizmo)
	if err != nil {
		return CameraPoses{}, fmt.Errorf("gizmo rig: %w", err)
	}
	pivot, err := rig.Get[*rig.Position](gizmo)
	if err != nil {
		return CameraPoses{}, fmt.Errorf("gizmo rig: %w", err)
	}
	mainRotation, err := rig.Get[*rig.Rotation](main)
	if err != nil {
		return CameraPoses{}, fmt.Errorf("main rig: %w", err)
	}

	switch mode {
	case PanModeKeys:
		if in.StepNegative {
			yawPitch.RotateYawPitch(-s.YawStepDegrees, 0)
		}
		if in.StepPositive {
			yawPitch.RotateYawPitch(s.YawStepDegrees, 0)
		}
	case PanModeMouse:
		yawPitch.RotateYawPitch(
			-mouseLookScale*s.MouseSensitivity.X()*in.MouseDelta.X(),
			-mouseLookScale*s.MouseSensitivity.Y()*in.MouseDelta.Y(),
		)
	}

	// TODO: decide whether the pivot is pinned only at setup. Pinning every
	// frame overrides any other writer of the gizmo Position driver.
	pivot.Set(s.GizmoPivot)

	gizmoPose := gizmo.Update(dt)

	mainRotation.Set(gizmoPose.Rotation)
	mainPose := main.Update(dt)

	return CameraPoses{Gizmo: gizmoPose, Main: mainPose}, nil
}

type cameraRef struct {
	id        EntityId
	camera    *CameraComponent
	transform *TransformComponent
	rig       *rig.Rig
}

// findCamera resolves the single entity tagged Tag. Zero or several matches
// are configuration errors.
func findCamera[Tag any](cmd *Commands, role CameraRole) (cameraRef, error) {
	var found []cameraRef
	MakeQuery4[Tag, CameraComponent, TransformComponent, RigComponent](cmd).Map(
		func(eid EntityId, _ *Tag, cam *CameraComponent, tr *TransformComponent, rc *RigComponent) bool {
			found = append(found, cameraRef{id: eid, camera: cam, transform: tr, rig: rc.Rig})
			return true
		})

	switch len(found) {
	case 0:
		return cameraRef{}, fmt.Errorf("%w: no %s entity with camera, transform and rig", ErrCameraNotFound, role)
	case 1:
	default:
		ids := make([]EntityId, len(found))
		for i, f := range found {
			ids[i] = f.id
		}
		return cameraRef{}, fmt.Errorf("%w: %d %s entities %v", ErrCameraNotUnique, len(found), role, ids)
	}

	if found[0].rig == nil {
		return cameraRef{}, fmt.Errorf("%w: %s entity %v", ErrCameraMissingRig, role, found[0].id)
	}
	return found[0], nil
}

func cameraCoordinatorSystem(
	cmd *Commands,
	t *Time,
	input *Input,
	motion *Events[MouseMotion],
	mode *PanModeState,
	settings *ControlSettings,
) error {
	gizmo, err := findCamera[GizmoCamera](cmd, RoleGizmo)
	if err != nil {
		return err
	}
	main, err := findCamera[MainCamera](cmd, RoleMain)
	if err != nil {
		return err
	}

	poses, err := UpdateCameras(
		gizmo.rig,
		main.rig,
		mode.Mode(),
		ReadCameraInput(input, motion, *settings),
		*settings,
		t.DeltaSeconds(),
	)
	if err != nil {
		return err
	}

	gizmo.transform.Position = poses.Gizmo.Position
	gizmo.transform.Rotation = poses.Gizmo.Rotation
	main.transform.Position = poses.Main.Position
	main.transform.Rotation = poses.Main.Rotation
	return nil
}
