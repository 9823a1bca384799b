package camgizmo

import (
	"testing"

	"github.com/gekko3d/camgizmo/rig"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRigs(t *testing.T) (*rig.Rig, *rig.Rig) {
	t.Helper()
	gizmo, err := rig.Builder().
		With(rig.NewPosition(mgl32.Vec3{}), rig.NewYawPitch(), rig.NewSmoothing(1), rig.NewArm(mgl32.Vec3{0, 0, 2})).
		Build()
	require.NoError(t, err)

	main, err := rig.Builder().
		With(rig.NewPosition(mgl32.Vec3{3, 4, 5}), rig.NewRotation(mgl32.QuatIdent()), rig.NewArm(mgl32.Vec3{0, 0, 10})).
		Build()
	require.NoError(t, err)
	return gizmo, main
}

func gizmoYaw(t *testing.T, r *rig.Rig) *rig.YawPitch {
	t.Helper()
	yp, err := rig.Get[*rig.YawPitch](r)
	require.NoError(t, err)
	return yp
}

func TestUpdateCameras_KeyStepsAreExactAndIgnoreFrameTime(t *testing.T) {
	gizmo, main := newTestRigs(t)
	s := DefaultControlSettings()
	yp := gizmoYaw(t, gizmo)

	steps := []struct {
		in  CameraInput
		dt  float32
		yaw float32
	}{
		{CameraInput{StepPositive: true}, 0.016, 90},
		{CameraInput{StepPositive: true}, 0.5, 180},
		{CameraInput{StepNegative: true}, 0.001, 90},
		{CameraInput{}, 2, 90},
		{CameraInput{StepNegative: true}, 0.016, 0},
		{CameraInput{StepNegative: true}, 0.016, -90},
	}
	for i, step := range steps {
		_, err := UpdateCameras(gizmo, main, PanModeKeys, step.in, s, step.dt)
		require.NoError(t, err)
		assert.Equal(t, step.yaw, yp.YawDegrees, "step %d", i)
	}
}

func TestUpdateCameras_BothStepKeysInOneFrameCancel(t *testing.T) {
	gizmo, main := newTestRigs(t)
	yp := gizmoYaw(t, gizmo)

	_, err := UpdateCameras(gizmo, main, PanModeKeys, CameraInput{StepNegative: true, StepPositive: true}, DefaultControlSettings(), 0.016)
	require.NoError(t, err)
	assert.Equal(t, float32(0), yp.YawDegrees)
}

func TestUpdateCameras_KeysModeIgnoresMouse(t *testing.T) {
	gizmo, main := newTestRigs(t)
	yp := gizmoYaw(t, gizmo)

	in := CameraInput{MouseDelta: mgl32.Vec2{1000, -500}}
	_, err := UpdateCameras(gizmo, main, PanModeKeys, in, DefaultControlSettings(), 0.016)
	require.NoError(t, err)

	assert.Equal(t, float32(0), yp.YawDegrees)
	assert.Equal(t, float32(0), yp.PitchDegrees)
}

func TestUpdateCameras_MouseModeIsLinearAndIgnoresSteps(t *testing.T) {
	gizmo, main := newTestRigs(t)
	yp := gizmoYaw(t, gizmo)
	s := DefaultControlSettings()
	s.MouseSensitivity = mgl32.Vec2{10, 5}

	in := CameraInput{MouseDelta: mgl32.Vec2{10, 4}, StepPositive: true}
	_, err := UpdateCameras(gizmo, main, PanModeMouse, in, s, 0.016)
	require.NoError(t, err)
	assert.InDelta(t, -10, yp.YawDegrees, 1e-5)
	assert.InDelta(t, -2, yp.PitchDegrees, 1e-5)

	// doubling the delta doubles the change
	in.MouseDelta = mgl32.Vec2{20, 8}
	_, err = UpdateCameras(gizmo, main, PanModeMouse, in, s, 0.016)
	require.NoError(t, err)
	assert.InDelta(t, -30, yp.YawDegrees, 1e-5)
	assert.InDelta(t, -6, yp.PitchDegrees, 1e-5)

	_, err = UpdateCameras(gizmo, main, PanModeMouse, CameraInput{}, s, 0.016)
	require.NoError(t, err)
	assert.InDelta(t, -30, yp.YawDegrees, 1e-5)
}

func TestUpdateCameras_CopiesRotationButNotTranslation(t *testing.T) {
	gizmo, main := newTestRigs(t)
	s := DefaultControlSettings()

	for _, in := range []CameraInput{{StepPositive: true}, {}, {StepNegative: true}} {
		poses, err := UpdateCameras(gizmo, main, PanModeKeys, in, s, 0.05)
		require.NoError(t, err)

		assert.Equal(t, poses.Gizmo.Rotation, poses.Main.Rotation)
		assert.Equal(t, gizmo.Final.Rotation, main.Final.Rotation)
		assert.NotEqual(t, poses.Gizmo.Position, poses.Main.Position)
	}

	// the main rig's own Position driver still moves it
	pos, err := rig.Get[*rig.Position](main)
	require.NoError(t, err)
	pos.Set(mgl32.Vec3{100, 0, 0})

	poses, err := UpdateCameras(gizmo, main, PanModeKeys, CameraInput{}, s, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 100, poses.Main.Position.X()-main.Final.Rotation.Rotate(mgl32.Vec3{0, 0, 10}).X(), 1e-4)
	assert.Equal(t, poses.Gizmo.Rotation, poses.Main.Rotation)
}

func TestUpdateCameras_PinsGizmoPivot(t *testing.T) {
	gizmo, main := newTestRigs(t)
	s := DefaultControlSettings()

	pos, err := rig.Get[*rig.Position](gizmo)
	require.NoError(t, err)
	pos.Set(mgl32.Vec3{42, 42, 42})

	_, err = UpdateCameras(gizmo, main, PanModeKeys, CameraInput{}, s, 0.016)
	require.NoError(t, err)
	assert.Equal(t, s.GizmoPivot, pos.Position)
}

func TestUpdateCameras_MissingDriversAreNamed(t *testing.T) {
	gizmo, main := newTestRigs(t)
	bare, err := rig.Builder().With(rig.NewPosition(mgl32.Vec3{})).Build()
	require.NoError(t, err)

	_, err = UpdateCameras(bare, main, PanModeKeys, CameraInput{}, DefaultControlSettings(), 0)
	require.ErrorIs(t, err, rig.ErrDriverNotPresent)
	assert.Contains(t, err.Error(), "gizmo rig")
	assert.Contains(t, err.Error(), "YawPitch")

	_, err = UpdateCameras(gizmo, bare, PanModeKeys, CameraInput{StepPositive: true}, DefaultControlSettings(), 0)
	require.ErrorIs(t, err, rig.ErrDriverNotPresent)
	assert.Contains(t, err.Error(), "main rig")
	assert.Contains(t, err.Error(), "Rotation")

	// nothing was mutated before the failure
	assert.Equal(t, float32(0), gizmoYaw(t, gizmo).YawDegrees)
}

func TestReadCameraInput_SumsMotionAndReadsEdges(t *testing.T) {
	s := DefaultControlSettings()
	input := &Input{}
	input.BeginFrame()
	input.SetKey(s.StepPositiveKey, true)

	motion := &Events[MouseMotion]{}
	motion.Send(MouseMotion{Delta: mgl32.Vec2{1, 2}}, MouseMotion{Delta: mgl32.Vec2{3, -5}})

	in := ReadCameraInput(input, motion, s)
	assert.Equal(t, mgl32.Vec2{4, -3}, in.MouseDelta)
	assert.True(t, in.StepPositive)
	assert.False(t, in.StepNegative)

	// held, not pressed again
	input.BeginFrame()
	input.SetKey(s.StepPositiveKey, true)
	assert.False(t, ReadCameraInput(input, &Events[MouseMotion]{}, s).StepPositive)
}
