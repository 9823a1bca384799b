package rig

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertVecNear(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], eps, "component %d of %v vs %v", i, expected, actual)
	}
}

func assertQuatNear(t *testing.T, expected, actual mgl32.Quat) {
	t.Helper()
	// q and -q are the same rotation
	assert.InDelta(t, 1.0, float64(abs(expected.Dot(actual))), eps, "expected %v got %v", expected, actual)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestBuilder_RejectsDuplicateKinds(t *testing.T) {
	_, err := Builder().
		With(NewPosition(mgl32.Vec3{}), NewYawPitch(), NewYawPitch()).
		Build()

	require.ErrorIs(t, err, ErrDuplicateDriver)
	assert.Contains(t, err.Error(), "YawPitch")
}

func TestBuilder_RejectsNilDriver(t *testing.T) {
	var yp *YawPitch
	_, err := Builder().With(yp).Build()
	require.Error(t, err)
}

func TestRig_KindsKeepConstructionOrder(t *testing.T) {
	r, err := Builder().
		With(NewPosition(mgl32.Vec3{}), NewYawPitch(), NewSmoothing(1), NewArm(mgl32.Vec3{0, 0, 4})).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []Kind{KindPosition, KindYawPitch, KindSmoothing, KindArm}, r.Kinds())
	assert.True(t, r.Has(KindArm))
	assert.False(t, r.Has(KindRotation))
}

func TestGet_ReturnsDriverForMutation(t *testing.T) {
	r, err := Builder().With(NewPosition(mgl32.Vec3{}), NewYawPitch()).Build()
	require.NoError(t, err)

	yp, err := Get[*YawPitch](r)
	require.NoError(t, err)
	yp.RotateYawPitch(90, 0)

	again, err := Get[*YawPitch](r)
	require.NoError(t, err)
	assert.Equal(t, float32(90), again.YawDegrees)
}

func TestGet_MissingKindIsReported(t *testing.T) {
	r, err := Builder().With(NewPosition(mgl32.Vec3{})).Build()
	require.NoError(t, err)

	arm, err := Get[*Arm](r)
	require.ErrorIs(t, err, ErrDriverNotPresent)
	assert.Nil(t, arm)
	assert.Contains(t, err.Error(), "Arm")
}

func TestUpdate_PositionThenArmFollowsRotation(t *testing.T) {
	yp := NewYawPitch()
	yp.RotateYawPitch(90, 0)

	r, err := Builder().
		With(NewPosition(mgl32.Vec3{1, 2, 3}), yp, NewArm(mgl32.Vec3{0, 0, 4})).
		Build()
	require.NoError(t, err)

	out := r.Update(0.016)

	// +90 yaw maps local +Z onto world +X
	assertVecNear(t, mgl32.Vec3{5, 2, 3}, out.Position)
	assertQuatNear(t, yp.Quat(), out.Rotation)
	assert.Equal(t, out, r.Final)
}

func TestUpdate_LaterDriversSeeAccumulatedTransform(t *testing.T) {
	// Arm before YawPitch uses the identity rotation, so the offset is not rotated.
	yp := NewYawPitch()
	yp.RotateYawPitch(90, 0)

	r, err := Builder().With(NewArm(mgl32.Vec3{0, 0, 4}), yp).Build()
	require.NoError(t, err)

	out := r.Update(0)
	assertVecNear(t, mgl32.Vec3{0, 0, 4}, out.Position)
}

func TestRotation_OverwritesRotation(t *testing.T) {
	q := mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{0, 1, 0})
	r, err := Builder().With(NewYawPitch(), NewRotation(q)).Build()
	require.NoError(t, err)

	assertQuatNear(t, q, r.Update(0).Rotation)
}

func TestYawPitch_StepIsExactAndPitchClamped(t *testing.T) {
	yp := NewYawPitch()
	for i := 1; i <= 4; i++ {
		yp.RotateYawPitch(90, 0)
		assert.Equal(t, float32(90*i), yp.YawDegrees)
	}
	yp.RotateYawPitch(-90, 0)
	assert.Equal(t, float32(270), yp.YawDegrees)

	yp.RotateYawPitch(0, 200)
	assert.Equal(t, float32(90), yp.PitchDegrees)
	yp.RotateYawPitch(0, -500)
	assert.Equal(t, float32(-90), yp.PitchDegrees)
}

func TestYawPitch_StepsTurnOrientationAcrossWrap(t *testing.T) {
	yp := NewYawPitch()
	step := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})

	for i := 1; i <= 12; i++ {
		before := yp.Quat()
		yp.RotateYawPitch(90, 0)
		assertQuatNear(t, step.Mul(before), yp.Quat())
	}
	// the eighth step wrapped the stored yaw from 630 back to 0
	assert.Equal(t, float32(360), yp.YawDegrees)
}

func TestSmoothing_FirstUpdateSnapsThenConverges(t *testing.T) {
	yp := NewYawPitch()
	smooth := NewSmoothing(1)
	r, err := Builder().With(yp, smooth).Build()
	require.NoError(t, err)
	assertQuatNear(t, mgl32.QuatIdent(), r.Final.Rotation)

	yp.RotateYawPitch(90, 0)
	target := yp.Quat()

	first := r.Update(0.1)
	assert.Less(t, abs(first.Rotation.Dot(target)), float32(1-eps), "rotation should lag behind the target")
	assert.Greater(t, abs(first.Rotation.Dot(target)), abs(mgl32.QuatIdent().Dot(target)))

	for i := 0; i < 200; i++ {
		r.Update(0.1)
	}
	assertQuatNear(t, target, r.Final.Rotation)
}

func TestSmoothing_ZeroSmoothnessPassesThrough(t *testing.T) {
	yp := NewYawPitch()
	r, err := Builder().With(yp, NewSmoothing(0)).Build()
	require.NoError(t, err)

	yp.RotateYawPitch(45, 10)
	assertQuatNear(t, yp.Quat(), r.Update(0.016).Rotation)
}

func TestTransform_ViewMatrixInvertsPose(t *testing.T) {
	yp := &YawPitch{YawDegrees: 90}
	tr := Transform{Position: mgl32.Vec3{1, 2, 3}, Rotation: yp.Quat()}

	p := tr.ViewMatrix().Mul4x1(tr.Position.Vec4(1))
	assertVecNear(t, mgl32.Vec3{}, p.Vec3())

	ahead := tr.Position.Add(tr.Rotation.Rotate(mgl32.Vec3{0, 0, -1}))
	v := tr.ViewMatrix().Mul4x1(ahead.Vec4(1))
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, v.Vec3())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Smoothing", KindSmoothing.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
