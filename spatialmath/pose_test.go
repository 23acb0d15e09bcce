package spatialmath

import (
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/depthwarp/utils"
)

func TestPoseVecCheckValid(t *testing.T) {
	test.That(t, NewPoseVec(0, 0, 0, 0, 0, 0).CheckValid(), test.ShouldBeNil)
	err := PoseVec{1, 2, 3}.CheckValid()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "must have length of 6. Has length of 3")

	_, err = PoseVec{1, 2, 3, 4}.TransformMatrix()
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPoseVecAccessors(t *testing.T) {
	pv := NewPoseVec(1, 2, 3, 0.4, 0.5, 0.6)
	test.That(t, pv.Translation().X, test.ShouldEqual, 1)
	test.That(t, pv.Translation().Y, test.ShouldEqual, 2)
	test.That(t, pv.Translation().Z, test.ShouldEqual, 3)
	test.That(t, pv.EulerAngles().Roll, test.ShouldEqual, 0.4)
	test.That(t, pv.EulerAngles().Pitch, test.ShouldEqual, 0.5)
	test.That(t, pv.EulerAngles().Yaw, test.ShouldEqual, 0.6)
}

func TestTransformMatrixZeroMotion(t *testing.T) {
	tf, err := NewPoseVec(0, 0, 0, 0, 0, 0).TransformMatrix()
	test.That(t, err, test.ShouldBeNil)
	expected := mat.NewDense(3, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	})
	matricesAlmostEqual(t, tf, expected, 1e-12)
}

func TestTransformMatrixTranslationOnly(t *testing.T) {
	tf, err := NewPoseVec(1.5, -2, 3, 0, 0, 0).TransformMatrix()
	test.That(t, err, test.ShouldBeNil)
	expected := mat.NewDense(3, 4, []float64{
		1, 0, 0, 1.5,
		0, 1, 0, -2,
		0, 0, 1, 3,
	})
	matricesAlmostEqual(t, tf, expected, 1e-12)
}

func TestTransformMatrixAngleOrder(t *testing.T) {
	// the fourth component rotates about x, the sixth about z
	tf, err := NewPoseVec(0, 0, 0, utils.DegToRad(90), 0, 0).TransformMatrix()
	test.That(t, err, test.ShouldBeNil)
	rx := EulerToRotationMatrix(0, 0, utils.DegToRad(90))
	matricesAlmostEqual(t, tf.Slice(0, 3, 0, 3), rx, 1e-12)

	tf, err = NewPoseVec(0, 0, 0, 0, 0, utils.DegToRad(90)).TransformMatrix()
	test.That(t, err, test.ShouldBeNil)
	rz := EulerToRotationMatrix(utils.DegToRad(90), 0, 0)
	matricesAlmostEqual(t, tf.Slice(0, 3, 0, 3), rz, 1e-12)
}
