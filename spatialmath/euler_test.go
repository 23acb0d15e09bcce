package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/depthwarp/utils"
)

func matricesAlmostEqual(t *testing.T, a, b mat.Matrix, tol float64) {
	t.Helper()
	ar, ac := a.Dims()
	br, bc := b.Dims()
	test.That(t, ar, test.ShouldEqual, br)
	test.That(t, ac, test.ShouldEqual, bc)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			test.That(t, a.At(i, j), test.ShouldAlmostEqual, b.At(i, j), tol)
		}
	}
}

func TestEulerToRotationMatrixIdentity(t *testing.T) {
	rot := EulerToRotationMatrix(0, 0, 0)
	matricesAlmostEqual(t, rot, mat.NewDiagDense(3, []float64{1, 1, 1}), 1e-12)
}

func TestEulerToRotationMatrixSingleAxis(t *testing.T) {
	// 90 degrees about z rotates x onto y
	rot := EulerToRotationMatrix(utils.DegToRad(90), 0, 0)
	expected := mat.NewDense(3, 3, []float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	matricesAlmostEqual(t, rot, expected, 1e-12)

	// 90 degrees about x rotates y onto z
	rot = EulerToRotationMatrix(0, 0, utils.DegToRad(90))
	expected = mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 0, -1,
		0, 1, 0,
	})
	matricesAlmostEqual(t, rot, expected, 1e-12)
}

func TestEulerToRotationMatrixComposition(t *testing.T) {
	// R must equal Rx * Ry * Rz, z rotation applied first
	z, y, x := utils.DegToRad(30), utils.DegToRad(-45), utils.DegToRad(60)
	zOnly := EulerToRotationMatrix(z, 0, 0)
	yOnly := EulerToRotationMatrix(0, y, 0)
	xOnly := EulerToRotationMatrix(0, 0, x)
	var xy, expected mat.Dense
	xy.Mul(xOnly, yOnly)
	expected.Mul(&xy, zOnly)
	matricesAlmostEqual(t, EulerToRotationMatrix(z, y, x), &expected, 1e-12)
}

func TestRotationMatrixOrthonormal(t *testing.T) {
	angles := []float64{-3.1, -1.2, 0, 0.5, 1.9, 2.8, 7.3}
	for _, z := range angles {
		for _, y := range angles {
			for _, x := range angles {
				rot := EulerToRotationMatrix(z, y, x)
				var rrt mat.Dense
				rrt.Mul(rot, rot.T())
				matricesAlmostEqual(t, &rrt, mat.NewDiagDense(3, []float64{1, 1, 1}), 1e-10)
				test.That(t, mat.Det(rot), test.ShouldAlmostEqual, 1, 1e-10)
			}
		}
	}
}

func TestQuaternionAgreesWithMatrix(t *testing.T) {
	ea := &EulerAngles{
		Roll:  utils.DegToRad(10),
		Pitch: utils.DegToRad(-70),
		Yaw:   utils.DegToRad(125),
	}
	fromQuat := RotationMatrixFromQuaternion(ea.Quaternion())
	matricesAlmostEqual(t, fromQuat, ea.RotationMatrix(), 1e-10)
}

func TestQuaternionAlmostEqual(t *testing.T) {
	ea := &EulerAngles{Roll: math.Pi / 4}
	q := ea.Quaternion()
	negQ := q
	negQ.Real, negQ.Imag, negQ.Jmag, negQ.Kmag = -q.Real, -q.Imag, -q.Jmag, -q.Kmag
	test.That(t, QuaternionAlmostEqual(q, negQ, 1e-5), test.ShouldBeTrue)
	other := (&EulerAngles{Roll: math.Pi / 2}).Quaternion()
	test.That(t, QuaternionAlmostEqual(q, other, 1e-5), test.ShouldBeFalse)
}
