package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion expresses the euler angles as a unit quaternion, composing the
// axis rotations in the same order as RotationMatrix.
func (ea *EulerAngles) Quaternion() quat.Number {
	qx := quat.Number{Real: math.Cos(ea.Roll / 2), Imag: math.Sin(ea.Roll / 2)}
	qy := quat.Number{Real: math.Cos(ea.Pitch / 2), Jmag: math.Sin(ea.Pitch / 2)}
	qz := quat.Number{Real: math.Cos(ea.Yaw / 2), Kmag: math.Sin(ea.Yaw / 2)}
	return quat.Mul(quat.Mul(qx, qy), qz)
}

// RotationMatrixFromQuaternion converts a unit quaternion into the 3x3
// rotation matrix it represents.
func RotationMatrixFromQuaternion(q quat.Number) *mat.Dense {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	})
}

// QuaternionAlmostEqual checks whether two quaternions represent nearly the
// same rotation, accounting for the double cover of rotation space.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	diff := quat.Mul(a, quat.Conj(b))
	return math.Abs(diff.Real) > 1-tol
}
