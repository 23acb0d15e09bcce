// Package spatialmath implements the rotation and rigid transform math used
// to relate camera frames to each other.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EulerAngles are three angles, in radians, describing rotations about the
// x, y and z axes: Roll is about x, Pitch about y, Yaw about z.
type EulerAngles struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// NewEulerAngles creates an empty EulerAngles struct, which represents no rotation.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{}
}

// EulerToRotationMatrix converts rotation angles about the z, y and x axes
// into a single 3x3 rotation matrix R = Rx * Ry * Rz. In other words, the z
// rotation is applied first and the x rotation last.
func EulerToRotationMatrix(z, y, x float64) *mat.Dense {
	cz, sz := math.Cos(z), math.Sin(z)
	cy, sy := math.Cos(y), math.Sin(y)
	cx, sx := math.Cos(x), math.Sin(x)

	zMat := mat.NewDense(3, 3, []float64{
		cz, -sz, 0,
		sz, cz, 0,
		0, 0, 1,
	})
	yMat := mat.NewDense(3, 3, []float64{
		cy, 0, sy,
		0, 1, 0,
		-sy, 0, cy,
	})
	xMat := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cx, -sx,
		0, sx, cx,
	})

	var xy, rot mat.Dense
	xy.Mul(xMat, yMat)
	rot.Mul(&xy, zMat)
	return &rot
}

// RotationMatrix expresses the euler angles as a 3x3 rotation matrix.
func (ea *EulerAngles) RotationMatrix() *mat.Dense {
	return EulerToRotationMatrix(ea.Yaw, ea.Pitch, ea.Roll)
}
