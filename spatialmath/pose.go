package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// PoseVec is a 6 element rigid motion vector: translation (tx, ty, tz)
// followed by rotation angles (rx, ry, rz) about the x, y and z axes, in
// radians.
type PoseVec []float64

// NewPoseVec assembles a PoseVec from its components.
func NewPoseVec(tx, ty, tz, rx, ry, rz float64) PoseVec {
	return PoseVec{tx, ty, tz, rx, ry, rz}
}

// CheckValid checks that the vector has all 6 motion components.
func (pv PoseVec) CheckValid() error {
	if len(pv) != 6 {
		return errors.Errorf("pose vector must have length of 6. Has length of %d", len(pv))
	}
	return nil
}

// Translation returns the translation part of the vector.
func (pv PoseVec) Translation() r3.Vector {
	return r3.Vector{X: pv[0], Y: pv[1], Z: pv[2]}
}

// EulerAngles returns the rotation part of the vector.
func (pv PoseVec) EulerAngles() *EulerAngles {
	return &EulerAngles{Roll: pv[3], Pitch: pv[4], Yaw: pv[5]}
}

// TransformMatrix assembles the 3x4 rigid transform [R|t] described by the
// vector.
func (pv PoseVec) TransformMatrix() (*mat.Dense, error) {
	if err := pv.CheckValid(); err != nil {
		return nil, err
	}
	rot := EulerToRotationMatrix(pv[5], pv[4], pv[3])
	trans := mat.NewDense(3, 1, []float64{pv[0], pv[1], pv[2]})
	var tf mat.Dense
	tf.Augment(rot, trans)
	return &tf, nil
}
