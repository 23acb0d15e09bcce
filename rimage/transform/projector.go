package transform

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/depthwarp/rimage"
)

const (
	// OutOfBounds is written over normalized coordinates whose projection
	// falls outside the source frame. It pushes the sampling position fully
	// outside the bilinear sampler's support, so masked pixels resolve to
	// zero instead of blending with border pixels.
	OutOfBounds = 2.0

	// MinProjectionDepth is the smallest projective depth used in the
	// perspective division. Points at or behind the camera are clamped to it
	// rather than dividing by zero or a negative depth.
	MinProjectionDepth = 1e-3
)

// Projector converts pixels of a target frame into 3D camera coordinates and
// back into pixels of a source frame. The zero value is ready to use; it
// caches one homogeneous pixel grid per frame size, so keep a Projector
// around when warping many frames of the same size.
type Projector struct {
	cache pixelGridCache
}

func checkMatDims(name string, m mat.Matrix, rows, cols int) error {
	r, c := m.Dims()
	if r != rows || c != cols {
		return errors.Errorf("wrong size for %s, expected %dx%d, got %dx%d", name, rows, cols, r, c)
	}
	return nil
}

// PixelToCam lifts every pixel of the depth map into 3D camera frame
// coordinates using the inverse intrinsics matrix. The result is
// 3x(width*height) with column j holding the point for pixel
// (j%width, j/width), each ray scaled by its pixel's depth.
func (proj *Projector) PixelToCam(depth *rimage.DepthMap, intrinsicsInv mat.Matrix) (*mat.Dense, error) {
	if depth == nil {
		return nil, errors.New("input DepthMap is nil")
	}
	if err := checkMatDims("intrinsicsInv", intrinsicsInv, 3, 3); err != nil {
		return nil, err
	}
	width, height := depth.Width(), depth.Height()

	var cam mat.Dense
	cam.Mul(intrinsicsInv, proj.cache.grid(width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := depth.GetDepth(x, y)
			j := y*width + x
			cam.Set(0, j, cam.At(0, j)*d)
			cam.Set(1, j, cam.At(1, j)*d)
			cam.Set(2, j, cam.At(2, j)*d)
		}
	}
	return &cam, nil
}

// CamToPixel projects 3D camera frame points through a 3x4 camera-to-source
// projection matrix (intrinsics composed with the relative pose) and
// normalizes the resulting source pixel positions so both axes span [-1, 1]
// across the frame. Positions outside that range are overwritten with
// OutOfBounds, each axis masked independently.
func CamToPixel(cam mat.Matrix, proj mat.Matrix, width, height int) (*SourceCoords, error) {
	if err := checkMatDims("projection", proj, 3, 4); err != nil {
		return nil, err
	}
	n := width * height
	if err := checkMatDims("camera coordinates", cam, 3, n); err != nil {
		return nil, err
	}

	rot := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot.Set(i, j, proj.At(i, j))
		}
	}
	tx, ty, tz := proj.At(0, 3), proj.At(1, 3), proj.At(2, 3)

	var pc mat.Dense
	pc.Mul(rot, cam)

	sc := &SourceCoords{
		width:  width,
		height: height,
		x:      make([]float64, n),
		y:      make([]float64, n),
	}
	for j := 0; j < n; j++ {
		px := pc.At(0, j) + tx
		py := pc.At(1, j) + ty
		pz := pc.At(2, j) + tz
		if pz < MinProjectionDepth {
			pz = MinProjectionDepth
		}

		xNorm := 2*(px/pz)/float64(width-1) - 1
		if xNorm < -1 || xNorm > 1 {
			xNorm = OutOfBounds
		}
		yNorm := 2*(py/pz)/float64(height-1) - 1
		if yNorm < -1 || yNorm > 1 {
			yNorm = OutOfBounds
		}
		sc.x[j] = xNorm
		sc.y[j] = yNorm
	}
	return sc, nil
}

// SourceCoords holds, for every pixel of a target frame, the matching
// sampling position in a source frame, with each axis normalized to [-1, 1]
// across the frame, or set to OutOfBounds when the projection missed it.
type SourceCoords struct {
	width, height int
	x, y          []float64
}

// Width returns the horizontal width of the coordinate grid.
func (sc *SourceCoords) Width() int {
	return sc.width
}

// Height returns the vertical height of the coordinate grid.
func (sc *SourceCoords) Height() int {
	return sc.height
}

// At returns the normalized sampling position for target pixel (x, y).
func (sc *SourceCoords) At(x, y int) r2.Point {
	j := y*sc.width + x
	return r2.Point{X: sc.x[j], Y: sc.y[j]}
}

// PixelPoint returns the sampling position for target pixel (x, y) mapped
// back into source pixel space.
func (sc *SourceCoords) PixelPoint(x, y int) r2.Point {
	p := sc.At(x, y)
	return r2.Point{
		X: (p.X + 1) / 2 * float64(sc.width-1),
		Y: (p.Y + 1) / 2 * float64(sc.height-1),
	}
}

// InBounds reports whether the sampling position for target pixel (x, y)
// landed inside the source frame on both axes.
func (sc *SourceCoords) InBounds(x, y int) bool {
	p := sc.At(x, y)
	return p.X >= -1 && p.X <= 1 && p.Y >= -1 && p.Y <= 1
}
