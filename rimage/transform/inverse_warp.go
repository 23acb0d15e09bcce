package transform

import (
	"context"
	"image"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/depthwarp/rimage"
	"github.com/viam-labs/depthwarp/spatialmath"
	"github.com/viam-labs/depthwarp/utils"
)

// defaultProjector backs the package level InverseWarp so unrelated callers
// share one pixel grid cache per process.
var defaultProjector Projector

func checkFrame(
	src *rimage.Image,
	depth *rimage.DepthMap,
	pose spatialmath.PoseVec,
	intrinsics, intrinsicsInv mat.Matrix,
) error {
	if src == nil {
		return errors.New("source image is nil")
	}
	if depth == nil {
		return errors.New("depth map is nil")
	}
	if src.Width() != depth.Width() || src.Height() != depth.Height() {
		return errors.Errorf("source image and depth map dimensions don't match Image(%d,%d) != Depth(%d,%d)",
			src.Width(), src.Height(), depth.Width(), depth.Height())
	}
	if src.Width() == 0 || src.Height() == 0 {
		return errors.Errorf("wrong size for source image, expected non empty frame, got (%d,%d)", src.Width(), src.Height())
	}
	if err := pose.CheckValid(); err != nil {
		return err
	}
	if err := checkMatDims("intrinsics", intrinsics, 3, 3); err != nil {
		return err
	}
	return checkMatDims("intrinsicsInv", intrinsicsInv, 3, 3)
}

// WarpFrame inverse warps a single source frame onto the target frame
// described by the depth map and the target-to-source pose. It returns the
// warped image along with the source coordinates that were sampled, whose
// InBounds method reports which target pixels actually landed inside the
// source frame.
func (proj *Projector) WarpFrame(
	src *rimage.Image,
	depth *rimage.DepthMap,
	pose spatialmath.PoseVec,
	intrinsics, intrinsicsInv mat.Matrix,
) (*rimage.Image, *SourceCoords, error) {
	if err := checkFrame(src, depth, pose, intrinsics, intrinsicsInv); err != nil {
		return nil, nil, err
	}

	cam, err := proj.PixelToCam(depth, intrinsicsInv)
	if err != nil {
		return nil, nil, err
	}
	tf, err := pose.TransformMatrix()
	if err != nil {
		return nil, nil, err
	}

	// combined camera-to-source-pixel projection
	var projMat mat.Dense
	projMat.Mul(intrinsics, tf)

	coords, err := CamToPixel(cam, &projMat, src.Width(), src.Height())
	if err != nil {
		return nil, nil, err
	}
	return resample(src, coords), coords, nil
}

// resample samples the source image at every target pixel's source
// coordinates, with zero fill for positions outside the frame.
func resample(src *rimage.Image, coords *SourceCoords) *rimage.Image {
	out := rimage.NewImage(coords.Width(), coords.Height())
	utils.ParallelForEachPixel(image.Point{X: coords.Width(), Y: coords.Height()}, func(x, y int) {
		c0, c1, c2 := rimage.BilinearSample(coords.PixelPoint(x, y), src)
		out.SetXY(x, y, c0, c1, c2)
	})
	return out
}

// InverseWarp warps a batch of source frames onto their target frames using
// the process wide projector. See Projector.InverseWarp.
func InverseWarp(
	ctx context.Context,
	src []*rimage.Image,
	depth []*rimage.DepthMap,
	pose []spatialmath.PoseVec,
	intrinsics, intrinsicsInv []*mat.Dense,
	logger golog.Logger,
) ([]*rimage.Image, error) {
	return defaultProjector.InverseWarp(ctx, src, depth, pose, intrinsics, intrinsicsInv, logger)
}

// InverseWarp warps a batch of source frames onto their target frames. All
// slices must have the same length and every frame is validated before any
// computation begins; frames are then warped in parallel. Element i of the
// result is src[i] resampled at the locations where the pixels of target
// frame i land after unprojection through depth[i] and reprojection through
// pose[i].
func (proj *Projector) InverseWarp(
	ctx context.Context,
	src []*rimage.Image,
	depth []*rimage.DepthMap,
	pose []spatialmath.PoseVec,
	intrinsics, intrinsicsInv []*mat.Dense,
	logger golog.Logger,
) ([]*rimage.Image, error) {
	batch := len(src)
	if batch == 0 {
		return nil, errors.New("empty batch")
	}
	if len(depth) != batch || len(pose) != batch || len(intrinsics) != batch || len(intrinsicsInv) != batch {
		return nil, errors.Errorf(
			"mismatched batch sizes: %d source images, %d depth maps, %d poses, %d intrinsics, %d inverse intrinsics",
			batch, len(depth), len(pose), len(intrinsics), len(intrinsicsInv))
	}
	for i := 0; i < batch; i++ {
		if intrinsics[i] == nil || intrinsicsInv[i] == nil {
			return nil, errors.Errorf("frame %d: intrinsics matrices are nil", i)
		}
		if err := checkFrame(src[i], depth[i], pose[i], intrinsics[i], intrinsicsInv[i]); err != nil {
			return nil, errors.Wrapf(err, "frame %d", i)
		}
	}
	logger.Debugf("warping %d frame(s) of size %dx%d", batch, src[0].Width(), src[0].Height())

	out := make([]*rimage.Image, batch)
	fs := make([]utils.SimpleFunc, batch)
	for i := 0; i < batch; i++ {
		i := i
		fs[i] = func(ctx context.Context) error {
			warped, _, err := proj.WarpFrame(src[i], depth[i], pose[i], intrinsics[i], intrinsicsInv[i])
			if err != nil {
				return errors.Wrapf(err, "frame %d", i)
			}
			out[i] = warped
			return nil
		}
	}
	if _, err := utils.RunInParallel(ctx, fs); err != nil {
		return nil, err
	}
	return out, nil
}
