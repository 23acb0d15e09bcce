package rimage

import (
	"math"

	"github.com/golang/geo/r2"
)

// BilinearSample interpolates the image at the continuous pixel position pt
// from the four surrounding pixels, weighting each by the area of overlap.
// Neighbor taps outside the image contribute zero, so positions past the
// border fade to black rather than clamping to the edge.
func BilinearSample(pt r2.Point, img *Image) (float64, float64, float64) {
	x0 := int(math.Floor(pt.X))
	y0 := int(math.Floor(pt.Y))

	var c0, c1, c2 float64
	for _, n := range [4][2]int{{x0, y0}, {x0 + 1, y0}, {x0, y0 + 1}, {x0 + 1, y0 + 1}} {
		if !img.In(n[0], n[1]) {
			continue
		}
		area := (1 - math.Abs(float64(n[0])-pt.X)) * (1 - math.Abs(float64(n[1])-pt.Y))
		v0, v1, v2 := img.GetXY(n[0], n[1])
		c0 += area * v0
		c1 += area * v1
		c2 += area * v2
	}
	return c0, c1, c2
}
