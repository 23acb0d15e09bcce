package transform

import (
	"image"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// pixelGridCache caches homogeneous pixel coordinate grids by frame size so
// repeated warps of same sized frames do not regenerate their index grids.
// Cached grids are read only once stored; callers must not write to them.
type pixelGridCache struct {
	mu    sync.RWMutex
	grids map[image.Point]*mat.Dense
}

// grid returns the 3x(width*height) homogeneous pixel grid for the given
// frame size, building and storing it on first use. Row 0 holds column
// indices, row 1 row indices, row 2 ones; column j corresponds to pixel
// (j%width, j/width).
func (c *pixelGridCache) grid(width, height int) *mat.Dense {
	key := image.Point{width, height}
	c.mu.RLock()
	cached, ok := c.grids[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	built := buildPixelGrid(width, height)

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.grids[key]; ok {
		return cached
	}
	if c.grids == nil {
		c.grids = map[image.Point]*mat.Dense{}
	}
	c.grids[key] = built
	return built
}

func buildPixelGrid(width, height int) *mat.Dense {
	n := width * height
	data := make([]float64, 3*n)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			j := y*width + x
			data[j] = float64(x)
			data[n+j] = float64(y)
			data[2*n+j] = 1
		}
	}
	return mat.NewDense(3, n, data)
}
