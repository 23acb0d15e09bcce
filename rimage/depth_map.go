package rimage

import "github.com/pkg/errors"

// DepthMap is a dense map of per pixel scene depth, row major.
type DepthMap struct {
	width, height int
	data          []float64
}

// NewEmptyDepthMap returns an all zero depth map of the given dimensions.
func NewEmptyDepthMap(width, height int) *DepthMap {
	return &DepthMap{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// NewDepthMapFromData wraps row major depth data in a DepthMap.
func NewDepthMapFromData(data []float64, width, height int) (*DepthMap, error) {
	if len(data) != width*height {
		return nil, errors.Errorf("depth data must have length of %d. Has length of %d", width*height, len(data))
	}
	return &DepthMap{width: width, height: height, data: data}, nil
}

// Width returns the horizontal width of the depth map.
func (dm *DepthMap) Width() int {
	return dm.width
}

// Height returns the vertical height of the depth map.
func (dm *DepthMap) Height() int {
	return dm.height
}

// GetDepth returns the depth at the given position.
func (dm *DepthMap) GetDepth(x, y int) float64 {
	return dm.data[y*dm.width+x]
}

// Set sets the depth at the given position.
func (dm *DepthMap) Set(x, y int, d float64) {
	dm.data[y*dm.width+x] = d
}
