// Package rimage defines the dense image and depth map containers the
// warping pipeline operates on.
package rimage

import (
	"image"
	"image/color"
	"math"
)

// Image is a three channel image with float64 samples, stored planar: all of
// channel 0 first, then channel 1, then channel 2, each row major. Samples
// follow the 8 bit convention of [0, 255] when converted from a stdlib
// image, but any float values are allowed.
type Image struct {
	width, height int
	data          []float64
}

// NewImage returns a black image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		data:   make([]float64, 3*width*height),
	}
}

// NewImageFromImage converts a stdlib image into an Image, mapping each
// channel to [0, 255].
func NewImageFromImage(img image.Image) *Image {
	bounds := img.Bounds()
	out := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.SetXY(x, y, float64(r)/257, float64(g)/257, float64(b)/257)
		}
	}
	return out
}

// Width returns the horizontal width of the image.
func (i *Image) Width() int {
	return i.width
}

// Height returns the vertical height of the image.
func (i *Image) Height() int {
	return i.height
}

// In returns whether the positions x, y are in the image.
func (i *Image) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < i.width && y < i.height
}

func (i *Image) kxy(x, y int) int {
	return (y * i.width) + x
}

// GetXY returns the three channel values at the given position.
func (i *Image) GetXY(x, y int) (float64, float64, float64) {
	k := i.kxy(x, y)
	n := i.width * i.height
	return i.data[k], i.data[n+k], i.data[2*n+k]
}

// SetXY sets the three channel values at the given position.
func (i *Image) SetXY(x, y int, c0, c1, c2 float64) {
	k := i.kxy(x, y)
	n := i.width * i.height
	i.data[k] = c0
	i.data[n+k] = c1
	i.data[2*n+k] = c2
}

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.width, i.height)
}

// At implements image.Image, clipping samples to the displayable [0, 255]
// range.
func (i *Image) At(x, y int) color.Color {
	c0, c1, c2 := i.GetXY(x, y)
	return color.RGBA64{
		R: uint16(math.Round(clip255(c0) * 257)),
		G: uint16(math.Round(clip255(c1) * 257)),
		B: uint16(math.Round(clip255(c2) * 257)),
		A: math.MaxUint16,
	}
}

func clip255(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}
