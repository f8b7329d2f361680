package model

import "math"

// Point is a position in virtual device coordinates
type Point struct {
	X, Y uint16
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X) - float64(other.X)
	dy := float64(p.Y) - float64(other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Extent is the VDC window of a picture, stored in file order.
type Extent struct {
	BottomLeft Point
	TopRight   Point
}

// DefaultExtent returns the VDC window used when a picture declares none.
func DefaultExtent() Extent {
	return Extent{
		BottomLeft: Point{0, 0},
		TopRight:   Point{32767, 32767},
	}
}

// Width returns the absolute horizontal size of the window
func (e Extent) Width() int {
	return absDiff(e.TopRight.X, e.BottomLeft.X)
}

// Height returns the absolute vertical size of the window
func (e Extent) Height() int {
	return absDiff(e.TopRight.Y, e.BottomLeft.Y)
}

func absDiff(a, b uint16) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Colour is a direct RGB colour with 8 bits per channel.
type Colour struct {
	R, G, B uint8
}

// Black is the zero Colour.
var Black = Colour{}

// RGBA implements image/color.Color. Colours are always opaque.
func (c Colour) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// ColourExtent is the declared range of direct colour values.
type ColourExtent struct {
	Min Colour
	Max Colour
}

// DefaultColourExtent returns the full 8-bit range.
func DefaultColourExtent() ColourExtent {
	return ColourExtent{
		Min: Colour{0, 0, 0},
		Max: Colour{255, 255, 255},
	}
}

// Orientation holds the character up and base vectors
type Orientation struct {
	XUp, YUp     uint16
	XBase, YBase uint16
}
