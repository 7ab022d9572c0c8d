// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package coords

import (
	"fmt"
	"math"
)

// Converter maps plot coordinates to pixel coordinates.
// It is immutable and safe for concurrent use.
type Converter struct {
	scale  float64
	origin Point // pixel position of (0, 0)
}

// NewConverter returns a converter that fits r into a width x height pixel
// area. The dimension that limits the scale is filled completely; the other
// one is centered.
//
// Returns ErrInvalidSize if width or height is not positive and ErrEmptyRange
// if r has non-finite limits, inverted limits, or zero extent in both
// dimensions.
func NewConverter(r Range, width, height float64) (*Converter, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: width=%g, height=%g", ErrInvalidSize, width, height)
	}
	if !r.finite() || r.Width() < 0 || r.Height() < 0 || (r.Width() == 0 && r.Height() == 0) {
		return nil, fmt.Errorf("%w: %v", ErrEmptyRange, r)
	}

	// A zero extent yields an infinite factor, so the other dimension wins.
	sx := width / r.Width()
	sy := height / r.Height()

	c := &Converter{}
	if sx < sy {
		c.scale = sx
		spare := height - r.Height()*c.scale
		c.origin = Point{
			X: -r.MinX * c.scale,
			Y: 0.5*spare + r.MaxY*c.scale,
		}
	} else {
		c.scale = sy
		spare := width - r.Width()*c.scale
		c.origin = Point{
			X: 0.5*spare - r.MinX*c.scale,
			Y: r.MaxY * c.scale,
		}
	}
	return c, nil
}

// Scale returns the number of pixels per plot unit.
func (c *Converter) Scale() float64 {
	return c.scale
}

// Origin returns the pixel position of the plot origin.
func (c *Converter) Origin() Point {
	return c.origin
}

// Pixel converts a plot point to pixel coordinates.
func (c *Converter) Pixel(p Point) Point {
	return Point{
		X: c.origin.X + p.X*c.scale,
		Y: c.origin.Y - p.Y*c.scale,
	}
}

// Pixels converts a slice of plot points.
func (c *Converter) Pixels(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = c.Pixel(p)
	}
	return out
}

// Length converts a plot distance to pixels.
func (c *Converter) Length(l float64) float64 {
	return l * c.scale
}

func (c *Converter) String() string {
	return fmt.Sprintf("scale=%g origin=%v", c.scale, c.origin)
}
