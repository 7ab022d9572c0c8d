// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package coords

import (
	"errors"
	"fmt"
	"math"
)

// Common errors returned by this package.
var (
	// ErrNoPoints is returned when a range is requested for an empty point set.
	ErrNoPoints = errors.New("coords: no points")

	// ErrEmptyRange is returned when a range cannot be mapped onto pixels.
	ErrEmptyRange = errors.New("coords: empty range")

	// ErrInvalidSize is returned for non-positive pixel dimensions.
	ErrInvalidSize = errors.New("coords: invalid size")
)

// Point is a position in plot or pixel coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Range is an axis-aligned value range.
type Range struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// RangeOf returns the smallest range that contains all points.
func RangeOf(points []Point) (Range, error) {
	if len(points) == 0 {
		return Range{}, ErrNoPoints
	}
	r := Range{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, p := range points {
		r.MinX = math.Min(r.MinX, p.X)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r, nil
}

// AxisRange returns the range of a coordinate system that shows all points
// and the origin.
func AxisRange(points []Point) (Range, error) {
	r, err := RangeOf(points)
	if err != nil {
		return Range{}, err
	}
	return r.IncludeOrigin(), nil
}

// IncludeOrigin returns r widened, where necessary, to contain (0, 0).
func (r Range) IncludeOrigin() Range {
	return Range{
		MinX: math.Min(0, r.MinX),
		MaxX: math.Max(0, r.MaxX),
		MinY: math.Min(0, r.MinY),
		MaxY: math.Max(0, r.MaxY),
	}
}

// Width returns MaxX - MinX.
func (r Range) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Range) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether p lies inside r, borders included.
func (r Range) Contains(p Point) bool {
	return r.MinX <= p.X && p.X <= r.MaxX && r.MinY <= p.Y && p.Y <= r.MaxY
}

// String returns the limits as "x=[min, max] y=[min, max]".
func (r Range) String() string {
	return fmt.Sprintf("x=[%g, %g] y=[%g, %g]", r.MinX, r.MaxX, r.MinY, r.MaxY)
}

func (r Range) finite() bool {
	for _, v := range [...]float64{r.MinX, r.MaxX, r.MinY, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
