// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ortskurve

// DrawingContext is an immediate-mode 2D drawing surface with canvas
// semantics. Path construction accumulates into a current path that is only
// discarded by BeginPath; Stroke renders the current path with the current
// line width and stroke style and leaves the path in place.
//
// Implementations are owned by the caller. The renderers in this package borrow
// a DrawingContext for the duration of one call and never retain it.
type DrawingContext interface {
	// BeginPath discards the current path.
	BeginPath()

	// Arc adds a circular arc centered at (x, y). Angles are in radians,
	// measured from the positive x axis towards the positive y axis. If the
	// path has a current point, a straight line joins it to the arc start.
	Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool)

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight line from the current point to (x, y).
	LineTo(x, y float64)

	// SetLineWidth sets the stroke width in surface units.
	SetLineWidth(width float64)

	// SetStrokeStyle sets the stroke color from a style token such as
	// "#00cc00" or "green". See ParseColor for the accepted syntax.
	SetStrokeStyle(style string)

	// Stroke renders the outline of the current path.
	Stroke() error
}
