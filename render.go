// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ortskurve

import (
	"log/slog"
	"math"
)

const (
	// DefaultColor is the stroke color used when no color is given.
	DefaultColor = "#00cc00"

	// CrosshairHalfLength is the distance from the center to each end of the
	// crosshair segments.
	CrosshairHalfLength = 5.0

	// LineWidth is the stroke width of circle and crosshair.
	LineWidth = 1.0
)

// Render draws a locus curve: a circle of the given radius around
// (centerX, centerY) and a crosshair on the center, both stroked in the same
// color. The color is DefaultColor unless WithColor is given.
//
// Render performs no validation. A zero radius yields a degenerate circle and a
// negative radius is handed to dc.Arc unchanged. The first error returned by
// dc.Stroke ends the drawing and is returned as is.
func Render(dc DrawingContext, centerX, centerY, radius float64, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	Logger().Debug("ortskurve: render",
		slog.Float64("cx", centerX),
		slog.Float64("cy", centerY),
		slog.Float64("r", radius),
		slog.String("color", o.color))

	// Circle
	dc.BeginPath()
	dc.Arc(centerX, centerY, radius, 0, 2*math.Pi, false)
	dc.SetLineWidth(LineWidth)
	dc.SetStrokeStyle(o.color)
	if err := dc.Stroke(); err != nil {
		return err
	}

	// Center marker; the line width carries over from the circle.
	dc.BeginPath()
	dc.MoveTo(centerX-CrosshairHalfLength, centerY)
	dc.LineTo(centerX+CrosshairHalfLength, centerY)
	dc.MoveTo(centerX, centerY-CrosshairHalfLength)
	dc.LineTo(centerX, centerY+CrosshairHalfLength)
	dc.SetStrokeStyle(o.color)
	return dc.Stroke()
}

// RenderColor is Render with an explicit stroke color.
func RenderColor(dc DrawingContext, centerX, centerY, radius float64, color string) error {
	return Render(dc, centerX, centerY, radius, WithColor(color))
}
