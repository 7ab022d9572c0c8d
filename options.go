// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ortskurve

// Option configures a single Render call.
//
// Example:
//
//	// Default green
//	ortskurve.Render(dc, 100, 100, 50)
//
//	// Red
//	ortskurve.Render(dc, 100, 100, 50, ortskurve.WithColor("#ff0000"))
type Option func(*renderOptions)

// renderOptions holds the optional parameters of Render.
type renderOptions struct {
	color string
}

// defaultOptions returns the default render options.
func defaultOptions() renderOptions {
	return renderOptions{
		color: DefaultColor,
	}
}

// WithColor sets the stroke color of circle and crosshair.
// The token is passed to DrawingContext.SetStrokeStyle unchanged.
func WithColor(color string) Option {
	return func(o *renderOptions) {
		o.color = color
	}
}

// FigureOption configures a Figure during creation.
//
// Example:
//
//	fig, err := ortskurve.NewFigure(points, center, r,
//	    ortskurve.WithSize(800, 400),
//	    ortskurve.WithLocusColor("#ff0000"))
type FigureOption func(*figureOptions)

// figureOptions holds the optional parameters of NewFigure.
type figureOptions struct {
	width, height    float64
	locusColor       string
	axisColor        string
	measurementColor string
}

// defaultFigureOptions returns the default figure options.
func defaultFigureOptions() figureOptions {
	return figureOptions{
		width:            DefaultFigureWidth,
		height:           DefaultFigureHeight,
		locusColor:       DefaultColor,
		axisColor:        DefaultAxisColor,
		measurementColor: DefaultMeasurementColor,
	}
}

// WithSize sets the drawing area of the figure in pixels.
func WithSize(width, height float64) FigureOption {
	return func(o *figureOptions) {
		o.width = width
		o.height = height
	}
}

// WithLocusColor sets the color of the locus circle and its center marker.
func WithLocusColor(color string) FigureOption {
	return func(o *figureOptions) {
		o.locusColor = color
	}
}

// WithAxisColor sets the color of the coordinate axes.
func WithAxisColor(color string) FigureOption {
	return func(o *figureOptions) {
		o.axisColor = color
	}
}

// WithMeasurementColor sets the color of the measurement markers.
func WithMeasurementColor(color string) FigureOption {
	return func(o *figureOptions) {
		o.measurementColor = color
	}
}
