// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ortskurve

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/ortskurve/coords"
)

const (
	// DefaultFigureWidth and DefaultFigureHeight are the default drawing area
	// of a Figure in pixels.
	DefaultFigureWidth  = 540.0
	DefaultFigureHeight = 270.0

	// DefaultAxisColor is the default color of the coordinate axes.
	DefaultAxisColor = "#000000"

	// DefaultMeasurementColor is the default color of measurement markers.
	DefaultMeasurementColor = "#0000ff"

	// MeasurementMarkerRadius is the radius of the circle marking a
	// measured point, in pixels.
	MeasurementMarkerRadius = 2.0
)

// Locus is a locus circle converted to pixel coordinates.
type Locus struct {
	Center coords.Point // pixels
	Radius float64      // pixels
}

// NewLocus converts a circle given in plot coordinates.
func NewLocus(center coords.Point, radius float64, c *coords.Converter) Locus {
	return Locus{
		Center: c.Pixel(center),
		Radius: c.Length(radius),
	}
}

// Draw renders the locus with Render.
func (l Locus) Draw(dc DrawingContext, opts ...Option) error {
	return Render(dc, l.Center.X, l.Center.Y, l.Radius, opts...)
}

func (l Locus) String() string {
	return fmt.Sprintf("center=%v radius=%g", l.Center, l.Radius)
}

// Measurements are measured points converted to pixel coordinates.
type Measurements []coords.Point

// NewMeasurements converts measured points given in plot coordinates.
func NewMeasurements(points []coords.Point, c *coords.Converter) Measurements {
	return Measurements(c.Pixels(points))
}

// Draw strokes a small circle around every point, one path per point.
func (m Measurements) Draw(dc DrawingContext, color string) error {
	for _, p := range m {
		dc.BeginPath()
		dc.Arc(p.X, p.Y, MeasurementMarkerRadius, 0, 2*math.Pi, false)
		dc.SetLineWidth(LineWidth)
		dc.SetStrokeStyle(color)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// DrawAxes strokes both coordinate axes as a single path.
func DrawAxes(dc DrawingContext, a coords.Axes, color string) error {
	dc.BeginPath()
	dc.MoveTo(a.XStart.X, a.XStart.Y)
	dc.LineTo(a.XEnd.X, a.XEnd.Y)
	dc.MoveTo(a.YStart.X, a.YStart.Y)
	dc.LineTo(a.YEnd.X, a.YEnd.Y)
	dc.SetLineWidth(LineWidth)
	dc.SetStrokeStyle(color)
	return dc.Stroke()
}

// Figure is a complete locus plot in pixel coordinates: coordinate axes,
// measured points and the locus circle.
type Figure struct {
	Range        coords.Range
	Converter    *coords.Converter
	Axes         coords.Axes
	Locus        Locus
	Measurements Measurements

	width, height    float64
	locusColor       string
	axisColor        string
	measurementColor string
}

// NewFigure lays out a plot of the measured points and the circle with the
// given center and radius. The coordinate system covers the points, the four
// extreme points of the circle and the origin, and is fitted into the figure
// size (DefaultFigureWidth x DefaultFigureHeight unless WithSize is given).
//
// Returns the coords errors ErrInvalidSize or ErrEmptyRange when the layout
// cannot be mapped onto pixels.
func NewFigure(measurements []coords.Point, center coords.Point, radius float64, opts ...FigureOption) (*Figure, error) {
	o := defaultFigureOptions()
	for _, opt := range opts {
		opt(&o)
	}

	points := make([]coords.Point, 0, len(measurements)+4)
	points = append(points, measurements...)
	points = append(points,
		coords.Pt(center.X-radius, center.Y),
		coords.Pt(center.X+radius, center.Y),
		coords.Pt(center.X, center.Y+radius),
		coords.Pt(center.X, center.Y-radius),
	)

	r, err := coords.AxisRange(points)
	if err != nil {
		return nil, fmt.Errorf("ortskurve: figure: %w", err)
	}
	conv, err := coords.NewConverter(r, o.width, o.height)
	if err != nil {
		Logger().Warn("ortskurve: figure cannot be laid out",
			slog.String("range", r.String()),
			slog.Float64("width", o.width),
			slog.Float64("height", o.height))
		return nil, fmt.Errorf("ortskurve: figure: %w", err)
	}

	f := &Figure{
		Range:            r,
		Converter:        conv,
		Axes:             coords.NewAxes(r, conv),
		Locus:            NewLocus(center, radius, conv),
		Measurements:     NewMeasurements(measurements, conv),
		width:            o.width,
		height:           o.height,
		locusColor:       o.locusColor,
		axisColor:        o.axisColor,
		measurementColor: o.measurementColor,
	}
	Logger().Debug("ortskurve: figure",
		slog.String("range", r.String()),
		slog.String("converter", conv.String()),
		slog.String("locus", f.Locus.String()))
	return f, nil
}

// Size returns the drawing area of the figure in pixels.
func (f *Figure) Size() (width, height float64) {
	return f.width, f.height
}

// Draw renders axes, measurement markers and the locus, in that order.
func (f *Figure) Draw(dc DrawingContext) error {
	if err := DrawAxes(dc, f.Axes, f.axisColor); err != nil {
		return err
	}
	if err := f.Measurements.Draw(dc, f.measurementColor); err != nil {
		return err
	}
	return f.Locus.Draw(dc, WithColor(f.locusColor))
}
