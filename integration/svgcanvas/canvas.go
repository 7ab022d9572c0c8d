// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package svgcanvas writes ortskurve drawings as SVG using ajstarks/svgo.
//
// Every Stroke becomes one <path> element:
//
//	c := svgcanvas.New(w, 540, 270)
//	if err := ortskurve.Render(c, 270, 135, 100); err != nil {
//	    return err
//	}
//	return c.Close()
//
// Arcs are written as SVG elliptical arc commands. A full circle needs two of
// them, since an arc whose end point equals its start point is not drawn.
package svgcanvas

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/ortskurve"
)

// ErrNegativeRadius is returned by the Stroke following an Arc with a
// negative radius. The arc is not added to the path.
var ErrNegativeRadius = errors.New("svgcanvas: negative radius")

// DefaultPrecision is the number of decimals kept in coordinates.
const DefaultPrecision = 4

var _ ortskurve.DrawingContext = (*Canvas)(nil)

// Option configures a Canvas.
type Option func(*Canvas)

// WithPrecision sets the number of decimals written for coordinates.
// Negative values are treated as zero.
func WithPrecision(decimals int) Option {
	return func(c *Canvas) {
		c.precision = max(decimals, 0)
	}
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Canvas is an ortskurve.DrawingContext that emits SVG.
// It is not safe for concurrent use.
type Canvas struct {
	out       *errWriter
	svg       *svg.SVG
	path      strings.Builder
	hasPoint  bool
	style     string
	lineWidth float64
	precision int
	arcErr    error
	closed    bool
}

// New starts an SVG document of the given size on w.
func New(w io.Writer, width, height int, opts ...Option) *Canvas {
	out := &errWriter{w: w}
	c := &Canvas{
		out:       out,
		svg:       svg.New(out),
		style:     ortskurve.DefaultAxisColor,
		lineWidth: ortskurve.LineWidth,
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.svg.Start(width, height)
	return c
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path.Reset()
	c.hasPoint = false
}

// Arc appends an arc joined to the current point by a line.
func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	if radius < 0 {
		c.arcErr = ErrNegativeRadius
		return
	}
	sweep := ortskurve.ArcSweep(startAngle, endAngle, counterclockwise)

	sx, sy := x+radius*math.Cos(startAngle), y+radius*math.Sin(startAngle)
	if c.hasPoint {
		c.command('L', sx, sy)
	} else {
		c.command('M', sx, sy)
	}
	c.hasPoint = true
	if sweep == 0 {
		return
	}

	if math.Abs(sweep) >= 2*math.Pi {
		mid := startAngle + sweep/2
		c.arcTo(x, y, radius, mid, sweep/2)
		c.arcTo(x, y, radius, startAngle+sweep, sweep/2)
		return
	}
	c.arcTo(x, y, radius, startAngle+sweep, sweep)
}

// arcTo writes an arc command ending at angle end on the circle.
func (c *Canvas) arcTo(x, y, r, end, sweep float64) {
	large, dir := 0, 0
	if math.Abs(sweep) > math.Pi {
		large = 1
	}
	if sweep > 0 {
		dir = 1
	}
	b := &c.path
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte('A')
	b.WriteString(c.num(r))
	b.WriteByte(' ')
	b.WriteString(c.num(r))
	b.WriteString(" 0 ")
	b.WriteString(strconv.Itoa(large))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(dir))
	b.WriteByte(' ')
	b.WriteString(c.num(x + r*math.Cos(end)))
	b.WriteByte(' ')
	b.WriteString(c.num(y + r*math.Sin(end)))
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.command('M', x, y)
	c.hasPoint = true
}

// LineTo adds a line, or starts a subpath if there is no current point.
func (c *Canvas) LineTo(x, y float64) {
	if !c.hasPoint {
		c.MoveTo(x, y)
		return
	}
	c.command('L', x, y)
}

func (c *Canvas) command(op byte, x, y float64) {
	b := &c.path
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte(op)
	b.WriteString(c.num(x))
	b.WriteByte(' ')
	b.WriteString(c.num(y))
}

// SetLineWidth sets the stroke width. Non-positive and non-finite widths are
// ignored.
func (c *Canvas) SetLineWidth(width float64) {
	if !(width > 0) || math.IsInf(width, 1) {
		return
	}
	c.lineWidth = width
}

// SetStrokeStyle sets the stroke color. Tokens that ortskurve.ParseColor
// rejects are ignored.
func (c *Canvas) SetStrokeStyle(style string) {
	if _, err := ortskurve.ParseColor(style); err != nil {
		ortskurve.Logger().Warn("svgcanvas: stroke style ignored",
			slog.String("style", style), slog.Any("err", err))
		return
	}
	c.style = strings.TrimSpace(style)
}

// Stroke writes the current path as a <path> element and keeps it.
// An empty path writes nothing.
func (c *Canvas) Stroke() error {
	if err := c.arcErr; err != nil {
		c.arcErr = nil
		return err
	}
	if c.out.err != nil {
		return c.out.err
	}
	if c.path.Len() == 0 {
		return nil
	}
	c.svg.Path(c.path.String(),
		"fill:none;stroke:"+c.style+";stroke-width:"+c.num(c.lineWidth))
	return c.out.err
}

// Close ends the SVG document and returns the first write error.
// Calling Close more than once has no effect.
func (c *Canvas) Close() error {
	if !c.closed {
		c.closed = true
		c.svg.End()
	}
	return c.out.err
}

// num formats v rounded to the configured precision.
func (c *Canvas) num(v float64) string {
	p := math.Pow10(c.precision)
	v = math.Round(v*p) / p
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
