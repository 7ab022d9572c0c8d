// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package plotvg draws ortskurve figures on gonum/plot vector canvases
// (vgimg, vgsvg, vgpdf, vgeps, vgtex or any other vg.CanvasSizer).
//
//	c := vgsvg.New(540, 270)
//	if err := ortskurve.Render(plotvg.New(c), 270, 135, 100); err != nil {
//	    return err
//	}
//	_, err := c.WriteTo(w)
//
// vg canvases have the y axis pointing up. Surface flips each stroke so that
// coordinates keep the canvas convention: origin top left, y pointing down,
// one unit per vg point.
package plotvg

import (
	"log/slog"
	"math"

	"github.com/gogpu/ortskurve"
	"gonum.org/v1/plot/vg"
)

var _ ortskurve.DrawingContext = (*Surface)(nil)

// Surface adapts a vg.CanvasSizer to ortskurve.DrawingContext.
// It is not safe for concurrent use.
type Surface struct {
	c        vg.CanvasSizer
	path     vg.Path
	hasPoint bool
}

// New wraps c.
func New(c vg.CanvasSizer) *Surface {
	return &Surface{c: c}
}

// Canvas returns the wrapped canvas.
func (s *Surface) Canvas() vg.CanvasSizer { return s.c }

// BeginPath discards the current path.
func (s *Surface) BeginPath() {
	s.path = s.path[:0]
	s.hasPoint = false
}

// Arc adds an arc. The path is moved or lined to the arc start first, so the
// join does not depend on how the vg backend treats arc components.
func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	sweep := ortskurve.ArcSweep(startAngle, endAngle, counterclockwise)
	start := vg.Point{
		X: vg.Length(x + radius*math.Cos(startAngle)),
		Y: vg.Length(y + radius*math.Sin(startAngle)),
	}
	if s.hasPoint {
		s.path.Line(start)
	} else {
		s.path.Move(start)
	}
	s.hasPoint = true
	if sweep == 0 {
		return
	}
	s.path.Arc(vg.Point{X: vg.Length(x), Y: vg.Length(y)}, vg.Length(radius), startAngle, sweep)
}

// MoveTo starts a new subpath.
func (s *Surface) MoveTo(x, y float64) {
	s.path.Move(vg.Point{X: vg.Length(x), Y: vg.Length(y)})
	s.hasPoint = true
}

// LineTo adds a line, or starts a subpath if there is no current point.
func (s *Surface) LineTo(x, y float64) {
	if !s.hasPoint {
		s.MoveTo(x, y)
		return
	}
	s.path.Line(vg.Point{X: vg.Length(x), Y: vg.Length(y)})
}

// SetLineWidth sets the stroke width in points.
func (s *Surface) SetLineWidth(width float64) {
	s.c.SetLineWidth(vg.Length(width))
}

// SetStrokeStyle sets the canvas color. Unparsable tokens are ignored.
func (s *Surface) SetStrokeStyle(style string) {
	col, err := ortskurve.ParseColor(style)
	if err != nil {
		ortskurve.Logger().Warn("plotvg: stroke style ignored",
			slog.String("style", style), slog.Any("err", err))
		return
	}
	s.c.SetColor(col)
}

// Stroke strokes the current path and keeps it. It never fails.
func (s *Surface) Stroke() error {
	if len(s.path) == 0 {
		return nil
	}
	_, h := s.c.Size()
	s.c.Push()
	s.c.Translate(vg.Point{Y: h})
	s.c.Scale(1, -1)
	s.c.Stroke(s.path)
	s.c.Pop()
	return nil
}
