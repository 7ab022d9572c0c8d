// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fogleman draws ortskurve figures with github.com/fogleman/gg.
//
//	dc := gg.NewContext(540, 270)
//	if err := ortskurve.Render(fogleman.New(dc), 270, 135, 100); err != nil {
//	    return err
//	}
//	_ = dc.SavePNG("locus.png")
//
// fogleman/gg approximates arcs with quadratic segments and already joins an
// arc to the current point. Stroke keeps the path like the HTML canvas does.
package fogleman

import (
	"log/slog"

	"github.com/fogleman/gg"
	"github.com/gogpu/ortskurve"
)

var _ ortskurve.DrawingContext = (*Surface)(nil)

// Surface adapts a fogleman gg.Context to ortskurve.DrawingContext.
// It is not safe for concurrent use.
type Surface struct {
	dc *gg.Context
}

// New wraps dc and clears its path.
func New(dc *gg.Context) *Surface {
	dc.ClearPath()
	return &Surface{dc: dc}
}

// Context returns the wrapped context.
func (s *Surface) Context() *gg.Context { return s.dc }

func (s *Surface) BeginPath() { s.dc.ClearPath() }

// Arc adds an arc. The end angle is derived from the canvas sweep rules,
// so counterclockwise arcs are drawn with a decreasing angle.
func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	sweep := ortskurve.ArcSweep(startAngle, endAngle, counterclockwise)
	s.dc.DrawArc(x, y, radius, startAngle, startAngle+sweep)
}

func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

func (s *Surface) SetLineWidth(width float64) { s.dc.SetLineWidth(width) }

// SetStrokeStyle sets the stroke color. Unparsable tokens are ignored.
func (s *Surface) SetStrokeStyle(style string) {
	c, err := ortskurve.ParseColor(style)
	if err != nil {
		ortskurve.Logger().Warn("fogleman: stroke style ignored",
			slog.String("style", style), slog.Any("err", err))
		return
	}
	s.dc.SetColor(c)
}

// Stroke strokes the path without clearing it. It never fails.
func (s *Surface) Stroke() error {
	s.dc.StrokePreserve()
	return nil
}
