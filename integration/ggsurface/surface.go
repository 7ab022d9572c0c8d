// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ortskurve"
)

// Ensure Surface implements ortskurve.DrawingContext.
var _ ortskurve.DrawingContext = (*Surface)(nil)

// maxSegmentAngle is the largest angle covered by one cubic Bezier segment.
const maxSegmentAngle = math.Pi / 2

// Surface adapts a gg.Context to ortskurve.DrawingContext.
type Surface struct {
	dc       *gg.Context
	hasPoint bool // current path has a current point
}

// New wraps dc. The context's path is cleared so the Surface starts with an
// empty path, but color, line width and transform are left as they are.
func New(dc *gg.Context) *Surface {
	dc.ClearPath()
	return &Surface{dc: dc}
}

// Context returns the wrapped gg.Context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// BeginPath discards the current path.
func (s *Surface) BeginPath() {
	s.dc.ClearPath()
	s.hasPoint = false
}

// Arc adds a circular arc as a chain of cubic Bezier segments.
func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	sweep := ortskurve.ArcSweep(startAngle, endAngle, counterclockwise)

	sx := x + radius*math.Cos(startAngle)
	sy := y + radius*math.Sin(startAngle)
	if s.hasPoint {
		s.dc.LineTo(sx, sy)
	} else {
		s.dc.MoveTo(sx, sy)
	}
	s.hasPoint = true

	n := int(math.Ceil(math.Abs(sweep) / maxSegmentAngle))
	if n == 0 {
		return
	}
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		a1 := startAngle + float64(i)*step
		s.arcSegment(x, y, radius, a1, a1+step)
	}
}

// arcSegment appends one cubic approximating the arc from a1 to a2.
// The control point distance is odd in (a2-a1), so negative steps work.
func (s *Surface) arcSegment(cx, cy, r, a1, a2 float64) {
	d := a2 - a1
	t := math.Tan(d / 2)
	alpha := math.Sin(d) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	s.dc.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// MoveTo starts a new subpath.
func (s *Surface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
	s.hasPoint = true
}

// LineTo adds a line, or starts a subpath if there is no current point.
func (s *Surface) LineTo(x, y float64) {
	if !s.hasPoint {
		s.dc.MoveTo(x, y)
		s.hasPoint = true
		return
	}
	s.dc.LineTo(x, y)
}

// SetLineWidth sets the stroke width.
func (s *Surface) SetLineWidth(width float64) {
	s.dc.SetLineWidth(width)
}

// SetStrokeStyle parses the token with ortskurve.ParseColor. Tokens that do
// not parse are ignored and the previous color stays in effect.
func (s *Surface) SetStrokeStyle(style string) {
	c, err := ortskurve.ParseColor(style)
	if err != nil {
		ortskurve.Logger().Warn("ggsurface: stroke style ignored",
			slog.String("style", style), slog.Any("err", err))
		return
	}
	s.dc.SetColor(c)
}

// Stroke strokes the current path and keeps it.
func (s *Surface) Stroke() error {
	return s.dc.StrokePreserve()
}
